package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/octofit/tracker/internal/config"
	"github.com/octofit/tracker/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("OCTOFIT_ADDR", ":8080")
			_ = os.Setenv("OCTOFIT_PUBLIC_URL", "https://api.octofit.dev")
			defer func() {
				_ = os.Unsetenv("OCTOFIT_ADDR")
				_ = os.Unsetenv("OCTOFIT_PUBLIC_URL")
			}()

			convey.Convey("Then the HTTP server should use it", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)

				srv := newHTTPServer(ctx, cfg, logger.Nop())
				convey.So(srv.Addr, convey.ShouldEqual, ":8080")
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)

				req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				var body map[string]any
				convey.So(json.Unmarshal(w.Body.Bytes(), &body), convey.ShouldBeNil)
				convey.So(body["base_url"], convey.ShouldEqual, "https://api.octofit.dev")
			})
		})

		convey.Convey("When configuration is invalid", func() {
			_ = os.Setenv("OCTOFIT_ADDR", "")
			defer func() { _ = os.Unsetenv("OCTOFIT_ADDR") }()

			convey.Convey("Then loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestHTTPServerRoutes(t *testing.T) {
	convey.Convey("Given a server built from default configuration", t, func() {
		ctx := context.Background()
		srv := newHTTPServer(ctx, config.New(), logger.Nop())

		serve := func(method, path, body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(method, path, strings.NewReader(body))
			w := httptest.NewRecorder()
			srv.Handler.ServeHTTP(w, req)
			return w
		}

		convey.Convey("Then API, docs and metrics routes should all be mounted", func() {
			convey.So(serve(http.MethodGet, "/api/activities/", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodPost, "/api/teams/", `{"name":"x"}`).Code, convey.ShouldEqual, http.StatusCreated)
			convey.So(serve(http.MethodGet, "/openapi.yaml", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodGet, "/api-docs", "").Code, convey.ShouldEqual, http.StatusOK)
			convey.So(serve(http.MethodGet, "/healthz", "").Code, convey.ShouldEqual, http.StatusOK)
		})

		convey.Convey("Then every response should carry a request id", func() {
			w := serve(http.MethodGet, "/nowhere", "")
			convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
		})
	})
}

func TestSystemMetricsUpdater(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When the context expires", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it should return without panicking", func() {
				convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When updating once", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}
