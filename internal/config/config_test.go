package config_test

import (
	"testing"

	"github.com/octofit/tracker/internal/config"
	"github.com/octofit/tracker/internal/origin"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8000")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxBodyBytes, convey.ShouldEqual, 1<<20)
			convey.So(cfg.WorkspaceEnv, convey.ShouldEqual, "CODESPACE_NAME")
			convey.So(cfg.WorkspacePort, convey.ShouldEqual, 8000)
			convey.So(cfg.WorkspaceDomain, convey.ShouldEqual, "app.github.dev")
			convey.So(cfg.LocalOrigin, convey.ShouldEqual, "http://localhost:8000")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Resolver(t *testing.T) {
	convey.Convey("Given a config", t, func() {
		cfg := config.New()

		convey.Convey("When public_url is set", func() {
			cfg.PublicURL = "https://octofit.example.com"

			convey.Convey("Then a static resolver should be returned", func() {
				r := cfg.Resolver()
				convey.So(r, convey.ShouldHaveSameTypeAs, origin.Static(""))
				convey.So(r.BaseURL(), convey.ShouldEqual, "https://octofit.example.com")
			})
		})

		convey.Convey("When public_url is empty", func() {
			t.Setenv("OCTOFIT_TEST_WS", "demo")
			cfg.WorkspaceEnv = "OCTOFIT_TEST_WS"
			cfg.WorkspacePort = 9000

			convey.Convey("Then the workspace settings should drive the env resolver", func() {
				convey.So(cfg.Resolver().BaseURL(), convey.ShouldEqual, "https://demo-9000.app.github.dev")
			})
		})
	})
}

func TestConfig_Catalog(t *testing.T) {
	convey.Convey("Given a config without fixtures", t, func() {
		c := config.New().Catalog()

		convey.Convey("Then the default tables should be served", func() {
			convey.So(c.Users(), convey.ShouldHaveLength, 2)
			convey.So(c.Leaderboard()[0].Rank, convey.ShouldEqual, 1)
		})
	})
}
