package origin_test

import (
	"testing"

	"github.com/octofit/tracker/internal/origin"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given a workspace name", t, func() {
		Convey("When it is set", func() {
			Convey("Then the workspace origin should be built", func() {
				So(origin.Resolve("abc"), ShouldEqual, "https://abc-8000.app.github.dev")
			})
		})

		Convey("When it is empty", func() {
			Convey("Then the local origin should be returned", func() {
				So(origin.Resolve(""), ShouldEqual, "http://localhost:8000")
			})
		})
	})
}

func TestEnvResolver(t *testing.T) {
	Convey("Given an environment-backed resolver", t, func() {
		env := map[string]string{}
		lookup := func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		}
		r := origin.NewEnv(origin.WithLookup(lookup))

		Convey("When the variable is unset", func() {
			Convey("Then it should return the local origin", func() {
				So(r.BaseURL(), ShouldEqual, "http://localhost:8000")
			})
		})

		Convey("When the variable is set to an empty string", func() {
			env[origin.DefaultWorkspaceEnv] = ""

			Convey("Then it should return the local origin", func() {
				So(r.BaseURL(), ShouldEqual, "http://localhost:8000")
			})
		})

		Convey("When the variable changes between calls", func() {
			env[origin.DefaultWorkspaceEnv] = "first"
			before := r.BaseURL()
			env[origin.DefaultWorkspaceEnv] = "second"
			after := r.BaseURL()

			Convey("Then each call should observe the current value", func() {
				So(before, ShouldEqual, "https://first-8000.app.github.dev")
				So(after, ShouldEqual, "https://second-8000.app.github.dev")
			})
		})

		Convey("When options override the defaults", func() {
			env["WS"] = "box"
			custom := origin.NewEnv(
				origin.WithLookup(lookup),
				origin.WithVariable("WS"),
				origin.WithPort(3000),
				origin.WithDomain("example.dev"),
				origin.WithLocal("http://127.0.0.1:3000/"),
			)

			Convey("Then the overrides should be used", func() {
				So(custom.BaseURL(), ShouldEqual, "https://box-3000.example.dev")
				delete(env, "WS")
				So(custom.BaseURL(), ShouldEqual, "http://127.0.0.1:3000")
			})
		})

		Convey("When using the real process environment", func() {
			t.Setenv(origin.DefaultWorkspaceEnv, "abc")

			Convey("Then os.LookupEnv should be consulted", func() {
				So(origin.NewEnv().BaseURL(), ShouldEqual, "https://abc-8000.app.github.dev")
			})
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Given a static origin with a trailing slash", t, func() {
		s := origin.Static("https://api.example.com/")

		Convey("Then the slash should be trimmed", func() {
			So(s.BaseURL(), ShouldEqual, "https://api.example.com")
		})
	})
}
