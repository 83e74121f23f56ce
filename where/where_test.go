package where

import (
	"os"
	"strings"
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Environment overrides", func() {
			override := func(env, path string, resolve func() string) {
				lo.Must0(os.Setenv(env, path))
				defer os.Unsetenv(env)

				So(resolve(), ShouldEqual, path)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			}

			Convey("Config() honors DYNSTACK_CONFIG_PATH", func() {
				override(EnvConfigPath, "/custom/config", Config)
			})

			Convey("Logs() honors DYNSTACK_LOGS_PATH", func() {
				override(EnvLogsPath, "/custom/logs", Logs)
			})

			Convey("Cache() honors DYNSTACK_CACHE_PATH", func() {
				override(EnvCachePath, "/custom/cache", Cache)
			})
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Scripts()", func() {
			path := Scripts()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Snapshots()", func() {
			path := Snapshots()
			So(path, ShouldNotBeEmpty)
			So(strings.HasSuffix(path, "snapshots.json"), ShouldBeTrue)
		})

		Convey("Recall()", func() {
			path := Recall()
			So(path, ShouldNotBeEmpty)
			So(strings.HasSuffix(path, "recall.json"), ShouldBeTrue)
		})
	})
}
