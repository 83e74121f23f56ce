package config

import (
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("recall.suggestions")
			So(result, ShouldEqual, "recall_suggestions")
		})

		Convey("The undo depth key lives in the shared workbench section", func() {
			f, ok := Default[key.WorkbenchUndoDepth]
			So(ok, ShouldBeTrue)
			So(f.Key, ShouldEqual, "workbench.undo_depth")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env derives the prefixed environment variable name", func() {
			f := Default["logs.write"]
			So(f.Env(), ShouldEqual, "DYNSTACK_LOGS_WRITE")
		})

		Convey("Pretty renders without panicking", func() {
			_ = Setup()
			f := Default["cli.colored"]
			So(f.Pretty(), ShouldNotBeEmpty)
		})
	})
}
