package inline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestParseScript(t *testing.T) {
	Convey("ParseScript", t, func() {
		Convey("Parses a mixed script", func() {
			ops, err := ParseScript("push hello world; pop; size; render")
			So(err, ShouldBeNil)
			So(ops, ShouldResemble, []Op{
				{Kind: OpPush, Arg: "hello world"},
				{Kind: OpPop},
				{Kind: OpSize},
				{Kind: OpRender},
			})
		})

		Convey("Skips empty segments", func() {
			ops, err := ParseScript("push a;; pop ;")
			So(err, ShouldBeNil)
			So(ops, ShouldHaveLength, 2)
		})

		Convey("Rejects unknown ops", func() {
			_, err := ParseScript("push a; explode")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects a push without a payload", func() {
			_, err := ParseScript("push")
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects stray arguments", func() {
			_, err := ParseScript("pop now")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRunPlain(t *testing.T) {
	Convey("Run in plain text mode", t, func() {
		Convey("Prints one line per value-producing op", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Script: "push a; push b; push c; render; pop; size",
				Load:   mo.None[string](),
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "c\nb\na\nc\n2\n")
		})

		Convey("Pop on an empty workbench prints nothing", func() {
			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Script: "pop; empty",
				Load:   mo.None[string](),
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "true\n")
		})

		Convey("Loading an unknown snapshot fails", func() {
			err := Run(&Options{
				Out:    &bytes.Buffer{},
				Script: "size",
				Load:   mo.Some("no-such-snapshot"),
			})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRunJson(t *testing.T) {
	Convey("Run in JSON mode", t, func() {
		var buf bytes.Buffer
		err := Run(&Options{
			Out:    &buf,
			Script: "push a; push b; pop; peek",
			Json:   true,
			Load:   mo.None[string](),
		})
		So(err, ShouldBeNil)

		var output Output
		So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)

		So(output.Script, ShouldEqual, "push a; push b; pop; peek")
		So(output.Ops, ShouldHaveLength, 4)
		So(output.Ops[2].Result, ShouldEqual, "b")
		So(output.Ops[2].Size, ShouldEqual, 1)
		So(output.Ops[3].Result, ShouldEqual, "a")
		So(output.Stack, ShouldResemble, []string{"a"})
	})
}

func TestSnapshotOps(t *testing.T) {
	Convey("Snapshot ops round-trip through the registry", t, func() {
		var buf bytes.Buffer
		err := Run(&Options{
			Out:    &buf,
			Script: "push x; push y; save inline-test; clear; load inline-test; render",
			Load:   mo.None[string](),
		})
		So(err, ShouldBeNil)
		So(buf.String(), ShouldEqual, "y\nx\n")
	})
}
