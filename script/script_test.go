package script

import (
	"bytes"
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func writeScript(t *testing.T, path, src string) {
	t.Helper()

	if err := filesystem.API().WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestRun(t *testing.T) {
	Convey("Given a Lua script driving the workbench", t, func() {
		Convey("Stack globals behave as documented", func() {
			writeScript(t, "basic.lua", `
push("a")
push("b")
print_stack()
local v = pop()
if v == "b" and size() == 1 and not empty() then
	push("ok")
end
print_stack()
`)

			var buf bytes.Buffer
			err := Run(&Options{Path: "basic.lua", Out: &buf})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "b\na\nok\na\n")
		})

		Convey("pop and peek yield nil on an empty workbench", func() {
			writeScript(t, "empty.lua", `
if pop() == nil and peek() == nil then
	push("still-empty-before")
end
print_stack()
`)

			var buf bytes.Buffer
			err := Run(&Options{Path: "empty.lua", Out: &buf})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldEqual, "still-empty-before\n")
		})

		Convey("Snapshots round-trip between runs", func() {
			writeScript(t, "save.lua", `
push("persisted")
save("lua-test")
`)
			writeScript(t, "load.lua", `
if load("lua-test") then
	print_stack()
end
`)

			So(Run(&Options{Path: "save.lua", Out: &bytes.Buffer{}}), ShouldBeNil)

			var buf bytes.Buffer
			So(Run(&Options{Path: "load.lua", Out: &buf}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "persisted\n")
		})

		Convey("Loading an unknown snapshot yields false", func() {
			writeScript(t, "missing.lua", `
if not load("no-such-snapshot") then
	push("fallback")
end
print_stack()
`)

			var buf bytes.Buffer
			So(Run(&Options{Path: "missing.lua", Out: &buf}), ShouldBeNil)
			So(buf.String(), ShouldEqual, "fallback\n")
		})

		Convey("Syntax errors surface to the caller", func() {
			writeScript(t, "broken.lua", `push(`)
			So(Run(&Options{Path: "broken.lua", Out: &bytes.Buffer{}}), ShouldNotBeNil)
		})

		Convey("A missing file surfaces to the caller", func() {
			So(Run(&Options{Path: "does-not-exist.lua", Out: &bytes.Buffer{}}), ShouldNotBeNil)
		})
	})
}
