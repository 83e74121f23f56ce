package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("snap:name?.json"), ShouldEqual, "snap_name_.json")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("snap__name"), ShouldEqual, "snap_name")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-snap-name-"), ShouldEqual, "snap-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "element", "elements"), ShouldEqual, "1 element")
		So(Quantify(2, "element", "elements"), ShouldEqual, "2 elements")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/script.lua"), ShouldEqual, "script")
		So(FileStem("script"), ShouldEqual, "script")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
