package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two semantic version strings", t, func() {
		Convey("Equal versions compare to 0", func() {
			result, err := Compare("1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("A v prefix is ignored", func() {
			result, err := Compare("v1.2.3", "1.2.3")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})

		Convey("A greater major version wins", func() {
			result, err := Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("A lesser minor version loses", func() {
			result, err := Compare("1.1.9", "1.2.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)
		})

		Convey("A greater patch version wins", func() {
			result, err := Compare("0.1.1", "0.1.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("Malformed input yields an error", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
