package stack

import (
	"bytes"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		s := newStringStack(t)

		Convey("Empty stack renders as an empty string", func() {
			So(s.Render().MustGet(), ShouldBeEmpty)
		})

		Convey("Single element renders exactly its stringified form", func() {
			So(s.Push("only"), ShouldBeNil)
			So(s.Render().MustGet(), ShouldEqual, "only")
		})

		Convey("Elements render top-down joined by newlines, no trailing break", func() {
			So(s.Push("a"), ShouldBeNil)
			So(s.Push("b"), ShouldBeNil)
			So(s.Push("c"), ShouldBeNil)

			So(s.Render().MustGet(), ShouldEqual, "c\nb\na")
		})

		Convey("Does not mutate the stack", func() {
			So(s.Push("x"), ShouldBeNil)
			s.Render()
			So(s.Size(), ShouldEqual, 1)
		})
	})
}

func TestRenderTop(t *testing.T) {
	Convey("RenderTop", t, func() {
		s := newStringStack(t)

		Convey("Empty stack yields Some of the empty string", func() {
			rendered := s.RenderTop()
			So(rendered.IsPresent(), ShouldBeTrue)
			So(rendered.MustGet(), ShouldBeEmpty)
		})

		Convey("Yields the stringified top payload", func() {
			So(s.Push("bottom"), ShouldBeNil)
			So(s.Push("top"), ShouldBeNil)
			So(s.RenderTop().MustGet(), ShouldEqual, "top")
			So(s.Size(), ShouldEqual, 2)
		})
	})
}

func TestFprint(t *testing.T) {
	Convey("Fprint family", t, func() {
		s := newStringStack(t)
		So(s.Push("a"), ShouldBeNil)
		So(s.Push("b"), ShouldBeNil)

		Convey("Fprint writes the rendering with a trailing line break", func() {
			var buf bytes.Buffer
			So(s.Fprint(&buf), ShouldBeNil)
			So(buf.String(), ShouldEqual, "b\na\n")
		})

		Convey("FprintTop writes only the top line", func() {
			var buf bytes.Buffer
			So(s.FprintTop(&buf), ShouldBeNil)
			So(buf.String(), ShouldEqual, "b\n")
		})

		Convey("Writer errors are surfaced", func() {
			So(s.Fprint(failingWriter{}), ShouldNotBeNil)
			So(s.FprintTop(failingWriter{}), ShouldNotBeNil)
		})

		Convey("Absent stack writes nothing, not even a blank line", func() {
			var nilStack *Stack[string]
			var buf bytes.Buffer
			So(nilStack.Fprint(&buf), ShouldBeNil)
			So(nilStack.FprintTop(&buf), ShouldBeNil)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}

func TestScenario(t *testing.T) {
	Convey("End-to-end scenario with string payloads", t, func() {
		var deleted []string
		s, err := New[string](
			func(v string) { deleted = append(deleted, v) },
			func(v string) string { return v },
		)
		So(err, ShouldBeNil)

		So(s.Push("a"), ShouldBeNil)
		So(s.Push("b"), ShouldBeNil)
		So(s.Push("c"), ShouldBeNil)

		So(s.Render().MustGet(), ShouldEqual, "c\nb\na")

		popped := s.Pop()
		So(popped.MustGet(), ShouldEqual, "c")
		So(s.Size(), ShouldEqual, 2)

		s.Destroy()
		So(deleted, ShouldResemble, []string{"b", "a"})
		So(s.IsEmpty(), ShouldBeTrue)
	})
}
