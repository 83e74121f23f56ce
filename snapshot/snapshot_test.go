package snapshot

import (
	"testing"

	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/stack"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func newWorkbench(items ...string) *stack.Stack[string] {
	s := lo.Must(stack.New[string](
		stack.Discard[string],
		func(v string) string { return v },
	))
	for _, item := range items {
		lo.Must0(s.Push(item))
	}
	return s
}

func TestSnapshots(t *testing.T) {
	Convey("Given a live workbench stack", t, func() {
		s := newWorkbench("a", "b", "c")

		Convey("Take records items top-down without mutating the stack", func() {
			snap := Take("test", s)
			So(snap.Items, ShouldResemble, []string{"c", "b", "a"})
			So(s.Size(), ShouldEqual, 3)
		})

		Convey("When saving it under a name", func() {
			So(Save("roundtrip", s), ShouldBeNil)

			Convey("Load returns the saved record", func() {
				loaded := Load("roundtrip")
				So(loaded.IsPresent(), ShouldBeTrue)
				So(loaded.MustGet().Items, ShouldResemble, []string{"c", "b", "a"})
			})

			Convey("Restore rebuilds an equivalent stack", func() {
				restored := Load("roundtrip").MustGet().Restore()
				So(restored.Size(), ShouldEqual, 3)
				So(restored.Render().MustGet(), ShouldEqual, "c\nb\na")
			})

			Convey("Names includes the saved snapshot", func() {
				names, err := Names()
				So(err, ShouldBeNil)
				So(names, ShouldContain, "roundtrip")
			})

			Convey("Remove deletes it", func() {
				So(Remove("roundtrip"), ShouldBeNil)
				So(Load("roundtrip").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Load of an unknown name is absent", func() {
			So(Load("no-such-snapshot").IsAbsent(), ShouldBeTrue)
		})

		Convey("Clear empties the registry", func() {
			So(Save("doomed", s), ShouldBeNil)
			So(Clear(), ShouldBeNil)
			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldBeEmpty)
		})
	})

	Convey("An empty stack snapshots to an empty record", t, func() {
		snap := Take("empty", newWorkbench())
		So(snap.Items, ShouldBeEmpty)
		So(snap.Restore().IsEmpty(), ShouldBeTrue)
	})
}
