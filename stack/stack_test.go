package stack

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newStringStack(t *testing.T) *Stack[string] {
	t.Helper()

	s, err := New[string](Discard[string], func(v string) string { return v })
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should construct an empty stack", func() {
			s, err := New[int](Discard[int], Sprint[int])
			So(err, ShouldBeNil)
			So(s.Size(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Should reject a nil delete behavior", func() {
			s, err := New[int](nil, Sprint[int])
			So(errors.Is(err, ErrNilBehavior), ShouldBeTrue)
			So(s, ShouldBeNil)
		})

		Convey("Should reject a nil stringify behavior", func() {
			s, err := New[int](Discard[int], nil)
			So(errors.Is(err, ErrNilBehavior), ShouldBeTrue)
			So(s, ShouldBeNil)
		})
	})
}

func TestLIFO(t *testing.T) {
	Convey("Given a stack with pushed elements", t, func() {
		s := newStringStack(t)

		pushed := []string{"a", "b", "c", "d", "e"}
		for _, v := range pushed {
			So(s.Push(v), ShouldBeNil)
		}

		Convey("Pop order is exactly the reverse of push order", func() {
			for i := len(pushed) - 1; i >= 0; i-- {
				So(s.Pop().MustGet(), ShouldEqual, pushed[i])
			}
			So(s.IsEmpty(), ShouldBeTrue)
		})

		Convey("Size tracks pushes minus pops and never goes negative", func() {
			So(s.Size(), ShouldEqual, 5)
			s.Pop()
			s.Pop()
			So(s.Size(), ShouldEqual, 3)

			for i := 0; i < 10; i++ {
				s.Pop()
			}
			So(s.Size(), ShouldEqual, 0)
		})

		Convey("IsEmpty always agrees with Size", func() {
			for !s.IsEmpty() {
				So(s.IsEmpty(), ShouldEqual, s.Size() == 0)
				s.Pop()
			}
			So(s.IsEmpty(), ShouldEqual, s.Size() == 0)
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Push then Pop preserves payload identity", t, func() {
		s, err := New[*int](Discard[*int], Sprint[*int])
		So(err, ShouldBeNil)

		x := new(int)
		*x = 42

		So(s.Push(x), ShouldBeNil)
		y := s.Pop()
		So(y.IsPresent(), ShouldBeTrue)
		So(y.MustGet(), ShouldEqual, x)
	})
}

func TestPeek(t *testing.T) {
	Convey("Peek", t, func() {
		s := newStringStack(t)

		Convey("Returns None on an empty stack", func() {
			So(s.Peek().IsAbsent(), ShouldBeTrue)
		})

		Convey("Never mutates the stack", func() {
			So(s.Push("bottom"), ShouldBeNil)
			So(s.Push("top"), ShouldBeNil)

			first := s.Peek()
			second := s.Peek()
			So(first.MustGet(), ShouldEqual, "top")
			So(second.MustGet(), ShouldEqual, "top")
			So(s.Size(), ShouldEqual, 2)

			s.Pop()
			So(s.Peek().MustGet(), ShouldEqual, "bottom")
		})
	})
}

func TestPopEmpty(t *testing.T) {
	Convey("Pop on an empty stack is a no-op returning None", t, func() {
		s := newStringStack(t)
		So(s.Pop().IsAbsent(), ShouldBeTrue)
		So(s.Size(), ShouldEqual, 0)
	})
}

func TestClear(t *testing.T) {
	Convey("Clear", t, func() {
		var deleted []string
		s, err := New[string](
			func(v string) { deleted = append(deleted, v) },
			func(v string) string { return v },
		)
		So(err, ShouldBeNil)

		Convey("Invokes the delete behavior exactly once per element", func() {
			So(s.Push("a"), ShouldBeNil)
			So(s.Push("b"), ShouldBeNil)
			So(s.Push("c"), ShouldBeNil)

			s.Clear()
			So(s.IsEmpty(), ShouldBeTrue)
			So(deleted, ShouldResemble, []string{"c", "b", "a"})
		})

		Convey("Is a no-op on an already-empty stack", func() {
			s.Clear()
			So(s.IsEmpty(), ShouldBeTrue)
			So(deleted, ShouldBeEmpty)
		})

		Convey("Leaves the stack reusable", func() {
			So(s.Push("x"), ShouldBeNil)
			s.Clear()
			So(s.Push("y"), ShouldBeNil)
			So(s.Peek().MustGet(), ShouldEqual, "y")
		})
	})
}

func TestPopDoesNotDelete(t *testing.T) {
	Convey("Pop transfers ownership without invoking the delete behavior", t, func() {
		var deletions int
		s, err := New[string](
			func(string) { deletions++ },
			func(v string) string { return v },
		)
		So(err, ShouldBeNil)

		So(s.Push("a"), ShouldBeNil)
		So(s.Pop().MustGet(), ShouldEqual, "a")
		So(deletions, ShouldEqual, 0)
	})
}

func TestDestroy(t *testing.T) {
	Convey("Destroy releases every remaining payload top-down", t, func() {
		var deleted []string
		s, err := New[string](
			func(v string) { deleted = append(deleted, v) },
			func(v string) string { return v },
		)
		So(err, ShouldBeNil)

		So(s.Push("a"), ShouldBeNil)
		So(s.Push("b"), ShouldBeNil)
		So(s.Push("c"), ShouldBeNil)

		So(s.Pop().MustGet(), ShouldEqual, "c")

		s.Destroy()
		So(deleted, ShouldResemble, []string{"b", "a"})
	})
}

func TestMap(t *testing.T) {
	Convey("Map", t, func() {
		s := newStringStack(t)

		Convey("Visits every frame exactly once from top to bottom", func() {
			So(s.Push("C"), ShouldBeNil)
			So(s.Push("B"), ShouldBeNil)
			So(s.Push("A"), ShouldBeNil)

			var visited []string
			s.Map(func(f *Frame[string]) {
				visited = append(visited, f.Data())
			})

			So(visited, ShouldResemble, []string{"A", "B", "C"})
		})

		Convey("Exposes structural context through frame accessors", func() {
			So(s.Push("bottom"), ShouldBeNil)
			So(s.Push("top"), ShouldBeNil)

			s.Map(func(f *Frame[string]) {
				if f.Data() == "top" {
					So(f.Next(), ShouldNotBeNil)
					So(f.Next().Data(), ShouldEqual, "bottom")
				} else {
					So(f.Next(), ShouldBeNil)
				}
			})
		})

		Convey("Is a no-op on an empty stack or with a nil visitor", func() {
			s.Map(func(*Frame[string]) {
				t.Fatal("visitor invoked on empty stack")
			})

			So(s.Push("x"), ShouldBeNil)
			s.Map(nil)
			So(s.Size(), ShouldEqual, 1)
		})
	})
}

func TestNilStack(t *testing.T) {
	Convey("Given an absent stack", t, func() {
		var s *Stack[int]

		Convey("Push fails with ErrNilStack", func() {
			So(errors.Is(s.Push(1), ErrNilStack), ShouldBeTrue)
		})

		Convey("Read paths degrade gracefully", func() {
			So(s.Peek().IsAbsent(), ShouldBeTrue)
			So(s.Pop().IsAbsent(), ShouldBeTrue)
			So(s.Size(), ShouldEqual, 0)
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.RenderTop().IsAbsent(), ShouldBeTrue)
			So(s.Render().IsAbsent(), ShouldBeTrue)
		})

		Convey("Bulk operations are no-ops", func() {
			So(s.Clear, ShouldNotPanic)
			So(s.Destroy, ShouldNotPanic)
			So(func() { s.Map(func(*Frame[int]) {}) }, ShouldNotPanic)
		})
	})
}

func TestBehaviorHelpers(t *testing.T) {
	Convey("Shipped behaviors", t, func() {
		Convey("Sprint delegates to fmt.Sprint", func() {
			So(Sprint(42), ShouldEqual, "42")
			So(Sprint("x"), ShouldEqual, "x")
		})

		Convey("Discard accepts anything", func() {
			So(func() { Discard(strconv.Itoa(1)) }, ShouldNotPanic)
		})
	})
}
