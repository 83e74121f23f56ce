package stack

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/mo"
)

// RenderTop returns the stringified top payload. Returns mo.None for an
// absent stack and mo.Some("") for an empty one; the returned string is an
// independently owned value produced by the stringify behavior.
func (s *Stack[T]) RenderTop() mo.Option[string] {
	if s == nil {
		return mo.None[string]()
	}

	data, ok := s.Peek().Get()
	if !ok {
		return mo.Some("")
	}

	return mo.Some(s.stringFn(data))
}

// Render produces a multi-line rendering of the whole stack: one line per
// element from the top downward, joined by "\n" with no trailing line break.
// Returns mo.None for an absent stack and mo.Some("") for an empty one.
func (s *Stack[T]) Render() mo.Option[string] {
	if s == nil {
		return mo.None[string]()
	}

	lines := make([]string, 0, s.size)
	for frame := s.top; frame != nil; frame = frame.next {
		lines = append(lines, s.stringFn(frame.data))
	}

	return mo.Some(strings.Join(lines, "\n"))
}

// FprintTop writes RenderTop followed by a line break to w, surfacing writer
// errors. No-op on an absent stack: nothing is written, not even a blank line.
func (s *Stack[T]) FprintTop(w io.Writer) error {
	rendered, ok := s.RenderTop().Get()
	if !ok {
		return nil
	}

	_, err := fmt.Fprintln(w, rendered)
	return err
}

// PrintTop writes RenderTop followed by a line break to standard output,
// discarding writer errors. No-op on an absent stack.
func (s *Stack[T]) PrintTop() {
	_ = s.FprintTop(os.Stdout)
}

// Fprint writes Render followed by a line break to w, surfacing writer
// errors. No-op on an absent stack.
func (s *Stack[T]) Fprint(w io.Writer) error {
	rendered, ok := s.Render().Get()
	if !ok {
		return nil
	}

	_, err := fmt.Fprintln(w, rendered)
	return err
}

// Print writes Render followed by a line break to standard output, discarding
// writer errors. No-op on an absent stack.
func (s *Stack[T]) Print() {
	_ = s.Fprint(os.Stdout)
}
