package snapshot

import (
	"fmt"
	"time"

	"github.com/dynstack-cli/dynstack/stack"
	"github.com/dynstack-cli/dynstack/util"
	"github.com/samber/lo"
)

// Snapshot represents a single named copy of a workbench stack's payloads.
type Snapshot struct {
	Name string `json:"name"`

	// Items holds the stack's payloads from the top downward.
	Items []string `json:"items"`

	Taken time.Time `json:"taken"`
}

// Take captures the payloads of a live stack into a new snapshot record.
// An absent stack yields an empty snapshot.
func Take(name string, s *stack.Stack[string]) *Snapshot {
	items := make([]string, 0, s.Size())
	s.Map(func(f *stack.Frame[string]) {
		items = append(items, f.Data())
	})

	return &Snapshot{
		Name:  name,
		Items: items,
		Taken: time.Now(),
	}
}

// Restore rebuilds a live stack from the snapshot, pushing the recorded items
// bottom-up so the first recorded item ends up back on top. The restored
// stack carries the standard workbench behaviors.
func (s *Snapshot) Restore() *stack.Stack[string] {
	restored := lo.Must(stack.New[string](
		stack.Discard[string],
		func(v string) string { return v },
	))

	for i := len(s.Items) - 1; i >= 0; i-- {
		lo.Must0(restored.Push(s.Items[i]))
	}

	return restored
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("%s : %s", s.Name, util.Quantify(len(s.Items), "element", "elements"))
}
