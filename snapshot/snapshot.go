// Package snapshot manages the persistence and restoration of named workbench stacks.
package snapshot

import (
	"github.com/dynstack-cli/dynstack/filesystem"
	"github.com/dynstack-cli/dynstack/stack"
	"github.com/dynstack-cli/dynstack/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// cacher provides an abstracted, disk-backed registry for named snapshot records.
var cacher = gache.New[map[string]*Snapshot](
	&gache.Options{
		Path:       where.Snapshots(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of saved snapshots from the persistent store.
func Get() (map[string]*Snapshot, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Snapshot), nil
	}
	return cached, nil
}

// Save persists the current contents of a live stack under the given name,
// replacing any previous snapshot with that name. The stack itself is not
// mutated; its payloads are read through a traversal.
func Save(name string, s *stack.Stack[string]) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[name] = Take(name, s)
	return cacher.Set(saved)
}

// Load retrieves a snapshot by name, or mo.None when no snapshot with that
// name exists or the registry is unreadable.
func Load(name string) mo.Option[*Snapshot] {
	saved, err := Get()
	if err != nil {
		return mo.None[*Snapshot]()
	}

	if snap, ok := saved[name]; ok {
		return mo.Some(snap)
	}
	return mo.None[*Snapshot]()
}

// Remove permanently deletes a named snapshot from the registry.
func Remove(name string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, name)
	return cacher.Set(saved)
}

// Clear removes every saved snapshot from the registry.
func Clear() error {
	return cacher.Set(make(map[string]*Snapshot))
}

// Names returns the saved snapshot names in no particular order.
func Names() ([]string, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}
	return lo.Keys(saved), nil
}
