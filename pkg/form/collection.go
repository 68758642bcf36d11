package form

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbind/pkg/surface"
)

// Entry is one member of the working set.
type Entry struct {
	ID    uuid.UUID
	Label string
	Item  any
}

// collection is the working set mirrored one-to-one onto a list view. Entry
// i of the set is always row i of the view. The list is attached once the
// inputs are built; readers on other goroutines only see the entries.
type collection struct {
	mu      sync.Mutex
	list    surface.ListView
	labeler func(any) string
	entries []Entry
}

func newCollection(list surface.ListView, labeler func(any) string) *collection {
	return &collection{list: list, labeler: labeler}
}

func (c *collection) attach(list surface.ListView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = list
	if list == nil {
		return
	}
	labels := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		labels = append(labels, entry.Label)
	}
	if len(labels) > 0 {
		list.Reset(labels)
	}
}

func (c *collection) append(item any) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := Entry{ID: uuid.New(), Label: c.labeler(item), Item: item}
	c.entries = append(c.entries, entry)
	if c.list != nil {
		c.list.Append(entry.Label)
	}
	return entry
}

func (c *collection) removeSelected() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.list == nil {
		return Entry{}, false
	}
	return c.removeAt(c.list.Selected())
}

func (c *collection) removeAt(index int) (Entry, bool) {
	if index < 0 || index >= len(c.entries) {
		return Entry{}, false
	}
	removed := c.entries[index]
	c.entries = slices.Delete(c.entries, index, index+1)
	if c.list != nil {
		c.list.RemoveAt(index)
	}
	return removed, true
}

func (c *collection) remove(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	index := slices.IndexFunc(c.entries, func(e Entry) bool { return e.ID == id })
	_, ok := c.removeAt(index)
	return ok
}

func (c *collection) reset(items []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = c.entries[:0:0]
	labels := make([]string, 0, len(items))
	for _, item := range items {
		entry := Entry{ID: uuid.New(), Label: c.labeler(item), Item: item}
		c.entries = append(c.entries, entry)
		labels = append(labels, entry.Label)
	}
	if c.list != nil {
		c.list.Reset(labels)
	}
}

func (c *collection) items() []any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]any, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry.Item)
	}
	return out
}

func (c *collection) snapshot() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

func (c *collection) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
