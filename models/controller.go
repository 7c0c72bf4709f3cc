package models

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Controller holds the current dashboard selection. Selection starts at
// AllStates and only changes through Select, which validates candidates
// against the dataset's state names. Reads and writes are guarded because
// the HTTP server may serve overlapping requests.
type Controller struct {
	mu        sync.RWMutex
	selection Selection
	valid     map[Selection]bool
	options   []string
}

// NewController builds a controller over the table's distinct states,
// initialized to AllStates.
func NewController(table *Table) *Controller {
	states := table.States()

	c := &Controller{
		selection: AllStates,
		valid:     map[Selection]bool{AllStates: true},
		options:   append([]string{string(AllStates)}, states...),
	}
	for _, name := range states {
		c.valid[Selection(name)] = true
	}
	return c
}

// Options returns the dropdown options: "All" first, then states sorted.
// The slice is a copy; callers cannot reorder the dropdown.
func (c *Controller) Options() []string {
	return append([]string(nil), c.options...)
}

// Current returns the active selection.
func (c *Controller) Current() Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selection
}

// Select validates and applies a new selection. Names are matched exactly
// first; a title-cased form is tried as a fallback so lowercased query
// parameters still resolve. Unknown names leave the selection unchanged.
func (c *Controller) Select(name string) (Selection, error) {
	sel := Selection(name)
	if !c.valid[sel] {
		canon := Selection(cases.Title(language.AmericanEnglish).String(strings.ToLower(name)))
		if !c.valid[canon] {
			return "", fmt.Errorf("unknown state %q", name)
		}
		sel = canon
	}

	c.mu.Lock()
	c.selection = sel
	c.mu.Unlock()
	return sel, nil
}
