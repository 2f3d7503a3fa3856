package todo

import (
	"fmt"
	"strings"
)

// Item is a single todo entry. Items are never modified once they are part
// of a state; toggling produces a new Item.
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// List is the ordered todo list. Successive states share *Item pointers for
// items that did not change.
type List []*Item

// Stats counts completed and pending items.
func (l List) Stats() (done, pending int) {
	for _, it := range l {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// Filter selects which todos are shown. The zero value shows everything.
type Filter int

const (
	ShowAll Filter = iota
	ShowCompleted
	ShowActive
)

var filterNames = [...]string{
	ShowAll:       "SHOW_ALL",
	ShowCompleted: "SHOW_COMPLETED",
	ShowActive:    "SHOW_ACTIVE",
}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// Filters lists every filter in display order.
func Filters() []Filter { return []Filter{ShowAll, ShowCompleted, ShowActive} }

// ParseFilter accepts the short names used on the command line and in the
// config file ("all", "completed", "active") as well as the SHOW_* forms.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "show_all":
		return ShowAll, nil
	case "completed", "done", "show_completed":
		return ShowCompleted, nil
	case "active", "pending", "show_active":
		return ShowActive, nil
	}
	return ShowAll, fmt.Errorf("unknown filter %q (want all, completed or active)", s)
}

// Visible returns the items shown under f. An unknown filter shows all.
func Visible(l List, f Filter) List {
	switch f {
	case ShowCompleted:
		return l.where(func(it *Item) bool { return it.Completed })
	case ShowActive:
		return l.where(func(it *Item) bool { return !it.Completed })
	default:
		return l
	}
}

func (l List) where(keep func(*Item) bool) List {
	out := List{}
	for _, it := range l {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
