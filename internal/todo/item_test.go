package todo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVisible(t *testing.T) {
	l := List{
		{ID: 0, Text: "a", Completed: true},
		{ID: 1, Text: "b"},
		{ID: 2, Text: "c", Completed: true},
	}
	tests := []struct {
		filter Filter
		want   []int
	}{
		{ShowAll, []int{0, 1, 2}},
		{ShowCompleted, []int{0, 2}},
		{ShowActive, []int{1}},
		{Filter(99), []int{0, 1, 2}},
	}
	for _, tt := range tests {
		ids := []int{}
		for _, it := range Visible(l, tt.filter) {
			ids = append(ids, it.ID)
		}
		if diff := cmp.Diff(tt.want, ids); diff != "" {
			t.Errorf("Visible(%v) (-want +got):\n%s", tt.filter, diff)
		}
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"all", ShowAll, true},
		{"SHOW_ALL", ShowAll, true},
		{" Completed ", ShowCompleted, true},
		{"done", ShowCompleted, true},
		{"active", ShowActive, true},
		{"SHOW_ACTIVE", ShowActive, true},
		{"bogus", ShowAll, false},
		{"", ShowAll, false},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFilter(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilterString(t *testing.T) {
	if got := ShowActive.String(); got != "SHOW_ACTIVE" {
		t.Errorf("expected SHOW_ACTIVE, got %s", got)
	}
	if got := Filter(7).String(); got != "Filter(7)" {
		t.Errorf("expected Filter(7), got %s", got)
	}
}

func TestStats(t *testing.T) {
	done, pending := List{{Completed: true}, {}, {}}.Stats()
	if done != 1 || pending != 2 {
		t.Errorf("expected 1 done 2 pending, got %d %d", done, pending)
	}
}

func TestIDAllocator(t *testing.T) {
	var ids IDAllocator
	a, ok := Add(&ids, "x").(AddTodo)
	if !ok {
		t.Fatal("Add did not build an AddTodo")
	}
	b := Add(&ids, "y").(AddTodo)
	if a.ID != 0 || b.ID != 1 {
		t.Errorf("expected ids 0 and 1, got %d and %d", a.ID, b.ID)
	}
	if got := ids.Next(); got != 2 {
		t.Errorf("expected next id 2, got %d", got)
	}
}
