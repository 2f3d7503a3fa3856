package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"github.com/barbgs/redux-todo/internal/redux"
	"github.com/barbgs/redux-todo/internal/todo"
	"github.com/barbgs/redux-todo/internal/ui"
)

func capture(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = out, errOut
	if err := ui.SetTheme("mono"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		ui.Stdout, ui.Stderr = oldOut, oldErr
		_ = ui.SetTheme("classic")
	})
	return out, errOut
}

func TestParseSteps(t *testing.T) {
	var ids todo.IDAllocator
	got, err := ParseSteps("add Learn Redux, add Buy milk ,toggle 1,, filter active", &ids)
	if err != nil {
		t.Fatal(err)
	}
	want := []redux.Action{
		todo.AddTodo{ID: 0, Text: "Learn Redux"},
		todo.AddTodo{ID: 1, Text: "Buy milk"},
		todo.ToggleTodo{ID: 1},
		todo.SetVisibilityFilter{Filter: todo.ShowActive},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("actions (-want +got):\n%s", diff)
	}
}

func TestParseStepsErrors(t *testing.T) {
	for _, script := range []string{
		"add",
		"toggle one",
		"filter sideways",
		"remove 1",
	} {
		var ids todo.IDAllocator
		if _, err := ParseSteps(script, &ids); err == nil {
			t.Errorf("ParseSteps(%q): expected error", script)
		}
	}
}

func TestExec(t *testing.T) {
	out, _ := capture(t)
	code := Run([]string{"exec", "add", "Learn", "Redux,", "add", "Buy", "milk,", "toggle", "1"}, Options{})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	got := out.String()
	for _, want := range []string{
		"Todos  x 1  - 1  Total 2",
		"Show: SHOW_ALL",
		" 0. [ ] Learn Redux",
		" 1. [x] Buy milk",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExecFilterAndGroup(t *testing.T) {
	out, _ := capture(t)
	code := Run([]string{"exec", "add a, add b, add c, toggle 2, filter completed"}, Options{Group: true})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	got := out.String()
	if !strings.Contains(got, " 2. [x] c") || strings.Contains(got, "[ ] a") {
		t.Errorf("completed filter not applied:\n%s", got)
	}
	if !strings.Contains(got, "Pending") || !strings.Contains(got, "(none)") {
		t.Errorf("expected grouped output:\n%s", got)
	}
}

func TestExecInitialFilter(t *testing.T) {
	out, _ := capture(t)
	Run([]string{"exec", "add a, add b, toggle 0"}, Options{Filter: todo.ShowActive})
	got := out.String()
	if !strings.Contains(got, "Show: SHOW_ACTIVE") || strings.Contains(got, "[x] a") {
		t.Errorf("initial filter not applied:\n%s", got)
	}
}

func TestRunUsage(t *testing.T) {
	tests := []struct {
		args []string
		code int
		err  string
	}{
		{nil, 2, ""},
		{[]string{"help"}, 0, ""},
		{[]string{"exec"}, 2, "usage: redux-todo exec"},
		{[]string{"exec", "toggle x"}, 2, "toggle: not a number"},
		{[]string{"frobnicate"}, 2, "unknown subcommand: frobnicate"},
	}
	for _, tt := range tests {
		_, errOut := capture(t)
		if code := Run(tt.args, Options{}); code != tt.code {
			t.Errorf("Run(%q) = %d, want %d", tt.args, code, tt.code)
		}
		if !strings.Contains(errOut.String(), tt.err) {
			t.Errorf("Run(%q) stderr = %q, want it to contain %q", tt.args, errOut.String(), tt.err)
		}
	}
}

func TestExecTruncatesLongTextByWidth(t *testing.T) {
	out, _ := capture(t)
	long := strings.Repeat("é", 50) + strings.Repeat("日本", 30)
	if code := Run([]string{"exec", "add " + long}, Options{}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	got := out.String()
	if !utf8.ValidString(got) {
		t.Fatalf("output is not valid UTF-8:\n%q", got)
	}
	var line string
	for _, ln := range strings.Split(got, "\n") {
		if strings.Contains(ln, " 0. [ ] ") {
			line = ln
		}
	}
	if line == "" {
		t.Fatalf("item line missing:\n%s", got)
	}
	text := line[strings.Index(line, "[ ] ")+len("[ ] "):]
	cut := strings.Index(text, "...")
	if cut < 0 {
		t.Fatalf("expected truncated text to end in ..., got %q", text)
	}
	text = text[:cut+len("...")]
	if w := lipgloss.Width(text); w > maxTextWidth {
		t.Errorf("truncated text is %d cells wide, want at most %d", w, maxTextWidth)
	}
	if !strings.HasPrefix(text, strings.Repeat("é", 50)) {
		t.Errorf("expected the start of the text to survive, got %q", text)
	}
}

func TestItemLineKeepsShortText(t *testing.T) {
	capture(t)
	got := itemLine(&todo.Item{ID: 3, Text: "café ☕", Completed: true})
	if got != " 3. [x] café ☕" {
		t.Errorf("itemLine = %q", got)
	}
}
