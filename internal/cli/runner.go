package cli

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/barbgs/redux-todo/internal/redux"
	"github.com/barbgs/redux-todo/internal/todo"
	"github.com/barbgs/redux-todo/internal/tui"
	"github.com/barbgs/redux-todo/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group  bool        // list grouped by pending/done
	Filter todo.Filter // initial visibility filter
	Logger *log.Logger // store action log
}

func (o Options) tui() tui.Options {
	return tui.Options{Filter: o.Filter, Logger: o.Logger}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "todo":
		if err := tui.RunTodos(opt.tui()); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0

	case "counter":
		if err := tui.RunCounter(opt.tui()); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0

	case "exec":
		if len(a) == 0 {
			ui.Fail("usage: redux-todo exec <step>[, <step>...]")
			return 2
		}
		return doExec(strings.Join(a, " "), opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout, `redux-todo - reducer/store demo

Usage:
  redux-todo [flags] <subcommand> [args]

Subcommands:
  todo               Interactive todo list
  counter            Interactive counter
  exec <steps>       Apply comma-separated steps to a fresh todo store and print it
                     steps: add <text> | toggle <id> | filter <all|completed|active>

Flags:
  -group             exec: list grouped by pending/done
  -theme <name>      classic, neon or mono
  -config <path>     YAML config file

Examples:
  redux-todo todo
  redux-todo exec add Learn Redux, add Buy milk, toggle 0
  redux-todo -group exec add a, add b, toggle 1, filter active
`)
}

// -------------- subcommand impls ----------------

// ParseSteps turns an exec script into actions. Ids for add steps come from
// ids, so the first todo is 0.
func ParseSteps(script string, ids *todo.IDAllocator) ([]redux.Action, error) {
	var actions []redux.Action
	for i, step := range strings.Split(script, ",") {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		verb, arg, _ := strings.Cut(step, " ")
		arg = strings.TrimSpace(arg)
		switch verb {
		case "add":
			if arg == "" {
				return nil, fmt.Errorf("step %d: add: empty text", i+1)
			}
			actions = append(actions, todo.Add(ids, arg))
		case "toggle":
			id, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("step %d: toggle: not a number: %q", i+1, arg)
			}
			actions = append(actions, todo.Toggle(id))
		case "filter":
			f, err := todo.ParseFilter(arg)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			actions = append(actions, todo.Show(f))
		default:
			return nil, fmt.Errorf("step %d: unknown step %q", i+1, verb)
		}
	}
	return actions, nil
}

func doExec(script string, opt Options) int {
	var ids todo.IDAllocator
	actions, err := ParseSteps(script, &ids)
	if err != nil {
		ui.Fail("exec: " + err.Error())
		ui.Hint("Hint: run `redux-todo help` to see the step syntax")
		return 2
	}

	store := tui.NewTodoStore(opt.tui())
	var lines []string
	store.Subscribe(redux.ListenerFunc(func() {
		lines = render(store.GetState(), opt)
	}))
	for _, a := range actions {
		store.Dispatch(a)
	}
	if lines == nil {
		lines = render(store.GetState(), opt)
	}
	ui.Panel(lines)
	return 0
}

// -------------- rendering helpers --------------

func render(s todo.State, opt Options) []string {
	t := ui.Current()
	d, p := s.Todos.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Total"), len(s.Todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, ui.C(t.Muted, "Show: "+s.VisibilityFilter.String()))
	lines = append(lines, "")

	visible := todo.Visible(s.Todos, s.VisibilityFilter)
	if opt.Group {
		lines = append(lines, groupLines(visible)...)
	} else {
		lines = append(lines, flatLines(visible)...)
	}
	return lines
}

// maxTextWidth caps a todo's text in exec output, in terminal cells.
const maxTextWidth = 80

// itemLine renders one todo: id, checkbox, then the text cut to
// maxTextWidth cells.
func itemLine(it *todo.Item) string {
	t := ui.Current()
	text := ansi.Truncate(it.Text, maxTextWidth, "...")
	box := ui.C(t.Muted, t.BoxUnchecked)
	if it.Completed {
		box = ui.C(t.Success, t.BoxChecked)
		text = ui.Strike(text)
	}
	return ui.Dim(fmt.Sprintf("%2d.", it.ID)) + " " + box + " " + text
}

// listLines renders items one per line, or empty when there are none.
func listLines(items todo.List, empty string) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, empty)}
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = itemLine(it)
	}
	return out
}

func flatLines(items todo.List) []string { return listLines(items, "no items") }

// groupLines splits items into the active and completed sections, reusing
// the visibility filters.
func groupLines(items todo.List) []string {
	accent := ui.Current().Accent
	lines := []string{ui.C(accent, "Pending")}
	lines = append(lines, listLines(todo.Visible(items, todo.ShowActive), "(none)")...)
	lines = append(lines, "", ui.C(accent, "Done"))
	return append(lines, listLines(todo.Visible(items, todo.ShowCompleted), "(none)")...)
}
