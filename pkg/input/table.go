package input

import (
	"strconv"
	"strings"

	"github.com/go-drift/applet/pkg/graphics"
)

// Label is the symbolic classification of a Code, such as "digit:3",
// "colorKey:red" or "unhandled".
type Label string

// Labels for codes with a single fixed meaning.
const (
	LabelExit          Label = "exit"
	LabelConfirm       Label = "confirm"
	LabelAsterisk      Label = "asterisk"
	LabelHash          Label = "hash"
	LabelNavigateUp    Label = "navigate:up"
	LabelNavigateDown  Label = "navigate:down"
	LabelNavigateLeft  Label = "navigate:left"
	LabelNavigateRight Label = "navigate:right"
	LabelColorRed      Label = "colorKey:red"
	LabelColorGreen    Label = "colorKey:green"
	LabelColorYellow   Label = "colorKey:yellow"
	LabelColorBlue     Label = "colorKey:blue"
	LabelMenu          Label = "menu"
	LabelInfo          Label = "info"
	LabelUnhandled     Label = "unhandled"
)

// Kind returns the part of the label before the colon ("digit" for "digit:3").
func (l Label) Kind() string {
	kind, _, _ := strings.Cut(string(l), ":")
	return kind
}

// Arg returns the part of the label after the colon, or "" when there is none.
func (l Label) Arg() string {
	_, arg, _ := strings.Cut(string(l), ":")
	return arg
}

// Action is the result of resolving a Code: its label and the highlight color
// consumers use for visual acknowledgment.
type Action struct {
	Label     Label
	Highlight graphics.Color
}

// Entry is one row of a Table. Single-code rows have Low == High and resolve
// to Label as is. Range rows resolve to "<Label>:<code-Low>".
type Entry struct {
	Low, High Code
	Label     Label
	Highlight graphics.Color
}

// IsRange reports whether the entry covers more than one code.
func (e Entry) IsRange() bool {
	return e.High != e.Low
}

func (e Entry) contains(code Code) bool {
	return code >= e.Low && code <= e.High
}

func (e Entry) resolve(code Code) Action {
	if !e.IsRange() {
		return Action{Label: e.Label, Highlight: e.Highlight}
	}
	label := Label(string(e.Label) + ":" + strconv.Itoa(int(code-e.Low)))
	return Action{Label: label, Highlight: e.Highlight}
}

// Table is an immutable mapping from Code to Action with a catch-all default,
// so Lookup is defined for every code. A Table is safe for concurrent use.
type Table struct {
	entries  []Entry
	singles  map[Code]int
	fallback Action
}

// NewTable builds a table from rows and a fallback action. Earlier rows take
// precedence when ranges overlap. The rows are copied.
func NewTable(fallback Action, rows ...Entry) *Table {
	t := &Table{
		entries:  append([]Entry(nil), rows...),
		singles:  make(map[Code]int, len(rows)),
		fallback: fallback,
	}
	for i, e := range t.entries {
		if e.IsRange() {
			continue
		}
		if _, dup := t.singles[e.Low]; !dup {
			t.singles[e.Low] = i
		}
	}
	return t
}

// Lookup resolves code. It never fails: unknown codes resolve to the fallback.
func (t *Table) Lookup(code Code) Action {
	best := -1
	if i, ok := t.singles[code]; ok {
		best = i
	}
	for i, e := range t.entries {
		if best >= 0 && i >= best {
			break
		}
		if e.IsRange() && e.contains(code) {
			best = i
			break
		}
	}
	if best < 0 {
		return t.fallback
	}
	return t.entries[best].resolve(code)
}

// Entries returns a copy of the table rows in precedence order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Fallback returns the action for codes no row covers.
func (t *Table) Fallback() Action {
	return t.fallback
}

var defaultTable = NewTable(
	Action{Label: LabelUnhandled, Highlight: graphics.ColorBlack},
	Entry{Low: Code0, High: Code9, Label: "digit", Highlight: graphics.ColorBlack},
	Entry{Low: CodeRed, High: CodeRed, Label: LabelColorRed, Highlight: graphics.ColorRed},
	Entry{Low: CodeGreen, High: CodeGreen, Label: LabelColorGreen, Highlight: graphics.ColorGreen},
	Entry{Low: CodeYellow, High: CodeYellow, Label: LabelColorYellow, Highlight: graphics.ColorYellow},
	Entry{Low: CodeBlue, High: CodeBlue, Label: LabelColorBlue, Highlight: graphics.ColorBlue},
	Entry{Low: CodeEscape, High: CodeEscape, Label: LabelExit, Highlight: graphics.ColorBlack},
	Entry{Low: CodeEnter, High: CodeEnter, Label: LabelConfirm, Highlight: graphics.ColorBlack},
	Entry{Low: CodeAsterisk, High: CodeAsterisk, Label: LabelAsterisk, Highlight: graphics.ColorBlack},
	Entry{Low: CodeHash, High: CodeHash, Label: LabelHash, Highlight: graphics.ColorBlack},
	Entry{Low: CodeUp, High: CodeUp, Label: LabelNavigateUp, Highlight: graphics.ColorBlack},
	Entry{Low: CodeDown, High: CodeDown, Label: LabelNavigateDown, Highlight: graphics.ColorBlack},
	Entry{Low: CodeLeft, High: CodeLeft, Label: LabelNavigateLeft, Highlight: graphics.ColorBlack},
	Entry{Low: CodeRight, High: CodeRight, Label: LabelNavigateRight, Highlight: graphics.ColorBlack},
	Entry{Low: CodeMenu, High: CodeMenu, Label: LabelMenu, Highlight: graphics.ColorLightGreen},
	Entry{Low: CodeInfo, High: CodeInfo, Label: LabelInfo, Highlight: graphics.ColorLightBlue},
)

// DefaultTable returns the process-wide remote-control dispatch table.
func DefaultTable() *Table {
	return defaultTable
}
