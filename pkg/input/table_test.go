package input

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/applet/pkg/graphics"
)

func TestDefaultTableFixedRows(t *testing.T) {
	tests := []struct {
		code Code
		want Action
	}{
		{403, Action{"colorKey:red", graphics.ColorRed}},
		{404, Action{"colorKey:green", graphics.ColorGreen}},
		{405, Action{"colorKey:yellow", graphics.ColorYellow}},
		{406, Action{"colorKey:blue", graphics.ColorBlue}},
		{27, Action{"exit", graphics.ColorBlack}},
		{10, Action{"confirm", graphics.ColorBlack}},
		{151, Action{"asterisk", graphics.ColorBlack}},
		{520, Action{"hash", graphics.ColorBlack}},
		{38, Action{"navigate:up", graphics.ColorBlack}},
		{40, Action{"navigate:down", graphics.ColorBlack}},
		{37, Action{"navigate:left", graphics.ColorBlack}},
		{39, Action{"navigate:right", graphics.ColorBlack}},
		{116, Action{"menu", graphics.ColorLightGreen}},
		{117, Action{"info", graphics.ColorLightBlue}},
		{999, Action{"unhandled", graphics.ColorBlack}},
		{47, Action{"unhandled", graphics.ColorBlack}},
		{58, Action{"unhandled", graphics.ColorBlack}},
		{0, Action{"unhandled", graphics.ColorBlack}},
		{-1, Action{"unhandled", graphics.ColorBlack}},
	}
	table := DefaultTable()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, table.Lookup(tt.code)); diff != "" {
				t.Errorf("Lookup(%d) mismatch (-want +got):\n%s", tt.code, diff)
			}
		})
	}
}

func TestDefaultTableDigits(t *testing.T) {
	table := DefaultTable()
	for code := Code(48); code <= 57; code++ {
		want := Label(fmt.Sprintf("digit:%d", code-48))
		got := table.Lookup(code)
		if got.Label != want {
			t.Errorf("Lookup(%d).Label = %q, want %q", code, got.Label, want)
		}
		if got.Highlight != graphics.ColorBlack {
			t.Errorf("Lookup(%d).Highlight = %v, want black", code, got.Highlight)
		}
	}
}

func TestDefaultTableIsTotal(t *testing.T) {
	table := DefaultTable()
	for code := Code(-1024); code <= 2048; code++ {
		if got := table.Lookup(code); got.Label == "" {
			t.Fatalf("Lookup(%d) returned an empty label", code)
		}
	}
}

func TestTableEntriesAreCopies(t *testing.T) {
	table := DefaultTable()
	entries := table.Entries()
	if len(entries) != 15 {
		t.Fatalf("len(Entries()) = %d, want 15", len(entries))
	}
	entries[1].Label = "tampered"
	if got := table.Lookup(CodeRed).Label; got != LabelColorRed {
		t.Errorf("Lookup(red) after mutating Entries() = %q, want %q", got, LabelColorRed)
	}
}

func TestTablePrecedence(t *testing.T) {
	table := NewTable(
		Action{Label: "none"},
		Entry{Low: 5, High: 5, Label: "five"},
		Entry{Low: 0, High: 9, Label: "n"},
		Entry{Low: 5, High: 5, Label: "shadowed"},
	)
	tests := []struct {
		code Code
		want Label
	}{
		{5, "five"},
		{4, "n:4"},
		{9, "n:9"},
		{10, "none"},
	}
	for _, tt := range tests {
		if got := table.Lookup(tt.code).Label; got != tt.want {
			t.Errorf("Lookup(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestLabelParts(t *testing.T) {
	tests := []struct {
		label    Label
		kind     string
		argument string
	}{
		{"digit:3", "digit", "3"},
		{LabelColorBlue, "colorKey", "blue"},
		{LabelConfirm, "confirm", ""},
		{LabelUnhandled, "unhandled", ""},
	}
	for _, tt := range tests {
		if got := tt.label.Kind(); got != tt.kind {
			t.Errorf("%q.Kind() = %q, want %q", tt.label, got, tt.kind)
		}
		if got := tt.label.Arg(); got != tt.argument {
			t.Errorf("%q.Arg() = %q, want %q", tt.label, got, tt.argument)
		}
	}
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    Code
		wantErr bool
	}{
		{"403", CodeRed, false},
		{"red", CodeRed, false},
		{" Up ", CodeUp, false},
		{"d7", 55, false},
		{"#", CodeHash, false},
		{"999", 999, false},
		{"", 0, true},
		{"power", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
