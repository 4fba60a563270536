package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/applet/pkg/input"
)

func TestParseScript(t *testing.T) {
	got, err := ParseScript("load, start key:red\tkey:38\nPAUSE kill")
	if err != nil {
		t.Fatalf("ParseScript() = %v", err)
	}
	want := []Step{
		{Op: OpLoad},
		{Op: OpStart},
		{Op: OpKey, Code: input.CodeRed},
		{Op: OpKey, Code: input.CodeUp},
		{Op: OpPause},
		{Op: OpKill},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScript() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseScriptCRLF(t *testing.T) {
	got, err := ParseScript("load\r\nstart\r\nkey:d3\r\n")
	if err != nil {
		t.Fatalf("ParseScript() = %v", err)
	}
	want := []Step{{Op: OpLoad}, {Op: OpStart}, {Op: OpKey, Code: input.Code0 + 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseScript() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStepErrors(t *testing.T) {
	for _, in := range []string{"jump", "key:", "key:power", "load:now"} {
		if _, err := ParseStep(in); err == nil {
			t.Errorf("ParseStep(%q) succeeded, want error", in)
		}
	}
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Op: OpLoad}, "load"},
		{Step{Op: OpKey, Code: 403}, "key:403"},
	}
	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseEmptyScript(t *testing.T) {
	steps, err := ParseScript("  ")
	if err != nil || len(steps) != 0 {
		t.Errorf("ParseScript(blank) = %v, %v", steps, err)
	}
}
