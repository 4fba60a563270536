package host

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-drift/applet/pkg/input"
)

// Op is a host runtime request.
type Op string

const (
	OpLoad    Op = "load"
	OpStart   Op = "start"
	OpPause   Op = "pause"
	OpDestroy Op = "destroy"
	// OpKill is a forced destroy.
	OpKill Op = "kill"
	OpKey  Op = "key"
)

// Step is one entry of a host script.
type Step struct {
	Op   Op
	Code input.Code
}

func (s Step) String() string {
	if s.Op == OpKey {
		return fmt.Sprintf("key:%d", s.Code)
	}
	return string(s.Op)
}

// ParseScript parses whitespace or comma separated steps, for example
// "load start key:red key:403 pause start destroy".
func ParseScript(script string) ([]Step, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	steps := make([]Step, 0, len(fields))
	for _, f := range fields {
		step, err := ParseStep(f)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// ParseStep parses a single step.
func ParseStep(s string) (Step, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	op := Op(strings.ToLower(name))
	switch op {
	case OpLoad, OpStart, OpPause, OpDestroy, OpKill:
		if hasArg {
			return Step{}, fmt.Errorf("host: step %q takes no argument", s)
		}
		return Step{Op: op}, nil
	case OpKey:
		code, err := input.ParseCode(arg)
		if err != nil {
			return Step{}, fmt.Errorf("host: step %q: %w", s, err)
		}
		return Step{Op: OpKey, Code: code}, nil
	default:
		return Step{}, fmt.Errorf("host: unknown step %q", s)
	}
}
