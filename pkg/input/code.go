package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Code identifies a physical or logical key delivered by the host runtime.
type Code int

// Key codes that have a dedicated entry in the dispatch table.
const (
	CodeEnter    Code = 10
	CodeEscape   Code = 27
	CodeLeft     Code = 37
	CodeUp       Code = 38
	CodeRight    Code = 39
	CodeDown     Code = 40
	Code0        Code = 48
	Code9        Code = 57
	CodeMenu     Code = 116
	CodeInfo     Code = 117
	CodeAsterisk Code = 151
	CodeRed      Code = 403
	CodeGreen    Code = 404
	CodeYellow   Code = 405
	CodeBlue     Code = 406
	CodeHash     Code = 520
)

var codeNames = map[string]Code{
	"enter":    CodeEnter,
	"ok":       CodeEnter,
	"escape":   CodeEscape,
	"exit":     CodeEscape,
	"left":     CodeLeft,
	"up":       CodeUp,
	"right":    CodeRight,
	"down":     CodeDown,
	"menu":     CodeMenu,
	"info":     CodeInfo,
	"asterisk": CodeAsterisk,
	"*":        CodeAsterisk,
	"red":      CodeRed,
	"green":    CodeGreen,
	"yellow":   CodeYellow,
	"blue":     CodeBlue,
	"hash":     CodeHash,
	"#":        CodeHash,
}

// ParseCode accepts a decimal code ("403"), a key name ("red", "up") or a
// digit key written as "d0".."d9".
func ParseCode(s string) (Code, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("input: empty key code")
	}
	if c, ok := codeNames[s]; ok {
		return c, nil
	}
	if len(s) == 2 && s[0] == 'd' && s[1] >= '0' && s[1] <= '9' {
		return Code0 + Code(s[1]-'0'), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("input: unknown key %q", s)
	}
	return Code(n), nil
}
