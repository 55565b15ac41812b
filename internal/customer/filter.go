package customer

import (
	"fmt"
	"strings"
)

// FilterMode selects which record fields a search text is matched against.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterName
	FilterEmail
)

func (m FilterMode) String() string {
	switch m {
	case FilterAll:
		return "all"
	case FilterName:
		return "name"
	case FilterEmail:
		return "email"
	}
	return fmt.Sprintf("FilterMode(%d)", int(m))
}

// ParseFilterMode accepts the lower-case names printed by String.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return FilterAll, nil
	case "name":
		return FilterName, nil
	case "email":
		return FilterEmail, nil
	}
	return FilterAll, fmt.Errorf("unknown filter mode %q", s)
}

// FilterSpec is the (mode, search text) pair a stream is opened with.
type FilterSpec struct {
	Mode FilterMode
	Text string
}

// Normalized returns f with its text trimmed and case-folded.
func (f FilterSpec) Normalized() FilterSpec {
	return FilterSpec{Mode: f.Mode, Text: Normalize(f.Text)}
}

// Match applies the predicate to r. f does not need to be normalized.
func (f FilterSpec) Match(r Record) bool {
	return Matches(f.Mode, Normalize(f.Text), r)
}

// Normalize trims and case-folds a search text.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Matches reports whether r passes the filter. text must already be
// normalized; an empty text matches every record regardless of mode.
func Matches(mode FilterMode, text string, r Record) bool {
	if text == "" {
		return true
	}

	name := strings.Contains(strings.ToLower(r.FullName()), text)
	email := strings.Contains(strings.ToLower(r.Email), text)

	switch mode {
	case FilterName:
		return name
	case FilterEmail:
		return email
	default:
		return name || email
	}
}
