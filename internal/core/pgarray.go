// AngelaMos | 2026
// pgarray.go

package core

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TextArray binds a Postgres text[] column through database/sql. The pgx
// stdlib driver hands arrays to Scan as their textual form, so a small
// codec is all that is needed.
type TextArray []string

func (a TextArray) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, s := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		b.WriteString(s)
		b.WriteByte('"')
	}
	b.WriteByte('}')

	return b.String(), nil
}

func (a *TextArray) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("scan text array: unsupported type %T", src)
	}

	elems, err := parseTextArray(raw)
	if err != nil {
		return fmt.Errorf("scan text array: %w", err)
	}

	*a = elems
	return nil
}

func (a TextArray) Contains(s string) bool {
	for _, e := range a {
		if e == s {
			return true
		}
	}
	return false
}

func parseTextArray(raw string) ([]string, error) {
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		return nil, fmt.Errorf("malformed array literal %q", raw)
	}

	body := raw[1 : len(raw)-1]
	if body == "" {
		return []string{}, nil
	}

	var (
		elems     []string
		current   strings.Builder
		inQuotes  bool
		wasQuoted bool
		escaped   bool
	)

	flush := func() {
		s := current.String()
		// Unquoted NULL is the SQL null; quoted "NULL" is the word.
		if s == "NULL" && !wasQuoted {
			s = ""
		}
		elems = append(elems, s)
		current.Reset()
		wasQuoted = false
	}

	for i := 0; i < len(body); i++ {
		c := body[i]

		switch {
		case escaped:
			current.WriteByte(c)
			escaped = false
		case c == '\\' && inQuotes:
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
			wasQuoted = true
		case c == ',' && !inQuotes:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	flush()

	if inQuotes {
		return nil, fmt.Errorf("unterminated quote in array literal %q", raw)
	}

	return elems, nil
}
