package jsonparser

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingField = "missing_field"
	CodeInvalidField = "invalid_field"
)

// Issue represents a single field failure.
type Issue struct {
	Key     string // Field key the issue refers to; context only, not a path.
	Code    string // One of the codes listed above.
	Message string // Canonical free text, e.g. `missing id (Id - Int, > 0)`.
}

// Issues is an ordered collection of field failures that implements error.
// Entries from independently evaluated fields appear in declaration order.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Combine appends other's entries after iss's, preserving order and
// duplicates. It satisfies result.Combinable and must stay associative.
func (iss Issues) Combine(other Issues) Issues {
	if len(iss) == 0 {
		return other
	}
	if len(other) == 0 {
		return iss
	}
	out := make(Issues, 0, len(iss)+len(other))
	out = append(out, iss...)
	out = append(out, other...)
	return out
}

// Messages returns the issue messages in order.
func (iss Issues) Messages() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func missingField(key, description string) Issue {
	return Issue{Key: key, Code: CodeMissingField, Message: fmt.Sprintf("missing %s (%s)", key, description)}
}

func invalidField(key, description string) Issue {
	return Issue{Key: key, Code: CodeInvalidField, Message: fmt.Sprintf("invalid %s (%s)", key, description)}
}
