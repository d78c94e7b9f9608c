package kvmerge

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeSchemaDefinition flags a malformed strategy set at construction time:
	// empty schema, missing merge/validate specification, or an unknown preset.
	CodeSchemaDefinition = "schema_definition"
	// CodeUnknownKey flags a record key with no registered strategy.
	CodeUnknownKey = "unknown_key"
	// CodeMissingDependency flags a present key whose declared co-requirements
	// are not all present in the record.
	CodeMissingDependency = "missing_dependency"
	// CodeMissingRequiredKey flags a schema-required key absent from a record.
	CodeMissingRequiredKey = "missing_required_key"
	// CodeKeyValidation wraps a rejection from a strategy's validate function.
	CodeKeyValidation = "key_validation"
	// CodeKeyMerge wraps a failure from a strategy's merge function.
	CodeKeyMerge = "key_merge"
	// CodeArity flags a Merge call with fewer than two records.
	CodeArity = "arity"
	// CodeInvalidType flags a non-record argument.
	CodeInvalidType = "invalid_type"
)

// Issue represents a single validation or merge failure.
type Issue struct {
	Path    string // Slash-prefixed key (for example: /downloads); "/" for call-level issues.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending values, etc.
	Cause   error  // Optional: underlying error from a user-supplied function.
	// Params carries structured parameters (e.g., {"key":"time", "requires":[...]})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error. The engine is
// fail-fast, so values it returns always hold exactly one Issue; the slice
// form keeps room for callers that aggregate across records themselves.
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
		it := iss[i]
		// e.g. unknown_key at /date: unknown key
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes issue causes to errors.Is/errors.As chains.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
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

// HasCode reports whether err carries an Issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
