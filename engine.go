package kvmerge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/kvmerge/i18n"
)

// Engine validates records against a per-key schema and merges records by
// folding each key's merge function across them. The registry inside is
// immutable after New, so a single Engine is safe for concurrent use as long
// as the supplied strategy functions are.
type Engine struct {
	reg *strategyRegistry
}

// New builds an Engine from the declared strategies. Declaration order is
// significant: it fixes merge fold order and required-key reporting order.
func New(strategies ...Strategy) (*Engine, error) {
	reg, err := newRegistry(strategies)
	if err != nil {
		return nil, err
	}
	return &Engine{reg: reg}, nil
}

// MustNew is like New but panics on error.
func MustNew(strategies ...Strategy) *Engine {
	e, err := New(strategies...)
	if err != nil {
		panic(err)
	}
	return e
}

// HasKey reports whether the schema declares a strategy for key.
func (e *Engine) HasKey(key string) bool { return e.reg.hasKey(key) }

// Keys returns the schema's keys in declaration order.
func (e *Engine) Keys() []string {
	out := make([]string, len(e.reg.keys))
	copy(out, e.reg.keys)
	return out
}

// RequiredKeys returns the keys declared required, in declaration order.
func (e *Engine) RequiredKeys() []string {
	out := make([]string, len(e.reg.requiredKeys))
	copy(out, e.reg.requiredKeys)
	return out
}

// Validate checks a single record against the schema and fails fast on the
// first violation. Checks run in a fixed order: the record's own keys first
// (unknown key, then declared dependencies, then the per-key validate), and
// only after all present keys pass, the schema's required keys. Record keys
// are visited in sorted order so the selected violation is deterministic.
func (e *Engine) Validate(rec Record) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		st, ok := e.reg.get(k)
		if !ok {
			return Issues{{
				Path:    "/" + k,
				Code:    CodeUnknownKey,
				Message: i18n.T(CodeUnknownKey, nil),
				Hint:    fmt.Sprintf("no strategy registered for key %q", k),
				Params:  map[string]any{"key": k},
			}}
		}
		for _, dep := range st.requires {
			if _, present := rec[dep]; !present {
				return Issues{{
					Path:    "/" + k,
					Code:    CodeMissingDependency,
					Message: i18n.T(CodeMissingDependency, nil),
					Hint:    fmt.Sprintf("key %q requires all of [%s]", k, strings.Join(st.requires, ", ")),
					Params:  map[string]any{"key": k, "requires": st.requires},
				}}
			}
		}
		if err := st.validate(rec[k]); err != nil {
			return Issues{{
				Path:    "/" + k,
				Code:    CodeKeyValidation,
				Message: k + ": " + err.Error(),
				Cause:   err,
				Params:  map[string]any{"key": k},
			}}
		}
	}
	for _, k := range e.reg.requiredKeys {
		if _, present := rec[k]; !present {
			return Issues{{
				Path:    "/" + k,
				Code:    CodeMissingRequiredKey,
				Message: i18n.T(CodeMissingRequiredKey, nil),
				Hint:    fmt.Sprintf("key %q is required", k),
				Params:  map[string]any{"key": k},
			}}
		}
	}
	return nil
}

// Merge folds two or more records into a fresh one, left to right. Every
// input is validated up front; a validation failure propagates unchanged and
// no partial result is produced. For each later record, each schema key
// present on either side has its merge function invoked with the accumulator
// value and the record value, with Absent standing in for a missing side.
// A merge result of Absent drops the key from the accumulator.
func (e *Engine) Merge(records ...Record) (Record, error) {
	if len(records) < 2 {
		return nil, Issues{{
			Path:    "/",
			Code:    CodeArity,
			Message: i18n.T(CodeArity, nil),
			Hint:    fmt.Sprintf("merge needs at least two records, got %d", len(records)),
		}}
	}
	for i, rec := range records {
		if rec == nil {
			return nil, Issues{{
				Path:    "/",
				Code:    CodeInvalidType,
				Message: i18n.T(CodeInvalidType, nil),
				Hint:    fmt.Sprintf("record %d is nil, expected a key/value record", i),
			}}
		}
	}
	for _, rec := range records {
		if err := e.Validate(rec); err != nil {
			return nil, err
		}
	}

	acc := make(Record, len(e.reg.keys))
	for _, k := range e.reg.keys {
		if v, ok := records[0][k]; ok {
			acc[k] = v
		}
	}
	for _, rec := range records[1:] {
		for _, k := range e.reg.keys {
			av, aok := acc[k]
			bv, bok := rec[k]
			if !aok && !bok {
				continue
			}
			if !aok {
				av = Absent
			}
			if !bok {
				bv = Absent
			}
			st, _ := e.reg.get(k)
			merged, err := st.merge(av, bv)
			if err != nil {
				return nil, Issues{{
					Path:    "/" + k,
					Code:    CodeKeyMerge,
					Message: k + ": " + err.Error(),
					Cause:   err,
					Params:  map[string]any{"key": k},
				}}
			}
			if IsAbsent(merged) {
				delete(acc, k)
				continue
			}
			acc[k] = merged
		}
	}
	return acc, nil
}
