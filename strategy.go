package kvmerge

// Record is a caller-owned mapping of string keys to arbitrary values. The
// engine only reads records passed to Validate and never mutates the inputs
// of Merge; merged output is always a freshly allocated Record.
type Record = map[string]any

// MergeFunc combines two values for the same key, in left-to-right positional
// order. Either operand may be the Absent sentinel when the corresponding
// record does not carry the key. Returning Absent omits the key from the
// merged output.
type MergeFunc func(a, b any) (any, error)

// ValidateFunc checks a single value for a key present in a record. A non-nil
// error rejects the record; the engine wraps it with the offending key.
type ValidateFunc func(v any) error

type absentValue struct{}

func (absentValue) String() string { return "<absent>" }

// Absent is the designated "no value" sentinel. It stands in for a missing
// operand in MergeFunc calls and, when returned from a MergeFunc, removes the
// key from the accumulator. nil is deliberately not used for this: nil is a
// legitimate record value.
var Absent any = absentValue{}

// IsAbsent reports whether v is the Absent sentinel.
func IsAbsent(v any) bool {
	_, ok := v.(absentValue)
	return ok
}

// Strategy declares how one key is validated and merged.
//
// Exactly one of Merge and Preset must be set. A Preset-backed strategy may
// omit Validate (the preset ships its own); a custom Merge must be paired
// with a Validate.
type Strategy struct {
	Key      string
	Required bool     // Key must be present in every validated record.
	Requires []string // Keys that must accompany this key whenever it is present.
	Merge    MergeFunc
	Preset   string // Name of a registered preset supplying merge (and default validate).
	Validate ValidateFunc
}
