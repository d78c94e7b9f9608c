package kvmerge

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Preset is a named merge strategy paired with the validate it ships with.
// A Strategy referencing a preset by name inherits both; an explicit
// Strategy.Validate overrides the preset's.
type Preset struct {
	Name     string
	Merge    MergeFunc
	Validate ValidateFunc
}

var (
	presetMu sync.RWMutex
	presets  = map[string]Preset{}
)

// ErrPresetExists is returned by RegisterPreset for duplicate names.
var ErrPresetExists = errors.New("preset exists")

// RegisterPreset adds a preset to the table. Callers typically register
// domain presets from an init function before building engines.
func RegisterPreset(p Preset) error {
	if p.Name == "" {
		return errors.New("preset name must not be empty")
	}
	if p.Merge == nil || p.Validate == nil {
		return fmt.Errorf("preset %q must supply both merge and validate", p.Name)
	}
	presetMu.Lock()
	defer presetMu.Unlock()
	if _, present := presets[p.Name]; present {
		return fmt.Errorf("%s: %w", p.Name, ErrPresetExists)
	}
	presets[p.Name] = p
	return nil
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	p, ok := presets[name]
	return p, ok
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	presetMu.RLock()
	defer presetMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func acceptAny(any) error { return nil }

func init() {
	for _, p := range []Preset{
		{
			// Keep the right-hand value; fall back to the left when the right
			// record does not carry the key.
			Name: "overwrite",
			Merge: func(a, b any) (any, error) {
				if IsAbsent(b) {
					return a, nil
				}
				return b, nil
			},
			Validate: acceptAny,
		},
		{
			Name: "keep-first",
			Merge: func(a, b any) (any, error) {
				if IsAbsent(a) {
					return b, nil
				}
				return a, nil
			},
			Validate: acceptAny,
		},
		{
			// Shallow union of two map values; the right side wins per key.
			Name: "shallow-combine",
			Merge: func(a, b any) (any, error) {
				out := map[string]any{}
				for _, side := range []any{a, b} {
					if IsAbsent(side) {
						continue
					}
					m, ok := side.(map[string]any)
					if !ok {
						return nil, fmt.Errorf("expected a map value, got %T", side)
					}
					for k, v := range m {
						out[k] = v
					}
				}
				return out, nil
			},
			Validate: func(v any) error {
				if _, ok := v.(map[string]any); !ok {
					return fmt.Errorf("expected a map value, got %T", v)
				}
				return nil
			},
		},
		{
			Name: "append",
			Merge: func(a, b any) (any, error) {
				var out []any
				for _, side := range []any{a, b} {
					if IsAbsent(side) {
						continue
					}
					s, ok := side.([]any)
					if !ok {
						return nil, fmt.Errorf("expected a slice value, got %T", side)
					}
					out = append(out, s...)
				}
				return out, nil
			},
			Validate: func(v any) error {
				if _, ok := v.([]any); !ok {
					return fmt.Errorf("expected a slice value, got %T", v)
				}
				return nil
			},
		},
		{
			Name: "sum",
			Merge: func(a, b any) (any, error) {
				if IsAbsent(a) {
					return b, nil
				}
				if IsAbsent(b) {
					return a, nil
				}
				if ai, aok := asInt(a); aok {
					if bi, bok := asInt(b); bok {
						return ai + bi, nil
					}
				}
				af, aok := asFloat(a)
				bf, bok := asFloat(b)
				if !aok || !bok {
					return nil, fmt.Errorf("expected numeric values, got %T and %T", a, b)
				}
				return af + bf, nil
			},
			Validate: func(v any) error {
				if _, ok := asFloat(v); !ok {
					return fmt.Errorf("expected a numeric value, got %T", v)
				}
				return nil
			},
		},
		{
			// Always yields Absent: the key never survives a merge.
			Name: "discard",
			Merge: func(a, b any) (any, error) {
				return Absent, nil
			},
			Validate: acceptAny,
		},
	} {
		if err := RegisterPreset(p); err != nil {
			panic(err)
		}
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
