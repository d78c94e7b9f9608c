package kvmerge

import (
	"fmt"

	"github.com/reoring/kvmerge/i18n"
)

// strategy is the resolved, construction-time form of a Strategy: preset
// names are already exchanged for concrete functions, so Validate and Merge
// never dispatch on strings.
type strategy struct {
	key      string
	required bool
	requires []string
	merge    MergeFunc
	validate ValidateFunc
}

// strategyRegistry holds the key->strategy bindings. It is built once by New
// and read-only afterwards; keys preserves declaration order because merge
// output and required-key reporting follow it.
type strategyRegistry struct {
	byKey        map[string]*strategy
	keys         []string
	requiredKeys []string
}

func definitionIssue(path, hint string) Issues {
	return Issues{{Path: path, Code: CodeSchemaDefinition, Message: i18n.T(CodeSchemaDefinition, nil), Hint: hint}}
}

// newRegistry resolves and indexes the declared strategies. All failure modes
// surface as schema_definition issues; nothing is deferred to call time.
func newRegistry(defs []Strategy) (*strategyRegistry, error) {
	if len(defs) == 0 {
		return nil, definitionIssue("/", "at least one strategy is required")
	}
	reg := &strategyRegistry{
		byKey: make(map[string]*strategy, len(defs)),
		keys:  make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if def.Key == "" {
			return nil, definitionIssue("/", "strategy key must not be empty")
		}
		path := "/" + def.Key
		if _, dup := reg.byKey[def.Key]; dup {
			return nil, definitionIssue(path, fmt.Sprintf("duplicate strategy for key %q", def.Key))
		}
		st := &strategy{
			key:      def.Key,
			required: def.Required,
			requires: def.Requires,
			merge:    def.Merge,
			validate: def.Validate,
		}
		switch {
		case def.Merge != nil && def.Preset != "":
			return nil, definitionIssue(path, fmt.Sprintf("key %q sets both a merge function and preset %q", def.Key, def.Preset))
		case def.Merge != nil:
			if def.Validate == nil {
				return nil, definitionIssue(path, fmt.Sprintf("key %q has a custom merge but no validate function", def.Key))
			}
		case def.Preset != "":
			p, ok := LookupPreset(def.Preset)
			if !ok {
				return nil, definitionIssue(path, fmt.Sprintf("key %q references unknown preset %q", def.Key, def.Preset))
			}
			st.merge = p.Merge
			if st.validate == nil {
				st.validate = p.Validate
			}
		default:
			return nil, definitionIssue(path, fmt.Sprintf("key %q has neither a merge function nor a preset", def.Key))
		}
		reg.byKey[def.Key] = st
		reg.keys = append(reg.keys, def.Key)
		if def.Required {
			reg.requiredKeys = append(reg.requiredKeys, def.Key)
		}
	}
	return reg, nil
}

func (r *strategyRegistry) get(key string) (*strategy, bool) {
	st, ok := r.byKey[key]
	return st, ok
}

func (r *strategyRegistry) hasKey(key string) bool {
	_, ok := r.byKey[key]
	return ok
}
