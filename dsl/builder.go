package dsl

import (
	kvmerge "github.com/reoring/kvmerge"
)

type schemaBuilder struct {
	strategies []kvmerge.Strategy
}

type keyStep struct {
	b   *schemaBuilder
	idx int
}

// Schema creates a new schema builder. Keys are declared in call order, which
// fixes merge fold order.
func Schema() *schemaBuilder {
	return &schemaBuilder{}
}

// Key registers a key with a custom merge and validate pair.
func (b *schemaBuilder) Key(name string, merge kvmerge.MergeFunc, validate kvmerge.ValidateFunc) *keyStep {
	b.strategies = append(b.strategies, kvmerge.Strategy{Key: name, Merge: merge, Validate: validate})
	return &keyStep{b: b, idx: len(b.strategies) - 1}
}

// PresetKey registers a key backed by a named preset.
func (b *schemaBuilder) PresetKey(name, preset string) *keyStep {
	b.strategies = append(b.strategies, kvmerge.Strategy{Key: name, Preset: preset})
	return &keyStep{b: b, idx: len(b.strategies) - 1}
}

// Required marks the current key as required and returns the builder.
func (s *keyStep) Required() *schemaBuilder {
	s.current().Required = true
	return s.b
}

// Requires declares keys that must accompany the current key.
func (s *keyStep) Requires(names ...string) *keyStep {
	cur := s.current()
	cur.Requires = append(cur.Requires, names...)
	return s
}

// Validate overrides the validate function for the current key. Useful for
// tightening a preset-backed key.
func (s *keyStep) Validate(fn kvmerge.ValidateFunc) *keyStep {
	s.current().Validate = fn
	return s
}

func (s *keyStep) current() *kvmerge.Strategy {
	return &s.b.strategies[s.idx]
}

func (s *keyStep) Key(name string, merge kvmerge.MergeFunc, validate kvmerge.ValidateFunc) *keyStep {
	return s.b.Key(name, merge, validate)
}
func (s *keyStep) PresetKey(name, preset string) *keyStep { return s.b.PresetKey(name, preset) }
func (s *keyStep) Require(names ...string) *schemaBuilder { return s.b.Require(names...) }
func (s *keyStep) Build() (*kvmerge.Engine, error)        { return s.b.Build() }
func (s *keyStep) MustBuild() *kvmerge.Engine             { return s.b.MustBuild() }

// Require marks one or more already-declared keys as required.
func (b *schemaBuilder) Require(names ...string) *schemaBuilder {
	for _, n := range names {
		for i := range b.strategies {
			if b.strategies[i].Key == n {
				b.strategies[i].Required = true
			}
		}
	}
	return b
}

// Build validates the declared strategies and returns an Engine.
func (b *schemaBuilder) Build() (*kvmerge.Engine, error) {
	return kvmerge.New(b.strategies...)
}

// MustBuild is like Build but panics on error.
func (b *schemaBuilder) MustBuild() *kvmerge.Engine {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}
