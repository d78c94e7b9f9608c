package kvmerge

// Package kvmerge provides:
//
// - A declarative per-key schema for validating records (unknown keys, co-required keys, required keys, per-key validate)
// - An ordered left-to-right merge fold driven by per-key merge functions, with Absent-based key omission
// - A stable error model via Issues (slash path, code, message, cause)
// - A named preset table for common merge strategies (overwrite, sum, shallow-combine, ...)
//
// Design policy:
// - Keep only public APIs in the root package; strategies resolve preset names at construction time.
// - Place the fluent builder under dsl/ and file-based schema loading under schemafile/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	eng, err := kvmerge.New(
//		kvmerge.Strategy{Key: "downloads", Required: true, Preset: "sum"},
//		kvmerge.Strategy{Key: "tags", Preset: "append"},
//	)
//	err = eng.Validate(rec)
//	out, err := eng.Merge(rec1, rec2)
