// Package dsl provides a fluent builder for kvmerge schemas.
//
// Overview
//   - Builder API: declare per-key strategies in order with Schema()/Key()/PresetKey(),
//     then chain Required()/Requires()/Validate() and finish with Build()/MustBuild().
//   - Declaration order is preserved and fixes the engine's merge fold order
//     and required-key reporting order.
//   - PresetKey names an entry in the kvmerge preset table ("overwrite",
//     "sum", "append", ...); Key supplies a custom merge/validate pair.
//
// Example (quickstart)
//
//	eng := dsl.Schema().
//	    PresetKey("downloads", "sum").Required().
//	    PresetKey("tags", "append").
//	    Key("time",
//	        func(a, b any) (any, error) { return b, nil },
//	        func(v any) error { return nil },
//	    ).Requires("date").
//	    PresetKey("date", "overwrite").
//	    MustBuild()
//
//	out, err := eng.Merge(week1, week2)
package dsl
