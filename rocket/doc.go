// Package rocket models staged rockets built from a catalog of stock parts
// and scores them by total delta-v.
//
// # Reading Guide
//
// Start with these three files to understand the evaluation core:
//   - part.go: the Part record, categories, and sequence mass helpers
//   - stage.go: the Stage record and SplitStages, which cuts a part
//     sequence into burn groups at decouplers
//   - evaluator.go: per-stage physics (Tsiolkovsky delta-v, thrust-to-weight,
//     burn time) and whole-rocket aggregation
//
// # Architecture
//
// The rocket package owns the data model and closed-form physics;
// alternative flight models and the search loop live in sub-packages:
//   - rocket/ascent/: numerical vertical-ascent integration through the
//     atmosphere (Runge-Kutta-Fehlberg)
//   - rocket/search/: candidate sources (mutation, random, exhaustive) and
//     the concurrent search driver
//
// Sub-packages register their implementations via init() functions that set
// package-level factory variables (NewVerticalAscentFunc).
//
// # Key Types
//
// The extension points are small:
//   - AscentModel: burnout altitude/velocity for one stage burn
//   - Constraints: viability limits applied to every evaluated candidate
//   - Catalog: validated, immutable part set, built-in or loaded from YAML
//
// Reports are written with the fixed-width writers in report.go; everything
// else logs through logrus.
package rocket
