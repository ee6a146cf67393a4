// Package pkg provides the core libraries for framegen structural model generation.
//
// # Overview
//
// Framegen synthesizes structural analysis models parametrically: trusses,
// rigid frames, multi-story grids, and meshed plate assemblies. The pkg
// directory is organized into four main areas:
//
//  1. [topology] - Domain logic (parameter validation, geometry synthesis)
//  2. [model] - The structural model data type and its invariants
//  3. [export] / [render] - Output surfaces (STAAD input text, schematics)
//  4. [cache], [store], [httpapi] - Infrastructure (caching, persistence, API)
//
// # Architecture
//
// The typical data flow through framegen:
//
//	Parameters (flags, presets, API request)
//	         ↓
//	    [topology] package (validate + synthesize geometry)
//	         ↓
//	    [model] package (joints, members, plates, landmarks)
//	         ↓
//	    [io] / [export/staad] / [render] packages
//	         ↓
//	    JSON / STAAD / SVG / PDF / PNG / terminal output
//
// # Quick Start
//
// Generate a truss and export it for analysis:
//
//	import (
//	    "github.com/mtkb13/framegen/pkg/export/staad"
//	    "github.com/mtkb13/framegen/pkg/topology"
//	)
//
//	// 1. Describe the structure
//	p := topology.Params{Kind: topology.KindPratt, Span: 24, Height: 3, Panels: 8}
//
//	// 2. Synthesize the model
//	m, _ := topology.Generate(p)
//
//	// 3. Export STAAD input text
//	_ = staad.Export(m, "truss.std", staad.Options{})
//
// # Main Packages
//
// ## Core Domain Logic
//
// [topology] - Parametric generators for eight topology kinds: warren, pratt,
// howe, and bowstring trusses, portal frames, gabled warehouse frames,
// multi-story grids, and wall/slab plate meshes. Every generator validates
// its parameters, predicts exact element counts, and produces deterministic
// output.
//
// [model] - The shared structural model: joints with coordinates, members
// with role labels, quadrilateral plates, and named landmark joint groups.
// Validation enforces contiguous identifiers, finite coordinates, and
// referential integrity; connectivity checking detects floating subassemblies.
//
// [errors] - Structured error codes shared by the CLI and the HTTP API.
//
// ## Output Surfaces
//
// [io] - Model JSON serialization with strict field checking on import.
//
// [export/staad] - STAAD.Pro input text: joint coordinates, member and
// element incidences, role groups, and support assignments.
//
// [render/schematic] - Graphviz wireframe schematics with pinned cabinet
// projection coordinates, rendered to DOT, SVG, PDF, or PNG.
//
// [render/elevation] - Terminal elevation drawings for quick previews.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of generated models keyed by parameter
// hash. FileCache for the CLI, RedisCache for the API, NullCache to disable.
//
// [store] - Saved model persistence. MemoryStore for tests and default serving,
// MongoStore for durable storage.
//
// [httpapi] - The HTTP preview API: generate on demand, save, list, fetch,
// render, and delete models.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/topology/...     # Specific package
//	go test -run Example           # Examples only
//
// [topology]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/topology
// [model]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/model
// [errors]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/errors
// [io]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/io
// [export/staad]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/export/staad
// [render]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/render
// [render/schematic]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/render/schematic
// [render/elevation]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/render/elevation
// [cache]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/cache
// [store]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/store
// [httpapi]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/httpapi
// [export]: https://pkg.go.dev/github.com/mtkb13/framegen/pkg/export/staad
package pkg
