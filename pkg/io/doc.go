// Package io provides JSON import and export for structural models.
//
// # JSON Format
//
// A model serializes as one JSON object with the topology kind, flat
// arrays of joints and members, and optional plates and landmarks:
//
//	{
//	  "kind": "portal",
//	  "joints": [
//	    {"id": 1, "x": 0, "y": 0, "z": 0},
//	    {"id": 2, "x": 0, "y": 5, "z": 0}
//	  ],
//	  "members": [
//	    {"id": 1, "start": 1, "end": 2, "role": "column"}
//	  ],
//	  "landmarks": {"base": [1], "supports": [1]}
//	}
//
// Joint, member, and plate ids are dense 1-based integers in independent
// numbering spaces; landmarks map names to joint ids. The format is the
// exact JSON projection of [model.Model], so export, re-import, and
// re-export produce identical documents.
//
// # Import
//
// Use [ImportJSON] to read a model from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	m, err := io.ImportJSON("truss.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions run [model.Model.Validate] after decoding, so a
// successfully imported model holds the same invariants a freshly
// generated one does.
//
// # Export
//
// Use [ExportJSON] to write a model to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(m, "truss.json")
//
// [model.Model]: github.com/mtkb13/framegen/pkg/model.Model
package io
