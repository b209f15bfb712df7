// SPDX-License-Identifier: MIT

// Package shape provides ready-made control meshes and loaders for mesh
// descriptions stored on disk.
//
// A Shape bundles everything a refinement run needs besides the Request
// depth: a topology.Descriptor (faces, positions, creases, corners and the
// boundary policy), an optional hierarchical edit list and the scheme the
// mesh was authored for.
//
// 🚀 Fixtures
//
//	Cube, Pyramid, Tent, Square, Quad  — Catmull–Clark control meshes.
//	Triangle, Tetrahedron, Icosahedron — Loop control meshes.
//	Grid(n)                            — n×n planar quad patch.
//
// Fixtures are values: WithCreases, WithCorner, WithBoundary, WithEdits
// and WithScheme return modified copies and never touch the receiver.
//
// 📄 Loaders
//
//	LoadYAML  — YAML document (gopkg.in/yaml.v3).
//	LoadTOML  — TOML document (github.com/pelletier/go-toml/v2).
//	ParseOBJ  — Wavefront OBJ with subdivision tags (see obj.go).
//	Load      — dispatches on the file extension.
//	Watch     — reloads a file on every change (github.com/fsnotify/fsnotify).
//
// Errors:
//
//	ErrUnknownShape       — Named got a name outside Names().
//	ErrBadSize            — Grid(n) with n < 1.
//	ErrMalformed          — a document or OBJ line could not be decoded.
//	ErrUnsupportedFormat  — Load got an extension it cannot dispatch.
package shape
