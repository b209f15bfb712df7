// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// document.go — YAML and TOML shape documents.
//
// Both formats decode into the same document struct:
//
//	name: cube
//	scheme: catmark            # catmark | loop | bilinear (default catmark)
//	boundary: edgeonly         # none | edgeonly | edgeandcorner
//	vertices: [[0,0,0], ...]   # one tuple per vertex, equal arity
//	faces: [[0,1,3,2], ...]
//	creases: [{v0: 0, v1: 1, sharpness: 2}]
//	corners: [{vertex: 3, sharpness: .inf}]
//	edits: [{path: "4/0/2", op: add, value: [0,0,1]}]
//
// Unknown keys are rejected.

package shape

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/subdiv/hedit"
	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

type document struct {
	Name     string      `yaml:"name" toml:"name"`
	Scheme   string      `yaml:"scheme" toml:"scheme"`
	Boundary string      `yaml:"boundary" toml:"boundary"`
	Vertices [][]float64 `yaml:"vertices" toml:"vertices"`
	Faces    [][]int     `yaml:"faces" toml:"faces"`
	Creases  []creaseDoc `yaml:"creases" toml:"creases"`
	Corners  []cornerDoc `yaml:"corners" toml:"corners"`
	Edits    []editDoc   `yaml:"edits" toml:"edits"`
}

type creaseDoc struct {
	V0        int     `yaml:"v0" toml:"v0"`
	V1        int     `yaml:"v1" toml:"v1"`
	Sharpness float64 `yaml:"sharpness" toml:"sharpness"`
}

type cornerDoc struct {
	Vertex    int     `yaml:"vertex" toml:"vertex"`
	Sharpness float64 `yaml:"sharpness" toml:"sharpness"`
}

type editDoc struct {
	Path  string    `yaml:"path" toml:"path"`
	Op    string    `yaml:"op" toml:"op"`
	Value []float64 `yaml:"value" toml:"value"`
}

// LoadYAML decodes one YAML shape document.
func LoadYAML(r io.Reader) (Shape, error) {
	const method = "LoadYAML"
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Shape{}, fmt.Errorf("%s: empty document: %w", method, ErrMalformed)
		}
		return Shape{}, fmt.Errorf("%s: %v: %w", method, err, ErrMalformed)
	}
	return doc.shape(method)
}

// LoadTOML decodes one TOML shape document.
func LoadTOML(r io.Reader) (Shape, error) {
	const method = "LoadTOML"
	var doc document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Shape{}, fmt.Errorf("%s: %v: %w", method, err, ErrMalformed)
	}
	return doc.shape(method)
}

// shape converts a decoded document. Topological validity is left to
// topology.New; only the encoding is checked here.
func (d *document) shape(method string) (Shape, error) {
	if len(d.Faces) == 0 {
		return Shape{}, fmt.Errorf("%s: no faces: %w", method, ErrMalformed)
	}
	s := Shape{Name: d.Name, Scheme: refine.CatmullClark}
	if d.Scheme != "" {
		sc, err := refine.ParseScheme(d.Scheme)
		if err != nil {
			return Shape{}, fmt.Errorf("%s: %v: %w", method, err, ErrMalformed)
		}
		s.Scheme = sc
	}
	mode, err := topology.ParseBoundaryMode(d.Boundary)
	if err != nil {
		return Shape{}, fmt.Errorf("%s: %v: %w", method, err, ErrMalformed)
	}

	s.Descriptor = topology.Descriptor{
		Faces:     d.Faces,
		Positions: d.Vertices,
		Boundary:  mode,
	}
	if len(d.Vertices) == 0 {
		s.Descriptor.NumVertices = maxIndex(d.Faces) + 1
	}
	for _, c := range d.Creases {
		s.Descriptor.Creases = append(s.Descriptor.Creases, topology.Crease{V0: c.V0, V1: c.V1, Sharpness: c.Sharpness})
	}
	for _, c := range d.Corners {
		s.Descriptor.Corners = append(s.Descriptor.Corners, topology.Corner{Vertex: c.Vertex, Sharpness: c.Sharpness})
	}
	for i, e := range d.Edits {
		edit, err := parseEdit(e.Path, e.Op, e.Value)
		if err != nil {
			return Shape{}, fmt.Errorf("%s: edit #%d: %v: %w", method, i, err, ErrMalformed)
		}
		s.Edits = append(s.Edits, edit)
	}
	return s, nil
}

func parseEdit(path, op string, value []float64) (hedit.Edit, error) {
	p, err := hedit.ParsePath(path)
	if err != nil {
		return hedit.Edit{}, err
	}
	o, err := hedit.ParseOp(op)
	if err != nil {
		return hedit.Edit{}, err
	}
	return hedit.Edit{Path: p, Op: o, Value: value}, nil
}

func maxIndex(faces [][]int) int {
	m := -1
	for _, f := range faces {
		for _, v := range f {
			if v > m {
				m = v
			}
		}
	}
	return m
}
