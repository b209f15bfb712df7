// SPDX-License-Identifier: MIT
// Package: subdiv/refine
//
// types.go — Scheme, Mode, Request, vertex origins and mask rules.

package refine

import (
	"fmt"
	"strings"
)

// MaxAdaptiveDepth is the hard ceiling for adaptive refinement requests.
const MaxAdaptiveDepth = 10

// Scheme selects the subdivision rule set.
type Scheme uint8

const (
	// CatmullClark is the quad-smooth scheme.
	CatmullClark Scheme = iota
	// Loop is the triangle-smooth scheme.
	Loop
	// Bilinear splits faces without smoothing.
	Bilinear
)

// String returns the canonical scheme name.
func (s Scheme) String() string {
	switch s {
	case CatmullClark:
		return "catmark"
	case Loop:
		return "loop"
	case Bilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}
}

// RegularFaceSize is the face valence the scheme treats as regular.
func (s Scheme) RegularFaceSize() int {
	if s == Loop {
		return 3
	}
	return 4
}

// HasFacePoints reports whether refinement creates one vertex per face.
func (s Scheme) HasFacePoints() bool { return s != Loop }

// ParseScheme accepts "catmark"/"catmull-clark"/"quad-smooth", "loop"/
// "triangle-smooth" and "bilinear".
func ParseScheme(v string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "catmark", "catmull-clark", "catmullclark", "quad-smooth", "quadsmooth":
		return CatmullClark, nil
	case "loop", "triangle-smooth", "trianglesmooth":
		return Loop, nil
	case "bilinear":
		return Bilinear, nil
	default:
		return 0, fmt.Errorf("ParseScheme(%q): %w", v, ErrUnknownScheme)
	}
}

// Mode selects uniform or feature-adaptive refinement.
type Mode uint8

const (
	// Uniform refines every face at every level.
	Uniform Mode = iota
	// Adaptive refines only around irregular features.
	Adaptive
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Uniform:
		return "uniform"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode accepts "uniform" and "adaptive".
func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "uniform":
		return Uniform, nil
	case "adaptive", "feature-adaptive":
		return Adaptive, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", v, ErrUnknownMode)
	}
}

// Request describes one refinement run.
type Request struct {
	Scheme Scheme
	Mode   Mode
	Depth  int
}

// OriginKind tells which parent element a vertex was created from.
type OriginKind uint8

const (
	// OriginControl marks level-0 vertices.
	OriginControl OriginKind = iota
	// OriginFace marks face points.
	OriginFace
	// OriginEdge marks edge points.
	OriginEdge
	// OriginVertex marks vertex points.
	OriginVertex
)

// String returns a short name for logs.
func (k OriginKind) String() string {
	switch k {
	case OriginControl:
		return "control"
	case OriginFace:
		return "face"
	case OriginEdge:
		return "edge"
	case OriginVertex:
		return "vertex"
	default:
		return fmt.Sprintf("OriginKind(%d)", uint8(k))
	}
}

// Origin locates a vertex's parent element in the previous level.
// Parent is a face, edge or vertex id depending on Kind (-1 for control).
type Origin struct {
	Kind   OriginKind
	Parent int
}

// Class is the mask class selected for a vertex.
type Class uint8

const (
	// ClassNone is the zero class of control vertices.
	ClassNone Class = iota
	// ClassFace averages the parent face.
	ClassFace
	// ClassSmooth is the scheme's smooth edge or vertex mask.
	ClassSmooth
	// ClassCrease is the 1D crease mask (edge midpoint, vertex 1/8-3/4-1/8).
	ClassCrease
	// ClassCorner copies the parent vertex.
	ClassCorner
	// ClassUndefined marks boundary vertices with no interpolation rule.
	ClassUndefined
)

// String returns a short name for logs.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassFace:
		return "face"
	case ClassSmooth:
		return "smooth"
	case ClassCrease:
		return "crease"
	case ClassCorner:
		return "corner"
	case ClassUndefined:
		return "undefined"
	default:
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
}

// Rule is the mask recipe of one vertex.
//
// When Class == Next the Class mask applies alone. Otherwise the result is
// Fraction·mask(Class) + (1-Fraction)·mask(Next):
//   - edges: Class=Crease, Next=Smooth, Fraction = edge sharpness in (0,1);
//   - vertices: Class is the mask before decay, Next the mask after decay,
//     Fraction the mean sharpness of the features that stop being sharp.
//
// Crease and NextCrease hold the two crease neighbours (parent-level vertex
// ids) used when the matching class is ClassCrease on a vertex point.
type Rule struct {
	Class      Class
	Next       Class
	Fraction   float64
	Crease     [2]int
	NextCrease [2]int
}

// Blended reports whether the rule mixes two masks.
func (r Rule) Blended() bool { return r.Class != r.Next }
