// SPDX-License-Identifier: MIT

// Package hedit implements hierarchical vertex edits: positional overrides
// and offsets anchored to one vertex at one refinement depth.
//
// An edit is addressed by a Path: a control-mesh face, a sequence of child
// slots selecting one sub-face per level, and a local vertex index inside
// the final sub-face. The depth of the edit is the number of child slots.
//
// Edits form an ordered list. Order matters: Add and Subtract compose, Set
// overrides everything submitted before it, and later Add/Subtract apply on
// top of the Set value. Compose folds a vertex's edits into a Result.
//
// The Applicator is consulted by the refinement engine while it builds each
// level: Pending tells adaptive refinement that an edit still waits beneath
// a face, and Resolve maps the edits of one depth onto vertex ids of that
// level, recording a Diagnostic (never an error) for every path that does
// not resolve.
package hedit
