/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package suffix defines the closed, immutable table binding semantic
// categories (node types and rig purposes) to the fixed three-letter codes
// that terminate every conformant node name, and the lookups over it.
//
// The registry is a versioned constant dataset: it is seeded once at
// process start from the tables below and never mutated at runtime.
// Applications wanting different codes ship a different registry build, not
// runtime configuration. Because the registry is immutable after
// construction it is safe for unrestricted concurrent read access without
// locking.
//
// Lookups report misses through a boolean, not an error: an unknown code
// or category is a normal, expected outcome that validation turns into a
// diagnostic.
package suffix

import (
	"fmt"
	"sort"
)

// Registry is an immutable bidirectional suffix table. Both directions are
// indexed: category to entry and code to entry. The zero value is not
// usable; obtain a registry from Default or NewRegistry.
type Registry struct {
	entries    []Entry
	byCode     map[Code]Entry
	byCategory map[string]Entry
}

// defaultRegistry is the process-wide constant registry, constructed once
// at package load from the seeded tables. Construction panics on a bad
// seed, which is a build defect, not a runtime condition.
var defaultRegistry = mustNewRegistry()

// Default returns the process-wide registry seeded with the nomenclature's
// suffix tables: seventeen non-hierarchical node types, eighteen
// hierarchical node types, and three hierarchical purposes.
//
// The returned pointer is shared; the registry is immutable and safe for
// concurrent use from any number of goroutines.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from the given entries, validating each
// entry and enforcing the two uniqueness invariants: no two entries share
// a code, and no two entries share a category.
//
// The entries slice is copied; later mutation of the caller's slice does
// not affect the registry.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries:    make([]Entry, 0, len(entries)),
		byCode:     make(map[Code]Entry, len(entries)),
		byCategory: make(map[string]Entry, len(entries)),
	}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid registry entry %q: %w", e.Code, err)
		}
		if prev, ok := r.byCode[e.Code]; ok {
			return nil, fmt.Errorf("duplicate code %q: bound to both %q and %q",
				e.Code, prev.Category, e.Category)
		}
		if prev, ok := r.byCategory[e.Category]; ok {
			return nil, fmt.Errorf("duplicate category %q: bound to both %q and %q",
				e.Category, prev.Code, e.Code)
		}
		r.byCode[e.Code] = e
		r.byCategory[e.Category] = e
		r.entries = append(r.entries, e)
	}

	sort.Slice(r.entries, func(i, j int) bool {
		return r.entries[i].Category < r.entries[j].Category
	})

	return r, nil
}

// ByCode returns the entry bound to the given code. The second return
// value reports whether the code is registered; a miss is a normal
// outcome, not an error.
func (r *Registry) ByCode(code Code) (Entry, bool) {
	e, ok := r.byCode[code]
	return e, ok
}

// ByCategory returns the entry whose category matches the given name
// exactly. The second return value reports whether the category is
// registered.
func (r *Registry) ByCategory(category string) (Entry, bool) {
	e, ok := r.byCategory[category]
	return e, ok
}

// CodeForNodeType returns the code bound to the given node-type category.
// Unlike ByCategory, purpose entries are excluded: a node's type can never
// be "controller".
func (r *Registry) CodeForNodeType(nodeType string) (Code, bool) {
	e, ok := r.byCategory[nodeType]
	if !ok || e.Kind != NodeType {
		return "", false
	}
	return e.Code, true
}

// MatchesNodeType reports whether the given code is coherent with the
// given node type. Node-type codes match only their own category. Purpose
// codes always match: only the rigger can judge whether an object serves
// its stated purpose, so they pass on principle. Unknown codes never
// match.
func (r *Registry) MatchesNodeType(code Code, nodeType string) bool {
	e, ok := r.byCode[code]
	if !ok {
		return false
	}
	if e.Kind == Purpose {
		return true
	}
	return e.Category == nodeType
}

// Entries returns all registry entries in stable order, category
// ascending. The returned slice is a copy; callers may modify it freely.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// mustNewRegistry builds the default registry from the seed tables,
// panicking on any seed defect.
func mustNewRegistry() *Registry {
	r, err := NewRegistry(seedEntries())
	if err != nil {
		panic(fmt.Sprintf("suffix: bad registry seed: %v", err))
	}
	return r
}

// seedEntries returns the nomenclature's suffix tables as a fresh slice.
//
// The tables are closed: adding a code is a dataset revision (see
// DatasetVersion), not a runtime operation.
func seedEntries() []Entry {
	type row struct {
		code     Code
		category string
	}

	// Non-hierarchical (non-DAG) node types.
	nonDag := []row{
		{"adl", "addDoubleLinear"},
		{"blm", "blendMatrix"},
		{"bls", "blendshape"},
		{"clp", "clamp"},
		{"coc", "colorConstant"},
		{"dem", "decomposeMatrix"},
		{"flc", "floatConstant"},
		{"inm", "inverseMatrix"},
		{"mdl", "multDoubleLinear"},
		{"mum", "multMatrix"},
		{"mud", "multiplyDivide"},
		{"pma", "plusMinusAverage"},
		{"rmp", "ramp"},
		{"rev", "remapValue"},
		{"rvs", "reverse"},
		{"sdk", "setDrivenKey"},
		{"ser", "setRange"},
	}

	// Hierarchical (DAG) node types.
	dag := []row{
		{"aic", "aimConstraint"},
		{"ffb", "baseLattice"},
		{"cls", "cluster"},
		{"fol", "follicle"},
		{"ike", "ikEffector"},
		{"ikh", "ikHandle"},
		{"jnt", "joint"},
		{"ffd", "lattice"},
		{"loc", "locator"},
		{"msh", "mesh"},
		{"crv", "nurbsCurve"},
		{"srf", "nurbsSurface"},
		{"orc", "orientConstraint"},
		{"pac", "parentConstraint"},
		{"poc", "pointConstraint"},
		{"pvc", "poleVectorConstraint"},
		{"scc", "scaleConstraint"},
		{"grp", "transform"},
	}

	// Hierarchical purposes.
	purposes := []row{
		{"ctl", "controller"},
		{"prx", "proxy"},
		{"plc", "placement"},
	}

	entries := make([]Entry, 0, len(nonDag)+len(dag)+len(purposes))
	for _, t := range nonDag {
		entries = append(entries, Entry{Category: t.category, Code: t.code, Class: NonHierarchical, Kind: NodeType})
	}
	for _, t := range dag {
		entries = append(entries, Entry{Category: t.category, Code: t.code, Class: Hierarchical, Kind: NodeType})
	}
	for _, t := range purposes {
		entries = append(entries, Entry{Category: t.category, Code: t.code, Class: Hierarchical, Kind: Purpose})
	}
	return entries
}
