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

package suffix_test

import (
	"sort"
	"testing"

	"dirpx.dev/rignom/rigcore/model/suffix"
)

func TestDefault_Size(t *testing.T) {
	r := suffix.Default()

	// 17 non-hierarchical node types, 18 hierarchical node types,
	// 3 purposes.
	if got := r.Len(); got != 38 {
		t.Errorf("Len() = %d, want 38", got)
	}
}

func TestDefault_SharedInstance(t *testing.T) {
	if suffix.Default() != suffix.Default() {
		t.Error("Default() returned distinct instances, want shared")
	}
}

func TestRegistry_ByCode(t *testing.T) {
	r := suffix.Default()

	tests := []struct {
		name         string
		code         suffix.Code
		wantCategory string
		wantClass    suffix.ObjectClass
		wantKind     suffix.Kind
		wantOK       bool
	}{
		{"Joint", "jnt", "joint", suffix.Hierarchical, suffix.NodeType, true},
		{"Transform", "grp", "transform", suffix.Hierarchical, suffix.NodeType, true},
		{"MultMatrix", "mum", "multMatrix", suffix.NonHierarchical, suffix.NodeType, true},
		{"FloatConstant", "flc", "floatConstant", suffix.NonHierarchical, suffix.NodeType, true},
		{"Controller", "ctl", "controller", suffix.Hierarchical, suffix.Purpose, true},
		{"Placement", "plc", "placement", suffix.Hierarchical, suffix.Purpose, true},
		{"Unknown", "xyz", "", 0, 0, false},
		{"Empty", "", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := r.ByCode(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("ByCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if e.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", e.Category, tt.wantCategory)
			}
			if e.Class != tt.wantClass {
				t.Errorf("Class = %v, want %v", e.Class, tt.wantClass)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
		})
	}
}

func TestRegistry_ByCategory(t *testing.T) {
	r := suffix.Default()

	tests := []struct {
		name     string
		category string
		wantCode suffix.Code
		wantOK   bool
	}{
		{"Joint", "joint", "jnt", true},
		{"NurbsCurve", "nurbsCurve", "crv", true},
		{"Proxy", "proxy", "prx", true},
		{"CaseSensitive", "Joint", "", false},
		{"Unknown", "polevector", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := r.ByCategory(tt.category)
			if ok != tt.wantOK {
				t.Fatalf("ByCategory(%q) ok = %v, want %v", tt.category, ok, tt.wantOK)
			}
			if ok && e.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", e.Code, tt.wantCode)
			}
		})
	}
}

func TestRegistry_CodeForNodeType(t *testing.T) {
	r := suffix.Default()

	tests := []struct {
		name     string
		nodeType string
		wantCode suffix.Code
		wantOK   bool
	}{
		{"Joint", "joint", "jnt", true},
		{"Locator", "locator", "loc", true},
		{"SetDrivenKey", "setDrivenKey", "sdk", true},
		{"PurposeExcluded", "controller", "", false},
		{"Unknown", "polySphere", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := r.CodeForNodeType(tt.nodeType)
			if ok != tt.wantOK {
				t.Fatalf("CodeForNodeType(%q) ok = %v, want %v", tt.nodeType, ok, tt.wantOK)
			}
			if code != tt.wantCode {
				t.Errorf("CodeForNodeType(%q) = %q, want %q", tt.nodeType, code, tt.wantCode)
			}
		})
	}
}

func TestRegistry_MatchesNodeType(t *testing.T) {
	r := suffix.Default()

	tests := []struct {
		name     string
		code     suffix.Code
		nodeType string
		want     bool
	}{
		{"ExactMatch", "jnt", "joint", true},
		{"WrongType", "jnt", "locator", false},
		{"PurposeOnJoint", "ctl", "joint", true},
		{"PurposeOnTransform", "prx", "transform", true},
		{"PurposeOnUnknownType", "ctl", "polySphere", true},
		{"UnknownCode", "xyz", "joint", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.MatchesNodeType(tt.code, tt.nodeType); got != tt.want {
				t.Errorf("MatchesNodeType(%q, %q) = %v, want %v",
					tt.code, tt.nodeType, got, tt.want)
			}
		})
	}
}

func TestRegistry_Entries_SortedCopy(t *testing.T) {
	r := suffix.Default()

	entries := r.Entries()
	if len(entries) != r.Len() {
		t.Fatalf("Entries() returned %d entries, want %d", len(entries), r.Len())
	}

	sorted := sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Category < entries[j].Category
	})
	if !sorted {
		t.Error("Entries() not sorted by category ascending")
	}

	// Mutating the returned slice must not leak into the registry.
	entries[0].Category = "corrupted"
	if fresh := r.Entries(); fresh[0].Category == "corrupted" {
		t.Error("Entries() returned a live reference to registry state")
	}
}

func TestRegistry_SeedProperties(t *testing.T) {
	for _, e := range suffix.Default().Entries() {
		if err := e.Validate(); err != nil {
			t.Errorf("seed entry %s: %v", e, err)
		}
		if !suffix.CodeRegexp.MatchString(string(e.Code)) {
			t.Errorf("code %q is not three lowercase letters", e.Code)
		}
		if e.Kind == suffix.Purpose && e.Class != suffix.Hierarchical {
			t.Errorf("purpose entry %s is not hierarchical", e)
		}
	}
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	base := suffix.Entry{
		Category: "joint",
		Code:     "jnt",
		Class:    suffix.Hierarchical,
		Kind:     suffix.NodeType,
	}

	tests := []struct {
		name    string
		entries []suffix.Entry
	}{
		{
			name: "DuplicateCode",
			entries: []suffix.Entry{
				base,
				{Category: "locator", Code: "jnt", Class: suffix.Hierarchical, Kind: suffix.NodeType},
			},
		},
		{
			name: "DuplicateCategory",
			entries: []suffix.Entry{
				base,
				{Category: "joint", Code: "loc", Class: suffix.Hierarchical, Kind: suffix.NodeType},
			},
		},
		{
			name: "InvalidEntry",
			entries: []suffix.Entry{
				{Category: "joint", Code: "toolong", Class: suffix.Hierarchical, Kind: suffix.NodeType},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := suffix.NewRegistry(tt.entries); err == nil {
				t.Error("NewRegistry() error = nil, want error")
			}
		})
	}
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	entries := []suffix.Entry{
		{Category: "joint", Code: "jnt", Class: suffix.Hierarchical, Kind: suffix.NodeType},
	}

	r, err := suffix.NewRegistry(entries)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	entries[0].Category = "mutated"
	if _, ok := r.ByCategory("joint"); !ok {
		t.Error("registry affected by mutation of caller's slice")
	}
}
