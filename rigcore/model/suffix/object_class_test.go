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
	"encoding/json"
	"testing"

	"dirpx.dev/rignom/rigcore/model/suffix"
)

func TestParseObjectClass(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    suffix.ObjectClass
		wantErr bool
	}{
		{"NonHierarchical", "nonHierarchical", suffix.NonHierarchical, false},
		{"Hierarchical", "hierarchical", suffix.Hierarchical, false},
		{"MixedCase", "Hierarchical", suffix.Hierarchical, false},
		{"Whitespace", "  hierarchical  ", suffix.Hierarchical, false},
		{"DagAlias", "dag", suffix.Hierarchical, false},
		{"NonDagAlias", "nondag", suffix.NonHierarchical, false},
		{"NonDagHyphenAlias", "non-dag", suffix.NonHierarchical, false},
		{"Empty", "", 0, true},
		{"Unknown", "floating", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := suffix.ParseObjectClass(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseObjectClass(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseObjectClass(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestObjectClass_String(t *testing.T) {
	tests := []struct {
		name  string
		class suffix.ObjectClass
		want  string
	}{
		{"NonHierarchical", suffix.NonHierarchical, "nonHierarchical"},
		{"Hierarchical", suffix.Hierarchical, "hierarchical"},
		{"Invalid", suffix.ObjectClass(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObjectClass_Validate(t *testing.T) {
	if err := suffix.Hierarchical.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := suffix.ObjectClass(99).Validate(); err == nil {
		t.Error("Validate() on out-of-range value = nil, want error")
	}
}

func TestObjectClass_IsZero(t *testing.T) {
	// The zero value is NonHierarchical, a valid class, so IsZero is
	// always false.
	var c suffix.ObjectClass
	if c.IsZero() {
		t.Error("IsZero() = true, want false")
	}
}

func TestObjectClass_JSONRoundTrip(t *testing.T) {
	for _, c := range []suffix.ObjectClass{suffix.NonHierarchical, suffix.Hierarchical} {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", c, err)
		}

		var decoded suffix.ObjectClass
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if decoded != c {
			t.Errorf("round trip = %v, want %v", decoded, c)
		}
	}
}

func TestObjectClass_JSONMarshal_Invalid(t *testing.T) {
	if _, err := json.Marshal(suffix.ObjectClass(99)); err == nil {
		t.Error("Marshal() on invalid class = nil, want error")
	}
}
