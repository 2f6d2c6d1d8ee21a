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
	"gopkg.in/yaml.v3"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    suffix.Code
		wantErr bool
	}{
		{"Valid", "jnt", "jnt", false},
		{"Uppercase", "JNT", "jnt", false},
		{"Whitespace", "  grp  ", "grp", false},
		{"Empty", "", "", true},
		{"TooShort", "jn", "", true},
		{"TooLong", "join", "", true},
		{"Digits", "jn1", "", true},
		{"Underscore", "j_t", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := suffix.ParseCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCode_Validate(t *testing.T) {
	if err := suffix.Code("ctl").Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := suffix.Code("").Validate(); err == nil {
		t.Error("Validate() on empty code = nil, want error")
	}
	if err := suffix.Code("Jnt").Validate(); err == nil {
		t.Error("Validate() on mixed-case code = nil, want error")
	}
}

func TestCode_IsZero(t *testing.T) {
	if !suffix.Code("").IsZero() {
		t.Error("IsZero() on empty code = false, want true")
	}
	if suffix.Code("jnt").IsZero() {
		t.Error("IsZero() on \"jnt\" = true, want false")
	}
}

func TestCode_JSONRoundTrip(t *testing.T) {
	original := suffix.Code("mum")

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"mum"` {
		t.Errorf("Marshal() = %s, want %q", data, `"mum"`)
	}

	var decoded suffix.Code
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %q, want %q", decoded, original)
	}
}

func TestCode_JSONMarshal_Invalid(t *testing.T) {
	if _, err := json.Marshal(suffix.Code("bogus")); err == nil {
		t.Error("Marshal() on invalid code = nil, want error")
	}
}

func TestCode_YAMLRoundTrip(t *testing.T) {
	original := suffix.Code("grp")

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded suffix.Code
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %q, want %q", decoded, original)
	}
}
