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

package scene_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/rignom/rigcore/model/scene"
)

func TestParseAttributePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    scene.AttributePath
		wantErr bool
	}{
		{
			name:  "WithHierarchy",
			input: "rig|l_arm_grp.translateX",
			want:  scene.AttributePath{Hierarchy: "rig|", Object: "l_arm_grp", Attribute: "translateX"},
		},
		{
			name:  "DeepHierarchy",
			input: "rig|l_arm_grp|l_armIk_ctl.rotateY",
			want:  scene.AttributePath{Hierarchy: "rig|l_arm_grp|", Object: "l_armIk_ctl", Attribute: "rotateY"},
		},
		{
			name:  "NoHierarchy",
			input: "l_arm_ctl.visibility",
			want:  scene.AttributePath{Object: "l_arm_ctl", Attribute: "visibility"},
		},
		{
			name:  "IndexedAttribute",
			input: "c_root_grp.worldMatrix[0]",
			want:  scene.AttributePath{Object: "c_root_grp", Attribute: "worldMatrix[0]"},
		},
		{
			name:  "CompoundAttribute",
			input: "c_root_ctl.translate.translateX",
			want:  scene.AttributePath{Object: "c_root_ctl", Attribute: "translate.translateX"},
		},
		{name: "NoAttribute", input: "rig|l_arm_grp", wantErr: true},
		{name: "EmptyObject", input: "rig|.translateX", wantErr: true},
		{name: "Whitespace", input: "rig | node.tx", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scene.ParseAttributePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAttributePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseAttributePath(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAttributePath_String(t *testing.T) {
	p := scene.AttributePath{Hierarchy: "rig|", Object: "l_arm_grp", Attribute: "translateX"}
	if got := p.String(); got != "rig|l_arm_grp.translateX" {
		t.Errorf("String() = %q, want %q", got, "rig|l_arm_grp.translateX")
	}
}

func TestAttributePath_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"rig|l_arm_grp.translateX",
		"l_arm_ctl.visibility",
		"c_root_grp.worldMatrix[0]",
	} {
		p, err := scene.ParseAttributePath(s)
		if err != nil {
			t.Fatalf("ParseAttributePath(%q) error = %v", s, err)
		}
		if p.String() != s {
			t.Errorf("String() = %q, want %q", p.String(), s)
		}
	}
}

func TestAttributePath_Validate(t *testing.T) {
	valid := scene.AttributePath{Object: "node", Attribute: "tx"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	tests := []struct {
		name string
		path scene.AttributePath
	}{
		{"EmptyObject", scene.AttributePath{Attribute: "tx"}},
		{"EmptyAttribute", scene.AttributePath{Object: "node"}},
		{"HierarchyMissingPipe", scene.AttributePath{Hierarchy: "rig", Object: "node", Attribute: "tx"}},
		{"BadObject", scene.AttributePath{Object: "no de", Attribute: "tx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.path.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestAttributePath_JSONRoundTrip(t *testing.T) {
	original := scene.AttributePath{Hierarchy: "rig|", Object: "l_arm_grp", Attribute: "translateX"}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded scene.AttributePath
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}
