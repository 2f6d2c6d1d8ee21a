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

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    scene.Filename
		wantErr bool
	}{
		{
			name:  "Standard",
			input: "hero_rig_v003",
			want:  scene.Filename{Asset: "hero", Step: "rig", Version: 3},
		},
		{
			name:  "CamelAsset",
			input: "spaceShip01_mod_v027",
			want:  scene.Filename{Asset: "spaceShip01", Step: "mod", Version: 27},
		},
		{
			name:  "WideVersion",
			input: "hero_rig_v1004",
			want:  scene.Filename{Asset: "hero", Step: "rig", Version: 1004},
		},
		{name: "MissingVersion", input: "hero_rig", wantErr: true},
		{name: "ExtraField", input: "hero_rig_extra_v003", wantErr: true},
		{name: "BadAsset", input: "Hero_rig_v003", wantErr: true},
		{name: "BadStep", input: "hero_Rig01_v003", wantErr: true},
		{name: "UnpaddedVersion", input: "hero_rig_v3", wantErr: true},
		{name: "ZeroVersion", input: "hero_rig_v000", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scene.ParseFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseFilename(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilename_Build(t *testing.T) {
	f := scene.Filename{Asset: "hero", Step: "rig", Version: 3}

	got, err := f.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got != "hero_rig_v003" {
		t.Errorf("Build() = %q, want %q", got, "hero_rig_v003")
	}

	if _, err := (scene.Filename{Asset: "hero", Step: "rig"}).Build(); err == nil {
		t.Error("Build() without version = nil error, want error")
	}
}

func TestFilename_RoundTrip(t *testing.T) {
	for _, s := range []string{"hero_rig_v003", "spaceShip01_groom_v112"} {
		f, err := scene.ParseFilename(s)
		if err != nil {
			t.Fatalf("ParseFilename(%q) error = %v", s, err)
		}
		rebuilt, err := f.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if rebuilt != s {
			t.Errorf("round trip = %q, want %q", rebuilt, s)
		}
	}
}

func TestFilename_NextVersion(t *testing.T) {
	f := scene.Filename{Asset: "hero", Step: "rig", Version: 3}

	next := f.NextVersion()
	if next.Version != 4 {
		t.Errorf("NextVersion().Version = %d, want 4", next.Version)
	}
	if f.Version != 3 {
		t.Errorf("receiver mutated: Version = %d, want 3", f.Version)
	}
}

func TestFileVersion_String(t *testing.T) {
	tests := []struct {
		name    string
		version scene.FileVersion
		want    string
	}{
		{"Padded", 3, "v003"},
		{"TwoDigits", 42, "v042"},
		{"Overflow", 1234, "v1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.version.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFileVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    scene.FileVersion
		wantErr bool
	}{
		{"Lowercase", "v003", 3, false},
		{"Uppercase", "V003", 3, false},
		{"WordPrefix", "version003", 3, false},
		{"Overflow", "v1234", 1234, false},
		{"UppercaseWordPrefix", "Version003", 0, true},
		{"TooFewDigits", "v03", 0, true},
		{"NoPrefix", "003", 0, true},
		{"Zero", "v000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scene.ParseFileVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFileVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilename_JSONRoundTrip(t *testing.T) {
	original := scene.Filename{Asset: "hero", Step: "rig", Version: 3}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded scene.Filename
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

func TestParseStep(t *testing.T) {
	if _, err := scene.ParseStep("rig"); err != nil {
		t.Errorf("ParseStep(\"rig\") error = %v, want nil", err)
	}
	if _, err := scene.ParseStep("rig01"); err == nil {
		t.Error("ParseStep(\"rig01\") error = nil, want error")
	}
	if _, err := scene.ParseStep(""); err == nil {
		t.Error("ParseStep(\"\") error = nil, want error")
	}
}
