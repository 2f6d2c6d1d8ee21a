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

package channel_test

import (
	"encoding/json"
	"testing"

	"dirpx.dev/rignom/rigcore/model/channel"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"TranslateX", "tx", "translateX", false},
		{"TranslateOnly", "t", "translate", false},
		{"RotateYUpper", "RY", "rotateY", false},
		{"ScaleZ", "sz", "scaleZ", false},
		{"Whitespace", " rx ", "rotateX", false},
		{"Empty", "", "", true},
		{"UnknownChannel", "vx", "", true},
		{"UnknownAxis", "tw", "", true},
		{"TooLong", "txy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := channel.Expand(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expand(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    channel.Channel
		wantErr bool
	}{
		{"Word", "translate", channel.Translate, false},
		{"Letter", "r", channel.Rotate, false},
		{"Cased", "Scale", channel.Scale, false},
		{"Empty", "", 0, true},
		{"Unknown", "shear", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := channel.ParseChannel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseChannel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseChannel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    channel.Axis
		wantErr bool
	}{
		{"Empty", "", channel.NoAxis, false},
		{"Lower", "x", channel.X, false},
		{"Upper", "Z", channel.Z, false},
		{"Unknown", "w", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := channel.ParseAxis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestChannel_String(t *testing.T) {
	if got := channel.Translate.String(); got != "translate" {
		t.Errorf("String() = %q, want %q", got, "translate")
	}
	if got := channel.Channel(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}

func TestChannel_JSONRoundTrip(t *testing.T) {
	for _, c := range []channel.Channel{channel.Translate, channel.Rotate, channel.Scale} {
		data, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", c, err)
		}

		var decoded channel.Channel
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if decoded != c {
			t.Errorf("round trip = %v, want %v", decoded, c)
		}
	}
}
