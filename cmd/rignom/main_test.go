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

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := runCommand(t, "validate", "l_armPosition_ctl", "c_root_grp")
	if err != nil {
		t.Fatalf("validate error = %v, output: %s", err, out)
	}
	if strings.Count(out, "ok\t") != 2 {
		t.Errorf("output = %q, want two ok lines", out)
	}
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := runCommand(t, "validate", "l_arm_xyz")
	if err == nil {
		t.Fatal("validate error = nil, want error for invalid name")
	}
	if !strings.Contains(out, "unknown suffix") {
		t.Errorf("output = %q, want unknown suffix diagnostic", out)
	}
}

func TestValidateCommand_ClassFlag(t *testing.T) {
	if _, err := runCommand(t, "validate", "--class", "nondag", "u_scale_mum"); err != nil {
		t.Errorf("validate --class nondag error = %v, want nil", err)
	}
	if _, err := runCommand(t, "validate", "--class", "nondag", "l_arm_jnt"); err == nil {
		t.Error("validate --class nondag on a DAG suffix = nil error, want error")
	}
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, "parse", "l_feather01_fluff_ctl")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}

	var decoded struct {
		Side      string `json:"side"`
		Basename  string `json:"basename"`
		FreeSpace string `json:"freeSpace"`
		Suffix    string `json:"suffix"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v, output: %s", err, out)
	}
	if decoded.Side != "l" || decoded.Basename != "feather01" ||
		decoded.FreeSpace != "fluff" || decoded.Suffix != "ctl" {
		t.Errorf("parse output = %+v", decoded)
	}
}

func TestBuildCommand(t *testing.T) {
	out, err := runCommand(t, "build", "--side", "c", "--basename", "root", "--suffix", "grp")
	if err != nil {
		t.Fatalf("build error = %v", err)
	}
	if strings.TrimSpace(out) != "c_root_grp" {
		t.Errorf("build output = %q, want %q", out, "c_root_grp")
	}
}

func TestBuildCommand_InvalidSuffix(t *testing.T) {
	if _, err := runCommand(t, "build", "--basename", "root", "--suffix", "xyz"); err == nil {
		t.Error("build with unknown suffix = nil error, want error")
	}
}

func TestSuffixesCommand(t *testing.T) {
	out, err := runCommand(t, "suffixes", "--version")
	if err != nil {
		t.Fatalf("suffixes error = %v", err)
	}
	if !strings.Contains(out, "dataset ") {
		t.Errorf("output missing dataset version: %q", out)
	}
	if !strings.Contains(out, "jnt\tjoint") {
		t.Errorf("output missing joint row: %q", out)
	}
}
