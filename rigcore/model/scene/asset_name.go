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

// Package scene models the pipeline-facing names around a rig: working
// file names ("hero_rig_v003") and attribute paths into the scene
// ("rig|l_arm_grp.translateX").
package scene

import (
	"encoding/json"
	"fmt"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"dirpx.dev/rignom/rigcore/model/name"
	"gopkg.in/yaml.v3"
)

// Reserved top-level group names in a rig scene.
const (
	// MeshGroupName is the group holding the deliverable geometry.
	MeshGroupName = "mesh"

	// RigModulesGroupName is the group holding the rig modules.
	RigModulesGroupName = "rig"
)

// AssetName identifies the asset a working file belongs to ("hero",
// "spaceShip01"). It follows the same camelCase token rule as a name's
// basename block.
//
// This type implements the model.Model interface. The zero value (empty
// string) fails Validate.
type AssetName string

// ParseAssetName parses a string into an AssetName, trimming surrounding
// whitespace before validation.
func ParseAssetName(s string) (AssetName, error) {
	a := AssetName(strings.TrimSpace(s))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// String returns the asset name itself.
func (a AssetName) String() string {
	return string(a)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (a AssetName) Redacted() string {
	return a.String()
}

// TypeName returns the canonical name of this model type.
func (a AssetName) TypeName() string {
	return "AssetName"
}

// IsZero reports whether the AssetName is empty.
func (a AssetName) IsZero() bool {
	return a == ""
}

// Validate checks that the AssetName is a non-empty camelCase ASCII
// alphanumeric token.
func (a AssetName) Validate() error {
	if a.IsZero() {
		return &rerrors.EmptyFieldError{Field: "AssetName"}
	}
	if !name.IsValidFreeTextToken(string(a)) {
		return &rerrors.InvalidCharacterError{Field: "AssetName", Value: string(a)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rejecting invalid asset names.
func (a AssetName) MarshalJSON() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", a.TypeName(), err)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseAssetName.
func (a *AssetName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseAssetName(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*a = parsed
	return a.Validate()
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid asset names.
func (a AssetName) MarshalYAML() (interface{}, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", a.TypeName(), err)
	}
	return a.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseAssetName.
func (a *AssetName) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseAssetName(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*a = parsed
	return a.Validate()
}

// Compile-time verification that AssetName implements model.Model.
var _ model.Model = (*AssetName)(nil)
