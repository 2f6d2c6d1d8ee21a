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

package name

import (
	"encoding/json"
	"fmt"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// FreeSpace is the optional extra token between the basename block and
// the suffix, reserved for whatever the rigger needs to disambiguate
// ("fluff" in "l_feather01_fluff_ctl"). It follows the same token rules as
// Basename but may be absent.
//
// This type implements the model.Model interface. The zero value (empty
// string) means "no free space" and is valid.
type FreeSpace string

// ParseFreeSpace parses a string into a FreeSpace, trimming surrounding
// whitespace. An empty or all-whitespace input parses to the valid zero
// value.
func ParseFreeSpace(s string) (FreeSpace, error) {
	f := FreeSpace(strings.TrimSpace(s))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// String returns the free-space token itself, possibly empty.
func (f FreeSpace) String() string {
	return string(f)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (f FreeSpace) Redacted() string {
	return f.String()
}

// TypeName returns the canonical name of this model type.
func (f FreeSpace) TypeName() string {
	return "FreeSpace"
}

// IsZero reports whether the FreeSpace is empty. Empty is the common case,
// not a defect.
func (f FreeSpace) IsZero() bool {
	return f == ""
}

// Validate checks that a present FreeSpace is ASCII alphanumeric and
// camelCase. The empty value is valid.
func (f FreeSpace) Validate() error {
	if f.IsZero() {
		return nil
	}
	if !IsValidFreeTextToken(string(f)) {
		return &rerrors.InvalidCharacterError{Field: "FreeSpace", Value: string(f)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rejecting invalid tokens.
func (f FreeSpace) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseFreeSpace.
func (f *FreeSpace) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseFreeSpace(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*f = parsed
	return f.Validate()
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid tokens.
func (f FreeSpace) MarshalYAML() (interface{}, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseFreeSpace.
func (f *FreeSpace) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseFreeSpace(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*f = parsed
	return f.Validate()
}

// Compile-time verification that FreeSpace implements model.Model.
var _ model.Model = (*FreeSpace)(nil)
