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

package scene

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// FileVersionPadding is the digit width of a rendered file version:
// version 3 renders as "v003".
const FileVersionPadding = 3

// fileVersionFmt is the version token: a "v", "V" or "version" prefix
// and at least FileVersionPadding digits. Versions past 999 grow a digit
// rather than wrapping.
const fileVersionFmt = `^(?:[vV]|version)([0-9]{3,})$`

var fileVersionRegexp = regexp.MustCompile(fileVersionFmt)

// FileVersion is the iteration counter of a working file, the trailing
// field of a Filename. Versions start at 1.
//
// This type implements the model.Model interface. FileVersion serializes
// to its rendered "v%03d" form. The zero value fails Validate.
type FileVersion int

// ParseFileVersion parses a version token ("v003", "V003", "version003")
// into a FileVersion. Rendering always uses the lowercase "v" form.
func ParseFileVersion(s string) (FileVersion, error) {
	m := fileVersionRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, &rerrors.ParseError{Type: "FileVersion", Value: s}
	}

	num, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &rerrors.ParseError{Type: "FileVersion", Value: s}
	}

	v := FileVersion(num)
	if err := v.Validate(); err != nil {
		return 0, err
	}
	return v, nil
}

// String returns the rendered form, "v" plus the zero-padded number.
func (v FileVersion) String() string {
	return fmt.Sprintf("v%0*d", FileVersionPadding, int(v))
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (v FileVersion) Redacted() string {
	return v.String()
}

// TypeName returns the canonical name of this model type.
func (v FileVersion) TypeName() string {
	return "FileVersion"
}

// IsZero reports whether the FileVersion is unset.
func (v FileVersion) IsZero() bool {
	return v == 0
}

// Validate checks that the version is positive.
func (v FileVersion) Validate() error {
	if v <= 0 {
		return &rerrors.ValidationError{
			Type:   "FileVersion",
			Reason: "must be positive",
			Value:  int(v),
		}
	}
	return nil
}

// Next returns the following version.
func (v FileVersion) Next() FileVersion {
	return v + 1
}

// MarshalJSON implements json.Marshaler, serializing to the rendered
// form. Marshaling fails for non-positive versions.
func (v FileVersion) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseFileVersion.
func (v *FileVersion) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseFileVersion(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return v.Validate()
}

// MarshalYAML implements yaml.Marshaler, serializing to the rendered
// form.
func (v FileVersion) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseFileVersion.
func (v *FileVersion) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseFileVersion(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return v.Validate()
}

// Compile-time verification that FileVersion implements model.Model.
var _ model.Model = (*FileVersion)(nil)
