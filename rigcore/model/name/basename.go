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

// Basename is the descriptive block of a name: what the object is, plus
// any context, run together in camelCase ("armPosition", "ikSpine01").
// The grammar does not separate basename from context; both live in this
// single token.
//
// This type implements the model.Model interface. The zero value (empty
// string) represents "no basename" and fails Validate, because every
// conformant name requires one.
type Basename string

// ParseBasename parses a string into a Basename, trimming surrounding
// whitespace before validation. Unlike enum parsing, the case is
// preserved: camelCase is load-bearing here.
func ParseBasename(s string) (Basename, error) {
	b := Basename(strings.TrimSpace(s))
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b, nil
}

// String returns the basename itself.
func (b Basename) String() string {
	return string(b)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (b Basename) Redacted() string {
	return b.String()
}

// TypeName returns the canonical name of this model type.
func (b Basename) TypeName() string {
	return "Basename"
}

// IsZero reports whether the Basename is empty.
func (b Basename) IsZero() bool {
	return b == ""
}

// Validate checks that the Basename is non-empty, ASCII alphanumeric and
// camelCase.
func (b Basename) Validate() error {
	if b.IsZero() {
		return &rerrors.EmptyFieldError{Field: "Basename"}
	}
	if !IsValidFreeTextToken(string(b)) {
		return &rerrors.InvalidCharacterError{Field: "Basename", Value: string(b)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rejecting invalid basenames.
func (b Basename) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseBasename.
func (b *Basename) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseBasename(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*b = parsed
	return b.Validate()
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid basenames.
func (b Basename) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return b.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseBasename.
func (b *Basename) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseBasename(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*b = parsed
	return b.Validate()
}

// Compile-time verification that Basename implements model.Model.
var _ model.Model = (*Basename)(nil)
