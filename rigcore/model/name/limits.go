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

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// Limits carries the tunable bounds a Checker enforces on top of the
// grammar. The grammar itself has no length ceiling; the ceiling exists
// because host applications degrade on very long node names.
//
// This type implements the model.Model interface. The zero value means
// "use defaults" to a Checker but fails Validate; obtain an explicit valid
// value from DefaultLimits.
type Limits struct {
	// MaxNameLength is the maximum total length of a name in characters.
	MaxNameLength int `json:"maxNameLength" yaml:"maxNameLength"`
}

// DefaultLimits returns the standard limits: names up to
// DefaultMaxNameLength characters.
func DefaultLimits() Limits {
	return Limits{MaxNameLength: DefaultMaxNameLength}
}

// String returns a compact human-readable representation of the limits.
func (l Limits) String() string {
	return fmt.Sprintf("maxNameLength=%d", l.MaxNameLength)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (l Limits) Redacted() string {
	return l.String()
}

// TypeName returns the canonical name of this model type.
func (l Limits) TypeName() string {
	return "Limits"
}

// IsZero reports whether the Limits carry no explicit bound.
func (l Limits) IsZero() bool {
	return l.MaxNameLength == 0
}

// Validate checks that the length bound is positive.
func (l Limits) Validate() error {
	if l.MaxNameLength <= 0 {
		return &rerrors.ValidationError{
			Type:   "Limits",
			Field:  "MaxNameLength",
			Reason: "must be positive",
			Value:  l.MaxNameLength,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rejecting invalid limits.
func (l Limits) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	type alias Limits
	return json.Marshal((alias)(l))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded
// limits.
func (l *Limits) UnmarshalJSON(data []byte) error {
	type alias Limits
	if err := json.Unmarshal(data, (*alias)(l)); err != nil {
		return &rerrors.UnmarshalError{Type: "Limits", Data: data, Reason: err.Error()}
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Limits is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid limits.
func (l Limits) MarshalYAML() (interface{}, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	type alias Limits
	return (alias)(l), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded
// limits.
func (l *Limits) UnmarshalYAML(node *yaml.Node) error {
	type alias Limits
	if err := node.Decode((*alias)(l)); err != nil {
		return &rerrors.UnmarshalError{Type: "Limits", Reason: err.Error()}
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Limits is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that Limits implements model.Model.
var _ model.Model = (*Limits)(nil)
