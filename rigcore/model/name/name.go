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
	"dirpx.dev/rignom/rigcore/model/suffix"
	"gopkg.in/yaml.v3"
)

// Name is a structured rig node name: side, basename block, optional free
// space, and suffix. It is the parsed form of strings such as
// "l_armPosition_ctl" and the input to generation.
//
// This type implements the model.Model interface. A Name serializes to a
// mapping of its fields in JSON and YAML, not to the joined string; use
// Build or String for the flat form.
//
// The zero value has Side Unsided and everything else empty; it fails
// Validate because a basename and a suffix are required.
type Name struct {
	// Side is the laterality marker. Unsided is valid and is the
	// canonical "no side" value.
	Side Side `json:"side" yaml:"side"`

	// Basename is the descriptive block, context included. Required.
	Basename Basename `json:"basename" yaml:"basename"`

	// FreeSpace is the optional extra token before the suffix.
	FreeSpace FreeSpace `json:"freeSpace,omitempty" yaml:"freeSpace,omitempty"`

	// Suffix is the registered three-letter type or purpose code.
	// Required.
	Suffix suffix.Code `json:"suffix" yaml:"suffix"`
}

// Parse decomposes a candidate string into a Name. Segment assignment is
// deterministic: the last segment is the suffix, a leading side letter is
// the side, one remaining segment is the basename block, two are basename
// block plus free space.
//
// A name whose first segment is not a side letter parses with Side
// Unsided; rebuilding such a name canonicalizes it to the "u_"-prefixed
// form. Parse stops at the first violation; use Checker.Check to collect
// every violation of a candidate at once.
func Parse(s string) (Name, error) {
	segments, err := SplitStructural(s)
	if err != nil {
		return Name{}, err
	}
	for i, seg := range segments {
		if seg == "" {
			return Name{}, &rerrors.EmptyFieldError{Field: fmt.Sprintf("segment %d", i+1)}
		}
	}

	last := segments[len(segments)-1]
	if !IsValidSuffixToken(last) {
		return Name{}, &rerrors.UnknownSuffixError{Code: last}
	}
	code := suffix.Code(last)
	if _, ok := suffix.Default().ByCode(code); !ok {
		return Name{}, &rerrors.UnknownSuffixError{Code: last}
	}

	middle := segments[:len(segments)-1]

	n := Name{Suffix: code}
	if len(middle) > 0 && IsValidSideToken(middle[0]) {
		side, err := ParseSide(middle[0])
		if err != nil {
			return Name{}, err
		}
		n.Side = side
		middle = middle[1:]
	}

	switch len(middle) {
	case 0:
		return Name{}, &rerrors.EmptyFieldError{Field: "Basename"}
	case 1:
		n.Basename = Basename(middle[0])
	case 2:
		n.Basename = Basename(middle[0])
		n.FreeSpace = FreeSpace(middle[1])
	default:
		// Four segments leave no room for anything but a leading side.
		return Name{}, &rerrors.InvalidCharacterError{Field: "Side", Value: middle[0]}
	}

	if err := n.Basename.Validate(); err != nil {
		return Name{}, err
	}
	if err := n.FreeSpace.Validate(); err != nil {
		return Name{}, err
	}
	return n, nil
}

// Build validates the Name and joins its fields into the canonical flat
// form. The side letter is always emitted, so an unsided name builds to
// "u_...". Build never produces a non-conformant string: any rule
// violation is returned as an error instead.
func (n Name) Build() (string, error) {
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n.join(), nil
}

func (n Name) join() string {
	parts := make([]string, 0, MaxSeparators+1)
	parts = append(parts, n.Side.String(), n.Basename.String())
	if !n.FreeSpace.IsZero() {
		parts = append(parts, n.FreeSpace.String())
	}
	parts = append(parts, n.Suffix.String())
	return strings.Join(parts, "_")
}

// String returns the joined flat form of the Name without validating it.
// For a valid Name this equals Build's output.
func (n Name) String() string {
	return n.join()
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (n Name) Redacted() string {
	return n.String()
}

// TypeName returns the canonical name of this model type.
func (n Name) TypeName() string {
	return "Name"
}

// IsZero reports whether this Name contains no meaningful data.
func (n Name) IsZero() bool {
	return n.Side == Unsided && n.Basename.IsZero() && n.FreeSpace.IsZero() && n.Suffix.IsZero()
}

// Validate checks every field: in-range side, conformant basename and
// free space, and a suffix registered in the default registry. An
// unregistered suffix fails with UnknownSuffixError, because a name whose
// suffix resolves to nothing communicates nothing.
func (n Name) Validate() error {
	if err := n.Side.Validate(); err != nil {
		return err
	}
	if err := n.Basename.Validate(); err != nil {
		return err
	}
	if err := n.FreeSpace.Validate(); err != nil {
		return err
	}
	if err := n.Suffix.Validate(); err != nil {
		return err
	}
	if _, ok := suffix.Default().ByCode(n.Suffix); !ok {
		return &rerrors.UnknownSuffixError{Code: string(n.Suffix)}
	}
	return nil
}

// Equal reports whether two names have identical fields.
func (n Name) Equal(other Name) bool {
	return n == other
}

// MarshalJSON implements json.Marshaler, rejecting invalid names.
func (n Name) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	type alias Name
	return json.Marshal((alias)(n))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded name.
func (n *Name) UnmarshalJSON(data []byte) error {
	type alias Name
	if err := json.Unmarshal(data, (*alias)(n)); err != nil {
		return &rerrors.UnmarshalError{Type: "Name", Data: data, Reason: err.Error()}
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Name is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid names.
func (n Name) MarshalYAML() (interface{}, error) {
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", n.TypeName(), err)
	}
	type alias Name
	return (alias)(n), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded name.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	type alias Name
	if err := node.Decode((*alias)(n)); err != nil {
		return &rerrors.UnmarshalError{Type: "Name", Reason: err.Error()}
	}
	if err := n.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Name is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that Name implements model.Model.
var (
	_ model.Model            = (*Name)(nil)
	_ model.Comparable[Name] = Name{}
)
