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

	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// Side represents the laterality marker of a rig node name, the first
// field of a conformant name.
//
// This type implements the model.Model interface. Side serializes to its
// single-letter form in JSON and YAML.
//
// The zero value of Side (0) corresponds to Unsided, making the type
// usable with default initialization: a Name built without an explicit
// side is unsided, not invalid.
type Side uint8

const (
	// Unsided marks objects with no laterality: a global scale group, a
	// spine joint chain, a settings node. Letter: "u".
	Unsided Side = iota

	// Left marks objects on the character's left. Letter: "l".
	Left

	// Right marks objects on the character's right. Letter: "r".
	Right

	// Center marks objects on the character's midline, such as a root or
	// a chest control. Letter: "c".
	Center

	// maxSide is an internal sentinel marking the upper bound of valid
	// Side values. It is not a valid Side and MUST NOT be used in user
	// code.
	maxSide
)

// Single-letter string constants for Side values, as they appear in names.
const (
	UnsidedStr = "u"
	LeftStr    = "l"
	RightStr   = "r"
	CenterStr  = "c"
)

// ParseSide parses a string into a Side value. Both the single-letter form
// and the full word are accepted, case-insensitively: "l", "L", "left" and
// " Left " all parse to Left.
//
// Callers MUST check the returned error before using the value.
func ParseSide(s string) (Side, error) {
	if s == "" {
		return 0, fmt.Errorf("Side string cannot be empty")
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case UnsidedStr, "unsided", "none":
		return Unsided, nil
	case LeftStr, "left":
		return Left, nil
	case RightStr, "right":
		return Right, nil
	case CenterStr, "center", "middle":
		return Center, nil
	default:
		return 0, fmt.Errorf("unknown Side: %q", s)
	}
}

// String returns the single-letter representation of the Side as written
// in names, or "unknown" for out-of-range values.
func (s Side) String() string {
	switch s {
	case Unsided:
		return UnsidedStr
	case Left:
		return LeftStr
	case Right:
		return RightStr
	case Center:
		return CenterStr
	default:
		return "unknown"
	}
}

// Word returns the full lowercase word for the Side ("left", "right",
// "center", "unsided"), for diagnostics and CLI output.
func (s Side) Word() string {
	switch s {
	case Unsided:
		return "unsided"
	case Left:
		return "left"
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return "unknown"
	}
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (s Side) Redacted() string {
	return s.String()
}

// TypeName returns the canonical name of this model type.
func (s Side) TypeName() string {
	return "Side"
}

// IsZero reports whether this Side is in a zero state. The zero value
// corresponds to Unsided, which is a valid and meaningful side, so IsZero
// always returns false.
func (s Side) IsZero() bool {
	return false
}

// Validate checks that the Side value is within the valid range of defined
// constants.
func (s Side) Validate() error {
	if s >= maxSide {
		return fmt.Errorf("Side value %d is out of valid range [0, %d)", s, maxSide)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Side to its
// single-letter form. Marshaling fails if the value is out of range.
func (s Side) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseSide.
func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseSide(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return s.Validate()
}

// MarshalYAML implements yaml.Marshaler, serializing the Side to its
// single-letter form. Marshaling fails if the value is out of range.
func (s Side) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseSide.
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseSide(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return s.Validate()
}

// Compile-time verification that Side implements model.Model.
var _ model.Model = (*Side)(nil)
