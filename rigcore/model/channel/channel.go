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

// Package channel models transform channels and their abbreviated forms:
// "tx" expands to "translateX", "r" to "rotate". Riggers type the short
// forms; host attribute names want the long ones.
package channel

import (
	"encoding/json"
	"fmt"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// Channel is one of the three transform channels.
//
// This type implements the model.Model interface. Channel serializes to
// its lowercase word form.
type Channel uint8

const (
	// Translate is the translation channel. Abbreviation: "t".
	Translate Channel = iota

	// Rotate is the rotation channel. Abbreviation: "r".
	Rotate

	// Scale is the scale channel. Abbreviation: "s".
	Scale

	maxChannel
)

// String constants for Channel values.
const (
	TranslateStr = "translate"
	RotateStr    = "rotate"
	ScaleStr     = "scale"
)

// ParseChannel parses a string into a Channel. The full word and the
// single-letter abbreviation are accepted case-insensitively.
func ParseChannel(s string) (Channel, error) {
	if s == "" {
		return 0, fmt.Errorf("Channel string cannot be empty")
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case TranslateStr, "t":
		return Translate, nil
	case RotateStr, "r":
		return Rotate, nil
	case ScaleStr, "s":
		return Scale, nil
	default:
		return 0, fmt.Errorf("unknown Channel: %q", s)
	}
}

// String returns the lowercase word form of the Channel, or "unknown"
// for out-of-range values.
func (c Channel) String() string {
	switch c {
	case Translate:
		return TranslateStr
	case Rotate:
		return RotateStr
	case Scale:
		return ScaleStr
	default:
		return "unknown"
	}
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (c Channel) Redacted() string {
	return c.String()
}

// TypeName returns the canonical name of this model type.
func (c Channel) TypeName() string {
	return "Channel"
}

// IsZero reports whether this Channel is in a zero state. The zero value
// corresponds to Translate, which is valid and meaningful, so IsZero
// always returns false.
func (c Channel) IsZero() bool {
	return false
}

// Validate checks that the Channel value is within the valid range of
// defined constants.
func (c Channel) Validate() error {
	if c >= maxChannel {
		return fmt.Errorf("Channel value %d is out of valid range [0, %d)", c, maxChannel)
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Marshaling fails if the value is
// out of range.
func (c Channel) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseChannel.
func (c *Channel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseChannel(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler. Marshaling fails if the value is
// out of range.
func (c Channel) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseChannel.
func (c *Channel) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseChannel(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// Axis is an optional transform axis tacked onto a channel.
type Axis uint8

const (
	// NoAxis addresses the whole channel ("translate").
	NoAxis Axis = iota

	// X is the x axis.
	X

	// Y is the y axis.
	Y

	// Z is the z axis.
	Z

	maxAxis
)

// ParseAxis parses a string into an Axis, case-insensitively. The empty
// string parses to NoAxis.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoAxis, nil
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	default:
		return 0, fmt.Errorf("unknown Axis: %q", s)
	}
}

// String returns the uppercase axis letter as it appears in attribute
// names, or "" for NoAxis.
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return ""
	}
}

// Validate checks that the Axis value is within the valid range of
// defined constants.
func (a Axis) Validate() error {
	if a >= maxAxis {
		return fmt.Errorf("Axis value %d is out of valid range [0, %d)", a, maxAxis)
	}
	return nil
}

// Expand converts an abbreviated channel token into the full attribute
// name: "tx" becomes "translateX", "t" becomes "translate", "RY" becomes
// "rotateY". Input is case-insensitive; unknown abbreviations return a
// ParseError.
func Expand(abbrev string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(abbrev))
	if len(norm) < 1 || len(norm) > 2 {
		return "", &rerrors.ParseError{Type: "Channel", Value: abbrev}
	}

	ch, err := ParseChannel(norm[:1])
	if err != nil {
		return "", &rerrors.ParseError{Type: "Channel", Value: abbrev}
	}

	axis := NoAxis
	if len(norm) == 2 {
		axis, err = ParseAxis(norm[1:])
		if err != nil {
			return "", &rerrors.ParseError{Type: "Channel", Value: abbrev}
		}
	}

	return ch.String() + axis.String(), nil
}

// Compile-time verification that Channel implements model.Model.
var _ model.Model = (*Channel)(nil)
