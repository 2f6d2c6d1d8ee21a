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

package suffix

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// CodeLength is the exact number of characters in a suffix code. The
	// nomenclature fixes suffixes at three lowercase letters; there are no
	// shorter or longer codes.
	CodeLength = 3

	// codeFmt is the canonical pattern for a suffix code: exactly three
	// lowercase ASCII letters. Digits, uppercase letters, and accented
	// characters are never valid in a code.
	codeFmt = `^[a-z]{3}$`
)

var (
	// CodeRegexp is the compiled regular expression used to validate
	// suffix codes. It is safe for concurrent use by multiple goroutines.
	// Callers SHOULD prefer ParseCode or Code.Validate over matching
	// against this regexp directly, so that normalization and error
	// reporting remain consistent.
	CodeRegexp = regexp.MustCompile(codeFmt)
)

// Code represents a three-letter lowercase suffix code, the trailing field
// of every conformant node name. A Code is just the token; whether it
// resolves to a category is the registry's concern, so a structurally valid
// Code may still be unknown to the registry.
//
// This type implements the model.Model interface. The zero value (empty
// string) represents "no code" and fails Validate, because every conformant
// name requires a suffix.
//
// Example values: "jnt", "ctl", "mum", "flc".
type Code string

// ParseCode parses a string into a Code value, trimming whitespace and
// lowercasing before validation. "  JNT  " parses to Code("jnt").
//
// ParseCode returns an error when the normalized input is not exactly three
// lowercase ASCII letters. Callers MUST check the returned error before
// using the value.
func ParseCode(s string) (Code, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	code := Code(normalized)
	if err := code.Validate(); err != nil {
		return "", fmt.Errorf("invalid code %q: %w", s, err)
	}

	return code, nil
}

// String returns the code itself.
func (c Code) String() string {
	return string(c)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (c Code) Redacted() string {
	return c.String()
}

// TypeName returns the canonical name of this model type.
func (c Code) TypeName() string {
	return "Code"
}

// IsZero reports whether this Code is empty. Unlike optional fields, an
// empty Code is zero AND invalid: the suffix field is mandatory in every
// name.
func (c Code) IsZero() bool {
	return c == ""
}

// Validate checks that the Code is exactly three lowercase ASCII letters.
// It does not consult the registry; resolving a code to a category is a
// separate concern (see Registry.ByCode).
func (c Code) Validate() error {
	if c.IsZero() {
		return &rerrors.EmptyFieldError{Field: "Code"}
	}
	if !CodeRegexp.MatchString(string(c)) {
		return &rerrors.ParseError{Type: "Code", Value: string(c)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Marshaling fails for codes that
// are not three lowercase letters.
func (c Code) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON implements json.Unmarshaler via ParseCode.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseCode(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler. Marshaling fails for codes that
// are not three lowercase letters.
func (c Code) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return string(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseCode.
func (c *Code) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseCode(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// Compile-time verification that Code implements model.Model.
var _ model.Model = (*Code)(nil)
