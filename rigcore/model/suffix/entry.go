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

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// categoryFmt is the pattern for a category name: camelCase, ASCII
	// letters and digits, starting with a lowercase letter. Category names
	// come from the host application's node-type vocabulary
	// ("multMatrix", "nurbsCurve") or the purpose vocabulary
	// ("controller"), all of which follow this shape.
	categoryFmt = `^[a-z][a-zA-Z0-9]*$`
)

var (
	// CategoryRegexp is the compiled regular expression used to validate
	// category names. Safe for concurrent use.
	CategoryRegexp = regexp.MustCompile(categoryFmt)
)

// Entry is one row of the suffix registry: the binding between a semantic
// category (a node type or a purpose), its fixed three-letter code, the
// object class the category belongs to, and whether the category describes
// a node type or a purpose.
//
// This type implements the model.Model interface. Entries are immutable in
// practice: the registry hands out copies and the seeded tables are never
// mutated at runtime.
//
// The zero value of Entry is not valid; a valid entry MUST have a category,
// a code, and in-range class and kind values.
type Entry struct {
	// Category is the semantic name the code stands for, such as "joint",
	// "multMatrix" or "controller". Unique across the registry.
	Category string `json:"category" yaml:"category"`

	// Code is the three-letter suffix bound to Category. Unique across
	// the registry.
	Code Code `json:"code" yaml:"code"`

	// Class is the object class the category belongs to. Purpose entries
	// are always Hierarchical.
	Class ObjectClass `json:"class" yaml:"class"`

	// Kind records whether Category names a node type or a purpose.
	Kind Kind `json:"kind" yaml:"kind"`
}

// String returns a compact human-readable representation of the entry,
// such as "jnt=joint (hierarchical nodeType)".
func (e Entry) String() string {
	return fmt.Sprintf("%s=%s (%s %s)", e.Code, e.Category, e.Class, e.Kind)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (e Entry) Redacted() string {
	return e.String()
}

// TypeName returns the canonical name of this model type.
func (e Entry) TypeName() string {
	return "Entry"
}

// IsZero reports whether this Entry contains no meaningful data.
func (e Entry) IsZero() bool {
	return e.Category == "" && e.Code.IsZero() && e.Class == 0 && e.Kind == 0
}

// Validate checks all entry invariants: a non-empty camelCase category, a
// well-formed code, in-range class and kind, and the structural rule that
// purpose entries are always hierarchical (purposes exist only for DAG
// objects).
func (e Entry) Validate() error {
	if e.Category == "" {
		return &rerrors.ValidationError{Type: "Entry", Field: "Category", Reason: "must not be empty"}
	}
	if !CategoryRegexp.MatchString(e.Category) {
		return &rerrors.ValidationError{
			Type:   "Entry",
			Field:  "Category",
			Reason: "must be camelCase ASCII letters and digits",
			Value:  e.Category,
		}
	}
	if err := e.Code.Validate(); err != nil {
		return fmt.Errorf("Entry.Code: %w", err)
	}
	if err := e.Class.Validate(); err != nil {
		return fmt.Errorf("Entry.Class: %w", err)
	}
	if err := e.Kind.Validate(); err != nil {
		return fmt.Errorf("Entry.Kind: %w", err)
	}
	if e.Kind == Purpose && e.Class != Hierarchical {
		return &rerrors.ValidationError{
			Type:   "Entry",
			Field:  "Kind",
			Reason: "purpose suffixes exist only for hierarchical objects",
			Value:  e.Code,
		}
	}
	return nil
}

// Equal reports whether two entries bind the same category, code, class
// and kind.
func (e Entry) Equal(other Entry) bool {
	return e == other
}

// MarshalJSON implements json.Marshaler, rejecting invalid entries.
func (e Entry) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	type alias Entry
	return json.Marshal((alias)(e))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type alias Entry
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return &rerrors.UnmarshalError{Type: "Entry", Data: data, Reason: err.Error()}
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Entry is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid entries.
func (e Entry) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", e.TypeName(), err)
	}
	type alias Entry
	return (alias)(e), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded entry.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	type alias Entry
	if err := node.Decode((*alias)(e)); err != nil {
		return &rerrors.UnmarshalError{Type: "Entry", Reason: err.Error()}
	}
	if err := e.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Entry is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that Entry implements model.Model.
var (
	_ model.Model             = (*Entry)(nil)
	_ model.Comparable[Entry] = Entry{}
)
