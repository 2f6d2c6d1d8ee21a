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
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// attributePathFmt decomposes a full attribute path: an optional pipe
// separated hierarchy ending in a pipe, the object name, a dot, and the
// attribute, which may itself carry dots and index brackets
// ("worldMatrix[0]").
const attributePathFmt = `^([a-zA-Z0-9_|]+\|)?([a-zA-Z0-9_]+)\.([a-zA-Z0-9_\[\].]+)$`

// AttributePathRegexp is the compiled attribute-path rule. Safe for
// concurrent use.
var AttributePathRegexp = regexp.MustCompile(attributePathFmt)

// AttributePath is a decomposed reference to an attribute of a scene
// object: "rig|l_arm_grp.translateX" splits into hierarchy "rig|", object
// "l_arm_grp" and attribute "translateX".
//
// This type implements the model.Model interface.
type AttributePath struct {
	// Hierarchy is the pipe separated ancestry of the object, trailing
	// pipe included. Empty when the path is unparented.
	Hierarchy string `json:"hierarchy,omitempty" yaml:"hierarchy,omitempty"`

	// Object is the node carrying the attribute.
	Object string `json:"object" yaml:"object"`

	// Attribute is the attribute name, compound and indexed forms
	// included ("translateX", "worldMatrix[0]").
	Attribute string `json:"attribute" yaml:"attribute"`
}

// ParseAttributePath decomposes a full attribute path string.
func ParseAttributePath(s string) (AttributePath, error) {
	m := AttributePathRegexp.FindStringSubmatch(s)
	if m == nil {
		return AttributePath{}, &rerrors.ParseError{Type: "AttributePath", Value: s}
	}
	return AttributePath{Hierarchy: m[1], Object: m[2], Attribute: m[3]}, nil
}

// String returns the joined full path.
func (p AttributePath) String() string {
	return p.Hierarchy + p.Object + "." + p.Attribute
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (p AttributePath) Redacted() string {
	return p.String()
}

// TypeName returns the canonical name of this model type.
func (p AttributePath) TypeName() string {
	return "AttributePath"
}

// IsZero reports whether this AttributePath contains no meaningful data.
func (p AttributePath) IsZero() bool {
	return p == AttributePath{}
}

// Validate checks that the fields joined back together still satisfy the
// path rule, which also enforces the per-field character sets.
func (p AttributePath) Validate() error {
	if p.Object == "" {
		return &rerrors.EmptyFieldError{Field: "Object"}
	}
	if p.Attribute == "" {
		return &rerrors.EmptyFieldError{Field: "Attribute"}
	}
	if p.Hierarchy != "" && !strings.HasSuffix(p.Hierarchy, "|") {
		return &rerrors.ValidationError{
			Type:   "AttributePath",
			Field:  "Hierarchy",
			Reason: "must end with a pipe",
			Value:  p.Hierarchy,
		}
	}
	if !AttributePathRegexp.MatchString(p.String()) {
		return &rerrors.ValidationError{
			Type:   "AttributePath",
			Reason: "fields do not form a valid path",
			Value:  p.String(),
		}
	}
	return nil
}

// Equal reports whether two paths have identical fields.
func (p AttributePath) Equal(other AttributePath) bool {
	return p == other
}

// MarshalJSON implements json.Marshaler, rejecting invalid paths.
func (p AttributePath) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias AttributePath
	return json.Marshal((alias)(p))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded path.
func (p *AttributePath) UnmarshalJSON(data []byte) error {
	type alias AttributePath
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &rerrors.UnmarshalError{Type: "AttributePath", Data: data, Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled AttributePath is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid paths.
func (p AttributePath) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias AttributePath
	return (alias)(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded path.
func (p *AttributePath) UnmarshalYAML(node *yaml.Node) error {
	type alias AttributePath
	if err := node.Decode((*alias)(p)); err != nil {
		return &rerrors.UnmarshalError{Type: "AttributePath", Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled AttributePath is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that AttributePath implements model.Model.
var (
	_ model.Model                     = (*AttributePath)(nil)
	_ model.Comparable[AttributePath] = AttributePath{}
)
