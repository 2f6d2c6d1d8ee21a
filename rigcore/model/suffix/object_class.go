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
	"strings"

	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// ObjectClass partitions scene-graph objects into the two populations the
// nomenclature distinguishes: objects that live inside the parent/child
// hierarchy (DAG) and objects that live outside it (non-DAG, typically
// utility computation nodes). The class of an object determines which
// suffix tables are eligible for its name: non-hierarchical objects may
// only carry node-type suffixes, while hierarchical objects may carry
// either a node-type suffix or a purpose suffix.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. ObjectClass values serialize to their camelCase
// string representations ("nonHierarchical", "hierarchical") in both JSON
// and YAML.
//
// The zero value of ObjectClass (0) corresponds to NonHierarchical, making
// the type usable with default initialization.
type ObjectClass uint8

const (
	// NonHierarchical identifies objects that exist outside the scene
	// hierarchy (non-DAG): computation and utility nodes such as matrix
	// operators, constants, ramps and remap nodes. Names for these objects
	// MUST use a suffix from the non-hierarchical node-type table; purpose
	// suffixes are never valid for them.
	//
	// Serialized string: "nonHierarchical"
	NonHierarchical ObjectClass = iota

	// Hierarchical identifies objects that participate in the parent/child
	// scene hierarchy (DAG): transforms, joints, shapes, constraints.
	// Names for these objects may use a suffix from the hierarchical
	// node-type table or one of the purpose suffixes (controller, proxy,
	// placement).
	//
	// Serialized string: "hierarchical"
	Hierarchical

	// maxObjectClass is an internal sentinel marking the upper bound of
	// valid ObjectClass values. It is not a valid ObjectClass and MUST NOT
	// be used in user code.
	maxObjectClass
)

// String constants for ObjectClass values, enabling type-safe string
// comparisons in switch statements and other contexts.
const (
	NonHierarchicalStr = "nonHierarchical"
	HierarchicalStr    = "hierarchical"
)

// ParseObjectClass parses a string into an ObjectClass value, normalizing
// and validating the input before matching against the canonical names.
//
// The input is trimmed and lowercased before matching, so "NonHierarchical",
// "nonhierarchical" and "  nonHierarchical  " all parse to NonHierarchical.
// The aliases "dag" and "nondag" are also accepted, since riggers describe
// the partition in DAG terms at least as often as in hierarchy terms.
//
// Callers MUST check the returned error before using the value. This
// function is pure and safe for concurrent use.
func ParseObjectClass(s string) (ObjectClass, error) {
	if s == "" {
		return 0, fmt.Errorf("ObjectClass string cannot be empty")
	}

	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case strings.ToLower(NonHierarchicalStr), "nondag", "non-dag":
		return NonHierarchical, nil
	case strings.ToLower(HierarchicalStr), "dag":
		return Hierarchical, nil
	default:
		return 0, fmt.Errorf("unknown ObjectClass: %q", s)
	}
}

// String returns the camelCase string representation of the ObjectClass.
// If the value is out of range, String returns "unknown" to prevent
// silent failures.
func (c ObjectClass) String() string {
	switch c {
	case NonHierarchical:
		return NonHierarchicalStr
	case Hierarchical:
		return HierarchicalStr
	default:
		return "unknown"
	}
}

// Redacted returns a safe string representation for production logging.
// ObjectClass contains no sensitive data, so Redacted is identical to
// String.
func (c ObjectClass) Redacted() string {
	return c.String()
}

// TypeName returns the canonical name of this model type.
func (c ObjectClass) TypeName() string {
	return "ObjectClass"
}

// IsZero reports whether this ObjectClass is in a zero state. The zero
// value (0) corresponds to NonHierarchical, which is a valid and meaningful
// class, so IsZero always returns false. Callers needing to distinguish
// "not set" from "explicitly non-hierarchical" SHOULD use a pointer type.
func (c ObjectClass) IsZero() bool {
	return false
}

// Validate checks that the ObjectClass value is within the valid range of
// defined constants. Out-of-range values can occur through unchecked type
// conversions or deserialization bugs.
func (c ObjectClass) Validate() error {
	if c >= maxObjectClass {
		return fmt.Errorf("ObjectClass value %d is out of valid range [0, %d)", c, maxObjectClass)
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the ObjectClass to its
// camelCase string representation. Marshaling fails if the value is out of
// range, preventing invalid data from being serialized.
func (c ObjectClass) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string
// into an ObjectClass value via ParseObjectClass.
func (c *ObjectClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseObjectClass(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// MarshalYAML implements yaml.Marshaler, serializing the ObjectClass to its
// camelCase string representation. Marshaling fails if the value is out of
// range.
func (c ObjectClass) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar
// into an ObjectClass value via ParseObjectClass.
func (c *ObjectClass) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseObjectClass(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*c = parsed
	return c.Validate()
}

// Compile-time verification that ObjectClass implements model.Model.
var _ model.Model = (*ObjectClass)(nil)
