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

// Kind distinguishes what a suffix code describes about the object carrying
// it: the concrete node type of the object (joint, locator, multMatrix) or
// the purpose the object serves in the rig regardless of its node type
// (controller, proxy, placement).
//
// The distinction matters for automated checking: a node-type suffix can be
// verified against the actual type of the node in the scene, while a
// purpose suffix can only be judged by the rigger.
//
// This type implements the model.Model interface. Kind values serialize to
// "nodeType" and "purpose" in both JSON and YAML. The zero value (0)
// corresponds to NodeType.
type Kind uint8

const (
	// NodeType marks a suffix that names the concrete node type of the
	// object, such as "jnt" for joint or "mum" for multMatrix.
	//
	// Serialized string: "nodeType"
	NodeType Kind = iota

	// Purpose marks a suffix that names the role an object plays in the
	// rig, independent of its node type: "ctl" for controllers, "prx" for
	// proxies, "plc" for placements. Purpose suffixes exist only for
	// hierarchical (DAG) objects.
	//
	// Serialized string: "purpose"
	Purpose

	// maxKind is an internal sentinel marking the upper bound of valid
	// Kind values. It is not a valid Kind and MUST NOT be used in user
	// code.
	maxKind
)

// String constants for Kind values.
const (
	NodeTypeStr = "nodeType"
	PurposeStr  = "purpose"
)

// ParseKind parses a string into a Kind value. The input is trimmed and
// lowercased before matching, so "NodeType", "nodetype" and "  nodeType  "
// all parse to NodeType.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return 0, fmt.Errorf("Kind string cannot be empty")
	}

	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case strings.ToLower(NodeTypeStr):
		return NodeType, nil
	case strings.ToLower(PurposeStr):
		return Purpose, nil
	default:
		return 0, fmt.Errorf("unknown Kind: %q", s)
	}
}

// String returns the camelCase string representation of the Kind, or
// "unknown" for out-of-range values.
func (k Kind) String() string {
	switch k {
	case NodeType:
		return NodeTypeStr
	case Purpose:
		return PurposeStr
	default:
		return "unknown"
	}
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (k Kind) Redacted() string {
	return k.String()
}

// TypeName returns the canonical name of this model type.
func (k Kind) TypeName() string {
	return "Kind"
}

// IsZero reports whether this Kind is in a zero state. The zero value
// corresponds to NodeType, which is valid and meaningful, so IsZero always
// returns false.
func (k Kind) IsZero() bool {
	return false
}

// Validate checks that the Kind value is within the valid range of defined
// constants.
func (k Kind) Validate() error {
	if k >= maxKind {
		return fmt.Errorf("Kind value %d is out of valid range [0, %d)", k, maxKind)
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Marshaling fails if the value is
// out of range.
func (k Kind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseKind.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*k = parsed
	return k.Validate()
}

// MarshalYAML implements yaml.Marshaler. Marshaling fails if the value is
// out of range.
func (k Kind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", k.TypeName(), err)
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseKind.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*k = parsed
	return k.Validate()
}

// Compile-time verification that Kind implements model.Model.
var _ model.Model = (*Kind)(nil)
