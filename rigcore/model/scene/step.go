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

// stepFmt admits lowercase ASCII letters only: a step is a single plain
// word ("rig", "mod", "groom").
const stepFmt = `^[a-z]+$`

// StepRegexp is the compiled step rule. Safe for concurrent use.
var StepRegexp = regexp.MustCompile(stepFmt)

// Step is the pipeline step a working file belongs to, the middle field
// of a Filename.
//
// This type implements the model.Model interface. The zero value (empty
// string) fails Validate.
type Step string

// Common pipeline steps. The set is open; any lowercase word is a valid
// Step.
const (
	StepModeling Step = "mod"
	StepRigging  Step = "rig"
	StepGrooming Step = "groom"
)

// ParseStep parses a string into a Step, trimming whitespace and
// lowercasing first.
func ParseStep(s string) (Step, error) {
	step := Step(strings.ToLower(strings.TrimSpace(s)))
	if err := step.Validate(); err != nil {
		return "", err
	}
	return step, nil
}

// String returns the step itself.
func (s Step) String() string {
	return string(s)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (s Step) Redacted() string {
	return s.String()
}

// TypeName returns the canonical name of this model type.
func (s Step) TypeName() string {
	return "Step"
}

// IsZero reports whether the Step is empty.
func (s Step) IsZero() bool {
	return s == ""
}

// Validate checks that the Step is a non-empty lowercase word.
func (s Step) Validate() error {
	if s.IsZero() {
		return &rerrors.EmptyFieldError{Field: "Step"}
	}
	if !StepRegexp.MatchString(string(s)) {
		return &rerrors.InvalidCharacterError{Field: "Step", Value: string(s)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, rejecting invalid steps.
func (s Step) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseStep.
func (s *Step) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseStep(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return s.Validate()
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid steps.
func (s Step) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseStep.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseStep(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return s.Validate()
}

// Compile-time verification that Step implements model.Model.
var _ model.Model = (*Step)(nil)
