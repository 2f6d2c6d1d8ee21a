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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one. This is the batch entry point that
// lint tooling uses to produce a complete diagnostic report over many node
// names in a single pass.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with the model's position in the slice (zero-indexed) and its
// type name from TypeName, so callers can identify exactly which instances
// failed and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error aggregating every individual failure via rxmerr.Collector.
// If all models pass, it returns nil. The function never panics and always
// processes the entire slice even when early elements fail, ensuring
// complete error reporting. Empty slices are valid and return nil.
//
// Example usage for batch validation:
//
//	names := []*name.Name{n1, n2, n3}
//	if err := model.ValidateAll(names); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models by
// removing all instances where IsZero returns true. Callers SHOULD use it
// to drop empty placeholder values (for example, unset FreeSpace fields
// collected from a form) before serialization or batch processing.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input. If all models are zero, or the input is
// empty or nil, the function returns an empty non-nil slice. FilterZero
// does not validate models; it only checks IsZero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It is
// designed for test setup and package initialization code where an invalid
// model is a programming error rather than a recoverable runtime
// condition — most prominently, the registry seed tables, which MUST be
// correct at process start.
//
// If validation succeeds, MustValidate returns the model unchanged,
// allowing inline initialization. If validation fails, it panics with a
// message that includes the model's type name and the validation error.
//
// Callers MUST NOT use MustValidate in request handlers, pipelines, or any
// context where a panic would disrupt a running tool.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default. When unsafe is false (the recommended value), it
// delegates to Redacted; when unsafe is true, it delegates to String.
//
// The function exists so that the choice between safe and unsafe
// representations is always explicit and auditable at the call site.
//
//	log.Info("checked", "name", model.SafeString(n, false))
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it. If validation
// fails, ToJSON returns an error wrapping the failure with the model's
// type name and no marshaling is attempted, ensuring invalid data never
// reaches the encoder.
//
// Callers SHOULD use ToJSON instead of json.Marshal directly when they
// need the guarantee that only valid models are serialized.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it. If validation
// fails, ToYAML returns an error wrapping the failure with the model's
// type name and no marshaling is attempted.
//
// Callers SHOULD use ToYAML instead of yaml.Marshal directly when writing
// configuration files such as name-checker limits.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result,
// rejecting syntactically correct payloads that violate model invariants.
// If FromJSON returns an error, the model variable's state is undefined and
// MUST NOT be used.
//
// Callers SHOULD use FromJSON instead of json.Unmarshal directly when
// loading data from untrusted or external sources.
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result,
// rejecting well-formed YAML that violates model invariants. If FromYAML
// returns an error, the model variable's state is undefined and MUST NOT
// be used.
//
// Callers SHOULD use FromYAML instead of yaml.Unmarshal directly when
// loading configuration files.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model by serializing it to JSON and
// deserializing into a new instance. The clone shares no references with
// the original. For performance-critical paths, implement Cloneable[T]
// with hand-written copy logic instead.
//
// Callers MUST check the returned error before using the cloned model; on
// error the returned value is a zero-value instance.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by comparing their JSON
// representations byte-for-byte. If either model fails to marshal, Equal
// returns false. For performance-critical paths, implement Comparable[T]
// instead.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
