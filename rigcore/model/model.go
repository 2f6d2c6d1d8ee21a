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

// Package model defines the core contracts that all rignom domain model
// types MUST implement to ensure consistency, type safety, and proper
// behavior across the nomenclature surface.
//
// Every domain type representing a nomenclature entity (such as Side, Code,
// Entry, Name, Filename) SHOULD implement the Model interface or its
// constituent parts (Validatable, Serializable, Loggable, Identifiable,
// ZeroCheckable). These interfaces establish a common contract for
// validation, serialization, logging, and identity that enables generic
// operations and guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states cannot be constructed or persisted.
// Serialization provides round-trip guarantees for configuration files and
// tool payloads. Loggable provides safe and unsafe string representations.
// Identifiable enables reflection and structured logging. ZeroCheckable
// supports optional field detection.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. All rignom model types are designed
// as immutable value types, making them naturally safe for concurrent read
// access. Callers MUST synchronize any concurrent writes to mutable
// instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, Clone, and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for rignom domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and unsafe
// (full) string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model SHOULD NOT mutate the receiver unless explicitly documented.
// Concurrent reads are safe; concurrent writes require external
// synchronization.
//
// Example implementation sketch:
//
//	type Step string
//
//	func (s Step) Validate() error    { ... }
//	func (s Step) TypeName() string   { return "Step" }
//	func (s Step) IsZero() bool       { return s == "" }
//	func (s Step) Redacted() string   { return s.String() }
//	func (s Step) String() string     { return string(s) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Step)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in parsing, generation, or transmission.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency, recursively validate nested objects by calling their
// Validate methods, and return nil if and only if the instance is fully
// valid. When validation fails, the returned error MUST describe what is
// invalid in a way that helps callers diagnose and fix the problem. Prefer
// specific messages like "Entry.Category must not be empty" over generic
// ones.
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state (the process-wide suffix registry is constant and therefore
// admissible).
//
// Callers SHOULD invoke Validate at critical boundaries: after unmarshaling
// data from JSON or YAML, after constructing instances from user input, and
// before generating names from structured fields.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to
// and deserialized from JSON and YAML. All model types MUST support both
// formats to enable configuration files (typically YAML), tool payloads
// (typically JSON), and debugging output.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and MUST call Validate after unmarshaling so
// that deserialized data meets all invariants. A value serialized to JSON
// and then deserialized MUST equal the original value, and the same MUST
// hold for YAML.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not safe for concurrent
// use; callers MUST ensure exclusive access during unmarshaling.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. Nomenclature data carries no credentials or PII, so for rignom
// types Redacted is typically identical to String; the split is kept so
// that generic tooling shared with other DIRPX model surfaces can always
// choose the safe form without knowing the concrete type.
//
// The String method returns a human-readable representation for
// development, debugging, and test assertions. Both methods MUST be fast,
// MUST NOT mutate the receiver, MUST NOT have side effects, and MUST be
// safe to call concurrently.
type Loggable interface {
	// Redacted returns a string representation that is always safe to log.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type,
// unique within the rignom domain, in CamelCase, and without a package
// prefix (for example, "Side", "Entry", "Filename"). Type names are used in
// structured logging, error messages, and diagnostics.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they are in a zero or empty state. This enables optional field detection
// (a zero FreeSpace means "no free space segment") and conditional logic
// based on whether an instance contains meaningful data.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. Note that zero is not the same as invalid: a zero FreeSpace is
// valid, while a zero Name (no basename, no suffix) is not.
//
// IsZero MUST be fast, deterministic, idempotent, and allocation-free. It
// MUST NOT have side effects and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the optional contract for types that can be compared
// for equality. Equal MUST be reflexive, symmetric, transitive, and
// consistent, MUST compare all semantically significant fields, and MUST
// NOT mutate the receiver or the argument.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type.
	Equal(other T) bool
}

// Cloneable defines the optional contract for types that can create deep
// copies of themselves. The returned instance MUST share no references
// with the original, MUST preserve the logical value exactly, and MUST be
// valid whenever the original is valid.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance.
	Clone() T
}
