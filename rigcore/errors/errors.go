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

// Package errors provides reusable error types for the rignom model surface.
//
// This package defines two families of errors used across the rignom
// packages. The first family is the generic quartet shared by all enum-like
// and string-backed model types (ParseError, MarshalError, UnmarshalError,
// ValidationError), mirroring the parsing, marshaling and unmarshaling life
// cycle of a model value. The second family is the nomenclature taxonomy:
// the structured, recoverable outcomes that name validation reports to
// callers (MalformedError, EmptyFieldError, InvalidCharacterError,
// UnknownSuffixError, SuffixClassMismatchError, LengthExceededError).
//
// All errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing / validation code,
//   - easy to recognize via errors.As type assertions,
//   - and easy for users to understand when surfaced in lint reports.
//
// Every nomenclature violation is an expected, recoverable outcome. None of
// these types should ever be raised as a panic; validation returns them as
// values, and batch tooling aggregates them (see rigcore/model.ValidateAll
// and the name.Checker report) rather than stopping at the first failure.
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Side",
// "Kind", "Channel"), and Value contains the exact string that could not be
// interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance to users or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Side").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"rignom: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "rignom: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Side"),
// and Value contains the underlying numeric value that was deemed invalid.
// A MarshalError is a guardrail: it prevents invalid enum-like values from
// being silently emitted into JSON or YAML, and in most cases indicates a
// programming error such as an unchecked type conversion.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"rignom: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "rignom: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment), and Reason provides a
// human-readable description of what went wrong. Callers MAY wrap
// UnmarshalError with additional context when propagating it further up the
// stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal. Callers MAY choose to
	// log or redact this field depending on size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"rignom: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message;
// callers can log it separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "rignom: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Entry", "Filename"), Field optionally identifies which field
// failed validation, Reason provides a human-readable explanation, and
// Value optionally contains the problematic value.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value. May be nil.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"rignom: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"rignom: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "rignom: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "rignom: invalid " + e.Type + ": " + e.Reason
}

// MalformedError is returned when a candidate name has more structural
// underscore separators than the nomenclature format allows. The format
// admits at most three separators (side | basename block | free space |
// suffix); a fourth underscore makes the segment assignment ambiguous and
// the name unrecoverable as a nomenclature name.
type MalformedError struct {
	// Name is the candidate name that failed structural splitting.
	Name string

	// Separators is the number of underscores found in Name.
	Separators int

	// Max is the maximum number of separators the format allows.
	Max int
}

// Error implements the error interface for MalformedError.
func (e *MalformedError) Error() string {
	return "rignom: malformed name " + strconv.Quote(e.Name) + ": " +
		strconv.Itoa(e.Separators) + " separators (maximum " + strconv.Itoa(e.Max) + ")"
}

// EmptyFieldError is returned when a structural segment that is present in
// a candidate name, or a required field of a structured name, is empty.
// Consecutive underscores produce empty segments; a Name built without a
// basename or suffix produces an empty required field.
type EmptyFieldError struct {
	// Field names the empty segment or field (for example, "Basename",
	// "segment 2").
	Field string
}

// Error implements the error interface for EmptyFieldError.
func (e *EmptyFieldError) Error() string {
	return "rignom: empty field: " + e.Field
}

// InvalidCharacterError is returned when a free-text token contains a
// character outside the allowed ASCII alphanumeric set, or breaks the
// camelCase rule (first character lowercase, no doubled uppercase letters,
// digits not followed by lowercase letters). Accented characters and
// whitespace are always invalid.
type InvalidCharacterError struct {
	// Field names the token that failed (for example, "Basename",
	// "FreeSpace").
	Field string

	// Value is the offending token.
	Value string
}

// Error implements the error interface for InvalidCharacterError.
func (e *InvalidCharacterError) Error() string {
	return "rignom: invalid characters in " + e.Field + ": " + strconv.Quote(e.Value)
}

// UnknownSuffixError is returned when the trailing segment of a candidate
// name is not registered in the suffix registry. This covers both segments
// that are not shaped like a suffix at all and well-shaped three-letter
// codes with no registry entry.
type UnknownSuffixError struct {
	// Code is the unresolvable suffix token.
	Code string
}

// Error implements the error interface for UnknownSuffixError.
func (e *UnknownSuffixError) Error() string {
	return "rignom: unknown suffix " + strconv.Quote(e.Code)
}

// SuffixClassMismatchError is returned when a resolved suffix belongs to an
// object class other than the one the caller declared. A non-hierarchical
// (non-DAG) object may only carry node-type suffixes of the
// non-hierarchical table; a hierarchical (DAG) object may carry
// hierarchical node-type or purpose suffixes.
type SuffixClassMismatchError struct {
	// Code is the suffix whose class disagrees with the expectation.
	Code string

	// Want is the caller's declared object class ("hierarchical" or
	// "nonHierarchical").
	Want string

	// Got is the object class the registry records for Code.
	Got string
}

// Error implements the error interface for SuffixClassMismatchError.
func (e *SuffixClassMismatchError) Error() string {
	return "rignom: suffix " + strconv.Quote(e.Code) + " is " + e.Got +
		", expected " + e.Want
}

// LengthExceededError is returned when a candidate name is longer than the
// configured maximum. The maximum is a tunable limit (name.Limits), not a
// property of the grammar itself.
type LengthExceededError struct {
	// Length is the rune length of the candidate name.
	Length int

	// Max is the configured maximum name length.
	Max int
}

// Error implements the error interface for LengthExceededError.
func (e *LengthExceededError) Error() string {
	return "rignom: name length " + strconv.Itoa(e.Length) +
		" exceeds maximum " + strconv.Itoa(e.Max)
}
