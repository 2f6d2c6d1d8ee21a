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

package name

import (
	"fmt"
	"strings"
	"unicode/utf8"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model/suffix"
	"dirpx.dev/rxmerr"
)

// ClassExpectation declares which object class a checked name is supposed
// to belong to, so that the checker can flag a DAG suffix on a non-DAG
// object and vice versa.
type ClassExpectation uint8

const (
	// ExpectAny accepts every registered suffix without a class check.
	ExpectAny ClassExpectation = iota

	// ExpectNonHierarchical admits only node-type suffixes of the
	// non-hierarchical table.
	ExpectNonHierarchical

	// ExpectHierarchical admits hierarchical node-type suffixes and
	// purpose suffixes.
	ExpectHierarchical

	maxClassExpectation
)

// ParseClassExpectation parses a string into a ClassExpectation. "any",
// the class names, and the DAG aliases are accepted case-insensitively.
func ParseClassExpectation(s string) (ClassExpectation, error) {
	switch norm := normalizeToken(s); norm {
	case "any", "":
		return ExpectAny, nil
	default:
		class, err := suffix.ParseObjectClass(norm)
		if err != nil {
			return 0, fmt.Errorf("unknown ClassExpectation: %q", s)
		}
		if class == suffix.Hierarchical {
			return ExpectHierarchical, nil
		}
		return ExpectNonHierarchical, nil
	}
}

// String returns "any" or the expected class name.
func (e ClassExpectation) String() string {
	switch e {
	case ExpectAny:
		return "any"
	case ExpectNonHierarchical:
		return suffix.NonHierarchicalStr
	case ExpectHierarchical:
		return suffix.HierarchicalStr
	default:
		return "unknown"
	}
}

// Result is the outcome of checking one candidate name. The boolean flags
// mirror the individual nomenclature rules, so tooling can report which
// rule a name breaks rather than a bare pass/fail; Violations carries the
// corresponding errors in rule order.
type Result struct {
	// Input is the candidate string as given.
	Input string

	// Format reports structural conformance: separator budget, no empty
	// segments, segment assignment, allowed character set.
	Format bool

	// CamelCase reports that the free-text tokens follow the casing rule.
	CamelCase bool

	// KnownSuffix reports that the trailing segment resolves in the
	// registry.
	KnownSuffix bool

	// Length reports that the name fits in the configured maximum.
	Length bool

	// ClassMatch reports that the resolved suffix agrees with the
	// declared object class. Always true under ExpectAny or when the
	// suffix is unknown.
	ClassMatch bool

	// Violations holds one error per broken rule, empty for a conformant
	// name.
	Violations []error
}

// IsValid reports whether the candidate broke no rule.
func (r Result) IsValid() bool {
	return len(r.Violations) == 0
}

// Err returns all violations aggregated into a single error, or nil for a
// conformant name.
func (r Result) Err() error {
	c := rxmerr.NewCollector()
	for _, v := range r.Violations {
		c.Append(v)
	}
	return c.Err()
}

// Checker validates candidate names against the full rule set: grammar,
// length limit, and suffix class expectation. Unlike Parse, which stops at
// the first violation, Check runs every rule and reports all failures at
// once, the shape a lint report needs.
//
// The zero value is usable: it checks with DefaultLimits, ExpectAny, and
// the default registry. A Checker is immutable and safe for concurrent
// use.
type Checker struct {
	// Limits are the tunable bounds; the zero value means DefaultLimits.
	Limits Limits

	// Class is the object-class expectation for checked names.
	Class ClassExpectation

	// Registry resolves suffixes; nil means suffix.Default().
	Registry *suffix.Registry
}

// Check runs every nomenclature rule against the candidate and returns
// the full Result. Check never panics on a rule violation; a broken name
// is an expected input.
func (c Checker) Check(s string) Result {
	limits := c.Limits
	if limits.IsZero() {
		limits = DefaultLimits()
	}
	registry := c.Registry
	if registry == nil {
		registry = suffix.Default()
	}

	res := Result{
		Input:       s,
		Format:      true,
		CamelCase:   true,
		KnownSuffix: true,
		Length:      true,
		ClassMatch:  true,
	}
	fail := func(flag *bool, err error) {
		*flag = false
		res.Violations = append(res.Violations, err)
	}

	if n := utf8.RuneCountInString(s); n > limits.MaxNameLength {
		fail(&res.Length, &rerrors.LengthExceededError{Length: n, Max: limits.MaxNameLength})
	}
	if s == "" {
		fail(&res.Format, &rerrors.EmptyFieldError{Field: "Name"})
		res.CamelCase = false
		res.KnownSuffix = false
		return res
	}

	segments, err := SplitStructural(s)
	if err != nil {
		fail(&res.Format, err)
		// The tail may still be inspectable; keep checking what we can.
		segments = splitAll(s)
	}
	for i, seg := range segments {
		if seg == "" {
			fail(&res.Format, &rerrors.EmptyFieldError{Field: fmt.Sprintf("segment %d", i+1)})
		}
	}

	c.checkSuffix(registry, segments[len(segments)-1], &res, fail)
	c.checkTokens(segments, &res, fail)
	return res
}

// checkSuffix resolves the trailing segment and applies the class
// expectation.
func (c Checker) checkSuffix(registry *suffix.Registry, last string, res *Result, fail func(*bool, error)) {
	if !IsValidSuffixToken(last) {
		fail(&res.KnownSuffix, &rerrors.UnknownSuffixError{Code: last})
		return
	}
	entry, ok := registry.ByCode(suffix.Code(last))
	if !ok {
		fail(&res.KnownSuffix, &rerrors.UnknownSuffixError{Code: last})
		return
	}

	var want suffix.ObjectClass
	switch c.Class {
	case ExpectNonHierarchical:
		want = suffix.NonHierarchical
	case ExpectHierarchical:
		want = suffix.Hierarchical
	default:
		return
	}
	if entry.Class != want {
		fail(&res.ClassMatch, &rerrors.SuffixClassMismatchError{
			Code: last,
			Want: want.String(),
			Got:  entry.Class.String(),
		})
	}
}

// checkTokens applies the free-text rules to the middle segments,
// consuming a leading side letter first.
func (c Checker) checkTokens(segments []string, res *Result, fail func(*bool, error)) {
	middle := segments[:len(segments)-1]
	if len(middle) > 0 && IsValidSideToken(middle[0]) {
		middle = middle[1:]
	}

	if len(middle) == 0 {
		fail(&res.Format, &rerrors.EmptyFieldError{Field: "Basename"})
		return
	}

	for i, tok := range middle {
		if tok == "" {
			continue // already reported as an empty segment
		}
		field := tokenField(i, len(middle))
		switch {
		case !AllowedCharsRegexp.MatchString(tok):
			fail(&res.Format, &rerrors.InvalidCharacterError{Field: field, Value: tok})
		case !IsCamelCase(tok):
			fail(&res.CamelCase, &rerrors.InvalidCharacterError{Field: field, Value: tok})
		}
	}

	if len(middle) > 2 {
		fail(&res.Format, &rerrors.InvalidCharacterError{Field: "Side", Value: middle[0]})
	}
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func splitAll(s string) []string {
	return strings.Split(s, "_")
}

// tokenField labels a middle segment for diagnostics.
func tokenField(i, total int) string {
	switch {
	case i == 0:
		return "Basename"
	case i == 1 && total == 2:
		return "FreeSpace"
	default:
		return fmt.Sprintf("segment %d", i+2)
	}
}
