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
	"regexp"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model/suffix"
)

// trailingSuffixRegexp captures a trailing three-letter suffix on an
// arbitrary string, conformant or not.
var trailingSuffixRegexp = regexp.MustCompile(`^[a-zA-Z0-9_]+_([a-z]{3})$`)

// GroupSuffix is the suffix of grouping transforms.
const GroupSuffix = suffix.Code("grp")

// ExtractSuffix returns the trailing three-letter suffix of an arbitrary
// string, together with whether one is present. The string does not need
// to be conformant and the suffix does not need to be registered; this is
// a purely lexical extraction.
func ExtractSuffix(s string) (suffix.Code, bool) {
	m := trailingSuffixRegexp.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return suffix.Code(m[1]), true
}

// HasSuffix reports whether the string lexically ends in a three-letter
// suffix.
func HasSuffix(s string) bool {
	_, ok := ExtractSuffix(s)
	return ok
}

// TrimSuffix returns the string without its trailing suffix and
// separator. Strings without a suffix are returned unchanged.
func TrimSuffix(s string) string {
	if !HasSuffix(s) {
		return s
	}
	return s[:len(s)-SuffixLength-1]
}

// Flatten collapses a name into a single camelCase token by removing the
// underscores and capitalizing each following segment:
// "l_feather01_fluff_ctl" becomes "lFeather01FluffCtl". Used when a name
// must survive in a context where the underscore is structural, such as a
// segment of another name.
func Flatten(s string) string {
	segments := strings.Split(s, "_")

	var b strings.Builder
	b.Grow(len(s))
	for i, seg := range segments {
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(capitalize(seg))
	}
	return b.String()
}

// CombineFlattened flattens each name and joins the results with a single
// underscore, producing one level of structure from many flat names.
func CombineFlattened(names []string) string {
	flat := make([]string, len(names))
	for i, n := range names {
		flat[i] = Flatten(n)
	}
	return strings.Join(flat, "_")
}

// DeriveGroupName derives the name of a grouping transform for the given
// object name, tagged with base ("Position", "Offset"). base MUST be a
// non-empty ASCII alphanumeric token; its capitalization is kept as
// given.
//
// For a conformant name the base is glued onto the last text block and
// the suffix replaced with "grp": ("Position", "l_feather01_ctl") yields
// "l_feather01Position_grp". A non-conformant name keeps its text, loses
// any trailing suffix, and gets "{base}_grp" glued on without a new
// separator.
func DeriveGroupName(base, s string) (string, error) {
	if base == "" {
		return "", &rerrors.EmptyFieldError{Field: "base"}
	}
	if !AllowedCharsRegexp.MatchString(base) {
		return "", &rerrors.InvalidCharacterError{Field: "base", Value: base}
	}

	n, err := Parse(s)
	if err != nil {
		return TrimSuffix(s) + base + "_" + GroupSuffix.String(), nil
	}

	// Format directly: the glued block takes base's capitalization
	// verbatim, which a rebuild through Build would second-guess.
	last := string(n.Basename) + base
	if !n.FreeSpace.IsZero() {
		last = string(n.Basename) + "_" + string(n.FreeSpace) + base
	}
	return n.Side.String() + "_" + last + "_" + GroupSuffix.String(), nil
}

// capitalize uppercases the first byte of an ASCII token.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
