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

// Package name implements the rig nomenclature grammar: parsing candidate
// strings into structured names, validating them against the format rules,
// and generating conformant names from structured fields.
//
// A conformant name has the shape
//
//	{side}_{basename}{context}_{freeSpace}_{suffix}
//
// where side is a single letter (l, r, c, u), the basename block and the
// optional free space are camelCase ASCII alphanumeric tokens, and the
// suffix is a three-letter code registered in the suffix registry. The
// underscore is reserved as the structural separator, so a name never
// carries more than MaxSeparators of them.
//
// All functions in this package are pure and safe for concurrent use.
// Every rule violation is a returned error value from rigcore/errors,
// never a panic.
package name

import (
	"regexp"
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
)

const (
	// MaxSeparators is the maximum number of structural underscores a
	// conformant name may carry: side | basename block | free space |
	// suffix.
	MaxSeparators = 3

	// SuffixLength is the exact length of the trailing suffix code.
	SuffixLength = 3

	// DefaultMaxNameLength is the default upper bound on total name
	// length. Host applications start misbehaving well before arbitrary
	// lengths; see Limits for tuning.
	DefaultMaxNameLength = 100
)

const (
	// allowedCharsFmt admits ASCII letters and digits only. Accented
	// characters, whitespace and punctuation are never valid inside a
	// token.
	allowedCharsFmt = `^[a-zA-Z0-9]+$`

	// sideFmt admits exactly one side letter.
	sideFmt = `^[lrcu]$`

	// suffixFmt admits exactly SuffixLength lowercase ASCII letters.
	suffixFmt = `^[a-z]{3}$`
)

var (
	// AllowedCharsRegexp is the compiled character-set rule for free-text
	// tokens. Safe for concurrent use.
	AllowedCharsRegexp = regexp.MustCompile(allowedCharsFmt)

	sideRegexp   = regexp.MustCompile(sideFmt)
	suffixRegexp = regexp.MustCompile(suffixFmt)
)

// SplitStructural splits a candidate name on the underscore separator and
// verifies the separator budget. It returns a MalformedError when the name
// carries more than MaxSeparators underscores; segment content is not
// inspected here.
func SplitStructural(s string) ([]string, error) {
	segments := strings.Split(s, "_")
	if sep := len(segments) - 1; sep > MaxSeparators {
		return nil, &rerrors.MalformedError{Name: s, Separators: sep, Max: MaxSeparators}
	}
	return segments, nil
}

// IsValidSideToken reports whether tok is exactly one of the four side
// letters: l, r, c, u.
func IsValidSideToken(tok string) bool {
	return sideRegexp.MatchString(tok)
}

// IsValidSuffixToken reports whether tok is shaped like a suffix code:
// exactly three lowercase ASCII letters. Shape only; registry membership is
// a separate check.
func IsValidSuffixToken(tok string) bool {
	return suffixRegexp.MatchString(tok)
}

// IsCamelCase reports whether tok follows the nomenclature casing rule:
// first character a lowercase letter, uppercase letters never doubled, and
// digits never followed by a lowercase letter. "ikSpine01" and "feather01"
// pass; "IkSpine", "ikSPine" and "arm01x" do not.
//
// The rule needs adjacency lookahead, which RE2 cannot express, so it is
// checked with a scan rather than a regular expression.
func IsCamelCase(tok string) bool {
	if tok == "" {
		return false
	}
	if tok[0] < 'a' || tok[0] > 'z' {
		return false
	}
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
			if i+1 < len(tok) && tok[i+1] >= 'A' && tok[i+1] <= 'Z' {
				return false
			}
		case c >= '0' && c <= '9':
			if i+1 < len(tok) && tok[i+1] >= 'a' && tok[i+1] <= 'z' {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidFreeTextToken reports whether tok is a conformant free-text
// token: non-empty, ASCII alphanumeric, and camelCase.
func IsValidFreeTextToken(tok string) bool {
	return AllowedCharsRegexp.MatchString(tok) && IsCamelCase(tok)
}
