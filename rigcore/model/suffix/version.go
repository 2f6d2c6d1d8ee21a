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
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// datasetVersion is the semantic version of the seeded suffix tables.
// Revise the minor component when codes are added, the major component
// when a code or category changes meaning.
const datasetVersion = "1.0.0"

// DatasetVersion returns the semantic version of the registry's seed
// tables. The registry is a versioned constant dataset rather than
// externally loaded configuration; tools compare this version to detect
// nomenclature drift between pipeline components.
func DatasetVersion() Version {
	v, err := ParseVersion(datasetVersion)
	if err != nil {
		panic(fmt.Sprintf("suffix: bad dataset version constant: %v", err))
	}
	return v
}

// Version is a SemVer 2.0.0 version identifying a build of the suffix
// dataset. It wraps github.com/blang/semver/v4 for parsing and comparison
// so that precedence semantics are never hand-rolled.
//
// This type implements the model.Model interface. Version values serialize
// to their canonical "Major.Minor.Patch" string form in both JSON and
// YAML. The zero value (0.0.0) is treated as "no version" and fails
// Validate.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a SemVer string into a Version. An optional leading
// "v" is tolerated and stripped. Prerelease and build metadata are
// rejected: dataset versions are always plain releases.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")

	bv, err := bsemver.Parse(trimmed)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	if len(bv.Pre) > 0 || len(bv.Build) > 0 {
		return Version{}, fmt.Errorf("dataset version %q must not carry prerelease or build metadata", s)
	}

	return Version{Major: int(bv.Major), Minor: int(bv.Minor), Patch: int(bv.Patch)}, nil
}

// Compare reports the SemVer precedence ordering of v relative to other:
// -1 when v is lower, 0 when equal, +1 when higher.
func (v Version) Compare(other Version) int {
	a := bsemver.Version{Major: uint64(v.Major), Minor: uint64(v.Minor), Patch: uint64(v.Patch)}
	b := bsemver.Version{Major: uint64(other.Major), Minor: uint64(other.Minor), Patch: uint64(other.Patch)}
	return a.Compare(b)
}

// String returns the canonical "Major.Minor.Patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (v Version) Redacted() string {
	return v.String()
}

// TypeName returns the canonical name of this model type.
func (v Version) TypeName() string {
	return "Version"
}

// IsZero reports whether the Version is exactly 0.0.0.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0
}

// Validate checks that all components are non-negative and that the
// version is not the zero 0.0.0 placeholder.
func (v Version) Validate() error {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return fmt.Errorf("Version components must be non-negative, got %s", v)
	}
	if v.IsZero() {
		return fmt.Errorf("Version must not be 0.0.0")
	}
	return nil
}

// Equal reports whether two versions have identical components.
func (v Version) Equal(other Version) bool {
	return v == other
}

// MarshalJSON implements json.Marshaler, serializing to the canonical
// string form after validation.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return v.Validate()
}

// MarshalYAML implements yaml.Marshaler, serializing to the canonical
// string form after validation.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", v.TypeName(), err)
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseVersion.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*v = parsed
	return v.Validate()
}

// Compile-time verification that Version implements model.Model.
var (
	_ model.Model               = (*Version)(nil)
	_ model.Comparable[Version] = Version{}
)
