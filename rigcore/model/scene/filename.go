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
	"strings"

	rerrors "dirpx.dev/rignom/rigcore/errors"
	"dirpx.dev/rignom/rigcore/model"
	"gopkg.in/yaml.v3"
)

// Filename is a structured working-file name: asset, pipeline step and
// version, joined as "{asset}_{step}_{version}" ("hero_rig_v003"). The
// file extension is outside this model; hosts attach their own.
//
// This type implements the model.Model interface. A Filename serializes
// to a mapping of its fields; use Build or String for the flat form.
type Filename struct {
	// Asset identifies the asset being worked on.
	Asset AssetName `json:"asset" yaml:"asset"`

	// Step is the pipeline step the file belongs to.
	Step Step `json:"step" yaml:"step"`

	// Version is the iteration counter.
	Version FileVersion `json:"version" yaml:"version"`
}

// ParseFilename decomposes a flat working-file name into a Filename. The
// name must carry exactly three underscore-separated fields; a file
// extension, if present, must be stripped by the caller first.
func ParseFilename(s string) (Filename, error) {
	segments := strings.Split(s, "_")
	if len(segments) != 3 {
		return Filename{}, &rerrors.MalformedError{Name: s, Separators: len(segments) - 1, Max: 2}
	}

	asset, err := ParseAssetName(segments[0])
	if err != nil {
		return Filename{}, err
	}
	step, err := ParseStep(segments[1])
	if err != nil {
		return Filename{}, err
	}
	version, err := ParseFileVersion(segments[2])
	if err != nil {
		return Filename{}, err
	}

	return Filename{Asset: asset, Step: step, Version: version}, nil
}

// Build validates the Filename and joins its fields into the flat form.
func (f Filename) Build() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f.join(), nil
}

func (f Filename) join() string {
	return f.Asset.String() + "_" + f.Step.String() + "_" + f.Version.String()
}

// String returns the joined flat form without validating. For a valid
// Filename this equals Build's output.
func (f Filename) String() string {
	return f.join()
}

// Redacted returns a safe string representation for production logging,
// identical to String.
func (f Filename) Redacted() string {
	return f.String()
}

// TypeName returns the canonical name of this model type.
func (f Filename) TypeName() string {
	return "Filename"
}

// IsZero reports whether this Filename contains no meaningful data.
func (f Filename) IsZero() bool {
	return f.Asset.IsZero() && f.Step.IsZero() && f.Version.IsZero()
}

// Validate checks every field.
func (f Filename) Validate() error {
	if err := f.Asset.Validate(); err != nil {
		return err
	}
	if err := f.Step.Validate(); err != nil {
		return err
	}
	return f.Version.Validate()
}

// Equal reports whether two filenames have identical fields.
func (f Filename) Equal(other Filename) bool {
	return f == other
}

// NextVersion returns a copy of the Filename with the version bumped.
func (f Filename) NextVersion() Filename {
	f.Version = f.Version.Next()
	return f
}

// MarshalJSON implements json.Marshaler, rejecting invalid filenames.
func (f Filename) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	type alias Filename
	return json.Marshal((alias)(f))
}

// UnmarshalJSON implements json.Unmarshaler, validating the decoded
// filename.
func (f *Filename) UnmarshalJSON(data []byte) error {
	type alias Filename
	if err := json.Unmarshal(data, (*alias)(f)); err != nil {
		return &rerrors.UnmarshalError{Type: "Filename", Data: data, Reason: err.Error()}
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Filename is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler, rejecting invalid filenames.
func (f Filename) MarshalYAML() (interface{}, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	type alias Filename
	return (alias)(f), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, validating the decoded
// filename.
func (f *Filename) UnmarshalYAML(node *yaml.Node) error {
	type alias Filename
	if err := node.Decode((*alias)(f)); err != nil {
		return &rerrors.UnmarshalError{Type: "Filename", Reason: err.Error()}
	}
	if err := f.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Filename is invalid: %w", err)
	}
	return nil
}

// Compile-time verification that Filename implements model.Model.
var (
	_ model.Model                = (*Filename)(nil)
	_ model.Comparable[Filename] = Filename{}
)
