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

package tag

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model"
	"dirpx.dev/gigtag/gigcore/model/percent"
	"gopkg.in/yaml.v3"
)

// Compile-time check that Property implements model.Model interface.
var _ model.Model = (*Property)(nil)

// Property is a single key/value pair of a tag, carried in the query
// component of its token. The properties of a tag are ordered and the same
// key may appear more than once.
type Property struct {
	// Key names the property. It MUST NOT be empty and MUST NOT have
	// leading or trailing white space.
	Key string `json:"key" yaml:"key"`

	// Value is arbitrary text and may be empty.
	Value string `json:"value" yaml:"value"`
}

// String returns the encoded "key=value" form of the property.
func (p Property) String() string {
	return percent.Encode(p.Key, percent.Props) + "=" + percent.Encode(p.Value, percent.Props)
}

// Redacted returns the property with its value hidden.
func (p Property) Redacted() string {
	return "Property{Key:" + p.Key + ", Value:[redacted]}"
}

// TypeName returns "Property".
func (p Property) TypeName() string {
	return "Property"
}

// IsZero reports whether both key and value are empty.
func (p Property) IsZero() bool {
	return p.Key == "" && p.Value == ""
}

// Equal reports whether both properties have the same key and value.
func (p Property) Equal(other Property) bool {
	return p.Key == other.Key && p.Value == other.Value
}

// Validate checks that the key is present and trimmed and that key and
// value are valid UTF-8.
func (p Property) Validate() error {
	if p.Key == "" {
		return &errors.ValidationError{Type: "Property", Field: "Key", Reason: "must not be empty"}
	}
	if !utf8.ValidString(p.Key) {
		return &errors.ValidationError{Type: "Property", Field: "Key", Reason: "not valid UTF-8", Value: p.Key}
	}
	if strings.TrimSpace(p.Key) != p.Key {
		return &errors.ValidationError{Type: "Property", Field: "Key", Reason: "leading or trailing white space", Value: p.Key}
	}
	if !utf8.ValidString(p.Value) {
		return &errors.ValidationError{Type: "Property", Field: "Value", Reason: "not valid UTF-8"}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Property) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type property Property
	return json.Marshal(property(p))
}

// UnmarshalJSON implements json.Unmarshaler. The decoded property is
// validated and the receiver is left untouched on failure.
func (p *Property) UnmarshalJSON(data []byte) error {
	type property Property
	var v property
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", p.TypeName(), err)
	}
	if err := Property(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = Property(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Property) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type property Property
	return property(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Property) UnmarshalYAML(node *yaml.Node) error {
	type property Property
	var v property
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", p.TypeName(), err)
	}
	if err := Property(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", p.TypeName(), err)
	}
	*p = Property(v)
	return nil
}
