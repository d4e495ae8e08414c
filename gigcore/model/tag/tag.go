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

// Package tag implements the gig tag format: single tags encoded as
// URI-reference-like tokens and whitespace-separated sequences of tags
// appended to free-form text.
//
// A tag has an optional Label, an optional Facet and an ordered list of
// Property values. Its canonical token is
//
//	facet["?" key=value("&" key=value)*]["#" label]
//
// with every component percent-encoded. A tag is valid if it has a label,
// or a facet together with at least one property or a date-like facet.
// Whether a facet is date-like depends on the model.Policy of the Codec.
//
// Example:
//
//	seq := tag.DecodeTags("Great show! #Live wishlist@20220625")
//	fmt.Println(seq.UndecodedPrefix) // "Great show! "
//	fmt.Println(len(seq.Tags))       // 2
package tag

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model"
	"gopkg.in/yaml.v3"
)

// Compile-time check that Tag implements model.Model interface.
var _ model.Model = (*Tag)(nil)

// Tag is a single gig tag.
//
// Tag is an immutable value type; decoders never share mutable state with
// the returned value except for the Props slice, which callers MUST NOT
// modify in place.
type Tag struct {
	// Label is the freeform label; empty means no label.
	Label Label `json:"label,omitempty" yaml:"label,omitempty"`

	// Facet is the optional category; empty means no facet.
	Facet Facet `json:"facet,omitempty" yaml:"facet,omitempty"`

	// Props are the ordered properties; duplicate keys are allowed.
	Props []Property `json:"props,omitempty" yaml:"props,omitempty"`
}

// NewTag creates a Tag and validates it under the default policy.
//
// Example:
//
//	t, err := tag.NewTag("My Label", "wishlist@20220625")
func NewTag(label Label, facet Facet, props ...Property) (Tag, error) {
	return NewTagWith(model.DateSuffix, label, facet, props...)
}

// NewTagWith creates a Tag and validates it under policy.
func NewTagWith(policy model.Policy, label Label, facet Facet, props ...Property) (Tag, error) {
	t := Tag{Label: label, Facet: facet}
	if len(props) > 0 {
		t.Props = slices.Clone(props)
	}
	if err := t.ValidateWith(policy); err != nil {
		return Tag{}, err
	}
	return t, nil
}

// HasLabel reports whether the tag has a label.
func (t Tag) HasLabel() bool {
	return !t.Label.IsZero()
}

// HasFacet reports whether the tag has a facet.
func (t Tag) HasFacet() bool {
	return !t.Facet.IsZero()
}

// HasProps reports whether the tag has at least one property.
func (t Tag) HasProps() bool {
	return len(t.Props) > 0
}

// IsValid reports whether the tag is valid under policy.
func (t Tag) IsValid(policy model.Policy) bool {
	return t.ValidateWith(policy) == nil
}

// Validate checks the tag under the default policy, model.DateSuffix. Use
// ValidateWith for tags produced under another policy.
func (t Tag) Validate() error {
	return t.ValidateWith(model.DateSuffix)
}

// ValidateWith checks every component of the tag and the completeness rule
// under policy: a tag needs a label, or a facet with at least one property
// or a date-like facet. Failures are *errors.ValidationError.
func (t Tag) ValidateWith(policy model.Policy) error {
	if !policy.Valid() {
		return &errors.ValidationError{Type: "Tag", Reason: "unknown policy", Value: int(policy)}
	}
	if err := t.Label.Validate(); err != nil {
		return err
	}
	if err := t.Facet.Validate(policy); err != nil {
		return err
	}
	for i, p := range t.Props {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("props[%d]: %w", i, err)
		}
	}
	if t.HasLabel() {
		return nil
	}
	if t.HasFacet() && (t.HasProps() || t.Facet.DateLike(policy)) {
		return nil
	}
	return &errors.ValidationError{
		Type:   "Tag",
		Reason: "needs a label, or a facet with properties or a date under " + policy.String(),
	}
}

// String returns the encoded token of the tag without validating it.
func (t Tag) String() string {
	var b strings.Builder
	t.writeToken(&b)
	return b.String()
}

// writeToken appends the canonical token. Absent components are omitted
// together with their markers.
func (t Tag) writeToken(b *strings.Builder) {
	b.WriteString(t.Facet.Encode())
	for i, p := range t.Props {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.String())
	}
	if t.HasLabel() {
		b.WriteByte('#')
		b.WriteString(t.Label.Encode())
	}
}

// Redacted returns a representation safe for logs. The label and property
// values are user content and are omitted.
func (t Tag) Redacted() string {
	return fmt.Sprintf("Tag{Facet:%q, Label:%t, Props:%d}", string(t.Facet), t.HasLabel(), len(t.Props))
}

// TypeName returns "Tag".
func (t Tag) TypeName() string {
	return "Tag"
}

// IsZero reports whether the tag has no label, no facet and no properties.
func (t Tag) IsZero() bool {
	return !t.HasLabel() && !t.HasFacet() && !t.HasProps()
}

// Equal reports whether both tags have the same label, facet and properties
// in the same order. A nil and an empty Props slice are equal.
func (t Tag) Equal(other Tag) bool {
	return t.Label == other.Label &&
		t.Facet == other.Facet &&
		slices.EqualFunc(t.Props, other.Props, Property.Equal)
}

// MarshalText implements encoding.TextMarshaler using the token form under
// the default codec.
func (t Tag) MarshalText() ([]byte, error) {
	s, err := EncodeTag(t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the token form
// under the default codec.
func (t *Tag) UnmarshalText(text []byte) error {
	decoded, err := DecodeTag(string(text))
	if err != nil {
		return err
	}
	*t = decoded
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the tag as an object
// with "label", "facet" and "props" fields.
func (t Tag) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tag Tag
	return json.Marshal(tag(t))
}

// UnmarshalJSON implements json.Unmarshaler. The receiver is left untouched
// when the decoded tag is invalid.
func (t *Tag) UnmarshalJSON(data []byte) error {
	type tag Tag
	var v tag
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", t.TypeName(), err)
	}
	if err := Tag(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	*t = Tag(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Tag) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type tag Tag
	return tag(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	type tag Tag
	var v tag
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", t.TypeName(), err)
	}
	if err := Tag(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", t.TypeName(), err)
	}
	*t = Tag(v)
	return nil
}
