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
	"regexp"

	"dirpx.dev/gigtag/gigcore/errors"
	"gopkg.in/yaml.v3"
)

// Policy selects how a facet is recognized as date-like.
//
// The gig tag format has been specified in two mutually exclusive variants:
//
//  1. Facets carry a date as a suffix, introduced by '@' and immediately
//     preceded by a non-whitespace character or nothing at all, for example
//     "wishlist@20220625" or "@20220625".
//
//  2. Facets are dates as a whole, for example "20220625".
//
// The completeness rule of a tag depends on this choice, because a tag with
// only a facet is valid if and only if that facet is date-like. A Policy is
// therefore threaded through every encode and decode operation explicitly;
// exactly one policy is active per codec.
//
// Recognition is purely syntactic. "@00000000" is date-like under DateSuffix
// even though it does not denote a calendar date.
type Policy int

const (
	// DateSuffix recognizes facets that end with '@' followed by exactly
	// eight decimal digits, where the '@' is either the first character of
	// the facet or preceded by a non-whitespace character.
	//
	// Facets ending in whitespace followed by such a suffix are invalid
	// under this policy, for example "played @20220625".
	//
	// Example:
	//   "@20220625"           date-like, prefix ""
	//   "wishlist@20220625"   date-like, prefix "wishlist"
	//   "a @20220625"         invalid facet
	//   "20220625"            not date-like
	DateSuffix Policy = iota

	// WholeFacet recognizes facets consisting of exactly eight decimal
	// digits.
	//
	// Example:
	//   "20220625"            date-like
	//   "@20220625"           not date-like
	WholeFacet
)

// Compile-time check that Policy implements model.Model interface.
var _ Model = (*Policy)(nil)

// String constants for Policy values used in serialization, parsing and
// configuration files. Changing any of these strings is a breaking change.
const (
	DateSuffixStr = "date-suffix"
	WholeFacetStr = "whole-facet"
)

// DateDigits is the number of decimal digits of a date-like facet (yyyyMMdd).
const DateDigits = 8

// DateSuffixDelimiter introduces the date digits under DateSuffix.
const DateSuffixDelimiter = "@"

// whiteSpaceClass is the Unicode White_Space property as a character class
// body, matching unicode.IsSpace.
const whiteSpaceClass = `\s\x0B\p{Z}\x{85}`

var (
	// DateSuffixRegexp matches facets with a valid date-like suffix. The
	// delimiter must not be preceded by white space.
	DateSuffixRegexp = regexp.MustCompile(`(?:^|[^` + whiteSpaceClass + `])@[0-9]{8}$`)

	// InvalidDateSuffixRegexp matches facets whose date-like suffix is
	// preceded by white space.
	InvalidDateSuffixRegexp = regexp.MustCompile(`[` + whiteSpaceClass + `]@[0-9]{8}$`)

	// WholeFacetRegexp matches facets that are exactly eight decimal digits.
	WholeFacetRegexp = regexp.MustCompile(`^[0-9]{8}$`)
)

// String returns the canonical string representation of the Policy value:
//
//	DateSuffix -> "date-suffix"
//	WholeFacet -> "whole-facet"
//
// Values outside the defined constants render as "unknown".
func (p Policy) String() string {
	switch p {
	case DateSuffix:
		return DateSuffixStr
	case WholeFacet:
		return WholeFacetStr
	default:
		return "unknown"
	}
}

// ParsePolicy converts a textual representation into a Policy value.
//
// Accepted inputs:
//
//	"date-suffix", "DateSuffix", "date_suffix", "DATE_SUFFIX" -> DateSuffix
//	"whole-facet", "WholeFacet", "whole_facet", "WHOLE_FACET" -> WholeFacet
//
// Any other input returns a *ParseError and the returned Policy MUST NOT be
// used.
func ParsePolicy(str string) (Policy, error) {
	switch str {
	case DateSuffixStr, "DateSuffix", "date_suffix", "DATE_SUFFIX":
		return DateSuffix, nil
	case WholeFacetStr, "WholeFacet", "whole_facet", "WHOLE_FACET":
		return WholeFacet, nil
	default:
		return DateSuffix, &errors.ParseError{Type: "Policy", Value: str}
	}
}

// Valid reports whether the Policy value is one of the defined constants.
func (p Policy) Valid() bool {
	return p == DateSuffix || p == WholeFacet
}

// DateLike reports whether facet is date-like under p and returns the text
// before the date digits together with the eight digits themselves. Under
// DateSuffix the prefix excludes the '@' delimiter; under WholeFacet the
// prefix is always empty.
//
// DateLike is syntactic only and never inspects whether the digits form a
// real calendar date. Invalid policies recognize nothing.
func (p Policy) DateLike(facet string) (prefix, digits string, ok bool) {
	switch p {
	case DateSuffix:
		if !DateSuffixRegexp.MatchString(facet) {
			return "", "", false
		}
		split := len(facet) - DateDigits
		return facet[:split-1], facet[split:], true
	case WholeFacet:
		if !WholeFacetRegexp.MatchString(facet) {
			return "", "", false
		}
		return "", facet, true
	default:
		return "", "", false
	}
}

// RejectsFacet reports whether facet carries a date-like suffix that p
// forbids. Only DateSuffix forbids anything: a suffix preceded by white
// space.
func (p Policy) RejectsFacet(facet string) bool {
	return p == DateSuffix && InvalidDateSuffixRegexp.MatchString(facet)
}

// FormatDate renders the facet text for prefix and the eight date digits
// under p. Under WholeFacet the prefix MUST be empty.
func (p Policy) FormatDate(prefix, digits string) (string, error) {
	switch p {
	case DateSuffix:
		return prefix + DateSuffixDelimiter + digits, nil
	case WholeFacet:
		if prefix != "" {
			return "", &errors.ValidationError{
				Type:   "Facet",
				Reason: "whole-facet dates cannot carry a prefix",
				Value:  prefix,
			}
		}
		return digits, nil
	default:
		return "", &errors.MarshalError{Type: "Policy", Value: int(p)}
	}
}

// MarshalJSON implements json.Marshaler for Policy.
//
// A valid Policy is serialized as its canonical string. Invalid values
// return a *MarshalError.
func (p Policy) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Policy", Value: int(p)}
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Policy.
//
// Both the string forms accepted by ParsePolicy and the numeric constants
// (0 for DateSuffix, 1 for WholeFacet) are accepted.
func (p *Policy) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Policy", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Policy", Data: data, Reason: err.Error()}
		}
		parsed, err := ParsePolicy(str)
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Policy", Data: data, Reason: err.Error()}
	}
	if !Policy(i).Valid() {
		return &errors.UnmarshalError{Type: "Policy", Data: data, Reason: "invalid numeric value"}
	}
	*p = Policy(i)
	return nil
}

// MarshalText implements encoding.TextMarshaler for Policy.
func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Policy", Value: int(p)}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Policy.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// TypeName returns "Policy".
func (p Policy) TypeName() string {
	return "Policy"
}

// Redacted returns the same string representation as String(); policies
// carry no user content.
func (p Policy) Redacted() string {
	return p.String()
}

// IsZero reports whether the Policy has its zero value, DateSuffix. The zero
// value is a valid policy and the default of every codec.
func (p Policy) IsZero() bool {
	return p == DateSuffix
}

// Equal reports whether this Policy is equal to another value of type
// Policy or *Policy.
func (p Policy) Equal(other any) bool {
	switch v := other.(type) {
	case Policy:
		return p == v
	case *Policy:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate returns an error if the Policy is not one of the defined
// constants.
func (p Policy) Validate() error {
	if !p.Valid() {
		return &errors.MarshalError{Type: "Policy", Value: int(p)}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Policy.
func (p Policy) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, &errors.MarshalError{Type: "Policy", Value: int(p)}
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Policy.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Policy", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParsePolicy(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
