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
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model"
	"dirpx.dev/gigtag/gigcore/model/percent"
)

// DateLayout is the ISO-8601 basic calendar date layout of date digits.
const DateLayout = "20060102"

// schemeRegexp matches a leading URI scheme. Tokens starting with a scheme
// are absolute URIs and never tags.
var schemeRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// Facet is the optional category of a tag, carried in the path component of
// its token. A facet may end in a date-like suffix whose recognition depends
// on the active model.Policy. The zero value means "no facet".
type Facet string

// String returns the decoded facet text.
func (f Facet) String() string {
	return string(f)
}

// TypeName returns "Facet".
func (f Facet) TypeName() string {
	return "Facet"
}

// IsZero reports whether the facet is absent.
func (f Facet) IsZero() bool {
	return f == ""
}

// Validate checks a present facet under policy: it must be valid UTF-8, must
// not have leading or trailing white space, must not start with '/', and
// must not carry a date suffix the policy rejects.
func (f Facet) Validate(policy model.Policy) error {
	if f.IsZero() {
		return nil
	}
	s := string(f)
	switch {
	case !utf8.ValidString(s):
		return &errors.ValidationError{Type: "Tag", Field: "Facet", Reason: "not valid UTF-8", Value: s}
	case strings.TrimSpace(s) != s:
		return &errors.ValidationError{Type: "Tag", Field: "Facet", Reason: "leading or trailing white space", Value: s}
	case strings.HasPrefix(s, "/"):
		return &errors.ValidationError{Type: "Tag", Field: "Facet", Reason: "leading slash", Value: s}
	case policy.RejectsFacet(s):
		return &errors.ValidationError{Type: "Tag", Field: "Facet", Reason: "white space before date suffix", Value: s}
	}
	return nil
}

// DateLike reports whether the facet is date-like under policy.
func (f Facet) DateLike(policy model.Policy) bool {
	_, _, ok := policy.DateLike(string(f))
	return ok
}

// Date interprets the date digits of a date-like facet as a calendar date in
// UTC. It fails with *errors.DateError when the facet is not date-like under
// policy or the digits do not denote a real date.
//
// Date never decides whether a tag is valid; "@00000000" is a valid facet
// that simply has no calendar date.
func (f Facet) Date(policy model.Policy) (time.Time, error) {
	_, digits, ok := policy.DateLike(string(f))
	if !ok {
		return time.Time{}, &errors.DateError{Value: string(f), Reason: "facet is not date-like under " + policy.String()}
	}
	return ParseDateDigits(digits)
}

// ParseDateDigits parses eight decimal digits (yyyyMMdd) as a calendar date
// in UTC.
func ParseDateDigits(digits string) (time.Time, error) {
	if !model.WholeFacetRegexp.MatchString(digits) {
		return time.Time{}, &errors.DateError{Value: digits, Reason: "want exactly 8 decimal digits"}
	}
	d, err := time.Parse(DateLayout, digits)
	if err != nil {
		return time.Time{}, &errors.DateError{Value: digits, Reason: err.Error()}
	}
	return d, nil
}

// FacetWithDate builds a date-like facet from prefix and the calendar day of
// date under policy, for example "wishlist@20220625" under model.DateSuffix.
// The prefix must be empty under model.WholeFacet. The result is validated.
func FacetWithDate(policy model.Policy, prefix Facet, date time.Time) (Facet, error) {
	if y := date.Year(); y < 0 || y > 9999 {
		return "", &errors.DateError{Value: date.String(), Reason: "year out of range"}
	}
	s, err := policy.FormatDate(string(prefix), date.Format(DateLayout))
	if err != nil {
		return "", err
	}
	f := Facet(s)
	if err := f.Validate(policy); err != nil {
		return "", err
	}
	return f, nil
}

// Encode returns the percent-encoded path form of the facet. A facet whose
// encoded form would start with a URI scheme gets its first ':' encoded so
// the token is never read back as an absolute URI.
func (f Facet) Encode() string {
	s := percent.Encode(string(f), percent.Facet)
	if schemeRegexp.MatchString(s) {
		i := strings.IndexByte(s, ':')
		s = s[:i] + "%3A" + s[i+1:]
	}
	return s
}
