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
	"strings"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model/percent"
)

// Label is the freeform, case-preserving text of a tag, carried in the
// fragment component of its token. The zero value means "no label".
type Label string

// String returns the decoded label text.
func (l Label) String() string {
	return string(l)
}

// TypeName returns "Label".
func (l Label) TypeName() string {
	return "Label"
}

// IsZero reports whether the label is absent.
func (l Label) IsZero() bool {
	return l == ""
}

// Validate checks that a present label is valid UTF-8 without leading or
// trailing white space. The empty label is valid.
func (l Label) Validate() error {
	if l.IsZero() {
		return nil
	}
	s := string(l)
	if !utf8.ValidString(s) {
		return &errors.ValidationError{Type: "Tag", Field: "Label", Reason: "not valid UTF-8", Value: s}
	}
	if strings.TrimSpace(s) != s {
		return &errors.ValidationError{Type: "Tag", Field: "Label", Reason: "leading or trailing white space", Value: s}
	}
	return nil
}

// Encode returns the percent-encoded fragment form of the label.
func (l Label) Encode() string {
	return percent.Encode(string(l), percent.Label)
}
