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

package errors

import (
	stderrors "errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"Policy type",
			&ParseError{Type: "Policy", Value: "unknown"},
			"gigtag: invalid Policy value: unknown",
		},
		{
			"empty value",
			&ParseError{Type: "Policy", Value: ""},
			"gigtag: invalid Policy value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Policy", Value: 99},
			"gigtag: cannot marshal invalid Policy value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Policy", Value: -1},
			"gigtag: cannot marshal invalid Policy value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Test", Value: 42},
			"gigtag: cannot marshal invalid Test value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	err := &UnmarshalError{Type: "Tag", Data: []byte(`"#secret"`), Reason: "empty data"}
	want := "gigtag: cannot unmarshal Tag: empty data"
	if got := err.Error(); got != want {
		t.Errorf("UnmarshalError.Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Property", Field: "Key", Reason: "must not be empty"},
			"gigtag: invalid Property.Key: must not be empty",
		},
		{
			"without field",
			&ValidationError{Type: "Tag", Reason: "neither label nor facet"},
			"gigtag: invalid Tag: neither label nor facet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodingError_Error(t *testing.T) {
	err := &EncodingError{Input: "a%2", Reason: "incomplete escape at offset 1"}
	want := `gigtag: malformed percent-encoding in "a%2": incomplete escape at offset 1`
	if got := err.Error(); got != want {
		t.Errorf("EncodingError.Error() = %q, want %q", got, want)
	}
}

func TestNotATagError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *NotATagError
		want string
	}{
		{
			"without cause",
			&NotATagError{Token: "https://#MyTag", Reason: "scheme present"},
			`gigtag: not a tag "https://#MyTag": scheme present`,
		},
		{
			"with cause",
			&NotATagError{
				Token:  "#%zz",
				Reason: "label",
				Err:    &EncodingError{Input: "%zz", Reason: "invalid hex digits at offset 0"},
			},
			`gigtag: not a tag "#%zz": label: gigtag: malformed percent-encoding in "%zz": invalid hex digits at offset 0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("NotATagError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotATagError_Unwrap(t *testing.T) {
	cause := &EncodingError{Input: "%", Reason: "incomplete escape at offset 0"}
	err := error(&NotATagError{Token: "#%", Reason: "label", Err: cause})

	var target *EncodingError
	if !stderrors.As(err, &target) {
		t.Fatalf("errors.As() did not find *EncodingError in %v", err)
	}
	if target != cause {
		t.Errorf("errors.As() = %v, want %v", target, cause)
	}
}

func TestDateError_Error(t *testing.T) {
	err := &DateError{Value: "00000000", Reason: "month out of range"}
	want := `gigtag: invalid date "00000000": month out of range`
	if got := err.Error(); got != want {
		t.Errorf("DateError.Error() = %q, want %q", got, want)
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	// Verify that all error types implement error interface
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
	var _ error = (*EncodingError)(nil)
	var _ error = (*NotATagError)(nil)
	var _ error = (*DateError)(nil)
}
