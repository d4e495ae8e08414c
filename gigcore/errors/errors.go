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

// Package errors provides the error types shared by all gigtag packages.
//
// The errors in this package are simple value carriers with stable message
// formats. They are designed to be:
//
//   - easy to construct from parsing, encoding and marshaling code,
//   - easy to recognize via errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - EncodingError
//     Returned when a percent-encoded component contains a malformed escape
//     sequence (incomplete or non-hexadecimal) or decodes to invalid UTF-8.
//
//   - NotATagError
//     Returned when a token cannot be decoded as a gig tag: it carries a
//     scheme or authority, has an empty property key, violates the
//     completeness rule, or contains malformed escapes. The multi-tag
//     tokenizer treats this error as the signal to stop scanning.
//
//   - DateError
//     Returned when the digits of a date-like facet do not form a real
//     calendar date. Recognition of date-like facets never depends on it.
//
//   - ValidationError
//     Returned when a tag, property or sequence violates its invariants,
//     for example when a builder is asked to produce an incomplete tag.
//
//   - ParseError, MarshalError, UnmarshalError
//     Returned when parsing, marshaling or unmarshaling enum-like values
//     and model types fails.
//
// # Usage
//
//	tag, err := tag.DecodeTag("https://#MyTag")
//	var notATag *errors.NotATagError
//	if stderrors.As(err, &notATag) {
//	    // token is plain text, not a tag
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Policy"), and
// Value contains the exact string that could not be interpreted.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Policy").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"gigtag: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "gigtag: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, for example a
// Policy created by a numeric cast that was never validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"gigtag: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "gigtag: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data contains the original raw payload and Reason a short description of
// what went wrong. The Data field is not part of the formatted message to
// keep user content such as labels out of logs.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"gigtag: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "gigtag: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Tag" or "Property"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation and Value
// optionally contains the offending value.
//
// Encoding a tag that violates the completeness rule, or building one with
// Builder, fails with a ValidationError before any serialization happens.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"gigtag: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"gigtag: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "gigtag: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "gigtag: invalid " + e.Type + ": " + e.Reason
}

// EncodingError is returned when percent-decoding fails.
//
// Input is the encoded component that could not be decoded and Reason
// describes the malformed escape. Percent-decoding failures are never
// silently ignored: every decoder in gigtag surfaces them.
type EncodingError struct {
	// Input is the encoded text that failed to decode.
	Input string

	// Reason describes the malformed escape sequence.
	Reason string
}

// Error implements the error interface for EncodingError.
//
// The error message format is:
//
//	"gigtag: malformed percent-encoding in {Input}: {Reason}"
//
// Input is quoted.
func (e *EncodingError) Error() string {
	return "gigtag: malformed percent-encoding in " + strconv.Quote(e.Input) + ": " + e.Reason
}

// NotATagError is returned when a token is not a valid gig tag.
//
// Token is the rejected token, Reason explains which rule rejected it and
// Err optionally holds the underlying cause (typically an *EncodingError or
// a *ValidationError).
type NotATagError struct {
	// Token is the rejected input token.
	Token string

	// Reason is a short explanation of the rejection.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface for NotATagError.
//
// The error message format is:
//
//	"gigtag: not a tag {Token}: {Reason}"
func (e *NotATagError) Error() string {
	msg := "gigtag: not a tag " + strconv.Quote(e.Token) + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *NotATagError) Unwrap() error {
	return e.Err
}

// DateError is returned when the digits of a date-like facet cannot be
// interpreted as a calendar date, or when a facet is not date-like at all.
type DateError struct {
	// Value is the facet or digit string that was interpreted.
	Value string

	// Reason explains why no date could be derived.
	Reason string
}

// Error implements the error interface for DateError.
//
// The error message format is:
//
//	"gigtag: invalid date {Value}: {Reason}"
func (e *DateError) Error() string {
	return "gigtag: invalid date " + strconv.Quote(e.Value) + ": " + e.Reason
}
