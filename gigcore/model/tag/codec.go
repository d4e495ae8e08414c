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
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model"
	"dirpx.dev/gigtag/gigcore/model/percent"
)

// Codec encodes and decodes single tags and tag sequences under one
// model.Policy. A Codec is immutable after construction and safe for
// concurrent use.
type Codec struct {
	policy        model.Policy
	stopAtNewline bool
	logger        *slog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the logger used for scan diagnostics. A nil logger is
// ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCodec creates a Codec from cfg. It fails if cfg is invalid.
func NewCodec(cfg Config, opts ...Option) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create codec: %w", err)
	}

	c := &Codec{
		policy:        cfg.Policy,
		stopAtNewline: cfg.StopAtNewline,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

var defaultCodec = &Codec{
	policy: model.DateSuffix,
	logger: slog.New(slog.DiscardHandler),
}

// DefaultCodec returns the shared Codec for DefaultConfig.
func DefaultCodec() *Codec {
	return defaultCodec
}

// Policy returns the date-facet policy of the codec.
func (c *Codec) Policy() model.Policy {
	return c.policy
}

// Config returns the configuration the codec was created from.
func (c *Codec) Config() Config {
	return Config{Policy: c.policy, StopAtNewline: c.stopAtNewline}
}

// EncodeTag validates t under the codec policy and returns its canonical
// token. Invalid tags fail with *errors.ValidationError.
func (c *Codec) EncodeTag(t Tag) (string, error) {
	if err := t.ValidateWith(c.policy); err != nil {
		return "", err
	}
	return t.String(), nil
}

// DecodeTag decodes a single token.
//
// The token must be non-empty, valid UTF-8 and free of white space. Absolute
// URIs, network-path references and tokens starting with '/' are rejected.
// Malformed percent escapes fail with *errors.EncodingError; every other
// rejection is an *errors.NotATagError.
func (c *Codec) DecodeTag(token string) (Tag, error) {
	switch {
	case token == "":
		return Tag{}, &errors.NotATagError{Token: token, Reason: "empty token"}
	case !utf8.ValidString(token):
		return Tag{}, &errors.NotATagError{Token: token, Reason: "not valid UTF-8"}
	case strings.IndexFunc(token, unicode.IsSpace) >= 0:
		return Tag{}, &errors.NotATagError{Token: token, Reason: "contains white space"}
	case schemeRegexp.MatchString(token):
		return Tag{}, &errors.NotATagError{Token: token, Reason: "absolute URI"}
	case strings.HasPrefix(token, "/"):
		return Tag{}, &errors.NotATagError{Token: token, Reason: "leading slash"}
	}

	rest, fragment, _ := strings.Cut(token, "#")
	path, query, _ := strings.Cut(rest, "?")

	facet, err := percent.Decode(path)
	if err != nil {
		return Tag{}, err
	}
	label, err := percent.Decode(fragment)
	if err != nil {
		return Tag{}, err
	}

	var props []Property
	if query != "" {
		pairs := strings.Split(query, "&")
		props = make([]Property, 0, len(pairs))
		for _, pair := range pairs {
			k, v, _ := strings.Cut(pair, "=")
			key, err := percent.Decode(k)
			if err != nil {
				return Tag{}, err
			}
			if key == "" {
				return Tag{}, &errors.NotATagError{Token: token, Reason: "empty property key"}
			}
			value, err := percent.Decode(v)
			if err != nil {
				return Tag{}, err
			}
			props = append(props, Property{Key: key, Value: value})
		}
	}

	t := Tag{Label: Label(label), Facet: Facet(facet), Props: props}
	if err := t.ValidateWith(c.policy); err != nil {
		return Tag{}, &errors.NotATagError{Token: token, Reason: "invalid tag", Err: err}
	}
	return t, nil
}

// ParseTag decodes s after trimming surrounding white space.
func (c *Codec) ParseTag(s string) (Tag, error) {
	return c.DecodeTag(strings.TrimSpace(s))
}

// EncodeTag encodes t with the default codec.
func EncodeTag(t Tag) (string, error) {
	return defaultCodec.EncodeTag(t)
}

// DecodeTag decodes token with the default codec.
func DecodeTag(token string) (Tag, error) {
	return defaultCodec.DecodeTag(token)
}

// ParseTag decodes s with the default codec after trimming surrounding
// white space.
func ParseTag(s string) (Tag, error) {
	return defaultCodec.ParseTag(s)
}

// DecodeTags decodes the trailing tags of text with the default codec.
func DecodeTags(text string) Sequence {
	return defaultCodec.DecodeTags(text)
}

// EncodeTags renders seq with the default codec.
func EncodeTags(seq Sequence) (string, error) {
	return defaultCodec.EncodeTags(seq)
}
