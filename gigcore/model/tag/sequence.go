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
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/model"
	"gopkg.in/yaml.v3"
)

// Compile-time check that Sequence implements model.Model interface.
var _ model.Model = (*Sequence)(nil)

// Sequence is the result of decoding the trailing tags of a text: the
// decoded tags in textual order and the text before them that was not
// decoded.
type Sequence struct {
	// Tags are the decoded tags in the order they appeared.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// UndecodedPrefix is the text before the first decoded tag, verbatim,
	// including any white space that separated it from the tags.
	UndecodedPrefix string `json:"undecoded_prefix,omitempty" yaml:"undecoded_prefix,omitempty"`
}

// DecodeTags decodes the whitespace-separated tags at the end of text.
//
// Tokens are decoded from the end of text backwards until the first token
// that is not a tag. Everything before the last decoded token is kept as
// UndecodedPrefix, so a failing token in the middle of the text only hides
// the tokens before it. When every token decodes the prefix is empty, and a
// text without any tag is returned whole as the prefix.
//
// With StopAtNewline set, scanning also stops at the first line break
// between two tokens, so only tags on the last line are decoded.
func (c *Codec) DecodeTags(text string) Sequence {
	var tags []Tag
	end := len(text)

	for {
		tokenEnd := skipSpaceBackward(text, end)
		if tokenEnd == 0 {
			if len(tags) == 0 {
				return Sequence{UndecodedPrefix: text}
			}
			c.logger.Debug("tag scan reached start of text", slog.Int("tags", len(tags)))
			end = 0
			break
		}

		if c.stopAtNewline && len(tags) > 0 && strings.ContainsAny(text[tokenEnd:end], "\n\r") {
			c.logger.Debug("tag scan stopped at line break", slog.Int("tags", len(tags)), slog.Int("offset", end))
			break
		}

		tokenStart := tokenStartBackward(text, tokenEnd)
		t, err := c.DecodeTag(text[tokenStart:tokenEnd])
		if err != nil {
			c.logger.Debug("tag scan stopped at undecodable token",
				slog.Int("tags", len(tags)),
				slog.Int("offset", tokenStart),
				slog.String("error_type", fmt.Sprintf("%T", err)))
			break
		}

		tags = append(tags, t)
		end = tokenStart
	}

	slices.Reverse(tags)
	return Sequence{Tags: tags, UndecodedPrefix: text[:end]}
}

// skipSpaceBackward returns the offset just past the last non-space rune
// in text[:end], or 0 if there is none.
func skipSpaceBackward(text string, end int) int {
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}

// tokenStartBackward returns the offset of the first rune of the token
// ending at end.
func tokenStartBackward(text string, end int) int {
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}

// EncodeTags validates every tag of seq under the codec policy and renders
// the sequence. Decoding the result with the same codec yields seq again
// for every sequence produced by DecodeTags.
func (c *Codec) EncodeTags(seq Sequence) (string, error) {
	for i, t := range seq.Tags {
		if err := t.ValidateWith(c.policy); err != nil {
			return "", fmt.Errorf("tag %d: %w", i, err)
		}
	}
	return seq.String(), nil
}

// String renders the sequence without validation: the prefix verbatim,
// a single space if the prefix does not already end in white space, then
// the tag tokens separated by single spaces.
func (s Sequence) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

// WriteTo implements io.WriterTo.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s Sequence) render(b *strings.Builder) {
	b.WriteString(s.UndecodedPrefix)
	if len(s.Tags) == 0 {
		return
	}
	if s.UndecodedPrefix != "" {
		r, _ := utf8.DecodeLastRuneInString(s.UndecodedPrefix)
		if !unicode.IsSpace(r) {
			b.WriteByte(' ')
		}
	}
	for i, t := range s.Tags {
		if i > 0 {
			b.WriteByte(' ')
		}
		t.writeToken(b)
	}
}

// Redacted returns a representation safe for logs; neither the prefix nor
// any label is included.
func (s Sequence) Redacted() string {
	return fmt.Sprintf("Sequence{Tags:%d, UndecodedPrefix:%d bytes}", len(s.Tags), len(s.UndecodedPrefix))
}

// TypeName returns "Sequence".
func (s Sequence) TypeName() string {
	return "Sequence"
}

// IsZero reports whether the sequence has neither tags nor a prefix.
func (s Sequence) IsZero() bool {
	return len(s.Tags) == 0 && s.UndecodedPrefix == ""
}

// Equal reports whether both sequences have the same prefix and equal tags
// in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return s.UndecodedPrefix == other.UndecodedPrefix &&
		slices.EqualFunc(s.Tags, other.Tags, Tag.Equal)
}

// Validate validates every tag under the default policy and reports all
// invalid tags at once.
func (s Sequence) Validate() error {
	return model.ValidateAll(s.Tags)
}

// MarshalJSON implements json.Marshaler.
func (s Sequence) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type sequence Sequence
	return json.Marshal(sequence(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	type sequence Sequence
	var v sequence
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", s.TypeName(), err)
	}
	if err := Sequence(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = Sequence(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Sequence) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	type sequence Sequence
	return sequence(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sequence) UnmarshalYAML(node *yaml.Node) error {
	type sequence Sequence
	var v sequence
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", s.TypeName(), err)
	}
	if err := Sequence(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", s.TypeName(), err)
	}
	*s = Sequence(v)
	return nil
}
