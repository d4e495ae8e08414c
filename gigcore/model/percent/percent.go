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

// Package percent implements the percent-encoding used by gig tag tokens.
//
// Each tag component is encoded with its own reserved character Set derived
// from the WHATWG URL standard percent-encode sets:
//
//	Label  fragment percent-encode set
//	Facet  path percent-encode set
//	Props  query percent-encode set plus '&' and '='
//
// All sets contain '%' so that encoded text is self-describing, and every
// byte outside the ASCII range is always encoded. Decoding is independent of
// the set: any well-formed "%XX" escape is decoded.
package percent

import (
	"net/url"
	"unicode/utf8"

	"dirpx.dev/gigtag/gigcore/errors"
)

// Set is an ASCII character set. Bytes contained in the set are
// percent-encoded by Encode. Non-ASCII bytes are never members but are
// encoded regardless.
type Set [4]uint32

// Add returns a copy of s extended by the given ASCII bytes.
func (s Set) Add(chars ...byte) Set {
	for _, c := range chars {
		if c < utf8.RuneSelf {
			s[c/32] |= 1 << (c % 32)
		}
	}
	return s
}

// Contains reports whether the ASCII byte c is a member of s.
func (s Set) Contains(c byte) bool {
	return c < utf8.RuneSelf && s[c/32]&(1<<(c%32)) != 0
}

// mustEncode reports whether Encode escapes c.
func (s Set) mustEncode(c byte) bool {
	return c >= utf8.RuneSelf || s.Contains(c)
}

func controls() Set {
	var s Set
	for c := byte(0); c < 0x20; c++ {
		s = s.Add(c)
	}
	return s.Add(0x7f)
}

var (
	// Controls contains the C0 control characters, DEL and '%'.
	Controls = controls().Add('%')

	// Fragment is the WHATWG fragment percent-encode set plus '%'.
	Fragment = Controls.Add(' ', '"', '<', '>', '`')

	// Query is the WHATWG query percent-encode set plus '%'.
	Query = Controls.Add(' ', '"', '#', '<', '>')

	// Path is the WHATWG path percent-encode set plus '%'.
	Path = Query.Add('`', '?', '{', '}')

	// Label is used for the fragment component carrying the tag label.
	Label = Fragment

	// Facet is used for the path component carrying the tag facet.
	Facet = Path

	// Props is used for property keys and values in the query component.
	// '&' and '=' separate pairs and keys from values, so literal
	// occurrences are always encoded.
	Props = Query.Add('&', '=')
)

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes every byte of s that is a member of set or lies
// outside the ASCII range. When nothing needs to be encoded s is returned
// unchanged.
func Encode(s string, set Set) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if set.mustEncode(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if set.mustEncode(c) {
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
		} else {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Decode percent-decodes s. It fails with *errors.EncodingError if s
// contains an incomplete or non-hexadecimal escape or if the decoded bytes
// are not valid UTF-8. When s contains no '%' it is returned unchanged.
func Decode(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", &errors.EncodingError{Input: s, Reason: err.Error()}
	}
	if !utf8.ValidString(decoded) {
		return "", &errors.EncodingError{Input: s, Reason: "decoded text is not valid UTF-8"}
	}
	return decoded, nil
}
