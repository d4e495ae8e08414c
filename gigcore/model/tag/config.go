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

	"dirpx.dev/gigtag/gigcore/errors"
	"dirpx.dev/gigtag/gigcore/model"
	"gopkg.in/yaml.v3"
)

// Compile-time check that Config implements model.Model interface.
var _ model.Model = (*Config)(nil)

// Config configures a Codec. The zero value is DefaultConfig.
//
// Config is usually loaded from a file:
//
//	var cfg *tag.Config
//	if err := model.FromYAML(data, &cfg); err != nil {
//	    return err
//	}
//	codec, err := tag.NewCodec(*cfg)
//
// with YAML such as
//
//	policy: whole-facet
//	stop_at_newline: true
type Config struct {
	// Policy selects how date-like facets are recognized.
	Policy model.Policy `json:"policy" yaml:"policy"`

	// StopAtNewline restricts DecodeTags to the tags on the last line of
	// the text.
	StopAtNewline bool `json:"stop_at_newline" yaml:"stop_at_newline"`
}

// DefaultConfig returns the configuration of DefaultCodec: the DateSuffix
// policy, scanning across line breaks.
func DefaultConfig() Config {
	return Config{Policy: model.DateSuffix}
}

// Validate checks that the policy is known.
func (c Config) Validate() error {
	if !c.Policy.Valid() {
		return &errors.ValidationError{Type: "Config", Field: "Policy", Reason: "unknown policy", Value: int(c.Policy)}
	}
	return nil
}

// String returns a human-readable representation of the configuration.
func (c Config) String() string {
	return fmt.Sprintf("Config{Policy:%s, StopAtNewline:%t}", c.Policy, c.StopAtNewline)
}

// Redacted returns the same as String; a Config carries no user content.
func (c Config) Redacted() string {
	return c.String()
}

// TypeName returns "Config".
func (c Config) TypeName() string {
	return "Config"
}

// IsZero reports whether c equals DefaultConfig.
func (c Config) IsZero() bool {
	return c == Config{}
}

// MarshalJSON implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type config Config
	return json.Marshal(config(c))
}

// UnmarshalJSON implements json.Unmarshaler. Missing fields keep their
// default values.
func (c *Config) UnmarshalJSON(data []byte) error {
	type config Config
	v := config(DefaultConfig())
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("cannot unmarshal JSON into %s: %w", c.TypeName(), err)
	}
	if err := Config(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", c.TypeName(), err)
	}
	*c = Config(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type config Config
	return config(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Missing fields keep their
// default values.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type config Config
	v := config(DefaultConfig())
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("cannot unmarshal YAML into %s: %w", c.TypeName(), err)
	}
	if err := Config(v).Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", c.TypeName(), err)
	}
	*c = Config(v)
	return nil
}
