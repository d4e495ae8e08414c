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
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checked is the subset of the Model contract needed to validate and report
// values. Value types whose unmarshal methods use pointer receivers satisfy
// Checked with their value type, so slices such as []tag.Tag can be passed
// directly.
type Checked interface {
	Validatable
	Identifiable
}

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not only the first one.
//
// Each failure is wrapped with the model's position in the slice and its type
// name, for example "model[2] (Tag): ...", and all failures are combined into
// a single error through rxmerr.Collector. Empty slices are valid.
//
// Example:
//
//	if err := ValidateAll(seq.Tags); err != nil {
//	    return err
//	}
func ValidateAll[T Checked](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only the models for which IsZero
// returns false. The result never shares its backing array with the input
// and is non-nil even when empty.
func FilterZero[T ZeroCheckable](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// It is meant for tests and package-level initialization of constant values
// where an invalid model is a programming error.
func MustValidate[T Checked](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted() unless unsafe is true, in which case it
// returns m.String(). Production logging MUST pass false.
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and then marshals it to JSON.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and then marshals it to YAML.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON unmarshals JSON data into m and validates the result.
//
// If FromJSON returns an error the state of *m is undefined and MUST NOT be
// used.
//
// Example:
//
//	var cfg tag.Config
//	if err := FromJSON(data, &cfg); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML unmarshals YAML data into m and validates the result.
//
// If FromYAML returns an error the state of *m is undefined and MUST NOT be
// used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
