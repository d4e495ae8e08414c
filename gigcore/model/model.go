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

// Package model defines the contracts shared by all gigtag value types and
// the recognition Policy that selects between the supported date-facet
// variants of the gig tag format.
//
// Every domain type (Tag, Property, Sequence, Config) implements the Model
// interface: it validates its own invariants, serializes to JSON and YAML,
// renders a redacted form for logs, names itself and reports whether it is
// empty. Validation is the single gate for data entering or leaving the
// system: marshaling refuses invalid values and unmarshaling validates what
// it produced.
//
// Model types are immutable value types. Concurrent reads are safe;
// unmarshaling mutates its receiver and requires exclusive access.
//
// Types implementing Model can be used with the generic helpers provided in
// this package, such as ValidateAll, FilterZero, ToJSON, ToYAML, FromJSON and
// FromYAML.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for gigtag
// domain types.
//
// Example implementation:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error {
//	    if m.Field == "" {
//	        return errors.New("field required")
//	    }
//	    return nil
//	}
//
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Field == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST check every invariant of the receiver, including nested
// values, and return nil if and only if the instance is fully valid. It MUST
// be fast, deterministic and free of side effects, and MUST NOT mutate the
// receiver. Error messages SHOULD name the failing field, for example
// "Property.Key must not be empty".
type Validatable interface {
	// Validate checks that the instance satisfies all invariants.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML.
//
// Marshal methods MUST call Validate first and refuse to emit invalid
// values. Unmarshal methods MUST call Validate on the decoded value and
// leave the receiver untouched on failure. A JSON or YAML round trip MUST
// reproduce an equal value.
//
// Implementations SHOULD use the local type alias pattern to avoid infinite
// recursion:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging.
//
// Labels and property values are user-authored content. Redacted MUST keep
// them out of its output while preserving enough structure (facet, counts)
// to correlate log entries. String MAY include everything and MUST NOT be
// used for production logging.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable defines the contract for types that identify themselves by a
// canonical, constant CamelCase type name without package prefix.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state.
//
// IsZero MUST return true if and only if the instance carries no meaningful
// data. It MUST be fast and free of side effects.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for equality.
//
// Equal MUST be reflexive, symmetric, transitive and consistent, and SHOULD
// compare all semantically significant fields, including the order of
// ordered collections such as tag properties.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to other.
	Equal(other T) bool
}
