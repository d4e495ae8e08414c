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
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPolicy_String(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   string
	}{
		{"DateSuffix", DateSuffix, "date-suffix"},
		{"WholeFacet", WholeFacet, "whole-facet"},
		{"Unknown", Policy(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.String(); got != tt.want {
				t.Errorf("Policy.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Policy
		wantErr bool
	}{
		{"date-suffix", "date-suffix", DateSuffix, false},
		{"DateSuffix", "DateSuffix", DateSuffix, false},
		{"date_suffix", "date_suffix", DateSuffix, false},
		{"DATE_SUFFIX", "DATE_SUFFIX", DateSuffix, false},

		{"whole-facet", "whole-facet", WholeFacet, false},
		{"WholeFacet", "WholeFacet", WholeFacet, false},
		{"whole_facet", "whole_facet", WholeFacet, false},
		{"WHOLE_FACET", "WHOLE_FACET", WholeFacet, false},

		{"empty", "", DateSuffix, true},
		{"invalid", "suffix", DateSuffix, true},
		{"number", "1", DateSuffix, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePolicy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePolicy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy_DateLike(t *testing.T) {
	tests := []struct {
		name       string
		policy     Policy
		facet      string
		wantPrefix string
		wantDigits string
		wantOK     bool
	}{
		{"suffix only", DateSuffix, "@20220625", "", "20220625", true},
		{"suffix with text", DateSuffix, "text@20220625", "text", "20220625", true},
		{"suffix with nested delimiter", DateSuffix, "a@b@20220625", "a@b", "20220625", true},
		{"suffix zeros", DateSuffix, "@00000000", "", "00000000", true},
		{"suffix nines", DateSuffix, "abc@99999999", "abc", "99999999", true},
		{"suffix after space", DateSuffix, "a @20220625", "", "", false},
		{"suffix after tab", DateSuffix, "a\t@20220625", "", "", false},
		{"suffix after vertical tab", DateSuffix, "a\v@20220625", "", "", false},
		{"suffix after no-break space", DateSuffix, "a\u00a0@20220625", "", "", false},
		{"suffix wrong delimiter", DateSuffix, "a-20220625", "", "", false},
		{"suffix missing delimiter", DateSuffix, "a20220625", "", "", false},
		{"suffix digits only", DateSuffix, "20220625", "", "", false},
		{"suffix seven digits", DateSuffix, "@2022062", "", "", false},
		{"suffix nine digits", DateSuffix, "@202206250", "", "", false},
		{"suffix non-ascii digits", DateSuffix, "@２０２２０６２５", "", "", false},
		{"suffix trailing text", DateSuffix, "@20220625x", "", "", false},

		{"whole digits", WholeFacet, "20220625", "", "20220625", true},
		{"whole zeros", WholeFacet, "00000000", "", "00000000", true},
		{"whole with delimiter", WholeFacet, "@20220625", "", "", false},
		{"whole with prefix", WholeFacet, "a20220625", "", "", false},
		{"whole seven digits", WholeFacet, "2022062", "", "", false},

		{"invalid policy", Policy(42), "@20220625", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, digits, ok := tt.policy.DateLike(tt.facet)
			if ok != tt.wantOK || prefix != tt.wantPrefix || digits != tt.wantDigits {
				t.Errorf("DateLike(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.facet, prefix, digits, ok, tt.wantPrefix, tt.wantDigits, tt.wantOK)
			}
		})
	}
}

func TestPolicy_RejectsFacet(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		facet  string
		want   bool
	}{
		{"suffix valid", DateSuffix, "a@20220625", false},
		{"suffix after space", DateSuffix, "played @20220625", true},
		{"suffix after newline", DateSuffix, "a\n@20220625", true},
		{"suffix not date-like", DateSuffix, "a 20220625", false},
		{"whole ignores suffixes", WholeFacet, "played @20220625", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.RejectsFacet(tt.facet); got != tt.want {
				t.Errorf("RejectsFacet(%q) = %v, want %v", tt.facet, got, tt.want)
			}
		})
	}
}

func TestPolicy_FormatDate(t *testing.T) {
	got, err := DateSuffix.FormatDate("wishlist", "20220625")
	if err != nil || got != "wishlist@20220625" {
		t.Errorf("DateSuffix.FormatDate() = (%q, %v), want (%q, nil)", got, err, "wishlist@20220625")
	}

	got, err = WholeFacet.FormatDate("", "20220625")
	if err != nil || got != "20220625" {
		t.Errorf("WholeFacet.FormatDate() = (%q, %v), want (%q, nil)", got, err, "20220625")
	}

	if _, err := WholeFacet.FormatDate("wishlist", "20220625"); err == nil {
		t.Error("WholeFacet.FormatDate() with prefix should fail")
	}

	if _, err := Policy(7).FormatDate("", "20220625"); err == nil {
		t.Error("FormatDate() with invalid policy should fail")
	}
}

func TestPolicy_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		want    string
		wantErr bool
	}{
		{"DateSuffix", DateSuffix, `"date-suffix"`, false},
		{"WholeFacet", WholeFacet, `"whole-facet"`, false},
		{"Invalid", Policy(99), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.policy)
			if (err != nil) != tt.wantErr {
				t.Errorf("MarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPolicy_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Policy
		wantErr bool
	}{
		{"string date-suffix", `"date-suffix"`, DateSuffix, false},
		{"string WholeFacet", `"WholeFacet"`, WholeFacet, false},
		{"numeric 0", `0`, DateSuffix, false},
		{"numeric 1", `1`, WholeFacet, false},
		{"numeric invalid", `5`, DateSuffix, true},
		{"string invalid", `"bogus"`, DateSuffix, true},
		{"malformed", `{`, DateSuffix, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Policy
			err := json.Unmarshal([]byte(tt.data), &got)
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPolicy_Text(t *testing.T) {
	text, err := WholeFacet.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	var got Policy
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if got != WholeFacet {
		t.Errorf("text round-trip = %v, want %v", got, WholeFacet)
	}
	if _, err := Policy(-1).MarshalText(); err == nil {
		t.Error("MarshalText() of invalid policy should fail")
	}
}

func TestPolicy_YAML_RoundTrip(t *testing.T) {
	for _, p := range []Policy{DateSuffix, WholeFacet} {
		data, err := yaml.Marshal(p)
		if err != nil {
			t.Fatalf("yaml.Marshal(%v) error = %v", p, err)
		}
		var got Policy
		if err := yaml.Unmarshal(data, &got); err != nil {
			t.Fatalf("yaml.Unmarshal(%q) error = %v", data, err)
		}
		if got != p {
			t.Errorf("YAML round-trip = %v, want %v", got, p)
		}
	}

	var got Policy
	if err := yaml.Unmarshal([]byte("nope"), &got); err == nil {
		t.Error("yaml.Unmarshal of unknown policy should fail")
	}
}

func TestPolicy_ModelMethods(t *testing.T) {
	if got := WholeFacet.TypeName(); got != "Policy" {
		t.Errorf("TypeName() = %q, want %q", got, "Policy")
	}
	if got := WholeFacet.Redacted(); got != "whole-facet" {
		t.Errorf("Redacted() = %q, want %q", got, "whole-facet")
	}
	if !DateSuffix.IsZero() || WholeFacet.IsZero() {
		t.Error("IsZero() must be true only for DateSuffix")
	}
	if err := Policy(3).Validate(); err == nil {
		t.Error("Validate() of invalid policy should fail")
	}
	p := WholeFacet
	if !WholeFacet.Equal(&p) || WholeFacet.Equal(DateSuffix) || WholeFacet.Equal("whole-facet") {
		t.Error("Equal() mismatch")
	}
}
