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
	"cmp"
	"slices"
	"strings"

	"dirpx.dev/gigtag/gigcore/model"
)

// Tag groups in canonical order.
const (
	groupNoFacet = iota
	groupFacet
	groupDateFacet
)

// ReorderAndDedup returns a copy of s with its tags in canonical order and
// exact duplicates removed. The prefix is kept unchanged.
//
// Tags without a facet come first, followed by tags with a facet that is
// not date-like under policy, followed by tags with a date-like facet from
// the most recent date to the oldest. Within each group tags are ordered by
// facet, labelled tags before unlabelled ones, and then by label.
func (s Sequence) ReorderAndDedup(policy model.Policy) Sequence {
	tags := slices.Clone(s.Tags)
	slices.SortStableFunc(tags, func(a, b Tag) int {
		return compareTags(policy, a, b)
	})
	tags = slices.CompactFunc(tags, Tag.Equal)
	return Sequence{Tags: tags, UndecodedPrefix: s.UndecodedPrefix}
}

func group(policy model.Policy, t Tag) (int, string) {
	if !t.HasFacet() {
		return groupNoFacet, ""
	}
	if _, digits, ok := policy.DateLike(string(t.Facet)); ok {
		return groupDateFacet, digits
	}
	return groupFacet, ""
}

func compareTags(policy model.Policy, a, b Tag) int {
	ga, da := group(policy, a)
	gb, db := group(policy, b)
	if c := cmp.Compare(ga, gb); c != 0 {
		return c
	}
	// Most recent first.
	if c := strings.Compare(db, da); c != 0 {
		return c
	}
	if c := strings.Compare(string(a.Facet), string(b.Facet)); c != 0 {
		return c
	}
	if a.HasLabel() != b.HasLabel() {
		if a.HasLabel() {
			return -1
		}
		return 1
	}
	if c := strings.Compare(string(a.Label), string(b.Label)); c != 0 {
		return c
	}
	return slices.CompareFunc(a.Props, b.Props, compareProps)
}

func compareProps(a, b Property) int {
	if c := strings.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return strings.Compare(a.Value, b.Value)
}
