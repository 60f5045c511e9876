// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package creature

import (
	"github.com/bitmark-inc/creatured/fault"
)

// Trait - the single derived attribute of a creature
type Trait byte

// possible traits
const (
	TraitA Trait = iota
	TraitB Trait = iota
)

// DeriveTrait - even length identifiers are A, odd are B
func DeriveTrait(identifier Identifier) Trait {
	if 0 != len(identifier)%2 {
		return TraitB
	}
	return TraitA
}

// internal conversion
func toString(trait Trait) ([]byte, error) {
	switch trait {
	case TraitA:
		return []byte("A"), nil
	case TraitB:
		return []byte("B"), nil
	default:
		return []byte{}, fault.ErrInvalidTrait
	}
}

// String - convert a trait to its text form
func (trait Trait) String() string {
	s, err := toString(trait)
	if nil != err {
		return "?"
	}
	return string(s)
}

// MarshalText - convert trait to text
func (trait Trait) MarshalText() ([]byte, error) {
	return toString(trait)
}

// UnmarshalText - convert text to a trait
func (trait *Trait) UnmarshalText(s []byte) error {
	switch string(s) {
	case "A":
		*trait = TraitA
	case "B":
		*trait = TraitB
	default:
		return fault.ErrInvalidTrait
	}
	return nil
}
