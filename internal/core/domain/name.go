package domain

import (
	"strings"
)

// Wildcard is the placeholder accepted in search queries for an unknown
// pronunciation or hanja.
const Wildcard = "_"

// Supported name lengths.
const (
	MinSurnameLength = 1
	MaxSurnameLength = 2
	MaxGivenLength   = 4
)

// NameBlock is one character position of a name.
type NameBlock struct {
	Pronunciation string `json:"pronunciation"`
	Hanja         string `json:"hanja"`
}

// Key returns the dictionary key for the block.
func (b NameBlock) Key() string {
	return CharacterKey(b.Pronunciation, b.Hanja)
}

// IsWildcard returns true if either field is the wildcard placeholder.
func (b NameBlock) IsWildcard() bool {
	return b.Pronunciation == Wildcard || b.Hanja == Wildcard
}

// ParseNameBlock parses "pronunciation/hanja". A bare value is taken as the
// pronunciation with a wildcard hanja.
func ParseNameBlock(s string) NameBlock {
	s = strings.TrimSpace(s)
	pron, hanja, ok := strings.Cut(s, "/")
	if !ok {
		return NameBlock{Pronunciation: s, Hanja: Wildcard}
	}
	if pron == "" {
		pron = Wildcard
	}
	if hanja == "" {
		hanja = Wildcard
	}
	return NameBlock{Pronunciation: pron, Hanja: hanja}
}

// NameComposition is an ordered sequence of surname blocks followed by
// given-name blocks.
type NameComposition struct {
	Blocks        []NameBlock `json:"blocks"`
	SurnameLength int         `json:"surname_length"`
}

// NewNameComposition builds and validates a composition.
func NewNameComposition(surname, given []NameBlock) (NameComposition, error) {
	blocks := make([]NameBlock, 0, len(surname)+len(given))
	blocks = append(blocks, surname...)
	blocks = append(blocks, given...)
	c := NameComposition{Blocks: blocks, SurnameLength: len(surname)}
	if err := c.Validate(); err != nil {
		return NameComposition{}, err
	}
	return c, nil
}

// Validate checks the length invariants.
func (c NameComposition) Validate() error {
	givenLen := len(c.Blocks) - c.SurnameLength
	switch {
	case len(c.Blocks) == 0:
		return NewInvalidInputError(c.SurnameLength, givenLen, "name has no blocks")
	case c.SurnameLength < MinSurnameLength || c.SurnameLength > MaxSurnameLength:
		return NewInvalidInputError(c.SurnameLength, givenLen, "surname length must be 1 or 2")
	case givenLen < 0 || givenLen > MaxGivenLength:
		return NewInvalidInputError(c.SurnameLength, givenLen, "given name length must be between 0 and 4")
	}
	return nil
}

// Surname returns the surname blocks.
func (c NameComposition) Surname() []NameBlock {
	return c.Blocks[:c.SurnameLength]
}

// Given returns the given-name blocks.
func (c NameComposition) Given() []NameBlock {
	return c.Blocks[c.SurnameLength:]
}

// HasWildcard returns true if any block is a placeholder.
func (c NameComposition) HasWildcard() bool {
	for _, b := range c.Blocks {
		if b.IsWildcard() {
			return true
		}
	}
	return false
}

// Pronunciation returns the readings joined, e.g. "김민준".
func (c NameComposition) Pronunciation() string {
	var sb strings.Builder
	for _, b := range c.Blocks {
		sb.WriteString(b.Pronunciation)
	}
	return sb.String()
}

// Hanja returns the hanja joined, e.g. "金敏俊".
func (c NameComposition) Hanja() string {
	var sb strings.Builder
	for _, b := range c.Blocks {
		sb.WriteString(b.Hanja)
	}
	return sb.String()
}

// String returns "김민준(金敏俊)".
func (c NameComposition) String() string {
	return c.Pronunciation() + "(" + c.Hanja() + ")"
}

// ParseName builds a composition from "pronunciation/hanja" arguments, the
// first surnameLength of which form the surname.
func ParseName(args []string, surnameLength int) (NameComposition, error) {
	if surnameLength < MinSurnameLength || surnameLength > MaxSurnameLength {
		return NameComposition{}, NewInvalidInputError(surnameLength, len(args)-surnameLength,
			"surname length must be 1 or 2")
	}
	if len(args) < surnameLength {
		return NameComposition{}, NewInvalidInputError(surnameLength, 0, "name is shorter than the surname")
	}
	blocks := make([]NameBlock, len(args))
	for i, a := range args {
		blocks[i] = ParseNameBlock(a)
	}
	return NewNameComposition(blocks[:surnameLength], blocks[surnameLength:])
}
