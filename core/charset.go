// SPDX-License-Identifier: MIT

package core

import "fmt"

// CharacterSet is an ordered glyph sequence plus the Configuration it was
// built for. Order is the glyph index used at encode time; insertion order is
// preserved and duplicates are allowed.
type CharacterSet struct {
	Config     Config
	Characters []*Character
}

// NewCharacterSet creates a set of n blank glyphs shaped by cfg.
// Complexity: O(n*w*h).
func NewCharacterSet(cfg Config, n int) (*CharacterSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, coreErrorf("NewCharacterSet", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("NewCharacterSet(%d): %w", n, ErrOutOfRange)
	}
	chars := make([]*Character, n)
	for i := range chars {
		chars[i], _ = NewCharacter(cfg.Width(), cfg.Height())
	}

	return &CharacterSet{Config: cfg, Characters: chars}, nil
}

// Len returns the number of glyphs.
func (s *CharacterSet) Len() int { return len(s.Characters) }

// Validate checks the Configuration and that every glyph matches its shape.
// The first offending glyph is reported as an *IndexError.
// Complexity: O(n).
func (s *CharacterSet) Validate() error {
	if err := s.Config.Validate(); err != nil {
		return coreErrorf("CharacterSet.Validate", err)
	}
	for i, ch := range s.Characters {
		if err := ch.Validate(); err != nil {
			return coreErrorf("CharacterSet.Validate", AtIndex(i, err))
		}
		if !s.Config.Fits(ch) {
			return coreErrorf("CharacterSet.Validate", AtIndex(i, ErrShapeMismatch))
		}
	}

	return nil
}

// At returns the glyph at index i.
func (s *CharacterSet) At(i int) (*Character, error) {
	if i < 0 || i >= len(s.Characters) {
		return nil, fmt.Errorf("CharacterSet.At(%d): %w", i, ErrOutOfRange)
	}

	return s.Characters[i], nil
}

// Replace stores ch at index i. ch must fit the set's Configuration.
func (s *CharacterSet) Replace(i int, ch *Character) error {
	if i < 0 || i >= len(s.Characters) {
		return fmt.Errorf("CharacterSet.Replace(%d): %w", i, ErrOutOfRange)
	}
	if !s.Config.Fits(ch) {
		return fmt.Errorf("CharacterSet.Replace(%d): %w", i, ErrShapeMismatch)
	}
	s.Characters[i] = ch

	return nil
}

// Insert places ch before index i (i == Len appends).
func (s *CharacterSet) Insert(i int, ch *Character) error {
	if i < 0 || i > len(s.Characters) {
		return fmt.Errorf("CharacterSet.Insert(%d): %w", i, ErrOutOfRange)
	}
	if !s.Config.Fits(ch) {
		return fmt.Errorf("CharacterSet.Insert(%d): %w", i, ErrShapeMismatch)
	}
	s.Characters = append(s.Characters, nil)
	copy(s.Characters[i+1:], s.Characters[i:])
	s.Characters[i] = ch

	return nil
}

// Append adds ch at the end of the set.
func (s *CharacterSet) Append(ch *Character) error {
	return s.Insert(len(s.Characters), ch)
}

// Remove deletes the glyph at index i, shifting later glyphs down.
func (s *CharacterSet) Remove(i int) error {
	if i < 0 || i >= len(s.Characters) {
		return fmt.Errorf("CharacterSet.Remove(%d): %w", i, ErrOutOfRange)
	}
	s.Characters = append(s.Characters[:i], s.Characters[i+1:]...)

	return nil
}

// Move relocates the glyph at index from so that it ends up at index to,
// preserving the relative order of every other glyph.
func (s *CharacterSet) Move(from, to int) error {
	n := len(s.Characters)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("CharacterSet.Move(%d,%d): %w", from, to, ErrOutOfRange)
	}
	ch := s.Characters[from]
	if from < to {
		copy(s.Characters[from:to], s.Characters[from+1:to+1])
	} else {
		copy(s.Characters[to+1:from+1], s.Characters[to:from])
	}
	s.Characters[to] = ch

	return nil
}

// Clone returns a deep copy: the slice and every glyph are fresh.
// History snapshots of a CharacterSet must go through Clone.
func (s *CharacterSet) Clone() *CharacterSet {
	chars := make([]*Character, len(s.Characters))
	for i, ch := range s.Characters {
		if ch != nil {
			chars[i] = ch.Clone()
		}
	}

	return &CharacterSet{Config: s.Config, Characters: chars}
}

// Equal reports whether both sets share a Configuration and equal glyphs in
// the same order.
func (s *CharacterSet) Equal(other *CharacterSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Config != other.Config || len(s.Characters) != len(other.Characters) {
		return false
	}
	for i := range s.Characters {
		if !s.Characters[i].Equal(other.Characters[i]) {
			return false
		}
	}

	return true
}
