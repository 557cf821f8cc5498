// SPDX-License-Identifier: MIT
// Package core: JSON exchange format for the persistence layer.
//
//	{
//	  "config": {"width": 8, "height": 8, "bitDirection": "ltr", "paddingDirection": "right"},
//	  "characters": [
//	    {"width": 8, "height": 8, "rows": ["..####..", ".#....#.", ...]}
//	  ]
//	}
//
// Rows use the same '#'/'.' text as Character.String, which keeps stored
// documents diff-friendly. Every Unmarshal path re-validates invariants.

package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

type configJSON struct {
	Width            int              `json:"width"`
	Height           int              `json:"height"`
	BitDirection     BitDirection     `json:"bitDirection"`
	PaddingDirection PaddingDirection `json:"paddingDirection"`
}

// MarshalJSON implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, coreErrorf("Config.MarshalJSON", err)
	}

	return json.Marshal(configJSON{
		Width:            c.width,
		Height:           c.height,
		BitDirection:     c.bit,
		PaddingDirection: c.padding,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw configJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return coreErrorf("Config.UnmarshalJSON", err)
	}
	cfg, err := NewConfig(raw.Width, raw.Height, raw.BitDirection, raw.PaddingDirection)
	if err != nil {
		return coreErrorf("Config.UnmarshalJSON", err)
	}
	*c = cfg

	return nil
}

type characterJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

// MarshalJSON implements json.Marshaler.
func (c *Character) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, coreErrorf("Character.MarshalJSON", err)
	}

	return json.Marshal(characterJSON{
		Width:  c.w,
		Height: c.h,
		Rows:   strings.Split(c.String(), "\n"),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Character) UnmarshalJSON(data []byte) error {
	var raw characterJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return coreErrorf("Character.UnmarshalJSON", err)
	}
	if len(raw.Rows) != raw.Height {
		return fmt.Errorf("Character.UnmarshalJSON: %d rows for height %d: %w", len(raw.Rows), raw.Height, ErrShapeMismatch)
	}
	parsed, err := ParseCharacter(strings.Join(raw.Rows, "\n"))
	if err != nil {
		return coreErrorf("Character.UnmarshalJSON", err)
	}
	if parsed.w != raw.Width || parsed.h != raw.Height {
		return fmt.Errorf("Character.UnmarshalJSON: %dx%d rows for %dx%d: %w",
			parsed.w, parsed.h, raw.Width, raw.Height, ErrShapeMismatch)
	}
	*c = *parsed

	return nil
}

type charsetJSON struct {
	Config     Config       `json:"config"`
	Characters []*Character `json:"characters"`
}

// MarshalJSON implements json.Marshaler.
func (s *CharacterSet) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return json.Marshal(charsetJSON{Config: s.Config, Characters: s.Characters})
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CharacterSet) UnmarshalJSON(data []byte) error {
	var raw charsetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return coreErrorf("CharacterSet.UnmarshalJSON", err)
	}
	decoded := CharacterSet{Config: raw.Config, Characters: raw.Characters}
	if decoded.Characters == nil {
		decoded.Characters = []*Character{}
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded

	return nil
}
