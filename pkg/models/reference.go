package models

import "encoding/json"

// ItemLine, ItemGroup and ItemType classify items. They are pure reference
// data: no archive flag, removal is a hard delete.

type ItemLine struct {
	Meta
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ItemGroup struct {
	Meta
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type ItemType struct {
	Meta
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type referencePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// MergePatch applies the recognized item line fields from a partial payload.
func (l *ItemLine) MergePatch(data []byte) error {
	var p referencePatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	return nil
}

// MergePatch applies the recognized item group fields from a partial payload.
func (g *ItemGroup) MergePatch(data []byte) error {
	var p referencePatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	return nil
}

// MergePatch applies the recognized item type fields from a partial payload.
func (t *ItemType) MergePatch(data []byte) error {
	var p referencePatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	return nil
}
