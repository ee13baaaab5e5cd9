package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

/************************************************
/**** MARK: REFERENCE KINDS ****/
/************************************************/

// RefKind tells whether a hierarchy entry carries a backend id.
// Older data stored sub-modules and features by name only.
type RefKind int

const (
	RefLegacy RefKind = iota
	RefIdentified
)

// Hierarchy is the denormalized tree served by /test-cases/hierarchy-structure,
// keyed by module name.
type Hierarchy map[string]HierarchyModule

type HierarchyModule struct {
	ID         int64                         `json:"id,omitempty"`
	SubModules map[string]HierarchySubModule `json:"sub_modules"`
}

// HierarchySubModule is keyed by name in its parent; Kind is RefLegacy when
// the backend sent no id for it.
type HierarchySubModule struct {
	Kind     RefKind
	ID       int64
	Features []FeatureEntry
}

// FeatureEntry is either Legacy{name} or Identified{id, name, description}.
type FeatureEntry struct {
	Kind        RefKind
	ID          int64
	Name        string
	Description string
}

func LegacyFeature(name string) FeatureEntry {
	return FeatureEntry{Kind: RefLegacy, Name: name}
}

func IdentifiedFeature(id int64, name, description string) FeatureEntry {
	return FeatureEntry{Kind: RefIdentified, ID: id, Name: name, Description: description}
}

func (f FeatureEntry) IsLegacy() bool {
	return f.Kind == RefLegacy
}

func (s HierarchySubModule) IsLegacy() bool {
	return s.Kind == RefLegacy
}

type refWire struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (f *FeatureEntry) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		*f = LegacyFeature(name)
		return nil
	}

	var w refWire
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("feature entry: %w", err)
	}
	if w.ID == nil || *w.ID <= 0 {
		*f = FeatureEntry{Kind: RefLegacy, Name: w.Name, Description: w.Description}
		return nil
	}
	*f = IdentifiedFeature(*w.ID, w.Name, w.Description)
	return nil
}

func (f FeatureEntry) MarshalJSON() ([]byte, error) {
	out := struct {
		ID          *int64 `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		Legacy      bool   `json:"legacy"`
	}{Name: f.Name, Description: f.Description, Legacy: f.IsLegacy()}
	if !f.IsLegacy() {
		id := f.ID
		out.ID = &id
	}
	return json.Marshal(out)
}

func (s *HierarchySubModule) UnmarshalJSON(b []byte) error {
	var w struct {
		ID       *int64         `json:"id"`
		Features []FeatureEntry `json:"features"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("sub-module entry: %w", err)
	}
	s.Features = w.Features
	if w.ID == nil || *w.ID <= 0 {
		s.Kind = RefLegacy
		s.ID = 0
		return nil
	}
	s.Kind = RefIdentified
	s.ID = *w.ID
	return nil
}

func (s HierarchySubModule) MarshalJSON() ([]byte, error) {
	out := struct {
		ID       *int64         `json:"id"`
		Legacy   bool           `json:"legacy"`
		Features []FeatureEntry `json:"features"`
	}{Legacy: s.IsLegacy(), Features: s.Features}
	if out.Features == nil {
		out.Features = []FeatureEntry{}
	}
	if !s.IsLegacy() {
		id := s.ID
		out.ID = &id
	}
	return json.Marshal(out)
}
