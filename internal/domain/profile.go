// Package domain holds the value types shared across the expander:
// section/profile definitions and persisted settings. It has no behavior
// beyond simple validation and defaults.
package domain

import "fmt"

// Section describes one trigger/content pair of an accordion.
type Section struct {
	Title string `yaml:"title" json:"title"`
	Body  string `yaml:"body" json:"body"`
	Open  bool   `yaml:"open" json:"open"`
}

// Profile is a named accordion definition: the ordered sections plus the
// behavior options that belong to the content rather than to user
// preferences.
type Profile struct {
	Name        string    `yaml:"name" json:"name"`
	Sections    []Section `yaml:"sections" json:"sections"`
	CloseOthers bool      `yaml:"closeOthers" json:"closeOthers"`

	// ActiveIndex is the section that starts open; nil means none.
	ActiveIndex *int `yaml:"activeIndex,omitempty" json:"activeIndex,omitempty"`
}

// Validate checks a profile is well formed enough to build a widget from.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}
	if len(p.Sections) == 0 {
		return fmt.Errorf("profile %q has no sections", p.Name)
	}
	for i, s := range p.Sections {
		if s.Title == "" {
			return fmt.Errorf("profile %q: section %d has no title", p.Name, i)
		}
	}
	if p.ActiveIndex != nil && (*p.ActiveIndex < 0 || *p.ActiveIndex >= len(p.Sections)) {
		return fmt.Errorf("profile %q: activeIndex %d out of range", p.Name, *p.ActiveIndex)
	}
	return nil
}
