package domain

import "strings"

// Filters are the optional adoption-search inputs from the site form
type Filters struct {
	Age      string `json:"age,omitempty"`
	Color    string `json:"color,omitempty"`
	Location string `json:"localizacao,omitempty"`
}

// Normalize trims whitespace from every field
func (f Filters) Normalize() Filters {
	return Filters{
		Age:      strings.TrimSpace(f.Age),
		Color:    strings.TrimSpace(f.Color),
		Location: strings.TrimSpace(f.Location),
	}
}

// IsEmpty reports whether no filter was given
func (f Filters) IsEmpty() bool {
	n := f.Normalize()
	return n.Age == "" && n.Color == "" && n.Location == ""
}
