// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the people-api pipeline.
// RawPerson is what the directory index returns; PersonRecord is what the
// extraction stage produces and the sheet writers consume.
package types

import (
	"fmt"
	"strings"
)

// EmailDomain is appended to a username to form a person's email address.
// Directory records do not reliably carry an email, but every record has a
// username.
const EmailDomain = "cca.edu"

// Header is the column header written ahead of the record rows.
var Header = []string{"Name", "Email", "Role", "Program(s) or Department"}

// RawPerson is one person document from the directory search index.
// Field names follow the index's _source document.
type RawPerson struct {
	// FullName is the display name.
	FullName string `json:"full_name" yaml:"full_name"`

	// Username is the portal username; email is derived from it.
	Username string `json:"username" yaml:"username"`

	// StaffPrimaryDepartment is empty for faculty.
	StaffPrimaryDepartment string `json:"staff_primary_department" yaml:"staff_primary_department"`

	// Positions lists the person's free-text job titles in directory order.
	Positions []string `json:"positions" yaml:"positions"`

	// FacultyPrograms is the program facet for faculty records, if present.
	FacultyPrograms []string `json:"get_faculty_programs_filter,omitempty" yaml:"faculty_programs,omitempty"`

	// LastName is the sort key used by the index.
	LastName string `json:"get_last_name_filter,omitempty" yaml:"last_name,omitempty"`
}

// Category selects the extraction rule set applied to a person.
type Category string

const (
	ProgramManager Category = "program-manager"
	StudioManager  Category = "studio-manager"
	Chair          Category = "chair"
)

// Categories lists every category in routing priority order for staff
// followed by faculty.
var Categories = []Category{StudioManager, ProgramManager, Chair}

func (c Category) String() string { return string(c) }

// ParseCategory converts a flag value such as "pm" or "chair" to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pm", "program-manager", "programmanager":
		return ProgramManager, nil
	case "sm", "studio-manager", "studiomanager":
		return StudioManager, nil
	case "chair":
		return Chair, nil
	default:
		return "", fmt.Errorf("unknown category %q: use pm, sm, or chair", s)
	}
}

// ExtractedRole is the normalized (role, program) pair for one person.
// For chairs Program may hold several programs joined with "; ".
type ExtractedRole struct {
	Role    string `json:"role" yaml:"role"`
	Program string `json:"program" yaml:"program"`
}

// PersonRecord is one output row.
type PersonRecord struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Role    string `json:"role" yaml:"role"`
	Program string `json:"program" yaml:"program"`
}

// Row returns the record as [name, email, role, program].
func (r PersonRecord) Row() []string {
	return []string{r.Name, r.Email, r.Role, r.Program}
}

// Rows converts records into sheet rows, preserving order.
func Rows(records []PersonRecord) [][]string {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Row()
	}
	return rows
}
