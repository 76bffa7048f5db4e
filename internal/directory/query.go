// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package directory queries the Portal people search index and decodes
// the hits into RawPerson records.
package directory

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UserType is the usertype_filter facet of the people index.
type UserType string

const (
	Staff   UserType = "Staff"
	Faculty UserType = "Faculty"
)

// DefaultSize is the number of hits requested per query.
const DefaultSize = 60

// Field is a searchable field with an optional boost.
type Field struct {
	Name  string
	Boost int
}

// String renders the field in simple_query_string syntax, e.g. "positions^5".
func (f Field) String() string {
	if f.Boost > 1 {
		return fmt.Sprintf("%s^%d", f.Name, f.Boost)
	}
	return f.Name
}

// SortKey orders hits by one field.
type SortKey struct {
	Field string
	Desc  bool
}

// Query describes one search against the people index. Values are built
// fresh by StaffQuery and FacultyQuery and never shared between requests.
type Query struct {
	Text     string
	Fields   []Field
	UserType UserType
	Size     int
	Sort     []SortKey
}

var searchFields = []Field{
	{Name: "full_name", Boost: 5},
	{Name: "get_faculty_programs"},
	{Name: "positions", Boost: 5},
	{Name: "get_majors"},
	{Name: "get_staff_departments"},
	{Name: "username"},
}

// relevanceThenSurname sorts by score, then last name.
func relevanceThenSurname() []SortKey {
	return []SortKey{
		{Field: "_score", Desc: true},
		{Field: "get_last_name_filter"},
	}
}

// StaffQuery searches staff profiles for "manager".
func StaffQuery(size int) Query {
	return newQuery("manager", Staff, size)
}

// FacultyQuery searches faculty profiles for "chair".
func FacultyQuery(size int) Query {
	return newQuery("chair", Faculty, size)
}

func newQuery(text string, userType UserType, size int) Query {
	if size <= 0 {
		size = DefaultSize
	}
	return Query{
		Text:     text,
		Fields:   append([]Field(nil), searchFields...),
		UserType: userType,
		Size:     size,
		Sort:     relevanceThenSurname(),
	}
}

// Validate reports queries the index would reject or answer uselessly.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("query text is empty")
	}
	if len(q.Fields) == 0 {
		return fmt.Errorf("query has no search fields")
	}
	if q.Size <= 0 {
		return fmt.Errorf("query size must be positive, got %d", q.Size)
	}
	return nil
}

// Request body JSON structures.
type searchRequest struct {
	Query      queryClause         `json:"query"`
	PostFilter *postFilter         `json:"post_filter,omitempty"`
	Size       int                 `json:"size"`
	Sort       []map[string]string `json:"sort,omitempty"`
}

type queryClause struct {
	SimpleQueryString simpleQueryString `json:"simple_query_string"`
}

type simpleQueryString struct {
	Query           string   `json:"query"`
	Fields          []string `json:"fields"`
	DefaultOperator string   `json:"default_operator"`
}

type postFilter struct {
	Term map[string]string `json:"term"`
}

// Body renders the query as the index's JSON request document.
func (q Query) Body() ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	fields := make([]string, len(q.Fields))
	for i, f := range q.Fields {
		fields[i] = f.String()
	}

	req := searchRequest{
		Query: queryClause{SimpleQueryString: simpleQueryString{
			Query:           q.Text,
			Fields:          fields,
			DefaultOperator: "AND",
		}},
		Size: q.Size,
	}
	if q.UserType != "" {
		req.PostFilter = &postFilter{Term: map[string]string{"usertype_filter": string(q.UserType)}}
	}
	for _, s := range q.Sort {
		order := "asc"
		if s.Desc {
			order = "desc"
		}
		req.Sort = append(req.Sort, map[string]string{s.Field: order})
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}
	return data, nil
}
