// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "github.com/pdiddy/people-api/pkg/types"

// Email derives a person's address from their username.
func Email(username string) string {
	return username + "@" + types.EmailDomain
}

// Build combines identity fields with the extracted pair. Missing names
// or usernames pass through unchanged.
func Build(p types.RawPerson, r types.ExtractedRole) types.PersonRecord {
	return types.PersonRecord{
		Name:    p.FullName,
		Email:   Email(p.Username),
		Role:    r.Role,
		Program: r.Program,
	}
}
