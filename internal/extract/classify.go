// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns directory position strings into normalized
// (role, program) records. Each category has an ordered list of named
// rules; the first rule whose predicate matches a position handles it.
package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/people-api/pkg/types"
)

// managerPattern matches program and project manager titles.
var managerPattern = regexp.MustCompile(`(?i)(senior )?(program|project) manager`)

// studioOperations is the staff department that marks studio managers.
const studioOperations = "studio operations"

// SelectPositions returns the position strings relevant to category c.
// The boolean is false when nothing matches and the person should be
// excluded from that category.
//
// Program managers yield the first position matching the manager pattern.
// Studio managers always yield positions[0]; they are identified by
// department, not by title. Chairs yield every position mentioning "chair".
func SelectPositions(positions []string, c types.Category) ([]string, bool) {
	switch c {
	case types.ProgramManager:
		for _, pos := range positions {
			if managerPattern.MatchString(pos) {
				return []string{pos}, true
			}
		}
		return nil, false
	case types.StudioManager:
		if len(positions) == 0 {
			return nil, false
		}
		return positions[:1], true
	case types.Chair:
		var matched []string
		for _, pos := range positions {
			if isChairPosition(pos) {
				matched = append(matched, pos)
			}
		}
		return matched, len(matched) > 0
	default:
		return nil, false
	}
}

// IsStudioOperations reports whether the person's primary staff
// department is Studio Operations.
func IsStudioOperations(p types.RawPerson) bool {
	return strings.EqualFold(p.StaffPrimaryDepartment, studioOperations)
}

// HasManagerPosition reports whether any position is a program or
// project manager title.
func HasManagerPosition(p types.RawPerson) bool {
	_, ok := SelectPositions(p.Positions, types.ProgramManager)
	return ok
}

// HasChairPosition reports whether any position mentions "chair".
func HasChairPosition(p types.RawPerson) bool {
	_, ok := SelectPositions(p.Positions, types.Chair)
	return ok
}

func isChairPosition(pos string) bool {
	return strings.Contains(strings.ToLower(pos), "chair")
}
