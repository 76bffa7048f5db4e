// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/people-api/pkg/types"
)

const (
	segmentSep = ", "
	forSep     = " for "
)

// ProgramManagerRules parses program and project manager titles.
//
//	"Project Manager, Humanities & Sciences, Academic Affairs"
//	"Senior Project Manager for Enrollment, Admissions"
//	"Program Manager: Humanities & Sciences, Writing & Literature and Graduate Comics, Humanities and Sciences"
var ProgramManagerRules = RuleSet{
	{
		Name:  "for-clause",
		Match: func(pos string) bool { return strings.Contains(pos, forSep) },
		Apply: func(pos string) (types.ExtractedRole, error) {
			role, rest, _ := strings.Cut(pos, forSep)
			program, _, _ := strings.Cut(rest, ",")
			if role == "" || program == "" {
				return types.ExtractedRole{}, shapeErr("for-clause", pos, "empty role or program around \"for\"")
			}
			return types.ExtractedRole{Role: role, Program: program}, nil
		},
	},
	{
		// Two programs separated by a comma instead of "and", giving
		// four comma segments.
		Name:  "four-segment",
		Match: func(pos string) bool { return len(strings.Split(pos, segmentSep)) == 4 },
		Apply: func(pos string) (types.ExtractedRole, error) {
			segs := strings.Split(pos, segmentSep)
			role := managerPattern.FindString(pos)
			if role == "" {
				return types.ExtractedRole{}, shapeErr("four-segment", pos, "no manager title")
			}
			first := strings.TrimSpace(afterLastColon(segs[1]))
			return types.ExtractedRole{Role: role, Program: first + "; " + segs[2]}, nil
		},
	},
	{
		// "Title: Division, Program and Program, Division". The programs
		// span the whole colon tail, so the comma split would cut them.
		Name:  "colon-and-list",
		Match: isColonAndList,
		Apply: func(pos string) (types.ExtractedRole, error) {
			head, rest, _ := strings.Cut(pos, ":")
			return types.ExtractedRole{
				Role:    managerPattern.FindString(head),
				Program: strings.Replace(strings.TrimSpace(rest), " and ", "; ", 1),
			}, nil
		},
	},
	{
		Name:  "comma-segments",
		Match: always,
		Apply: func(pos string) (types.ExtractedRole, error) {
			segs := strings.Split(pos, segmentSep)
			if len(segs) < 2 {
				return types.ExtractedRole{}, shapeErr("comma-segments", pos, "no program segment")
			}
			role := managerPattern.FindString(pos)
			if role == "" {
				return types.ExtractedRole{}, shapeErr("comma-segments", pos, "no manager title")
			}
			return types.ExtractedRole{Role: role, Program: segs[1]}, nil
		},
	},
}

// isColonAndList reports positions of exactly three comma segments whose
// first holds the manager title and a colon and whose second joins two
// programs with "and".
func isColonAndList(pos string) bool {
	segs := strings.Split(pos, segmentSep)
	if len(segs) != 3 {
		return false
	}
	head, tail, found := strings.Cut(segs[0], ":")
	return found &&
		managerPattern.MatchString(head) &&
		strings.TrimSpace(tail) != "" &&
		strings.Contains(segs[1], " and ")
}

// studioManagerRole is the normalized role for everyone in Studio
// Operations, whatever their title says.
const studioManagerRole = "Studio Manager"

// StudioManagerRules recovers the program from a studio manager's first
// position by removing the department and title labels around it.
var StudioManagerRules = RuleSet{
	{
		Name:  "strip-studio-labels",
		Match: always,
		Apply: func(pos string) (types.ExtractedRole, error) {
			program := pos
			for _, label := range []string{", Studio Operations", "Studio Manager", "Studio Operations Manager"} {
				program = strings.Replace(program, label, "", 1)
			}
			program = strings.TrimPrefix(program, ", ")
			program = strings.TrimPrefix(program, " -")
			return types.ExtractedRole{Role: studioManagerRole, Program: strings.TrimSpace(program)}, nil
		},
	},
}

func afterLastColon(s string) string {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		return s[i+1:]
	}
	return s
}
