// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/people-api/pkg/types"
)

var programSuffix = regexp.MustCompile(`(?i) Program$`)

// ChairRules parses a single chair-like position, e.g.
// "Assistant Chair, Illustration Program".
var ChairRules = RuleSet{
	{
		// "Chair. Industrial Design Program, Industrial Design Program"
		Name: "period-delimited",
		Match: func(pos string) bool {
			head, _, _ := strings.Cut(pos, segmentSep)
			title, _, found := strings.Cut(head, ". ")
			return found && isChairPosition(title)
		},
		Apply: func(pos string) (types.ExtractedRole, error) {
			title, _, _ := strings.Cut(pos, ". ")
			segs := strings.Split(pos, segmentSep)
			if len(segs) < 2 {
				return types.ExtractedRole{}, shapeErr("period-delimited", pos, "no program segment")
			}
			return types.ExtractedRole{Role: title, Program: stripProgram(segs[1])}, nil
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
			return types.ExtractedRole{Role: segs[0], Program: stripProgram(segs[1])}, nil
		},
	},
}

// extractChair folds every chair position of one person into a single
// pair. Programs are deduplicated in first-seen order. The role comes from
// the last position processed, so a person holding both "Chair" and
// "Assistant Chair" reports whichever is listed last.
func extractChair(positions []string) (types.ExtractedRole, error) {
	var role string
	var programs []string
	seen := make(map[string]bool)
	for _, pos := range positions {
		out, _, err := ChairRules.Apply(pos)
		if err != nil {
			return types.ExtractedRole{}, err
		}
		role = out.Role
		if !seen[out.Program] {
			seen[out.Program] = true
			programs = append(programs, out.Program)
		}
	}
	return types.ExtractedRole{Role: role, Program: strings.Join(programs, "; ")}, nil
}

// stripProgram removes a trailing " Program" from a program name.
func stripProgram(s string) string {
	return programSuffix.ReplaceAllString(s, "")
}
