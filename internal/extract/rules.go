// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"

	"github.com/pdiddy/people-api/pkg/types"
)

// Rule parses one position string layout. Match is a cheap predicate on
// the raw text; Apply does the parsing and returns a ShapeError when the
// text matched but is missing a segment the rule needs.
type Rule struct {
	Name  string
	Match func(position string) bool
	Apply func(position string) (types.ExtractedRole, error)
}

// RuleSet is evaluated top-down; the first matching rule wins.
type RuleSet []Rule

// Apply runs the first matching rule against position and returns the
// extracted pair together with the name of the rule that produced it.
func (rs RuleSet) Apply(position string) (types.ExtractedRole, string, error) {
	for _, r := range rs {
		if !r.Match(position) {
			continue
		}
		out, err := r.Apply(position)
		if err != nil {
			return types.ExtractedRole{}, r.Name, err
		}
		return out, r.Name, nil
	}
	return types.ExtractedRole{}, "", shapeErr("", position, "no rule matched")
}

// Names lists the rule names in evaluation order.
func (rs RuleSet) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Extract produces the (role, program) pair for positions already chosen
// by SelectPositions for category c.
func Extract(c types.Category, positions []string) (types.ExtractedRole, error) {
	if len(positions) == 0 {
		return types.ExtractedRole{}, fmt.Errorf("%s: no positions selected", c)
	}
	switch c {
	case types.ProgramManager:
		out, _, err := ProgramManagerRules.Apply(positions[0])
		return out, err
	case types.StudioManager:
		out, _, err := StudioManagerRules.Apply(positions[0])
		return out, err
	case types.Chair:
		return extractChair(positions)
	default:
		return types.ExtractedRole{}, fmt.Errorf("unknown category %q", c)
	}
}

func always(string) bool { return true }
