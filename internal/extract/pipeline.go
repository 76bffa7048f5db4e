// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"

	"go.uber.org/zap"

	"github.com/pdiddy/people-api/pkg/types"
)

// Route sends a person to a category when Match reports true.
type Route struct {
	Category types.Category
	Match    func(types.RawPerson) bool
}

// Router is a priority list of routes; the first match decides the
// category and people matching no route are dropped.
type Router []Route

// Route returns the category for p, or false when no route matches.
func (r Router) Route(p types.RawPerson) (types.Category, bool) {
	for _, route := range r {
		if route.Match(p) {
			return route.Category, true
		}
	}
	return "", false
}

// StaffRouter routes staff by department first (studio managers), then by
// title (program managers). Only the enabled categories are routed, so a
// Studio Operations staffer with a manager title still reaches the program
// manager rules when studio managers are disabled.
func StaffRouter(enabled ...types.Category) Router {
	all := Router{
		{Category: types.StudioManager, Match: IsStudioOperations},
		{Category: types.ProgramManager, Match: HasManagerPosition},
	}
	return filterRoutes(all, enabled)
}

// FacultyRouter routes faculty holding a chair-like position.
func FacultyRouter() Router {
	return Router{{Category: types.Chair, Match: HasChairPosition}}
}

func filterRoutes(routes Router, enabled []types.Category) Router {
	if len(enabled) == 0 {
		return routes
	}
	keep := make(map[types.Category]bool, len(enabled))
	for _, c := range enabled {
		keep[c] = true
	}
	var out Router
	for _, r := range routes {
		if keep[r.Category] {
			out = append(out, r)
		}
	}
	return out
}

// Result holds the records of one extraction pass and its counts.
type Result struct {
	Records  []types.PersonRecord
	Dropped  int
	Skipped  int
	Failed   int
	Failures []*ShapeError
}

// Total returns the number of people processed.
func (r Result) Total() int {
	return len(r.Records) + r.Dropped + r.Skipped + r.Failed
}

// HasFailures reports whether any person could not be parsed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Pipeline runs classification, extraction and record building over a
// result set. It holds no state between runs.
type Pipeline struct {
	logger *zap.Logger
}

// New returns a Pipeline that logs parse failures to logger. A nil logger
// discards them.
func New(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{logger: logger}
}

// Run extracts one record per routed person, in input order. People no
// route accepts are dropped, people whose positions do not match their
// category are skipped, and malformed positions are logged and skipped.
func (p *Pipeline) Run(people []types.RawPerson, router Router) Result {
	var res Result
	for _, person := range people {
		category, ok := router.Route(person)
		if !ok {
			res.Dropped++
			continue
		}
		rec, found, err := p.Person(person, category)
		if err != nil {
			var se *ShapeError
			if !errors.As(err, &se) {
				se = &ShapeError{Reason: err.Error()}
			}
			se.Username = person.Username
			p.logger.Warn("skipping person with unparseable position",
				zap.String("username", person.Username),
				zap.String("name", person.FullName),
				zap.String("category", category.String()),
				zap.String("rule", se.Rule),
				zap.String("position", se.Position),
				zap.String("reason", se.Reason))
			res.Failed++
			res.Failures = append(res.Failures, se)
			continue
		}
		if !found {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	p.logger.Debug("extraction pass complete",
		zap.Int("records", len(res.Records)),
		zap.Int("dropped", res.Dropped),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return res
}

// Person extracts the record for a single person under category c. The
// boolean is false when no position belongs to c.
func (p *Pipeline) Person(person types.RawPerson, c types.Category) (types.PersonRecord, bool, error) {
	positions, ok := SelectPositions(person.Positions, c)
	if !ok {
		return types.PersonRecord{}, false, nil
	}
	role, err := Extract(c, positions)
	if err != nil {
		return types.PersonRecord{}, false, err
	}
	return Build(person, role), true, nil
}

// Combine concatenates results in the given order, staff before faculty.
func Combine(results ...Result) Result {
	var out Result
	for _, r := range results {
		out.Records = append(out.Records, r.Records...)
		out.Dropped += r.Dropped
		out.Skipped += r.Skipped
		out.Failed += r.Failed
		out.Failures = append(out.Failures, r.Failures...)
	}
	return out
}
