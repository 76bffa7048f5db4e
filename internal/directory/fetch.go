// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package directory

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/people-api/pkg/types"
)

// ResultSets holds the people returned for each query of a run.
type ResultSets struct {
	Staff   []types.RawPerson
	Faculty []types.RawPerson
}

// FetchAll runs the staff and faculty queries concurrently. A nil query
// is skipped. Each result set lands in its own field, so ordering does not
// depend on which request finishes first. The first error cancels the
// other request and is returned.
func FetchAll(ctx context.Context, f Fetcher, staff, faculty *Query) (ResultSets, error) {
	var out ResultSets
	g, gCtx := errgroup.WithContext(ctx)

	if staff != nil {
		q := *staff
		g.Go(func() error {
			people, err := f.Fetch(gCtx, q)
			if err != nil {
				return fmt.Errorf("fetching staff: %w", err)
			}
			out.Staff = people
			return nil
		})
	}
	if faculty != nil {
		q := *faculty
		g.Go(func() error {
			people, err := f.Fetch(gCtx, q)
			if err != nil {
				return fmt.Errorf("fetching faculty: %w", err)
			}
			out.Faculty = people
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return ResultSets{}, err
	}
	return out, nil
}
