// Package query exposes the read side of the activity service as go-command
// queriers.
package query

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	"github.com/mergington/go-activities/pkg/types"
)

// ActivityListInput selects the catalog snapshot. It has no knobs today; the
// struct exists so the querier contract stays stable if filters arrive later.
type ActivityListInput struct{}

// ActivityListQuery returns a read-only snapshot of the full catalog keyed by
// activity name.
type ActivityListQuery struct {
	registry types.Registry
}

// NewActivityListQuery constructs the query helper.
func NewActivityListQuery(registry types.Registry) *ActivityListQuery {
	return &ActivityListQuery{registry: registry}
}

var _ gocommand.Querier[ActivityListInput, map[string]types.Activity] = (*ActivityListQuery)(nil)

// Query returns the catalog snapshot. The copy is deep: callers own the result.
func (q *ActivityListQuery) Query(ctx context.Context, _ ActivityListInput) (map[string]types.Activity, error) {
	if q.registry == nil {
		return nil, types.ErrMissingRegistry
	}
	return q.registry.Snapshot(ctx), nil
}
