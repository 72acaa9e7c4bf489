package query

import (
	"context"
	"testing"

	"github.com/mergington/go-activities/pkg/types"
	"github.com/mergington/go-activities/registry"
	"github.com/stretchr/testify/require"
)

func TestActivityListQuery_ReturnsSeededCatalog(t *testing.T) {
	reg, err := registry.New(registry.Config{})
	require.NoError(t, err)
	q := NewActivityListQuery(reg)

	snapshot, err := q.Query(context.Background(), ActivityListInput{})
	require.NoError(t, err)
	require.Len(t, snapshot, 9)

	chess, ok := snapshot["Chess Club"]
	require.True(t, ok)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestActivityListQuery_SnapshotDoesNotAliasRegistry(t *testing.T) {
	reg, err := registry.New(registry.Config{Catalog: []types.Activity{{
		Name:            "Chess Club",
		MaxParticipants: 4,
		Participants:    []string{"michael@mergington.edu"},
	}}})
	require.NoError(t, err)
	q := NewActivityListQuery(reg)
	ctx := context.Background()

	first, err := q.Query(ctx, ActivityListInput{})
	require.NoError(t, err)
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"

	second, err := q.Query(ctx, ActivityListInput{})
	require.NoError(t, err)
	require.Equal(t, []string{"michael@mergington.edu"}, second["Chess Club"].Participants)
}

func TestActivityListQuery_MissingRegistry(t *testing.T) {
	q := NewActivityListQuery(nil)

	_, err := q.Query(context.Background(), ActivityListInput{})
	require.ErrorIs(t, err, types.ErrMissingRegistry)
}
