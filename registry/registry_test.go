package registry

import (
	"context"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/mergington/go-activities/pkg/types"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, catalog ...types.Activity) *ActivityRegistry {
	t.Helper()
	reg, err := New(Config{Catalog: catalog})
	require.NoError(t, err)
	return reg
}

func requireTextCode(t *testing.T, err error, code string) {
	t.Helper()
	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich), "expected go-errors.Error, got %T", err)
	require.Equal(t, code, rich.TextCode)
}

func TestNew_SeedsDefaultCatalog(t *testing.T) {
	reg, err := New(Config{})
	require.NoError(t, err)

	snapshot := reg.Snapshot(context.Background())
	require.Len(t, snapshot, 9)
	for _, name := range []string{
		"Chess Club", "Programming Class", "Gym Class", "Soccer Team",
		"Basketball Team", "Art Club", "Drama Club", "Debate Club", "Science Club",
	} {
		activity, ok := snapshot[name]
		require.True(t, ok, "missing seeded activity %q", name)
		require.NotEmpty(t, activity.Description)
		require.NotEmpty(t, activity.Schedule)
		require.Positive(t, activity.MaxParticipants)
		require.Len(t, activity.Participants, 2)
	}
}

func TestNew_RejectsBadSeeds(t *testing.T) {
	cases := map[string][]types.Activity{
		"empty name":          {{Name: "", MaxParticipants: 5}},
		"duplicate name":      {{Name: "Chess Club", MaxParticipants: 5}, {Name: "Chess Club", MaxParticipants: 5}},
		"zero capacity":       {{Name: "Chess Club", MaxParticipants: 0}},
		"roster over cap":     {{Name: "Chess Club", MaxParticipants: 1, Participants: []string{"a@x.io", "b@x.io"}}},
		"duplicate in roster": {{Name: "Chess Club", MaxParticipants: 5, Participants: []string{"a@x.io", "a@x.io"}}},
	}
	for name, catalog := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(Config{Catalog: catalog})
			require.Error(t, err)
		})
	}
}

func TestSnapshot_IsDetachedFromRegistryState(t *testing.T) {
	reg := newTestRegistry(t, types.Activity{
		Name:            "Chess Club",
		MaxParticipants: 4,
		Participants:    []string{"michael@mergington.edu"},
	})
	ctx := context.Background()

	snapshot := reg.Snapshot(ctx)
	snapshot["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(snapshot, "Chess Club")

	fresh := reg.Snapshot(ctx)
	require.Equal(t, []string{"michael@mergington.edu"}, fresh["Chess Club"].Participants)
}

func TestEnroll_AppendsInSignupOrder(t *testing.T) {
	reg := newTestRegistry(t, types.Activity{Name: "Art Club", MaxParticipants: 5})
	ctx := context.Background()

	for _, addr := range []string{"one@mergington.edu", "two@mergington.edu", "three@mergington.edu"} {
		_, err := reg.Enroll(ctx, "Art Club", addr)
		require.NoError(t, err)
	}

	snapshot := reg.Snapshot(ctx)
	require.Equal(t,
		[]string{"one@mergington.edu", "two@mergington.edu", "three@mergington.edu"},
		snapshot["Art Club"].Participants)
}

func TestEnroll_UnknownActivity(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Enroll(context.Background(), "Knitting Circle", "someone@mergington.edu")
	requireTextCode(t, err, TextCodeActivityNotFound)
}

func TestEnroll_RejectsSeededDuplicate(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Enroll(context.Background(), "Chess Club", "michael@mergington.edu")
	requireTextCode(t, err, TextCodeAlreadySignedUp)
}

func TestEnroll_FullActivityLeavesRosterUnchanged(t *testing.T) {
	reg := newTestRegistry(t, types.Activity{
		Name:            "Chess Club",
		MaxParticipants: 2,
		Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
	})
	ctx := context.Background()

	_, err := reg.Enroll(ctx, "Chess Club", "c@mergington.edu")
	requireTextCode(t, err, TextCodeActivityFull)

	snapshot := reg.Snapshot(ctx)
	require.Equal(t, []string{"a@mergington.edu", "b@mergington.edu"}, snapshot["Chess Club"].Participants)
}

func TestWithdraw_RemovesSingleOccurrence(t *testing.T) {
	reg := newTestRegistry(t, types.Activity{
		Name:            "Debate Club",
		MaxParticipants: 5,
		Participants:    []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
	})
	ctx := context.Background()

	updated, err := reg.Withdraw(ctx, "Debate Club", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "c@mergington.edu"}, updated.Participants)
}

func TestWithdraw_UnknownActivity(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Withdraw(context.Background(), "Knitting Circle", "someone@mergington.edu")
	requireTextCode(t, err, TextCodeActivityNotFound)
}

func TestWithdraw_NotRegistered(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Withdraw(context.Background(), "Chess Club", "notregistered@mergington.edu")
	requireTextCode(t, err, TextCodeNotRegistered)
}

func TestEnrollThenWithdraw_RoundTripsRoster(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	before := reg.Snapshot(ctx)["Chess Club"].Participants

	_, err := reg.Enroll(ctx, "Chess Club", "testuser@mergington.edu")
	require.NoError(t, err)
	_, err = reg.Withdraw(ctx, "Chess Club", "testuser@mergington.edu")
	require.NoError(t, err)

	after := reg.Snapshot(ctx)["Chess Club"].Participants
	require.Equal(t, before, after)
}

func TestInvariants_HoldAcrossMixedOperations(t *testing.T) {
	reg := newTestRegistry(t, types.Activity{Name: "Gym Class", MaxParticipants: 3})
	ctx := context.Background()

	emails := []string{
		"a@mergington.edu", "b@mergington.edu", "c@mergington.edu",
		"d@mergington.edu", "a@mergington.edu",
	}
	for _, addr := range emails {
		_, _ = reg.Enroll(ctx, "Gym Class", addr)
	}
	_, _ = reg.Withdraw(ctx, "Gym Class", "b@mergington.edu")
	_, _ = reg.Enroll(ctx, "Gym Class", "e@mergington.edu")

	activity := reg.Snapshot(ctx)["Gym Class"]
	require.LessOrEqual(t, len(activity.Participants), activity.MaxParticipants)
	seen := map[string]int{}
	for _, participant := range activity.Participants {
		seen[participant]++
		require.Equal(t, 1, seen[participant], "duplicate participant %q", participant)
	}
}
