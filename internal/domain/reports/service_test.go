package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	events    int64
	attendees int64
	err       error
}

func (s stubRepo) CountEvents(_ context.Context) (int64, error) {
	return s.events, s.err
}

func (s stubRepo) CountAttendees(_ context.Context) (int64, error) {
	return s.attendees, s.err
}

func TestEventStats(t *testing.T) {
	svc := NewService(stubRepo{events: 3, attendees: 7})

	stats, err := svc.EventStats(context.Background())

	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalEvents)
	require.Equal(t, int64(7), stats.TotalAttendees)
}

func TestEventStatsStoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(stubRepo{err: storeErr})

	_, err := svc.EventStats(context.Background())

	require.ErrorIs(t, err, storeErr)
}
