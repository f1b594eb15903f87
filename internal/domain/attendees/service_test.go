package attendees

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherhall/server/internal/domain/events"
	"github.com/stretchr/testify/require"
)

const (
	attendeeULID = "01HYX3KQW7ERTV9XNBM2P8QJZF"
	eventULID    = "01HYX3KQW7ERTV9XNBM2P8QJZG"
)

type stubRepo struct {
	listFn   func() ([]Attendee, error)
	getFn    func(ulid string) (*Attendee, error)
	createFn func(ulid string, fields map[string]any) (*Attendee, error)
	deleteFn func(ulid string) error
}

func (s stubRepo) List(_ context.Context) ([]Attendee, error) {
	return s.listFn()
}

func (s stubRepo) GetByULID(_ context.Context, ulid string) (*Attendee, error) {
	return s.getFn(ulid)
}

func (s stubRepo) Create(_ context.Context, ulid string, fields map[string]any) (*Attendee, error) {
	return s.createFn(ulid, fields)
}

func (s stubRepo) Delete(_ context.Context, ulid string) error {
	return s.deleteFn(ulid)
}

type stubEventsRepo struct {
	getFn func(ulid string) (*events.Event, error)
}

func (s stubEventsRepo) List(_ context.Context) ([]events.Event, error) {
	return nil, nil
}

func (s stubEventsRepo) GetByULID(_ context.Context, ulid string) (*events.Event, error) {
	return s.getFn(ulid)
}

func (s stubEventsRepo) Create(_ context.Context, ulid string, fields map[string]any) (*events.Event, error) {
	return nil, nil
}

func (s stubEventsRepo) Update(_ context.Context, ulid string, fields map[string]any) (*events.Event, error) {
	return nil, nil
}

func (s stubEventsRepo) Delete(_ context.Context, ulid string) error {
	return nil
}

func TestGetExpandsEventReference(t *testing.T) {
	repo := stubRepo{
		getFn: func(ulid string) (*Attendee, error) {
			return &Attendee{ULID: attendeeULID, Fields: map[string]any{"name": "Ada", "event": eventULID}}, nil
		},
	}
	eventsRepo := stubEventsRepo{
		getFn: func(ulid string) (*events.Event, error) {
			require.Equal(t, eventULID, ulid)
			return &events.Event{ULID: eventULID, Fields: map[string]any{"name": "Conf"}}, nil
		},
	}

	item, err := NewService(repo, eventsRepo).GetByULID(context.Background(), attendeeULID)

	require.NoError(t, err)
	expanded, ok := item.Fields["event"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, eventULID, expanded["id"])
	require.Equal(t, "Conf", expanded["name"])
}

func TestGetDanglingReferenceBecomesNull(t *testing.T) {
	repo := stubRepo{
		getFn: func(ulid string) (*Attendee, error) {
			return &Attendee{ULID: attendeeULID, Fields: map[string]any{"name": "Ada", "event": eventULID}}, nil
		},
	}
	eventsRepo := stubEventsRepo{
		getFn: func(ulid string) (*events.Event, error) {
			return nil, events.ErrNotFound
		},
	}

	item, err := NewService(repo, eventsRepo).GetByULID(context.Background(), attendeeULID)

	require.NoError(t, err)
	require.Contains(t, item.Fields, "event")
	require.Nil(t, item.Fields["event"])
}

func TestGetNonULIDReferenceBecomesNull(t *testing.T) {
	repo := stubRepo{
		getFn: func(ulid string) (*Attendee, error) {
			return &Attendee{ULID: attendeeULID, Fields: map[string]any{"event": "not-a-ulid"}}, nil
		},
	}
	eventsRepo := stubEventsRepo{
		getFn: func(ulid string) (*events.Event, error) {
			t.Fatal("lookup should not run for a malformed reference")
			return nil, nil
		},
	}

	item, err := NewService(repo, eventsRepo).GetByULID(context.Background(), attendeeULID)

	require.NoError(t, err)
	require.Nil(t, item.Fields["event"])
}

func TestGetWithoutReferenceLeavesFieldAbsent(t *testing.T) {
	repo := stubRepo{
		getFn: func(ulid string) (*Attendee, error) {
			return &Attendee{ULID: attendeeULID, Fields: map[string]any{"name": "Ada"}}, nil
		},
	}

	item, err := NewService(repo, stubEventsRepo{}).GetByULID(context.Background(), attendeeULID)

	require.NoError(t, err)
	require.NotContains(t, item.Fields, "event")
}

func TestListExpandsEachAttendee(t *testing.T) {
	repo := stubRepo{
		listFn: func() ([]Attendee, error) {
			return []Attendee{
				{ULID: attendeeULID, Fields: map[string]any{"event": eventULID}},
				{ULID: "01HYX3KQW7ERTV9XNBM2P8QJZH", Fields: map[string]any{"name": "Bea"}},
			}, nil
		},
	}
	eventsRepo := stubEventsRepo{
		getFn: func(ulid string) (*events.Event, error) {
			return &events.Event{ULID: ulid, Fields: map[string]any{"name": "Conf"}}, nil
		},
	}

	items, err := NewService(repo, eventsRepo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	expanded, ok := items[0].Fields["event"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Conf", expanded["name"])
	require.NotContains(t, items[1].Fields, "event")
}

func TestGetExpansionStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := stubRepo{
		getFn: func(ulid string) (*Attendee, error) {
			return &Attendee{ULID: attendeeULID, Fields: map[string]any{"event": eventULID}}, nil
		},
	}
	eventsRepo := stubEventsRepo{
		getFn: func(ulid string) (*events.Event, error) {
			return nil, storeErr
		},
	}

	_, err := NewService(repo, eventsRepo).GetByULID(context.Background(), attendeeULID)

	require.ErrorIs(t, err, storeErr)
}

func TestCreateStoresReferenceAsGiven(t *testing.T) {
	repo := stubRepo{
		createFn: func(ulid string, fields map[string]any) (*Attendee, error) {
			require.Equal(t, eventULID, fields["event"])
			return &Attendee{ULID: ulid, Fields: fields}, nil
		},
	}

	// The referenced event does not need to exist at write time.
	_, err := NewService(repo, stubEventsRepo{}).Create(context.Background(), map[string]any{"event": eventULID})

	require.NoError(t, err)
}
