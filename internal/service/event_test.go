package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

type mockEventRepo struct {
	events map[uint]domain.Event
}

func newMockEventRepo(events ...domain.Event) *mockEventRepo {
	repo := &mockEventRepo{events: make(map[uint]domain.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}

	return repo
}

func (m *mockEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uint(len(m.events) + 1)
	m.events[event.ID] = event

	return event, nil
}

func (m *mockEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (m *mockEventRepo) FindAll(_ context.Context, query domain.PageQuery) ([]domain.Event, int64, error) {
	var out []domain.Event
	for _, e := range m.events {
		out = append(out, e)
	}

	return out, int64(len(out)), nil
}

func (m *mockEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	m.events[event.ID] = event

	return event, nil
}

func (m *mockEventRepo) Delete(_ context.Context, id uint) error {
	delete(m.events, id)

	return nil
}

func TestEventCRUD(t *testing.T) {
	repo := newMockEventRepo()
	svc := NewEventService(repo)
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, domain.Event{
		Title:     "Bazar Beneficente",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(4 * time.Hour),
		Location:  "São Paulo",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bazar Beneficente", got.Title)

	got.Title = "Bazar de Natal"
	updated, err := svc.UpdateEvent(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Bazar de Natal", updated.Title)

	page, err := svc.ListEvents(ctx, domain.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))

	_, err = svc.GetEvent(ctx, created.ID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdateEventUnknownID(t *testing.T) {
	svc := NewEventService(newMockEventRepo())

	_, err := svc.UpdateEvent(context.Background(), domain.Event{ID: 42, Title: "Nada"})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteEventUnknownID(t *testing.T) {
	svc := NewEventService(newMockEventRepo())

	err := svc.DeleteEvent(context.Background(), 42)

	assert.ErrorIs(t, err, ErrEventNotFound)
}
