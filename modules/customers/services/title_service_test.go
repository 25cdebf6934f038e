package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/altora/backoffice/modules/customers/domain/entities/title"
)

type memTitleRepo struct {
	nextID  uint
	entries map[uint]title.Title
}

func newMemTitleRepo() *memTitleRepo {
	return &memTitleRepo{nextID: 1, entries: map[uint]title.Title{}}
}

func (m *memTitleRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.entries)), nil
}

func (m *memTitleRepo) GetAll(ctx context.Context) ([]title.Title, error) {
	out := make([]title.Title, 0, len(m.entries))
	for _, t := range m.entries {
		out = append(out, t)
	}
	return out, nil
}

func (m *memTitleRepo) GetPaginated(ctx context.Context, params *title.FindParams) ([]title.Title, error) {
	return m.GetAll(ctx)
}

func (m *memTitleRepo) GetByID(ctx context.Context, id uint) (title.Title, error) {
	t, ok := m.entries[id]
	if !ok {
		return title.Title{}, title.ErrNotFound
	}
	return t, nil
}

func (m *memTitleRepo) Create(ctx context.Context, data title.Title) (title.Title, error) {
	for _, existing := range m.entries {
		if existing.Name() == data.Name() {
			return title.Title{}, title.ErrNameTaken
		}
	}
	id := m.nextID
	m.nextID++
	created := title.Hydrate(id, data.TenantID(), data.Name(), data.CreatedAt(), data.UpdatedAt())
	m.entries[id] = created
	return created, nil
}

func (m *memTitleRepo) Update(ctx context.Context, data title.Title) error {
	if _, ok := m.entries[data.ID()]; !ok {
		return title.ErrNotFound
	}
	m.entries[data.ID()] = data
	return nil
}

func (m *memTitleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.entries[id]; !ok {
		return title.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

type capturePublisher struct {
	events []interface{}
}

func (p *capturePublisher) Publish(args ...interface{}) {
	p.events = append(p.events, args...)
}
func (p *capturePublisher) Subscribe(handler interface{})   {}
func (p *capturePublisher) Unsubscribe(handler interface{}) {}
func (p *capturePublisher) Clear()                          {}
func (p *capturePublisher) SubscribersCount() int           { return 0 }

func TestTitleService_CreatePublishesEvent(t *testing.T) {
	repo := newMemTitleRepo()
	publisher := &capturePublisher{}
	svc := NewTitleService(repo, publisher)

	err := svc.Create(context.Background(), &title.CreateDTO{Name: "Mr"})
	require.NoError(t, err)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.Len(t, publisher.events, 1)
	ev, ok := publisher.events[0].(*title.CreatedEvent)
	require.True(t, ok)
	require.Equal(t, "mr", ev.Result.Name())
}

func TestTitleService_CreateDuplicateName(t *testing.T) {
	repo := newMemTitleRepo()
	publisher := &capturePublisher{}
	svc := NewTitleService(repo, publisher)

	require.NoError(t, svc.Create(context.Background(), &title.CreateDTO{Name: "Mr"}))
	err := svc.Create(context.Background(), &title.CreateDTO{Name: "mr"})
	require.ErrorIs(t, err, title.ErrNameTaken)
	require.Len(t, publisher.events, 1, "no event for the failed create")
}

func TestTitleService_UpdatePublishesEvent(t *testing.T) {
	repo := newMemTitleRepo()
	publisher := &capturePublisher{}
	svc := NewTitleService(repo, publisher)

	require.NoError(t, svc.Create(context.Background(), &title.CreateDTO{Name: "Mr"}))

	err := svc.Update(context.Background(), 1, &title.UpdateDTO{Name: "Mister"})
	require.NoError(t, err)

	entity, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "mister", entity.Name())

	require.Len(t, publisher.events, 2)
	_, ok := publisher.events[1].(*title.UpdatedEvent)
	require.True(t, ok)
}

func TestTitleService_UpdateMissing(t *testing.T) {
	svc := NewTitleService(newMemTitleRepo(), &capturePublisher{})
	err := svc.Update(context.Background(), 42, &title.UpdateDTO{Name: "Mr"})
	require.ErrorIs(t, err, title.ErrNotFound)
}

func TestTitleService_DeleteReturnsEntity(t *testing.T) {
	repo := newMemTitleRepo()
	publisher := &capturePublisher{}
	svc := NewTitleService(repo, publisher)

	require.NoError(t, svc.Create(context.Background(), &title.CreateDTO{Name: "Mr"}))

	deleted, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "mr", deleted.Name())

	_, err = svc.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, title.ErrNotFound)

	require.Len(t, publisher.events, 2)
	_, ok := publisher.events[1].(*title.DeletedEvent)
	require.True(t, ok)
}

func TestTitleService_DeleteMany(t *testing.T) {
	repo := newMemTitleRepo()
	publisher := &capturePublisher{}
	svc := NewTitleService(repo, publisher)

	for _, name := range []string{"Mr", "Mrs", "Ms"} {
		require.NoError(t, svc.Create(context.Background(), &title.CreateDTO{Name: name}))
	}

	deleted, err := svc.DeleteMany(context.Background(), []uint{1, 3})
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
}

func TestTitleService_DeleteManyMissingID(t *testing.T) {
	repo := newMemTitleRepo()
	svc := NewTitleService(repo, &capturePublisher{})

	require.NoError(t, svc.Create(context.Background(), &title.CreateDTO{Name: "Mr"}))

	_, err := svc.DeleteMany(context.Background(), []uint{1, 99})
	require.ErrorIs(t, err, title.ErrNotFound)
}
