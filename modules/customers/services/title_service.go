package services

import (
	"context"

	"github.com/altora/backoffice/modules/customers/domain/entities/title"
	"github.com/altora/backoffice/pkg/composables"
	"github.com/altora/backoffice/pkg/eventbus"
)

type TitleService struct {
	repo      title.Repository
	publisher eventbus.EventBus
}

func NewTitleService(repo title.Repository, publisher eventbus.EventBus) *TitleService {
	return &TitleService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *TitleService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *TitleService) GetAll(ctx context.Context) ([]title.Title, error) {
	return s.repo.GetAll(ctx)
}

func (s *TitleService) GetByID(ctx context.Context, id uint) (title.Title, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TitleService) GetPaginated(ctx context.Context, params *title.FindParams) ([]title.Title, error) {
	return s.repo.GetPaginated(ctx, params)
}

func (s *TitleService) Create(ctx context.Context, data *title.CreateDTO) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		createdEntity, err := s.repo.Create(txCtx, data.ToEntity())
		if err != nil {
			return err
		}
		s.publisher.Publish(title.NewCreatedEvent(*data, createdEntity))
		return nil
	})
}

func (s *TitleService) Update(ctx context.Context, id uint, data *title.UpdateDTO) error {
	return composables.InTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		entity := data.ToEntity(existing)
		if err := s.repo.Update(txCtx, entity); err != nil {
			return err
		}
		s.publisher.Publish(title.NewUpdatedEvent(*data, entity))
		return nil
	})
}

func (s *TitleService) Delete(ctx context.Context, id uint) (title.Title, error) {
	var deleted title.Title
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		entity, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.repo.Delete(txCtx, id); err != nil {
			return err
		}
		deleted = entity
		s.publisher.Publish(title.NewDeletedEvent(entity))
		return nil
	})
	if err != nil {
		return title.Title{}, err
	}
	return deleted, nil
}

// DeleteMany removes the given titles atomically; one missing or still
// referenced title rolls back the whole batch.
func (s *TitleService) DeleteMany(ctx context.Context, ids []uint) (int, error) {
	deleted := 0
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		for _, id := range ids {
			entity, err := s.repo.GetByID(txCtx, id)
			if err != nil {
				return err
			}
			if err := s.repo.Delete(txCtx, id); err != nil {
				return err
			}
			deleted++
			s.publisher.Publish(title.NewDeletedEvent(entity))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
