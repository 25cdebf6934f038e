package mappers

import (
	"strconv"
	"time"

	"github.com/altora/backoffice/modules/customers/domain/entities/title"
	"github.com/altora/backoffice/modules/customers/presentation/viewmodels"
)

func TitleToViewModel(entity title.Title) *viewmodels.Title {
	return &viewmodels.Title{
		ID:        strconv.FormatUint(uint64(entity.ID()), 10),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt().Format(time.DateOnly),
		UpdatedAt: entity.UpdatedAt().Format(time.DateOnly),
	}
}
