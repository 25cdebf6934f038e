package title

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/altora/backoffice/pkg/serrors"
)

var (
	ErrNotFound  = serrors.NewError("TITLE_NOT_FOUND", "title not found", "Titles.Errors.NotFound")
	ErrNameTaken = serrors.NewError("TITLE_NAME_TAKEN", "a title with this name already exists", "Titles.Errors.NameTaken")
	ErrInUse     = serrors.NewError("TITLE_IN_USE", "title is still assigned to customers", "Titles.Errors.InUse")
)

// Title is a customer salutation (mr, mrs, ms...). The name is unique per
// tenant and stored lowercased.
type Title struct {
	id        uint
	tenantID  uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func New(name string) Title {
	return Title{
		name: normalizeName(name),
	}
}

func Hydrate(
	id uint,
	tenantID uuid.UUID,
	name string,
	createdAt time.Time,
	updatedAt time.Time,
) Title {
	return Title{
		id:        id,
		tenantID:  tenantID,
		name:      normalizeName(name),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t Title) ID() uint             { return t.id }
func (t Title) TenantID() uuid.UUID  { return t.tenantID }
func (t Title) Name() string         { return t.name }
func (t Title) CreatedAt() time.Time { return t.createdAt }
func (t Title) UpdatedAt() time.Time { return t.updatedAt }
func (t Title) IsZero() bool         { return t.id == 0 && t.name == "" }

// WithName returns a copy with the new normalized name.
func (t Title) WithName(name string) Title {
	t.name = normalizeName(name)
	return t
}

func normalizeName(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
