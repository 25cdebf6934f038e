package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/altora/backoffice/modules/customers/domain/entities/title"
	"github.com/altora/backoffice/pkg/composables"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type PgTitleRepository struct{}

func NewTitleRepository() title.Repository {
	return &PgTitleRepository{}
}

func (r *PgTitleRepository) Count(ctx context.Context) (int64, error) {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	err = db.QueryRow(ctx, `
		SELECT COUNT(*) FROM titles WHERE tenant_id = $1
	`, tenantID).Scan(&count)
	if err != nil {
		return 0, gerrors.Wrap(err, "failed to count titles")
	}
	return count, nil
}

func (r *PgTitleRepository) GetAll(ctx context.Context) ([]title.Title, error) {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM titles
		WHERE tenant_id = $1
		ORDER BY name ASC
	`, tenantID)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query titles")
	}
	defer rows.Close()
	return scanTitles(rows)
}

func (r *PgTitleRepository) GetPaginated(ctx context.Context, params *title.FindParams) ([]title.Title, error) {
	if params == nil {
		params = &title.FindParams{}
	}
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM titles
		WHERE tenant_id = $1
	`
	args := []any{tenantID}
	if params.Query != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", len(args)+1)
		args = append(args, "%"+params.Query+"%")
	}
	query += fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to query titles")
	}
	defer rows.Close()
	return scanTitles(rows)
}

func (r *PgTitleRepository) GetByID(ctx context.Context, id uint) (title.Title, error) {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return title.Title{}, err
	}
	row := db.QueryRow(ctx, `
		SELECT id, tenant_id, name, created_at, updated_at
		FROM titles
		WHERE id = $1 AND tenant_id = $2
	`, int64(id), tenantID)
	entity, err := scanTitle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return title.Title{}, title.ErrNotFound
		}
		return title.Title{}, gerrors.Wrap(err, "failed to get title")
	}
	return entity, nil
}

func (r *PgTitleRepository) Create(ctx context.Context, data title.Title) (title.Title, error) {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return title.Title{}, err
	}
	var newID int64
	err = db.QueryRow(ctx, `
		INSERT INTO titles (tenant_id, name, created_at, updated_at)
		VALUES ($1, $2, now(), now())
		RETURNING id
	`, tenantID, data.Name()).Scan(&newID)
	if err != nil {
		if isPgErr(err, pgUniqueViolation) {
			return title.Title{}, title.ErrNameTaken
		}
		return title.Title{}, gerrors.Wrap(err, "failed to create title")
	}
	return r.GetByID(ctx, uint(newID))
}

func (r *PgTitleRepository) Update(ctx context.Context, data title.Title) error {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, `
		UPDATE titles
		SET name = $1, updated_at = now()
		WHERE id = $2 AND tenant_id = $3
	`, data.Name(), int64(data.ID()), tenantID)
	if err != nil {
		if isPgErr(err, pgUniqueViolation) {
			return title.ErrNameTaken
		}
		return gerrors.Wrap(err, "failed to update title")
	}
	if tag.RowsAffected() == 0 {
		return title.ErrNotFound
	}
	return nil
}

func (r *PgTitleRepository) Delete(ctx context.Context, id uint) error {
	tenantID, db, err := tenantDB(ctx)
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, `
		DELETE FROM titles WHERE id = $1 AND tenant_id = $2
	`, int64(id), tenantID)
	if err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			return title.ErrInUse
		}
		return gerrors.Wrap(err, "failed to delete title")
	}
	if tag.RowsAffected() == 0 {
		return title.ErrNotFound
	}
	return nil
}

func tenantDB(ctx context.Context) (uuid.UUID, composables.Querier, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}
	db, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return tenantID, db, nil
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func scanTitle(row pgx.Row) (title.Title, error) {
	var (
		id        int64
		tenantID  uuid.UUID
		name      string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &tenantID, &name, &createdAt, &updatedAt); err != nil {
		return title.Title{}, err
	}
	return title.Hydrate(uint(id), tenantID, name, createdAt, updatedAt), nil
}

func scanTitles(rows pgx.Rows) ([]title.Title, error) {
	var out []title.Title
	for rows.Next() {
		entity, err := scanTitle(rows)
		if err != nil {
			return nil, gerrors.Wrap(err, "failed to scan title")
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "error iterating titles")
	}
	return out, nil
}
