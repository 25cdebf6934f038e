package application

import (
	"context"
	"embed"
	"io/fs"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MigrationRegistry collects the schema files modules embed and applies them
// on startup. Schemas are idempotent (CREATE TABLE IF NOT EXISTS).
type MigrationRegistry struct {
	schemas []*embed.FS
}

func (m *MigrationRegistry) RegisterSchema(files *embed.FS) {
	m.schemas = append(m.schemas, files)
}

func (m *MigrationRegistry) Run(ctx context.Context, pool *pgxpool.Pool) error {
	for _, schema := range m.schemas {
		var paths []string
		err := fs.WalkDir(schema, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".sql") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to list schema files")
		}
		sort.Strings(paths)
		for _, path := range paths {
			sql, err := schema.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "failed to read schema file %q", path)
			}
			if _, err := pool.Exec(ctx, string(sql)); err != nil {
				return errors.Wrapf(err, "failed to apply schema file %q", path)
			}
		}
	}
	return nil
}
