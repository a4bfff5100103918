package pg

import (
	"context"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryPathSeparator = " > "

// maxCategoryDepth bounds the parent walk so a cyclic tree still terminates.
const maxCategoryDepth = 32

// Reader answers permission and category questions. Nothing is cached.
type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.conn}
}

func (r *Reader) GroupsFor(ctx context.Context, recordID int64) ([]domain.GroupID, error) {
	rows, err := r.db.Query(ctx, `SELECT group_id FROM faqdata_group WHERE record_id = $1 ORDER BY group_id`, recordID)
	if err != nil {
		return nil, storage.Unavailable("groups", err)
	}
	groups, err := pgx.CollectRows(rows, pgx.RowTo[domain.GroupID])
	if err != nil {
		return nil, storage.Unavailable("groups", err)
	}
	return groups, nil
}

func (r *Reader) UsersFor(ctx context.Context, recordID int64) ([]domain.UserID, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM faqdata_user WHERE record_id = $1 ORDER BY user_id`, recordID)
	if err != nil {
		return nil, storage.Unavailable("users", err)
	}
	users, err := pgx.CollectRows(rows, pgx.RowTo[domain.UserID])
	if err != nil {
		return nil, storage.Unavailable("users", err)
	}
	return users, nil
}

func (r *Reader) PathFor(ctx context.Context, id domain.CategoryID) (string, error) {
	if id <= 0 {
		return "", nil
	}

	rows, err := r.db.Query(ctx, `
		WITH RECURSIVE path AS (
			SELECT id, parent_id, name, 0 AS depth
			FROM faqcategories
			WHERE id = $1
			UNION ALL
			SELECT c.id, c.parent_id, c.name, p.depth + 1
			FROM faqcategories c
			JOIN path p ON c.id = p.parent_id
			WHERE p.depth < $2
		)
		SELECT name FROM path ORDER BY depth DESC`, int64(id), maxCategoryDepth)
	if err != nil {
		return "", storage.Unavailable("category path", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", storage.Unavailable("category path", err)
	}
	return strings.Join(names, categoryPathSeparator), nil
}
