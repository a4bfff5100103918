package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.conn}
}

// Save upserts one faq and replaces its category and permission rows.
func (s *Storer) Save(ctx context.Context, faq domain.Faq) (int64, error) {
	normalize(&faq, time.Now())

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if faq.ID == 0 {
		if err := tx.QueryRow(ctx, `SELECT nextval('faqdata_id_seq')`).Scan(&faq.ID); err != nil {
			return 0, fmt.Errorf("failed to allocate faq id: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO faqdata (id, lang, solution_id, active, title, content, keywords, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id, lang) DO UPDATE SET
			solution_id = EXCLUDED.solution_id,
			active = EXCLUDED.active,
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			keywords = EXCLUDED.keywords,
			updated_at = EXCLUDED.updated_at`,
		faq.ID, faq.Language, faq.SolutionID, faq.Active, faq.Title, faq.Content, faq.Keywords, faq.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert faq %d: %w", faq.ID, err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM faqcategoryrelations WHERE record_id = $1 AND record_lang = $2`, faq.ID, faq.Language)
	batch.Queue(`DELETE FROM faqdata_user WHERE record_id = $1`, faq.ID)
	batch.Queue(`DELETE FROM faqdata_group WHERE record_id = $1`, faq.ID)
	for _, c := range faq.Categories {
		batch.Queue(`INSERT INTO faqcategoryrelations (category_id, record_id, record_lang) VALUES ($1, $2, $3)`, int64(c), faq.ID, faq.Language)
	}
	for _, u := range unique(faq.Users) {
		batch.Queue(`INSERT INTO faqdata_user (record_id, user_id) VALUES ($1, $2)`, faq.ID, int64(u))
	}
	for _, g := range unique(faq.Groups) {
		batch.Queue(`INSERT INTO faqdata_group (record_id, group_id) VALUES ($1, $2)`, faq.ID, int64(g))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to store associations of faq %d: %w", faq.ID, err)
	}

	if err := syncSequence(ctx, tx); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit faq %d: %w", faq.ID, err)
	}
	return faq.ID, nil
}

// SaveBulk copies new faqs in one transaction. Rows that already exist make
// the whole batch fail.
func (s *Storer) SaveBulk(ctx context.Context, faqs []domain.Faq) error {
	if len(faqs) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var (
		faqRows      [][]any
		relationRows [][]any
		userRows     [][]any
		groupRows    [][]any
	)
	seenUsers := make(map[[2]int64]bool)
	seenGroups := make(map[[2]int64]bool)

	for i := range faqs {
		f := faqs[i]
		normalize(&f, now)
		if f.ID == 0 {
			if err := tx.QueryRow(ctx, `SELECT nextval('faqdata_id_seq')`).Scan(&f.ID); err != nil {
				return fmt.Errorf("failed to allocate id for faq %d: %w", i, err)
			}
		}

		faqRows = append(faqRows, []any{f.ID, f.Language, f.SolutionID, f.Active, f.Title, f.Content, f.Keywords, f.UpdatedAt})
		for _, c := range f.Categories {
			relationRows = append(relationRows, []any{int64(c), f.ID, f.Language})
		}
		for _, u := range f.Users {
			key := [2]int64{f.ID, int64(u)}
			if !seenUsers[key] {
				seenUsers[key] = true
				userRows = append(userRows, []any{f.ID, int64(u)})
			}
		}
		for _, g := range f.Groups {
			key := [2]int64{f.ID, int64(g)}
			if !seenGroups[key] {
				seenGroups[key] = true
				groupRows = append(groupRows, []any{f.ID, int64(g)})
			}
		}
	}

	copies := []struct {
		table   string
		columns []string
		rows    [][]any
	}{
		{"faqdata", []string{"id", "lang", "solution_id", "active", "title", "content", "keywords", "updated_at"}, faqRows},
		{"faqcategoryrelations", []string{"category_id", "record_id", "record_lang"}, relationRows},
		{"faqdata_user", []string{"record_id", "user_id"}, userRows},
		{"faqdata_group", []string{"record_id", "group_id"}, groupRows},
	}
	for _, c := range copies {
		if len(c.rows) == 0 {
			continue
		}
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{c.table}, c.columns, pgx.CopyFromRows(c.rows)); err != nil {
			return fmt.Errorf("failed to bulk insert into %s: %w", c.table, err)
		}
	}

	if err := syncSequence(ctx, tx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storer) SaveCategories(ctx context.Context, categories []domain.Category) error {
	batch := &pgx.Batch{}
	for _, c := range categories {
		lang := c.Language
		if lang == "" {
			lang = domain.FaqDefaultLanguage
		}
		batch.Queue(`
			INSERT INTO faqcategories (id, parent_id, lang, name)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET parent_id = EXCLUDED.parent_id, lang = EXCLUDED.lang, name = EXCLUDED.name`,
			int64(c.ID), int64(c.ParentID), lang, c.Name,
		)
	}
	if err := s.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

func normalize(f *domain.Faq, now time.Time) {
	if f.Language == "" {
		f.Language = domain.FaqDefaultLanguage
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}
}

// syncSequence keeps generated ids above any explicitly stored one.
func syncSequence(ctx context.Context, tx pgx.Tx) error {
	_, err := tx.Exec(ctx, `SELECT setval('faqdata_id_seq', (SELECT COALESCE(MAX(id), 1) FROM faqdata))`)
	if err != nil {
		return fmt.Errorf("failed to sync faq id sequence: %w", err)
	}
	return nil
}

func unique[T comparable](in []T) []T {
	seen := make(map[T]bool, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
