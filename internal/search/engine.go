package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/faq-hunter/internal/access"
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/excerpt"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/DjordjeVuckovic/faq-hunter/internal/token"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/pagination"
)

// Engine answers search requests: resolve candidates, redirect on an
// unambiguous visible solution id, otherwise filter, page and excerpt.
type Engine struct {
	cfg        Config
	store      storage.CandidateStore
	perms      storage.PermissionProvider
	categories storage.CategoryResolver
}

func NewEngine(cfg Config, store storage.CandidateStore, perms storage.PermissionProvider, categories storage.CategoryResolver) *Engine {
	if cfg.PageSize < 1 {
		cfg.PageSize = pagination.PageDefaultSize
	}
	return &Engine{
		cfg:        cfg,
		store:      store,
		perms:      perms,
		categories: categories,
	}
}

// NewEngineFromBackend wires all collaborators from a single storage backend.
func NewEngineFromBackend(cfg Config, backend storage.Backend) *Engine {
	return NewEngine(cfg, backend, backend, backend)
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Search runs one invocation. Storage failures abort it; no partial page is
// ever returned.
func (e *Engine) Search(ctx context.Context, req Request) (*Outcome, error) {
	start := time.Now()
	q := token.Parse(req.Query)

	if q.Empty() {
		observe(KindNone, outcomeEmpty, start)
		return &Outcome{Page: e.emptyPage(q, req)}, nil
	}

	scope := storage.Scope{
		Category:     req.Category,
		Language:     e.language(req),
		AllLanguages: req.AllLanguages,
	}

	strategy := SelectStrategy(q)
	res, err := strategy.Resolve(ctx, e.store, q, scope)
	if err != nil {
		observe(KindNone, outcomeError, start)
		return nil, fmt.Errorf("failed to resolve candidates: %w", err)
	}
	slog.Debug("Resolved search candidates",
		"query", q.Trimmed,
		"strategy", res.Kind,
		"candidates", len(res.Records),
		"category", req.Category,
		"all_languages", req.AllLanguages)

	filter := access.NewFilter(e.cfg.PermissionMode, req.Actor, e.perms)

	redirect, err := e.redirect(ctx, q, res, filter)
	if err != nil {
		observe(res.Kind, outcomeError, start)
		return nil, err
	}
	if redirect != nil {
		observe(res.Kind, outcomeRedirect, start)
		return &Outcome{Redirect: redirect}, nil
	}

	accepted, err := e.accept(ctx, res.Records, filter)
	if err != nil {
		observe(res.Kind, outcomeError, start)
		return nil, err
	}

	page, err := e.buildPage(ctx, q, req, res.Kind, accepted)
	if err != nil {
		observe(res.Kind, outcomeError, start)
		return nil, err
	}

	outcome := outcomeListing
	if page.Empty() {
		outcome = outcomeEmpty
	}
	observe(res.Kind, outcome, start)
	return &Outcome{Page: page}, nil
}

// redirect returns a target only for a numeric id at or above the threshold
// whose exact lookup produced exactly one row the actor may see. A denied
// row falls through to the listing silently.
func (e *Engine) redirect(ctx context.Context, q token.Query, res *Resolution, filter *access.Filter) (*Redirect, error) {
	if !q.IsNumericID || q.SolutionID < e.cfg.MinSolutionID {
		return nil, nil
	}
	if res.Kind != KindExactID || len(res.Records) != 1 {
		return nil, nil
	}

	ok, err := filter.Allowed(ctx, res.Records[0])
	if err != nil {
		return nil, fmt.Errorf("failed to check redirect permission: %w", err)
	}
	if !ok {
		return nil, nil
	}

	return &Redirect{
		SolutionID: q.SolutionID,
		URL:        RedirectURL(e.cfg.SystemURI, e.cfg.RewriteRules, q.SolutionID),
	}, nil
}

// accept keeps the visible candidates in retrieval order.
func (e *Engine) accept(ctx context.Context, candidates []domain.Record, filter *access.Filter) ([]domain.Record, error) {
	accepted := make([]domain.Record, 0, len(candidates))
	for _, r := range candidates {
		ok, err := filter.Allowed(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("failed to check permissions: %w", err)
		}
		if !ok {
			candidatesDenied.Inc()
			continue
		}
		accepted = append(accepted, r)
	}
	return accepted, nil
}

func (e *Engine) buildPage(ctx context.Context, q token.Query, req Request, kind Kind, accepted []domain.Record) (*ResultPage, error) {
	window := pagination.NewWindow(len(accepted), e.pageSize(req), req.Page)

	mode := excerpt.ModeListing
	if req.Instant {
		mode = excerpt.ModeInstant
	}
	builder := excerpt.NewBuilder(e.cfg.excerptConfig(), q, mode)

	visible := pagination.Slice(accepted, window)
	items := make([]excerpt.Excerpt, 0, len(visible))
	for _, r := range visible {
		path, err := e.categories.PathFor(ctx, r.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve category %d: %w", r.CategoryID, err)
		}
		items = append(items, builder.Build(r, path))
	}

	page := &ResultPage{
		Query:        q.Trimmed,
		EscapedQuery: q.Escaped,
		Kind:         kind,
		Items:        items,
		Window:       window,
		Instant:      req.Instant,
	}
	if !req.Instant {
		if window.HasPrevious() {
			page.PreviousURL = PageURL(e.cfg.RewriteRules, q.Trimmed, window.Page-1, req.AllLanguages, req.Category)
		}
		if window.HasNext() {
			page.NextURL = PageURL(e.cfg.RewriteRules, q.Trimmed, window.Page+1, req.AllLanguages, req.Category)
		}
	}
	return page, nil
}

func (e *Engine) emptyPage(q token.Query, req Request) *ResultPage {
	return &ResultPage{
		Query:        q.Trimmed,
		EscapedQuery: q.Escaped,
		Kind:         KindNone,
		Items:        []excerpt.Excerpt{},
		Window:       pagination.NewWindow(0, e.pageSize(req), req.Page),
		Instant:      req.Instant,
	}
}

func (e *Engine) pageSize(req Request) int {
	if req.PageSize > 0 {
		return min(req.PageSize, pagination.PageMaxSize)
	}
	return e.cfg.PageSize
}

func (e *Engine) language(req Request) string {
	if req.Language != "" {
		return req.Language
	}
	return e.cfg.DefaultLanguage
}

func observe(kind Kind, outcome string, start time.Time) {
	searchesTotal.WithLabelValues(string(kind), outcome).Inc()
	searchDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
