package router

import (
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/faq-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/faq-hunter/internal/excerpt"
	"github.com/DjordjeVuckovic/faq-hunter/internal/render"
	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type SearchRouter struct {
	e        *echo.Echo
	engine   *search.Engine
	renderer *render.Renderer
}

func NewSearchRouter(e *echo.Echo, engine *search.Engine, renderer *render.Renderer) *SearchRouter {
	return &SearchRouter{
		e:        e,
		engine:   engine,
		renderer: renderer,
	}
}

func (r *SearchRouter) Bind() {
	r.e.GET("/search", r.searchHandler)
	r.e.GET("/ajaxresponse", r.instantHandler)

	v1 := r.e.Group("/api/v1")
	v1.GET("/search", r.apiSearchHandler)
}

// searchHandler renders the result listing, or redirects when the query is
// a solution id resolving to exactly one visible record.
func (r *SearchRouter) searchHandler(c echo.Context) error {
	req, err := searchRequest(c, "search", "seite")
	if err != nil {
		return err
	}
	return r.respondHTML(c, req)
}

// instantHandler answers search-as-you-type requests with the first page
// only and without pager links.
func (r *SearchRouter) instantHandler(c echo.Context) error {
	req, err := searchRequest(c, "search", "seite")
	if err != nil {
		return err
	}
	req.Page = 1
	req.Instant = true
	return r.respondHTML(c, req)
}

func (r *SearchRouter) respondHTML(c echo.Context, req search.Request) error {
	outcome, err := r.engine.Search(c.Request().Context(), req)
	if err != nil {
		return err
	}

	if outcome.Redirect != nil {
		slog.Debug("Redirecting solution id search", "solution_id", outcome.Redirect.SolutionID)
		return c.Redirect(http.StatusFound, outcome.Redirect.URL)
	}

	body, err := r.renderer.RenderString(outcome.Page)
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, body)
}

// SearchResponse is the JSON form of a search outcome. Exactly one of
// Redirect and Results is set.
type SearchResponse struct {
	Query       string                                    `json:"query"`
	Strategy    search.Kind                               `json:"strategy,omitempty"`
	Summary     string                                    `json:"summary,omitempty"`
	Redirect    *search.Redirect                          `json:"redirect,omitempty"`
	Results     *pagination.OffsetResult[excerpt.Excerpt] `json:"results,omitempty"`
	TotalPages  int                                       `json:"total_pages,omitempty"`
	PreviousURL string                                    `json:"previous_url,omitempty"`
	NextURL     string                                    `json:"next_url,omitempty"`
}

// apiSearchHandler godoc
// @Summary Search FAQ records
// @Description Keyword search over titles, answers and keywords. A numeric query matching one visible solution id returns a redirect instead of results.
// @Tags search
// @Produce json
// @Param q query string true "Search text or solution id"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size"
// @Param searchcategory query string false "Category id, % for any"
// @Param langs query string false "all to search every language"
// @Param lang query string false "Language (BCP 47)"
// @Param X-User-ID header int false "Acting user id"
// @Param X-Group-IDs header string false "Comma separated group ids"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/v1/search [get]
func (r *SearchRouter) apiSearchHandler(c echo.Context) error {
	var pr pagination.OffsetRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &pr); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := pr.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	req, err := searchRequest(c, "q", "page")
	if err != nil {
		return err
	}
	req.Page = pr.Page
	if c.QueryParam("size") != "" {
		req.PageSize = pr.Size
	}

	outcome, err := r.engine.Search(c.Request().Context(), req)
	if err != nil {
		return err
	}

	if outcome.Redirect != nil {
		return c.JSON(http.StatusOK, SearchResponse{
			Query:    req.Query,
			Strategy: search.KindExactID,
			Redirect: outcome.Redirect,
		})
	}

	page := outcome.Page
	w := page.Window
	return c.JSON(http.StatusOK, SearchResponse{
		Query:       page.Query,
		Strategy:    page.Kind,
		Summary:     r.renderer.Summary(page),
		Results:     pagination.NewOffsetResult(page.Items, int64(w.Total), w.Page, w.Size),
		TotalPages:  w.TotalPages,
		PreviousURL: page.PreviousURL,
		NextURL:     page.NextURL,
	})
}
