package router

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/middleware"
	"github.com/DjordjeVuckovic/faq-hunter/internal/search"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/stringsutil"
	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = middleware.HeaderUserID
	HeaderGroupIDs = middleware.HeaderGroupIDs

	allLanguagesValue = "all"
)

// actorFrom reads the actor forwarded by the authenticating proxy. Requests
// without identity headers search as the anonymous user; the server drops
// these headers unless they come from a trusted proxy.
func actorFrom(c echo.Context) (domain.Actor, error) {
	actor := domain.Anonymous()

	if v := strings.TrimSpace(c.Request().Header.Get(HeaderUserID)); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return actor, apperr.NewValidationWrap("invalid "+HeaderUserID+" header", err)
		}
		actor.UserID = domain.UserID(id)
	}

	if v := c.Request().Header.Get(HeaderGroupIDs); strings.TrimSpace(v) != "" {
		var groups []domain.GroupID
		for _, g := range stringsutil.SplitList(v, ",") {
			id, err := strconv.ParseInt(g, 10, 64)
			if err != nil {
				return actor, apperr.NewValidationWrap("invalid "+HeaderGroupIDs+" header", err)
			}
			groups = append(groups, domain.GroupID(id))
		}
		actor.GroupIDs = groups
	}

	return actor, nil
}

// pageParam is lenient like the classic pager: anything unparsable is page 1.
func pageParam(v string) int {
	page, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func categoryParam(v string) (domain.CategoryID, error) {
	category, err := search.ParseCategory(v)
	if err != nil {
		return 0, apperr.NewValidationWrap("invalid search category", err)
	}
	return category, nil
}

func languageParam(v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", nil
	}
	lang, err := search.NormalizeLanguage(v)
	if err != nil {
		return "", apperr.NewValidationWrap("invalid language", err)
	}
	return lang, nil
}

// searchRequest builds the engine request shared by every endpoint from the
// query parameters search, seite, searchcategory, langs and lang.
func searchRequest(c echo.Context, queryParam, pageParamName string) (search.Request, error) {
	category, err := categoryParam(c.QueryParam("searchcategory"))
	if err != nil {
		return search.Request{}, err
	}
	lang, err := languageParam(c.QueryParam("lang"))
	if err != nil {
		return search.Request{}, err
	}
	actor, err := actorFrom(c)
	if err != nil {
		return search.Request{}, err
	}

	return search.Request{
		Query:        c.QueryParam(queryParam),
		Page:         pageParam(c.QueryParam(pageParamName)),
		Category:     category,
		Language:     lang,
		AllLanguages: c.QueryParam("langs") == allLanguagesValue,
		Actor:        actor,
	}, nil
}
