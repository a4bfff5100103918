package search

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/access"
	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/excerpt"
	"github.com/DjordjeVuckovic/faq-hunter/pkg/pagination"
	"golang.org/x/text/language"
)

// DefaultMinSolutionID is the first solution id handed out to records;
// numeric queries below it never redirect.
const DefaultMinSolutionID = 1000

type Config struct {
	PageSize        int
	MinSolutionID   int64
	RewriteRules    bool
	PermissionMode  access.Mode
	SystemURI       string
	DefaultLanguage string
	TitleWords      int
	ContentWords    int
}

func DefaultConfig() Config {
	return Config{
		PageSize:        pagination.PageDefaultSize,
		MinSolutionID:   DefaultMinSolutionID,
		PermissionMode:  access.ModeBasic,
		SystemURI:       "http://localhost:8080",
		DefaultLanguage: domain.FaqDefaultLanguage,
		TitleWords:      excerpt.DefaultTitleWords,
		ContentWords:    excerpt.DefaultContentWords,
	}
}

// LoadConfig reads the SEARCH_* variables plus SYSTEM_URI and
// DEFAULT_LANGUAGE, falling back to DefaultConfig.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("SEARCH_PAGE_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > pagination.PageMaxSize {
			return nil, fmt.Errorf("invalid SEARCH_PAGE_SIZE %q: must be between 1 and %d", v, pagination.PageMaxSize)
		}
		cfg.PageSize = size
	}

	if v := os.Getenv("SEARCH_MIN_SOLUTION_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("invalid SEARCH_MIN_SOLUTION_ID %q", v)
		}
		cfg.MinSolutionID = id
	}

	cfg.RewriteRules = os.Getenv("SEARCH_REWRITE_RULES") == "true"

	mode, err := access.ParseMode(os.Getenv("SEARCH_PERM_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_PERM_LEVEL: %w", err)
	}
	cfg.PermissionMode = mode

	if v := os.Getenv("SYSTEM_URI"); v != "" {
		cfg.SystemURI = strings.TrimRight(v, "/")
	}

	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		lang, err := NormalizeLanguage(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_LANGUAGE: %w", err)
		}
		cfg.DefaultLanguage = lang
	}

	return &cfg, nil
}

// NormalizeLanguage parses a BCP 47 tag and returns its base language code,
// e.g. "de-AT" -> "de".
func NormalizeLanguage(s string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("unsupported language %q: %w", s, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

func (c Config) excerptConfig() excerpt.Config {
	return excerpt.Config{
		TitleWords:   c.TitleWords,
		ContentWords: c.ContentWords,
		SystemURI:    c.SystemURI,
	}
}
