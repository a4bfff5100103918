package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	FixtureKind    = "FaqFixture"
	FixtureVersion = "v1"
)

// Fixture is a YAML document describing categories and faqs to import.
type Fixture struct {
	Kind     string `yaml:"kind"`
	Version  string `yaml:"version"`
	Metadata struct {
		Name string `yaml:"name"`
	} `yaml:"metadata"`
	Categories []domain.Category `yaml:"categories"`
	Faqs       []domain.Faq      `yaml:"faqs"`
}

func (f *Fixture) Validate() error {
	if f.Kind != FixtureKind {
		return fmt.Errorf("unexpected kind %q, expected %q", f.Kind, FixtureKind)
	}
	if f.Version != FixtureVersion {
		return fmt.Errorf("unsupported version %q", f.Version)
	}

	var errs []error
	for i, c := range f.Categories {
		if c.ID <= 0 {
			errs = append(errs, fmt.Errorf("category %d: id must be positive", i))
		}
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("category %d: name is required", i))
		}
	}

	type key struct {
		id   int64
		lang string
	}
	seen := make(map[key]bool)
	for i, faq := range f.Faqs {
		if faq.Title == "" {
			errs = append(errs, fmt.Errorf("faq %d: title is required", i))
		}
		if faq.SolutionID <= 0 {
			errs = append(errs, fmt.Errorf("faq %d: solution_id must be positive", i))
		}
		if len(faq.Categories) == 0 {
			errs = append(errs, fmt.Errorf("faq %d: at least one category is required", i))
		}
		if faq.ID != 0 {
			k := key{faq.ID, faq.Language}
			if seen[k] {
				errs = append(errs, fmt.Errorf("faq %d: duplicate id %d for language %q", i, faq.ID, faq.Language))
			}
			seen[k] = true
		}
	}
	return errors.Join(errs...)
}

type YAMLConfigLoader struct {
	reader io.Reader
}

func NewYAMLConfigLoader(reader io.Reader) *YAMLConfigLoader {
	return &YAMLConfigLoader{
		reader: reader,
	}
}

func (cl *YAMLConfigLoader) Load(validate bool) (*Fixture, error) {
	decoder := yaml.NewDecoder(cl.reader)
	decoder.KnownFields(true)

	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	if validate {
		if err := fixture.Validate(); err != nil {
			return nil, fmt.Errorf("invalid fixture: %w", err)
		}
	}
	return &fixture, nil
}
