package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validFixture = `
kind: FaqFixture
version: v1
metadata:
  name: "Getting started"
categories:
  - id: 1
    parent_id: 0
    lang: en
    name: General
  - id: 2
    parent_id: 1
    lang: en
    name: Installation
faqs:
  - id: 1
    lang: en
    solution_id: 1000
    active: true
    title: "How do I install the client?"
    content: "<p>Download the package and run the setup.</p>"
    keywords: "install setup"
    categories: [2]
  - id: 2
    lang: en
    solution_id: 1001
    active: true
    title: "Who can read restricted answers?"
    content: "Only members of the support group."
    categories: [1]
    groups: [3]
    users: [7]
`

func TestYAMLConfigLoader_String_Load(t *testing.T) {
	loader := NewYAMLConfigLoader(strings.NewReader(validFixture))

	fixture, err := loader.Load(true)

	require.NoError(t, err)
	assert.Equal(t, FixtureKind, fixture.Kind)
	assert.Equal(t, "Getting started", fixture.Metadata.Name)
	require.Len(t, fixture.Categories, 2)
	assert.Equal(t, domain.CategoryID(1), fixture.Categories[1].ParentID)
	require.Len(t, fixture.Faqs, 2)
	assert.Equal(t, int64(1000), fixture.Faqs[0].SolutionID)
	assert.Equal(t, []domain.CategoryID{2}, fixture.Faqs[0].Categories)
	assert.Equal(t, []domain.GroupID{3}, fixture.Faqs[1].Groups)
	assert.Equal(t, []domain.UserID{7}, fixture.Faqs[1].Users)
}

func TestYAMLConfigLoader_File_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validFixture), 0644))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	fixture, err := NewYAMLConfigLoader(file).Load(true)

	require.NoError(t, err)
	assert.Len(t, fixture.Faqs, 2)
}

func TestYAMLConfigLoader_Load_UnknownField(t *testing.T) {
	content := `
kind: FaqFixture
version: v1
field_mappings: []
`
	_, err := NewYAMLConfigLoader(strings.NewReader(content)).Load(false)

	assert.Error(t, err)
}

func TestYAMLConfigLoader_Load_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "wrong kind",
			content: "kind: DataMapping\nversion: v1\n",
			wantErr: "unexpected kind",
		},
		{
			name:    "wrong version",
			content: "kind: FaqFixture\nversion: v2\n",
			wantErr: "unsupported version",
		},
		{
			name: "missing title",
			content: `
kind: FaqFixture
version: v1
faqs:
  - id: 1
    lang: en
    solution_id: 1000
    categories: [1]
`,
			wantErr: "title is required",
		},
		{
			name: "missing solution id",
			content: `
kind: FaqFixture
version: v1
faqs:
  - id: 1
    lang: en
    title: a
    categories: [1]
`,
			wantErr: "solution_id must be positive",
		},
		{
			name: "no categories",
			content: `
kind: FaqFixture
version: v1
faqs:
  - id: 1
    lang: en
    title: a
    solution_id: 1000
`,
			wantErr: "at least one category",
		},
		{
			name: "duplicate id and language",
			content: `
kind: FaqFixture
version: v1
faqs:
  - {id: 1, lang: en, title: a, solution_id: 1000, categories: [1]}
  - {id: 1, lang: en, title: b, solution_id: 1001, categories: [1]}
`,
			wantErr: "duplicate id 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLConfigLoader(strings.NewReader(tt.content)).Load(true)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestYAMLConfigLoader_Load_SkipValidation(t *testing.T) {
	fixture, err := NewYAMLConfigLoader(strings.NewReader("kind: Other\nversion: v9\n")).Load(false)

	require.NoError(t, err)
	assert.Equal(t, "Other", fixture.Kind)
}
