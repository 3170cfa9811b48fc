package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	dict, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, dict.SkillCategories())
	assert.True(t, sort.StringsAreSorted(dict.SkillCategories()))
	assert.Contains(t, dict.SkillCategories(), "programming_languages")
	assert.NotEmpty(t, dict.SkillsFor("programming_languages"))
	assert.Nil(t, dict.SkillsFor("nonexistent_category"))
}

func TestLoadDefault_JobTitles(t *testing.T) {
	dict, err := LoadDefault()
	require.NoError(t, err)

	titles := dict.JobTitles()
	assert.True(t, sort.StringsAreSorted(titles))
	assert.Contains(t, titles, "software engineer")

	keywords, ok := dict.JobKeywords("Software Engineer")
	assert.True(t, ok, "job title lookup should be case-insensitive")
	assert.NotEmpty(t, keywords)

	_, ok = dict.JobKeywords("Nonexistent Title")
	assert.False(t, ok)
}

func TestLoadDefault_Stopwords(t *testing.T) {
	dict, err := LoadDefault()
	require.NoError(t, err)

	assert.True(t, dict.IsStopword("the"))
	assert.True(t, dict.IsStopword("and"))
	assert.False(t, dict.IsStopword("python"))
}

func TestLoad_CustomSkillsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	content := `{"languages": ["Go", "Python"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	dict, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"languages"}, dict.SkillCategories())
	assert.Equal(t, []string{"Go", "Python"}, dict.SkillsFor("languages"))
	// Job keywords fall back to embedded defaults.
	assert.NotEmpty(t, dict.JobTitles())
}

func TestLoad_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	// Empty category list violates minItems.
	content := `{"languages": []}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path, "")
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/skills.json", "")
	assert.Error(t, err)
}

func TestLoad_NotJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := Load(path, "")
	assert.Error(t, err)
}
