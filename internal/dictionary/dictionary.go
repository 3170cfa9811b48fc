// Package dictionary provides the static skill, job-keyword, and stopword
// lookup tables used by the analysis pipeline. Dictionaries are loaded once
// at startup, validated against embedded JSON Schemas, and treated as
// read-only for the process lifetime.
package dictionary

import (
	"bufio"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed data/skills_database.json data/job_keywords.json data/stopwords.txt
var defaultData embed.FS

// Dictionary is an immutable set of lookup tables injected into pipeline
// components at construction.
type Dictionary struct {
	skills      map[string][]string
	categories  []string // sorted category names for deterministic iteration
	jobKeywords map[string][]string
	jobTitles   []string // sorted lowercase titles
	stopwords   map[string]struct{}
}

// LoadDefault loads the dictionaries embedded in the binary.
func LoadDefault() (*Dictionary, error) {
	skillsData, err := defaultData.ReadFile("data/skills_database.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded skills database: %w", err)
	}
	keywordsData, err := defaultData.ReadFile("data/job_keywords.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded job keywords: %w", err)
	}
	stopwordsData, err := defaultData.ReadFile("data/stopwords.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded stopwords: %w", err)
	}
	return build(skillsData, keywordsData, stopwordsData)
}

// Load reads skill and job-keyword dictionaries from the given JSON files.
// Empty paths fall back to the embedded defaults for that dictionary.
func Load(skillsPath, keywordsPath string) (*Dictionary, error) {
	skillsData, err := readOrDefault(skillsPath, "data/skills_database.json")
	if err != nil {
		return nil, err
	}
	keywordsData, err := readOrDefault(keywordsPath, "data/job_keywords.json")
	if err != nil {
		return nil, err
	}
	stopwordsData, err := defaultData.ReadFile("data/stopwords.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded stopwords: %w", err)
	}
	return build(skillsData, keywordsData, stopwordsData)
}

func readOrDefault(path, embeddedPath string) ([]byte, error) {
	if path == "" {
		return defaultData.ReadFile(embeddedPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}
	return data, nil
}

// build validates the raw dictionary documents and assembles the lookup tables.
// Malformed dictionaries are a development fault and fail loudly here.
func build(skillsData, keywordsData, stopwordsData []byte) (*Dictionary, error) {
	if err := validateSkillsDatabase(skillsData); err != nil {
		return nil, err
	}
	if err := validateJobKeywords(keywordsData); err != nil {
		return nil, err
	}

	d := &Dictionary{
		stopwords: make(map[string]struct{}),
	}

	if err := json.Unmarshal(skillsData, &d.skills); err != nil {
		return nil, fmt.Errorf("failed to parse skills database: %w", err)
	}
	if err := json.Unmarshal(keywordsData, &d.jobKeywords); err != nil {
		return nil, fmt.Errorf("failed to parse job keywords: %w", err)
	}

	// Job titles are keyed lowercase; normalize defensively for file-loaded data.
	normalized := make(map[string][]string, len(d.jobKeywords))
	for title, keywords := range d.jobKeywords {
		normalized[strings.ToLower(title)] = keywords
	}
	d.jobKeywords = normalized

	d.categories = sortedKeys(d.skills)
	d.jobTitles = sortedKeys(d.jobKeywords)

	scanner := bufio.NewScanner(strings.NewReader(string(stopwordsData)))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			d.stopwords[word] = struct{}{}
		}
	}

	return d, nil
}

// SkillCategories returns all skill category names in sorted order.
func (d *Dictionary) SkillCategories() []string {
	return d.categories
}

// SkillsFor returns the candidate skills for a category, or nil if unknown.
func (d *Dictionary) SkillsFor(category string) []string {
	return d.skills[category]
}

// JobKeywords returns the required keywords for a job title (case-insensitive)
// and whether the title is known.
func (d *Dictionary) JobKeywords(title string) ([]string, bool) {
	keywords, ok := d.jobKeywords[strings.ToLower(title)]
	return keywords, ok
}

// JobTitles returns all known job titles in sorted order.
func (d *Dictionary) JobTitles() []string {
	return d.jobTitles
}

// IsStopword reports whether the lowercase token is an English stopword.
func (d *Dictionary) IsStopword(token string) bool {
	_, ok := d.stopwords[token]
	return ok
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
