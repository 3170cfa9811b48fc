package analysis

// extractSkills matches every dictionary skill against the lowercased text
// using word-boundary matching. Presence is binary per skill; categories with
// no matches are omitted from the result.
func (a *Analyzer) extractSkills(textLower string) map[string][]string {
	found := make(map[string][]string)

	for _, category := range a.dict.SkillCategories() {
		var matched []string
		for _, pattern := range a.skillPatterns[category] {
			if pattern.re.MatchString(textLower) {
				matched = append(matched, pattern.skill)
			}
		}
		if len(matched) > 0 {
			found[category] = matched
		}
	}

	return found
}
