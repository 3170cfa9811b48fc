package analysis

import "strings"

const (
	// maxProjects is the maximum number of project sentences returned.
	maxProjects = 5
	// minProjectWords is the minimum word count for a sentence to count as a
	// project description rather than a bare skill mention.
	minProjectWords = 8
)

// projectIndicators are the terms that flag a sentence as a project description.
var projectIndicators = []string{
	"developed", "built", "created", "designed", "implemented",
	"project", "application", "system", "website", "app",
}

// detectProjects returns the first sentences that mention a project indicator
// and are substantial enough to be descriptions, in document order.
func detectProjects(sentences []string) []string {
	var projects []string

	for _, sentence := range sentences {
		if len(projects) == maxProjects {
			break
		}
		lower := strings.ToLower(sentence)
		if !containsAny(lower, projectIndicators) {
			continue
		}
		if len(strings.Fields(sentence)) > minProjectWords {
			projects = append(projects, strings.TrimSpace(sentence))
		}
	}

	return projects
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
