package analysis

// SectionNames lists the 8 resume sections the analyzer detects, in a fixed
// reporting order.
var SectionNames = []string{
	"contact", "summary", "experience", "education",
	"skills", "projects", "certifications", "achievements",
}

// sectionKeywords maps each section to the terms whose presence implies the
// section exists in the document.
var sectionKeywords = map[string][]string{
	"contact":        {"contact", "email", "phone", "address", "linkedin"},
	"summary":        {"summary", "profile", "objective", "about"},
	"experience":     {"experience", "work", "employment", "career", "professional"},
	"education":      {"education", "degree", "university", "college", "school"},
	"skills":         {"skills", "technical", "technologies", "competencies"},
	"projects":       {"projects", "portfolio", "work samples"},
	"certifications": {"certifications", "certificates", "licensed"},
	"achievements":   {"achievements", "awards", "honors", "accomplishments"},
}

// detectSections reports, for each known section, whether any of its keywords
// appear in the lowercased text.
func detectSections(textLower string) map[string]bool {
	sections := make(map[string]bool, len(SectionNames))
	for _, name := range SectionNames {
		sections[name] = containsAny(textLower, sectionKeywords[name])
	}
	return sections
}
