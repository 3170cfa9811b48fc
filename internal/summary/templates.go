package summary

// Template categories. Placeholders are filled by the generator.
var templates = map[string][]string{
	"experienced": {
		"{experience} {role} with {years} of experience in {skills}. {achievement} and expertise in {specializations}.",
		"{expertise} {role} specializing in {skills} with {years} of proven experience. {achievement} and strong background in {specializations}.",
		"Results-driven {role} with {years} of experience in {skills}. {achievement} and demonstrated expertise in {specializations}.",
	},
	"entry_level": {
		"Recent {education} graduate with strong foundation in {skills}. {projects} and eager to contribute to {field} initiatives.",
		"Motivated {education} professional with expertise in {skills}. {projects} and passionate about {field} innovation.",
		"Dedicated {education} graduate specializing in {skills}. {projects} and committed to delivering high-quality {field} solutions.",
	},
	"career_change": {
		"Versatile professional transitioning to {new_field} with transferable skills in {skills}. {experience} and strong foundation in {specializations}.",
		"Dynamic professional pivoting to {new_field} with proven experience in {skills}. {achievement} and adaptable approach to {specializations}.",
		"Results-oriented professional expanding into {new_field} with expertise in {skills}. {experience} and commitment to {specializations}.",
	},
}

// roleEntry pairs a role title with the keywords that vote for it. The slice
// order breaks score ties, first entry wins.
type roleEntry struct {
	role     string
	keywords []string
}

var roleKeywords = []roleEntry{
	{"Software Engineer", []string{"programming", "coding", "software", "development", "engineer"}},
	{"Data Scientist", []string{"data", "analytics", "machine learning", "statistics", "science"}},
	{"Product Manager", []string{"product", "management", "strategy", "roadmap", "stakeholder"}},
	{"Marketing Manager", []string{"marketing", "digital", "campaign", "brand", "advertising"}},
	{"Business Analyst", []string{"business", "analysis", "requirements", "process", "analyst"}},
	{"DevOps Engineer", []string{"devops", "infrastructure", "cloud", "automation", "deployment"}},
	{"UI/UX Designer", []string{"design", "user experience", "interface", "wireframe", "prototype"}},
	{"Project Manager", []string{"project", "management", "agile", "scrum", "coordination"}},
	{"Full Stack Developer", []string{"fullstack", "frontend", "backend", "web development"}},
	{"Mobile Developer", []string{"mobile", "android", "ios", "app development"}},
	{"Cybersecurity Analyst", []string{"security", "cybersecurity", "vulnerability", "threat"}},
	{"Quality Assurance", []string{"testing", "qa", "quality", "automation testing"}},
}

// fallbackRole is used when no role keyword scores at all.
const fallbackRole = "Professional"

// levelEntry pairs an experience level with its title indicators. Checked in
// order, senior indicators take precedence.
type levelEntry struct {
	level      string
	indicators []string
}

var experienceIndicators = []levelEntry{
	{"senior", []string{"senior", "lead", "principal", "architect", "manager", "director"}},
	{"mid", []string{"developer", "engineer", "analyst", "specialist", "consultant"}},
	{"junior", []string{"junior", "associate", "intern", "trainee", "entry"}},
}

var achievementTemplates = []string{
	"Proven track record of delivering high-quality solutions",
	"Successfully completed multiple complex projects",
	"Demonstrated ability to work in fast-paced environments",
	"Strong problem-solving and analytical skills",
	"Excellent collaboration and communication abilities",
	"Committed to continuous learning and professional growth",
	"Experience working with cross-functional teams",
	"Passionate about creating innovative solutions",
}

// specializationMapping turns skill categories into summary-friendly phrases.
var specializationMapping = map[string]string{
	"programming_languages": "software development",
	"web_technologies":      "web development",
	"databases":             "database management",
	"cloud_platforms":       "cloud computing",
	"data_science":          "data analysis and machine learning",
	"mobile_development":    "mobile application development",
	"devops_tools":          "DevOps and automation",
	"design_tools":          "UI/UX design",
	"project_management":    "project management",
	"soft_skills":           "team leadership and collaboration",
}

// prioritySkillCategories are drawn from first when picking top skills,
// technical categories before soft ones.
var prioritySkillCategories = []string{
	"programming_languages", "web_technologies", "databases",
	"cloud_platforms", "data_science", "mobile_development",
}

// educationEntry pairs a degree level with its keywords, matched on word
// boundaries. Checked in order, highest degree first.
type educationEntry struct {
	level    string
	keywords []string
}

var educationLevels = []educationEntry{
	{"PhD", []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"Master's", []string{"masters", "master's", "mba", "ms", "m.s", "ma", "m.a"}},
	{"Bachelor's", []string{"bachelors", "bachelor's", "bs", "b.s", "ba", "b.a", "btech", "b.tech"}},
	{"Associate", []string{"associate", "associates", "aa", "as"}},
}
