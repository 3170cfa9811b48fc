package suggestions

// skillSuggestions holds remedial advice per skill category, picked from at
// random when a category is missing or thin.
var skillSuggestions = map[string][]string{
	"programming_languages": {
		"Add specific programming languages you've used in projects",
		"Mention version numbers for programming languages (e.g., Python 3.9)",
		"Include both frontend and backend technologies if applicable",
		"Add emerging technologies relevant to your field",
	},
	"web_technologies": {
		"List specific frameworks and libraries you've worked with",
		"Mention responsive design and mobile-first development experience",
		"Include API development and integration experience",
		"Add version control systems (Git, GitHub, GitLab)",
	},
	"databases": {
		"Specify database management systems you've used",
		"Mention both SQL and NoSQL databases if applicable",
		"Include database design and optimization experience",
		"Add data modeling and schema design skills",
	},
	"cloud_platforms": {
		"List cloud platforms and services you've used",
		"Mention specific AWS/Azure/GCP services",
		"Include containerization technologies (Docker, Kubernetes)",
		"Add CI/CD pipeline experience",
	},
	"soft_skills": {
		"Include leadership and team collaboration skills",
		"Mention communication and presentation abilities",
		"Add problem-solving and analytical thinking skills",
		"Include project management and organizational skills",
	},
}

// genericSkillSuggestion covers categories without a dedicated template list.
const genericSkillSuggestion = "Add more specific skills in this category"

// sectionSuggestions holds per-section improvement advice.
var sectionSuggestions = map[string][]string{
	"summary": {
		"Add a professional summary highlighting your key achievements",
		"Include 2-3 lines summarizing your expertise and career goals",
		"Mention years of experience and key specializations",
		"Include your most impressive accomplishment or metric",
	},
	"experience": {
		"Use action verbs to start each bullet point (Developed, Implemented, Led)",
		"Include quantifiable achievements and metrics",
		"Mention specific technologies and tools used",
		"Focus on impact and results rather than just responsibilities",
	},
	"education": {
		"Include your degree, major, university, and graduation year",
		"Add relevant coursework if you're a recent graduate",
		"Mention academic achievements, honors, or high GPA",
		"Include relevant certifications and professional development",
	},
	"skills": {
		"Organize skills into categories (Technical, Languages, Tools)",
		"List skills in order of proficiency",
		"Include both hard and soft skills",
		"Match skills to job requirements when possible",
	},
	"projects": {
		"Include 2-4 relevant projects with brief descriptions",
		"Mention technologies used and your role",
		"Add links to GitHub repos or live demos",
		"Quantify impact or results where possible",
	},
}

// formattingSuggestions is the static pool of presentation tips.
var formattingSuggestions = []string{
	"Use consistent formatting throughout the document",
	"Keep margins between 0.5-1 inch on all sides",
	"Use a professional, readable font (Arial, Calibri, Times New Roman)",
	"Maintain consistent font sizes (10-12pt for body, 14-16pt for headers)",
	"Use bullet points for easy scanning",
	"Ensure adequate white space between sections",
	"Keep resume to 1-2 pages maximum",
	"Save as PDF to preserve formatting",
}

// actionVerbs are sampled into the bullet-point advice.
var actionVerbs = []string{
	"Achieved", "Developed", "Implemented", "Led", "Managed", "Created",
	"Improved", "Increased", "Reduced", "Optimized", "Designed", "Built",
}

// metricsExamples are sampled into the quantify-achievements advice.
var metricsExamples = []string{
	"Increased system efficiency by 25%",
	"Reduced processing time by 4 hours daily",
	"Led a cross-functional team of 8 developers",
	"Improved user satisfaction scores from 3.2 to 4.6",
	"Generated $2M+ in additional revenue through optimization",
	"Completed 95% of projects ahead of schedule",
}
