package analysis

import "regexp"

// Contact field names used as ContactInfo map keys.
const (
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldLinkedIn = "linkedin"
	FieldGitHub   = "github"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[\w-]+`)
)

// extractContactInfo finds the first email, phone number, LinkedIn profile,
// and GitHub profile in the text. Fields with no match are left out of the
// map entirely rather than set to an empty string.
func extractContactInfo(text, textLower string) map[string]string {
	contact := make(map[string]string)

	if email := emailRe.FindString(text); email != "" {
		contact[FieldEmail] = email
	}
	if phone := phoneRe.FindString(text); phone != "" {
		contact[FieldPhone] = phone
	}
	if linkedin := linkedinRe.FindString(textLower); linkedin != "" {
		contact[FieldLinkedIn] = linkedin
	}
	if github := githubRe.FindString(textLower); github != "" {
		contact[FieldGitHub] = github
	}

	return contact
}
