package sources

import "strings"

// skillVocabulary is the fixed tag vocabulary scanned for in free-text
// postings. The scan is deliberately conservative: it may under-tag but
// never invents a tag outside this list.
var skillVocabulary = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node.js",
	"Python",
	"Go",
	"Rust",
	"Java",
	"C++",
	"AWS",
	"Kubernetes",
	"Docker",
	"PostgreSQL",
	"MongoDB",
	"GraphQL",
	"REST",
	"Machine Learning",
	"AI",
}

// ExtractSkills returns the vocabulary entries appearing in text as
// case-insensitive substrings, in vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	var skills []string
	for _, skill := range skillVocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}
