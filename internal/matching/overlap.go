package matching

import (
	"regexp"
	"strings"
)

// referenceSkills is the fixed vocabulary of common technical terms checked
// for skill gaps: terms a job posting mentions that the candidate's skill
// list lacks.
var referenceSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++",
	"Docker", "Kubernetes", "AWS", "Azure", "GCP",
	"React", "Vue", "Angular", "Node.js",
	"PostgreSQL", "MongoDB", "Redis",
	"Kafka", "RabbitMQ", "GraphQL", "REST",
	"CI/CD", "Jenkins", "GitLab", "GitHub Actions",
	"Terraform", "Ansible", "Linux",
}

// OverlapAndGaps reports which candidate skills appear in the job text and
// which in-demand reference skills the candidate lacks.
//
// Overlap uses case-insensitive whole-word matching so "Java" does not match
// inside "JavaScript"; result order follows candidateSkills. Gap detection is
// a case-insensitive substring scan of the job text, but the exclusion check
// against candidateSkills is case-sensitive. That asymmetry is long-standing
// scoring behavior; changing it would shift scores.
func OverlapAndGaps(candidateSkills []string, jobText string) (overlap, gaps []string) {
	jobTextLower := strings.ToLower(jobText)

	overlap = make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		pattern := `\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`
		if matched, err := regexp.MatchString(pattern, jobTextLower); err == nil && matched {
			overlap = append(overlap, skill)
		}
	}

	have := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		have[skill] = struct{}{}
	}

	gaps = make([]string, 0)
	for _, skill := range referenceSkills {
		if _, ok := have[skill]; ok {
			continue
		}
		if strings.Contains(jobTextLower, strings.ToLower(skill)) {
			gaps = append(gaps, skill)
		}
	}

	return overlap, gaps
}
