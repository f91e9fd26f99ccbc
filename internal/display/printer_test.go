package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-finder/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.CandidateProfile{
		Skills:            []string{"Python", "Go", "Docker"},
		ExperienceLevel:   types.SenioritySenior,
		YearsOfExperience: 7,
		KeyAchievements:   []string{"Led migration to Kubernetes"},
	}

	p.PrintProfile(profile)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE PROFILE")
	assert.Contains(t, output, "Senior (7 years)")
	assert.Contains(t, output, "Python, Go, Docker")
	assert.Contains(t, output, "Led migration to Kubernetes")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_ManySkillsTruncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.CandidateProfile{
		ExperienceLevel: types.SeniorityMid,
		Skills: []string{
			"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l",
		},
	}

	p.PrintProfile(profile)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func sampleMatch() types.MatchResult {
	return types.MatchResult{
		Job: types.JobPosting{
			Title:       "Backend Engineer",
			Company:     "Acme",
			Location:    "Tel Aviv, Israel",
			Description: "Build and operate backend services.\nWork with Go and Postgres.",
			URL:         "https://acme.example/jobs/1",
			PostedDate:  "2025-10-20",
		},
		Insight: types.EmployerInsight{
			CompanyName:  "Acme",
			Sentiment:    types.SentimentPositive,
			Highlights:   []string{"Great engineering culture"},
			CultureNotes: []string{"Remote friendly"},
		},
		Score:          82.0,
		SkillOverlap:   []string{"go", "docker"},
		SkillGaps:      []string{"kubernetes"},
		Recommendation: types.RecommendationStrongMatch,
		Reasoning:      []string{"Strong semantic similarity between CV and job description"},
	}
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches([]types.MatchResult{sampleMatch()}, 10)
	output := buf.String()

	assert.Contains(t, output, "TOP 1 JOB MATCHES")
	assert.Contains(t, output, "#1  Backend Engineer")
	assert.Contains(t, output, "Acme")
	assert.Contains(t, output, "82.0/100 - Strong Match")
	assert.Contains(t, output, "You have: go, docker")
	assert.Contains(t, output, "To learn: kubernetes")
	assert.Contains(t, output, "POSITIVE")
	assert.Contains(t, output, "Great engineering culture")
	assert.Contains(t, output, "Remote friendly")
	assert.Contains(t, output, "https://acme.example/jobs/1")
}

func TestPrintMatches_TopNCapsOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.MatchResult{sampleMatch(), sampleMatch(), sampleMatch()}
	p.PrintMatches(matches, 2)
	output := buf.String()

	assert.Contains(t, output, "TOP 2 JOB MATCHES")
	assert.Contains(t, output, "#2")
	assert.NotContains(t, output, "#3")
}

func TestPrintMatches_NoSkillsIdentified(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	match := sampleMatch()
	match.SkillOverlap = nil
	match.SkillGaps = nil
	p.PrintMatches([]types.MatchResult{match}, 1)
	output := buf.String()

	assert.Contains(t, output, "You have: (none identified)")
	assert.Contains(t, output, "To learn: none identified")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.MatchResult{
		{Score: 85},
		{Score: 70},
		{Score: 55},
		{Score: 30},
	}
	p.PrintSummary(matches)
	output := buf.String()

	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "Total jobs analyzed: 4")
	assert.Contains(t, output, "Average match score: 60.0/100")
	assert.Contains(t, output, "Strong matches (80+): 1")
	assert.Contains(t, output, "Good fits (65-79): 1")
	assert.Contains(t, output, "Worth considering (50-64): 1")
	assert.Contains(t, output, "Skip (<50): 1")
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(nil)
	output := buf.String()

	assert.Contains(t, output, "Total jobs analyzed: 0")
	assert.Contains(t, output, "N/A (no jobs found)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}

func TestDescPreview(t *testing.T) {
	assert.Empty(t, descPreview("   "))

	got := descPreview("First line.\n\n  Second line.  \nThird line.\nFourth line.")
	assert.Equal(t, "First line. Second line. Third line....", got)
}
