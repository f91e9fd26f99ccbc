// Package display provides formatted CLI output for pipeline results.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// descPreviewLength bounds the job description excerpt per match
	descPreviewLength = 400
)

// Printer handles formatted result output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the analyzed résumé.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %s (%d years)\n", profile.ExperienceLevel, profile.YearsOfExperience))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), 10)
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(profile.Skills[:count], ", ")))
		if len(profile.Skills) > 10 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-10))
		}
		sb.WriteString("\n")
	}

	if len(profile.KeyAchievements) > 0 {
		sb.WriteString("Key Achievements:\n")
		count := min(len(profile.KeyAchievements), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.KeyAchievements[i]))
		}
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the top N ranked matches with their scoring breakdown
// and employer insights.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatches(matches []types.MatchResult, topN int) {
	shown := min(topN, len(matches))
	fmt.Fprintf(p.out, "\nTOP %d JOB MATCHES\n", shown)

	for i := 0; i < shown; i++ {
		match := matches[i]

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Company:   %s\n", match.Job.Company))
		sb.WriteString(fmt.Sprintf("Location:  %s\n", match.Job.Location))
		if match.Job.PostedDate != "" {
			sb.WriteString(fmt.Sprintf("Posted:    %s\n", match.Job.PostedDate))
		}
		sb.WriteString(fmt.Sprintf("Score:     %.1f/100 - %s\n", match.Score, match.Recommendation))

		if desc := descPreview(match.Job.Description); desc != "" {
			sb.WriteString("\nDescription:\n")
			sb.WriteString(fmt.Sprintf("  %s\n", desc))
		}

		sb.WriteString("\nSkills Analysis:\n")
		if len(match.SkillOverlap) > 0 {
			sb.WriteString(fmt.Sprintf("  You have: %s\n", strings.Join(truncateList(match.SkillOverlap, 8), ", ")))
		} else {
			sb.WriteString("  You have: (none identified)\n")
		}
		if len(match.SkillGaps) > 0 {
			sb.WriteString(fmt.Sprintf("  To learn: %s\n", strings.Join(truncateList(match.SkillGaps, maxItemsToShow), ", ")))
		} else {
			sb.WriteString("  To learn: none identified\n")
		}

		if len(match.Reasoning) > 0 {
			sb.WriteString("\nWhy This Match:\n")
			for _, reason := range truncateList(match.Reasoning, 4) {
				sb.WriteString(fmt.Sprintf("  • %s\n", reason))
			}
		}

		sb.WriteString("\nCompany Insights:\n")
		sb.WriteString(fmt.Sprintf("  Sentiment: %s\n", strings.ToUpper(match.Insight.Sentiment)))
		for _, highlight := range truncateList(match.Insight.Highlights, 2) {
			sb.WriteString(fmt.Sprintf("  • %s\n", highlight))
		}
		for _, note := range truncateList(match.Insight.CultureNotes, 2) {
			sb.WriteString(fmt.Sprintf("  • %s\n", note))
		}

		if match.Job.URL != "" {
			sb.WriteString(fmt.Sprintf("\nApply: %s", match.Job.URL))
		}

		p.printBox(fmt.Sprintf("#%d  %s", i+1, match.Job.Title), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintSummary outputs aggregate statistics over all matches.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSummary(matches []types.MatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total jobs analyzed: %d\n", len(matches)))

	if len(matches) == 0 {
		sb.WriteString("Average match score: N/A (no jobs found)\n")
		sb.WriteString("Try a different search query or location")
		p.printBox("SUMMARY", sb.String())
		return
	}

	var total float64
	var strong, good, consider, skip int
	for _, match := range matches {
		total += match.Score
		switch {
		case match.Score >= 80:
			strong++
		case match.Score >= 65:
			good++
		case match.Score >= 50:
			consider++
		default:
			skip++
		}
	}

	sb.WriteString(fmt.Sprintf("Average match score: %.1f/100\n", total/float64(len(matches))))
	sb.WriteString(fmt.Sprintf("Strong matches (80+): %d\n", strong))
	sb.WriteString(fmt.Sprintf("Good fits (65-79): %d\n", good))
	sb.WriteString(fmt.Sprintf("Worth considering (50-64): %d\n", consider))
	sb.WriteString(fmt.Sprintf("Skip (<50): %d", skip))

	p.printBox("SUMMARY", sb.String())
}

// descPreview collapses a description into a single short line.
func descPreview(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	if len(desc) > descPreviewLength {
		desc = desc[:descPreviewLength]
	}

	var lines []string
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(truncateList(lines, 3), " ") + "..."
}

func truncateList(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
