package reputation

import (
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

// Keyword vocabularies for the discussion sentiment heuristic. A word counts
// once per text no matter how often it appears.
var (
	positiveWords = []string{"great", "love", "amazing", "best", "excellent", "good", "happy", "enjoy"}
	negativeWords = []string{"bad", "terrible", "worst", "avoid", "horrible", "toxic", "hate", "quit"}
)

var cultureKeywords = []string{"culture", "work-life", "remote", "benefits"}

// ScoreText classifies one discussion text as +1 (positive), -1 (negative)
// or 0 (mixed or neutral) by comparing keyword hit counts.
func ScoreText(text string) int {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return 1
	case negative > positive:
		return -1
	}
	return 0
}

// OverallSentiment folds per-text scores into a company-level label.
// The mean must clear 0.2 in either direction to leave neutral.
func OverallSentiment(scores []int) string {
	if len(scores) == 0 {
		return types.SentimentNeutral
	}

	var sum int
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))

	switch {
	case mean > 0.2:
		return types.SentimentPositive
	case mean < -0.2:
		return types.SentimentNegative
	}
	return types.SentimentNeutral
}

// isCultureNote reports whether a discussion text says something about
// working conditions rather than the company's products.
func isCultureNote(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range cultureKeywords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
