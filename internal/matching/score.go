package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

// Scoring weights. Semantic similarity contributes up to 50 points; skill
// overlap carries the rest so strong skill alignment can outweigh a mediocre
// embedding match.
const (
	similarityWeight   = 50.0
	overlapPointsEach  = 4.0
	overlapBonusCap    = 30.0
	coverageWeight     = 20.0
	gapPenaltyEach     = 1.0
	gapPenaltyCap      = 5.0
	positiveAdjustment = 5.0
	negativeAdjustment = -10.0
)

// BaseScore combines semantic similarity and skill overlap into a 0-100
// score. Negative similarity is possible and intentionally drags the score
// down before clamping.
func BaseScore(cvEmbedding, jobEmbedding []float32, candidateSkills []string, jobText string) (float64, error) {
	similarity, err := CosineSimilarity(cvEmbedding, jobEmbedding)
	if err != nil {
		return 0, fmt.Errorf("comparing embeddings: %w", err)
	}

	overlap, gaps := OverlapAndGaps(candidateSkills, jobText)

	score := similarity * similarityWeight

	if len(overlap) > 0 {
		bonus := float64(len(overlap)) * overlapPointsEach
		if bonus > overlapBonusCap {
			bonus = overlapBonusCap
		}
		score += bonus
	}

	if len(candidateSkills) > 0 {
		coverage := float64(len(overlap)) / float64(len(candidateSkills))
		score += coverage * coverageWeight
	}

	if len(gaps) > 0 {
		penalty := float64(len(gaps)) * gapPenaltyEach
		if penalty > gapPenaltyCap {
			penalty = gapPenaltyCap
		}
		score -= penalty
	}

	return clampScore(score), nil
}

// ApplySentiment adjusts a base score for employer sentiment: +5 for
// positive, -10 for negative, unchanged for neutral. The result is clamped
// back to [0, 100].
func ApplySentiment(baseScore float64, sentiment string) float64 {
	switch sentiment {
	case types.SentimentPositive:
		baseScore += positiveAdjustment
	case types.SentimentNegative:
		baseScore += negativeAdjustment
	}
	return clampScore(baseScore)
}

// RecommendationFor maps a final score to its categorical label.
func RecommendationFor(score float64) string {
	switch {
	case score >= 80:
		return types.RecommendationStrongMatch
	case score >= 65:
		return types.RecommendationGoodFit
	case score >= 50:
		return types.RecommendationConsider
	default:
		return types.RecommendationSkip
	}
}

// BuildReasoning produces human-readable explanations for a match. The list
// is informational only and never feeds back into scoring.
func BuildReasoning(score float64, overlap, gaps []string, insight types.EmployerInsight) []string {
	var reasoning []string

	switch {
	case score >= 80:
		reasoning = append(reasoning, fmt.Sprintf("Excellent match with %.0f%% compatibility", score))
	case score >= 65:
		reasoning = append(reasoning, fmt.Sprintf("Good fit with %.0f%% compatibility", score))
	default:
		reasoning = append(reasoning, fmt.Sprintf("Moderate fit with %.0f%% compatibility", score))
	}

	if len(overlap) > 0 {
		shown := overlap
		if len(shown) > 5 {
			shown = shown[:5]
		}
		reasoning = append(reasoning, "Strong skill alignment: "+strings.Join(shown, ", "))
	}

	if len(gaps) > 0 {
		shown := gaps
		if len(shown) > 3 {
			shown = shown[:3]
		}
		reasoning = append(reasoning, "Missing skills: "+strings.Join(shown, ", "))
	}

	switch insight.Sentiment {
	case types.SentimentPositive:
		reasoning = append(reasoning, "Company has positive reviews and culture")
	case types.SentimentNegative:
		reasoning = append(reasoning, "Company has some negative reviews")
	}

	return reasoning
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
