package reputation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-finder/internal/types"
)

func TestScoreText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Positive keywords win", "Great place, love the team", 1},
		{"Negative keywords win", "Toxic management, avoid this place", -1},
		{"Tie is neutral", "Good engineers but terrible processes", 0},
		{"No keywords is neutral", "They build payment infrastructure", 0},
		{"Case insensitive", "AMAZING benefits and EXCELLENT pay", 1},
		{"Each word counts once", "bad bad bad but good and happy", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreText(tt.text))
		})
	}
}

func TestOverallSentiment(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected string
	}{
		{"No scores", nil, types.SentimentNeutral},
		{"All positive", []int{1, 1, 1}, types.SentimentPositive},
		{"All negative", []int{-1, -1}, types.SentimentNegative},
		{"Mixed cancels out", []int{1, -1, 0, 0}, types.SentimentNeutral},
		{"Mean just above threshold", []int{1, 0, 0, 0}, types.SentimentPositive},
		{"Mean exactly at threshold", []int{1, 0, 0, 0, 0}, types.SentimentNeutral},
		{"Mean just below negative threshold", []int{-1, 0, 0, 0}, types.SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverallSentiment(tt.scores))
		})
	}
}

func TestIsCultureNote(t *testing.T) {
	assert.True(t, isCultureNote("Strong engineering culture"))
	assert.True(t, isCultureNote("Good work-life balance"))
	assert.True(t, isCultureNote("Fully Remote team"))
	assert.True(t, isCultureNote("Generous benefits package"))
	assert.False(t, isCultureNote("They ship a database product"))
}
