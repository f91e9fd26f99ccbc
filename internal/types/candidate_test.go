package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidSeniority(t *testing.T) {
	for _, level := range []string{SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead} {
		assert.True(t, ValidSeniority(level), level)
	}

	assert.False(t, ValidSeniority("senior"), "labels are case-sensitive")
	assert.False(t, ValidSeniority("Principal"))
	assert.False(t, ValidSeniority(""))
}

func TestNeutralInsight(t *testing.T) {
	insight := NeutralInsight("Acme")

	assert.Equal(t, "Acme", insight.CompanyName)
	assert.Equal(t, SentimentNeutral, insight.Sentiment)
	assert.Equal(t, "default", insight.DataSource)
	assert.NotNil(t, insight.Highlights)
	assert.NotNil(t, insight.RecentNews)
	assert.NotNil(t, insight.CultureNotes)
	assert.Empty(t, insight.Highlights)
}
