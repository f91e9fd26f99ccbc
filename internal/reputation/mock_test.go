package reputation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-finder/internal/types"
)

func TestMockProvider_KnownCompany(t *testing.T) {
	provider := NewMockProvider()

	insight := provider.GetInsight(context.Background(), "TechCorp Israel")

	assert.Equal(t, "TechCorp Israel", insight.CompanyName)
	assert.Equal(t, types.SentimentPositive, insight.Sentiment)
	assert.Len(t, insight.Highlights, 5)
	assert.Len(t, insight.RecentNews, 3)
	assert.Len(t, insight.CultureNotes, 3)
	assert.Equal(t, DataSourceMock, insight.DataSource)
}

func TestMockProvider_UnknownCompanyGetsGenericEntry(t *testing.T) {
	provider := NewMockProvider()

	insight := provider.GetInsight(context.Background(), "Wayne Enterprises")

	assert.Equal(t, "Wayne Enterprises", insight.CompanyName)
	assert.Equal(t, types.SentimentNeutral, insight.Sentiment)
	require.Len(t, insight.Highlights, 3)
	assert.Contains(t, insight.Highlights[0], "Wayne Enterprises")
	require.Len(t, insight.RecentNews, 1)
	assert.Contains(t, insight.RecentNews[0], "actively hiring")
}

func TestMockProvider_CoversWholeMockJobCatalogue(t *testing.T) {
	provider := NewMockProvider()
	companies := []string{
		"TechCorp Israel", "StartupXYZ", "DataScience Ltd",
		"FinTech Solutions", "AI Innovations", "CloudTech",
	}

	for _, company := range companies {
		insight := provider.GetInsight(context.Background(), company)
		assert.Equal(t, DataSourceMock, insight.DataSource, company)
		assert.NotEmpty(t, insight.Highlights, company)
		assert.NotEmpty(t, insight.RecentNews, company)
	}
}
