package reputation

import (
	"context"
	"fmt"

	"github.com/jonathan/job-finder/internal/types"
)

// DataSourceMock tags insights served from the offline catalogue.
const DataSourceMock = "mock_data"

// MockProvider serves canned insights for offline runs. Companies outside
// the catalogue get a generic neutral entry.
type MockProvider struct{}

// NewMockProvider returns the catalogue-backed provider.
func NewMockProvider() *MockProvider { return &MockProvider{} }

// GetInsight implements Provider.
func (p *MockProvider) GetInsight(_ context.Context, company string) types.EmployerInsight {
	if insight, ok := mockInsights[company]; ok {
		insight.CompanyName = company
		insight.DataSource = DataSourceMock
		return insight
	}
	return types.EmployerInsight{
		CompanyName: company,
		Sentiment:   types.SentimentNeutral,
		Highlights: []string{
			fmt.Sprintf("Limited public information about %s", company),
			"Company appears to be well-established",
			"No major red flags found",
		},
		RecentNews:   []string{fmt.Sprintf("%s is actively hiring", company)},
		CultureNotes: []string{"General software company culture"},
		DataSource:   DataSourceMock,
	}
}

var mockInsights = map[string]types.EmployerInsight{
	"TechCorp Israel": {
		Sentiment: types.SentimentPositive,
		Highlights: []string{
			"Great work-life balance, flexible hours",
			"Modern tech stack (Python, Docker, K8s)",
			"Generous learning budget and conference tickets",
			"Collaborative team culture",
			"Good salary but could be better",
		},
		RecentNews: []string{
			"TechCorp raises $50M Series B funding (Oct 2025)",
			"Launched new AI-powered platform",
			"Expanded Tel Aviv office, hiring 50+ engineers",
		},
		CultureNotes: []string{
			"Remote-first company",
			"Strong focus on personal growth",
			"Regular team events and hackathons",
		},
	},
	"StartupXYZ": {
		Sentiment: types.SentimentPositive,
		Highlights: []string{
			"Fast-paced startup environment",
			"Equity for all employees",
			"Fully remote team",
			"Small team, lots of responsibility",
			"Some reports of long hours during crunch",
		},
		RecentNews: []string{
			"Closed seed round of $5M (Sep 2025)",
			"First product launch scheduled for Q1 2026",
		},
		CultureNotes: []string{
			"Startup culture - move fast, break things",
			"Direct communication, flat hierarchy",
		},
	},
	"DataScience Ltd": {
		Sentiment: types.SentimentNeutral,
		Highlights: []string{
			"Interesting data projects",
			"Good mentorship for junior developers",
			"Office in Herzliya with hybrid work",
			"Some bureaucracy typical of mid-size company",
			"Competitive salary for market",
		},
		RecentNews: []string{
			"DataScience Ltd partners with major bank",
			"Published research paper at NeurIPS 2025",
		},
		CultureNotes: []string{
			"Academic research culture",
			"Focus on publishing and conferences",
		},
	},
	"FinTech Solutions": {
		Sentiment: types.SentimentPositive,
		Highlights: []string{
			"Very stable company, good for juniors",
			"Structured onboarding and training",
			"Regulated industry, thorough processes",
			"Less cutting-edge tech than startups",
			"Great benefits package",
		},
		RecentNews: []string{
			"FinTech Solutions achieves SOC 2 compliance",
			"Expanding to European market",
		},
		CultureNotes: []string{
			"Professional corporate environment",
			"Strong emphasis on security and compliance",
		},
	},
	"AI Innovations": {
		Sentiment: types.SentimentPositive,
		Highlights: []string{
			"Cutting-edge AI/ML work",
			"Work with latest LLM technologies",
			"Fully remote, global team",
			"Fast-growing company, lots of opportunities",
			"Competitive compensation + equity",
		},
		RecentNews: []string{
			"AI Innovations launches GPT-powered product",
			"Featured in TechCrunch for innovative multi-agent system",
			"Hiring spree - 30 engineers in 6 months",
		},
		CultureNotes: []string{
			"Research-driven culture",
			"Encourages experimentation and innovation",
			"Regular AI/ML paper reading groups",
		},
	},
	"CloudTech": {
		Sentiment: types.SentimentNeutral,
		Highlights: []string{
			"Solid DevOps practices and infrastructure",
			"Good learning environment for cloud technologies",
			"On-call rotation can be demanding",
			"Mature company with established processes",
			"Decent compensation",
		},
		RecentNews: []string{
			"CloudTech migrates to multi-cloud architecture",
			"Achieved 99.99% uptime last quarter",
		},
		CultureNotes: []string{
			"DevOps culture with strong automation focus",
			"24/7 operations with rotating on-call",
		},
	},
}
