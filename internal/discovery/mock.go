package discovery

import (
	"context"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

// MockSource serves a fixed catalogue of postings for offline runs and
// demos. No credentials, no network.
type MockSource struct{}

// NewMockSource returns the catalogue-backed source.
func NewMockSource() *MockSource { return &MockSource{} }

// Name implements Source.
func (s *MockSource) Name() string { return types.SourceMock }

// Search implements Source. The location filter is a case-insensitive
// substring match against the posting's location.
func (s *MockSource) Search(_ context.Context, _ string, location string, limit int) ([]types.JobPosting, error) {
	jobs := []types.JobPosting{}
	for _, job := range mockCatalogue {
		if limit > 0 && len(jobs) >= limit {
			break
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(location)) {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

var mockCatalogue = []types.JobPosting{
	{
		Title:    "Senior Python Developer",
		Company:  "TechCorp Israel",
		Location: "Tel Aviv, Israel",
		Description: `We're looking for a Senior Python Developer to join our backend team.

Requirements:
- 5+ years of Python experience
- Strong knowledge of Django/FastAPI
- Experience with PostgreSQL, Redis
- Docker, Kubernetes experience
- AWS/GCP knowledge

Nice to have:
- Microservices architecture
- Event-driven systems
- LLM integration experience`,
		URL:        "https://example.com/jobs/senior-python-dev-1",
		PostedDate: "2025-10-18",
		Source:     types.SourceLinkedIn,
	},
	{
		Title:    "Python Backend Engineer",
		Company:  "StartupXYZ",
		Location: "Remote (Israel)",
		Description: `Join our fast-growing startup as a Backend Engineer!

Requirements:
- 3+ years Python experience
- REST API design
- SQL databases
- Git, CI/CD

We offer:
- Remote work
- Equity
- Learning budget`,
		URL:        "https://example.com/jobs/python-backend-2",
		PostedDate: "2025-10-19",
		Source:     types.SourceIndeed,
	},
	{
		Title:    "Full Stack Developer (Python + Vue.js)",
		Company:  "DataScience Ltd",
		Location: "Herzliya, Israel",
		Description: `Looking for a Full Stack Developer with Python and Vue.js experience.

Requirements:
- Python (Flask/FastAPI)
- Vue.js 3
- PostgreSQL
- Docker

Bonus:
- Data visualization
- ML/AI experience`,
		URL:        "https://example.com/jobs/fullstack-vue-3",
		PostedDate: "2025-10-17",
		Source:     types.SourceDirect,
	},
	{
		Title:    "Junior Python Developer",
		Company:  "FinTech Solutions",
		Location: "Tel Aviv, Israel",
		Description: `Great opportunity for junior developers!

Requirements:
- 1-2 years Python experience
- Understanding of OOP
- Basic SQL knowledge
- Willingness to learn

We'll teach you:
- Modern Python frameworks
- Cloud technologies
- DevOps practices`,
		URL:        "https://example.com/jobs/junior-python-4",
		PostedDate: "2025-10-20",
		Source:     types.SourceLinkedIn,
	},
	{
		Title:    "Python AI/ML Engineer",
		Company:  "AI Innovations",
		Location: "Remote",
		Description: `Build the future of AI with us!

Requirements:
- Strong Python skills
- LangChain, OpenAI API experience
- Vector databases (Pinecone, Weaviate)
- REST APIs

Exciting work:
- LLM applications
- Multi-agent systems
- RAG implementations`,
		URL:        "https://example.com/jobs/ai-ml-engineer-5",
		PostedDate: "2025-10-21",
		Source:     types.SourceDirect,
	},
	{
		Title:    "DevOps Engineer (Python)",
		Company:  "CloudTech",
		Location: "Raanana, Israel",
		Description: `DevOps role with strong Python automation focus.

Requirements:
- Python scripting
- Docker, Kubernetes
- AWS/Azure/GCP
- CI/CD (Jenkins, GitLab)
- Terraform, Ansible

You'll work on:
- Infrastructure automation
- Monitoring systems
- Deployment pipelines`,
		URL:        "https://example.com/jobs/devops-python-6",
		PostedDate: "2025-10-16",
		Source:     types.SourceIndeed,
	},
}
