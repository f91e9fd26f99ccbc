package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-finder/internal/discovery"
	"github.com/jonathan/job-finder/internal/ingestion"
	"github.com/jonathan/job-finder/internal/types"
)

type fakeAnalyzer struct {
	profile *types.CandidateProfile
	err     error
	path    string
}

func (f *fakeAnalyzer) AnalyzeFile(_ context.Context, path string) (*types.CandidateProfile, *ingestion.Metadata, error) {
	f.path = path
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.profile, &ingestion.Metadata{SourceFile: path}, nil
}

type fakeFinder struct {
	chain *discovery.ChainResult
	title string
	limit int
}

func (f *fakeFinder) Discover(_ context.Context, title, _ string, limit int) *discovery.ChainResult {
	f.title = title
	f.limit = limit
	return f.chain
}

type fakeInsightProvider struct {
	mu        sync.Mutex
	companies []string
}

func (f *fakeInsightProvider) GetInsight(_ context.Context, company string) types.EmployerInsight {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies = append(f.companies, company)
	insight := types.NeutralInsight(company)
	insight.DataSource = "fake"
	return insight
}

type fakeRanker struct {
	err      error
	insights []types.EmployerInsight
	role     string
}

func (f *fakeRanker) Rank(_ context.Context, _ types.CandidateProfile, jobs []types.JobPosting,
	insights []types.EmployerInsight, desiredRole, _ string) ([]types.MatchResult, error) {
	f.insights = insights
	f.role = desiredRole
	if f.err != nil {
		return nil, f.err
	}
	results := make([]types.MatchResult, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, types.MatchResult{Job: job, Score: 50})
	}
	return results, nil
}

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		Skills:             []string{"Go", "Python"},
		ExperienceLevel:    types.SenioritySenior,
		YearsOfExperience:  7,
		PreferredLocations: []string{"Remote"},
		KeyAchievements:    []string{},
	}
}

func testChain(jobs ...types.JobPosting) *discovery.ChainResult {
	return &discovery.ChainResult{
		Jobs:   jobs,
		State:  discovery.ChainSucceeded,
		Source: types.SourceMock,
	}
}

func pipelineJob(title, company string) types.JobPosting {
	return types.JobPosting{Title: title, Company: company, URL: "https://jobs.test/" + title, Source: types.SourceMock}
}

func TestRun_HappyPath(t *testing.T) {
	analyzer := &fakeAnalyzer{profile: testProfile()}
	finder := &fakeFinder{chain: testChain(
		pipelineJob("Backend Engineer", "Acme"),
		pipelineJob("Platform Engineer", "Globex"),
		pipelineJob("SRE", "Acme"),
	)}
	provider := &fakeInsightProvider{}
	ranker := &fakeRanker{}

	p := New(analyzer, finder, provider, ranker, nil)
	result, err := p.Run(context.Background(), Options{
		ResumePath: "cv.pdf",
		JobTitle:   "Backend Engineer",
		Location:   "Remote",
		NumJobs:    10,
	})

	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())
	assert.Equal(t, "cv.pdf", analyzer.path)
	assert.Equal(t, 10, finder.limit)
	assert.Equal(t, types.SourceMock, result.Source)
	assert.Len(t, result.Jobs, 3)
	assert.Len(t, result.Matches, 3)
	assert.Equal(t, "Backend Engineer", ranker.role)

	// one insight per distinct company, not per job
	assert.ElementsMatch(t, []string{"Acme", "Globex"}, provider.companies)
	assert.Len(t, ranker.insights, 2)
}

func TestRun_RequiresJobTitle(t *testing.T) {
	p := New(&fakeAnalyzer{profile: testProfile()}, &fakeFinder{chain: testChain()}, &fakeInsightProvider{}, &fakeRanker{}, nil)

	_, err := p.Run(context.Background(), Options{ResumePath: "cv.pdf"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job title")
}

func TestRun_RequiresResumePath(t *testing.T) {
	p := New(&fakeAnalyzer{profile: testProfile()}, &fakeFinder{chain: testChain()}, &fakeInsightProvider{}, &fakeRanker{}, nil)

	_, err := p.Run(context.Background(), Options{JobTitle: "Backend Engineer"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume path")
}

func TestRun_DefaultsNumJobs(t *testing.T) {
	finder := &fakeFinder{chain: testChain()}
	p := New(&fakeAnalyzer{profile: testProfile()}, finder, &fakeInsightProvider{}, &fakeRanker{}, nil)

	_, err := p.Run(context.Background(), Options{ResumePath: "cv.pdf", JobTitle: "Backend Engineer"})

	require.NoError(t, err)
	assert.Equal(t, DefaultNumJobs, finder.limit)
}

func TestRun_AnalyzerFailureAborts(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("unreadable file")}
	p := New(analyzer, &fakeFinder{chain: testChain()}, &fakeInsightProvider{}, &fakeRanker{}, nil)

	_, err := p.Run(context.Background(), Options{ResumePath: "cv.pdf", JobTitle: "Backend Engineer"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume analysis")
}

func TestRun_RankerFailureAborts(t *testing.T) {
	ranker := &fakeRanker{err: errors.New("embedding service down")}
	p := New(&fakeAnalyzer{profile: testProfile()}, &fakeFinder{chain: testChain(pipelineJob("SRE", "Acme"))},
		&fakeInsightProvider{}, ranker, nil)

	_, err := p.Run(context.Background(), Options{ResumePath: "cv.pdf", JobTitle: "SRE"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "matching")
}

func TestRun_ExhaustedChainStillRanksNothing(t *testing.T) {
	finder := &fakeFinder{chain: &discovery.ChainResult{Jobs: []types.JobPosting{}, State: discovery.ChainExhausted}}
	provider := &fakeInsightProvider{}

	p := New(&fakeAnalyzer{profile: testProfile()}, finder, provider, &fakeRanker{}, nil)
	result, err := p.Run(context.Background(), Options{ResumePath: "cv.pdf", JobTitle: "Backend Engineer"})

	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	assert.Empty(t, provider.companies)
}

func TestRun_ProgressEventsCoverAllStages(t *testing.T) {
	var (
		mu     sync.Mutex
		stages []string
	)
	p := New(&fakeAnalyzer{profile: testProfile()},
		&fakeFinder{chain: testChain(pipelineJob("SRE", "Acme"))},
		&fakeInsightProvider{}, &fakeRanker{}, nil)

	_, err := p.Run(context.Background(), Options{
		ResumePath: "cv.pdf",
		JobTitle:   "SRE",
		OnProgress: func(event ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			stages = append(stages, event.Stage)
			assert.NotEmpty(t, event.RunID)
		},
	})

	require.NoError(t, err)
	assert.Contains(t, stages, StageAnalysis)
	assert.Contains(t, stages, StageDiscovery)
	assert.Contains(t, stages, StageInsights)
	assert.Contains(t, stages, StageMatching)
}

func TestGatherInsights_ManyCompanies(t *testing.T) {
	jobs := make([]types.JobPosting, 0, 20)
	for i := 0; i < 20; i++ {
		jobs = append(jobs, pipelineJob("Engineer", string(rune('A'+i))))
	}
	provider := &fakeInsightProvider{}
	p := New(&fakeAnalyzer{profile: testProfile()}, &fakeFinder{}, provider, &fakeRanker{}, nil)

	insights := p.gatherInsights(context.Background(), jobs)

	require.Len(t, insights, 20)
	for i, insight := range insights {
		assert.Equal(t, jobs[i].Company, insight.CompanyName)
	}
}
