// Package resume extracts a structured candidate profile from résumé documents
// using LLM extraction.
package resume

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/job-finder/internal/ingestion"
	"github.com/jonathan/job-finder/internal/llm"
	"github.com/jonathan/job-finder/internal/schemas"
	"github.com/jonathan/job-finder/internal/types"
)

// profileSchema validates the extraction output before it is trusted.
// Years may come back negative or fractional from a confused model; those are
// normalized afterwards rather than rejected here.
const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills", "experience_level", "years_of_experience"],
  "properties": {
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "experience_level": {"type": "string"},
    "years_of_experience": {"type": "number"},
    "preferred_locations": {
      "type": "array",
      "items": {"type": "string"}
    },
    "key_achievements": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// Analyzer turns résumé files into candidate profiles.
type Analyzer struct {
	client llm.Client
	logger *zap.Logger
}

// NewAnalyzer creates an Analyzer backed by the given LLM client.
func NewAnalyzer(client llm.Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{client: client, logger: logger}
}

// AnalyzeFile ingests a résumé file and extracts the candidate profile.
// A missing or unreadable file surfaces the ingestion error unchanged.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*types.CandidateProfile, *ingestion.Metadata, error) {
	text, metadata, err := ingestion.IngestResumeFile(path)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("resume ingested",
		zap.String("file", path),
		zap.String("format", metadata.Format),
		zap.Int("chars", len(text)),
	)

	profile, err := a.ExtractProfile(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("candidate profile extracted",
		zap.Int("skills", len(profile.Skills)),
		zap.String("level", profile.ExperienceLevel),
		zap.Int("years", profile.YearsOfExperience),
	)

	return profile, metadata, nil
}

// ExtractProfile extracts a candidate profile from cleaned résumé text.
func (a *Analyzer) ExtractProfile(ctx context.Context, text string) (*types.CandidateProfile, error) {
	prompt := llm.BuildExtractionPrompt(llm.CandidateProfileSchema(), text)

	response, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to generate profile extraction",
			Cause:   err,
		}
	}

	return ParseProfile(response)
}

// ParseProfile validates and decodes the extraction JSON into a profile.
func ParseProfile(jsonText string) (*types.CandidateProfile, error) {
	jsonText = llm.CleanJSONBlock(jsonText)

	if err := schemas.ValidateJSONString(profileSchema, jsonText); err != nil {
		return nil, &ParseError{
			Message: "extraction output failed schema validation",
			Cause:   err,
		}
	}

	var raw struct {
		Skills             []string `json:"skills"`
		ExperienceLevel    string   `json:"experience_level"`
		YearsOfExperience  float64  `json:"years_of_experience"`
		PreferredLocations []string `json:"preferred_locations"`
		KeyAchievements    []string `json:"key_achievements"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	profile := &types.CandidateProfile{
		Skills:             raw.Skills,
		ExperienceLevel:    normalizeSeniority(raw.ExperienceLevel),
		YearsOfExperience:  int(raw.YearsOfExperience),
		PreferredLocations: raw.PreferredLocations,
		KeyAchievements:    raw.KeyAchievements,
	}
	if profile.YearsOfExperience < 0 {
		profile.YearsOfExperience = 0
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.PreferredLocations == nil {
		profile.PreferredLocations = []string{}
	}
	if profile.KeyAchievements == nil {
		profile.KeyAchievements = []string{}
	}

	return profile, nil
}

// normalizeSeniority maps free-form level strings onto the recognized labels.
// Unrecognized levels become Mid rather than failing the whole analysis.
func normalizeSeniority(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "junior", "entry", "entry-level", "jr":
		return types.SeniorityJunior
	case "mid", "mid-level", "middle", "intermediate":
		return types.SeniorityMid
	case "senior", "sr":
		return types.SenioritySenior
	case "lead", "staff", "principal":
		return types.SeniorityLead
	default:
		return types.SeniorityMid
	}
}
