package matching

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-finder/internal/types"
)

// advancedSkillYears is the experience threshold above which the candidate
// text gets a third phrasing per skill.
const advancedSkillYears = 3

// buildCandidateText synthesizes a rich paragraph describing the candidate
// for embedding. Each skill is deliberately repeated two to three times with
// varied phrasing to bias the embedding toward skill terms; this repetition
// is a signal-boosting technique, not accidental duplication.
func buildCandidateText(profile types.CandidateProfile, desiredRole, desiredLocation string) string {
	role := desiredRole
	if role == "" {
		role = "Developer"
	}
	goal := desiredRole
	if goal == "" {
		goal = "challenging opportunities"
	}
	location := desiredLocation
	if location == "" {
		location = "flexible"
	}

	var skillsContext []string
	for _, skill := range profile.Skills {
		skillsContext = append(skillsContext, "Expert in "+skill)
		skillsContext = append(skillsContext, "Professional "+skill+" experience")
		if profile.YearsOfExperience >= advancedSkillYears {
			skillsContext = append(skillsContext, "Advanced "+skill+" skills")
		}
	}

	skillList := strings.Join(profile.Skills, ", ")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Professional %s with %d years of experience.\n", role, profile.YearsOfExperience)
	fmt.Fprintf(&sb, "%s level professional.\n\n", profile.ExperienceLevel)
	fmt.Fprintf(&sb, "Core Technical Skills:\n%s\n\n", strings.Join(skillsContext, " "))
	fmt.Fprintf(&sb, "Technical Expertise: %s\n\n", skillList)
	fmt.Fprintf(&sb, "Key Achievements and Experience:\n%s\n\n", strings.Join(profile.KeyAchievements, " "))
	fmt.Fprintf(&sb, "Career Level: %s developer with proven track record\n", profile.ExperienceLevel)
	fmt.Fprintf(&sb, "Years of Experience: %d years\n\n", profile.YearsOfExperience)
	fmt.Fprintf(&sb, "Looking for: %s\n", goal)
	fmt.Fprintf(&sb, "Preferred Location: %s\n", location)
	fmt.Fprintf(&sb, "Location Preferences: %s\n\n", strings.Join(profile.PreferredLocations, ", "))
	fmt.Fprintf(&sb, "This candidate has strong capabilities in: %s\n", skillList)

	return sb.String()
}
