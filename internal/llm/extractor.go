// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "CandidateProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// CandidateProfileSchema returns the extraction schema for résumés.
// Extracts skills, experience level, years of experience, locations, and achievements.
func CandidateProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "CandidateProfile",
		Description: `You are an expert resume parser. Your task is to extract a structured candidate profile from raw resume text.
Report skills exactly as the candidate names them; do not normalize casing or expand abbreviations.
EXCLUDE: Contact details, references, hobbies unrelated to professional work.`,
		Fields: []SchemaField{
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technical skills, tools, and technologies the candidate lists",
				Required:    true,
			},
			{
				Name:        "experience_level",
				Type:        "\"string\"",
				Description: "One of: Junior, Mid, Senior, Lead",
				Required:    true,
			},
			{
				Name:        "years_of_experience",
				Type:        "number",
				Description: "Total years of professional experience, as an integer",
				Required:    true,
			},
			{
				Name:        "preferred_locations",
				Type:        "[\"string\"]",
				Description: "Locations the candidate mentions wanting to work in, including Remote",
				Required:    false,
			},
			{
				Name:        "key_achievements",
				Type:        "[\"string\"]",
				Description: "Notable accomplishments - copy each achievement verbatim",
				Required:    false,
			},
		},
	}
}
