// Package prompts stores the LLM prompt templates used for employer
// reputation research. Templates live in JSON files embedded at compile
// time, keyed by task name (for example "summarize-discussions" and
// "classify-discussion" in reputation.json), so prompt wording can change
// without touching the research code.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// Parsed files are cached so each template file is unmarshaled once per process.
var (
	parsed   = make(map[string]map[string]string)
	parsedMu sync.RWMutex
)

// Get returns the template stored under key in the given embedded file.
// filename is bare, without a path ("reputation.json"). Unknown files and
// unknown keys are errors.
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return template, nil
}

// MustGet is Get for templates required at startup; it panics when the
// template is missing.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Key}} placeholders with values from data. Reputation
// templates only need plain substitution, so this avoids pulling in
// text/template for conditionals the templates never use.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func load(filename string) (map[string]string, error) {
	parsedMu.RLock()
	if templates, ok := parsed[filename]; ok {
		parsedMu.RUnlock()
		return templates, nil
	}
	parsedMu.RUnlock()

	data, err := files.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	parsedMu.Lock()
	parsed[filename] = templates
	parsedMu.Unlock()

	return templates, nil
}

// ClearCache drops all parsed template files. Tests use it to exercise the
// load path.
func ClearCache() {
	parsedMu.Lock()
	parsed = make(map[string]map[string]string)
	parsedMu.Unlock()
}

// List returns the task keys available in a template file.
func List(filename string) ([]string, error) {
	templates, err := load(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(templates))
	for key := range templates {
		keys = append(keys, key)
	}
	return keys, nil
}
