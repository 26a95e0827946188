package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/auracanvas/aura-api/internal/domain"
)

// BuildPrompt creates the aura reading instruction for the model. It embeds
// the two personality labels and the full color enumeration with meanings,
// and demands a single-line JSON object reply.
func BuildPrompt(energy, element string) string {
	var meanings strings.Builder
	var names []string
	for _, c := range domain.AuraColors {
		names = append(names, string(c.Color))
		meanings.WriteString(fmt.Sprintf("- %s: %s\n", c.Color, c.Meaning))
	}

	return fmt.Sprintf(`You are an aura reader. Analyze this person's photo and determine their aura color.

The person described their energy as: %s
The person chose this element: %s

Based on the photo and these inputs, determine which aura color best fits this person.

Available colors: %s

Meanings:
%s
Respond with ONLY valid JSON in this exact format:
{"color": "COLOR_NAME", "description": "A 1-2 sentence personalized description about this person's aura energy."}

Make the description fun, personal, and slightly mystical but relatable. Keep it short and punchy.`,
		energy, element, strings.Join(names, ", "), meanings.String())
}

// ExtractJSONObject locates the first brace-delimited object in the model's
// raw reply. Models wrap the object in prose or code fences; everything from
// the first '{' to the last '}' is taken as the candidate document.
func ExtractJSONObject(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}

// ParseResult parses the model reply into an AnalysisResult and enforces the
// color domain. An out-of-domain color is coerced to the fallback color, never
// returned as an error.
func ParseResult(content string) (*domain.AnalysisResult, error) {
	raw, ok := ExtractJSONObject(content)
	if !ok {
		return nil, &domain.ParseError{Raw: content}
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &domain.ParseError{Raw: content}
	}

	result.Color = domain.NormalizeColor(result.Color)
	return &result, nil
}
