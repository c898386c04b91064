package mcp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/josephgoksu/thinkwing/internal/prompt"
	"github.com/josephgoksu/thinkwing/types"
)

var validPerspectiveTypes = map[string]bool{
	prompt.PerspectiveInanimateObject: true,
	prompt.PerspectiveAbstractConcept: true,
	prompt.PerspectiveImpossibleBeing: true,
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

const (
	maxThoughtLength    = 5000
	maxConstraintLength = 500
	maxDomainLength     = 200
	maxSequenceLength   = 1000
	maxSeed             = 999999
	truncateDetailAt    = 50
)

// Patterns that must never pass through into generated prompts.
var harmfulPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)data:text/html`),
	regexp.MustCompile(`(?i)vbscript:`),
}

// NormalizeParams trims whitespace and fills the documented defaults.
// It mutates params in place so the handler and the validator see the
// same values.
func NormalizeParams(params *DivergentToolParams) {
	params.Thought = strings.TrimSpace(params.Thought)
	params.Thought2 = strings.TrimSpace(params.Thought2)
	params.Constraint = strings.TrimSpace(params.Constraint)
	params.Domain = strings.TrimSpace(params.Domain)
	params.PerspectiveType = strings.TrimSpace(params.PerspectiveType)

	for i, c := range params.Constraints {
		params.Constraints[i] = strings.TrimSpace(c)
	}

	if params.ThinkingMethod == "" {
		params.ThinkingMethod = MethodStructuredProcess
	}
	if params.PerspectiveType == "" {
		params.PerspectiveType = prompt.PerspectiveInanimateObject
	}
	if params.ThoughtNumber == 0 {
		params.ThoughtNumber = 1
	}
	if params.TotalThoughts == 0 {
		params.TotalThoughts = 3
	}
}

// ValidateParams checks the normalized parameters against the tool
// contract. It returns a structured error naming the offending field;
// values echoed into error details are truncated.
func ValidateParams(params *DivergentToolParams) *types.MCPError {
	if params.Thought == "" {
		return types.NewMCPError("MISSING_THOUGHT", "thought is required and cannot be empty", map[string]interface{}{
			"field": "thought",
		})
	}
	if len(params.Thought) > maxThoughtLength {
		return fieldTooLong("thought", params.Thought, maxThoughtLength)
	}

	if !params.ThinkingMethod.IsValid() {
		return types.NewMCPError("INVALID_THINKING_METHOD",
			fmt.Sprintf("unknown thinking method %q", truncateValue(string(params.ThinkingMethod))),
			map[string]interface{}{
				"field": "thinking_method",
				"valid": ValidThinkingMethods(),
			})
	}

	if !validPerspectiveTypes[params.PerspectiveType] {
		return types.NewMCPError("INVALID_PERSPECTIVE_TYPE",
			fmt.Sprintf("unknown perspective type %q", truncateValue(params.PerspectiveType)),
			map[string]interface{}{
				"field": "perspective_type",
				"valid": []string{prompt.PerspectiveInanimateObject, prompt.PerspectiveAbstractConcept, prompt.PerspectiveImpossibleBeing},
			})
	}

	if params.ThinkingMethod == MethodCombineThoughts && params.Thought2 == "" {
		return types.NewMCPError("MISSING_THOUGHT2", "thought2 is required for combine_thoughts", map[string]interface{}{
			"field": "thought2",
		})
	}
	if len(params.Thought2) > maxThoughtLength {
		return fieldTooLong("thought2", params.Thought2, maxThoughtLength)
	}
	if len(params.Constraint) > maxConstraintLength {
		return fieldTooLong("constraint", params.Constraint, maxConstraintLength)
	}
	if len(params.Domain) > maxDomainLength {
		return fieldTooLong("domain", params.Domain, maxDomainLength)
	}
	for i, c := range params.Constraints {
		if len(c) > maxConstraintLength {
			return fieldTooLong(fmt.Sprintf("constraints[%d]", i), c, maxConstraintLength)
		}
	}

	if params.Seed != 0 && (params.Seed < 1 || params.Seed > maxSeed) {
		return types.NewMCPError("INVALID_SEED",
			fmt.Sprintf("seed must be between 1 and %d", maxSeed),
			map[string]interface{}{
				"field": "seed",
				"value": params.Seed,
			})
	}
	if params.ThoughtNumber < 1 || params.ThoughtNumber > maxSequenceLength {
		return types.NewMCPError("INVALID_THOUGHT_NUMBER",
			fmt.Sprintf("thoughtNumber must be between 1 and %d", maxSequenceLength),
			map[string]interface{}{
				"field": "thoughtNumber",
				"value": params.ThoughtNumber,
			})
	}
	if params.TotalThoughts < 1 || params.TotalThoughts > maxSequenceLength {
		return types.NewMCPError("INVALID_TOTAL_THOUGHTS",
			fmt.Sprintf("totalThoughts must be between 1 and %d", maxSequenceLength),
			map[string]interface{}{
				"field": "totalThoughts",
				"value": params.TotalThoughts,
			})
	}

	for _, field := range []struct{ name, value string }{
		{"thought", params.Thought},
		{"thought2", params.Thought2},
		{"constraint", params.Constraint},
	} {
		if containsHarmfulContent(field.value) {
			return types.NewMCPError("UNSAFE_CONTENT",
				fmt.Sprintf("%s contains disallowed content", field.name),
				map[string]interface{}{
					"field": field.name,
					"value": truncateValue(field.value),
				})
		}
	}

	if err := validate.Struct(params); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return types.NewMCPError("VALIDATION_FAILED",
				fmt.Sprintf("field %s failed validation (%s)", first.Field(), first.Tag()),
				map[string]interface{}{
					"field": first.Field(),
					"tag":   first.Tag(),
				})
		}
		return types.NewMCPError("VALIDATION_FAILED", err.Error(), nil)
	}

	return nil
}

func containsHarmfulContent(value string) bool {
	for _, p := range harmfulPatterns {
		if p.MatchString(value) {
			return true
		}
	}
	return false
}

func fieldTooLong(field, value string, limit int) *types.MCPError {
	return types.NewMCPError("FIELD_TOO_LONG",
		fmt.Sprintf("%s exceeds the %d character limit", field, limit),
		map[string]interface{}{
			"field": field,
			"value": truncateValue(value),
		})
}

func truncateValue(value string) string {
	if len(value) <= truncateDetailAt {
		return value
	}
	return value[:truncateDetailAt] + "..."
}
