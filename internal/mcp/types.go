// Package mcp provides types and handlers for the divergent-thinking
// MCP tool.
package mcp

// === Thinking Methods ===

// ThinkingMethod defines the valid methods for the divergent-thinking tool.
type ThinkingMethod string

const (
	MethodStructuredProcess    ThinkingMethod = "structured_process"
	MethodGenerateBranches     ThinkingMethod = "generate_branches"
	MethodPerspectiveShift     ThinkingMethod = "perspective_shift"
	MethodCreativeConstraint   ThinkingMethod = "creative_constraint"
	MethodCombineThoughts      ThinkingMethod = "combine_thoughts"
	MethodReverseBrainstorming ThinkingMethod = "reverse_brainstorming"
)

// ValidThinkingMethods returns all valid thinking methods.
func ValidThinkingMethods() []ThinkingMethod {
	return []ThinkingMethod{
		MethodStructuredProcess,
		MethodGenerateBranches,
		MethodPerspectiveShift,
		MethodCreativeConstraint,
		MethodCombineThoughts,
		MethodReverseBrainstorming,
	}
}

// IsValid checks if the method is a valid thinking method.
func (m ThinkingMethod) IsValid() bool {
	switch m {
	case MethodStructuredProcess, MethodGenerateBranches, MethodPerspectiveShift,
		MethodCreativeConstraint, MethodCombineThoughts, MethodReverseBrainstorming:
		return true
	}
	return false
}

// === Tool Parameters ===

// DefaultConstraint is applied when creative_constraint receives none.
const DefaultConstraint = "introduce an impossible element"

// DivergentToolParams defines the parameters for the divergent-thinking tool.
type DivergentToolParams struct {
	// Thought is the idea to explore (1-5000 characters). Required for
	// every method.
	Thought string `json:"thought" validate:"required,max=5000"`

	// ThinkingMethod selects the operation.
	// One of: structured_process, generate_branches, perspective_shift,
	// creative_constraint, combine_thoughts, reverse_brainstorming.
	// Defaults to structured_process.
	ThinkingMethod ThinkingMethod `json:"thinking_method,omitempty"`

	// Thought2 is the second thought. Required for: combine_thoughts.
	Thought2 string `json:"thought2,omitempty" validate:"omitempty,max=5000"`

	// Constraint applied by creative_constraint. Defaults to
	// "introduce an impossible element".
	Constraint string `json:"constraint,omitempty" validate:"omitempty,max=500"`

	// PerspectiveType selects the viewpoint for perspective_shift.
	// One of: inanimate_object, abstract_concept, impossible_being.
	// Defaults to inanimate_object.
	PerspectiveType string `json:"perspective_type,omitempty"`

	// UseAdvancedTechniques switches each method to its expanded form
	// (six hats, constraint relaxation, morphological analysis,
	// technique-driven branching).
	UseAdvancedTechniques bool `json:"use_advanced_techniques,omitempty"`

	// Seed makes the output deterministic. Optional, 1-999999.
	Seed int64 `json:"seed,omitempty" validate:"omitempty,min=1,max=999999"`

	// Domain selects specialized vocabulary (e.g. "machine learning
	// algorithms"). Unknown domains fall back to generic data.
	Domain string `json:"domain,omitempty" validate:"omitempty,max=200"`

	// Constraints feed constraint relaxation and challenge-aware word
	// selection.
	Constraints []string `json:"constraints,omitempty" validate:"omitempty,dive,max=500"`

	// Structured-process sequencing. ThoughtNumber and TotalThoughts
	// default to 1 and 3; NextThoughtNeeded defaults to true.
	ThoughtNumber     int   `json:"thoughtNumber,omitempty" validate:"omitempty,min=1,max=1000"`
	TotalThoughts     int   `json:"totalThoughts,omitempty" validate:"omitempty,min=1,max=1000"`
	NextThoughtNeeded *bool `json:"nextThoughtNeeded,omitempty"`
	GenerateBranches  bool  `json:"generate_branches,omitempty"`
}

// ThinkToolResult represents the response from the divergent-thinking tool.
type ThinkToolResult struct {
	Method  string `json:"method"`
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}
