package mcp

import (
	"math/rand"
	"time"

	"github.com/josephgoksu/thinkwing/internal/creativity"
	"github.com/josephgoksu/thinkwing/internal/prompt"
)

// HandleThinkTool executes the divergent-thinking tool. Validation
// failures are reported through the result's Error field rather than a
// Go error, so the transport layer can render them for the caller.
func HandleThinkTool(gen *prompt.Generator, params DivergentToolParams) (*ThinkToolResult, error) {
	NormalizeParams(&params)

	if mcpErr := ValidateParams(&params); mcpErr != nil {
		return &ThinkToolResult{
			Method: string(params.ThinkingMethod),
			Error:  mcpErr.Message,
		}, nil
	}

	rng := newRNG(params.Seed)
	ctx := buildContext(params)

	var content string
	switch params.ThinkingMethod {
	case MethodStructuredProcess:
		content = buildStructuredProcess(rng, gen, params, ctx)
	case MethodGenerateBranches:
		if params.UseAdvancedTechniques {
			content = gen.BranchPrompt(rng, params.Thought, ctx, nil)
		} else {
			content = gen.BasicBranchPrompt(params.Thought)
		}
	case MethodPerspectiveShift:
		content = gen.PerspectivePrompt(rng, params.Thought, params.PerspectiveType, params.UseAdvancedTechniques, ctx)
	case MethodCreativeConstraint:
		constraint := params.Constraint
		if constraint == "" {
			constraint = DefaultConstraint
		}
		content = gen.ConstraintPrompt(rng, params.Thought, constraint, params.UseAdvancedTechniques)
	case MethodCombineThoughts:
		content = gen.CombinationPrompt(rng, params.Thought, params.Thought2, params.UseAdvancedTechniques)
	case MethodReverseBrainstorming:
		content = gen.ReverseBrainstormingPrompt(params.Thought)
	}

	return &ThinkToolResult{
		Method:  string(params.ThinkingMethod),
		Content: content,
	}, nil
}

// newRNG builds the per-call random source. Seeded calls reproduce
// their output exactly; unseeded calls vary between invocations. There
// is deliberately no shared source, so concurrent tool calls never
// contend.
func newRNG(seed int64) *rand.Rand {
	if seed > 0 {
		return rand.New(rand.NewSource(seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func buildContext(params DivergentToolParams) *creativity.Context {
	if params.Domain == "" && len(params.Constraints) == 0 {
		return nil
	}
	return &creativity.Context{
		Domain:      params.Domain,
		Constraints: params.Constraints,
	}
}
