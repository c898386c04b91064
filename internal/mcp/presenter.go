package mcp

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/josephgoksu/thinkwing/internal/creativity"
	"github.com/josephgoksu/thinkwing/internal/prompt"
)

// FormatError renders a general error as markdown for MCP clients.
func FormatError(message string) string {
	return fmt.Sprintf("## ❌ Error\n\n**Details**: %s", message)
}

// FormatValidationError renders a field-level validation error.
func FormatValidationError(field, message string) string {
	return fmt.Sprintf("## ❌ Validation Error\n\n**Field**: `%s`\n**Details**: %s", field, message)
}

// buildStructuredProcess frames one step of a multi-turn thought
// sequence. Branch exploration is embedded on request; the final step
// (explicitly signalled or sequence exhausted) closes with a synthesis
// instruction instead of a continuation.
func buildStructuredProcess(rng *rand.Rand, gen *prompt.Generator, params DivergentToolParams, ctx *creativity.Context) string {
	next := true
	if params.NextThoughtNeeded != nil {
		next = *params.NextThoughtNeeded
	}
	final := !next || params.ThoughtNumber >= params.TotalThoughts

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Thought %d of %d\n\n", params.ThoughtNumber, params.TotalThoughts)
	fmt.Fprintf(&sb, "Current thought: '%s'\n\n", params.Thought)

	switch {
	case params.UseAdvancedTechniques:
		sb.WriteString(gen.BranchPrompt(rng, params.Thought, ctx, nil))
		sb.WriteString("\n\n")
	case params.GenerateBranches:
		sb.WriteString(gen.BasicBranchPrompt(params.Thought))
		sb.WriteString("\n\n")
	default:
		sb.WriteString("Explore this thought further. What assumptions does it rest on? What adjacent ideas does it suggest? What would a skeptic and an enthusiast each say about it?\n\n")
	}

	if final {
		sb.WriteString("This is the final thought in the sequence. Synthesize the exploration into the most promising direction and state it as a concrete, actionable next step.")
	} else {
		fmt.Fprintf(&sb, "When ready, continue with thought %d of %d, building on what this exploration reveals.", params.ThoughtNumber+1, params.TotalThoughts)
	}
	return sb.String()
}
