package prompt

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/josephgoksu/thinkwing/internal/creativity"
	"github.com/josephgoksu/thinkwing/internal/domain"
)

// Generator assembles final prompt text. It is safe for concurrent use:
// the lookup tables are immutable and every call receives its own
// random source.
type Generator struct {
	algs *creativity.Algorithms
}

// NewGenerator creates a Generator over the given vocabulary lookup.
func NewGenerator(lookup *domain.Lookup) *Generator {
	return &Generator{algs: creativity.NewAlgorithms(lookup)}
}

// Algorithms exposes the underlying creativity algorithms.
func (g *Generator) Algorithms() *creativity.Algorithms {
	return g.algs
}

// BranchPrompt wraps three sampled technique results in a branching
// frame. A nil technique picks one at random from the full set.
func (g *Generator) BranchPrompt(rng *rand.Rand, thought string, ctx *creativity.Context, technique *creativity.Technique) string {
	chosen := creativity.Technique("")
	if technique != nil {
		chosen = *technique
	} else {
		all := creativity.Techniques()
		chosen = all[rng.Intn(len(all))]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Starting with the thought: '%s'\n\n", thought)

	switch chosen {
	case creativity.TechniqueSCAMPER:
		variations := creativity.Sample(rng, g.algs.ApplySCAMPER(rng, thought, ctx), 3)
		sb.WriteString("Using SCAMPER technique, explore these directions:\n")
		writeNumbered(&sb, variations)
	case creativity.TechniqueRandomWord:
		associations := creativity.Sample(rng, g.algs.RandomWordAssociations(rng, thought, 2, ctx), 3)
		sb.WriteString("Using random word association, explore:\n")
		writeNumbered(&sb, associations)
	case creativity.TechniqueAnalogicalThinking:
		analogies := creativity.Sample(rng, g.algs.ApplyAnalogicalThinking(rng, thought, "", ctx), 3)
		sb.WriteString("Using analogical thinking, consider:\n")
		writeNumbered(&sb, analogies)
	case creativity.TechniqueBiomimicry:
		prompts := creativity.Sample(rng, g.algs.ApplyBiomimicry(rng, thought, ctx), 3)
		sb.WriteString("Using biomimicry inspiration, explore:\n")
		writeNumbered(&sb, prompts)
	default:
		sb.WriteString("Generate 3 distinct creative branches, each exploring a completely different direction:\n")
		sb.WriteString("1. A practical/functional approach\n")
		sb.WriteString("2. An artistic/aesthetic approach\n")
		sb.WriteString("3. A radical/disruptive approach\n")
	}

	sb.WriteString("\nFor each direction, provide a detailed exploration that builds meaningfully on the original thought.")
	return sb.String()
}

// BasicBranchPrompt is the branching frame without any creativity
// technique applied.
func (g *Generator) BasicBranchPrompt(thought string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Starting with the thought: '%s'\n\n", thought)
	sb.WriteString("Generate 3 distinct creative branches, each exploring a completely different direction:\n")
	sb.WriteString("1. A practical/functional approach\n")
	sb.WriteString("2. An artistic/aesthetic approach\n")
	sb.WriteString("3. A radical/disruptive approach\n")
	sb.WriteString("\nFor each direction, provide a detailed exploration that builds meaningfully on the original thought.")
	return sb.String()
}

// PerspectivePrompt reframes the thought from an unusual viewpoint.
// With useSixHats it expands the full six-hats analysis instead.
func (g *Generator) PerspectivePrompt(rng *rand.Rand, thought, perspectiveType string, useSixHats bool, ctx *creativity.Context) string {
	if useSixHats {
		hats := g.algs.ApplySixThinkingHats(thought, ctx)

		var sb strings.Builder
		fmt.Fprintf(&sb, "Analyzing the thought: '%s'\n\n", thought)
		sb.WriteString("Using the Six Thinking Hats framework:\n\n")
		for _, hat := range creativity.HatNames {
			fmt.Fprintf(&sb, "**%s:**\n", hat)
			for _, p := range hats[hat] {
				fmt.Fprintf(&sb, "- %s\n", p)
			}
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Now, synthesize insights from all perspectives while viewing through the lens of a %s.", perspectiveType)
		return sb.String()
	}

	templates := perspectiveTemplates[perspectiveType]
	if len(templates) == 0 {
		return fmt.Sprintf("View this thought from the perspective of a %s: %s\nProvide a radically different interpretation that reveals hidden aspects or possibilities.", perspectiveType, thought)
	}
	template := templates[rng.Intn(len(templates))]
	out := strings.ReplaceAll(template, "{thought}", thought)
	return strings.ReplaceAll(out, "{perspective_type}", perspectiveType)
}

// ConstraintPrompt applies a creative constraint to the thought. With
// useRelaxation it frames the first four relaxation prompts instead of
// a single template.
func (g *Generator) ConstraintPrompt(rng *rand.Rand, thought, constraint string, useRelaxation bool) string {
	if useRelaxation {
		relaxations := g.algs.ApplyConstraintRelaxation(thought, []string{constraint})
		if len(relaxations) > 4 {
			relaxations = relaxations[:4]
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Working with the thought: '%s'\n\n", thought)
		fmt.Fprintf(&sb, "First, apply the constraint: '%s'\n", constraint)
		sb.WriteString("Then explore what becomes possible by relaxing this constraint:\n\n")
		writeNumbered(&sb, relaxations)
		sb.WriteString("\nFinally, find creative ways to achieve the relaxed possibilities while still honoring the original constraint.")
		return sb.String()
	}

	template := constraintTemplates[rng.Intn(len(constraintTemplates))]
	out := strings.ReplaceAll(template, "{thought}", thought)
	return strings.ReplaceAll(out, "{constraint}", constraint)
}

// CombinationPrompt merges two thoughts. With useMorphological it emits
// the structured morphological-analysis instructions instead of a
// single template.
func (g *Generator) CombinationPrompt(rng *rand.Rand, thought1, thought2 string, useMorphological bool) string {
	if useMorphological {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Combining thoughts:\n1. '%s'\n2. '%s'\n\n", thought1, thought2)
		sb.WriteString("Using morphological analysis, break down each thought into key dimensions:\n\n")
		for i := 1; i <= 2; i++ {
			fmt.Fprintf(&sb, "For Thought %d, identify:\n", i)
			sb.WriteString("- Core function/purpose\n")
			sb.WriteString("- Key components/elements\n")
			sb.WriteString("- Operating principles\n")
			sb.WriteString("- Target context/environment\n\n")
		}
		sb.WriteString("Now create novel combinations by mixing and matching dimensions across both thoughts. Generate at least 3 hybrid concepts that combine different dimensional aspects in unexpected ways.")
		return sb.String()
	}

	template := combinationTemplates[rng.Intn(len(combinationTemplates))]
	out := strings.ReplaceAll(template, "{thought1}", thought1)
	return strings.ReplaceAll(out, "{thought2}", thought2)
}

// ReverseBrainstormingPrompt frames the fixed failure-mode questions,
// ending with the inversion instruction.
func (g *Generator) ReverseBrainstormingPrompt(thought string) string {
	prompts := g.algs.ApplyReverseBrainstorming(thought)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Reverse brainstorming for: '%s'\n\n", thought)
	sb.WriteString("First, explore how to make this idea fail:\n\n")
	writeNumbered(&sb, prompts[:len(prompts)-1])
	fmt.Fprintf(&sb, "\n%s", prompts[len(prompts)-1])
	return sb.String()
}

func writeNumbered(sb *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(sb, "%d. %s\n", i+1, item)
	}
}
