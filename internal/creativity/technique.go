// Package creativity implements the prompt composition techniques:
// SCAMPER, random word association, analogical thinking, reverse
// brainstorming, six thinking hats, biomimicry, and constraint
// relaxation, all driven by an explicit per-call random source.
package creativity

// Technique identifies one of the supported creativity techniques.
type Technique string

const (
	TechniqueSCAMPER               Technique = "scamper"
	TechniqueRandomWord            Technique = "random_word"
	TechniqueMorphologicalAnalysis Technique = "morphological_analysis"
	TechniqueAnalogicalThinking    Technique = "analogical_thinking"
	TechniqueReverseBrainstorming  Technique = "reverse_brainstorming"
	TechniqueSixThinkingHats       Technique = "six_thinking_hats"
	TechniqueBiomimicry            Technique = "biomimicry"
	TechniqueConstraintRelaxation  Technique = "constraint_relaxation"
)

// Techniques returns all valid techniques in declaration order.
func Techniques() []Technique {
	return []Technique{
		TechniqueSCAMPER,
		TechniqueRandomWord,
		TechniqueMorphologicalAnalysis,
		TechniqueAnalogicalThinking,
		TechniqueReverseBrainstorming,
		TechniqueSixThinkingHats,
		TechniqueBiomimicry,
		TechniqueConstraintRelaxation,
	}
}

// IsValid checks if the technique is a known value.
func (t Technique) IsValid() bool {
	switch t {
	case TechniqueSCAMPER, TechniqueRandomWord, TechniqueMorphologicalAnalysis,
		TechniqueAnalogicalThinking, TechniqueReverseBrainstorming,
		TechniqueSixThinkingHats, TechniqueBiomimicry, TechniqueConstraintRelaxation:
		return true
	}
	return false
}
