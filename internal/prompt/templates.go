// Package prompt assembles the final prompt text for each thinking
// method, wrapping the creativity algorithms in fixed framing templates.
package prompt

// Perspective types supported by the perspective-shift templates.
const (
	PerspectiveInanimateObject = "inanimate_object"
	PerspectiveAbstractConcept = "abstract_concept"
	PerspectiveImpossibleBeing = "impossible_being"
)

// perspectiveTemplates holds three candidate templates per perspective
// type. Placeholders: {thought}, {perspective_type}.
var perspectiveTemplates = map[string][]string{
	PerspectiveInanimateObject: {
		"You are a {perspective_type} observing '{thought}'. What do you notice that humans miss? How would you interact with or modify this concept based on your unique properties?",
		"As a {perspective_type}, you have no emotions or preconceptions. Analyze '{thought}' purely from your material/functional perspective. What inefficiencies or opportunities do you detect?",
		"Imagine '{thought}' from the viewpoint of a {perspective_type} that has existed for centuries. What patterns and cycles do you observe that short-lived humans cannot see?",
	},
	PerspectiveAbstractConcept: {
		"You are the embodiment of {perspective_type}. How does '{thought}' align with or challenge your fundamental nature? What would you change to make it more harmonious with your essence?",
		"As {perspective_type} personified, you see '{thought}' through the lens of your abstract principles. What deeper meanings and connections do you perceive?",
		"From your perspective as {perspective_type}, '{thought}' is just one manifestation of larger patterns. What other forms could it take while maintaining its essential relationship to you?",
	},
	PerspectiveImpossibleBeing: {
		"You are a {perspective_type} with abilities that defy physical laws. How would you approach '{thought}' using your impossible capabilities? What solutions become available to you?",
		"As a {perspective_type}, you exist outside normal constraints of time, space, and logic. Reimagine '{thought}' from your transcendent perspective.",
		"You are a {perspective_type} who experiences reality in ways humans cannot comprehend. How would you transform '{thought}' based on your alien understanding?",
	},
}

// constraintTemplates are the candidate templates for single-constraint
// prompts. Placeholders: {thought}, {constraint}.
var constraintTemplates = []string{
	"Transform '{thought}' by applying the constraint: '{constraint}'. Don't just add the constraint—let it fundamentally reshape the concept's DNA.",
	"The constraint '{constraint}' isn't a limitation—it's a creative catalyst for '{thought}'. How does this constraint unlock new possibilities?",
	"Imagine '{thought}' was born in a world where '{constraint}' is the natural law. How would it evolve differently?",
	"Use '{constraint}' as a lens to reveal hidden aspects of '{thought}' that are normally invisible.",
	"The constraint '{constraint}' forces '{thought}' to find creative workarounds. What elegant solutions emerge?",
}

// combinationTemplates are the candidate templates for merging two
// thoughts. Placeholders: {thought1}, {thought2}.
var combinationTemplates = []string{
	"'{thought1}' and '{thought2}' are two ingredients in a recipe for innovation. What unexpected dish do they create when combined with the right catalyst?",
	"Imagine '{thought1}' and '{thought2}' are two different species that must evolve together. What hybrid offspring would emerge from their symbiosis?",
	"'{thought1}' and '{thought2}' are two musical themes. Compose a symphony that weaves them together into something greater than the sum of their parts.",
	"If '{thought1}' and '{thought2}' were two puzzle pieces from different puzzles, what new picture would emerge when they're forced to fit together?",
	"'{thought1}' and '{thought2}' are two different languages. Create a new form of communication that incorporates the unique strengths of both.",
}
