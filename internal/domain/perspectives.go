package domain

// Perspective keys map onto the White/Red/Black/Yellow thinking hats.
const (
	PerspectiveFactual   = "factual"
	PerspectiveEmotional = "emotional"
	PerspectiveCritical  = "critical"
	PerspectivePositive  = "positive"
)

var builtinPerspectives = map[string]map[string][]string{
	"artificial intelligence systems": {
		PerspectiveFactual: {
			"What AI performance metrics validate this approach?",
			"What training data requirements exist?",
			"What computational resources are needed?",
			"What accuracy benchmarks apply?",
		},
		PerspectiveEmotional: {
			"How do users feel about AI making this decision?",
			"What trust concerns arise with this AI system?",
			"How does this impact human-AI interaction?",
			"What ethical concerns do stakeholders have?",
		},
		PerspectiveCritical: {
			"What bias risks exist in this AI system?",
			"How could this AI system fail or be misused?",
			"What privacy concerns arise?",
			"What happens when the AI encounters edge cases?",
		},
		PerspectivePositive: {
			"How could this AI system improve decision-making?",
			"What efficiency gains are possible?",
			"How could this democratize AI capabilities?",
			"What new possibilities does this AI enable?",
		},
	},
	"machine learning algorithms": {
		PerspectiveFactual: {
			"What training data quality metrics support this?",
			"What model performance benchmarks exist?",
			"What computational complexity analysis applies?",
			"What validation methodology is used?",
		},
		PerspectiveEmotional: {
			"How do data scientists feel about this algorithm's interpretability?",
			"What concerns do stakeholders have about black-box decisions?",
			"How does this impact user confidence in predictions?",
			"What excitement or anxiety does this algorithm create?",
		},
		PerspectiveCritical: {
			"What overfitting risks exist with this algorithm?",
			"How could this algorithm fail on edge cases?",
			"What bias could be introduced through training data?",
			"What happens when the algorithm encounters novel scenarios?",
		},
		PerspectivePositive: {
			"How could this algorithm improve prediction accuracy?",
			"What automation benefits are possible?",
			"How could this reduce manual analysis time?",
			"What new insights could this algorithm reveal?",
		},
	},
}
