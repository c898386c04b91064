// Package domain provides the read-only vocabulary lookup service:
// per-domain word banks, analogy sets, biomimicry examples, and
// perspective prompts, with generic fallbacks for unknown domains.
package domain

// Word bank categories. Every domain entry carries exactly these five.
const (
	CategoryCoreConcepts = "core_concepts"
	CategoryTechniques   = "techniques"
	CategoryMetaphors    = "metaphors"
	CategoryChallenges   = "challenges"
	CategoryApplications = "applications"
)

// Categories returns the fixed word bank categories in canonical order.
func Categories() []string {
	return []string{
		CategoryCoreConcepts,
		CategoryTechniques,
		CategoryMetaphors,
		CategoryChallenges,
		CategoryApplications,
	}
}

// genericWords is the cross-domain word pool used when a domain has no
// specialized vocabulary left to draw from.
var genericWords = []string{
	"butterfly", "quantum", "mirror", "whisper", "gravity", "crystal", "shadow",
	"lightning", "ocean", "mountain", "forest", "desert", "volcano", "glacier",
	"spiral", "rhythm", "harmony", "chaos", "balance", "flow", "energy",
	"transformation", "evolution", "revolution", "innovation", "discovery",
	"mystery", "adventure", "journey", "destination", "path", "bridge",
	"door", "window", "key", "lock", "treasure", "map", "compass", "star",
	"moon", "sun", "earth", "fire", "water", "air", "metal", "wood",
	"silk", "velvet", "diamond", "pearl", "gold", "silver", "copper",
	"magnet", "prism", "lens", "telescope", "microscope", "kaleidoscope",
}

var builtinWords = map[string]map[string][]string{
	// AI & Machine Learning
	"artificial intelligence systems": {
		CategoryCoreConcepts: {"intelligent agents", "reasoning", "knowledge representation", "learning", "perception", "decision making", "automation"},
		CategoryTechniques:   {"neural networks", "symbolic reasoning", "expert systems", "knowledge graphs", "inference engines", "pattern recognition"},
		CategoryMetaphors:    {"digital brain", "intelligent assistant", "cognitive system", "thinking machine", "artificial mind", "smart automation"},
		CategoryChallenges:   {"explainability", "bias mitigation", "ethical considerations", "scalability", "robustness", "human-ai interaction"},
		CategoryApplications: {"autonomous systems", "intelligent assistants", "decision support", "automation platforms", "cognitive computing"},
	},
	"machine learning algorithms": {
		CategoryCoreConcepts: {"supervised learning", "unsupervised learning", "reinforcement learning", "feature engineering", "model training", "optimization"},
		CategoryTechniques:   {"gradient descent", "cross-validation", "ensemble methods", "regularization", "hyperparameter tuning", "data preprocessing"},
		CategoryMetaphors:    {"pattern discovery", "learning from experience", "adaptive systems", "intelligent optimization", "data-driven insights"},
		CategoryChallenges:   {"overfitting", "data quality", "computational complexity", "interpretability", "generalization", "bias detection"},
		CategoryApplications: {"predictive modeling", "classification systems", "recommendation engines", "anomaly detection", "optimization algorithms"},
	},
	"deep learning architectures": {
		CategoryCoreConcepts: {"neural networks", "backpropagation", "activation functions", "layers", "weights", "gradients", "embeddings"},
		CategoryTechniques:   {"convolutional networks", "recurrent networks", "transformers", "attention mechanisms", "transfer learning", "fine-tuning"},
		CategoryMetaphors:    {"artificial neurons", "layered intelligence", "hierarchical learning", "deep understanding", "neural pathways"},
		CategoryChallenges:   {"vanishing gradients", "computational requirements", "data hunger", "black box nature", "training stability"},
		CategoryApplications: {"image recognition", "natural language processing", "speech synthesis", "generative models", "computer vision"},
	},
	"natural language processing": {
		CategoryCoreConcepts: {"language understanding", "text processing", "semantic analysis", "syntactic parsing", "language generation", "context modeling"},
		CategoryTechniques:   {"tokenization", "embedding", "attention mechanisms", "sequence modeling", "language modeling", "fine-tuning"},
		CategoryMetaphors:    {"language comprehension", "linguistic intelligence", "text understanding", "communication bridge", "semantic mapping"},
		CategoryChallenges:   {"ambiguity resolution", "context understanding", "multilingual support", "bias mitigation", "domain adaptation"},
		CategoryApplications: {"chatbots", "translation systems", "text analysis", "content generation", "information extraction"},
	},

	// Internet & Web Technologies
	"web application development": {
		CategoryCoreConcepts: {"frontend development", "backend development", "full-stack architecture", "user interface", "server-side logic", "database integration"},
		CategoryTechniques:   {"responsive design", "progressive enhancement", "mvc architecture", "rest apis", "single page applications", "server-side rendering"},
		CategoryMetaphors:    {"digital architecture", "web ecosystem", "interactive platform", "online experience", "digital gateway"},
		CategoryChallenges:   {"cross-browser compatibility", "performance optimization", "security vulnerabilities", "scalability", "user experience"},
		CategoryApplications: {"business applications", "e-commerce platforms", "content management", "social platforms", "productivity tools"},
	},
	"microservices architecture": {
		CategoryCoreConcepts: {"service decomposition", "distributed systems", "service communication", "data consistency", "fault tolerance", "service discovery"},
		CategoryTechniques:   {"containerization", "service mesh", "api gateways", "circuit breakers", "distributed tracing", "event-driven architecture"},
		CategoryMetaphors:    {"service ecosystem", "distributed intelligence", "modular system", "service network", "architectural decomposition"},
		CategoryChallenges:   {"system complexity", "data consistency", "network latency", "service coordination", "debugging difficulty"},
		CategoryApplications: {"enterprise systems", "cloud-native applications", "scalable platforms", "distributed services", "modern architectures"},
	},

	// Computer Science & Systems
	"distributed systems design": {
		CategoryCoreConcepts: {"system architecture", "scalability", "fault tolerance", "consistency", "distributed computing", "system coordination"},
		CategoryTechniques:   {"microservices", "load balancing", "replication", "sharding", "consensus algorithms", "distributed databases"},
		CategoryMetaphors:    {"system orchestra", "distributed intelligence", "coordinated network", "scalable architecture", "resilient ecosystem"},
		CategoryChallenges:   {"consistency guarantees", "network partitions", "system complexity", "debugging difficulty", "performance optimization"},
		CategoryApplications: {"cloud systems", "web services", "distributed databases", "microservices architecture", "global platforms"},
	},
	"cybersecurity architecture": {
		CategoryCoreConcepts: {"security design", "threat modeling", "defense strategies", "risk assessment", "security frameworks", "protection systems"},
		CategoryTechniques:   {"security architecture", "threat analysis", "vulnerability assessment", "security controls", "incident response", "compliance"},
		CategoryMetaphors:    {"digital fortress", "security shield", "defense system", "protection framework", "security ecosystem"},
		CategoryChallenges:   {"evolving threats", "security complexity", "user experience balance", "compliance requirements", "cost effectiveness"},
		CategoryApplications: {"enterprise security", "network protection", "application security", "data protection", "infrastructure security"},
	},

	// Product Development & Management
	"digital product strategy": {
		CategoryCoreConcepts: {"product vision", "market positioning", "competitive advantage", "user value proposition", "product roadmap", "strategic planning"},
		CategoryTechniques:   {"market research", "competitive analysis", "user research", "strategic planning", "roadmap development", "stakeholder alignment"},
		CategoryMetaphors:    {"product compass", "strategic direction", "market navigation", "value creation", "product leadership"},
		CategoryChallenges:   {"market uncertainty", "competitive pressure", "resource allocation", "stakeholder alignment", "strategic execution"},
		CategoryApplications: {"product planning", "market strategy", "competitive positioning", "product vision", "strategic development"},
	},
	"agile product development": {
		CategoryCoreConcepts: {"iterative development", "customer collaboration", "adaptive planning", "rapid delivery", "continuous improvement", "team empowerment"},
		CategoryTechniques:   {"scrum methodology", "sprint planning", "user stories", "retrospectives", "continuous delivery", "stakeholder collaboration"},
		CategoryMetaphors:    {"adaptive development", "iterative evolution", "collaborative creation", "rapid iteration", "flexible delivery"},
		CategoryChallenges:   {"scope management", "stakeholder alignment", "quality maintenance", "team coordination", "change management"},
		CategoryApplications: {"software development", "product delivery", "team management", "project execution", "continuous improvement"},
	},

	// Engineering & Infrastructure
	"devops automation systems": {
		CategoryCoreConcepts: {"deployment automation", "infrastructure automation", "continuous integration", "operational efficiency", "system reliability", "automated workflows"},
		CategoryTechniques:   {"ci/cd pipelines", "infrastructure as code", "automated testing", "deployment automation", "monitoring automation", "workflow orchestration"},
		CategoryMetaphors:    {"automation engine", "deployment pipeline", "operational automation", "system orchestration", "efficiency multiplier"},
		CategoryChallenges:   {"automation complexity", "system reliability", "deployment risks", "tool integration", "operational overhead"},
		CategoryApplications: {"software deployment", "infrastructure management", "operational automation", "system reliability", "development workflows"},
	},
	"scalable system architecture": {
		CategoryCoreConcepts: {"horizontal scaling", "system design", "performance optimization", "load distribution", "architectural patterns", "scalability planning"},
		CategoryTechniques:   {"load balancing", "caching strategies", "database scaling", "microservices architecture", "performance optimization", "capacity planning"},
		CategoryMetaphors:    {"scalable foundation", "growth architecture", "performance scaling", "system expansion", "architectural flexibility"},
		CategoryChallenges:   {"scalability bottlenecks", "system complexity", "performance optimization", "resource management", "architectural decisions"},
		CategoryApplications: {"web applications", "distributed systems", "cloud platforms", "high-traffic systems", "enterprise applications"},
	},
	"site reliability engineering": {
		CategoryCoreConcepts: {"system reliability", "operational excellence", "error budgets", "service level objectives", "incident management", "reliability automation"},
		CategoryTechniques:   {"reliability monitoring", "incident response", "capacity planning", "automation development", "performance optimization", "reliability testing"},
		CategoryMetaphors:    {"reliability guardian", "operational excellence", "system stewardship", "reliability engineering", "service reliability"},
		CategoryChallenges:   {"reliability targets", "operational complexity", "incident management", "automation challenges", "performance optimization"},
		CategoryApplications: {"service reliability", "operational excellence", "system monitoring", "incident management", "performance optimization"},
	},
}
