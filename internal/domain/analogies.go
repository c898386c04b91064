package domain

// genericAnalogies is the cross-domain analogy table returned for
// domains without a specialized entry.
var genericAnalogies = map[string][]string{
	"nature":         {"ant colonies", "bird flocks", "tree root systems", "coral reefs", "beehives"},
	"sports":         {"team coordination", "strategic plays", "training regimens", "equipment design", "performance optimization"},
	"music":          {"orchestral harmony", "improvisation", "rhythm patterns", "instrument design", "sound mixing"},
	"cooking":        {"recipe development", "flavor combinations", "cooking techniques", "kitchen organization", "presentation"},
	"architecture":   {"structural design", "space utilization", "material selection", "environmental integration", "aesthetic balance"},
	"transportation": {"traffic flow", "route optimization", "vehicle design", "logistics systems", "navigation methods"},
	"games":          {"rule systems", "strategy development", "player interaction", "challenge progression", "reward mechanisms"},
}

var builtinAnalogies = map[string]map[string][]string{
	// AI & Machine Learning
	"artificial intelligence systems": {
		"biological_systems":    {"neural networks", "immune systems", "evolutionary processes", "swarm behavior", "brain plasticity"},
		"cognitive_processes":   {"learning patterns", "memory formation", "pattern recognition", "decision making", "problem solving"},
		"mathematical_concepts": {"optimization algorithms", "statistical inference", "graph theory", "probability models", "linear algebra"},
	},
	"machine learning algorithms": {
		"mathematical_systems": {"optimization functions", "statistical models", "probability distributions", "algorithmic processes", "computational methods"},
		"learning_processes":   {"pattern recognition", "adaptive behavior", "experience accumulation", "skill development", "knowledge acquisition"},
		"biological_learning":  {"neural adaptation", "memory formation", "skill acquisition", "pattern recognition", "behavioral conditioning"},
	},
	"deep learning architectures": {
		"architectural_systems":  {"layered structures", "hierarchical design", "modular construction", "interconnected networks", "scalable frameworks"},
		"information_processing": {"hierarchical processing", "feature extraction", "pattern recognition", "information flow", "data transformation"},
		"biological_networks":    {"neural hierarchies", "brain architecture", "synaptic connections", "neural pathways", "cortical layers"},
	},

	// Internet & Web Technologies
	"web application development": {
		"architectural_systems":  {"building construction", "infrastructure design", "modular assembly", "foundation systems", "structural engineering"},
		"communication_networks": {"postal systems", "telephone networks", "transportation hubs", "information exchange", "message routing"},
		"user_interfaces":        {"storefront design", "navigation systems", "interactive displays", "user experience", "accessibility design"},
	},
	"microservices architecture": {
		"organizational_systems": {"team coordination", "departmental structure", "distributed organizations", "autonomous units", "collaborative networks"},
		"biological_systems":     {"cellular organization", "organ systems", "ecosystem interactions", "symbiotic relationships", "distributed intelligence"},
		"urban_planning":         {"city districts", "infrastructure networks", "service distribution", "resource allocation", "interconnected systems"},
	},

	// Computer Science & Systems
	"distributed systems design": {
		"organizational_networks": {"corporate structures", "government systems", "collaborative networks", "distributed teams", "federated organizations"},
		"biological_ecosystems":   {"forest networks", "mycelial connections", "ant colonies", "bird flocks", "ecosystem interactions"},
		"infrastructure_systems":  {"power grids", "transportation networks", "communication systems", "supply chains", "utility distribution"},
	},
	"cybersecurity architecture": {
		"defense_systems":     {"military fortifications", "castle defenses", "security protocols", "surveillance networks", "protective barriers"},
		"biological_immunity": {"immune responses", "pathogen detection", "cellular defense", "adaptive immunity", "threat recognition"},
		"physical_security":   {"access control", "perimeter defense", "monitoring systems", "threat detection", "security layers"},
	},

	// Product Development & Management
	"digital product strategy": {
		"business_ecosystems":    {"market positioning", "competitive landscapes", "value networks", "customer ecosystems", "strategic alliances"},
		"evolutionary_processes": {"adaptation strategies", "survival mechanisms", "environmental fitness", "competitive advantage", "evolutionary pressure"},
		"game_theory":            {"strategic moves", "competitive dynamics", "player interactions", "winning strategies", "market games"},
	},
	"agile product development": {
		"adaptive_systems":       {"evolutionary processes", "responsive organisms", "adaptive behavior", "iterative improvement", "environmental adaptation"},
		"collaborative_networks": {"team sports", "orchestra performance", "collaborative creation", "group dynamics", "collective intelligence"},
		"iterative_processes":    {"scientific method", "artistic creation", "skill development", "continuous improvement", "learning cycles"},
	},

	// Engineering & Infrastructure
	"devops automation systems": {
		"manufacturing_systems": {"assembly lines", "quality control", "automated production", "process optimization", "continuous flow"},
		"biological_processes":  {"metabolic pathways", "cellular automation", "homeostatic regulation", "automated responses", "system maintenance"},
		"orchestration_systems": {"conductor coordination", "traffic management", "workflow automation", "process synchronization", "system coordination"},
	},
	"scalable system architecture": {
		"growth_systems":         {"organic growth", "fractal patterns", "scalable structures", "modular expansion", "adaptive scaling"},
		"infrastructure_scaling": {"city planning", "transportation scaling", "utility expansion", "network growth", "capacity planning"},
		"biological_scaling":     {"organism growth", "population dynamics", "ecosystem scaling", "adaptive capacity", "resource scaling"},
	},
	"site reliability engineering": {
		"medical_systems":            {"health monitoring", "preventive care", "emergency response", "system diagnostics", "recovery procedures"},
		"infrastructure_maintenance": {"preventive maintenance", "system monitoring", "failure prevention", "reliability assurance", "operational excellence"},
		"ecosystem_resilience":       {"system stability", "adaptive capacity", "disturbance recovery", "resilience mechanisms", "sustainable operation"},
	},
}
