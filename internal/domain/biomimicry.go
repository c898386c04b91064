package domain

// BiomimicryExample describes a natural mechanism worth imitating.
type BiomimicryExample struct {
	Organism  string `json:"organism" yaml:"organism"`
	Mechanism string `json:"mechanism" yaml:"mechanism"`
	Property  string `json:"property" yaml:"property"`
}

// genericBiomimicry is the fallback example list for domains without a
// specialized entry.
var genericBiomimicry = []BiomimicryExample{
	{Organism: "gecko feet", Mechanism: "uses van der Waals forces for adhesion", Property: "reversible sticking ability"},
	{Organism: "shark skin", Mechanism: "reduces drag with dermal denticles", Property: "hydrodynamic efficiency"},
	{Organism: "lotus leaves", Mechanism: "self-clean with micro/nano structures", Property: "superhydrophobic surface"},
	{Organism: "spider silk", Mechanism: "combines strength and flexibility", Property: "optimal material properties"},
	{Organism: "bird wings", Mechanism: "generate lift through airfoil shape", Property: "efficient flight dynamics"},
	{Organism: "honeycomb", Mechanism: "maximizes storage with minimal material", Property: "structural efficiency"},
	{Organism: "cactus spines", Mechanism: "collect water from air", Property: "moisture harvesting"},
	{Organism: "butterfly wings", Mechanism: "create colors through interference", Property: "structural coloration"},
	{Organism: "echolocation", Mechanism: "uses sound waves for navigation", Property: "acoustic sensing"},
	{Organism: "photosynthesis", Mechanism: "converts light to chemical energy", Property: "energy transformation"},
}

var builtinBiomimicry = map[string][]BiomimicryExample{
	// AI & Machine Learning
	"artificial intelligence systems": {
		{Organism: "neural networks", Mechanism: "parallel information processing like brain neurons", Property: "distributed intelligence"},
		{Organism: "ant colonies", Mechanism: "swarm optimization for collective problem solving", Property: "emergent intelligence"},
		{Organism: "immune system", Mechanism: "pattern recognition and adaptive memory", Property: "learning from experience"},
		{Organism: "octopus camouflage", Mechanism: "real-time pattern adaptation", Property: "dynamic response systems"},
		{Organism: "bird flocking", Mechanism: "simple rules creating complex behavior", Property: "emergent coordination"},
	},
	"machine learning algorithms": {
		{Organism: "evolutionary processes", Mechanism: "iterative improvement through selection", Property: "optimization algorithms"},
		{Organism: "neural plasticity", Mechanism: "adapts connections based on experience", Property: "adaptive learning"},
		{Organism: "genetic algorithms", Mechanism: "combines successful traits for improvement", Property: "feature selection"},
		{Organism: "foraging behavior", Mechanism: "explores environment to find optimal resources", Property: "search optimization"},
		{Organism: "memory consolidation", Mechanism: "strengthens important connections over time", Property: "learning retention"},
	},
	"deep learning architectures": {
		{Organism: "cortical layers", Mechanism: "hierarchical processing from simple to complex", Property: "layered architecture"},
		{Organism: "visual cortex", Mechanism: "processes visual information in specialized layers", Property: "convolutional processing"},
		{Organism: "attention mechanisms", Mechanism: "focuses on relevant information while filtering noise", Property: "attention networks"},
		{Organism: "memory networks", Mechanism: "stores and retrieves information contextually", Property: "memory architectures"},
		{Organism: "neural pathways", Mechanism: "creates efficient information routing", Property: "network connectivity"},
	},

	// Internet & Web Technologies
	"web application development": {
		{Organism: "spider webs", Mechanism: "creates interconnected structures for resource capture", Property: "network architecture"},
		{Organism: "mycelial networks", Mechanism: "distributes resources through underground connections", Property: "distributed systems"},
		{Organism: "coral reefs", Mechanism: "builds complex structures through collaborative growth", Property: "modular development"},
		{Organism: "ecosystem interactions", Mechanism: "multiple species interact through defined interfaces", Property: "api design"},
		{Organism: "river networks", Mechanism: "efficiently routes water through branching systems", Property: "routing systems"},
	},
	"microservices architecture": {
		{Organism: "cellular organization", Mechanism: "specialized cells perform specific functions", Property: "service specialization"},
		{Organism: "organ systems", Mechanism: "independent organs coordinate through interfaces", Property: "loose coupling"},
		{Organism: "ecosystem niches", Mechanism: "species specialize in specific environmental roles", Property: "domain separation"},
		{Organism: "swarm intelligence", Mechanism: "simple agents create complex collective behavior", Property: "emergent functionality"},
		{Organism: "modular organisms", Mechanism: "independent modules can function separately", Property: "service independence"},
	},

	// Computer Science & Systems
	"distributed systems design": {
		{Organism: "ant colonies", Mechanism: "decentralized coordination without central control", Property: "distributed coordination"},
		{Organism: "neural networks", Mechanism: "parallel processing across multiple nodes", Property: "parallel computation"},
		{Organism: "immune system", Mechanism: "distributed defense with local and global responses", Property: "fault tolerance"},
		{Organism: "forest ecosystems", Mechanism: "resource sharing through underground networks", Property: "resource distribution"},
		{Organism: "bird flocks", Mechanism: "emergent behavior from simple local rules", Property: "emergent coordination"},
	},
	"cybersecurity architecture": {
		{Organism: "immune system", Mechanism: "distinguishes self from non-self", Property: "threat identification"},
		{Organism: "herd immunity", Mechanism: "collective protection through individual immunity", Property: "network security"},
		{Organism: "camouflage", Mechanism: "blends with environment to avoid detection", Property: "stealth protection"},
		{Organism: "warning signals", Mechanism: "alerts others to danger", Property: "threat communication"},
		{Organism: "territorial behavior", Mechanism: "defends boundaries from intruders", Property: "perimeter defense"},
	},
}
