package creativity

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/josephgoksu/thinkwing/internal/domain"
)

// Hat names for the six thinking hats technique, in presentation order.
var HatNames = []string{
	"White Hat (Facts)",
	"Red Hat (Emotions)",
	"Black Hat (Critical)",
	"Yellow Hat (Positive)",
	"Green Hat (Creative)",
	"Blue Hat (Process)",
}

// SCAMPER categories in fixed output order.
var scamperCategories = []string{
	"Substitute", "Combine", "Adapt", "Modify", "Put to other uses", "Eliminate", "Reverse",
}

// Default constraints substituted when the caller provides none.
var defaultConstraints = []string{
	"budget limitations",
	"current technology",
	"physical laws",
	"social conventions",
	"time constraints",
}

// Algorithms composes creativity prompts from the vocabulary lookup.
// It holds no mutable state; all randomness flows through the explicit
// *rand.Rand each method receives.
type Algorithms struct {
	lookup *domain.Lookup
}

// NewAlgorithms creates an Algorithms over the given lookup.
func NewAlgorithms(lookup *domain.Lookup) *Algorithms {
	return &Algorithms{lookup: lookup}
}

// selectWords picks contextually relevant words for a domain/category:
// the requested category first, then goal/constraint-driven secondary
// categories, then the domain's other categories, then the generic pool.
// The result is truncated to count.
func (a *Algorithms) selectWords(rng *rand.Rand, dom string, ctx *Context, category string, count int) []string {
	var selected []string

	if available := a.lookup.Words(dom, category); len(available) > 0 {
		selected = append(selected, Sample(rng, available, count)...)
	}

	if remaining := count - len(selected); remaining > 0 && ctx != nil {
		if len(ctx.Goals) > 0 && category != domain.CategoryTechniques {
			if words := a.lookup.Words(dom, domain.CategoryTechniques); len(words) > 0 {
				selected = append(selected, Sample(rng, words, remaining/2)...)
			}
		}
		if remaining = count - len(selected); remaining > 0 && len(ctx.Constraints) > 0 && category != domain.CategoryChallenges {
			if words := a.lookup.Words(dom, domain.CategoryChallenges); len(words) > 0 {
				selected = append(selected, Sample(rng, words, remaining)...)
			}
		}
	}

	if remaining := count - len(selected); remaining > 0 {
		var others []string
		for _, cat := range domain.Categories() {
			if cat != category {
				others = append(others, a.lookup.Words(dom, cat)...)
			}
		}
		if len(others) > 0 {
			selected = append(selected, Sample(rng, others, remaining)...)
		}
		if remaining = count - len(selected); remaining > 0 {
			selected = append(selected, Sample(rng, a.lookup.GenericWords(), remaining)...)
		}
	}

	if len(selected) > count {
		selected = selected[:count]
	}
	return selected
}

// wordAt returns words[i], or fallback when the slice is too short.
func wordAt(words []string, i int, fallback string) string {
	if i < len(words) {
		return words[i]
	}
	return fallback
}

// ApplySCAMPER returns exactly seven prompts, one per SCAMPER category,
// each prefixed with its bracketed category label.
func (a *Algorithms) ApplySCAMPER(rng *rand.Rand, idea string, ctx *Context) []string {
	dom := ctx.EffectiveDomain()

	domainWords := a.selectWords(rng, dom, ctx, domain.CategoryCoreConcepts, 5)
	techniqueWords := a.selectWords(rng, dom, ctx, domain.CategoryTechniques, 3)
	applicationWords := a.selectWords(rng, dom, ctx, domain.CategoryApplications, 3)

	variants := map[string][]string{
		"Substitute": {
			fmt.Sprintf("What if you replaced key components of '%s' with %s?", idea, wordAt(domainWords, 0, "innovative elements")),
			fmt.Sprintf("How could %s substitute current methods in '%s'?", wordAt(techniqueWords, 0, "new approaches"), idea),
			fmt.Sprintf("What %s-specific alternatives exist for the core elements of '%s'?", dom, idea),
			fmt.Sprintf("How could '%s' substitute traditional solutions in %s?", idea, dom),
		},
		"Combine": {
			fmt.Sprintf("How could '%s' merge with %s to create something new in %s?", idea, wordAt(domainWords, 1, "complementary concepts"), dom),
			fmt.Sprintf("What happens when you combine '%s' with %s from %s?", idea, wordAt(techniqueWords, 1, "proven techniques"), dom),
			fmt.Sprintf("How could '%s' integrate multiple %s approaches simultaneously?", idea, dom),
			fmt.Sprintf("What if '%s' combined with %s in %s?", idea, wordAt(applicationWords, 0, "existing applications"), dom),
		},
		"Adapt": {
			fmt.Sprintf("How could '%s' adapt %s principles for better results in %s?", idea, wordAt(domainWords, 2, "best practices"), dom),
			fmt.Sprintf("What %s best practices could '%s' adopt and customize?", dom, idea),
			fmt.Sprintf("How could '%s' evolve to better serve %s needs and requirements?", idea, dom),
			fmt.Sprintf("What successful %s solutions could inspire adaptations to '%s'?", dom, idea),
		},
		"Modify": {
			fmt.Sprintf("What if '%s' emphasized %s more strongly for %s applications?", idea, wordAt(domainWords, 3, "key aspects"), dom),
			fmt.Sprintf("How could '%s' be modified using %s from %s?", idea, wordAt(techniqueWords, 2, "specialized approaches"), dom),
			fmt.Sprintf("What %s-specific modifications would enhance '%s' effectiveness?", dom, idea),
			fmt.Sprintf("How could '%s' be scaled or optimized for %s requirements?", idea, dom),
		},
		"Put to other uses": {
			fmt.Sprintf("How could '%s' solve other %s challenges beyond its original purpose?", idea, dom),
			fmt.Sprintf("What unexpected %s applications could '%s' enable or support?", dom, idea),
			fmt.Sprintf("How could '%s' transform other areas within %s or related fields?", idea, dom),
			fmt.Sprintf("What if '%s' was applied to %s in %s?", idea, wordAt(applicationWords, 1, "different use cases"), dom),
		},
		"Eliminate": {
			fmt.Sprintf("What %s constraints or limitations could '%s' remove or simplify?", dom, idea),
			fmt.Sprintf("How could '%s' eliminate common %s pain points or inefficiencies?", idea, dom),
			fmt.Sprintf("What unnecessary %s complexities could '%s' strip away?", dom, idea),
			fmt.Sprintf("How could '%s' reduce barriers in %s processes or workflows?", idea, dom),
		},
		"Reverse": {
			fmt.Sprintf("What if '%s' approached %s problems from the opposite direction or perspective?", idea, dom),
			fmt.Sprintf("How could '%s' invert typical %s assumptions or conventions?", idea, dom),
			fmt.Sprintf("What would '%s' look like if it challenged established %s practices?", idea, dom),
			fmt.Sprintf("How could '%s' reverse traditional %s workflows or processes?", idea, dom),
		},
	}

	results := make([]string, 0, len(scamperCategories))
	for _, category := range scamperCategories {
		results = append(results, fmt.Sprintf("[%s] %s", category, pick(rng, variants[category])))
	}
	return results
}

// RandomWordAssociations returns 4 prompts per selected word. Words
// split between core concepts and metaphors, topped up from techniques
// and finally the generic pool.
func (a *Algorithms) RandomWordAssociations(rng *rand.Rand, idea string, numWords int, ctx *Context) []string {
	dom := ctx.EffectiveDomain()

	selected := a.selectWords(rng, dom, ctx, domain.CategoryCoreConcepts, numWords/2)
	selected = append(selected, a.selectWords(rng, dom, ctx, domain.CategoryMetaphors, numWords/2)...)

	if remaining := numWords - len(selected); remaining > 0 {
		selected = append(selected, a.selectWords(rng, dom, ctx, domain.CategoryTechniques, remaining)...)
	}
	if remaining := numWords - len(selected); remaining > 0 {
		selected = append(selected, Sample(rng, a.lookup.GenericWords(), remaining)...)
	}
	if len(selected) > numWords {
		selected = selected[:numWords]
	}

	prompts := make([]string, 0, 4*len(selected))
	for _, word := range selected {
		prompts = append(prompts,
			fmt.Sprintf("How does '%s' relate to '%s' in the context of %s?", word, idea, dom),
			fmt.Sprintf("What if '%s' embodied the essence of '%s' in %s applications?", idea, word, dom),
			fmt.Sprintf("How could '%s' inspire a new approach to '%s' within %s?", word, idea, dom),
			fmt.Sprintf("What %s-specific insights emerge when connecting '%s' with '%s'?", dom, idea, word),
		)
	}
	return prompts
}

// ApplyAnalogicalThinking links the idea to analogy examples. With a
// domain (explicit or via context) it samples up to 2 examples per
// analogy category and emits 3 sentences each, capped at 6 prompts.
// Without any domain it takes 3 random generic categories, one example
// each, 4 sentences per example.
func (a *Algorithms) ApplyAnalogicalThinking(rng *rand.Rand, idea, targetDomain string, ctx *Context) []string {
	if targetDomain == "" && ctx != nil {
		targetDomain = ctx.Domain
	}
	if targetDomain == "" {
		return a.plainAnalogies(rng, idea)
	}

	analogies := a.lookup.Analogies(targetDomain)
	categories := make([]string, 0, len(analogies))
	for category := range analogies {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var prompts []string
	for _, category := range categories {
		for _, example := range Sample(rng, analogies[category], 2) {
			prompts = append(prompts,
				fmt.Sprintf("How is '%s' like %s in %s? What insights does this reveal for %s?", idea, example, category, targetDomain),
				fmt.Sprintf("If '%s' operated like %s from %s, how would it transform %s practices?", idea, example, category, targetDomain),
				fmt.Sprintf("What principles from %s in %s could enhance '%s' for %s applications?", example, category, idea, targetDomain),
			)
		}
	}

	// Cap to keep the output from overwhelming downstream prompts.
	if len(prompts) > 6 {
		prompts = prompts[:6]
	}
	return prompts
}

func (a *Algorithms) plainAnalogies(rng *rand.Rand, idea string) []string {
	var prompts []string
	for _, category := range Sample(rng, genericAnalogyCategories, 3) {
		example := pick(rng, a.lookup.Analogies("")[category])
		prompts = append(prompts,
			fmt.Sprintf("How is '%s' like %s in the world of %s?", idea, example, category),
			fmt.Sprintf("What principles from %s could transfer to '%s'?", example, idea),
			fmt.Sprintf("If '%s' worked the way %s does, what would change?", idea, example),
			fmt.Sprintf("What does %s teach us about improving '%s'?", category, idea),
		)
	}
	return prompts
}

// Fixed order for the generic analogy categories so plain-variant
// selection is reproducible under a seed.
var genericAnalogyCategories = []string{
	"nature", "sports", "music", "cooking", "architecture", "transportation", "games",
}

// ApplyReverseBrainstorming returns six fixed failure-mode questions
// followed by one inversion instruction. Order fixed, no randomness.
func (a *Algorithms) ApplyReverseBrainstorming(idea string) []string {
	return []string{
		fmt.Sprintf("How could we make '%s' completely unusable?", idea),
		fmt.Sprintf("What would guarantee that '%s' fails spectacularly?", idea),
		fmt.Sprintf("How could we make '%s' as inconvenient as possible?", idea),
		fmt.Sprintf("What would make people actively avoid '%s'?", idea),
		fmt.Sprintf("How could we make '%s' solve the wrong problem entirely?", idea),
		fmt.Sprintf("What would make '%s' work only in impossible conditions?", idea),
		"Now, how can we reverse each of these failure modes into innovative features?",
	}
}

// ApplySixThinkingHats returns prompts for each of the six hats. The
// White/Red/Black/Yellow hats use domain perspective prompts when the
// lookup has them; Green and Blue always use the generic templates.
func (a *Algorithms) ApplySixThinkingHats(idea string, ctx *Context) map[string][]string {
	dom := ctx.EffectiveDomain()
	perspectives := a.lookup.Perspectives(dom)

	hatPrompts := func(key string, generic []string) []string {
		if prompts := perspectives[key]; len(prompts) > 0 {
			return prompts
		}
		return generic
	}

	return map[string][]string{
		"White Hat (Facts)": hatPrompts(domain.PerspectiveFactual, []string{
			fmt.Sprintf("What %s-specific data validates '%s'?", dom, idea),
			fmt.Sprintf("What metrics matter most in %s for '%s'?", dom, idea),
			fmt.Sprintf("What evidence exists in %s for similar approaches?", dom),
			fmt.Sprintf("What measurable outcomes define success for '%s' in %s?", idea, dom),
		}),
		"Red Hat (Emotions)": hatPrompts(domain.PerspectiveEmotional, []string{
			fmt.Sprintf("How do %s stakeholders feel about '%s'?", dom, idea),
			fmt.Sprintf("What emotional barriers exist in %s for '%s'?", dom, idea),
			fmt.Sprintf("What emotional benefits does '%s' provide in %s?", idea, dom),
			fmt.Sprintf("What intuitive reactions arise from %s professionals about '%s'?", dom, idea),
		}),
		"Black Hat (Critical)": hatPrompts(domain.PerspectiveCritical, []string{
			fmt.Sprintf("What %s-specific risks does '%s' present?", dom, idea),
			fmt.Sprintf("How could '%s' fail in %s contexts?", idea, dom),
			fmt.Sprintf("What %s constraints limit '%s'?", dom, idea),
			fmt.Sprintf("What unintended consequences could '%s' have in %s?", idea, dom),
		}),
		"Yellow Hat (Positive)": hatPrompts(domain.PerspectivePositive, []string{
			fmt.Sprintf("What %s benefits does '%s' offer?", dom, idea),
			fmt.Sprintf("How could '%s' transform %s practices?", idea, dom),
			fmt.Sprintf("What opportunities does '%s' create in %s?", idea, dom),
			fmt.Sprintf("What's the best-case scenario for '%s' in %s?", idea, dom),
		}),
		"Green Hat (Creative)": {
			fmt.Sprintf("What %s-specific innovations could '%s' inspire?", dom, idea),
			fmt.Sprintf("How could '%s' be creatively adapted for %s?", idea, dom),
			fmt.Sprintf("What wild %s possibilities does '%s' suggest?", dom, idea),
			fmt.Sprintf("What creative combinations exist between '%s' and %s practices?", idea, dom),
		},
		"Blue Hat (Process)": {
			fmt.Sprintf("How should we approach implementing '%s' in %s?", idea, dom),
			fmt.Sprintf("What %s processes would best evaluate '%s'?", dom, idea),
			fmt.Sprintf("How can we organize %s thinking about '%s'?", dom, idea),
			fmt.Sprintf("What %s methodology should guide '%s' development?", dom, idea),
		},
	}
}

// ApplyBiomimicry samples three biomimicry examples for the domain and
// emits four prompts per example.
func (a *Algorithms) ApplyBiomimicry(rng *rand.Rand, idea string, ctx *Context) []string {
	dom := ctx.EffectiveDomain()
	examples := Sample(rng, a.lookup.Biomimicry(dom), 3)

	prompts := make([]string, 0, 4*len(examples))
	for _, ex := range examples {
		prompts = append(prompts,
			fmt.Sprintf("How could '%s' mimic %s's %s to achieve %s in %s?", idea, ex.Organism, ex.Mechanism, ex.Property, dom),
			fmt.Sprintf("What if '%s' adopted the %s strategy from %s for %s applications?", idea, ex.Property, ex.Organism, dom),
			fmt.Sprintf("How would %s's approach to %s inspire new solutions for '%s' in %s?", ex.Organism, ex.Mechanism, idea, dom),
			fmt.Sprintf("What %s-specific innovations could emerge by applying %s's %s to '%s'?", dom, ex.Organism, ex.Property, idea),
		)
	}
	return prompts
}

// ApplyConstraintRelaxation emits four prompts per constraint. An empty
// constraint list falls back to the five default constraints.
func (a *Algorithms) ApplyConstraintRelaxation(idea string, constraints []string) []string {
	if len(constraints) == 0 {
		constraints = defaultConstraints
	}

	prompts := make([]string, 0, 4*len(constraints))
	for _, constraint := range constraints {
		prompts = append(prompts,
			fmt.Sprintf("What if '%s' had unlimited %s?", idea, constraint),
			fmt.Sprintf("How would '%s' change if %s didn't exist?", idea, constraint),
			fmt.Sprintf("What becomes possible with '%s' if we ignore %s?", idea, constraint),
			fmt.Sprintf("How could we work around the %s limitation for '%s'?", constraint, idea),
		)
	}
	return prompts
}
