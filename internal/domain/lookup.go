package domain

import "sort"

// Lookup resolves domains to specialized vocabulary. It is built once at
// startup and must not be mutated after it is handed to callers; every
// accessor is a pure read, so concurrent use needs no locking.
type Lookup struct {
	words        map[string]map[string][]string
	analogies    map[string]map[string][]string
	biomimicry   map[string][]BiomimicryExample
	perspectives map[string]map[string][]string
	generic      []string
}

// New builds a Lookup from the builtin tables.
func New() *Lookup {
	l := &Lookup{
		words:        make(map[string]map[string][]string, len(builtinWords)),
		analogies:    make(map[string]map[string][]string, len(builtinAnalogies)),
		biomimicry:   make(map[string][]BiomimicryExample, len(builtinBiomimicry)),
		perspectives: make(map[string]map[string][]string, len(builtinPerspectives)),
		generic:      genericWords,
	}
	for d, cats := range builtinWords {
		l.words[d] = cats
	}
	for d, cats := range builtinAnalogies {
		l.analogies[d] = cats
	}
	for d, examples := range builtinBiomimicry {
		l.biomimicry[d] = examples
	}
	for d, hats := range builtinPerspectives {
		l.perspectives[d] = hats
	}
	return l
}

// Words returns the phrase list for a domain/category pair. Unknown
// domains or categories yield an empty slice, never an error.
func (l *Lookup) Words(domain, category string) []string {
	cats, ok := l.words[domain]
	if !ok {
		return nil
	}
	return cats[category]
}

// Analogies returns the analogy categories for a domain, falling back
// to the generic cross-domain table.
func (l *Lookup) Analogies(domain string) map[string][]string {
	if cats, ok := l.analogies[domain]; ok {
		return cats
	}
	return genericAnalogies
}

// Biomimicry returns the biomimicry examples for a domain, falling back
// to the generic example list.
func (l *Lookup) Biomimicry(domain string) []BiomimicryExample {
	if examples, ok := l.biomimicry[domain]; ok {
		return examples
	}
	return genericBiomimicry
}

// Perspectives returns the Six Thinking Hats prompt sets for a domain.
// Unknown domains yield an empty map; callers supply generic prompts.
func (l *Lookup) Perspectives(domain string) map[string][]string {
	if hats, ok := l.perspectives[domain]; ok {
		return hats
	}
	return map[string][]string{}
}

// GenericWords returns the cross-domain word pool used as the final
// sampling fallback.
func (l *Lookup) GenericWords() []string {
	return l.generic
}

// Domains returns the sorted set of domains that carry any specialized
// data (word bank, analogies, biomimicry, or perspectives).
func (l *Lookup) Domains() []string {
	seen := make(map[string]struct{})
	for d := range l.words {
		seen[d] = struct{}{}
	}
	for d := range l.analogies {
		seen[d] = struct{}{}
	}
	for d := range l.biomimicry {
		seen[d] = struct{}{}
	}
	for d := range l.perspectives {
		seen[d] = struct{}{}
	}
	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}
