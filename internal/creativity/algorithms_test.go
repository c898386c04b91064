package creativity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/josephgoksu/thinkwing/internal/domain"
)

func newTestAlgorithms() *Algorithms {
	return NewAlgorithms(domain.New())
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestApplySCAMPER(t *testing.T) {
	algs := newTestAlgorithms()
	idea := "solar powered bicycle"

	results := algs.ApplySCAMPER(testRNG(42), idea, nil)
	if len(results) != 7 {
		t.Fatalf("expected 7 SCAMPER prompts, got %d", len(results))
	}

	for i, category := range []string{"Substitute", "Combine", "Adapt", "Modify", "Put to other uses", "Eliminate", "Reverse"} {
		prefix := "[" + category + "] "
		if !strings.HasPrefix(results[i], prefix) {
			t.Errorf("prompt %d missing prefix %q: %q", i, prefix, results[i])
		}
	}
}

func TestApplySCAMPERWithDomainContext(t *testing.T) {
	algs := newTestAlgorithms()
	ctx := &Context{Domain: "machine learning algorithms"}

	results := algs.ApplySCAMPER(testRNG(7), "automated code review", ctx)
	if len(results) != 7 {
		t.Fatalf("expected 7 prompts, got %d", len(results))
	}
	for _, r := range results {
		if !strings.Contains(r, "machine learning algorithms") {
			t.Errorf("prompt does not reference the domain: %q", r)
		}
	}
}

func TestRandomWordAssociationsCount(t *testing.T) {
	algs := newTestAlgorithms()

	for _, n := range []int{1, 2, 3, 5} {
		prompts := algs.RandomWordAssociations(testRNG(3), "smart garden", n, nil)
		if len(prompts) != 4*n {
			t.Errorf("numWords=%d: expected %d prompts, got %d", n, 4*n, len(prompts))
		}
	}
}

func TestApplyAnalogicalThinkingDomainVariantCapped(t *testing.T) {
	algs := newTestAlgorithms()

	prompts := algs.ApplyAnalogicalThinking(testRNG(11), "config drift detector", "distributed systems design", nil)
	if len(prompts) == 0 || len(prompts) > 6 {
		t.Fatalf("expected 1-6 prompts for domain variant, got %d", len(prompts))
	}
	for _, p := range prompts {
		if !strings.Contains(p, "config drift detector") {
			t.Errorf("prompt missing idea: %q", p)
		}
	}
}

func TestApplyAnalogicalThinkingPlainVariant(t *testing.T) {
	algs := newTestAlgorithms()

	prompts := algs.ApplyAnalogicalThinking(testRNG(11), "pocket translator", "", nil)
	if len(prompts) != 12 {
		t.Fatalf("expected 12 prompts for plain variant (3 categories x 4), got %d", len(prompts))
	}
}

func TestApplyReverseBrainstorming(t *testing.T) {
	algs := newTestAlgorithms()
	idea := "silent alarm clock"

	prompts := algs.ApplyReverseBrainstorming(idea)
	if len(prompts) != 7 {
		t.Fatalf("expected 7 prompts, got %d", len(prompts))
	}
	for i := 0; i < 6; i++ {
		if !strings.Contains(prompts[i], idea) {
			t.Errorf("failure prompt %d missing idea: %q", i, prompts[i])
		}
	}
	if !strings.Contains(strings.ToLower(prompts[6]), "reverse") {
		t.Errorf("final prompt should mention reversing: %q", prompts[6])
	}

	// No randomness: repeated calls are identical.
	again := algs.ApplyReverseBrainstorming(idea)
	for i := range prompts {
		if prompts[i] != again[i] {
			t.Errorf("reverse brainstorming not deterministic at %d", i)
		}
	}
}

func TestApplySixThinkingHats(t *testing.T) {
	algs := newTestAlgorithms()
	idea := "community tool library"

	hats := algs.ApplySixThinkingHats(idea, nil)
	if len(hats) != 6 {
		t.Fatalf("expected 6 hats, got %d", len(hats))
	}
	for _, name := range HatNames {
		prompts, ok := hats[name]
		if !ok {
			t.Fatalf("missing hat %q", name)
		}
		if len(prompts) == 0 {
			t.Errorf("hat %q has no prompts", name)
		}
		for _, p := range prompts {
			if !strings.Contains(p, idea) {
				t.Errorf("hat %q prompt missing idea: %q", name, p)
			}
		}
	}
}

func TestApplySixThinkingHatsUsesDomainPerspectives(t *testing.T) {
	algs := newTestAlgorithms()
	ctx := &Context{Domain: "artificial intelligence systems"}

	hats := algs.ApplySixThinkingHats("fraud detection service", ctx)
	white := hats["White Hat (Facts)"]
	if len(white) == 0 || white[0] != "What AI performance metrics validate this approach?" {
		t.Errorf("expected domain perspective prompts for white hat, got %v", white)
	}
	// Green and Blue always use the generic templates embedding the idea.
	for _, p := range hats["Green Hat (Creative)"] {
		if !strings.Contains(p, "fraud detection service") {
			t.Errorf("green hat prompt missing idea: %q", p)
		}
	}
}

func TestApplyBiomimicry(t *testing.T) {
	algs := newTestAlgorithms()

	prompts := algs.ApplyBiomimicry(testRNG(5), "foldable kayak", nil)
	if len(prompts) != 12 {
		t.Fatalf("expected 12 prompts (3 examples x 4), got %d", len(prompts))
	}
	for _, p := range prompts {
		if !strings.Contains(p, "foldable kayak") {
			t.Errorf("prompt missing idea: %q", p)
		}
	}
}

func TestApplyConstraintRelaxation(t *testing.T) {
	algs := newTestAlgorithms()
	idea := "night market"

	defaults := algs.ApplyConstraintRelaxation(idea, nil)
	if len(defaults) != 20 {
		t.Errorf("expected 20 prompts for default constraints, got %d", len(defaults))
	}

	three := algs.ApplyConstraintRelaxation(idea, []string{"noise limits", "permits", "weather"})
	if len(three) != 12 {
		t.Errorf("expected 12 prompts for 3 constraints, got %d", len(three))
	}
	for _, p := range three {
		if !strings.Contains(p, idea) {
			t.Errorf("prompt missing idea: %q", p)
		}
	}
}

func TestSampleSafety(t *testing.T) {
	rng := testRNG(1)

	if got := Sample(rng, []string{}, 3); len(got) != 0 {
		t.Errorf("sampling empty pool: expected empty, got %v", got)
	}

	pool := []string{"a", "b"}
	got := Sample(rng, pool, 5)
	if len(got) != 2 {
		t.Fatalf("undersized pool: expected 2 items, got %d", len(got))
	}
	if got[0] == got[1] {
		t.Errorf("sample returned duplicates: %v", got)
	}

	if got := Sample(rng, pool, 0); len(got) != 0 {
		t.Errorf("size 0: expected empty, got %v", got)
	}
}

func TestSeededDeterminism(t *testing.T) {
	algs := newTestAlgorithms()
	ctx := &Context{Domain: "web application development"}

	a := algs.ApplySCAMPER(testRNG(99), "offline-first notes app", ctx)
	b := algs.ApplySCAMPER(testRNG(99), "offline-first notes app", ctx)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different output at %d:\n%q\n%q", i, a[i], b[i])
		}
	}
}

func TestPromptsContainIdea(t *testing.T) {
	algs := newTestAlgorithms()
	idea := "recycled concrete"
	ctx := &Context{Domain: "scalable system architecture"}

	var all []string
	all = append(all, algs.ApplySCAMPER(testRNG(2), idea, ctx)...)
	all = append(all, algs.RandomWordAssociations(testRNG(2), idea, 2, ctx)...)
	all = append(all, algs.ApplyBiomimicry(testRNG(2), idea, ctx)...)
	all = append(all, algs.ApplyConstraintRelaxation(idea, []string{"zoning"})...)

	for _, p := range all {
		if !strings.Contains(p, idea) {
			t.Errorf("prompt missing original idea: %q", p)
		}
	}
}
