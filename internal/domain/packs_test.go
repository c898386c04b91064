package domain

import (
	"testing"

	"github.com/spf13/afero"
)

const samplePack = `domains:
  marine robotics:
    words:
      core_concepts: [buoyancy control, sonar mapping, autonomous navigation]
      techniques: [pressure compensation, acoustic telemetry]
    analogies:
      ocean_life: [whale migration, squid propulsion]
    biomimicry:
      - organism: cuttlefish skin
        mechanism: shifts texture and color in real time
        property: adaptive signaling
`

func TestLoadPacksAddsDomain(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "packs/marine.yaml", []byte(samplePack), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	l := New()
	if err := l.LoadPacks(fs, "packs"); err != nil {
		t.Fatalf("LoadPacks failed: %v", err)
	}

	words := l.Words("marine robotics", CategoryCoreConcepts)
	if len(words) != 3 {
		t.Errorf("expected 3 core concepts from pack, got %v", words)
	}

	analogies := l.Analogies("marine robotics")
	if len(analogies["ocean_life"]) != 2 {
		t.Errorf("expected pack analogies, got %v", analogies)
	}

	bio := l.Biomimicry("marine robotics")
	if len(bio) != 1 || bio[0].Organism != "cuttlefish skin" {
		t.Errorf("expected pack biomimicry example, got %v", bio)
	}

	found := false
	for _, d := range l.Domains() {
		if d == "marine robotics" {
			found = true
		}
	}
	if !found {
		t.Error("pack domain missing from Domains()")
	}
}

func TestLoadPacksOverridesBuiltinCategory(t *testing.T) {
	pack := `domains:
  machine learning algorithms:
    words:
      metaphors: [alchemy of data]
`
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "packs/override.yml", []byte(pack), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	l := New()
	if err := l.LoadPacks(fs, "packs"); err != nil {
		t.Fatalf("LoadPacks failed: %v", err)
	}

	metaphors := l.Words("machine learning algorithms", CategoryMetaphors)
	if len(metaphors) != 1 || metaphors[0] != "alchemy of data" {
		t.Errorf("expected overridden metaphors, got %v", metaphors)
	}
	// Other categories keep builtin data.
	if len(l.Words("machine learning algorithms", CategoryCoreConcepts)) == 0 {
		t.Error("override clobbered untouched category")
	}
	// The builtin table itself must stay pristine.
	fresh := New()
	if len(fresh.Words("machine learning algorithms", CategoryMetaphors)) == 1 {
		t.Error("pack merge leaked into builtin tables")
	}
}

func TestLoadPacksMissingDirIsNotAnError(t *testing.T) {
	l := New()
	if err := l.LoadPacks(afero.NewMemMapFs(), "does-not-exist"); err != nil {
		t.Fatalf("expected nil error for missing directory, got %v", err)
	}
}

func TestLoadPacksMalformedYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "packs/bad.yaml", []byte("domains: [not a map"), 0644); err != nil {
		t.Fatalf("write pack: %v", err)
	}

	l := New()
	if err := l.LoadPacks(fs, "packs"); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestPackLoaderIgnoresOtherExtensions(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "packs/readme.txt", []byte("not yaml"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	packs, err := NewPackLoader(fs, "packs").LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(packs) != 0 {
		t.Errorf("expected 0 packs, got %d", len(packs))
	}
}
