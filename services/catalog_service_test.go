package services

import (
	"math/rand"
	"testing"

	"github.com/edumitra/edumitra-api/model"
)

func catalogFixture(n int) []model.Program {
	programs := make([]model.Program, 0, n)
	for i := 0; i < n; i++ {
		programs = append(programs, model.Program{
			ID:    uint(i + 1),
			Title: "Program",
		})
	}
	return programs
}

func TestSampleProgramsUnderLimit(t *testing.T) {
	programs := catalogFixture(3)
	got := SamplePrograms(rand.New(rand.NewSource(1)), programs, 6)
	if len(got) != 3 {
		t.Fatalf("expected all 3 programs back, got %d", len(got))
	}
	for i := range got {
		if got[i].ID != programs[i].ID {
			t.Errorf("order changed at index %d", i)
		}
	}
}

func TestSampleProgramsOverLimit(t *testing.T) {
	programs := catalogFixture(10)
	got := SamplePrograms(rand.New(rand.NewSource(42)), programs, 6)

	if len(got) != 6 {
		t.Fatalf("expected 6 programs, got %d", len(got))
	}

	seen := map[uint]bool{}
	for _, p := range got {
		if seen[p.ID] {
			t.Errorf("program %d sampled twice", p.ID)
		}
		seen[p.ID] = true
	}

	// input must stay untouched
	for i := range programs {
		if programs[i].ID != uint(i+1) {
			t.Errorf("input slice modified at index %d", i)
		}
	}
}

func TestSampleProgramsDeterministicForSeed(t *testing.T) {
	programs := catalogFixture(10)
	first := SamplePrograms(rand.New(rand.NewSource(7)), programs, 6)
	second := SamplePrograms(rand.New(rand.NewSource(7)), programs, 6)

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same seed produced different samples at index %d", i)
		}
	}
}
