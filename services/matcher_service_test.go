package services

import (
	"testing"

	"github.com/edumitra/edumitra-api/model"
)

func mbaProgram() model.Program {
	return model.Program{
		ID:           1,
		DegreeType:   "MBA",
		Title:        "Online MBA in Finance",
		DeliveryMode: model.DeliveryModeOnline,
		TotalFee:     160_000,
		Highlights:   "AICTE approved, finance and analytics electives",
		Outcomes:     "Placement support, CFA-aligned curriculum",
	}
}

func TestScoreProgramEmptyPreferences(t *testing.T) {
	score := ScoreProgram(MatchPreferences{}, mbaProgram())
	if score != BaseScore {
		t.Errorf("expected base score %d, got %d", BaseScore, score)
	}
}

func TestScoreProgramDegreeMatchIsCaseInsensitive(t *testing.T) {
	prefs := MatchPreferences{DegreeInterest: "mba"}
	score := ScoreProgram(prefs, mbaProgram())
	if score != BaseScore+18 {
		t.Errorf("expected %d for degree match, got %d", BaseScore+18, score)
	}

	prefs.DegreeInterest = "MCA"
	if got := ScoreProgram(prefs, mbaProgram()); got != BaseScore {
		t.Errorf("expected no bonus for mismatched degree, got %d", got)
	}
}

func TestScoreProgramModeBonuses(t *testing.T) {
	program := mbaProgram()

	exact := ScoreProgram(MatchPreferences{PreferredMode: "online"}, program)
	if exact != BaseScore+12 {
		t.Errorf("expected %d for exact mode, got %d", BaseScore+12, exact)
	}

	// online seekers get a partial bonus for blended programs
	program.DeliveryMode = model.DeliveryModeBlended
	adjacent := ScoreProgram(MatchPreferences{PreferredMode: "online"}, program)
	if adjacent != BaseScore+6 {
		t.Errorf("expected %d for online->blended, got %d", BaseScore+6, adjacent)
	}

	// the adjacency is one-directional
	program.DeliveryMode = model.DeliveryModeOnline
	reverse := ScoreProgram(MatchPreferences{PreferredMode: "blended"}, program)
	if reverse != BaseScore {
		t.Errorf("expected no bonus for blended->online, got %d", reverse)
	}

	program.DeliveryMode = model.DeliveryModeWeekend
	none := ScoreProgram(MatchPreferences{PreferredMode: "online"}, program)
	if none != BaseScore {
		t.Errorf("expected no bonus for online->weekend, got %d", none)
	}
}

func TestScoreProgramSpecialisation(t *testing.T) {
	program := mbaProgram()

	matched := ScoreProgram(MatchPreferences{Specialisation: "Finance"}, program)
	if matched != BaseScore+6 {
		t.Errorf("expected %d for specialisation hit, got %d", BaseScore+6, matched)
	}

	// the wizard's skip answer never scores
	skipped := ScoreProgram(MatchPreferences{Specialisation: "Not sure yet"}, program)
	if skipped != BaseScore {
		t.Errorf("expected base score for sentinel answer, got %d", skipped)
	}

	missed := ScoreProgram(MatchPreferences{Specialisation: "robotics"}, program)
	if missed != BaseScore {
		t.Errorf("expected base score for unmatched specialisation, got %d", missed)
	}
}

func TestBudgetBonusBandBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		budget string
		fee    int64
		want   int
	}{
		{"fee on upper boundary stays in band", "Below ₹1 Lakh", 100_000, 6},
		{"fee just over boundary leaves band", "Below ₹1 Lakh", 100_001, 0},
		{"next band picks up boundary+1", "₹1-2 Lakhs", 100_001, 6},
		{"lower boundary is exclusive", "₹1-2 Lakhs", 100_000, 0},
		{"flexible earns flat bonus", "Flexible", 999, 4},
		{"flexible ignores missing fee", "Flexible", 0, 4},
		{"unknown label scores nothing", "whatever works", 100_000, 0},
		{"zero fee never lands in a band", "Below ₹1 Lakh", 0, 0},
		{"empty budget scores nothing", "", 100_000, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := budgetBonus(tc.budget, tc.fee); got != tc.want {
				t.Errorf("budgetBonus(%q, %d) = %d, want %d", tc.budget, tc.fee, got, tc.want)
			}
		})
	}
}

func TestScoreProgramCapped(t *testing.T) {
	program := mbaProgram()
	prefs := MatchPreferences{
		DegreeInterest: "MBA",
		PreferredMode:  "online",
		Specialisation: "finance",
		BudgetRange:    "₹1-2 lakhs",
	}

	// 60 + 18 + 12 + 6 + 6 = 102, capped at 97
	if got := ScoreProgram(prefs, program); got != MaxScore {
		t.Errorf("expected capped score %d, got %d", MaxScore, got)
	}
}

func TestRankProgramsOrderAndLimit(t *testing.T) {
	programs := []model.Program{}
	for i := 0; i < 10; i++ {
		p := mbaProgram()
		p.ID = uint(i + 1)
		if i%2 == 0 {
			p.DegreeType = "MCA"
		}
		programs = append(programs, p)
	}

	prefs := MatchPreferences{DegreeInterest: "MBA"}
	ranked := RankPrograms(prefs, programs)

	if len(ranked) != TopMatches {
		t.Fatalf("expected %d results, got %d", TopMatches, len(ranked))
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].FitScore > ranked[i-1].FitScore {
			t.Errorf("scores not non-increasing at index %d: %d > %d",
				i, ranked[i].FitScore, ranked[i-1].FitScore)
		}
	}

	// MBA programs outscore MCA ones and keep their incoming order on ties
	if ranked[0].ID != 2 || ranked[1].ID != 4 || ranked[2].ID != 6 {
		t.Errorf("expected stable tie order [2 4 6 ...], got [%d %d %d ...]",
			ranked[0].ID, ranked[1].ID, ranked[2].ID)
	}
}

func TestRankProgramsDeterministic(t *testing.T) {
	programs := []model.Program{}
	for i := 0; i < 8; i++ {
		p := mbaProgram()
		p.ID = uint(i + 1)
		programs = append(programs, p)
	}

	prefs := MatchPreferences{DegreeInterest: "MBA", BudgetRange: "flexible"}
	first := RankPrograms(prefs, programs)
	second := RankPrograms(prefs, programs)

	for i := range first {
		if first[i].ID != second[i].ID || first[i].FitScore != second[i].FitScore {
			t.Fatalf("ranking not deterministic at index %d", i)
		}
	}
}

func TestRankProgramsEmptyCatalog(t *testing.T) {
	ranked := RankPrograms(MatchPreferences{DegreeInterest: "MBA"}, nil)
	if len(ranked) != 0 {
		t.Errorf("expected empty result for empty catalog, got %d", len(ranked))
	}
}
