package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/edumitra/edumitra-api/model"
	"gorm.io/gorm"
)

// Fit score contract: every program starts at BaseScore and earns fixed
// bonuses for each matched preference. The cap keeps scores from implying
// certainty.
const (
	BaseScore  = 60
	MaxScore   = 97
	TopMatches = 6

	degreeBonus         = 18
	modeExactBonus      = 12
	modeAdjacentBonus   = 6
	specialisationBonus = 6
	budgetBandBonus     = 6
	budgetFlexibleBonus = 4
)

// SpecialisationSentinel is the wizard's "skip" answer; it never scores
const SpecialisationSentinel = "not sure yet"

// BudgetFlexible is the budget answer that earns a flat bonus regardless of fee
const BudgetFlexible = "flexible"

// MatchPreferences is the optional preference set collected mid-wizard
type MatchPreferences struct {
	DegreeInterest string `json:"degreeInterest"`
	PreferredMode  string `json:"preferredMode"`
	BudgetRange    string `json:"budgetRange"`
	Specialisation string `json:"specialisation"`
}

// ScoredProgram is a catalog program with its computed fit score attached
type ScoredProgram struct {
	model.Program
	FitScore int `json:"fit_score"`
}

// budgetBand is an INR fee band: Min exclusive, Max inclusive
type budgetBand struct {
	Min int64
	Max int64
}

// budgetBands maps normalized budget-range labels to fee bands. A fee of
// exactly 100000 falls in the "below ₹1 lakh" band, 100001 in the next.
var budgetBands = map[string]budgetBand{
	"below ₹1 lakh":   {0, 100_000},
	"< ₹1 lakh":       {0, 100_000},
	"₹1-2 lakhs":      {100_000, 200_000},
	"₹2-4 lakhs":      {200_000, 400_000},
	"₹4-6 lakhs":      {400_000, 600_000},
	"₹6-10 lakhs":     {600_000, 1_000_000},
	"above ₹10 lakhs": {1_000_000, 1 << 62},
}

// MatcherService scores catalog programs against a lead's stated preferences
type MatcherService struct {
	db *gorm.DB
}

// NewMatcherService creates a new matcher service
func NewMatcherService(db *gorm.DB) *MatcherService {
	return &MatcherService{db: db}
}

// Match reads the full current catalog and returns the top programs by
// descending fit score. Ties keep catalog order, which is
// newest-created-first, so results are deterministic for a fixed catalog.
func (s *MatcherService) Match(ctx context.Context, prefs MatchPreferences) ([]ScoredProgram, error) {
	var programs []model.Program
	err := s.db.WithContext(ctx).
		Preload("Institution").
		Order("created_at DESC, id DESC").
		Find(&programs).Error
	if err != nil {
		return nil, fmt.Errorf("unable to fetch recommendations: %w", err)
	}

	return RankPrograms(prefs, programs), nil
}

// RankPrograms scores every program, sorts descending by score (stable, so
// the incoming order breaks ties), and returns the top TopMatches.
func RankPrograms(prefs MatchPreferences, programs []model.Program) []ScoredProgram {
	scored := make([]ScoredProgram, 0, len(programs))
	for _, p := range programs {
		scored = append(scored, ScoredProgram{
			Program:  p,
			FitScore: ScoreProgram(prefs, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FitScore > scored[j].FitScore
	})

	if len(scored) > TopMatches {
		scored = scored[:TopMatches]
	}

	return scored
}

// ScoreProgram computes the bounded fit score for one program
func ScoreProgram(prefs MatchPreferences, p model.Program) int {
	score := BaseScore

	degree := strings.TrimSpace(prefs.DegreeInterest)
	if degree != "" && strings.EqualFold(degree, p.DegreeType) {
		score += degreeBonus
	}

	mode := strings.ToLower(strings.TrimSpace(prefs.PreferredMode))
	programMode := string(p.DeliveryMode)
	if mode != "" {
		if mode == programMode {
			score += modeExactBonus
		} else if mode == string(model.DeliveryModeOnline) && programMode == string(model.DeliveryModeBlended) {
			// Online seekers usually accept blended delivery
			score += modeAdjacentBonus
		}
	}

	spec := strings.ToLower(strings.TrimSpace(prefs.Specialisation))
	if spec != "" && spec != SpecialisationSentinel {
		haystack := strings.ToLower(p.Highlights + " " + p.Outcomes)
		if strings.Contains(haystack, spec) {
			score += specialisationBonus
		}
	}

	score += budgetBonus(prefs.BudgetRange, p.TotalFee)

	if score > MaxScore {
		score = MaxScore
	}

	return score
}

// budgetBonus awards the band bonus when the fee falls inside the stated
// band, or the smaller flat bonus for a "Flexible" budget.
func budgetBonus(budgetRange string, totalFee int64) int {
	label := strings.ToLower(strings.TrimSpace(budgetRange))
	if label == "" {
		return 0
	}

	if label == BudgetFlexible {
		return budgetFlexibleBonus
	}

	if totalFee <= 0 {
		return 0
	}

	band, ok := budgetBands[label]
	if !ok {
		return 0
	}

	if totalFee > band.Min && totalFee <= band.Max {
		return budgetBandBonus
	}

	return 0
}
