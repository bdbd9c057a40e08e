package exposure

import "breachcheck/pkg/domain"

// Score contributions.
const (
	PointsPerIdentity      = 1
	PointsPerBreach        = 2
	PointsHashesExposed    = 5
	PointsPlaintextBase    = 10
	PointsReusedPassword   = 25
	PenaltyVeryWeak        = 15
	PenaltyWeak            = 10
	PenaltyModerate        = 5
	PenaltyUnknownStrength = 5
)

// Factor is one contribution to a risk score.
type Factor struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// Assessment is the risk of a search.
type Assessment struct {
	Score   int
	Level   domain.RiskLevel
	Factors []Factor
}

// LevelFor maps a score to its risk level.
func LevelFor(score int) domain.RiskLevel {
	switch {
	case score <= 10:
		return domain.RiskLevelLow
	case score <= 30:
		return domain.RiskLevelMedium
	case score <= 60:
		return domain.RiskLevelHigh
	default:
		return domain.RiskLevelCritical
	}
}

func strengthPenalty(s domain.PasswordStrength) int {
	switch s {
	case domain.StrengthVeryWeak:
		return PenaltyVeryWeak
	case domain.StrengthWeak:
		return PenaltyWeak
	case domain.StrengthModerate:
		return PenaltyModerate
	case domain.StrengthStrong, domain.StrengthVeryStrong:
		return 0
	default:
		return PenaltyUnknownStrength
	}
}

// Score computes the risk of an aggregated and analyzed search. Factors are
// recorded in evaluation order: identities, breaches, hashes, passwords.
func Score(agg *Aggregation, analysis *Analysis) Assessment {
	var factors []Factor
	add := func(name string, points int) {
		if points != 0 {
			factors = append(factors, Factor{Name: name, Points: points})
		}
	}

	add("identities", PointsPerIdentity*len(agg.Identities))
	add("breaches", PointsPerBreach*len(agg.Breaches()))

	if !agg.HasPlaintext() && hasUnanalyzedPassword(agg, analysis) {
		add("hashes_exposed", PointsHashesExposed)
	}

	if agg.HasPlaintext() && analysis != nil {
		for _, p := range analysis.Passwords {
			add("plaintext_password", PointsPlaintextBase)
			add("weak_password", strengthPenalty(p.Strength))
			if p.Reused {
				add("reused_password", PointsReusedPassword)
			}
		}
	}

	score := 0
	for _, f := range factors {
		score += f.Points
	}

	return Assessment{Score: score, Level: LevelFor(score), Factors: factors}
}

func hasUnanalyzedPassword(agg *Aggregation, analysis *Analysis) bool {
	for _, id := range agg.Identities {
		for _, pw := range id.Passwords {
			if _, ok := analysis.Lookup(pw); !ok {
				return true
			}
		}
	}

	return false
}
