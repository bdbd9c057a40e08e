package exposure_test

import (
	"context"
	"testing"

	"breachcheck/internal/exposure"
	"breachcheck/pkg/breachprovider"
	"breachcheck/pkg/domain"

	"github.com/stretchr/testify/require"
)

func assess(t *testing.T, entries ...breachprovider.Entry) exposure.Assessment {
	t.Helper()

	agg := exposure.Aggregate(entries)
	analysis, err := exposure.NewAnalyzer(5, 0, nil).Analyze(context.Background(), agg)
	require.NoError(t, err)

	return exposure.Score(agg, analysis)
}

func TestLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  domain.RiskLevel
	}{
		{0, domain.RiskLevelLow},
		{10, domain.RiskLevelLow},
		{11, domain.RiskLevelMedium},
		{30, domain.RiskLevelMedium},
		{31, domain.RiskLevelHigh},
		{60, domain.RiskLevelHigh},
		{61, domain.RiskLevelCritical},
		{500, domain.RiskLevelCritical},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, exposure.LevelFor(tt.score), "score %d", tt.score)
	}
}

func TestScore_SharedWeakPassword(t *testing.T) {
	a := assess(t,
		entry("a@x.com", "abc", "BreachA"),
		entry("b@x.com", "abc", "BreachA"),
	)

	// 1 + 1 identities, 2 for one breach, 10 + 15 + 25 for the reused weak password
	require.Equal(t, 54, a.Score)
	require.Equal(t, domain.RiskLevelHigh, a.Level)
	require.Equal(t, []exposure.Factor{
		{Name: "identities", Points: 2},
		{Name: "breaches", Points: 2},
		{Name: "plaintext_password", Points: 10},
		{Name: "weak_password", Points: 15},
		{Name: "reused_password", Points: 25},
	}, a.Factors)
}

func TestScore_NoEntries(t *testing.T) {
	a := assess(t)
	require.Zero(t, a.Score)
	require.Equal(t, domain.RiskLevelLow, a.Level)
	require.Empty(t, a.Factors)
}

func TestScore_HashesOnly(t *testing.T) {
	a := assess(t, breachprovider.Entry{
		Email:          []string{"a@x.com"},
		HashedPassword: []string{"5f4dcc3b"},
		DatabaseName:   []string{"BreachA"},
	})

	require.Equal(t, 1+2+5, a.Score)
	require.Equal(t, domain.RiskLevelLow, a.Level)
}

func TestScore_HashesIgnoredWhenPlaintextExists(t *testing.T) {
	a := assess(t,
		entry("a@x.com", "abc", "BreachA"),
		breachprovider.Entry{
			Email:          []string{"b@x.com"},
			HashedPassword: []string{"5f4dcc3b"},
			DatabaseName:   []string{"BreachB"},
		},
	)

	require.Equal(t, 2+4+10+15, a.Score)
	require.Equal(t, domain.RiskLevelHigh, a.Level)
}

func TestScore_Monotonic(t *testing.T) {
	base := []breachprovider.Entry{entry("a@x.com", "Abcdefghijk1!", "BreachA")}
	baseScore := assess(t, base...).Score
	require.Equal(t, 1+2+10, baseScore)

	// one more distinct breach for the same identity
	moreBreaches := append(append([]breachprovider.Entry{}, base...), entry("a@x.com", "", "BreachB"))
	require.Equal(t, baseScore+2, assess(t, moreBreaches...).Score)

	// one more very weak password, not reused
	weak := append(append([]breachprovider.Entry{}, base...), entry("a@x.com", "abc", "BreachA"))
	require.Equal(t, baseScore+25, assess(t, weak...).Score)

	// the same weak password reused by a second identity
	reused := append(append([]breachprovider.Entry{}, weak...), entry("b@x.com", "abc", "BreachA"))
	require.Equal(t, baseScore+25+1+25, assess(t, reused...).Score)
}

func TestScore_StrengthPenalties(t *testing.T) {
	tests := []struct {
		password string
		penalty  int
	}{
		{"abc", 15},
		{"abcdefgh", 10},
		{"Abcdefg1", 5},
		{"Abcdef1!", 0},
		{"Abcdefghijk1!", 0},
	}
	for _, tt := range tests {
		a := assess(t, entry("a@x.com", tt.password, "BreachA"))
		require.Equal(t, 1+2+10+tt.penalty, a.Score, tt.password)
	}
}
