package exposure

import (
	"context"
	"fmt"
	"time"

	"breachcheck/pkg/domain"

	"github.com/jonboulle/clockwork"
)

// DefaultPauseEvery is how many passwords are analyzed between pauses.
const DefaultPauseEvery = 5

// PasswordExposure is the analysis of a single plaintext password.
type PasswordExposure struct {
	Password string
	Strength domain.PasswordStrength
	// ExampleEmail is the first identity the password was seen under.
	ExampleEmail string
	Emails       []string
	// Reused is true when the password was seen under more than one identity.
	Reused      bool
	Occurrences int
	Entropy     float64
	Patterns    []string
	CrackTime   string
}

// Analysis holds the exposures of every plaintext password of a search in
// first-seen order.
type Analysis struct {
	Passwords []PasswordExposure
	index     map[string]int
}

// Lookup returns the exposure of a plaintext password.
func (a *Analysis) Lookup(pw string) (PasswordExposure, bool) {
	if a == nil {
		return PasswordExposure{}, false
	}
	i, ok := a.index[pw]
	if !ok {
		return PasswordExposure{}, false
	}

	return a.Passwords[i], true
}

// Len returns the number of analyzed passwords.
func (a *Analysis) Len() int {
	if a == nil {
		return 0
	}

	return len(a.Passwords)
}

// Analyzer classifies exposed passwords. It pauses for Pause after every
// PauseEvery passwords; a zero Pause disables pacing and a non-positive
// PauseEvery uses DefaultPauseEvery.
type Analyzer struct {
	PauseEvery int
	Pause      time.Duration

	clock clockwork.Clock
}

// NewAnalyzer creates an Analyzer. A non-positive pauseEvery uses DefaultPauseEvery.
func NewAnalyzer(pauseEvery int, pause time.Duration, clock clockwork.Clock) *Analyzer {
	if pauseEvery <= 0 {
		pauseEvery = DefaultPauseEvery
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Analyzer{PauseEvery: pauseEvery, Pause: pause, clock: clock}
}

// Analyze classifies every plaintext password of agg. Hash-only passwords are
// not analyzed.
func (an *Analyzer) Analyze(ctx context.Context, agg *Aggregation) (*Analysis, error) {
	plaintexts := agg.Plaintexts()
	out := &Analysis{
		Passwords: make([]PasswordExposure, 0, len(plaintexts)),
		index:     make(map[string]int, len(plaintexts)),
	}

	every := an.PauseEvery
	if every <= 0 {
		every = DefaultPauseEvery
	}
	clock := an.clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	for i, pw := range plaintexts {
		if i > 0 && an.Pause > 0 && i%every == 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("password analysis interrupted: %w", ctx.Err())
			case <-clock.After(an.Pause):
			}
		}

		emails := agg.Emails(pw)
		entropy := Entropy(pw)
		exp := PasswordExposure{
			Password:    pw,
			Strength:    ClassifyStrength(pw),
			Emails:      emails,
			Reused:      len(emails) > 1,
			Occurrences: len(emails),
			Entropy:     entropy,
			Patterns:    Patterns(pw),
			CrackTime:   CrackTime(entropy),
		}
		if len(emails) > 0 {
			exp.ExampleEmail = emails[0]
		}

		out.index[pw] = len(out.Passwords)
		out.Passwords = append(out.Passwords, exp)
	}

	return out, nil
}
