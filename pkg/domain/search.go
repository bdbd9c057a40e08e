package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchRequestID uniquely identifies a breach search.
type SearchRequestID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id SearchRequestID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id SearchRequestID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *SearchRequestID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// SearchKind tells whether a search targets a single mailbox or a whole domain.
type SearchKind string

const (
	// SearchKindEmail searches the provider for a single email address.
	SearchKindEmail SearchKind = "EMAIL"
	// SearchKindDomain searches the provider for every identity under a domain.
	SearchKindDomain SearchKind = "DOMAIN"
)

// Valid reports whether k is one of the supported search kinds.
func (k SearchKind) Valid() bool {
	return k == SearchKindEmail || k == SearchKindDomain
}

// SearchStatus represents the lifecycle state of a search request.
type SearchStatus string

const (
	// SearchStatusProcessing is set when the request is created.
	SearchStatusProcessing SearchStatus = "PROCESSING"
	// SearchStatusCompleted indicates results were computed and persisted.
	SearchStatusCompleted SearchStatus = "COMPLETED"
	// SearchStatusFailed indicates the search could not be completed.
	SearchStatusFailed SearchStatus = "FAILED"
)

// RiskLevel is the discrete classification of a numeric risk score.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Severity is the severity assigned to a single breach record.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// PasswordStrength is the label produced by the password strength heuristic.
// Labels are user facing and kept in Spanish.
type PasswordStrength string

const (
	StrengthVeryWeak   PasswordStrength = "Muy Débil"
	StrengthWeak       PasswordStrength = "Débil"
	StrengthModerate   PasswordStrength = "Moderada"
	StrengthStrong     PasswordStrength = "Fuerte"
	StrengthVeryStrong PasswordStrength = "Muy Fuerte"
)

// IsWeak reports whether the strength label calls for an immediate password change.
func (s PasswordStrength) IsWeak() bool {
	return s == StrengthVeryWeak || s == StrengthWeak
}

const (
	// RecommendationChangeNow is attached to weak exposed passwords.
	RecommendationChangeNow = "Cambiar inmediatamente"
	// RecommendationConsiderChange is attached to every other exposed password.
	RecommendationConsiderChange = "Considerar cambio"
)

// SearchRequest is a single breach search issued by a profile. It is created
// in PROCESSING state and updated exactly once when the search completes or fails.
type SearchRequest struct {
	ID        SearchRequestID `json:"id"`
	ProfileID ProfileID       `json:"profileId"`

	Kind        SearchKind   `json:"type"`
	SearchValue string       `json:"searchValue"`
	Status      SearchStatus `json:"status"`

	TotalBreaches int       `json:"totalBreaches"`
	RiskLevel     RiskLevel `json:"riskLevel,omitempty"`
	RiskScore     int       `json:"riskScore"`

	CreatedAt   time.Time `json:"createdAt"`
	CompletedAt time.Time `json:"completedAt"`
}

// BreachResult is one persisted (identity, breach) pair found by a search.
type BreachResult struct {
	RequestID  SearchRequestID `json:"requestId"`
	BreachName string          `json:"breachName"`
	// BreachDate is nil when the provider does not report when the breach happened.
	BreachDate      *time.Time `json:"breachDate"`
	AffectedEmails  []string   `json:"affectedEmails"`
	AffectedDomains []string   `json:"affectedDomains"`
	DataTypes       []string   `json:"dataTypes"`
	Severity        Severity   `json:"severity"`
	IsVerified      bool       `json:"isVerified"`
}

// PasswordAnalysis is the persisted exposure record of a single plaintext
// password. The password itself is never stored; PasswordHash is a keyed digest.
type PasswordAnalysis struct {
	RequestID      SearchRequestID  `json:"requestId"`
	PasswordHash   string           `json:"passwordHash"`
	Strength       PasswordStrength `json:"strength"`
	Occurrences    int              `json:"occurrences"`
	Reused         bool             `json:"reused"`
	ExampleEmail   string           `json:"exampleEmail"`
	Recommendation string           `json:"recommendation"`
	CrackTime      string           `json:"crackTime"`
	Patterns       []string         `json:"patterns"`
	Entropy        float64          `json:"entropy"`
}

// SearchHistory is a summary row appended for every completed search that found breaches.
type SearchHistory struct {
	ID              uuid.UUID       `json:"id"`
	ProfileID       ProfileID       `json:"profileId"`
	SearchRequestID SearchRequestID `json:"searchRequestId"`
	Kind            SearchKind      `json:"type"`
	SearchValue     string          `json:"searchValue"`
	BreachCount     int             `json:"breachCount"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Verification is the outcome of a breach verification returned to the caller.
type Verification struct {
	RequestID SearchRequestID `json:"requestId"`
	// SourceRequestID is the search whose computation produced these results.
	// It differs from RequestID when the results were served from cache.
	SourceRequestID  SearchRequestID    `json:"sourceRequestId"`
	BreachCount      int                `json:"breachCount"`
	RiskLevel        RiskLevel          `json:"riskLevel"`
	RiskScore        int                `json:"riskScore"`
	Cached           bool               `json:"cached"`
	Results          []BreachResult     `json:"results"`
	PasswordAnalysis []PasswordAnalysis `json:"passwordAnalysis"`
}
