package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"breachcheck/pkg/domain"

	"github.com/google/uuid"
)

type PgProfile struct {
	ID          uuid.UUID `db:"id"           goqu:"skipinsert"`
	UserID      uuid.UUID `db:"user_id"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		ID:          domain.ProfileID(p.ID),
		UserID:      domain.UserID(p.UserID),
		DisplayName: p.DisplayName,
		CreatedAt:   p.CreatedAt,
	}
}

type PgSearchRequest struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProfileID uuid.UUID `db:"profile_id"`

	Type        string `db:"type"`
	SearchValue string `db:"search_value"`
	Status      string `db:"status"`

	TotalBreaches int            `db:"total_breaches"`
	RiskLevel     sql.NullString `db:"risk_level"`
	RiskScore     int            `db:"risk_score"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
}

func (p *PgSearchRequest) ToDomain() *domain.SearchRequest {
	return &domain.SearchRequest{
		ID:            domain.SearchRequestID(p.ID),
		ProfileID:     domain.ProfileID(p.ProfileID),
		Kind:          domain.SearchKind(p.Type),
		SearchValue:   p.SearchValue,
		Status:        domain.SearchStatus(p.Status),
		TotalBreaches: p.TotalBreaches,
		RiskLevel:     domain.RiskLevel(p.RiskLevel.String),
		RiskScore:     p.RiskScore,
		CreatedAt:     p.CreatedAt,
		CompletedAt:   p.CompletedAt.Time,
	}
}

func (p *PgSearchRequest) FromDomain(req domain.SearchRequest) {
	*p = PgSearchRequest{
		ID:            uuid.UUID(req.ID),
		ProfileID:     uuid.UUID(req.ProfileID),
		Type:          string(req.Kind),
		SearchValue:   req.SearchValue,
		Status:        string(req.Status),
		TotalBreaches: req.TotalBreaches,
		RiskLevel: sql.NullString{
			String: string(req.RiskLevel),
			Valid:  req.RiskLevel != "",
		},
		RiskScore: req.RiskScore,
	}
}

type PgBreachResult struct {
	ID              int64           `db:"id"                goqu:"skipinsert"`
	SearchRequestID uuid.UUID       `db:"search_request_id"`
	BreachName      string          `db:"breach_name"`
	BreachDate      sql.NullTime    `db:"breach_date"`
	AffectedEmails  json.RawMessage `db:"affected_emails"`
	AffectedDomains json.RawMessage `db:"affected_domains"`
	DataTypes       json.RawMessage `db:"data_types"`
	Severity        string          `db:"severity"`
	IsVerified      bool            `db:"is_verified"`
	CreatedAt       time.Time       `db:"created_at"        goqu:"skipinsert"`
}

func (p *PgBreachResult) FromDomain(r domain.BreachResult) error {
	emails, err := marshalStrings(r.AffectedEmails)
	if err != nil {
		return err
	}
	domains, err := marshalStrings(r.AffectedDomains)
	if err != nil {
		return err
	}
	dataTypes, err := marshalStrings(r.DataTypes)
	if err != nil {
		return err
	}

	*p = PgBreachResult{
		SearchRequestID: uuid.UUID(r.RequestID),
		BreachName:      r.BreachName,
		AffectedEmails:  emails,
		AffectedDomains: domains,
		DataTypes:       dataTypes,
		Severity:        string(r.Severity),
		IsVerified:      r.IsVerified,
	}
	if r.BreachDate != nil {
		p.BreachDate = sql.NullTime{Time: *r.BreachDate, Valid: true}
	}

	return nil
}

func (p *PgBreachResult) ToDomain() (*domain.BreachResult, error) {
	out := &domain.BreachResult{
		RequestID:  domain.SearchRequestID(p.SearchRequestID),
		BreachName: p.BreachName,
		Severity:   domain.Severity(p.Severity),
		IsVerified: p.IsVerified,
	}
	if p.BreachDate.Valid {
		d := p.BreachDate.Time
		out.BreachDate = &d
	}
	for _, f := range []struct {
		raw json.RawMessage
		dst *[]string
	}{
		{p.AffectedEmails, &out.AffectedEmails},
		{p.AffectedDomains, &out.AffectedDomains},
		{p.DataTypes, &out.DataTypes},
	} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal breach result lists: %w", err)
		}
	}

	return out, nil
}

type PgPasswordAnalysis struct {
	ID              int64           `db:"id"                goqu:"skipinsert"`
	SearchRequestID uuid.UUID       `db:"search_request_id"`
	PasswordHash    string          `db:"password_hash"`
	Strength        string          `db:"strength"`
	Occurrences     int             `db:"occurrences"`
	Reused          bool            `db:"reused"`
	ExampleEmail    string          `db:"example_email"`
	Recommendation  string          `db:"recommendation"`
	CrackTime       string          `db:"crack_time"`
	Patterns        json.RawMessage `db:"patterns"`
	Entropy         float64         `db:"entropy"`
	CreatedAt       time.Time       `db:"created_at"        goqu:"skipinsert"`
}

func (p *PgPasswordAnalysis) FromDomain(a domain.PasswordAnalysis) error {
	patterns, err := marshalStrings(a.Patterns)
	if err != nil {
		return err
	}

	*p = PgPasswordAnalysis{
		SearchRequestID: uuid.UUID(a.RequestID),
		PasswordHash:    a.PasswordHash,
		Strength:        string(a.Strength),
		Occurrences:     a.Occurrences,
		Reused:          a.Reused,
		ExampleEmail:    a.ExampleEmail,
		Recommendation:  a.Recommendation,
		CrackTime:       a.CrackTime,
		Patterns:        patterns,
		Entropy:         a.Entropy,
	}

	return nil
}

func (p *PgPasswordAnalysis) ToDomain() (*domain.PasswordAnalysis, error) {
	out := &domain.PasswordAnalysis{
		RequestID:      domain.SearchRequestID(p.SearchRequestID),
		PasswordHash:   p.PasswordHash,
		Strength:       domain.PasswordStrength(p.Strength),
		Occurrences:    p.Occurrences,
		Reused:         p.Reused,
		ExampleEmail:   p.ExampleEmail,
		Recommendation: p.Recommendation,
		CrackTime:      p.CrackTime,
		Entropy:        p.Entropy,
	}
	if err := json.Unmarshal(p.Patterns, &out.Patterns); err != nil {
		return nil, fmt.Errorf("could not unmarshal password patterns: %w", err)
	}

	return out, nil
}

type PgSearchHistory struct {
	ID              uuid.UUID `db:"id"                goqu:"skipinsert"`
	ProfileID       uuid.UUID `db:"profile_id"`
	SearchRequestID uuid.UUID `db:"search_request_id"`
	Type            string    `db:"type"`
	SearchValue     string    `db:"search_value"`
	BreachCount     int       `db:"breach_count"`
	RiskLevel       string    `db:"risk_level"`
	CreatedAt       time.Time `db:"created_at"        goqu:"skipinsert"`
}

func (p *PgSearchHistory) FromDomain(h domain.SearchHistory) {
	*p = PgSearchHistory{
		ProfileID:       uuid.UUID(h.ProfileID),
		SearchRequestID: uuid.UUID(h.SearchRequestID),
		Type:            string(h.Kind),
		SearchValue:     h.SearchValue,
		BreachCount:     h.BreachCount,
		RiskLevel:       string(h.RiskLevel),
	}
}

func (p *PgSearchHistory) ToDomain() *domain.SearchHistory {
	return &domain.SearchHistory{
		ID:              p.ID,
		ProfileID:       domain.ProfileID(p.ProfileID),
		SearchRequestID: domain.SearchRequestID(p.SearchRequestID),
		Kind:            domain.SearchKind(p.Type),
		SearchValue:     p.SearchValue,
		BreachCount:     p.BreachCount,
		RiskLevel:       domain.RiskLevel(p.RiskLevel),
		CreatedAt:       p.CreatedAt,
	}
}

// marshalStrings encodes a list for a jsonb column. nil is stored as [].
func marshalStrings(v []string) (json.RawMessage, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal list: %w", err)
	}

	return b, nil
}
