package storage

import (
	"context"

	"breachcheck/pkg/domain"
)

// SearchRequestUpdates describes the fields applied when a search request
// leaves the PROCESSING state.
type SearchRequestUpdates struct {
	// Status is the new status. COMPLETED and FAILED also set completed_at.
	Status domain.SearchStatus
	// TotalBreaches, when provided, replaces the stored breach count.
	TotalBreaches *int
	// RiskLevel, when non-empty, replaces the stored risk level.
	RiskLevel domain.RiskLevel
	// RiskScore, when provided, replaces the stored risk score.
	RiskScore *int
	// OnlyIfProcessing restricts the update to requests still in PROCESSING.
	OnlyIfProcessing bool
}

// VerificationStorage persists breach searches and their outcome.
type VerificationStorage interface {
	// CreateSearchRequest inserts a new search request and returns the stored
	// row including generated fields.
	CreateSearchRequest(ctx context.Context, req domain.SearchRequest) (*domain.SearchRequest, error)
	// UpdateSearchRequest applies updates to a single search request and returns
	// the updated row, or nil when no row matched.
	UpdateSearchRequest(ctx context.Context,
		ID domain.SearchRequestID,
		updates SearchRequestUpdates) (*domain.SearchRequest, error)
	// StoreBreachResults bulk inserts breach records.
	StoreBreachResults(ctx context.Context, results ...domain.BreachResult) error
	// StorePasswordAnalyses bulk inserts password exposure records.
	StorePasswordAnalyses(ctx context.Context, analyses ...domain.PasswordAnalysis) error
	// AppendSearchHistory inserts a history row and returns it as stored.
	AppendSearchHistory(ctx context.Context, history domain.SearchHistory) (*domain.SearchHistory, error)
	// RecentSearchHistory returns the newest history rows of a profile, newest first.
	RecentSearchHistory(ctx context.Context, profileID domain.ProfileID, limit uint) ([]domain.SearchHistory, error)
}

// ProfileStorage reads and creates caller profiles.
type ProfileStorage interface {
	// ProfileByUserID returns the profile owned by userID or nil when none exists.
	ProfileByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error)
	// CreateProfile inserts a profile and returns it as stored.
	CreateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
}
