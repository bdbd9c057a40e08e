package verification

import (
	"context"

	"breachcheck/pkg/domain"
)

//go:generate mockgen -package mockverification -source=interface.go -destination=mock/mockverification.go *
type Verifier interface {
	Verify(ctx context.Context, userID domain.UserID, kind domain.SearchKind, value string) (*domain.Verification, error)
	History(ctx context.Context, userID domain.UserID) ([]domain.SearchHistory, error)
}
