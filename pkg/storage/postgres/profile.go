package postgres

import (
	"context"
	"fmt"

	"breachcheck/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const profilesTable = "profiles"

func (p *PgSQL) ProfileByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile by user id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CreateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	row := PgProfile{
		UserID:      uuid.UUID(profile.UserID),
		DisplayName: profile.DisplayName,
	}

	var result PgProfile
	found, err := p.Builder.Insert(profilesTable).
		Rows(row).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store profile into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("profile insert returned no row")
	}

	return result.ToDomain(), nil
}
