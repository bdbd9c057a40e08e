package postgres

import (
	"context"
	"fmt"

	"breachcheck/pkg/domain"
	"breachcheck/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	searchRequestsTable   = "search_requests"
	breachResultsTable    = "breach_results"
	passwordAnalysesTable = "password_analyses"
	searchHistoryTable    = "search_history"
)

func (p *PgSQL) CreateSearchRequest(ctx context.Context, req domain.SearchRequest) (*domain.SearchRequest, error) {
	var row PgSearchRequest
	row.FromDomain(req)

	var result PgSearchRequest
	found, err := p.Builder.Insert(searchRequestsTable).
		Rows(row).
		Returning(&PgSearchRequest{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store search request into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("search request insert returned no row")
	}

	return result.ToDomain(), nil
}

// UpdateSearchRequest sets the provided fields and updated_at. Terminal
// statuses also stamp completed_at.
func (p *PgSQL) UpdateSearchRequest(ctx context.Context,
	id domain.SearchRequestID,
	updates storage.SearchRequestUpdates) (*domain.SearchRequest, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.SearchStatusCompleted || updates.Status == domain.SearchStatusFailed {
		rec["completed_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.TotalBreaches != nil {
		rec["total_breaches"] = *updates.TotalBreaches
	}
	if updates.RiskLevel != "" {
		rec["risk_level"] = string(updates.RiskLevel)
	}
	if updates.RiskScore != nil {
		rec["risk_score"] = *updates.RiskScore
	}

	w := []goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}
	if updates.OnlyIfProcessing {
		w = append(w, goqu.I("status").Eq(string(domain.SearchStatusProcessing)))
	}

	var row PgSearchRequest
	found, err := p.Builder.Update(searchRequestsTable).
		Set(rec).
		Where(w...).
		Returning(&PgSearchRequest{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update search request in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SearchRequestByID returns a search request or nil when not found.
func (p *PgSQL) SearchRequestByID(ctx context.Context, id domain.SearchRequestID) (*domain.SearchRequest, error) {
	var row PgSearchRequest
	found, err := p.Builder.From(searchRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch search request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreBreachResults(ctx context.Context, results ...domain.BreachResult) error {
	if len(results) == 0 {
		return nil
	}

	rows := make([]PgBreachResult, len(results))
	for i := range results {
		if err := rows[i].FromDomain(results[i]); err != nil {
			return err
		}
	}

	if _, err := p.Builder.Insert(breachResultsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store breach results into pg: %w", err)
	}

	return nil
}

// BreachResultsBySearchRequest returns the breach records of a search in insertion order.
func (p *PgSQL) BreachResultsBySearchRequest(ctx context.Context,
	id domain.SearchRequestID) ([]domain.BreachResult, error) {
	var rows []PgBreachResult
	if err := p.Builder.From(breachResultsTable).
		Where(goqu.I("search_request_id").Eq(uuid.UUID(id))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch breach results from pg: %w", err)
	}

	out := make([]domain.BreachResult, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) StorePasswordAnalyses(ctx context.Context, analyses ...domain.PasswordAnalysis) error {
	if len(analyses) == 0 {
		return nil
	}

	rows := make([]PgPasswordAnalysis, len(analyses))
	for i := range analyses {
		if err := rows[i].FromDomain(analyses[i]); err != nil {
			return err
		}
	}

	if _, err := p.Builder.Insert(passwordAnalysesTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store password analyses into pg: %w", err)
	}

	return nil
}

// PasswordAnalysesBySearchRequest returns the password records of a search in insertion order.
func (p *PgSQL) PasswordAnalysesBySearchRequest(ctx context.Context,
	id domain.SearchRequestID) ([]domain.PasswordAnalysis, error) {
	var rows []PgPasswordAnalysis
	if err := p.Builder.From(passwordAnalysesTable).
		Where(goqu.I("search_request_id").Eq(uuid.UUID(id))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch password analyses from pg: %w", err)
	}

	out := make([]domain.PasswordAnalysis, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) AppendSearchHistory(ctx context.Context, history domain.SearchHistory) (*domain.SearchHistory, error) {
	var row PgSearchHistory
	row.FromDomain(history)

	var result PgSearchHistory
	found, err := p.Builder.Insert(searchHistoryTable).
		Rows(row).
		Returning(&PgSearchHistory{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store search history into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("search history insert returned no row")
	}

	return result.ToDomain(), nil
}

// RecentSearchHistory returns at most limit rows ordered by created_at DESC, id DESC.
func (p *PgSQL) RecentSearchHistory(ctx context.Context,
	profileID domain.ProfileID,
	limit uint) ([]domain.SearchHistory, error) {
	var rows []PgSearchHistory
	if err := p.Builder.From(searchHistoryTable).
		Where(goqu.I("profile_id").Eq(uuid.UUID(profileID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch search history from pg: %w", err)
	}

	out := make([]domain.SearchHistory, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
