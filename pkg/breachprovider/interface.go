// Package breachprovider defines the contract for external breach-intelligence
// providers and the raw records they return.
package breachprovider

import (
	"context"

	"breachcheck/pkg/domain"
)

// Entry is a single raw record returned by a provider. Providers may report
// any field either as a string or as an array of strings; both forms are
// normalized to a slice, and empty strings are dropped.
type Entry struct {
	Email          []string
	Password       []string
	HashedPassword []string
	DatabaseName   []string
	Username       []string
	Name           []string
	IPAddress      []string
	Phone          []string
	Address        []string
}

// SearchResult is one page of provider results.
type SearchResult struct {
	Entries []Entry
	// Total is the number of matching records reported by the provider,
	// which may exceed len(Entries).
	Total int
	// Balance is the remaining provider credit balance, when reported.
	Balance *int
}

// Client searches a breach-intelligence provider.
//
//go:generate mockgen -package mockbreachprovider -source=interface.go -destination=mock/mockbreachprovider.go *
type Client interface {
	// Search runs a single-page search for value. An empty result is not an error.
	Search(ctx context.Context, kind domain.SearchKind, value string) (*SearchResult, error)
}

// BuildQuery returns the provider query string for a search, e.g. "email:a@x.com".
// Values are not quoted.
func BuildQuery(kind domain.SearchKind, value string) string {
	if kind == domain.SearchKindDomain {
		return "domain:" + value
	}

	return "email:" + value
}
