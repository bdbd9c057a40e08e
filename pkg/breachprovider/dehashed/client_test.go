package dehashed_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"breachcheck/pkg/breachprovider/dehashed"
	"breachcheck/pkg/domain"
	"breachcheck/pkg/serrors"

	"github.com/stretchr/testify/require"
)

const testKey = "secret-test-key"

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *dehashed.Client {
	return dehashed.New(&http.Client{Transport: fn}, "https://provider.test/", testKey, 0)
}

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestClient_Search_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "provider.test", r.URL.Host)
		require.Equal(t, "/v2/search", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, testKey, r.Header.Get("Dehashed-Api-Key"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"query":"email:a@x.com","page":1,"size":100}`, string(b))

		return respond(http.StatusOK, `{
			"balance": 42,
			"total": 3,
			"success": true,
			"took": "12ms",
			"entries": [
				{"id":"1","email":["a@x.com"],"password":["abc"],"database_name":"BreachA","username":["alice"]},
				{"id":"2","email":"a@x.com","hashed_password":["5f4dcc3b"],"database_name":["BreachB","BreachC"],"phone":[]},
				{"id":"3","email":null,"password":"zzz","ip_address":["10.0.0.1"],"extra":{"nested":[1,2]}}
			]
		}`)(r)
	})

	res, err := c.Search(context.Background(), domain.SearchKindEmail, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, 3, res.Total)
	require.NotNil(t, res.Balance)
	require.Equal(t, 42, *res.Balance)
	require.Len(t, res.Entries, 3)

	require.Equal(t, []string{"a@x.com"}, res.Entries[0].Email)
	require.Equal(t, []string{"abc"}, res.Entries[0].Password)
	require.Equal(t, []string{"BreachA"}, res.Entries[0].DatabaseName)
	require.Equal(t, []string{"alice"}, res.Entries[0].Username)

	require.Equal(t, []string{"a@x.com"}, res.Entries[1].Email)
	require.Equal(t, []string{"5f4dcc3b"}, res.Entries[1].HashedPassword)
	require.Equal(t, []string{"BreachB", "BreachC"}, res.Entries[1].DatabaseName)
	require.Empty(t, res.Entries[1].Phone)

	require.Empty(t, res.Entries[2].Email)
	require.Equal(t, []string{"zzz"}, res.Entries[2].Password)
	require.Equal(t, []string{"10.0.0.1"}, res.Entries[2].IPAddress)
}

func TestClient_Search_domainQuery(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"query":"domain:x.com","page":1,"size":100}`, string(b))

		return respond(http.StatusOK, `{"entries":[],"total":0}`)(r)
	})

	res, err := c.Search(context.Background(), domain.SearchKindDomain, "x.com")
	require.NoError(t, err)
	require.Empty(t, res.Entries)
	require.Zero(t, res.Total)
	require.Nil(t, res.Balance)
}

func TestClient_Search_nullEntries(t *testing.T) {
	c := newTestClient(respond(http.StatusOK, `{"entries":null,"total":0,"balance":null}`))

	res, err := c.Search(context.Background(), domain.SearchKindEmail, "a@x.com")
	require.NoError(t, err)
	require.Empty(t, res.Entries)
}

func TestClient_Search_errors(t *testing.T) {
	tests := []struct {
		name    string
		rt      rtFunc
		kind    serrors.Kind
		message string
	}{
		{
			name:    "unauthorized",
			rt:      respond(http.StatusUnauthorized, `{"error":"invalid key `+testKey+`"}`),
			kind:    serrors.ErrUpstreamAuth,
			message: "external service authentication failed",
		},
		{
			name:    "quota",
			rt:      respond(http.StatusTooManyRequests, `{"error":"slow down"}`),
			kind:    serrors.ErrUpstreamQuota,
			message: "external service rate limit exceeded",
		},
		{
			name:    "server error",
			rt:      respond(http.StatusBadGateway, `upstream exploded`),
			kind:    serrors.ErrUpstream,
			message: "provider returned status 502: upstream exploded",
		},
		{
			name:    "malformed json",
			rt:      respond(http.StatusOK, `{"entries":[{"email":`),
			kind:    serrors.ErrUpstream,
			message: "could not decode provider response",
		},
		{
			name:    "not an object",
			rt:      respond(http.StatusOK, `[]`),
			kind:    serrors.ErrUpstream,
			message: "could not decode provider response",
		},
		{
			name: "transport",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			kind:    serrors.ErrUpstream,
			message: "could not reach provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(tt.rt).Search(context.Background(), domain.SearchKindEmail, "a@x.com")
			require.Error(t, err)
			require.ErrorIs(t, err, tt.kind)
			require.Contains(t, err.Error(), tt.message)
			require.NotContains(t, err.Error(), testKey)
		})
	}
}

func TestClient_Search_redactsEchoedKey(t *testing.T) {
	c := newTestClient(respond(http.StatusBadRequest, `bad key `+testKey))

	_, err := c.Search(context.Background(), domain.SearchKindEmail, "a@x.com")
	require.ErrorIs(t, err, serrors.ErrUpstream)
	require.NotContains(t, err.Error(), testKey)
	require.Contains(t, err.Error(), "[redacted]")
}

func TestClient_Search_truncatesBody(t *testing.T) {
	c := newTestClient(respond(http.StatusInternalServerError, strings.Repeat("x", 2000)))

	_, err := c.Search(context.Background(), domain.SearchKindEmail, "a@x.com")
	require.Error(t, err)
	require.Less(t, len(err.Error()), 600)
}
