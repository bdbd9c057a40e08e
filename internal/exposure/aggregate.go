// Package exposure turns raw breach records into per-identity exposure data,
// analyzes exposed passwords and scores the overall risk of a search.
package exposure

import "breachcheck/pkg/breachprovider"

// UnknownBreach is used when a record does not name its source database.
const UnknownBreach = "Unknown"

// Data type labels attached to breach results.
const (
	DataTypeEmail        = "email"
	DataTypePassword     = "password"
	DataTypePasswordHash = "password_hash"
	DataTypeUsername     = "username"
	DataTypeName         = "name"
	DataTypeIPAddress    = "ip_address"
	DataTypePhone        = "phone"
	DataTypeAddress      = "address"
)

// Identity is every exposure found for one email address. All lists are
// duplicate free and keep first-seen order.
type Identity struct {
	Email string
	// Passwords holds plaintext passwords and, for records without one, hashes.
	Passwords []string
	Breaches  []string
	// DataTypes lists the exposed data types per breach name.
	DataTypes map[string][]string
}

// Aggregation groups raw records by identity and indexes plaintext passwords
// by the identities they were seen under.
type Aggregation struct {
	Identities []*Identity

	byEmail       map[string]*Identity
	passwordIndex map[string][]string
	plaintexts    []string
}

// Aggregate builds an Aggregation from raw provider records. Records without
// an email are skipped.
func Aggregate(entries []breachprovider.Entry) *Aggregation {
	a := &Aggregation{
		byEmail:       make(map[string]*Identity),
		passwordIndex: make(map[string][]string),
	}
	for i := range entries {
		a.add(&entries[i])
	}

	return a
}

func (a *Aggregation) add(e *breachprovider.Entry) {
	if len(e.Email) == 0 {
		return
	}
	email := e.Email[0]

	id, ok := a.byEmail[email]
	if !ok {
		id = &Identity{Email: email, DataTypes: make(map[string][]string)}
		a.byEmail[email] = id
		a.Identities = append(a.Identities, id)
	}

	breaches := e.DatabaseName
	if len(breaches) == 0 {
		breaches = []string{UnknownBreach}
	}
	types := entryDataTypes(e)
	for _, b := range breaches {
		id.Breaches = appendUnique(id.Breaches, b)
		for _, t := range types {
			id.DataTypes[b] = appendUnique(id.DataTypes[b], t)
		}
	}

	switch {
	case len(e.Password) > 0:
		pw := e.Password[0]
		id.Passwords = appendUnique(id.Passwords, pw)
		if _, seen := a.passwordIndex[pw]; !seen {
			a.plaintexts = append(a.plaintexts, pw)
		}
		a.passwordIndex[pw] = appendUnique(a.passwordIndex[pw], email)
	case len(e.HashedPassword) > 0:
		// hashes are never reuse-analyzed
		id.Passwords = appendUnique(id.Passwords, e.HashedPassword[0])
	}
}

func entryDataTypes(e *breachprovider.Entry) []string {
	types := []string{DataTypeEmail}
	for _, f := range []struct {
		present bool
		label   string
	}{
		{len(e.Password) > 0, DataTypePassword},
		{len(e.HashedPassword) > 0, DataTypePasswordHash},
		{len(e.Username) > 0, DataTypeUsername},
		{len(e.Name) > 0, DataTypeName},
		{len(e.IPAddress) > 0, DataTypeIPAddress},
		{len(e.Phone) > 0, DataTypePhone},
		{len(e.Address) > 0, DataTypeAddress},
	} {
		if f.present {
			types = append(types, f.label)
		}
	}

	return types
}

// Identity returns the identity for email, or nil.
func (a *Aggregation) Identity(email string) *Identity {
	return a.byEmail[email]
}

// Breaches returns the union of breach names across identities in first-seen order.
func (a *Aggregation) Breaches() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, id := range a.Identities {
		for _, b := range id.Breaches {
			if _, ok := seen[b]; ok {
				continue
			}
			seen[b] = struct{}{}
			out = append(out, b)
		}
	}

	return out
}

// Plaintexts returns every plaintext password in first-seen order.
func (a *Aggregation) Plaintexts() []string {
	return a.plaintexts
}

// Emails returns the identities a plaintext password was seen under, in
// first-seen order.
func (a *Aggregation) Emails(password string) []string {
	return a.passwordIndex[password]
}

// HasPlaintext reports whether any record exposed a plaintext password.
func (a *Aggregation) HasPlaintext() bool {
	return len(a.plaintexts) > 0
}

// RecordCount returns the number of (identity, breach) pairs.
func (a *Aggregation) RecordCount() int {
	n := 0
	for _, id := range a.Identities {
		n += len(id.Breaches)
	}

	return n
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}

	return append(list, v)
}
