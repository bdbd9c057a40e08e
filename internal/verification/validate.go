package verification

import (
	"regexp"
	"strings"

	"breachcheck/pkg/domain"
	"breachcheck/pkg/serrors"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	domainPattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9\-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)
)

// NormalizeSearchValue trims and lower-cases value and checks it is a valid
// email address or registrable domain for kind.
func NormalizeSearchValue(kind domain.SearchKind, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch kind {
	case domain.SearchKindEmail:
		if !emailPattern.MatchString(v) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid email format")
		}
	case domain.SearchKindDomain:
		v = strings.TrimSuffix(v, ".")
		if !domainPattern.MatchString(v) {
			return "", serrors.With(serrors.ErrBadRequest, "invalid domain format")
		}
		// rejects bare public suffixes such as "co.uk"
		if _, err := publicsuffix.Domain(v); err != nil {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain format")
		}
	default:
		return "", serrors.With(serrors.ErrBadRequest, "invalid search type %q", kind)
	}

	return v, nil
}
