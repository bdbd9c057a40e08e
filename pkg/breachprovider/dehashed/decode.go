package dehashed

import (
	"breachcheck/pkg/breachprovider"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

func decodeSearchResponse(b []byte) (*breachprovider.SearchResult, error) {
	out := &breachprovider.SearchResult{Entries: []breachprovider.Entry{}}

	d := jx.DecodeBytes(b)
	if d.Next() != jx.Object {
		return nil, errors.New("response is not an object")
	}
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "entries":
			if d.Next() == jx.Null {
				return d.Null()
			}

			return d.Arr(func(d *jx.Decoder) error {
				e, err := decodeEntry(d)
				if err != nil {
					return err
				}
				out.Entries = append(out.Entries, e)

				return nil
			})
		case "total":
			if d.Next() == jx.Null {
				return d.Null()
			}
			n, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "total")
			}
			out.Total = n

			return nil
		case "balance":
			if d.Next() == jx.Null {
				return d.Null()
			}
			n, err := d.Int()
			if err != nil {
				return errors.Wrap(err, "balance")
			}
			out.Balance = &n

			return nil
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	return out, nil
}

func decodeEntry(d *jx.Decoder) (breachprovider.Entry, error) {
	var e breachprovider.Entry
	if d.Next() != jx.Object {
		// tolerate junk items, they carry no identity
		return e, d.Skip()
	}

	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var dst *[]string
		switch string(key) {
		case "email":
			dst = &e.Email
		case "password":
			dst = &e.Password
		case "hashed_password":
			dst = &e.HashedPassword
		case "database_name":
			dst = &e.DatabaseName
		case "username":
			dst = &e.Username
		case "name":
			dst = &e.Name
		case "ip_address":
			dst = &e.IPAddress
		case "phone":
			dst = &e.Phone
		case "address":
			dst = &e.Address
		default:
			return d.Skip()
		}

		v, err := decodeStrings(d)
		if err != nil {
			return errors.Wrapf(err, "field %q", key)
		}
		*dst = v

		return nil
	})
	if err != nil {
		return e, errors.Wrap(err, "decode entry")
	}

	return e, nil
}

// decodeStrings reads a string, an array of strings or null. Non-string array
// items and empty strings are ignored.
func decodeStrings(d *jx.Decoder) ([]string, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}

		return []string{s}, nil
	case jx.Array:
		var out []string
		err := d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.String {
				return d.Skip()
			}
			s, err := d.Str()
			if err != nil {
				return err
			}
			if s != "" {
				out = append(out, s)
			}

			return nil
		})

		return out, err
	default:
		return nil, d.Skip()
	}
}

func encodeSearchRequest(query string, page, size int) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("query")
	e.Str(query)
	e.FieldStart("page")
	e.Int(page)
	e.FieldStart("size")
	e.Int(size)
	e.ObjEnd()

	return e.Bytes()
}
