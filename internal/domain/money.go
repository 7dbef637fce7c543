package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Money carries a DECIMAL(10,2) price. It marshals as a fixed two-decimal
// JSON string ("1.50") — the shape the mobile client already parses — and
// accepts either a JSON number or a quoted string on input.
type Money float64

func (m Money) String() string {
	return strconv.FormatFloat(float64(m), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("money: cannot parse %q", s)
	}
	*m = Money(f)
	return nil
}

// Scan accepts the representations the two drivers hand back:
// []byte/string from MySQL DECIMAL, float64/int64 from SQLite NUMERIC.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return err
		}
		*m = Money(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*m = Money(f)
	case float64:
		*m = Money(v)
	case int64:
		*m = Money(v)
	case nil:
		*m = 0
	default:
		return fmt.Errorf("money: unsupported scan type %T", src)
	}
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return float64(m), nil
}
