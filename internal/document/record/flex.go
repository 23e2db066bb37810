package record

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/money"
)

// number accepts a JSON number, a numeric string or null. Anything that does
// not parse reads as zero. Present reports whether the key was in the payload
// at all, null included.
type number struct {
	Value   decimal.Decimal
	Present bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	n.Present = true
	n.Value = decimal.Zero

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		n.Value = money.Parse(s)

		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return nil
	}

	n.Value = d

	return nil
}

// text accepts a JSON string, a number or null.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*t = text(s)
	default:
		*t = text(strings.TrimSpace(string(b)))
	}

	return nil
}

func (t text) String() string {
	return string(t)
}
