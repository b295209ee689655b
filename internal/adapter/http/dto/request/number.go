package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a lenient float. Form fields sometimes arrive as strings, empty
// or garbage; anything that is not a finite number decodes to 0.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number(parseLenient(b))
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

// Count is a lenient integer with the same coercion rules as Number.
// Fractions are truncated.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	*c = Count(int(parseLenient(b)))
	return nil
}

func (c Count) Int() int {
	return int(c)
}

func parseLenient(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0
	}

	var v float64
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0
		}
		v = f
	} else if err := json.Unmarshal(b, &v); err != nil {
		return 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
