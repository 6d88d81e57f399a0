package hrapi

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric field on the payroll backend wire. The backend and the
// admin UI before it are loose about encoding: amounts arrive as JSON
// numbers, quoted decimal strings, empty strings or null. Anything that does
// not parse cleanly is coerced to 0 at this boundary so a bad field can never
// poison a computed total. Outgoing values are always serialized as fixed
// 2-decimal strings, which is what the backend serializers expect.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if strings.TrimSpace(s) == "" {
		*n = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%.2f"`, float64(n))), nil
}
