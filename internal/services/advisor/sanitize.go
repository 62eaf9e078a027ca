package advisor

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// fillValueLimit is the magnitude at or beyond which NASA POWER values are
// fill values (-999 and friends) rather than measurements.
const fillValueLimit = 900

// CleanValue coerces a raw climatology value to a number. Missing,
// non-numeric, non-finite and fill values all become nil.
func CleanValue(v any) *float64 {
	var num float64

	switch t := v.(type) {
	case nil:
		return nil
	case *float64:
		if t == nil {
			return nil
		}
		num = *t
	case float64:
		num = t
	case float32:
		num = float64(t)
	case int:
		num = float64(t)
	case int64:
		num = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		num = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		num = f
	default:
		return nil
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return nil
	}
	if num >= fillValueLimit || num <= -fillValueLimit {
		return nil
	}

	return &num
}
