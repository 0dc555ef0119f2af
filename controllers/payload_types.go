package controllers

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// entityID accepts an id as a JSON number, a numeric string, or a resolved
// record carrying "_id" (the dashboard echoes populated bookings back).
type entityID uint

func parseEntityID(raw interface{}) (entityID, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return 0, fmt.Errorf("invalid id %v", v)
		}
		return entityID(v), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", s)
		}
		return entityID(id), nil
	case map[string]interface{}:
		return parseEntityID(v["_id"])
	default:
		return 0, fmt.Errorf("invalid id %v", v)
	}
}

func (id *entityID) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	parsed, err := parseEntityID(raw)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// flexNumber accepts a JSON number or a numeric string, as form inputs send.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	var raw interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*n = 0
	case float64:
		*n = flexNumber(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = flexNumber(f)
	default:
		return fmt.Errorf("invalid number %v", v)
	}
	return nil
}

func (n *flexNumber) floatPtr() *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}

// wholeNumber rejects fractions and values outside the int range.
func (n flexNumber) wholeNumber() (int, error) {
	f := float64(n)
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, fmt.Errorf("%v is not a whole number", f)
	}
	return int(f), nil
}

type slotPayload struct {
	From string `json:"from"`
	To   string `json:"to"`
}
