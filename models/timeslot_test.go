package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func slot(from, to string) TimeSlot {
	return TimeSlot{From: day(from), To: day(to)}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	base := slot("2024-01-10", "2024-01-15")

	cases := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{"identical", slot("2024-01-10", "2024-01-15"), true},
		{"inside", slot("2024-01-11", "2024-01-12"), true},
		{"covers", slot("2024-01-01", "2024-01-31"), true},
		{"starts before ends inside", slot("2024-01-08", "2024-01-11"), true},
		{"starts inside ends after", slot("2024-01-14", "2024-01-20"), true},
		{"back to back before", slot("2024-01-05", "2024-01-10"), false},
		{"back to back after", slot("2024-01-15", "2024-01-18"), false},
		{"disjoint", slot("2024-02-01", "2024-02-03"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestTimeSlot_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(slot("2024-01-01", "2024-01-04"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"from":"2024-01-01","to":"2024-01-04"}`, string(raw))
}

func TestLedgerFrom_SortedByPickup(t *testing.T) {
	bookings := []Booking{
		{ID: 2, BookedTimeSlots: slot("2024-03-01", "2024-03-02")},
		{ID: 1, BookedTimeSlots: slot("2024-01-01", "2024-01-04")},
	}

	ledger := LedgerFrom(bookings)

	require.Len(t, ledger, 2)
	assert.Equal(t, slot("2024-01-01", "2024-01-04"), ledger[0])
	assert.Equal(t, slot("2024-03-01", "2024-03-02"), ledger[1])
}

func TestLedgerFrom_EmptyIsNotNil(t *testing.T) {
	ledger := LedgerFrom(nil)
	assert.NotNil(t, ledger)
	assert.Empty(t, ledger)

	raw, err := json.Marshal(Car{Name: "Kia Rio"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"bookedTimeSlots":null`)

	c := Car{Name: "Kia Rio"}
	c.FillLedger()
	raw, err = json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"bookedTimeSlots":[]`)
}

func TestCar_Brand(t *testing.T) {
	assert.Equal(t, "Toyota", Car{Name: "Toyota Camry"}.Brand())
	assert.Equal(t, "Tesla", Car{Name: "Tesla"}.Brand())
	assert.Equal(t, "Mini", Car{Name: "  Mini Cooper S"}.Brand())
}

func TestUser_Roles(t *testing.T) {
	assert.True(t, User{Role: RoleAdmin}.IsAdmin())
	assert.False(t, User{Role: RoleUser}.IsAdmin())
	assert.True(t, ValidRole("user"))
	assert.False(t, ValidRole("owner"))
}

func TestTimeSlot_UnmarshalJSON(t *testing.T) {
	var s TimeSlot
	require.NoError(t, json.Unmarshal([]byte(`{"from":"2024-01-01","to":"2024-01-04T00:00:00Z"}`), &s))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.From)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), s.To)

	assert.Error(t, json.Unmarshal([]byte(`{"from":"01/02/2024","to":"2024-01-04"}`), &s))
}
