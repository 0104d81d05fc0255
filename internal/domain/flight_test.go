package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCabinClass_IsValid(t *testing.T) {
	tests := []struct {
		class CabinClass
		want  bool
	}{
		{CabinEconomy, true},
		{CabinBusiness, true},
		{CabinFirst, true},
		{CabinClass("economy"), false},
		{CabinClass(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.IsValid())
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{45, "0h 45m"},
		{150, "2h 30m"},
		{600, "10h 0m"},
		{-5, "0h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.minutes))
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", input: "2025-06-01T08:30:00Z", want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "local date-time", input: "2025-06-01T08:30:00", want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "minutes only", input: "2025-06-01T08:30", want: time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{name: "date only", input: "2025-06-01", want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time))
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not a time"`), &ts))

	zero, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(zero))

	orig := NewTimestamp(time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC))
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, orig.Equal(back.Time))
}

func TestTimestamp_RoundTripKeepsFraction(t *testing.T) {
	tests := []string{
		"2025-05-20T10:15:30.123456",
		"2025-06-01T08:00:00.5",
		"2025-06-01T08:00:00.000000001Z",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			orig, err := ParseTimestamp(raw)
			require.NoError(t, err)

			data, err := json.Marshal(orig)
			require.NoError(t, err)

			var back Timestamp
			require.NoError(t, json.Unmarshal(data, &back))
			assert.True(t, orig.Equal(back.Time), "%s became %s", raw, data)
		})
	}
}

func TestInputFromFlight(t *testing.T) {
	dep := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	f := AdminFlight{
		Flight: Flight{
			FlightNumber: "AV10", Airline: "Avianca", Origin: "BOG", Destination: "MIA",
			DepartureTime: NewTimestamp(dep), ArrivalTime: NewTimestamp(dep.Add(3 * time.Hour)),
			Duration: "3h 0m", Price: 300, AircraftType: "A320", AvailableSeats: 90, CabinClass: CabinBusiness,
		},
		ID:     7,
		Active: false,
	}

	in := InputFromFlight(f)
	assert.Equal(t, "AV10", in.FlightNumber)
	assert.Equal(t, dep, in.DepartureTime)
	assert.Equal(t, CabinBusiness, in.CabinClass)
	assert.False(t, in.Active)
}

func TestNewFlightInput_Defaults(t *testing.T) {
	in := NewFlightInput()
	assert.Equal(t, 100, in.AvailableSeats)
	assert.Equal(t, CabinEconomy, in.CabinClass)
	assert.True(t, in.Active)
}
