package catalog

import (
	"math"
	"regexp"
	"sort"
	"strconv"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// Ranking weights. They sum to 1.0 so the score stays in [0, 1].
const (
	// weightPrice dominates the ranking (60%).
	weightPrice = 0.6

	// weightDuration covers the remaining 40%.
	weightDuration = 0.4
)

var durationParts = regexp.MustCompile(`^(\d+)h\s(\d+)m$`)

// scoredFlight pairs a flight with its best-value score.
type scoredFlight struct {
	flight domain.AdminFlight
	score  float64
}

// RankBestValue orders flights by a weighted best-value score:
//
//	Score = (0.6 × NormalizedPrice) + (0.4 × NormalizedDuration)
//
// Normalized values are in [0, 1] where 0 is the cheapest or shortest
// flight. Lower scores rank first; ties keep departure order. The input is
// not mutated.
func RankBestValue(flights []domain.AdminFlight) []domain.AdminFlight {
	if len(flights) == 0 {
		return []domain.AdminFlight{}
	}

	minPrice, maxPrice := priceRange(flights)
	minDur, maxDur := durationRange(flights)

	scored := make([]scoredFlight, len(flights))
	for i, f := range flights {
		normPrice := normalizeValue(f.Price, minPrice, maxPrice)
		normDuration := normalizeValue(float64(durationMinutes(f.Duration)), float64(minDur), float64(maxDur))
		scored[i] = scoredFlight{
			flight: f,
			score:  weightPrice*normPrice + weightDuration*normDuration,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score < scored[j].score
		}
		return scored[i].flight.DepartureTime.Before(scored[j].flight.DepartureTime.Time)
	})

	out := make([]domain.AdminFlight, len(scored))
	for i, s := range scored {
		out[i] = s.flight
	}
	return out
}

// normalizeValue maps value into [0, 1]. Uniform values all normalize to 0.
func normalizeValue(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}

func priceRange(flights []domain.AdminFlight) (min, max float64) {
	min = math.MaxFloat64
	for _, f := range flights {
		if f.Price < min {
			min = f.Price
		}
		if f.Price > max {
			max = f.Price
		}
	}
	return min, max
}

func durationRange(flights []domain.AdminFlight) (min, max int) {
	min = math.MaxInt
	for _, f := range flights {
		d := durationMinutes(f.Duration)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// durationMinutes parses an "Xh Ym" duration. Unparseable values rank as
// the longest possible flight.
func durationMinutes(s string) int {
	m := durationParts.FindStringSubmatch(s)
	if m == nil {
		return math.MaxInt32
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return h*60 + mins
}
