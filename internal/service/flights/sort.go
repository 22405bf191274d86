package flights

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Domenick1991/skybooking/internal/domain"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// ParseSortKey defaults to price, like the results page does.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortByPrice, nil
	case SortByPrice, SortByDuration, SortByDeparture:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

// SortMode selects how duration and departure keys are compared.
type SortMode int

const (
	// SortLegacy compares only the leading integer of the duration text
	// ("9h 55m" ties with "9h 5m") and departure times as plain strings.
	SortLegacy SortMode = iota
	// SortPrecise compares total duration minutes and departure times
	// as minutes, honouring a "+N" next-day suffix.
	SortPrecise
)

// SortFlights returns a stably sorted copy of flights. Price compares the
// fare of the given seat class. Unknown keys keep the input order.
func SortFlights(flights []domain.Flight, key SortKey, class domain.SeatClass, mode SortMode) []domain.Flight {
	out := make([]domain.Flight, len(flights))
	copy(out, flights)

	var less func(a, b domain.Flight) bool
	switch key {
	case SortByPrice:
		less = func(a, b domain.Flight) bool {
			return a.Price.Get(class) < b.Price.Get(class)
		}
	case SortByDuration:
		if mode == SortPrecise {
			less = func(a, b domain.Flight) bool {
				return durationMinutes(a.Duration) < durationMinutes(b.Duration)
			}
		} else {
			less = func(a, b domain.Flight) bool {
				return leadingInt(a.Duration) < leadingInt(b.Duration)
			}
		}
	case SortByDeparture:
		if mode == SortPrecise {
			less = departureLessPrecise
		} else {
			less = func(a, b domain.Flight) bool {
				return a.Departure.Time < b.Departure.Time
			}
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// leadingInt reads the integer prefix of s, skipping leading spaces.
// Text without a numeric prefix counts as 0.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// durationMinutes parses "7h 15m", "45m" or "10h". Unknown tokens are
// ignored.
func durationMinutes(s string) int {
	total := 0
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if len(tok) < 2 {
			continue
		}
		n, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil {
			continue
		}
		switch tok[len(tok)-1] {
		case 'h':
			total += n * 60
		case 'm':
			total += n
		}
	}
	return total
}

// clockMinutes parses "HH:MM" with an optional "+N" day offset.
func clockMinutes(s string) (int, bool) {
	days := 0
	if i := strings.IndexByte(s, '+'); i >= 0 {
		d, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return 0, false
		}
		days = d
		s = s[:i]
	}
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return days*24*60 + h*60 + m, true
}

func departureLessPrecise(a, b domain.Flight) bool {
	am, aok := clockMinutes(a.Departure.Time)
	bm, bok := clockMinutes(b.Departure.Time)
	if aok && bok {
		return am < bm
	}
	return a.Departure.Time < b.Departure.Time
}
