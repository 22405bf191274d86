package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type SeatClass int

const (
	SeatClassEconomy SeatClass = iota
	SeatClassBusiness
	SeatClassFirst

	seatClassCount
)

var ErrInvalidSeatClass = errors.New("invalid seat class")

var seatClassNames = [seatClassCount]string{"economy", "business", "first"}

// SeatClasses lists every class in display order.
func SeatClasses() []SeatClass {
	return []SeatClass{SeatClassEconomy, SeatClassBusiness, SeatClassFirst}
}

func (c SeatClass) Valid() bool {
	return c >= 0 && c < seatClassCount
}

func (c SeatClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("SeatClass(%d)", int(c))
	}
	return seatClassNames[c]
}

func ParseSeatClass(s string) (SeatClass, error) {
	for i, name := range seatClassNames {
		if strings.EqualFold(s, name) {
			return SeatClass(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSeatClass, s)
}

func (c SeatClass) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeatClass, int(c))
	}
	return []byte(c.String()), nil
}

func (c *SeatClass) UnmarshalText(text []byte) error {
	parsed, err := ParseSeatClass(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ClassTable holds one value per seat class. Being an array, every class
// always has an entry.
type ClassTable [seatClassCount]int

func NewClassTable(economy, business, first int) ClassTable {
	return ClassTable{economy, business, first}
}

func (t ClassTable) Get(c SeatClass) int {
	return t[c]
}

type classTableJSON struct {
	Economy  int `json:"economy"`
	Business int `json:"business"`
	First    int `json:"first"`
}

func (t ClassTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(classTableJSON{
		Economy:  t[SeatClassEconomy],
		Business: t[SeatClassBusiness],
		First:    t[SeatClassFirst],
	})
}

// UnmarshalJSON requires an entry for every class.
func (t *ClassTable) UnmarshalJSON(data []byte) error {
	var raw struct {
		Economy  *int `json:"economy"`
		Business *int `json:"business"`
		First    *int `json:"first"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var table ClassTable
	for class, v := range [seatClassCount]*int{raw.Economy, raw.Business, raw.First} {
		if v == nil {
			return fmt.Errorf("%w: missing %s entry", ErrInvalidSeatClass, SeatClass(class))
		}
		table[class] = *v
	}
	*t = table
	return nil
}

// Leg is one end of a flight. Time and Date are kept as the display text
// supplied by the catalog ("14:30", "03:45+1", "2024-04-10").
type Leg struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
	Date    string `json:"date"`
}

type Flight struct {
	ID             string     `json:"id"`
	Airline        string     `json:"airline"`
	FlightNumber   string     `json:"flight_number"`
	Departure      Leg        `json:"departure"`
	Arrival        Leg        `json:"arrival"`
	Duration       string     `json:"duration"`
	Price          ClassTable `json:"price"`
	AvailableSeats ClassTable `json:"available_seats"`
	Aircraft       string     `json:"aircraft"`
	Stops          int        `json:"stops"`
	Amenities      []string   `json:"amenities"`
}
