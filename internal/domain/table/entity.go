package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var (
	ErrEmptyTableID    = errors.New("table id cannot be empty")
	ErrInvalidNumber   = errors.New("table number must be positive")
	ErrInvalidCapacity = errors.New("table capacity must be positive")
)

// TableID is the backend's opaque identifier. It remembers whether it arrived
// as a JSON number or a JSON string and is written back in the same kind.
// Identity is the textual value only; use Equal rather than ==.
type TableID struct {
	value   string
	numeric bool
}

func NewTableID(value string) TableID { return TableID{value: value} }

func NumericTableID(n int64) TableID {
	return TableID{value: strconv.FormatInt(n, 10), numeric: true}
}

func (id TableID) String() string { return id.value }

func (id TableID) IsZero() bool { return id.value == "" }

func (id TableID) IsNumeric() bool { return id.numeric }

func (id TableID) Equal(other TableID) bool { return id.value == other.value }

func (id TableID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *TableID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = TableID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TableID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = TableID{value: n.String(), numeric: true}
	return nil
}

// Table is a physical seating unit. Immutable per availability query.
type Table struct {
	ID       TableID
	Number   int
	Capacity int
}

func NewTable(id TableID, number, capacity int) (Table, error) {
	if id.IsZero() {
		return Table{}, ErrEmptyTableID
	}
	if number <= 0 {
		return Table{}, ErrInvalidNumber
	}
	if capacity <= 0 {
		return Table{}, ErrInvalidCapacity
	}
	return Table{ID: id, Number: number, Capacity: capacity}, nil
}

func (t Table) Seats(people int) bool {
	return t.Capacity >= people
}

// Availability is derived per query and never persisted on its own.
type Availability struct {
	ID        TableID `json:"id"`
	Number    int     `json:"number"`
	Capacity  int     `json:"capacity"`
	Available bool    `json:"available"`
}

func (t Table) WithAvailability(available bool) Availability {
	return Availability{
		ID:        t.ID,
		Number:    t.Number,
		Capacity:  t.Capacity,
		Available: available,
	}
}

func CountAvailable(items []Availability) int {
	n := 0
	for _, a := range items {
		if a.Available {
			n++
		}
	}
	return n
}

func Find(items []Availability, id TableID) (Availability, bool) {
	for _, a := range items {
		if a.ID.Equal(id) {
			return a, true
		}
	}
	return Availability{}, false
}
