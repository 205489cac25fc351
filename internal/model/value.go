package model

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the Value variants
type ValueKind string

const (
	KindNumeric ValueKind = "numeric"
	KindText    ValueKind = "text"
)

// Unit qualifies a numeric amount
type Unit string

const (
	UnitUSD          Unit = "usd"
	UnitUSDPerHour   Unit = "usd/hour"
	UnitUSDPerGallon Unit = "usd/gallon"
	UnitUSDPerOunce  Unit = "usd/troy_ounce"
	UnitPeople       Unit = "people"
)

// IsCurrency reports whether amounts in this unit are money
func (u Unit) IsCurrency() bool {
	switch u {
	case UnitUSD, UnitUSDPerHour, UnitUSDPerGallon, UnitUSDPerOunce:
		return true
	}
	return false
}

// Value is a resolved fact. The set of variants is closed: Numeric and Text.
type Value interface {
	Kind() ValueKind
	String() string
	sealed()
}

// Numeric is an amount with a unit (dollars, people)
type Numeric struct {
	Amount float64 `json:"amount"`
	Unit   Unit    `json:"unit"`
}

// Text is a free-text label (a name, a song title)
type Text struct {
	Label string `json:"label"`
}

func (Numeric) Kind() ValueKind { return KindNumeric }
func (Text) Kind() ValueKind    { return KindText }

func (n Numeric) String() string { return fmt.Sprintf("%g %s", n.Amount, n.Unit) }
func (t Text) String() string    { return t.Label }

func (Numeric) sealed() {}
func (Text) sealed()    {}

// MarshalValue encodes a Value with its kind tag so clients can switch on it
func MarshalValue(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case Numeric:
		return json.Marshal(struct {
			Kind ValueKind `json:"kind"`
			Numeric
		}{KindNumeric, val})
	case Text:
		return json.Marshal(struct {
			Kind ValueKind `json:"kind"`
			Text
		}{KindText, val})
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
