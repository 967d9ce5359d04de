package domain

import (
	"encoding/json"
	"fmt"
)

// OptionKind describes how an optional extra is offered for a car
type OptionKind int

const (
	OptionUnavailable OptionKind = iota
	OptionIncluded
	OptionSurcharge
)

// Raw option codes as stored in the catalog and sent by clients
const (
	OptionCodeUnavailable = -1
	OptionCodeIncluded    = 0
)

// Option is the typed form of a raw option code:
// -1 unavailable, 0 included, >0 surcharge amount
type Option struct {
	Kind   OptionKind
	Amount float64
}

// Unavailable returns an option that cannot be booked
func Unavailable() Option {
	return Option{Kind: OptionUnavailable}
}

// Included returns an option offered at no extra charge
func Included() Option {
	return Option{Kind: OptionIncluded}
}

// Surcharge returns a paid option
func Surcharge(amount float64) Option {
	return Option{Kind: OptionSurcharge, Amount: amount}
}

// OptionFromCode converts a raw code into an Option.
// Any negative code is treated as unavailable.
func OptionFromCode(code float64) Option {
	switch {
	case code < 0:
		return Unavailable()
	case code == 0:
		return Included()
	default:
		return Surcharge(code)
	}
}

// Code converts the option back to its raw code
func (o Option) Code() float64 {
	switch o.Kind {
	case OptionIncluded:
		return OptionCodeIncluded
	case OptionSurcharge:
		return o.Amount
	default:
		return OptionCodeUnavailable
	}
}

// IsAvailable returns true if the option can be selected for a rental
func (o Option) IsAvailable() bool {
	return o.Kind != OptionUnavailable
}

func (o Option) String() string {
	switch o.Kind {
	case OptionIncluded:
		return "included"
	case OptionSurcharge:
		return fmt.Sprintf("surcharge(%g)", o.Amount)
	default:
		return "unavailable"
	}
}

// MarshalJSON encodes the option as its raw code
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Code())
}

// UnmarshalJSON decodes the option from its raw code
func (o *Option) UnmarshalJSON(data []byte) error {
	var code float64
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*o = OptionFromCode(code)
	return nil
}

// CarOptions is the set of extras requested at booking time
type CarOptions struct {
	Cancellation          bool `json:"cancellation"`
	Amendments            bool `json:"amendments"`
	TheftProtection       bool `json:"theftProtection"`
	CollisionDamageWaiver bool `json:"collisionDamageWaiver"`
	FullInsurance         bool `json:"fullInsurance"`
	AdditionalDriver      bool `json:"additionalDriver"`
}
