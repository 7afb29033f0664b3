package pricing

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/theater-billing/internal/theater"
)

// Money represents a monetary value stored in minor units.
type Money = int64

// Rates holds every threshold and rate used to price performances.
type Rates struct {
	TragedyBase          Money `yaml:"tragedy_base" validate:"gte=0"`
	TragedyThreshold     int   `yaml:"tragedy_threshold" validate:"gte=0"`
	TragedyOverPerPerson Money `yaml:"tragedy_over_per_person" validate:"gte=0"`

	ComedyBase          Money `yaml:"comedy_base" validate:"gte=0"`
	ComedyThreshold     int   `yaml:"comedy_threshold" validate:"gte=0"`
	ComedyOverFlat      Money `yaml:"comedy_over_flat" validate:"gte=0"`
	ComedyOverPerPerson Money `yaml:"comedy_over_per_person" validate:"gte=0"`
	ComedyPerAudience   Money `yaml:"comedy_per_audience" validate:"gte=0"`

	BaseVolumeCreditThreshold int `yaml:"base_volume_credit_threshold" validate:"gte=0"`
	ComedyExtraVolumeFactor   int `yaml:"comedy_extra_volume_factor" validate:"gt=0"`
}

// DefaultRates returns the standard rate table.
func DefaultRates() Rates {
	return Rates{
		TragedyBase:               40000,
		TragedyThreshold:          30,
		TragedyOverPerPerson:      1000,
		ComedyBase:                30000,
		ComedyThreshold:           20,
		ComedyOverFlat:            10000,
		ComedyOverPerPerson:       500,
		ComedyPerAudience:         300,
		BaseVolumeCreditThreshold: 30,
		ComedyExtraVolumeFactor:   5,
	}
}

var validate = validator.New()

// Validate ensures the table contains no negative values and a usable credit factor.
func (r Rates) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rates: %w", err)
	}
	return nil
}

// Engine prices performances against a rate table.
type Engine struct {
	Rates Rates
}

// NewEngine validates rates and returns an engine bound to them.
func NewEngine(rates Rates) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{Rates: rates}, nil
}

// Amount calculates the charge for a performance of the given play.
func (e *Engine) Amount(perf theater.Performance, play theater.Play) (Money, error) {
	r := e.Rates
	audience := perf.Audience
	switch play.Type {
	case theater.Tragedy:
		amount := r.TragedyBase
		if audience > r.TragedyThreshold {
			amount += r.TragedyOverPerPerson * Money(audience-r.TragedyThreshold)
		}
		return amount, nil
	case theater.Comedy:
		amount := r.ComedyBase
		if audience > r.ComedyThreshold {
			amount += r.ComedyOverFlat + r.ComedyOverPerPerson*Money(audience-r.ComedyThreshold)
		}
		amount += r.ComedyPerAudience * Money(audience)
		return amount, nil
	default:
		return 0, &theater.UnknownPlayTypeError{Type: string(play.Type)}
	}
}

// VolumeCredits calculates the loyalty credits earned by a performance.
func (e *Engine) VolumeCredits(perf theater.Performance, play theater.Play) int {
	credits := perf.Audience - e.Rates.BaseVolumeCreditThreshold
	if credits < 0 {
		credits = 0
	}
	// extra credit for every ComedyExtraVolumeFactor comedy attendees; an engine built
	// without NewEngine may carry a zero factor
	if play.Type == theater.Comedy && perf.Audience > 0 && e.Rates.ComedyExtraVolumeFactor > 0 {
		credits += perf.Audience / e.Rates.ComedyExtraVolumeFactor
	}
	return credits
}
