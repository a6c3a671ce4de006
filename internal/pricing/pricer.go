package pricing

import "fmt"

// Quote is the call and put price for one set of inputs.
type Quote struct {
	Inputs Inputs
	Call   float64
	Put    float64
}

// Price returns the quoted price for optType.
func (q Quote) Price(optType OptionType) (float64, error) {
	switch optType {
	case Call:
		return q.Call, nil
	case Put:
		return q.Put, nil
	}
	return 0, fmt.Errorf("%w: got %s", ErrInvalidVariant, optType)
}

// Pricer prices options in either permissive or strict mode.
//
// A permissive Pricer (the default) evaluates the formula as is and lets
// NaN and infinities reach the caller. A strict Pricer rejects inputs that
// fail Inputs.Validate with ErrInvalidInput before evaluating anything.
// A Pricer is immutable and safe for concurrent use.
type Pricer struct {
	strict bool
}

// PricerOption configures a Pricer.
type PricerOption func(*Pricer)

// WithStrict enables or disables input validation.
func WithStrict(strict bool) PricerOption {
	return func(p *Pricer) { p.strict = strict }
}

func NewPricer(opts ...PricerOption) *Pricer {
	p := &Pricer{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strict reports whether inputs are validated before pricing.
func (p *Pricer) Strict() bool { return p.strict }

func (p *Pricer) Price(optType OptionType, in Inputs) (float64, error) {
	if !optType.Valid() {
		return 0, fmt.Errorf("%w: got %s", ErrInvalidVariant, optType)
	}
	if p.strict {
		if err := in.Validate(); err != nil {
			return 0, err
		}
	}
	return BlackScholesPrice(optType, in)
}

// Quote prices both the call and the put for in.
func (p *Pricer) Quote(in Inputs) (Quote, error) {
	call, err := p.Price(Call, in)
	if err != nil {
		return Quote{}, err
	}
	put, err := p.Price(Put, in)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Inputs: in, Call: call, Put: put}, nil
}
