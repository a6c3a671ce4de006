package pricing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrInvalidInput is returned by strict pricing when an input is outside the
// domain of the Black-Scholes formula.
var ErrInvalidInput = errors.New("invalid pricing input")

// Inputs holds the market parameters of a single European option.
type Inputs struct {
	Spot       float64 `json:"spot" yaml:"spot"`             // S: spot price of the underlying
	Strike     float64 `json:"strike" yaml:"strike"`         // K: strike price
	Expiry     float64 `json:"expiry" yaml:"expiry"`         // T: time to expiry in years
	Rate       float64 `json:"rate" yaml:"rate"`             // r: continuously compounded risk-free rate
	Volatility float64 `json:"volatility" yaml:"volatility"` // sigma: annualised volatility as a decimal
}

// Validate checks that S, K, T and sigma are finite and strictly positive and
// that r is finite.
func (in Inputs) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"spot", in.Spot},
		{"strike", in.Strike},
		{"expiry", in.Expiry},
		{"volatility", in.Volatility},
	}
	for _, p := range positive {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidInput, p.name, p.v)
		}
	}
	if math.IsNaN(in.Rate) || math.IsInf(in.Rate, 0) {
		return fmt.Errorf("%w: rate must be finite, got %v", ErrInvalidInput, in.Rate)
	}
	return nil
}

// BlackScholesPrice calculates the price of a European option using the Black-Scholes model.
//
// Parameters:
//   - optType: Call or Put
//   - in.Spot (S): spot price of the underlying asset
//   - in.Strike (K): strike price of the option
//   - in.Expiry (T): time to expiration in years
//   - in.Rate (r): continuously compounded risk-free interest rate
//   - in.Volatility (sigma): annualised volatility of the underlying
//
// Returns:
// The option price, computed as
//
//	d1 = (ln(S/K) + (r + sigma^2/2)T) / (sigma * sqrt(T))
//	d2 = d1 - sigma * sqrt(T)
//	call = S*N(d1) - K*exp(-rT)*N(d2)
//	put  = K*exp(-rT)*N(-d2) - S*N(-d1)
//
// Inputs are not range checked: a zero or negative T or sigma yields NaN or
// an infinity rather than an error. Use a strict Pricer to reject them.
// The only error is ErrInvalidVariant for an optType other than Call or Put.
func BlackScholesPrice(optType OptionType, in Inputs) (float64, error) {
	S, K, T, r, sigma := in.Spot, in.Strike, in.Expiry, in.Rate, in.Volatility

	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 := d1 - sigma*math.Sqrt(T)
	discount := math.Exp(-r * T)

	switch optType {
	case Call:
		return S*normCDF(d1) - K*discount*normCDF(d2), nil
	case Put:
		return K*discount*normCDF(-d2) - S*normCDF(-d1), nil
	}
	return 0, fmt.Errorf("%w: got %s", ErrInvalidVariant, optType)
}

// normCDF is the cumulative distribution function of the standard normal distribution.
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
