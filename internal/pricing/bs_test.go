package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reference = Inputs{Spot: 100, Strike: 105, Expiry: 1, Rate: 0.05, Volatility: 0.20}

func TestBlackScholesPriceReferenceCase(t *testing.T) {
	call, err := BlackScholesPrice(Call, reference)
	require.NoError(t, err)
	put, err := BlackScholesPrice(Put, reference)
	require.NoError(t, err)

	assert.InDelta(t, 8.02, call, 1e-2)
	assert.InDelta(t, 7.90, put, 1e-2)
	assert.InDelta(t, 8.021352, call, 1e-5)
	assert.InDelta(t, 7.900442, put, 1e-5)
}

func TestBlackScholesPriceAtTheMoney(t *testing.T) {
	in := Inputs{Spot: 100, Strike: 100, Expiry: 1, Rate: 0.05, Volatility: 0.2}

	call, err := BlackScholesPrice(Call, in)
	require.NoError(t, err)
	put, err := BlackScholesPrice(Put, in)
	require.NoError(t, err)

	assert.InDelta(t, 10.450583572185565, call, 1e-9)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

func TestBlackScholesPricePutCallParity(t *testing.T) {
	cases := []Inputs{
		reference,
		{Spot: 100, Strike: 100, Expiry: 45.0 / 365.0, Rate: 0.03, Volatility: 0.25},
		{Spot: 50, Strike: 80, Expiry: 2, Rate: 0.01, Volatility: 0.6},
		{Spot: 4200, Strike: 4000, Expiry: 0.1, Rate: -0.005, Volatility: 0.15},
		{Spot: 1.2, Strike: 1.1, Expiry: 0.5, Rate: 0.08, Volatility: 0.05},
	}

	for _, in := range cases {
		call, err := BlackScholesPrice(Call, in)
		require.NoError(t, err)
		put, err := BlackScholesPrice(Put, in)
		require.NoError(t, err)

		lhs := call - put
		rhs := in.Spot - in.Strike*math.Exp(-in.Rate*in.Expiry)
		tol := 1e-6 * math.Max(1, math.Abs(rhs))
		assert.InDeltaf(t, rhs, lhs, tol, "put-call parity violated for %+v", in)
	}
}

func TestBlackScholesPriceZeroStrike(t *testing.T) {
	in := Inputs{Spot: 100, Strike: 0, Expiry: 1, Rate: 0.05, Volatility: 0.2}

	call, err := BlackScholesPrice(Call, in)
	require.NoError(t, err)
	put, err := BlackScholesPrice(Put, in)
	require.NoError(t, err)

	// ln(S/0) is +Inf so both normal CDF terms saturate.
	assert.Equal(t, in.Spot, call)
	assert.Equal(t, 0.0, put)
}

func TestBlackScholesPriceIntrinsicLimit(t *testing.T) {
	tests := []struct {
		name     string
		spot     float64
		strike   float64
		wantCall float64
		wantPut  float64
	}{
		{"in the money call", 110, 100, 10, 0},
		{"in the money put", 90, 100, 0, 10},
		{"deep in the money call", 250, 100, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Inputs{Spot: tt.spot, Strike: tt.strike, Expiry: 1, Rate: 0, Volatility: 1e-9}

			call, err := BlackScholesPrice(Call, in)
			require.NoError(t, err)
			put, err := BlackScholesPrice(Put, in)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantCall, call, 1e-9)
			assert.InDelta(t, tt.wantPut, put, 1e-9)
		})
	}
}

func TestBlackScholesPriceCallIncreasesWithVolatility(t *testing.T) {
	const eps = 1e-4

	for sigma := 0.05; sigma <= 1.5; sigma += 0.05 {
		in := reference
		in.Volatility = sigma
		lo, err := BlackScholesPrice(Call, in)
		require.NoError(t, err)

		in.Volatility = sigma + eps
		hi, err := BlackScholesPrice(Call, in)
		require.NoError(t, err)

		assert.GreaterOrEqualf(t, hi, lo, "call price decreased between sigma=%v and sigma=%v", sigma, sigma+eps)
	}
}

func TestBlackScholesPriceSymmetry(t *testing.T) {
	// At zero carry, swapping spot and strike maps a call onto a put.
	for _, in := range []Inputs{
		{Spot: 100, Strike: 105, Expiry: 1, Volatility: 0.2},
		{Spot: 80, Strike: 120, Expiry: 0.25, Volatility: 0.45},
	} {
		call, err := BlackScholesPrice(Call, in)
		require.NoError(t, err)

		swapped := in
		swapped.Spot, swapped.Strike = in.Strike, in.Spot
		put, err := BlackScholesPrice(Put, swapped)
		require.NoError(t, err)

		assert.InDelta(t, call, put, 1e-9)
	}
}

func TestBlackScholesPriceInvalidVariant(t *testing.T) {
	for _, optType := range []OptionType{0, 3, -1} {
		price, err := BlackScholesPrice(optType, reference)
		require.ErrorIs(t, err, ErrInvalidVariant)
		assert.Zero(t, price)
	}
}

func TestBlackScholesPriceIsPermissive(t *testing.T) {
	t.Run("zero expiry at the money", func(t *testing.T) {
		in := Inputs{Spot: 100, Strike: 100, Expiry: 0, Rate: 0.05, Volatility: 0.2}
		call, err := BlackScholesPrice(Call, in)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(call))
	})

	t.Run("negative expiry", func(t *testing.T) {
		in := reference
		in.Expiry = -1
		put, err := BlackScholesPrice(Put, in)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(put))
	})
}

func TestInputsValidate(t *testing.T) {
	require.NoError(t, reference.Validate())

	negativeRate := reference
	negativeRate.Rate = -0.01
	require.NoError(t, negativeRate.Validate())

	tests := []struct {
		name   string
		mutate func(*Inputs)
	}{
		{"zero spot", func(in *Inputs) { in.Spot = 0 }},
		{"negative strike", func(in *Inputs) { in.Strike = -105 }},
		{"zero expiry", func(in *Inputs) { in.Expiry = 0 }},
		{"zero volatility", func(in *Inputs) { in.Volatility = 0 }},
		{"NaN volatility", func(in *Inputs) { in.Volatility = math.NaN() }},
		{"infinite spot", func(in *Inputs) { in.Spot = math.Inf(1) }},
		{"infinite rate", func(in *Inputs) { in.Rate = math.Inf(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := reference
			tt.mutate(&in)
			assert.ErrorIs(t, in.Validate(), ErrInvalidInput)
		})
	}
}
