package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionType(t *testing.T) {
	tests := []struct {
		in   string
		want OptionType
	}{
		{"call", Call},
		{"CALL", Call},
		{" c ", Call},
		{"put", Put},
		{"Put", Put},
		{"p", Put},
	}
	for _, tt := range tests {
		got, err := ParseOptionType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "straddle", "calls", "1"} {
		_, err := ParseOptionType(bad)
		require.ErrorIs(t, err, ErrInvalidVariant, bad)
		assert.Contains(t, err.Error(), "option type must be 'call' or 'put'")
	}
}

func TestOptionTypeText(t *testing.T) {
	assert.Equal(t, "call", Call.String())
	assert.Equal(t, "Put", Put.Title())
	assert.Equal(t, "OptionType(0)", OptionType(0).String())
	assert.False(t, OptionType(0).Valid())

	b, err := json.Marshal(struct {
		Type OptionType `json:"type"`
	}{Put})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"put"}`, string(b))

	var decoded struct {
		Type OptionType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"CALL"}`), &decoded))
	assert.Equal(t, Call, decoded.Type)

	err = json.Unmarshal([]byte(`{"type":"butterfly"}`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidVariant)

	_, err = OptionType(0).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidVariant)
}
