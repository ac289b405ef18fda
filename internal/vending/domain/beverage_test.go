package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeverage_String(t *testing.T) {
	assert.Equal(t, "coke", Coke.String())
	assert.Equal(t, "seven-up", SevenUp.String())
	assert.Equal(t, "apple-juice", AppleJuice.String())
	assert.Equal(t, "iced-tea", IcedTea.String())
	assert.Equal(t, "Beverage(8)", Beverage(8).String())
}

func TestBeverage_Valid(t *testing.T) {
	for _, b := range Beverages() {
		assert.True(t, b.Valid(), b.String())
	}
	assert.False(t, Beverage(-1).Valid())
	assert.False(t, Beverage(beverageCount).Valid())
}

func TestParseBeverage(t *testing.T) {
	tests := []struct {
		input string
		want  Beverage
	}{
		{"coke", Coke},
		{"  COKE ", Coke},
		{"seven-up", SevenUp},
		{"7up", SevenUp},
		{"apple-juice", AppleJuice},
		{"Jus-De-Pommes", AppleJuice},
		{"iced-tea", IcedTea},
		{"the-glace", IcedTea},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBeverage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBeverage_Unknown(t *testing.T) {
	_, err := ParseBeverage("root beer")
	assert.ErrorIs(t, err, ErrUnknownBeverage)
	assert.Contains(t, err.Error(), `"root beer"`)
}

func TestParseBeverage_RoundTripsString(t *testing.T) {
	for _, b := range Beverages() {
		got, err := ParseBeverage(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
}
