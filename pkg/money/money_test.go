package money_test

import (
	"testing"

	"github.com/amirasaad/moneykit/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a new Money instance for testing
func mustNew(t *testing.T, cents int64, code money.Code) money.Money {
	t.Helper()
	m, err := money.New(cents, code)
	require.NoError(t, err, "failed to create money for test")
	return m
}

// Helper function to parse a canonical string for testing
func mustParse(t *testing.T, s string) money.Money {
	t.Helper()
	m, err := money.Parse(s)
	require.NoError(t, err, "failed to parse money for test")
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cents   int64
		code    money.Code
		want    string
		wantErr error
	}{
		{"EUR", 100, money.EUR, "1.00 EUR", nil},
		{"negative USD", -123, money.USD, "-1.23 USD", nil},
		{"currency without symbol", 5, "UZS", "0.05 UZS", nil},
		{"unknown currency", 100, "XXX", "", money.ErrUnknownCurrency},
		{"lowercase code", 100, "eur", "", money.ErrUnknownCurrency},
		{"missing currency", 100, "", "", money.ErrUnknownCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := money.New(tt.cents, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
			assert.Equal(t, tt.cents, m.Cents())
			assert.Equal(t, tt.code, m.Currency())
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { money.MustNew(1, "NOPE") })
	assert.NotPanics(t, func() { money.MustNew(1, money.EUR) })
}

func TestNewFromValue(t *testing.T) {
	m, err := money.NewFromValue(int32(250), money.GBP)
	require.NoError(t, err)
	assert.Equal(t, mustNew(t, 250, money.GBP), m)

	m, err = money.NewFromValue(uint8(7), money.GBP)
	require.NoError(t, err)
	assert.Equal(t, int64(7), m.Cents())

	for _, v := range []any{"100", 1.5, nil, uint64(1 << 63)} {
		_, err := money.NewFromValue(v, money.EUR)
		assert.ErrorIs(t, err, money.ErrInvalidAmount, "%v", v)
	}
}

func TestZero(t *testing.T) {
	z, err := money.Zero(money.CHF)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, money.CHF, z.Currency())

	_, err = money.Zero("???")
	assert.ErrorIs(t, err, money.ErrUnknownCurrency)
}

func TestMoney_Presence(t *testing.T) {
	_, ok := mustNew(t, 0, money.EUR).Presence()
	assert.False(t, ok)
	assert.False(t, mustNew(t, 0, money.EUR).IsPresent())

	m := mustNew(t, 100, money.EUR)
	got, ok := m.Presence()
	assert.True(t, ok)
	assert.Equal(t, m, got)
	assert.True(t, m.IsPresent())
}

func TestMoney_Sign(t *testing.T) {
	pos := mustNew(t, 100, money.EUR)
	neg := mustNew(t, -100, money.EUR)
	zero := mustNew(t, 0, money.EUR)

	assert.True(t, pos.IsPositive())
	assert.False(t, pos.IsNegative())
	assert.False(t, neg.IsPositive())
	assert.True(t, neg.IsNegative())
	assert.True(t, zero.IsPositive(), "zero counts as positive")
	assert.Equal(t, pos, neg.Abs())
	assert.Equal(t, pos, pos.Abs())
}

func TestMoney_Comparison(t *testing.T) {
	eur100 := mustNew(t, 100, money.EUR)
	eur50 := mustNew(t, 50, money.EUR)
	usd100 := mustNew(t, 100, money.USD)

	t.Run("Equals", func(t *testing.T) {
		assert.True(t, eur100.Equals(mustNew(t, 100, money.EUR)))
		assert.False(t, eur100.Equals(eur50))
		assert.False(t, eur100.Equals(usd100))
		assert.True(t, eur100 == mustNew(t, 100, money.EUR))
	})

	t.Run("Compare same currency", func(t *testing.T) {
		c, err := eur100.Compare(eur50)
		require.NoError(t, err)
		assert.Equal(t, 1, c)

		c, err = eur50.Compare(eur100)
		require.NoError(t, err)
		assert.Equal(t, -1, c)

		c, err = eur50.Compare(mustNew(t, 50, money.EUR))
		require.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("ordering helpers", func(t *testing.T) {
		lt, err := eur50.LessThan(eur100)
		require.NoError(t, err)
		assert.True(t, lt)

		le, err := eur100.LessThanOrEqual(eur100)
		require.NoError(t, err)
		assert.True(t, le)

		gt, err := eur50.GreaterThan(eur100)
		require.NoError(t, err)
		assert.False(t, gt)

		ge, err := eur100.GreaterThanOrEqual(eur50)
		require.NoError(t, err)
		assert.True(t, ge)
	})

	t.Run("different currencies", func(t *testing.T) {
		_, err := eur100.Compare(usd100)
		require.ErrorIs(t, err, money.ErrIncompatibleCurrencies)
		assert.EqualError(t, err, "incompatible currencies: cannot compare 1.00 EUR with 1.00 USD")

		ok, err := eur100.LessThanOrEqual(usd100)
		require.ErrorIs(t, err, money.ErrIncompatibleCurrencies)
		assert.False(t, ok)

		ok, err = eur100.GreaterThanOrEqual(usd100)
		require.ErrorIs(t, err, money.ErrIncompatibleCurrencies)
		assert.False(t, ok)
	})
}

func TestCountryCode(t *testing.T) {
	code, ok := money.CountryCode("TW")
	require.True(t, ok)
	assert.Equal(t, money.Code("TWD"), code)
	assert.Equal(t, "$", code.Symbol())

	_, ok = money.CountryCode("ZZ")
	assert.False(t, ok)
}
