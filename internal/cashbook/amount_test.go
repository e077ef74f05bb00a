package cashbook_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

func TestNewAmount(t *testing.T) {
	type testCase struct {
		name       string
		expression string
		want       string
		wantErr    bool
	}

	tests := []testCase{
		{name: "Literal", expression: "100", want: "100.00"},
		{name: "Precedence", expression: "2+3*15", want: "47.00"},
		{name: "Parentheses", expression: "(2+3)*15", want: "75.00"},
		{name: "DecimalDot", expression: "12.50", want: "12.50"},
		{name: "DecimalComma", expression: "12,5", want: "12.50"},
		{name: "Division", expression: "10/4", want: "2.50"},
		{name: "RoundsToCents", expression: "10/3", want: "3.33"},
		{name: "UnaryMinusInside", expression: "10-(-5)", want: "15.00"},
		{name: "Whitespace", expression: " 1 + 2 ", want: "3.00"},
		{name: "Negative", expression: "-5", wantErr: true},
		{name: "Zero", expression: "0", wantErr: true},
		{name: "ZeroResult", expression: "5-5", wantErr: true},
		{name: "RoundsToZero", expression: "0.001", wantErr: true},
		{name: "Letters", expression: "abc", wantErr: true},
		{name: "Empty", expression: "", wantErr: true},
		{name: "DivisionByZero", expression: "1/0", wantErr: true},
		{name: "Exponent", expression: "1e3", wantErr: true},
		{name: "Hex", expression: "0x10", wantErr: true},
		{name: "Dangling", expression: "5+", wantErr: true},
		{name: "Modulo", expression: "5%2", wantErr: true},
		{name: "Call", expression: "len(1)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cashbook.NewAmount(tt.expression)

			if tt.wantErr {
				assert.ErrorIs(t, err, cashbook.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewAmount_KeepsExpression(t *testing.T) {
	a, err := cashbook.NewAmount("2+3*15")
	require.NoError(t, err)

	assert.Equal(t, "2+3*15", a.Expression())
	assert.True(t, a.Value().Equal(decimal.NewFromInt(47)))
}

func TestNewAmount_Arithmetic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(1, 100000).Draw(t, "a")
		b := rapid.Int64Range(0, 1000).Draw(t, "b")
		c := rapid.Int64Range(0, 1000).Draw(t, "c")

		got, err := cashbook.NewAmount(fmt.Sprintf("%d+%d*%d", a, b, c))
		require.NoError(t, err)

		want := decimal.NewFromInt(a + b*c)
		if !got.Value().Equal(want) {
			t.Fatalf("got %s, want %s", got.Value(), want)
		}
	})
}

func TestNewAmount_NonPositive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(0, 1000000).Draw(t, "n")

		_, err := cashbook.NewAmount(fmt.Sprintf("-%d", n))
		require.ErrorIs(t, err, cashbook.ErrInvalidAmount)
	})
}

func TestAmount_Add(t *testing.T) {
	sum := cashbook.MustAmount("2*5").Add(cashbook.MustAmount("1-0.5"))

	assert.Equal(t, "10.50", sum.String())

	reparsed, err := cashbook.NewAmount(sum.Expression())
	require.NoError(t, err)
	assert.True(t, reparsed.Value().Equal(sum.Value()))
}

func TestRestoreAmount(t *testing.T) {
	merged := cashbook.MustAmount("1/3").Add(cashbook.MustAmount("1/3"))
	require.Equal(t, "0.66", merged.String())

	reevaluated, err := cashbook.NewAmount(merged.Expression())
	require.NoError(t, err)
	require.Equal(t, "0.67", reevaluated.String(), "rounding the joined expression differs from the sum")

	restored, err := cashbook.RestoreAmount(merged.Value(), merged.Expression())
	require.NoError(t, err)
	assert.True(t, restored.Equal(merged))

	_, err = cashbook.RestoreAmount(decimal.Zero, "0")
	assert.ErrorIs(t, err, cashbook.ErrInvalidAmount)
}
