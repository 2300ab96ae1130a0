package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator(t *testing.T) {
	c := NewCalculator()
	assert.Equal(t, "calculator", c.Name())

	tests := []struct {
		expr string
		want string
	}{
		{"2 * (10 + 5)", "30"},
		{"2 + 2", "4"},
		{"10 / 4", "2.5"},
		{"2 ** 10", "1024"},
		{"0.25 * 160", "40"},
		{"2350 * 25000", "58750000"},
		{"-3 + 1", "-2"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := c.Call(context.Background(), tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatorInvalidExpression(t *testing.T) {
	c := NewCalculator()

	_, err := c.Call(context.Background(), "2 +* 2")
	assert.Error(t, err)

	_, err = c.Call(context.Background(), "")
	assert.Error(t, err)
}

func TestCalculatorDivisionByZero(t *testing.T) {
	c := NewCalculator()
	_, err := c.Call(context.Background(), "5 / 0")
	assert.Error(t, err, "a non-finite result is an error, not an observation")
}

func TestCalculatorRejectsIdentifiers(t *testing.T) {
	c := NewCalculator()
	_, err := c.Call(context.Background(), "os.Exit(1)")
	assert.Error(t, err, "only literals and operators are allowed")
}
