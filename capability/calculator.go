package capability

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/expr-lang/expr"
)

// Calculator evaluates a single arithmetic expression.
type Calculator struct{}

// NewCalculator returns the arithmetic capability.
func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Name() string {
	return "calculator"
}

func (c *Calculator) Description() string {
	return "Perform mathematical computations.\n" +
		"Example:\n" +
		"Action: calculator: 2 * (10 + 5)"
}

// Call compiles and evaluates the expression without any environment, so
// only literals and operators are available.
func (c *Calculator) Call(_ context.Context, input string) (string, error) {
	program, err := expr.Compile(input)
	if err != nil {
		return "", fmt.Errorf("invalid expression: %w", err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return "", fmt.Errorf("evaluating expression: %w", err)
	}
	return formatValue(out)
}

// formatValue renders the result the way the model expects: integers
// without a decimal point, floats with their shortest exact form.
func formatValue(v interface{}) (string, error) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case float64:
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return "", fmt.Errorf("result is not a finite number")
		}
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(n), nil
	case string:
		return n, nil
	default:
		return "", fmt.Errorf("expression did not evaluate to a number, got %T", v)
	}
}
