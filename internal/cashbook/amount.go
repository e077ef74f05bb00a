package cashbook

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numberLiteral = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// Amount is a positive money value entered as an arithmetic expression such
// as "2+3*15". The value is rounded to cents, the expression is kept verbatim
// for redisplay.
type Amount struct {
	value      decimal.Decimal
	expression string
}

// NewAmount evaluates expression and fails with ErrInvalidAmount unless it
// parses and yields a value greater than zero. Both "." and "," are accepted
// as the decimal separator.
func NewAmount(expression string) (Amount, error) {
	expr := strings.TrimSpace(expression)
	if expr == "" {
		return Amount{}, fmt.Errorf("%w: empty expression", ErrInvalidAmount)
	}

	node, err := parser.ParseExpr(strings.ReplaceAll(expr, ",", "."))
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q does not parse", ErrInvalidAmount, expression)
	}

	value, err := evaluate(node)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, expression, err)
	}

	value = value.Round(2)
	if !value.IsPositive() {
		return Amount{}, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidAmount, expression)
	}

	return Amount{value: value, expression: expr}, nil
}

// RestoreAmount rebuilds a persisted amount. The stored value wins over
// the expression: merged amounts are sums of rounded values and may not
// evaluate back to the same cents.
func RestoreAmount(value decimal.Decimal, expression string) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, fmt.Errorf("%w: stored value %s must be greater than zero", ErrInvalidAmount, value)
	}

	return Amount{value: value.Round(2), expression: expression}, nil
}

// MustAmount is NewAmount for literals known to be valid.
func MustAmount(expression string) Amount {
	a, err := NewAmount(expression)
	if err != nil {
		panic(err)
	}

	return a
}

func evaluate(node ast.Expr) (decimal.Decimal, error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if (n.Kind != token.INT && n.Kind != token.FLOAT) || !numberLiteral.MatchString(n.Value) {
			return decimal.Zero, fmt.Errorf("unsupported literal %s", n.Value)
		}

		return decimal.NewFromString(n.Value)
	case *ast.ParenExpr:
		return evaluate(n.X)
	case *ast.UnaryExpr:
		x, err := evaluate(n.X)
		if err != nil {
			return decimal.Zero, err
		}

		switch n.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return x.Neg(), nil
		}

		return decimal.Zero, fmt.Errorf("unsupported operator %s", n.Op)
	case *ast.BinaryExpr:
		x, err := evaluate(n.X)
		if err != nil {
			return decimal.Zero, err
		}

		y, err := evaluate(n.Y)
		if err != nil {
			return decimal.Zero, err
		}

		switch n.Op {
		case token.ADD:
			return x.Add(y), nil
		case token.SUB:
			return x.Sub(y), nil
		case token.MUL:
			return x.Mul(y), nil
		case token.QUO:
			if y.IsZero() {
				return decimal.Zero, fmt.Errorf("division by zero")
			}

			return x.Div(y), nil
		}

		return decimal.Zero, fmt.Errorf("unsupported operator %s", n.Op)
	}

	return decimal.Zero, fmt.Errorf("unsupported expression")
}

// Value returns the evaluated amount.
func (a Amount) Value() decimal.Decimal {
	return a.value
}

// Expression returns the text the amount was entered as.
func (a Amount) Expression() string {
	return a.expression
}

// Add returns the sum of both amounts; the expression is the concatenation
// of both inputs so it still evaluates to the sum.
func (a Amount) Add(b Amount) Amount {
	return Amount{
		value:      a.value.Add(b.value),
		expression: a.expression + "+" + b.expression,
	}
}

func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value) && a.expression == b.expression
}

func (a Amount) String() string {
	return a.value.StringFixed(2)
}
