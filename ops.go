package realnum

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

// Add adds each value to the number in turn and returns the result. With no
// values it returns the (possibly cloned) number unchanged.
//
// Null propagates per step: null plus null stays null, while a null on either
// side of a non-null value counts as zero, so x+null is x and null+x is x.
// Each step is rounded to the precision.
func (n *Num) Add(vals ...any) (*Num, error) {
	return n.reduce(opAdd, vals)
}

// Sub subtracts each value from the number in turn and returns the result.
// Null handling matches [Num.Add]: null-x is -x, x-null is x.
func (n *Num) Sub(vals ...any) (*Num, error) {
	return n.reduce(opSub, vals)
}

// Mul multiplies the number by each value in turn and returns the result.
// A null on either side of any step makes the result null.
func (n *Num) Mul(vals ...any) (*Num, error) {
	return n.reduce(opMul, vals)
}

// Div divides the number by each value in turn and returns the result,
// rounded to the precision. A null on either side of any step makes the
// result null. Division by exact zero returns [ErrDivisionByZero].
func (n *Num) Div(vals ...any) (*Num, error) {
	return n.reduce(opDiv, vals)
}

// Inc adds the given values, or 1 when called without arguments.
func (n *Num) Inc(vals ...any) (*Num, error) {
	if len(vals) == 0 {
		vals = []any{1}
	}
	return n.reduce(opAdd, vals)
}

// Dec subtracts the given values, or 1 when called without arguments.
func (n *Num) Dec(vals ...any) (*Num, error) {
	if len(vals) == 0 {
		vals = []any{1}
	}
	return n.reduce(opSub, vals)
}

// reduce applies op sequentially, left to right, starting from the stored
// value.
func (n *Num) reduce(op binaryOp, vals []any) (*Num, error) {
	ops := make([]operand, len(vals))
	for i, v := range vals {
		parsed, err := parseOperand(v)
		if err != nil {
			return nil, err
		}
		ops[i] = parsed
	}
	t := n.target(false)
	acc := operand{dec: t.dec, null: t.null}
	for _, o := range ops {
		next, err := binaryStep(op, acc, o, t.internalPrec())
		if err != nil {
			return nil, err
		}
		acc = next
	}
	t.setDec(acc.dec, acc.null)
	return t, nil
}

// binaryStep applies a single binary operation with null propagation: both
// operands null gives null; one null counts as zero for add/sub but forces a
// null result for mul/div. Non-null results are rounded to prec.
func binaryStep(op binaryOp, a, b operand, prec int) (operand, error) {
	if a.null && b.null {
		return nullOperand, nil
	}
	if op == opMul || op == opDiv {
		if a.null || b.null {
			return nullOperand, nil
		}
	}
	x, y := a.dec, b.dec
	if a.null {
		x = decimal.Decimal{}
	}
	if b.null {
		y = decimal.Decimal{}
	}
	var res decimal.Decimal
	switch op {
	case opAdd:
		res = x.Add(y)
	case opSub:
		res = x.Sub(y)
	case opMul:
		res = x.Mul(y)
	case opDiv:
		if y.IsZero() {
			return operand{}, fmt.Errorf("cannot divide %s by zero: %w", x, ErrDivisionByZero)
		}
		res = x.DivRound(y, int32(prec))
	}
	return operand{dec: res.Round(int32(prec))}, nil
}

// Round rounds the stored value half away from zero to the given number of
// decimal places, 0 when omitted. Negative places round the integer part, so
// Round(-2) rounds to hundreds. A null value stays null.
func (n *Num) Round(places ...int) (*Num, error) {
	pl := 0
	if len(places) > 0 {
		pl = places[0]
	}
	t := n.target(false)
	if !t.null {
		t.setDec(t.dec.Round(int32(pl)), false)
	}
	return t, nil
}

// Floor rounds the stored value down to the nearest whole number. The
// direction does not depend on sign: -1.2 floors to -2.
func (n *Num) Floor() (*Num, error) {
	t := n.target(false)
	if !t.null {
		t.setDec(t.dec.Floor(), false)
	}
	return t, nil
}

// Ceil rounds the stored value up to the nearest whole number. The direction
// does not depend on sign: -1.8 ceils to -1.
func (n *Num) Ceil() (*Num, error) {
	t := n.target(false)
	if !t.null {
		t.setDec(t.dec.Ceil(), false)
	}
	return t, nil
}

// Abs replaces the stored value with its absolute value.
func (n *Num) Abs() (*Num, error) {
	t := n.target(false)
	if !t.null {
		t.setDec(t.dec.Abs(), false)
	}
	return t, nil
}

// Lt reports whether the number is less than every given value.
// Calling it without values returns [ErrInvalidValue]; a null on either side
// of any comparison makes the result false.
func (n *Num) Lt(vals ...any) (bool, error) {
	return n.compareAll(vals, func(c int) bool { return c < 0 })
}

// Lte reports whether the number is less than or equal to every given value.
func (n *Num) Lte(vals ...any) (bool, error) {
	return n.compareAll(vals, func(c int) bool { return c <= 0 })
}

// Eq reports whether the number equals every given value.
func (n *Num) Eq(vals ...any) (bool, error) {
	return n.compareAll(vals, func(c int) bool { return c == 0 })
}

// Gte reports whether the number is greater than or equal to every given
// value.
func (n *Num) Gte(vals ...any) (bool, error) {
	return n.compareAll(vals, func(c int) bool { return c >= 0 })
}

// Gt reports whether the number is greater than every given value.
func (n *Num) Gt(vals ...any) (bool, error) {
	return n.compareAll(vals, func(c int) bool { return c > 0 })
}

func (n *Num) compareAll(vals []any, holds func(int) bool) (bool, error) {
	if len(vals) == 0 {
		return false, fmt.Errorf("no comparison values were passed: %w", ErrInvalidValue)
	}
	ops := make([]operand, len(vals))
	for i, v := range vals {
		parsed, err := parseOperand(v)
		if err != nil {
			return false, err
		}
		ops[i] = parsed
	}
	for _, o := range ops {
		if n.null || o.null {
			return false, nil
		}
		other := o.dec.Round(int32(n.internalPrec()))
		if !holds(n.dec.Cmp(other)) {
			return false, nil
		}
	}
	return true, nil
}

// Between reports whether the number lies between lo and hi, inclusively
// unless inclusive is given as false. A null bound leaves that side
// unconstrained; a null value is never between anything. Bounds given in the
// wrong order are swapped.
func (n *Num) Between(lo, hi any, inclusive ...bool) (bool, error) {
	incl := true
	if len(inclusive) > 0 {
		incl = inclusive[0]
	}
	lower, err := parseOperand(lo)
	if err != nil {
		return false, err
	}
	upper, err := parseOperand(hi)
	if err != nil {
		return false, err
	}
	if n.null {
		return false, nil
	}
	if !lower.null && !upper.null && lower.dec.Cmp(upper.dec) > 0 {
		lower, upper = upper, lower
	}
	prec := int32(n.internalPrec())
	if !lower.null {
		c := n.dec.Cmp(lower.dec.Round(prec))
		if c < 0 || (!incl && c == 0) {
			return false, nil
		}
	}
	if !upper.null {
		c := n.dec.Cmp(upper.dec.Round(prec))
		if c > 0 || (!incl && c == 0) {
			return false, nil
		}
	}
	return true, nil
}
