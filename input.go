package realnum

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// operand is a parsed input value: either null or an exact decimal.
type operand struct {
	dec  decimal.Decimal
	null bool
}

var nullOperand = operand{null: true}

// parseOperand converts a heterogeneous input into an operand. The accepted
// variants are enumerated exhaustively; anything that falls through to the
// default arm is an [ErrInvalidValue].
func parseOperand(v any) (operand, error) {
	switch v := v.(type) {
	case nil:
		return nullOperand, nil
	case *Num:
		if v == nil || v.null {
			return nullOperand, nil
		}
		return operand{dec: v.dec}, nil
	case decimal.Decimal:
		return operand{dec: v}, nil
	case string:
		return parseString(v)
	case int:
		return operand{dec: decimal.NewFromInt(int64(v))}, nil
	case int8:
		return operand{dec: decimal.NewFromInt(int64(v))}, nil
	case int16:
		return operand{dec: decimal.NewFromInt(int64(v))}, nil
	case int32:
		return operand{dec: decimal.NewFromInt(int64(v))}, nil
	case int64:
		return operand{dec: decimal.NewFromInt(v)}, nil
	case uint:
		return parseUint(uint64(v))
	case uint8:
		return parseUint(uint64(v))
	case uint16:
		return parseUint(uint64(v))
	case uint32:
		return parseUint(uint64(v))
	case uint64:
		return parseUint(v)
	case float32:
		return parseFloat(float64(v))
	case float64:
		return parseFloat(v)
	default:
		return operand{}, fmt.Errorf("unsupported value type %T: %w", v, ErrInvalidValue)
	}
}

func parseString(s string) (operand, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "null") {
		return nullOperand, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return operand{}, fmt.Errorf("cannot parse %q as a decimal number: %w", s, ErrInvalidValue)
	}
	return operand{dec: d}, nil
}

func parseFloat(f float64) (operand, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return operand{}, fmt.Errorf("cannot use %v as a decimal number: %w", f, ErrInvalidValue)
	}
	return operand{dec: decimal.NewFromFloat(f)}, nil
}

func parseUint(u uint64) (operand, error) {
	if u <= math.MaxInt64 {
		return operand{dec: decimal.NewFromInt(int64(u))}, nil
	}
	d, err := decimal.NewFromString(strconv.FormatUint(u, 10))
	if err != nil {
		return operand{}, fmt.Errorf("cannot use %v as a decimal number: %w", u, ErrInvalidValue)
	}
	return operand{dec: d}, nil
}
