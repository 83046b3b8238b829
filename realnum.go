package realnum

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidValue indicates an input that cannot be interpreted as a
	// decimal number, or a comparison called without comparison values.
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnresolvableLocale indicates a locale identifier that could not be
	// mapped to a usable locale code.
	ErrUnresolvableLocale = errors.New("unresolvable locale")

	// ErrDivisionByZero indicates division by exact zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidSettings indicates a malformed or unrecognized format-settings
	// expression, key, or value.
	ErrInvalidSettings = errors.New("invalid format settings")
)

// Num is a nullable arbitrary-precision decimal number with per-instance
// rendering settings.
//
// A Num holds:
//
//   - the stored value, which is either null or an exact decimal rounded to
//     the instance's precision;
//   - the precision, the maximum number of fractional digits retained
//     (percent-mode instances keep two extra digits internally);
//   - the locale used for rendering, resolved at the time it is set;
//   - the immutability flag and the format settings.
//
// Instances copy the process defaults (see [Defaults]) at construction time;
// changing the defaults afterwards does not affect existing instances.
//
// By default a Num is immutable: every value-changing method clones the
// receiver, applies the change to the clone, and returns the clone. With
// immutability switched off the same methods mutate the receiver in place and
// return it. Either way the returned *Num is the result, so call sites read
// identically in both modes.
type Num struct {
	dec     decimal.Decimal
	null    bool
	percent bool

	prec      int
	locale    string
	immutable bool
	settings  FormatSettings

	defs *Defaults
}

// New returns a number constructed from v using the process defaults.
//
// Accepted inputs are nil, all integer and unsigned integer kinds, float32,
// float64, numeric strings, the string "null" (case-insensitive, treated as
// nil), another *Num, and [decimal.Decimal]. The value is rounded half away
// from zero to the default precision. When v is a *Num with a higher precision
// than the default, that precision is adopted.
//
// Any other input type, a non-numeric string, NaN, or an infinity returns
// [ErrInvalidValue]. Use [NewOrNull] to degrade invalid input to null instead.
func New(v any) (*Num, error) {
	return std.New(v)
}

// NewOrNull is like [New] but stores null instead of failing on invalid input.
func NewOrNull(v any) *Num {
	return std.NewOrNull(v)
}

// NewWithPrec is like [New] but constructs the number with the given
// precision instead of the default, so high-precision inputs survive
// construction intact:
//
//	n, _ := realnum.NewWithPrec("0.123456789012345678901234567890", 30)
func NewWithPrec(v any, prec int) (*Num, error) {
	return std.NewWithPrec(v, prec)
}

// New returns a number constructed from v using these defaults.
func (ds *Defaults) New(v any) (*Num, error) {
	return ds.newNum(v, false)
}

// NewOrNull is like [Defaults.New] but stores null instead of failing on
// invalid input.
func (ds *Defaults) NewOrNull(v any) *Num {
	n, err := ds.newNum(v, false)
	if err != nil {
		n = ds.blank(false)
	}
	return n
}

// NewWithPrec is like [Defaults.New] but with an explicit precision.
func (ds *Defaults) NewWithPrec(v any, prec int) (*Num, error) {
	if prec < 0 {
		return nil, fmt.Errorf("precision %d is negative: %w", prec, ErrInvalidValue)
	}
	n := ds.blank(false)
	n.prec = prec
	if err := n.store(v); err != nil {
		return nil, err
	}
	return n, nil
}

func (ds *Defaults) newNum(v any, percent bool) (*Num, error) {
	n := ds.blank(percent)
	if src, ok := v.(*Num); ok && src != nil && src.prec > n.prec {
		n.prec = src.prec
	}
	if err := n.store(v); err != nil {
		return nil, err
	}
	return n, nil
}

func (ds *Defaults) blank(percent bool) *Num {
	return &Num{
		null:      true,
		percent:   percent,
		prec:      ds.prec,
		locale:    ds.locale,
		immutable: ds.immutable,
		settings:  ds.settings.clone(),
		defs:      ds,
	}
}

// internalPrec is the fractional digit count actually retained. Percent-mode
// numbers keep two extra digits so that scaling by 100 never loses precision.
func (n *Num) internalPrec() int {
	if n.percent {
		return n.prec + 2
	}
	return n.prec
}

// store parses v and writes it as the current value, rounded half away from
// zero to the internal precision.
func (n *Num) store(v any) error {
	op, err := parseOperand(v)
	if err != nil {
		return err
	}
	n.setDec(op.dec, op.null)
	return nil
}

func (n *Num) setDec(d decimal.Decimal, null bool) {
	n.null = null
	if null {
		n.dec = decimal.Decimal{}
		return
	}
	n.dec = d.Round(int32(n.internalPrec()))
}

// clone returns a deep copy of n.
func (n *Num) clone() *Num {
	m := *n
	m.settings = n.settings.clone()
	return &m
}

// target returns the instance an operation should apply to: the receiver when
// mutation in place is allowed, otherwise a clone. Force selects the clone
// path unconditionally.
func (n *Num) target(force bool) *Num {
	if force || n.immutable {
		return n.clone()
	}
	return n
}

// Copy returns a clone of n regardless of the immutability flag.
func (n *Num) Copy() *Num {
	return n.clone()
}

// SetValue replaces the stored value, applying the same input rules as [New].
// The result is rounded to the current precision.
func (n *Num) SetValue(v any) (*Num, error) {
	op, err := parseOperand(v)
	if err != nil {
		return nil, err
	}
	t := n.target(false)
	t.setDec(op.dec, op.null)
	return t, nil
}

// SetValueOrNull is like [Num.SetValue] but stores null instead of failing on
// invalid input.
func (n *Num) SetValueOrNull(v any) *Num {
	op, err := parseOperand(v)
	t := n.target(false)
	if err != nil {
		t.setDec(decimal.Decimal{}, true)
		return t
	}
	t.setDec(op.dec, op.null)
	return t
}

// SetPrec changes the maximum number of fractional digits retained. Lowering
// the precision re-rounds the stored value immediately and is lossy; raising
// it zero-extends the value on read. Digits lost to a lower precision are not
// recovered by raising it again.
func (n *Num) SetPrec(prec int) (*Num, error) {
	if prec < 0 {
		return nil, fmt.Errorf("precision %d is negative: %w", prec, ErrInvalidValue)
	}
	t := n.target(false)
	t.prec = prec
	if !t.null {
		t.dec = t.dec.Round(int32(t.internalPrec()))
	}
	return t, nil
}

// SetLocale changes the rendering locale. The identifier is resolved through
// the locale resolver immediately; an identifier that cannot be resolved
// returns [ErrUnresolvableLocale].
func (n *Num) SetLocale(id any) (*Num, error) {
	code, err := n.defs.resolveLocale(id)
	if err != nil {
		return nil, err
	}
	t := n.target(false)
	t.locale = code
	return t, nil
}

// SetImmutable switches copy-on-write behavior on or off. The switch itself
// obeys the current mode: an immutable number returns a clone carrying the
// new flag.
func (n *Num) SetImmutable(immutable bool) *Num {
	t := n.target(false)
	t.immutable = immutable
	return t
}

// SetFormatSettings merges the given settings onto the instance settings.
// It accepts a [FormatSettings] value, a map[string]any, or an expression
// string such as "thousands !trailZeros null=0" (see [ParseFormatSettings]).
func (n *Num) SetFormatSettings(v any) (*Num, error) {
	fs, err := ParseFormatSettings(v)
	if err != nil {
		return nil, err
	}
	t := n.target(false)
	t.settings = t.settings.merge(fs)
	return t, nil
}

// IsNull reports whether the stored value is absent.
func (n *Num) IsNull() bool {
	return n.null
}

// Val returns the canonical string: the stored value padded to exactly the
// internal precision, for example "1.50000000000000000000" at precision 20.
// The second return value is false when the value is null.
//
// The canonical string is the accuracy source of truth; it survives any digit
// count, unlike [Num.Numeric].
func (n *Num) Val() (string, bool) {
	if n.null {
		return "", false
	}
	return n.dec.StringFixed(int32(n.internalPrec())), true
}

// Numeric returns the stored value cast to the narrowest native numeric type:
// nil when null, int64 when the value has no fractional remainder and fits,
// otherwise float64. The conversion is lossy beyond float64's ~17 significant
// digits; use [Num.Val] when exactness matters.
func (n *Num) Numeric() any {
	if n.null {
		return nil
	}
	if n.dec.IsInteger() && n.fitsInt64() {
		return n.dec.IntPart()
	}
	return n.dec.InexactFloat64()
}

func (n *Num) fitsInt64() bool {
	return n.dec.Cmp(decimal.NewFromInt(math.MinInt64)) >= 0 &&
		n.dec.Cmp(decimal.NewFromInt(math.MaxInt64)) <= 0
}

// Prec returns the maximum number of fractional digits retained.
func (n *Num) Prec() int {
	return n.prec
}

// Locale returns the resolved locale code used for rendering.
func (n *Num) Locale() string {
	return n.locale
}

// Immutable reports whether value-changing methods clone the receiver.
func (n *Num) Immutable() bool {
	return n.immutable
}

// FormatSettings returns a copy of the instance format settings.
func (n *Num) FormatSettings() FormatSettings {
	return n.settings.clone()
}

// IsPercent reports whether the number renders as a percentage.
func (n *Num) IsPercent() bool {
	return n.percent
}

// String implements [fmt.Stringer]. It returns the display string produced by
// [Num.Format] with no overrides, falling back to the canonical string when
// rendering fails, and to "" when the value is null.
func (n *Num) String() string {
	s, err := n.Format()
	if err != nil {
		s, _ = n.Val()
	}
	return s
}
