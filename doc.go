/*
Package realnum implements nullable arbitrary-precision decimal numbers with
locale-aware rendering. It is intended for applications that need exact
decimal arithmetic, such as financial-style calculations, together with
human-readable output in many languages and regions.

# Representation

[Num] pairs a stored quantity with per-instance settings:

  - Value: either null or an exact decimal, backed by
    [github.com/shopspring/decimal] and rounded half away from zero to the
    precision on every write.
  - Precision: the maximum number of fractional digits retained, 20 by
    default. The canonical string returned by [Num.Val] is always padded to
    exactly this many digits.
  - Locale, immutability flag, and [FormatSettings], all copied from the
    process [Defaults] at construction.

Null is a first-class value: it is produced by nil or "null" inputs, it
propagates through arithmetic (null is zero for addition and subtraction but
poisons multiplication and division), and it renders per the Null format
setting.

# Immutability

Numbers are immutable by default. Every value-changing method, arithmetic or
setter, clones the receiver, applies the change to the clone, and returns the
clone, leaving the receiver untouched:

	a := realnum.MustNew(5)
	b := a.MustAdd(2) // a is still 5, b is 7

With immutability switched off ([Num.SetImmutable]) the same methods mutate
the receiver in place and return it, so chains read identically either way.
[Num.Copy] always clones.

# Rendering

[Num.Format] renders the value for a locale using [golang.org/x/text].
Rendering is configured by [FormatSettings], which can be given as a struct,
as a map, or as a compact expression string:

	n.MustFormat("!thousands accountingNeg decPl=2")

Options cover null substitution, trailing-zero control, an explicit digit
count, grouping separators, a leading plus sign, accounting-style negative
parentheses, a per-render locale, and non-breaking-space handling. Per-render
settings merge over instance settings, which merge over the process defaults.

Percent-mode numbers ([NewPercent]) treat the stored value as a fraction and
render it scaled by 100 with the locale's percent pattern, keeping two extra
fractional digits internally so the scaling never loses stored precision.

The locale formatter is fed a float64, so rendered output can lose detail
past roughly 17 significant digits. The stored value and [Num.Val] are exact
regardless.

# Defaults

Process-wide defaults for locale, precision, immutability, and format
settings live on a [Defaults] instance. The package-level functions ([New],
[SetDefaultLocale], [SetLocaleResolver], ...) use a single global instance;
[ResetDefaults] restores its built-in state. Hosts with their own notion of a
locale identifier register a [Resolver] to map identifiers to locale codes.
Construct an isolated [Defaults] with [NewDefaults] when global state is
unwanted, for example in tests.

Defaults carry no synchronization: they are meant to be written during setup
and read afterwards. Everything else is plain immutable-by-default value
manipulation with no shared state.

# Errors

All failures wrap one of four sentinels, matched with [errors.Is]:
[ErrInvalidValue] for inputs that are not decimal numbers and for
comparisons called without values, [ErrUnresolvableLocale] for locale
identifiers that cannot be mapped to a usable code, [ErrDivisionByZero] for
division by exact zero, and [ErrInvalidSettings] for malformed
format-settings expressions or keys.

Construction and value-setting offer a degrading variant ([NewOrNull],
[Num.SetValueOrNull]) that stores null instead of failing; every other error
is always returned.
*/
package realnum
