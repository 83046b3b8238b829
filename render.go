package realnum

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nbspReplacer normalizes the non-breaking spaces locale formatters emit
// (both the U+00A0 and the narrow U+202F forms) to ordinary spaces.
var nbspReplacer = strings.NewReplacer(" ", " ", " ", " ")

// minus glyphs recognized by the plus-sign substitution, widest first.
var minusGlyphs = []string{"−", "-"}

// Format renders the stored value as a human-readable string for the
// effective locale. Optional settings (any form [ParseFormatSettings]
// accepts) are merged over the instance settings for this render only:
//
//	n.Format()                            // instance settings
//	n.Format("!thousands decPl=2")        // expression form
//	n.Format(FormatSettings{DecPl: &two}) // structured form
//
// A null value renders per the Null setting: as its substitute text, or as ""
// when nulls are omitted. Percent-mode numbers render with the locale's
// percent pattern, scaled by 100.
//
// The digit count is, in priority order: the DecPl override (which implies
// trailing zeros unless TrailZeros is explicitly false), the full stored
// precision when TrailZeros is set, or the minimal digits that render the
// value exactly.
//
// The underlying locale formatter works from a float64, so rendering may lose
// detail past roughly 17 significant digits; the canonical value returned by
// [Num.Val] is not affected.
//
// An unresolvable or malformed locale returns [ErrUnresolvableLocale];
// malformed settings return [ErrInvalidSettings].
func (n *Num) Format(settings ...any) (string, error) {
	fs := n.settings.clone()
	for _, s := range settings {
		parsed, err := ParseFormatSettings(s)
		if err != nil {
			return "", err
		}
		fs = fs.merge(parsed)
	}
	if n.null {
		if fs.Null != nil && fs.Null.Show {
			return fs.Null.Text, nil
		}
		return "", nil
	}

	code := n.locale
	if fs.Locale != nil {
		resolved, err := n.defs.resolveLocale(*fs.Locale)
		if err != nil {
			return "", err
		}
		code = resolved
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("cannot parse locale %q: %w", code, ErrUnresolvableLocale)
	}

	minDigits, maxDigits := n.renderDigits(fs)
	opts := []number.Option{
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	}
	if fs.Thousands != nil && !*fs.Thousands {
		opts = append(opts, number.NoSeparator())
	}

	p := message.NewPrinter(tag)
	render := func(f float64) string {
		if n.percent {
			return p.Sprint(number.Percent(f, opts...))
		}
		return p.Sprint(number.Decimal(f, opts...))
	}

	f := n.dec.InexactFloat64()
	var out string
	switch {
	case n.dec.Sign() < 0 && isSet(fs.AccountingNeg):
		out = "(" + render(math.Abs(f)) + ")"
	case n.dec.Sign() >= 0 && isSet(fs.ShowPlus):
		// Render the negated value, then swap the minus glyph for a plus.
		// A zero renders without a minus, in which case the plus is
		// prefixed directly.
		out = plusSigned(render(-f))
	default:
		out = render(f)
	}

	if !isSet(fs.Breaking) {
		out = nbspReplacer.Replace(out)
	}
	return out, nil
}

func isSet(b *bool) bool {
	return b != nil && *b
}

// renderDigits resolves the fractional digit count to render: min is padded
// to, max is rounded to.
func (n *Num) renderDigits(fs FormatSettings) (minDigits, maxDigits int) {
	auto := n.autoFracDigits()
	switch {
	case fs.DecPl != nil:
		maxDigits = *fs.DecPl
		if fs.TrailZeros != nil && !*fs.TrailZeros {
			minDigits = min(auto, maxDigits)
		} else {
			minDigits = maxDigits
		}
	case isSet(fs.TrailZeros):
		minDigits, maxDigits = n.internalPrec(), n.internalPrec()
	default:
		minDigits, maxDigits = auto, auto
	}
	return minDigits, maxDigits
}

// autoFracDigits counts the fractional digits needed to render the stored
// value exactly, never fewer than zero. Percent-mode numbers are counted
// against the value scaled by 100, so 0.125 needs one digit (12.5%), not
// three.
func (n *Num) autoFracDigits() int {
	d := n.dec
	if n.percent {
		d = d.Shift(2)
	}
	s := d.StringFixed(int32(n.internalPrec()))
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(strings.TrimRight(s[dot+1:], "0"))
}

// plusSigned substitutes the minus glyph in a negated rendering with a plus,
// prefixing a plus when no minus glyph is present (a zero value). Locales
// whose signs are not simple substitutable glyphs fall back to the prefix.
func plusSigned(s string) string {
	for _, glyph := range minusGlyphs {
		if strings.Contains(s, glyph) {
			return strings.Replace(s, glyph, "+", 1)
		}
	}
	return "+" + s
}
