package realnum

import (
	"fmt"
	"strconv"
	"strings"
)

// NullDisplay controls what a null value renders as. The zero value omits the
// number entirely (the render returns an empty string); with Show set, Text is
// rendered in its place.
type NullDisplay struct {
	Show bool
	Text string
}

// NullOmit returns a NullDisplay that renders null values as nothing.
func NullOmit() *NullDisplay {
	return &NullDisplay{}
}

// NullAs returns a NullDisplay that renders null values as the given text,
// for example "0" or "null".
func NullAs(text string) *NullDisplay {
	return &NullDisplay{Show: true, Text: text}
}

// FormatSettings is a bundle of rendering options. A nil field means "not
// set here": settings merge per-call over instance over process default, and
// nil fields inherit from the next layer down. The built-in behavior, used
// when no layer sets a field, is noted per field.
type FormatSettings struct {
	// Null controls the rendering of a null value. Built-in: omit.
	Null *NullDisplay
	// TrailZeros pads fractional digits out to the full precision instead of
	// trimming to the minimal digits needed. Built-in: trim, except that an
	// explicit DecPl implies padding unless TrailZeros is set false.
	TrailZeros *bool
	// DecPl fixes the rendered fractional digit count, overriding automatic
	// detection. It is independent of the stored precision. Built-in: auto.
	DecPl *int
	// Thousands renders the locale's grouping separator. Built-in: on.
	Thousands *bool
	// ShowPlus prefixes non-negative values with the locale's plus sign.
	// Built-in: off.
	ShowPlus *bool
	// AccountingNeg renders negative values as (amount) instead of with a
	// leading minus sign. Built-in: off.
	AccountingNeg *bool
	// Locale overrides the instance locale for a single render.
	Locale *string
	// Breaking keeps the locale formatter's non-breaking spaces (U+00A0 and
	// U+202F) in the output. Built-in: off, normalizing them to plain spaces.
	Breaking *bool
}

// String renders the settings in the expression form understood by
// [ParseFormatSettings], with fields in a fixed order and unset fields
// omitted. Settings round-trip through it as long as null-substitute texts
// contain no escape sequences.
func (fs FormatSettings) String() string {
	var tokens []string
	if fs.Null != nil {
		if fs.Null.Show {
			tokens = append(tokens, fmt.Sprintf("null=%q", fs.Null.Text))
		} else {
			tokens = append(tokens, "null=null")
		}
	}
	if fs.TrailZeros != nil {
		tokens = append(tokens, flagToken("trailZeros", *fs.TrailZeros))
	}
	if fs.DecPl != nil {
		tokens = append(tokens, "decPl="+strconv.Itoa(*fs.DecPl))
	}
	if fs.Thousands != nil {
		tokens = append(tokens, flagToken("thousands", *fs.Thousands))
	}
	if fs.ShowPlus != nil {
		tokens = append(tokens, flagToken("showPlus", *fs.ShowPlus))
	}
	if fs.AccountingNeg != nil {
		tokens = append(tokens, flagToken("accountingNeg", *fs.AccountingNeg))
	}
	if fs.Locale != nil {
		tokens = append(tokens, "locale="+*fs.Locale)
	}
	if fs.Breaking != nil {
		tokens = append(tokens, flagToken("breaking", *fs.Breaking))
	}
	return strings.Join(tokens, " ")
}

func flagToken(name string, on bool) string {
	if on {
		return name
	}
	return "!" + name
}

// clone returns a copy sharing no pointers with fs.
func (fs FormatSettings) clone() FormatSettings {
	c := fs
	if fs.Null != nil {
		nd := *fs.Null
		c.Null = &nd
	}
	c.TrailZeros = cloneBool(fs.TrailZeros)
	c.ShowPlus = cloneBool(fs.ShowPlus)
	c.AccountingNeg = cloneBool(fs.AccountingNeg)
	c.Thousands = cloneBool(fs.Thousands)
	c.Breaking = cloneBool(fs.Breaking)
	if fs.DecPl != nil {
		d := *fs.DecPl
		c.DecPl = &d
	}
	if fs.Locale != nil {
		l := *fs.Locale
		c.Locale = &l
	}
	return c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// merge returns fs with every field that over sets replaced by over's value.
func (fs FormatSettings) merge(over FormatSettings) FormatSettings {
	out := fs.clone()
	o := over.clone()
	if o.Null != nil {
		out.Null = o.Null
	}
	if o.TrailZeros != nil {
		out.TrailZeros = o.TrailZeros
	}
	if o.DecPl != nil {
		out.DecPl = o.DecPl
	}
	if o.Thousands != nil {
		out.Thousands = o.Thousands
	}
	if o.ShowPlus != nil {
		out.ShowPlus = o.ShowPlus
	}
	if o.AccountingNeg != nil {
		out.AccountingNeg = o.AccountingNeg
	}
	if o.Locale != nil {
		out.Locale = o.Locale
	}
	if o.Breaking != nil {
		out.Breaking = o.Breaking
	}
	return out
}

// ParseFormatSettings converts any accepted settings form into a
// [FormatSettings]:
//
//   - a FormatSettings or *FormatSettings value is returned as-is (copied);
//   - a map[string]any with the keys null, trailZeros, decPl, thousands,
//     showPlus, accountingNeg, locale, breaking;
//   - an expression string of space-separated tokens, where a bare option
//     name enables it ("thousands"), a !-prefixed name disables it
//     ("!thousands"), and key=value tokens set value-bearing options
//     ("decPl=5", "locale=de", `null="null"`). The bare value null denotes
//     the omit-entirely null display; quoted values may use single or double
//     quotes.
//
// Unrecognized tokens, keys, or value types return [ErrInvalidSettings].
func ParseFormatSettings(v any) (FormatSettings, error) {
	switch v := v.(type) {
	case nil:
		return FormatSettings{}, nil
	case FormatSettings:
		return v.clone(), nil
	case *FormatSettings:
		if v == nil {
			return FormatSettings{}, nil
		}
		return v.clone(), nil
	case map[string]any:
		return parseSettingsMap(v)
	case string:
		return parseSettingsExpr(v)
	default:
		return FormatSettings{}, fmt.Errorf("unsupported settings type %T: %w", v, ErrInvalidSettings)
	}
}

func parseSettingsMap(m map[string]any) (FormatSettings, error) {
	var fs FormatSettings
	for key, val := range m {
		if err := fs.assign(key, val); err != nil {
			return FormatSettings{}, err
		}
	}
	return fs, nil
}

func (fs *FormatSettings) assign(key string, val any) error {
	switch key {
	case "null":
		switch v := val.(type) {
		case nil:
			fs.Null = NullOmit()
		case *NullDisplay:
			fs.Null = v
		case string:
			fs.Null = NullAs(v)
		case int:
			fs.Null = NullAs(strconv.Itoa(v))
		default:
			return badSettingValue(key, val)
		}
	case "trailZeros":
		return assignBool(&fs.TrailZeros, key, val)
	case "decPl":
		switch v := val.(type) {
		case nil:
			fs.DecPl = nil
		case int:
			if v < 0 {
				return badSettingValue(key, val)
			}
			fs.DecPl = &v
		default:
			return badSettingValue(key, val)
		}
	case "thousands":
		return assignBool(&fs.Thousands, key, val)
	case "showPlus":
		return assignBool(&fs.ShowPlus, key, val)
	case "accountingNeg":
		return assignBool(&fs.AccountingNeg, key, val)
	case "locale":
		s, ok := val.(string)
		if !ok || s == "" {
			return badSettingValue(key, val)
		}
		fs.Locale = &s
	case "breaking":
		return assignBool(&fs.Breaking, key, val)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, ErrInvalidSettings)
	}
	return nil
}

func assignBool(dst **bool, key string, val any) error {
	b, ok := val.(bool)
	if !ok {
		return badSettingValue(key, val)
	}
	*dst = &b
	return nil
}

func badSettingValue(key string, val any) error {
	return fmt.Errorf("invalid value %v (%T) for setting %q: %w", val, val, key, ErrInvalidSettings)
}

// parseSettingsExpr parses the expression form, e.g.
//
//	thousands !trailZeros decPl=5 locale=de null="n/a"
func parseSettingsExpr(expr string) (FormatSettings, error) {
	var fs FormatSettings
	tokens, err := splitTokens(expr)
	if err != nil {
		return FormatSettings{}, err
	}
	for _, tok := range tokens {
		if err := fs.applyToken(tok); err != nil {
			return FormatSettings{}, err
		}
	}
	return fs, nil
}

func (fs *FormatSettings) applyToken(tok string) error {
	if key, raw, found := strings.Cut(tok, "="); found {
		return fs.applyValueToken(key, raw, tok)
	}
	enable := true
	name := tok
	if strings.HasPrefix(tok, "!") {
		enable = false
		name = tok[1:]
	}
	switch name {
	case "null":
		// Bare "null" reads as the omit-entirely display; "!null" makes no
		// sense as there is nothing to switch back to.
		if !enable {
			return fmt.Errorf("cannot negate setting %q: %w", name, ErrInvalidSettings)
		}
		fs.Null = NullOmit()
		return nil
	case "trailZeros", "thousands", "showPlus", "accountingNeg", "breaking":
		return fs.assign(name, enable)
	default:
		return fmt.Errorf("unknown token %q: %w", tok, ErrInvalidSettings)
	}
}

func (fs *FormatSettings) applyValueToken(key, raw, tok string) error {
	val, quoted, err := unquoteValue(raw)
	if err != nil {
		return fmt.Errorf("malformed token %q: %w", tok, ErrInvalidSettings)
	}
	switch key {
	case "null":
		if !quoted && val == "null" {
			return fs.assign(key, nil)
		}
		return fs.assign(key, val)
	case "decPl":
		n, err := strconv.Atoi(val)
		if err != nil {
			return badSettingValue(key, val)
		}
		return fs.assign(key, n)
	case "locale":
		return fs.assign(key, val)
	case "trailZeros", "thousands", "showPlus", "accountingNeg", "breaking":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return badSettingValue(key, val)
		}
		return fs.assign(key, b)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, ErrInvalidSettings)
	}
}

// unquoteValue strips matching single or double quotes and reports whether
// the value was quoted.
func unquoteValue(raw string) (val string, quoted bool, err error) {
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') {
		if raw[len(raw)-1] != raw[0] {
			return "", false, fmt.Errorf("unterminated quote")
		}
		return raw[1 : len(raw)-1], true, nil
	}
	if strings.ContainsAny(raw, `"'`) {
		return "", false, fmt.Errorf("stray quote")
	}
	return raw, false, nil
}

// splitTokens splits the expression on spaces, keeping quoted sections (and
// their quotes) inside a single token.
func splitTokens(expr string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case quote != 0:
			cur.WriteByte(c)
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
			cur.WriteByte(c)
		case c == ' ' || c == '\t':
			if cur.Len() > 0 {
				tokens = append(tokens, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote in %q: %w", expr, ErrInvalidSettings)
	}
	if cur.Len() > 0 {
		tokens = append(tokens, cur.String())
	}
	return tokens, nil
}
