package realnum

import "fmt"

// Built-in default settings, restored by [ResetDefaults].
const (
	originalLocale    = "en"
	originalPrec      = 20
	originalImmutable = true
)

// Resolver maps an opaque locale identifier (a string, a numeric id, or any
// custom token) to a locale code. An empty return value means the identifier
// could not be resolved.
type Resolver func(id any) string

// Defaults holds the settings new numbers are constructed with: locale,
// precision, immutability, format settings, and the locale resolver.
//
// A single process-wide instance backs the package-level functions such as
// [New] and [SetDefaultLocale]. Tests and embedders that want isolated state
// can construct their own with [NewDefaults] and use its methods instead.
//
// Defaults carries no synchronization. It is written at process or test setup
// time and read afterwards; concurrent writers need external mutual exclusion.
type Defaults struct {
	locale    string
	prec      int
	immutable bool
	settings  FormatSettings
	resolver  Resolver
}

var std = NewDefaults()

// NewDefaults returns a Defaults with the built-in settings: locale "en",
// precision 20, immutable, empty format settings, no resolver.
func NewDefaults() *Defaults {
	ds := &Defaults{}
	ds.Reset()
	return ds
}

// Reset restores the built-in settings and clears the locale resolver.
func (ds *Defaults) Reset() {
	ds.locale = originalLocale
	ds.prec = originalPrec
	ds.immutable = originalImmutable
	ds.settings = FormatSettings{}
	ds.resolver = nil
}

// Locale returns the default locale code.
func (ds *Defaults) Locale() string {
	return ds.locale
}

// SetLocale changes the default locale. The identifier goes through the
// locale resolver, so anything the resolver understands is accepted.
func (ds *Defaults) SetLocale(id any) error {
	code, err := ds.resolveLocale(id)
	if err != nil {
		return err
	}
	ds.locale = code
	return nil
}

// Prec returns the default precision.
func (ds *Defaults) Prec() int {
	return ds.prec
}

// SetPrec changes the default precision.
func (ds *Defaults) SetPrec(prec int) error {
	if prec < 0 {
		return fmt.Errorf("precision %d is negative: %w", prec, ErrInvalidValue)
	}
	ds.prec = prec
	return nil
}

// Immutable returns the default immutability flag.
func (ds *Defaults) Immutable() bool {
	return ds.immutable
}

// SetImmutable changes the default immutability flag.
func (ds *Defaults) SetImmutable(immutable bool) {
	ds.immutable = immutable
}

// FormatSettings returns a copy of the default format settings.
func (ds *Defaults) FormatSettings() FormatSettings {
	return ds.settings.clone()
}

// SetFormatSettings replaces the default format settings. It accepts the same
// forms as [ParseFormatSettings].
func (ds *Defaults) SetFormatSettings(v any) error {
	fs, err := ParseFormatSettings(v)
	if err != nil {
		return err
	}
	ds.settings = fs
	return nil
}

// Resolver returns the registered locale resolver, or nil.
func (ds *Defaults) Resolver() Resolver {
	return ds.resolver
}

// SetResolver registers the locale resolver. Passing nil clears it, leaving
// pass-through-string-only resolution.
func (ds *Defaults) SetResolver(r Resolver) {
	ds.resolver = r
}

// resolveLocale maps an identifier to a locale code: a registered resolver's
// non-empty answer wins, then a non-empty string identifier passes through
// as-is, and anything else is unresolvable.
func (ds *Defaults) resolveLocale(id any) (string, error) {
	if ds.resolver != nil {
		if code := ds.resolver(id); code != "" {
			return code, nil
		}
	}
	if s, ok := id.(string); ok && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("cannot resolve locale %v: %w", id, ErrUnresolvableLocale)
}

// DefaultLocale returns the process-wide default locale code.
func DefaultLocale() string { return std.Locale() }

// SetDefaultLocale changes the process-wide default locale.
func SetDefaultLocale(id any) error { return std.SetLocale(id) }

// DefaultPrec returns the process-wide default precision.
func DefaultPrec() int { return std.Prec() }

// SetDefaultPrec changes the process-wide default precision.
func SetDefaultPrec(prec int) error { return std.SetPrec(prec) }

// DefaultImmutable returns the process-wide default immutability flag.
func DefaultImmutable() bool { return std.Immutable() }

// SetDefaultImmutable changes the process-wide default immutability flag.
func SetDefaultImmutable(immutable bool) { std.SetImmutable(immutable) }

// DefaultFormatSettings returns a copy of the process-wide default format
// settings.
func DefaultFormatSettings() FormatSettings { return std.FormatSettings() }

// SetDefaultFormatSettings replaces the process-wide default format settings.
func SetDefaultFormatSettings(v any) error { return std.SetFormatSettings(v) }

// LocaleResolver returns the process-wide locale resolver, or nil.
func LocaleResolver() Resolver { return std.Resolver() }

// SetLocaleResolver registers the process-wide locale resolver. Passing nil
// clears it.
func SetLocaleResolver(r Resolver) { std.SetResolver(r) }

// ResetDefaults restores the process-wide defaults to the built-in settings
// and clears the locale resolver. Tests that change defaults are expected to
// call it between runs; nothing resets them implicitly.
func ResetDefaults() { std.Reset() }
