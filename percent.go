package realnum

// NewPercent returns a number that treats its value as a fraction and renders
// it as a percentage: 0.5 renders as "50%", 100 as "10,000%". It accepts the
// same inputs as [New].
//
// Percent mode is a rendering overlay, not a different number: arithmetic,
// comparisons, precision, and immutability behave exactly as for a plain
// number. Internally two extra fractional digits are retained beyond the
// precision, so scaling by 100 for display never drops stored digits, and the
// canonical string from [Num.Val] carries those two extra digits.
func NewPercent(v any) (*Num, error) {
	return std.NewPercent(v)
}

// NewPercentOrNull is like [NewPercent] but stores null instead of failing on
// invalid input.
func NewPercentOrNull(v any) *Num {
	return std.NewPercentOrNull(v)
}

// NewPercent returns a percent-mode number constructed from v using these
// defaults.
func (ds *Defaults) NewPercent(v any) (*Num, error) {
	return ds.newNum(v, true)
}

// NewPercentOrNull is like [Defaults.NewPercent] but stores null instead of
// failing on invalid input.
func (ds *Defaults) NewPercentOrNull(v any) *Num {
	n, err := ds.newNum(v, true)
	if err != nil {
		n = ds.blank(true)
	}
	return n
}
