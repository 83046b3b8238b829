package realnum

import "fmt"

// MustNew is like [New] but panics on invalid input.
func MustNew(v any) *Num {
	n, err := New(v)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", v, err))
	}
	return n
}

// MustNewWithPrec is like [NewWithPrec] but panics on invalid input.
func MustNewWithPrec(v any, prec int) *Num {
	n, err := NewWithPrec(v, prec)
	if err != nil {
		panic(fmt.Sprintf("MustNewWithPrec(%v, %v) failed: %v", v, prec, err))
	}
	return n
}

// MustNewPercent is like [NewPercent] but panics on invalid input.
func MustNewPercent(v any) *Num {
	n, err := NewPercent(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewPercent(%v) failed: %v", v, err))
	}
	return n
}

// MustSetValue is like [Num.SetValue] but panics on invalid input.
func (n *Num) MustSetValue(v any) *Num {
	m, err := n.SetValue(v)
	if err != nil {
		panic(fmt.Sprintf("MustSetValue(%v) failed: %v", v, err))
	}
	return m
}

// MustSetPrec is like [Num.SetPrec] but panics on a negative precision.
func (n *Num) MustSetPrec(prec int) *Num {
	m, err := n.SetPrec(prec)
	if err != nil {
		panic(fmt.Sprintf("MustSetPrec(%v) failed: %v", prec, err))
	}
	return m
}

// MustSetLocale is like [Num.SetLocale] but panics on an unresolvable locale.
func (n *Num) MustSetLocale(id any) *Num {
	m, err := n.SetLocale(id)
	if err != nil {
		panic(fmt.Sprintf("MustSetLocale(%v) failed: %v", id, err))
	}
	return m
}

// MustSetFormatSettings is like [Num.SetFormatSettings] but panics on
// malformed settings.
func (n *Num) MustSetFormatSettings(v any) *Num {
	m, err := n.SetFormatSettings(v)
	if err != nil {
		panic(fmt.Sprintf("MustSetFormatSettings(%v) failed: %v", v, err))
	}
	return m
}

// MustAdd is like [Num.Add] but panics on computing error.
func (n *Num) MustAdd(vals ...any) *Num {
	m, err := n.Add(vals...)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", vals, err))
	}
	return m
}

// MustSub is like [Num.Sub] but panics on computing error.
func (n *Num) MustSub(vals ...any) *Num {
	m, err := n.Sub(vals...)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", vals, err))
	}
	return m
}

// MustMul is like [Num.Mul] but panics on computing error.
func (n *Num) MustMul(vals ...any) *Num {
	m, err := n.Mul(vals...)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", vals, err))
	}
	return m
}

// MustDiv is like [Num.Div] but panics on computing error, including
// division by zero.
func (n *Num) MustDiv(vals ...any) *Num {
	m, err := n.Div(vals...)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", vals, err))
	}
	return m
}

// MustRound is like [Num.Round] but panics on computing error.
func (n *Num) MustRound(places ...int) *Num {
	m, err := n.Round(places...)
	if err != nil {
		panic(fmt.Sprintf("MustRound(%v) failed: %v", places, err))
	}
	return m
}

// MustFormat is like [Num.Format] but panics on rendering error.
func (n *Num) MustFormat(settings ...any) string {
	s, err := n.Format(settings...)
	if err != nil {
		panic(fmt.Sprintf("MustFormat(%v) failed: %v", settings, err))
	}
	return s
}
