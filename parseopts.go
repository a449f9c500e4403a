package parsemath

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the settings that parse options change. The zero value is
// the default, strict configuration.
type parsectx struct {
	// implicit enables implicit multiplication by a bracketed term.
	implicit bool
	// ieee disables errors for division by zero and NaN results.
	ieee bool
}

type (
	implicitopt struct{}
	ieeeopt     struct{}
)

// ImplicitMul allows a bracketed term to directly follow a number or another
// bracketed term, multiplying the two: "2(3+4)" is 14 and "(1+1)(2)" is 4.
// Without this option, a number immediately followed by an open bracket is an
// invalid token.
func ImplicitMul() ParseOption {
	return implicitopt{}
}

func (implicitopt) parseOption(p parsectx) parsectx {
	p.implicit = true
	return p
}

// IEEEArithmetic makes division by zero and operations without a real result
// evaluate to infinities and NaN as IEEE-754 specifies, instead of returning
// errors wrapping ErrDivisionByZero and ErrNotANumber.
func IEEEArithmetic() ParseOption {
	return ieeeopt{}
}

func (ieeeopt) parseOption(p parsectx) parsectx {
	p.ieee = true
	return p
}

// parseopts applies options in order.
func parseopts(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
