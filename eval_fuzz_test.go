//go:build go1.18
// +build go1.18

package parsemath_test

import (
	"errors"
	"math"
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/parsemath"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2*3")
	f.Add("-2^-2")
	f.Add("(1+2")
	f.Add("1/0")
	f.Add("2(3)")
	f.Add("1.2.3")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := parsemath.Eval(s)
		if err != nil {
			var ie parsemath.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %#v is not an InputError", s, err)
			}
			if p := ie.Pos(); p < 1 || p > utf8.RuneCountInString(s)+1 {
				t.Errorf("%q: position %d out of range", s, p)
			}
			return
		}
		if math.IsNaN(r) {
			t.Errorf("%q: NaN result without IEEEArithmetic", s)
		}
	})
}
