//go:build go1.18
// +build go1.18

package parsemath_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/parsemath"
)

func FuzzCompile(f *testing.F) {
	f.Add("1+2*3", false, false)
	f.Add("6/2(1+2)", true, false)
	f.Add("0/0", false, true)
	f.Add("((1)", false, false)
	f.Add("1×2", false, false)
	f.Fuzz(func(t *testing.T, s string, implicit, ieee bool) {
		var opts []parsemath.ParseOption
		if implicit {
			opts = append(opts, parsemath.ImplicitMul())
		}
		if ieee {
			opts = append(opts, parsemath.IEEEArithmetic())
		}
		want, werr := parsemath.Eval(s, opts...)
		e, err := parsemath.Compile(s, opts...)
		if err != nil {
			if werr == nil {
				t.Fatalf("%q: Eval succeeded with %g but Compile failed: %v", s, want, err)
			}
			if !reflect.DeepEqual(werr, err) {
				t.Errorf("%q: Eval error %v, Compile error %v", s, werr, err)
			}
			return
		}
		got, gerr := e.Eval()
		if !reflect.DeepEqual(werr, gerr) {
			t.Errorf("%q (%v): Eval error %v, compiled error %v", s, e, werr, gerr)
		}
		if got != want && !(math.IsNaN(got) && math.IsNaN(want)) {
			t.Errorf("%q (%v): Eval %g, compiled %g", s, e, want, got)
		}
	})
}
