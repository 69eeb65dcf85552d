// Package quadrature implements the adaptive numerical integration rules
// that every flux computation in this module bottoms out in.
//
// 🚀 What is quadrature?
//
//	Three complementary integrators over a finite interval [a, b]:
//	  • Adaptive            — globally adaptive Gauss–Kronrod bisection,
//	    the workhorse for smooth integrands (QUADPACK QAG work-alike)
//	  • AdaptiveCC          — doubly adaptive nested Clenshaw–Curtis rule,
//	    tolerant of integrable endpoint singularities such as 1/√(x−a)
//	  • AdaptiveBreakpoints — independent adaptive passes over sub-intervals
//	    bounded by known sharp features (QAGP work-alike), values and error
//	    bounds summed
//
// ✨ Key properties:
//   - Explicit tolerances: convergence means
//     Σ|err_i| ≤ max(AbsTol, RelTol·|Σ val_i|)
//   - Bounded effort: at most MaxSubdivisions interval splits; running out
//     of budget is a reported, non-fatal condition (Result.Converged=false
//     with the best estimate and its error bound), never a panic
//   - No shared state: each call acquires a private scratch workspace and
//     releases it on every exit path
//   - Non-finite integrand values (±Inf, NaN) are treated as zero, so
//     integrable endpoint singularities do not poison the sums
//
// ⚙️ Usage:
//
//	import "github.com/helioscope/axionflux/quadrature"
//
//	cfg := quadrature.DefaultConfig()
//	res, err := quadrature.Adaptive(math.Sin, 0, math.Pi, cfg)
//	if err != nil {
//	  // ErrBadConfig / ErrBadInterval / ErrNilFunc
//	}
//	fmt.Println(res.Value, res.Error, res.Converged)
//
// Performance:
//
//   - Time:   O(evaluations), 15–21 per Gauss–Kronrod segment,
//     33 per Clenshaw–Curtis segment
//   - Memory: O(MaxSubdivisions) scratch, pooled across calls
//
// See example_test.go for runnable examples.
package quadrature
