package quadrature

import "math"

// Adaptive — globally adaptive Gauss–Kronrod integration of f over [a, b].
//
// Description:
//
//	Work-alike of QUADPACK's QAG. The interval is covered by segments, each
//	carrying a Gauss–Kronrod estimate and error bound; the segment with the
//	largest bound is bisected until
//	  Σ err_i ≤ max(AbsTol, RelTol·|Σ val_i|)
//	or cfg.MaxSubdivisions splits have been spent.
//
// Algorithm Outline:
//  1. Validate inputs; a == b short-circuits to an exact zero.
//  2. Evaluate the GK pair on [a, b]; push the segment.
//  3. While the budget lasts and the tolerance is unmet: pop the segment
//     with the worst bound, bisect it, evaluate both halves, update sums.
//  4. Report the summed value and error; Converged=false when the budget
//     ran out first (soft condition, never an error).
//
// Complexity:
//
//	Time   = O(S · n) evaluations, S ≤ MaxSubdivisions segments,
//	         n = 15 or 21 per segment
//	Memory = O(S), pooled
//
// Errors:
//   - ErrNilFunc     — f is nil.
//   - ErrBadInterval — a or b non-finite, or a > b.
//   - ErrBadConfig   — cfg violates the Config invariants.
func Adaptive(f Func, a, b float64, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a > b {
		return Result{}, ErrBadInterval
	}
	if a == b {
		return Result{Converged: true}, nil
	}

	w := acquireWorkspace()
	defer w.release()

	value, errBound, evals := gkSegment(f, a, b, cfg.Rule)
	w.push(segment{a: a, b: b, value: value, errBound: errBound})

	splits := 0
	for errBound > cfg.tolerance(value) && splits < cfg.MaxSubdivisions {
		wi := w.worst()
		s := w.segs[wi]
		mid := 0.5 * (s.a + s.b)
		if mid <= s.a || mid >= s.b {
			// Interval exhausted at machine precision; splitting further
			// cannot improve the estimate.
			break
		}
		lv, le, ln := gkSegment(f, s.a, mid, cfg.Rule)
		rv, re, rn := gkSegment(f, mid, s.b, cfg.Rule)
		evals += ln + rn
		w.segs[wi] = segment{a: s.a, b: mid, value: lv, errBound: le}
		w.push(segment{a: mid, b: s.b, value: rv, errBound: re})
		value, errBound = w.sums()
		splits++
	}

	return Result{
		Value:       value,
		Error:       errBound,
		Evaluations: evals,
		Converged:   errBound <= cfg.tolerance(value),
	}, nil
}

// AdaptiveBreakpoints — breakpoint-aware adaptive integration (QAGP
// work-alike).
//
// Each consecutive pair pts[i], pts[i+1] bounds an independent Adaptive
// run; values and error bounds are summed. Placing breakpoints on known
// sharp features (resonance lines, kinks) keeps the global subdivision
// from mis-estimating integrals dominated by narrow structure.
//
// Errors:
//   - ErrBadBreakpoints — fewer than two points, non-finite entries, or
//     not strictly increasing.
//   - plus everything Adaptive can return.
func AdaptiveBreakpoints(f Func, pts []float64, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	if len(pts) < 2 {
		return Result{}, ErrBadBreakpoints
	}
	for i := 1; i < len(pts); i++ {
		if math.IsNaN(pts[i-1]) || math.IsInf(pts[i-1], 0) || pts[i-1] >= pts[i] {
			return Result{}, ErrBadBreakpoints
		}
	}
	if math.IsNaN(pts[len(pts)-1]) || math.IsInf(pts[len(pts)-1], 0) {
		return Result{}, ErrBadBreakpoints
	}

	total := Result{Converged: true}
	for i := 1; i < len(pts); i++ {
		r, err := Adaptive(f, pts[i-1], pts[i], cfg)
		if err != nil {
			return Result{}, err
		}
		total.Value += r.Value
		total.Error += r.Error
		total.Evaluations += r.Evaluations
		total.Converged = total.Converged && r.Converged
	}
	return total, nil
}
