package quadrature

import "sync"

// segment is one sub-interval of the adaptive subdivision together with
// its local estimate and error bound.
type segment struct {
	a, b     float64
	value    float64
	errBound float64
}

// workspace is the private scratch state of one adaptive integration call.
// It is acquired from a pool before the call and returned unconditionally
// afterward, including on the convergence-failure path; no workspace is
// ever shared between concurrent integrations.
type workspace struct {
	segs []segment
}

var wsPool = sync.Pool{
	New: func() any { return &workspace{segs: make([]segment, 0, 64)} },
}

// acquireWorkspace hands out a cleared workspace.
func acquireWorkspace() *workspace {
	w := wsPool.Get().(*workspace)
	w.segs = w.segs[:0]
	return w
}

// release returns the workspace to the pool.
func (w *workspace) release() {
	wsPool.Put(w)
}

// push appends a segment.
func (w *workspace) push(s segment) {
	w.segs = append(w.segs, s)
}

// worst returns the index of the segment with the largest error bound.
// Linear scan: the segment count is bounded by MaxSubdivisions.
func (w *workspace) worst() int {
	wi := 0
	for i := 1; i < len(w.segs); i++ {
		if w.segs[i].errBound > w.segs[wi].errBound {
			wi = i
		}
	}
	return wi
}

// sums accumulates the global value and error estimates across segments.
func (w *workspace) sums() (value, errBound float64) {
	for i := range w.segs {
		value += w.segs[i].value
		errBound += w.segs[i].errBound
	}
	return value, errBound
}
