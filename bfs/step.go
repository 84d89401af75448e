package bfs

import (
	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/frontier"
)

// topDownStep expands every vertex of the current frontier (all at distance
// depth) along its outgoing arcs. A head is claimed by whichever worker wins
// its compare-and-swap; the loser moves on.
func (w *walker) topDownStep(depth int32) {
	vs := w.cur.Vertices()
	d := depth + 1
	w.pool.For(len(vs), func(wk, lo, hi int) {
		buf := &w.bufs[wk]
		for _, u := range vs[lo:hi] {
			for _, v := range w.g.Outgoing(u) {
				if w.dist.Visited(v) || !w.dist.TryClaim(v, d) {
					continue
				}
				w.claimed(v, d)
				buf.Append(v)
			}
		}
	}, w.flush)
}

// bottomUpStep lets every unvisited vertex look for a predecessor in the
// current frontier. Vertices are partitioned across workers, so each one is
// written by exactly one worker and no compare-and-swap is needed.
func (w *walker) bottomUpStep(depth int32) {
	if w.member == nil {
		w.member = frontier.NewMembership(w.n)
	}
	w.member.Rebuild(w.cur)

	d := depth + 1
	w.pool.For(w.n, func(wk, lo, hi int) {
		buf := &w.bufs[wk]
		for i := lo; i < hi; i++ {
			v := core.Vertex(i)
			if w.dist.Visited(v) {
				continue
			}
			for _, u := range w.g.Incoming(v) {
				if !w.member.Contains(u) {
					continue
				}
				w.dist.Set(v, d)
				w.claimed(v, d)
				buf.Append(v)
				break
			}
		}
	}, w.flush)
}
