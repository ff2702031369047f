package vector

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/sync/errgroup"
)

// Derivations from a shared ancestor must neither see nor disturb each other.
func TestConcurrentDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const n, workers = 1056, 8
	items := slices.Collect(count(0, n))
	for _, k := range []Kind{KindAppendable, KindPrependable, KindDeque} {
		ancestor := New(k, items...)
		results := make([]Vector[int], workers)
		var g errgroup.Group
		for w := 0; w < workers; w++ {
			g.Go(func() error {
				v := ancestor
				for i := 0; i < 200; i++ {
					v = v.Append(w*1000 + i)
				}
				var err error
				if v, err = v.Update(w, -w); err != nil {
					return err
				}
				results[w] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if !slices.Equal(ancestor.ToSlice(), items) {
			t.Fatalf("%s: ancestor changed by concurrent derivations", k)
		}
		for w, v := range results {
			if v.Len() != n+200 {
				t.Errorf("%s: worker %d derived %d items, expected %d", k, w, v.Len(), n+200)
			}
			if x, _ := v.At(w); x != -w {
				t.Errorf("%s: worker %d expected its own update, is %d", k, w, x)
			}
			if x, _ := v.At(n + 199); x != w*1000+199 {
				t.Errorf("%s: worker %d sees foreign item %d at the end", k, w, x)
			}
		}
	}
}
