package vector

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/npillmayer/pvec"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []Kind{KindAppendable, KindPrependable, KindDeque, KindList}

func TestKindNames(t *testing.T) {
	for _, k := range allKinds {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("expected %s to parse to itself, is %v (%v)", k, parsed, err)
		}
	}
	if k, err := ParseKind("DEQUE"); err != nil || k != KindDeque {
		t.Errorf("expected DEQUE to parse as deque, is %v (%v)", k, err)
	}
	if _, err := ParseKind("rope"); err == nil {
		t.Error("expected unknown kind to fail to parse")
	}
	if s := Kind(17).String(); s != "Kind(17)" {
		t.Errorf("expected unknown kind to print as Kind(17), is %s", s)
	}
}

func TestLawsForAllKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for _, k := range allKinds {
		for _, n := range []int{0, 1, 5, 32, 33, 100, 1025} {
			t.Run(fmt.Sprintf("%s/%d", k, n), func(t *testing.T) {
				items := slices.Collect(count(0, n))
				v := New(k, items...)
				oracle := NewList(items...)
				require.Equal(t, k, v.Kind())
				require.True(t, Equal[int](v, oracle))
				// update
				for _, i := range []int{0, n / 2, n - 1} {
					if i < 0 || i >= n {
						continue
					}
					u, err := v.Update(i, -1)
					require.NoError(t, err)
					x, _ := u.At(i)
					assert.Equal(t, -1, x)
					for j := range n {
						if j != i {
							y, _ := u.At(j)
							require.Equal(t, j, y)
						}
					}
					require.True(t, Equal[int](v, oracle), "update changed the original")
				}
				// append / pop
				w := v.Append(4711)
				end, err := w.End()
				require.NoError(t, err)
				assert.Equal(t, 4711, end)
				p, err := w.Popped()
				require.NoError(t, err)
				assert.True(t, Equal(p, v))
				// cons / tail
				c := v.Cons(-4711)
				head, err := c.Head()
				require.NoError(t, err)
				assert.Equal(t, -4711, head)
				tl, err := c.Tail()
				require.NoError(t, err)
				assert.True(t, Equal(tl, v))
				// concat
				other := []int{100, 200, 300}
				cc := v.Concat(slices.Values(other))
				require.Equal(t, n+len(other), cc.Len())
				for i := range cc.Len() {
					x, _ := cc.At(i)
					if i < n {
						require.Equal(t, i, x)
					} else {
						require.Equal(t, other[i-n], x)
					}
				}
				// traversal
				assert.Equal(t, oracle.ToSlice(), slices.Collect(v.Values()))
				assert.Equal(t, slices.Collect(oracle.Backward()), slices.Collect(v.Backward()))
				for i, x := range v.All() {
					require.Equal(t, i, x)
				}
			})
		}
	}
}

func TestFolds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	for _, k := range allKinds {
		v := New(k, "a", "b", "c")
		l := Foldl(v, func(acc string, x string) string { return acc + x }, ">")
		r := Foldr(v, func(acc string, x string) string { return acc + x }, ">")
		if l != ">abc" || r != ">cba" {
			t.Errorf("%s: expected folds >abc and >cba, are %s and %s", k, l, r)
		}
		s, err := v.Reduce(func(a, b string) string { return a + "," + b })
		if err != nil || s != "a,b,c" {
			t.Errorf("%s: expected reduce to a,b,c, is %q (%v)", k, s, err)
		}
	}
}

func TestZip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	for _, k := range allKinds {
		v := New(k, slices.Collect(count(0, 40))...)
		w := NewDeque("a", "b", "c")
		z := Zip[int, string](v, w)
		require.Equal(t, 3, z.Len())
		require.Equal(t, k, z.Kind())
		p, _ := z.At(2)
		assert.Equal(t, pvec.P(2, "c"), p)
		zz := Zip[string, int](w, v)
		require.Equal(t, 3, zz.Len())
		// zip equals a map to pairs
		tupled := Map(v, func(x int) pvec.Pair[int, int] { return pvec.P(x, x) })
		assert.True(t, Equal(Zip[int, int](v, v), tupled))
	}
}

func TestFlatMapAndFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	for _, k := range allKinds {
		v := New(k, 1, 2, 3)
		f := FlatMap(v, func(n int) iter.Seq[string] {
			return func(yield func(string) bool) {
				for i := 0; i < n; i++ {
					if !yield(strconv.Itoa(n)) {
						return
					}
				}
			}
		})
		assert.Equal(t, []string{"1", "2", "2", "3", "3", "3"}, f.ToSlice())
		assert.Equal(t, k, f.Kind())
		odd := v.Filter(func(n int) bool { return n%2 == 1 })
		assert.Equal(t, []int{1, 3}, odd.ToSlice())
		assert.Equal(t, k, odd.Kind())
	}
}

func TestEqualityIgnoresShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	items := slices.Collect(count(0, 1100))
	var grown Deque[int]
	for i := len(items) - 1; i >= 0; i-- {
		grown = grown.Prepend(items[i])
	}
	a := NewAppendable(items...)
	if !Equal[int](a, grown) || !Equal[int](grown, NewPrependable(items...)) {
		t.Error("expected vectors with equal items to be equal, regardless of history")
	}
	b, _ := a.Set(1099, 0)
	if Equal[int](a, b) {
		t.Error("expected vectors differing in the last item to be different")
	}
	if Equal[int](a, a.Push(1)) {
		t.Error("expected vectors of different length to be different")
	}
	if !EqualFunc[int, string](NewList(1, 2), NewList("1", "2"), func(n int, s string) bool {
		return strconv.Itoa(n) == s
	}) {
		t.Error("expected EqualFunc to compare items with the given function")
	}
}

func TestCollect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	items := []int{3, 1, 2}
	for _, k := range allKinds {
		v := New(k, items...)
		items[0] = 99
		if x, _ := v.At(0); x != 3 {
			t.Errorf("%s: expected New to copy its input, item 0 is %d", k, x)
		}
		items[0] = 3
		c := Collect(k, slices.Values(items))
		if !Equal(c, v) {
			t.Errorf("%s: expected Collect and New to agree", k)
		}
	}
}
