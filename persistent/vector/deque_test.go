package vector

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDequeBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	var d Deque[string]
	if _, err := d.Pop(); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("expected Pop on empty deque to fail, is %v", err)
	}
	if _, err := d.PopFront(); !errors.Is(err, ErrEmptyVector) {
		t.Errorf("expected PopFront on empty deque to fail, is %v", err)
	}
	d = d.Push("b").Prepend("a").Push("c")
	if !slices.Equal(d.ToSlice(), []string{"a", "b", "c"}) {
		t.Errorf("expected [a b c], is %v", d.ToSlice())
	}
	if x, _ := d.At(1); x != "b" {
		t.Errorf("expected b at 1, is %q", x)
	}
	e, _ := d.Pop()
	e, _ = e.Pop()
	e, _ = e.Pop()
	if e.Len() != 0 {
		t.Errorf("expected deque to be empty after three pops, has %d items", e.Len())
	}
	if d.Len() != 3 {
		t.Error("expected pops to leave the original untouched")
	}
	if _, err := d.At(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected At(3) to fail, is %v", err)
	}
}

func TestDequeInterfaceMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	defer teardown()
	//
	var v Vector[int] = NewDeque(2, 3)
	v = v.Cons(1).Append(4)
	assert.Equal(t, KindDeque, v.Kind(), "a deque never hands off")
	assert.Equal(t, []int{1, 2, 3, 4}, v.ToSlice())
	v, _ = v.Tail()
	v, _ = v.Popped()
	assert.Equal(t, KindDeque, v.Kind())
	assert.Equal(t, []int{2, 3}, v.ToSlice())
}

func TestDequeAgainstList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	r := rand.New(rand.NewPCG(17, 4711))
	var d Deque[int]
	var l Vector[int] = NewList[int]()
	for step := 0; step < 20000; step++ {
		var err error
		switch op := r.IntN(10); {
		case op < 3:
			d, l = d.Push(step), l.Append(step)
		case op < 6:
			d, l = d.Prepend(step), l.Cons(step)
		case op < 8 && d.Len() > 0:
			d, err = d.Pop()
			require.NoError(t, err)
			l, err = l.Popped()
			require.NoError(t, err)
		case d.Len() > 0:
			d, err = d.PopFront()
			require.NoError(t, err)
			l, err = l.Tail()
			require.NoError(t, err)
		}
		if d.Len() > 0 && step%50 == 0 {
			i := r.IntN(d.Len())
			var u Vector[int]
			u, err = d.Update(i, -step)
			require.NoError(t, err)
			x, _ := u.At(i)
			require.Equal(t, -step, x)
			y, _ := d.At(i)
			z, _ := l.At(i)
			require.Equal(t, z, y, "update must not change the original")
		}
		if step%500 == 0 {
			checkDeque(t, d)
			require.Equal(t, l.ToSlice(), d.ToSlice(), "step %d", step)
		}
	}
	checkDeque(t, d)
	require.True(t, Equal[int](d, l))
}

func TestDequeConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	for _, n := range []int{0, 1, 31, 32, 33, 1023, 1024, 1025, 32769} {
		items := slices.Collect(count(0, n))
		built := NewDeque(items...)
		checkDeque(t, built)
		var pushed, prepended Deque[int]
		for i := range items {
			pushed = pushed.Push(items[i])
			prepended = prepended.Prepend(items[n-i-1])
		}
		for _, d := range []Deque[int]{built, pushed, prepended} {
			checkDeque(t, d)
			require.Equal(t, n, d.Len())
			for i := 0; i < n; i += 7 {
				x, err := d.At(i)
				require.NoError(t, err)
				require.Equal(t, i, x)
			}
			if n > 0 {
				backward := slices.Collect(d.Backward())
				slices.Reverse(backward)
				require.Equal(t, items, backward)
			}
		}
	}
}

func TestDequeDrainFromTheOtherEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persistent.vector")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	var d Deque[int]
	for i := 0; i < 3000; i++ {
		d = d.Push(i)
	}
	for i := 0; i < 3000; i++ {
		h, err := d.Head()
		require.NoError(t, err)
		require.Equal(t, i, h)
		d, err = d.PopFront()
		require.NoError(t, err)
		if i%250 == 0 {
			checkDeque(t, d)
		}
	}
	assert.Equal(t, 0, d.Len())
	checkDeque(t, d)
}
