// Package bench implements 'pvec bench', a rough timing of the basic
// operations of each vector kind.
package bench

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec/internal/logging"
	"github.com/npillmayer/pvec/persistent/vector"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "time append, cons, indexing and removal for every kind",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of items per operation",
				Value:   100000,
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "include the list-backed reference vector",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	log := logging.New(c)
	n := c.Int("count")
	kinds := []vector.Kind{vector.KindAppendable, vector.KindPrependable, vector.KindDeque}
	if c.Bool("list") {
		kinds = append(kinds, vector.KindList)
	}
	tw := tabwriter.NewWriter(c.App.Writer, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "kind\tappend\tcons\tat\tpop\ttail\t")
	for _, kind := range kinds {
		r := Measure(kind, n)
		log.WithField("kind", kind).Debugf("measured %d items", n)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n", kind,
			r.Append, r.Cons, r.At, r.Pop, r.Tail)
	}
	return tw.Flush()
}

// Timings are per-item averages.
type Timings struct {
	Append, Cons, At, Pop, Tail time.Duration
}

// Measure times n calls of each operation on a vector of the given kind.
func Measure(kind vector.Kind, n int) Timings {
	var r Timings
	if n <= 0 {
		return r
	}
	per := func(start time.Time) time.Duration {
		return time.Since(start) / time.Duration(n)
	}
	v := vector.New[int](kind)
	start := time.Now()
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}
	r.Append = per(start)

	start = time.Now()
	for i := 0; i < n; i++ {
		_, _ = v.At(i)
	}
	r.At = per(start)

	w := v
	start = time.Now()
	for w.Len() > 0 {
		w, _ = w.Popped()
	}
	r.Pop = per(start)

	w = vector.New[int](kind)
	start = time.Now()
	for i := 0; i < n; i++ {
		w = w.Cons(i)
	}
	r.Cons = per(start)

	start = time.Now()
	for w.Len() > 0 {
		w, _ = w.Tail()
	}
	r.Tail = per(start)
	return r
}
