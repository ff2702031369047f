// Package check implements 'pvec check', a randomized differential test of
// the vector kinds against the list-backed reference vector.
//
// Several workers derive vectors from one shared ancestor concurrently. Each
// worker replays random operations on its vector and on a reference list,
// comparing both after every step. At the end the ancestor must be unchanged.
package check

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/pvec/internal/cmd"
	"github.com/npillmayer/pvec/internal/logging"
	"github.com/npillmayer/pvec/persistent/vector"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "compare random operations against the reference list",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "number of concurrent workers",
				Value:   4,
			},
			&cli.IntFlag{
				Name:  "steps",
				Usage: "operations per worker",
				Value: 10000,
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "seed of the first worker",
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "check every kind, ignoring --kind",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	log := logging.New(c)
	kinds, err := selectKinds(c)
	if err != nil {
		return err
	}
	items, err := cmd.Items(c)
	if err != nil {
		return err
	}
	for _, kind := range kinds {
		cfg := Config{
			Kind:    kind,
			Items:   items,
			Workers: c.Int("workers"),
			Steps:   c.Int("steps"),
			Seed:    c.Uint64("seed"),
		}
		if err := Run(cfg, log); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%-12s ok (%d workers × %d steps)\n", kind, cfg.Workers, cfg.Steps)
	}
	return nil
}

func selectKinds(c *cli.Context) ([]vector.Kind, error) {
	if c.Bool("all") {
		return []vector.Kind{vector.KindAppendable, vector.KindPrependable, vector.KindDeque}, nil
	}
	kind, err := cmd.Kind(c)
	if err != nil {
		return nil, err
	}
	return []vector.Kind{kind}, nil
}

// Config parameterizes a check run.
type Config struct {
	Kind    vector.Kind
	Items   []int
	Workers int
	Steps   int
	Seed    uint64
}

// Run performs a check run and returns the first mismatch found.
func Run(cfg Config, log *logrus.Entry) error {
	ancestor := vector.New(cfg.Kind, cfg.Items...)
	var g errgroup.Group
	for w := 0; w < max(cfg.Workers, 1); w++ {
		seed := cfg.Seed + uint64(w)
		g.Go(func() error {
			err := replay(ancestor, cfg.Items, cfg.Steps, seed)
			if err != nil {
				log.WithField("worker", w).WithField("seed", seed).Error(err)
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", cfg.Kind, err)
	}
	if !vector.Equal(ancestor, vector.NewList(cfg.Items...)) {
		return fmt.Errorf("%s: shared ancestor has been modified", cfg.Kind)
	}
	log.WithField("kind", cfg.Kind).Debugf("%d workers passed", cfg.Workers)
	return nil
}

func replay(v vector.Vector[int], items []int, steps int, seed uint64) error {
	rnd := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	var ref vector.Vector[int] = vector.NewList(items...)
	for step := 0; step < steps; step++ {
		op := rnd.IntN(6)
		w, wref := v, ref
		var err, referr error
		switch op {
		case 0:
			x := rnd.Int()
			w, wref = v.Append(x), ref.Append(x)
		case 1:
			x := rnd.Int()
			w, wref = v.Cons(x), ref.Cons(x)
		case 2:
			w, err = v.Popped()
			wref, referr = ref.Popped()
		case 3:
			w, err = v.Tail()
			wref, referr = ref.Tail()
		case 4:
			i, x := rnd.IntN(ref.Len()+1), rnd.Int()
			w, err = v.Update(i, x)
			wref, referr = ref.Update(i, x)
		case 5:
			if ref.Len() > 0 {
				i := rnd.IntN(ref.Len())
				x, err := v.At(i)
				y, _ := ref.At(i)
				if err != nil || x != y {
					return fmt.Errorf("step %d: item %d is %d, expected %d", step, i, x, y)
				}
			}
		}
		if (err == nil) != (referr == nil) {
			return fmt.Errorf("step %d: operation %d returned %v, expected %v", step, op, err, referr)
		}
		if err != nil {
			continue
		}
		v, ref = w, wref
		if !vector.Equal(v, ref) {
			return fmt.Errorf("step %d: operation %d diverged at length %d", step, op, ref.Len())
		}
	}
	return nil
}
