// Package build implements 'pvec build', which builds a vector and prints
// its items.
package build

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec/internal/cmd"
	"github.com/npillmayer/pvec/internal/logging"
	"github.com/npillmayer/pvec/maybe"
	"github.com/npillmayer/pvec/persistent/vector"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "build a vector and print its items",
		ArgsUsage: "[ITEM...]",
		Flags: append(cmd.ShapeFlags(),
			&cli.IntSliceFlag{
				Name:  "at",
				Usage: "also print the item at position `I`",
			},
		),
		Action: run,
	}
}

func run(c *cli.Context) error {
	log := logging.New(c)
	v, err := cmd.Vector(c)
	if err != nil {
		return err
	}
	log.WithField("kind", v.Kind()).WithField("len", v.Len()).Info("vector built")
	return Print(c.App.Writer, v, c.IntSlice("at"))
}

// Print writes the items of v, its ends, and the items at the positions
// given in at.
func Print(w io.Writer, v vector.Vector[int], at []int) error {
	items := make([]string, 0, v.Len())
	for x := range v.Values() {
		items = append(items, strconv.Itoa(x))
	}
	if _, err := fmt.Fprintf(w, "%s[%s]\n", v.Kind(), strings.Join(items, " ")); err != nil {
		return err
	}
	head := describe(vector.TryElementAt(v, 0))
	end := describe(vector.Last(v, nil))
	if _, err := fmt.Fprintf(w, "head=%s end=%s\n", head, end); err != nil {
		return err
	}
	for _, i := range at {
		var x int
		var lookup, err error
		switch m := vector.ElementAt(v, i).Match(); m {
		case m.Ok(&x):
			_, err = fmt.Fprintf(w, "at %d: %d\n", i, x)
		case m.Err(&lookup):
			_, err = fmt.Fprintf(w, "at %d: %v\n", i, lookup)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func describe(x maybe.Maybe[int]) string {
	var s string
	switch m := maybe.Map(strconv.Itoa, x).Match(); m {
	case m.Just(&s):
	case m.Nothing():
		s = "none"
	}
	return s
}
