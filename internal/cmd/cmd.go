// Package cmd holds helpers shared by the sub-commands of the pvec driver.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec/persistent/vector"
)

// Kind returns the vector kind selected by the global --kind flag.
func Kind(c *cli.Context) (vector.Kind, error) {
	return vector.ParseKind(c.String("kind"))
}

// Items returns the integer arguments of c. Without arguments it returns
// 0…size-1, with size taken from the global --size flag.
func Items(c *cli.Context) ([]int, error) {
	if c.NArg() == 0 {
		size := c.Int("size")
		if size < 0 {
			return nil, fmt.Errorf("size must not be negative, is %d", size)
		}
		items := make([]int, size)
		for i := range items {
			items[i] = i
		}
		return items, nil
	}
	items := make([]int, 0, c.NArg())
	for _, arg := range c.Args().Slice() {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("item %q is not an integer: %w", arg, err)
		}
		items = append(items, n)
	}
	return items, nil
}

// Vector builds the vector described by the flags and arguments of c.
func Vector(c *cli.Context) (vector.Vector[int], error) {
	kind, err := Kind(c)
	if err != nil {
		return nil, err
	}
	items, err := Items(c)
	if err != nil {
		return nil, err
	}
	v := vector.New(kind, items...)
	for _, x := range c.IntSlice("append") {
		v = v.Append(x)
	}
	for _, x := range c.IntSlice("prepend") {
		v = v.Cons(x)
	}
	return v, nil
}

// ShapeFlags are the flags understood by Vector.
func ShapeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "append",
			Usage: "append `ITEM` after building",
		},
		&cli.IntSliceFlag{
			Name:  "prepend",
			Usage: "prepend `ITEM` after building",
		},
	}
}
