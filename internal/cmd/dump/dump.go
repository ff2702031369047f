// Package dump implements 'pvec dump', which prints the internal tree of a
// vector.
package dump

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec/internal/cmd"
	"github.com/npillmayer/pvec/internal/logging"
	"github.com/npillmayer/pvec/persistent/vector"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the trie of a vector",
		ArgsUsage: "[ITEM...]",
		Flags:     cmd.ShapeFlags(),
		Action:    run,
	}
}

func run(c *cli.Context) error {
	v, err := cmd.Vector(c)
	if err != nil {
		return err
	}
	logging.New(c).Debugf("dumping %s vector of %d items", v.Kind(), v.Len())
	_, err = fmt.Fprint(c.App.Writer, vector.Dump(v))
	return err
}
