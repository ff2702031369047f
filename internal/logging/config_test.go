package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp(action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "logfmt", Value: "text"},
			&cli.StringFlag{Name: "loglvl", Value: "info"},
			&cli.StringFlag{Name: "trace"},
			&cli.StringFlag{Name: "tracedest"},
			&cli.BoolFlag{Name: "prettyprint"},
		},
		Writer:    new(bytes.Buffer),
		ErrWriter: new(bytes.Buffer),
		Action:    action,
	}
}

func TestFlagConfigDefaults(t *testing.T) {
	conf := flagConfig{}
	conf.InitDefaults()
	assert.Equal(t, "logrus", conf.GetString("tracing.adapter"))
	assert.Equal(t, "Error", conf.GetString("tracelevel.root"))
	assert.Equal(t, "Error", conf.GetString("tracelevel.persistent.vector"))
	assert.False(t, conf.IsSet("tracing.destination"))
	assert.False(t, conf.IsInteractive())
}

func TestFlagConfigAccessors(t *testing.T) {
	conf := flagConfig{"n": "42", "b": "Yes", "x": "nope"}
	assert.Equal(t, 42, conf.GetInt("n"))
	assert.Equal(t, 0, conf.GetInt("x"))
	assert.True(t, conf.GetBool("b"))
	assert.False(t, conf.GetBool("x"))
	assert.False(t, conf.GetBool("missing"))
}

func TestFromFlags(t *testing.T) {
	var conf map[string]string
	app := testApp(func(c *cli.Context) error {
		conf = FromFlags(c).(flagConfig)
		return nil
	})
	err := app.Run([]string{"test", "--trace", "Debug", "--tracedest", "/tmp/pvec.trace"})
	require.NoError(t, err)
	assert.Equal(t, "Debug", conf["tracelevel.root"])
	assert.Equal(t, "Debug", conf["tracelevel.persistent.vector"])
	assert.Equal(t, "/tmp/pvec.trace", conf["tracing.destination"])
}

func TestLoggerIsCached(t *testing.T) {
	app := testApp(func(c *cli.Context) error {
		first := New(c)
		assert.Same(t, first, New(c))
		assert.Equal(t, logrus.DebugLevel, first.Logger.GetLevel())
		_, ok := first.Logger.Formatter.(*logrus.JSONFormatter)
		assert.True(t, ok, "expected JSON formatter")
		return nil
	})
	require.NoError(t, app.Run([]string{"test", "--loglvl", "debug", "--logfmt", "json"}))
}

func TestLevels(t *testing.T) {
	for lvl, want := range map[string]logrus.Level{
		"t":       logrus.TraceLevel,
		"warning": logrus.WarnLevel,
		"err":     logrus.ErrorLevel,
		"bogus":   logrus.InfoLevel,
	} {
		app := testApp(func(c *cli.Context) error {
			assert.Equal(t, want, Level(c), lvl)
			return nil
		})
		require.NoError(t, app.Run([]string{"test", "--loglvl", lvl}))
	}
	app := testApp(func(c *cli.Context) error {
		assert.Equal(t, logrus.PanicLevel, Level(c))
		return nil
	})
	require.NoError(t, app.Run([]string{"test", "--logfmt", "none", "--loglvl", "debug"}))
}
