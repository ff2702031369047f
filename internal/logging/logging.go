// Package logging configures logging and tracing from a cli context.
//
// The driver logs through a logrus logger. Library packages trace through the
// schuko tracing facade, which is routed to logrus as well.
package logging

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/npillmayer/pvec"
)

// key with random component to avoid collision
const key = "pvec.internal.logging:q7#Vd!2x(Kz"

// New returns the logger bound to the cli context, creating it on first use.
func New(c *cli.Context) *logrus.Entry {
	if logger, ok := c.App.Metadata[key].(*logrus.Entry); ok {
		return logger
	}
	logger := logrus.New()
	if c.App.ErrWriter != nil {
		logger.SetOutput(c.App.ErrWriter)
	}
	logger.SetFormatter(Formatter(c))
	logger.SetLevel(Level(c))
	entry := logger.WithField("version", pvec.Version)
	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[key] = entry
	return entry
}

// Level returns the logging level selected by flags.
func Level(c *cli.Context) logrus.Level {
	if c.String("logfmt") == "none" {
		return logrus.PanicLevel
	}
	switch c.String("loglvl") {
	case "trace", "t":
		return logrus.TraceLevel
	case "debug", "d":
		return logrus.DebugLevel
	case "info", "i":
		return logrus.InfoLevel
	case "warn", "warning", "w":
		return logrus.WarnLevel
	case "error", "err", "e":
		return logrus.ErrorLevel
	case "fatal", "f":
		return logrus.FatalLevel
	}
	return logrus.InfoLevel
}

// Formatter returns the log formatter selected by flags.
func Formatter(c *cli.Context) logrus.Formatter {
	switch c.String("logfmt") {
	case "json":
		return &logrus.JSONFormatter{PrettyPrint: c.Bool("prettyprint")}
	}
	return new(logrus.TextFormatter)
}

// ConfigureTracing routes the tracing facade to logrus tracers. Their levels
// come from the --trace flag ("Error", "Info" or "Debug"), their output from
// --tracedest.
func ConfigureTracing(c *cli.Context) error {
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf := FromFlags(c)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
