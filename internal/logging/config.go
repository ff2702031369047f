package logging

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/urfave/cli/v2"
)

// TraceKeys are the tracers the driver configures.
var TraceKeys = []string{"persistent.vector"}

// flagConfig presents command line flags as a schuko.Configuration, which is
// what the tracing setup consumes.
type flagConfig map[string]string

var _ schuko.Configuration = flagConfig{}

// FromFlags collects the tracing configuration from the cli context.
func FromFlags(c *cli.Context) schuko.Configuration {
	conf := flagConfig{}
	conf.InitDefaults()
	if lvl := c.String("trace"); lvl != "" {
		conf["tracelevel.root"] = lvl
		for _, k := range TraceKeys {
			conf["tracelevel."+k] = lvl
		}
	}
	if dest := c.String("tracedest"); dest != "" {
		conf["tracing.destination"] = dest
	}
	return conf
}

func (conf flagConfig) InitDefaults() {
	conf["tracing.adapter"] = "logrus"
	conf["tracelevel.root"] = "Error"
	for _, k := range TraceKeys {
		conf["tracelevel."+k] = "Error"
	}
}

func (conf flagConfig) IsSet(key string) bool {
	_, ok := conf[key]
	return ok
}

func (conf flagConfig) GetString(key string) string {
	return conf[key]
}

func (conf flagConfig) GetInt(key string) int {
	n, _ := strconv.Atoi(conf[key])
	return n
}

func (conf flagConfig) GetBool(key string) bool {
	switch strings.ToLower(conf[key]) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}

func (conf flagConfig) IsInteractive() bool {
	return false
}
