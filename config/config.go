// Package config loads a route table definition from YAML.
//
// Example file:
//
//	routes:
//	  - name: project
//	    path: /projects/:projectId
//	  - name: quote
//	    path: /projects/:projectId/quotes/:quoteId
package config

import (
	"os"
	"strconv"

	"github.com/nestlancer/rnav/core/rtr"
	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Route is one named template.
type Route struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Config is the parsed route file.
type Config struct {
	Routes []Route `yaml:"routes"`
}

// Load reads and parses the route file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "reading route file", "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes a route file. A file without routes is an error.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, serr.Wrap(err, "parsing route file")
	}
	if len(cfg.Routes) == 0 {
		return nil, serr.New("route file defines no routes")
	}
	return &cfg, nil
}

// Table builds a route table from the configured routes, in file order.
func (c *Config) Table() (*rtr.RouteTable, error) {
	rt := rtr.NewRouteTable()
	for i, r := range c.Routes {
		if err := rt.Add(r.Name, r.Path); err != nil {
			return nil, serr.Wrap(err, "invalid route entry", "index", strconv.Itoa(i))
		}
	}
	return rt, nil
}
