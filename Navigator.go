// Package rnav resolves NestLancer front-end paths against the application's
// route table and derives the navigation metadata the layout renders.
package rnav

import (
	"github.com/nestlancer/rnav/consts"
	"github.com/nestlancer/rnav/core/crumbs"
	"github.com/nestlancer/rnav/core/rtr"
)

// Page is everything the layout needs to know about the current path.
type Page struct {
	Path        string              `json:"path" yaml:"path"`
	Route       string              `json:"route,omitempty" yaml:"route,omitempty"`
	Params      []rtr.Parameter     `json:"params,omitempty" yaml:"params,omitempty"`
	Title       string              `json:"title" yaml:"title"`
	Icon        string              `json:"icon" yaml:"icon"`
	Breadcrumbs []crumbs.Breadcrumb `json:"breadcrumbs" yaml:"breadcrumbs"`
}

// Navigator pairs a route table with the metadata deriver.
type Navigator struct {
	table *rtr.RouteTable
}

// NewNavigator creates a navigator over table.
// A nil table is replaced with an empty one, so every path is unrouted.
func NewNavigator(table *rtr.RouteTable) *Navigator {
	if table == nil {
		table = rtr.NewRouteTable()
	}
	return &Navigator{table: table}
}

// DefaultRoutes builds the built-in NestLancer route table.
func DefaultRoutes() (*rtr.RouteTable, error) {
	rt := rtr.NewRouteTable()
	for _, r := range consts.Routes {
		if err := rt.Add(r[0], r[1]); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// Table exposes the underlying route table.
func (n *Navigator) Table() *rtr.RouteTable {
	return n.table
}

// Describe resolves path and derives its title, icon and breadcrumbs.
// An unrouted path still gets metadata; only Route and Params stay empty.
func (n *Navigator) Describe(path string) Page {
	pg := Page{
		Path:        path,
		Title:       crumbs.Title(path),
		Icon:        crumbs.Icon(path),
		Breadcrumbs: crumbs.Breadcrumbs(path),
	}
	if pg.Breadcrumbs == nil {
		pg.Breadcrumbs = []crumbs.Breadcrumb{}
	}

	if name, params, found := n.table.Lookup(path); found {
		pg.Route = name
		pg.Params = params
	}
	return pg
}
