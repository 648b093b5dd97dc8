package main

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/nestlancer/rnav/consts"
	"github.com/nestlancer/rnav/core/crumbs"
	"github.com/nestlancer/rnav/core/rtr"
	"github.com/nestlancer/rnav/render"
	"github.com/nestlancer/rnav/send"
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rawSubstitute bool

var generateCmd = &cobra.Command{
	Use:     "generate TEMPLATE [name=value...]",
	Short:   "Fill the parameter markers of a route template",
	Example: `  rnav generate /projects/:projectId/quotes/:quoteId projectId=1 quoteId=2`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}

		var out string
		if rawSubstitute {
			out = rtr.Substitute(args[0], params)
		} else {
			out = rtr.GenerateRoute(args[0], params)
		}
		logger.Debug("generated route", zap.String("template", args[0]), zap.String("path", out))
		return emit(cmd, out, out)
	},
}

var pathCmd = &cobra.Command{
	Use:   "path ROUTE [name=value...]",
	Short: "Build the path of a named route",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := loadNavigator()
		if err != nil {
			return err
		}
		params, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		out, err := nav.Table().Path(args[0], params)
		if err != nil {
			return err
		}
		return emit(cmd, out, out)
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params PATH TEMPLATE",
	Short: "Extract parameter values from a path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		params := rtr.ExtractParams(args[0], args[1])

		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, len(keys))
		for i, k := range keys {
			lines[i] = k + "=" + params[k]
		}
		return emit(cmd, params, strings.Join(lines, "\n"))
	},
}

var matchCmd = &cobra.Command{
	Use:   "match PATH TEMPLATE",
	Short: "Report whether a path matches a template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := rtr.Matches(args[0], args[1])
		return emit(cmd, ok, strconv.FormatBool(ok))
	},
}

var crumbsCmd = &cobra.Command{
	Use:   "crumbs PATH",
	Short: "Derive the breadcrumb trail of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trail := crumbs.Breadcrumbs(args[0])
		if format == consts.FormatHTML {
			b := element.NewBuilder()
			element.RenderComponents(b, render.Trail{Crumbs: trail})
			return send.HTML(cmd.OutOrStdout(), b.String())
		}

		lines := make([]string, len(trail))
		for i, c := range trail {
			lines[i] = c.Label + "\t" + c.Path
		}
		if trail == nil {
			trail = []crumbs.Breadcrumb{}
		}
		return emit(cmd, trail, strings.Join(lines, "\n"))
	},
}

var titleCmd = &cobra.Command{
	Use:   "title PATH",
	Short: "Derive the page title of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := crumbs.Title(args[0])
		return emit(cmd, title, title)
	},
}

var iconCmd = &cobra.Command{
	Use:   "icon PATH",
	Short: "Look up the icon glyph of a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		icon := crumbs.Icon(args[0])
		return emit(cmd, icon, icon)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe PATH",
	Short: "Resolve a path against the route table and derive its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := loadNavigator()
		if err != nil {
			return err
		}

		pg := nav.Describe(args[0])
		if pg.Route == "" {
			logger.Debug("path matches no route", zap.String("path", pg.Path))
		}
		if format == consts.FormatHTML {
			return send.HTML(cmd.OutOrStdout(), render.Page(pg))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s %s\n", pg.Icon, pg.Title)
		fmt.Fprintf(&sb, "route: %s", pg.Route)
		for _, p := range pg.Params {
			fmt.Fprintf(&sb, "\n  %s=%s", p.Key, p.Value)
		}
		for _, c := range pg.Breadcrumbs {
			fmt.Fprintf(&sb, "\n> %s (%s)", c.Label, c.Path)
		}
		return emit(cmd, pg, sb.String())
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nav, err := loadNavigator()
		if err != nil {
			return err
		}

		routes := nav.Table().ListRoutes()
		lines := make([]string, len(routes))
		for i, r := range routes {
			lines[i] = r.Name + "\t" + r.Path
		}
		return emit(cmd, routes, strings.Join(lines, "\n"))
	},
}

func init() {
	generateCmd.Flags().BoolVar(&rawSubstitute, "raw", false, "plain text replacement of :name (may rewrite inside longer markers)")
}

// emit writes object for structured formats and text otherwise.
func emit(cmd *cobra.Command, object any, text string) error {
	logger.Debug("writing output", zap.String("format", format), zap.String("content_type", send.ContentType(format)))
	switch format {
	case consts.FormatJSON, consts.FormatYAML:
		return send.Format(cmd.OutOrStdout(), format, object)
	case consts.FormatHTML:
		return send.HTML(cmd.OutOrStdout(), html.EscapeString(text))
	default:
		return send.Format(cmd.OutOrStdout(), format, text)
	}
}

// parseAssignments turns name=value arguments into a parameter map.
func parseAssignments(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, serr.New("parameter must be name=value", "arg", arg)
		}
		params[name] = value
	}
	return params, nil
}
