package main

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/microflex/microflex/cmd/microflex/config"
	"github.com/microflex/microflex/expr/mathop"
	"github.com/microflex/microflex/expr/statistic"
	"github.com/microflex/microflex/expr/types"
)

var percentileName = regexp.MustCompile(`^p([0-9]+)$`)

type catalog struct {
	Statistics []types.Description `json:"statistics"`
	Operations []types.Description `json:"operations"`
}

func newDescribeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe [NAME]",
		Short: "List the statistics and operations, or describe one of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog{Statistics: statistic.Descriptions(), Operations: mathop.Descriptions()}
			if len(args) == 1 {
				d, err := describeOne(c, args[0])
				if err != nil {
					return err
				}
				c = catalog{}
				if mathop.IsBinary(d.Name) || d.Group == "Unary" {
					c.Operations = []types.Description{d}
				} else {
					c.Statistics = []types.Description{d}
				}
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(c)
			}
			return writeCatalog(cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func describeOne(c catalog, name string) (types.Description, error) {
	for _, list := range [][]types.Description{c.Statistics, c.Operations} {
		for _, d := range list {
			if d.Name == name {
				return d, nil
			}
		}
	}
	if err := statistic.CheckValid(name); err != nil {
		return types.Description{}, err
	}
	// a percentile such as p95
	d := types.Description{Name: name, Group: "Location", Description: "Percentile, interpolated between closest ranks at p(n+1)/100."}
	if m := percentileName.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[1])
		d.Description = humanize.Ordinal(n) + " percentile, interpolated between closest ranks at p(n+1)/100."
	}
	return d, nil
}

func writeCatalog(w io.Writer, c catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	section := func(title string, list []types.Description) {
		if len(list) == 0 {
			return
		}
		fmt.Fprintf(tw, "%s (%s)\n", title, humanize.Comma(int64(len(list))))
		for _, d := range list {
			name := d.Name
			if d.Bitwise {
				name += "*"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", name, d.Group, d.Description)
		}
	}
	section("Statistics", c.Statistics)
	section("Operations", c.Operations)
	if len(c.Operations) > 0 {
		fmt.Fprintf(tw, "* integer and biginteger domains only; current domain is %s\n", config.Config.Domain)
	}
	return tw.Flush()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), config.Config.String())
			return err
		},
	}
}
