package main

import (
	"io"
	"math/big"

	"github.com/lomik/zapwriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/microflex/microflex/cmd/microflex/config"
	"github.com/microflex/microflex/expr/statistic"
	"github.com/microflex/microflex/expr/types"
	"github.com/microflex/microflex/pkg/numeric"
)

type statOptions struct {
	name      string
	input     string
	aggregate string
	begin     int
	length    int
	weights   []string
	output    string
}

func newStatCmd() *cobra.Command {
	var o statOptions

	cmd := &cobra.Command{
		Use:   "stat STATISTIC [FILE]",
		Short: "Compute a statistic for every well, plate or the whole stack",
		Long: `Compute a statistic over a plate or stack document read from FILE, or
stdin when FILE is "-" or missing. Run "microflex describe" for the list of
statistics.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.name = args[0]
			o.input = "-"
			if len(args) > 1 {
				o.input = args[1]
			}
			return runStat(o, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.aggregate, "aggregate", "", `aggregate the data of every "plate" or of the whole "stack" instead of computing per well`)
	f.IntVar(&o.begin, "begin", 0, "first value of every well to use")
	f.IntVar(&o.length, "length", -1, "number of values of every well to use, -1 for all")
	f.StringSliceVar(&o.weights, "weights", nil, "comma separated weights multiplied into the values of every well")
	f.StringVarP(&o.output, "output", "o", "", "write the results to this file instead of stdout")
	return cmd
}

func runStat(o statOptions, in io.Reader, out io.Writer) error {
	switch config.Config.Domain {
	case "double":
		return statFor[float64](numeric.Float64{}, o, in, out)
	case "decimal":
		d, err := config.Config.DecimalDomain()
		if err != nil {
			return err
		}
		return statFor[decimal.Decimal](d, o, in, out)
	case "integer":
		return statFor[int32](numeric.Int32{}, o, in, out)
	case "biginteger":
		return statFor[*big.Int](numeric.BigInt{}, o, in, out)
	}
	return numeric.ErrUnknownDomain.Here().Append(config.Config.Domain)
}

func calculator[T any](d numeric.Domain[T], o statOptions) (*statistic.Calculator[T], error) {
	c, err := statistic.Lookup(d, o.name)
	if err != nil {
		return nil, err
	}
	if o.length >= 0 || o.begin != 0 {
		length := o.length
		if length < 0 {
			return nil, errUsage.Here().Append("--begin needs --length")
		}
		if c, err = c.Window(o.begin, length); err != nil {
			return nil, err
		}
	}
	if len(o.weights) > 0 {
		w, err := numeric.ParseAll(d, o.weights...)
		if err != nil {
			return nil, err
		}
		if c, err = c.Weighted(w); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func statFor[T any](d numeric.Domain[T], o statOptions, in io.Reader, out io.Writer) error {
	c, err := calculator(d, o)
	if err != nil {
		return err
	}
	s, err := readStack(d, o.input, in)
	if err != nil {
		return err
	}

	var records []types.Record
	switch o.aggregate {
	case "":
		r, err := c.Stack(s)
		if err != nil {
			return err
		}
		records = r.Records(d)
	case "plate":
		r, err := c.StackAggregated(s)
		if err != nil {
			return err
		}
		records = r.Records(d)
	case "stack":
		r, err := c.StacksAggregated(s)
		if err != nil {
			return err
		}
		records = r.Records(d)
	default:
		return errUsage.Here().Appendf("--aggregate %q, expected plate or stack", o.aggregate)
	}

	zapwriter.Logger("stat").Info("statistic computed",
		zap.String("statistic", c.Name()),
		zap.String("domain", d.Name()),
		zap.String("stack", s.Label()),
		zap.Int("plates", s.Len()),
		zap.Int("results", len(records)),
	)
	return writeOutput(out, o.output, marshalRecords(records))
}
