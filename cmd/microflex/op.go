package main

import (
	"io"
	"math/big"

	"github.com/lomik/zapwriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/microflex/microflex/cmd/microflex/config"
	"github.com/microflex/microflex/expr/mathop"
	"github.com/microflex/microflex/pkg/numeric"
	"github.com/microflex/microflex/pkg/plate"
)

type opOptions struct {
	name   string
	inputs []string
	strict bool
	scalar string
	array  []string
	shift  uint
	begin  int
	length int
	output string
}

func newOpCmd() *cobra.Command {
	var o opOptions

	cmd := &cobra.Command{
		Use:   "op OPERATION FILE [FILE]",
		Short: "Apply an arithmetic or bitwise operation to stacks",
		Long: `Apply an operation to the stack in the first FILE and either the stack in
the second FILE, --scalar or --array. Unary operations take one FILE. "-" reads
stdin. The result is written as a stack document.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.name = args[0]
			o.inputs = args[1:]
			return runOp(o, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.BoolVar(&o.strict, "strict", false, "combine only the wells, values and plates both operands hold")
	f.StringVar(&o.scalar, "scalar", "", "combine every value with this constant")
	f.StringSliceVar(&o.array, "array", nil, "combine the values of every well with these values, index by index")
	f.UintVar(&o.shift, "shift", 1, "shift distance of leftshift and rightshift")
	f.IntVar(&o.begin, "begin", 0, "first value of every well to use")
	f.IntVar(&o.length, "length", -1, "number of values of every well to use, -1 for all")
	f.StringVarP(&o.output, "output", "o", "", "write the resulting stack to this file instead of stdout")
	return cmd
}

func runOp(o opOptions, in io.Reader, out io.Writer) error {
	switch config.Config.Domain {
	case "double":
		return opFor[float64](numeric.Float64{}, o, in, out)
	case "decimal":
		d, err := config.Config.DecimalDomain()
		if err != nil {
			return err
		}
		return opFor[decimal.Decimal](d, o, in, out)
	case "integer":
		return opFor[int32](numeric.Int32{}, o, in, out)
	case "biginteger":
		return opFor[*big.Int](numeric.BigInt{}, o, in, out)
	}
	return numeric.ErrUnknownDomain.Here().Append(config.Config.Domain)
}

func (o opOptions) window() (begin, length int, set bool, err error) {
	if o.length < 0 && o.begin == 0 {
		return 0, 0, false, nil
	}
	if o.length < 0 {
		return 0, 0, false, errUsage.Here().Append("--begin needs --length")
	}
	return o.begin, o.length, true, nil
}

func opFor[T any](d numeric.Domain[T], o opOptions, in io.Reader, out io.Writer) error {
	if len(o.inputs) == 2 && o.inputs[0] == "-" && o.inputs[1] == "-" {
		return errUsage.Here().Append("only one operand can be read from stdin")
	}
	begin, length, windowed, err := o.window()
	if err != nil {
		return err
	}
	x, err := readStack(d, o.inputs[0], in)
	if err != nil {
		return err
	}

	var r *plate.Stack[T]
	if !mathop.IsBinary(o.name) {
		u, err := mathop.LookupUnary(d, o.name, o.shift)
		if err != nil {
			return err
		}
		if len(o.inputs) > 1 || o.scalar != "" || o.array != nil {
			return errUsage.Here().Appendf("%s takes a single operand", o.name)
		}
		if windowed {
			if u, err = u.Window(begin, length); err != nil {
				return err
			}
		}
		if r, err = u.Stack(x); err != nil {
			return err
		}
	} else {
		b, err := mathop.LookupBinary(d, o.name)
		if err != nil {
			return err
		}
		if windowed {
			if b, err = b.Window(begin, length); err != nil {
				return err
			}
		}
		if r, err = binaryStack(d, b, o, x, in); err != nil {
			return err
		}
	}

	zapwriter.Logger("op").Info("operation applied",
		zap.String("operation", o.name),
		zap.String("domain", d.Name()),
		zap.Bool("strict", o.strict),
		zap.Int("plates", r.Len()),
	)
	return writeOutput(out, o.output, marshalStack(d, r))
}

func binaryStack[T any](d numeric.Domain[T], b *mathop.Binary[T], o opOptions, x *plate.Stack[T], in io.Reader) (*plate.Stack[T], error) {
	operands := 0
	if len(o.inputs) > 1 {
		operands++
	}
	if o.scalar != "" {
		operands++
	}
	if o.array != nil {
		operands++
	}
	if operands != 1 {
		return nil, errUsage.Here().Appendf("%s needs exactly one of a second FILE, --scalar or --array", o.name)
	}

	switch {
	case o.scalar != "":
		c, err := d.Parse(o.scalar)
		if err != nil {
			return nil, err
		}
		return b.StackScalar(x, c)
	case o.array != nil:
		array, err := numeric.ParseAll(d, o.array...)
		if err != nil {
			return nil, err
		}
		return b.StackArray(x, array)
	}

	y, err := readStack(d, o.inputs[1], in)
	if err != nil {
		return nil, err
	}
	if o.strict {
		return b.StacksStrict(x, y)
	}
	return b.Stacks(x, y)
}
