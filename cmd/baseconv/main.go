// Command baseconv prints a number in every registered base.
//
//	baseconv --from 16 ff
//	echo 255 | baseconv --to 2,16 --verify
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/govalues/baseconv"
	"github.com/govalues/baseconv/registry"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	from      int
	to        []int
	alphabets string
	verify    bool
}

func addFlags(fs *pflag.FlagSet, o *options) {
	fs.IntVarP(&o.from, "from", "f", 10, "base of the input number")
	fs.IntSliceVarP(&o.to, "to", "t", nil, "bases to print (default: every registered base)")
	fs.StringVar(&o.alphabets, "alphabets", "", "YAML file with additional alphabets")
	fs.BoolVar(&o.verify, "verify", false, "convert every output back and compare")
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "baseconv [flags] [NUMBER]",
		Short:        "Convert a non-negative integer between numeral bases",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), &o, args)
		},
	}
	addFlags(cmd.Flags(), &o)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer, o *options, args []string) error {
	reg, err := loadRegistry(o.alphabets)
	if err != nil {
		return err
	}
	in, err := reg.Lookup(o.from)
	if err != nil {
		return errors.Wrap(err, "input base")
	}

	var text string
	if len(args) == 1 {
		text = strings.TrimSpace(args[0])
	} else {
		text, err = readNumber(stdin)
		if err != nil {
			return err
		}
	}

	d, err := in.Decode(text)
	if err != nil {
		return errors.Wrapf(err, "reading %q as %s", text, in.Name)
	}
	fmt.Fprintf(stdout, "Input %q (%s) converted to value %s (base 10, %s digits).\n\n",
		text, in.Name, d, humanize.Comma(int64(d.Len())))

	bases := o.to
	if len(bases) == 0 {
		bases = reg.Bases()
	}
	for _, b := range bases {
		out, err := reg.Lookup(b)
		if err != nil {
			return errors.Wrap(err, "output base")
		}
		s, err := out.Encode(d)
		if err != nil {
			return errors.Wrapf(err, "writing %s", out.Name)
		}
		fmt.Fprintf(stdout, "Base %2d : %s\n", b, s)
		if o.verify {
			if err := verify(d, s, out); err != nil {
				return err
			}
		}
	}
	if o.verify {
		fmt.Fprintln(stdout, "\nRestoration check OK.")
	}
	return nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening alphabets")
	}
	defer f.Close()
	reg, err := registry.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return reg, nil
}

// readNumber returns the first non-blank line of r, trimmed.
func readNumber(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 4*baseconv.MaxEncodedLen(baseconv.MaxDigits, 2))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", errors.Wrap(err, "reading number")
	}
	return "", errors.Wrap(baseconv.ErrInvalidFormat, "no number given")
}

// verify converts s back with the entry's output alphabet and compares it with d.
func verify(d baseconv.BigDecimal, s string, e registry.Entry) error {
	back, err := baseconv.FromBaseString(s, e.Output)
	if err != nil {
		return errors.Wrapf(err, "restoring %q from %s", s, e.Name)
	}
	if back.Cmp(d.Abs()) != 0 {
		return errors.Newf("restoration check from %s failed: %q -> %s, want %s", e.Name, s, back, d)
	}
	return nil
}
