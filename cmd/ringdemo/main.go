// Command ringdemo pushes values through a ring buffer and prints its
// contents before and after each push.
//
// Usage:
//
//	ringdemo [flags]
//
// Examples:
//
//	ringdemo
//	ringdemo -size 8 -pushes 20 -raw
//	ringdemo -fir -size 5 -pushes 10
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/xabra/signal-processing/dsp/filter/fir"
	"github.com/xabra/signal-processing/dsp/ring"
)

type config struct {
	size      int
	pushes    int
	initValue float64
	raw       bool
	filter    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.size, "size", 5, "ring capacity / filter taps")
	flag.IntVar(&cfg.pushes, "pushes", 6, "number of values to push (1..N)")
	flag.Float64Var(&cfg.initValue, "init", 0, "initial value of every slot")
	flag.BoolVar(&cfg.raw, "raw", false, "also print the physical storage order")
	flag.BoolVar(&cfg.filter, "fir", false, "run a moving-average FIR on constant input 1.0")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ringdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Pushes values through a ring buffer and prints its state after each push.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected arguments: %v\n", flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	var err error
	if cfg.filter {
		err = runFilter(os.Stdout, cfg)
	} else {
		err = runRing(os.Stdout, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runRing(w io.Writer, cfg config) error {
	b, err := ring.New(cfg.size, cfg.initValue)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Push\tPopped\tBuffer"
	if cfg.raw {
		header += "\tRaw"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if err := writeState(tw, "-", "-", b, cfg.raw); err != nil {
		return err
	}

	for i := 1; i <= cfg.pushes; i++ {
		popped := b.Push(float64(i))
		if err := writeState(tw, fmt.Sprint(i), fmt.Sprint(popped), b, cfg.raw); err != nil {
			return err
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func writeState(w io.Writer, push, popped string, b *ring.Buffer[float64], raw bool) error {
	row := fmt.Sprintf("%s\t%s\t%v", push, popped, b)
	if raw {
		row += fmt.Sprintf("\t%v", b.Raw())
	}
	if _, err := fmt.Fprintln(w, row); err != nil {
		return fmt.Errorf("failed to write output row: %w", err)
	}
	return nil
}

func runFilter(w io.Writer, cfg config) error {
	f, err := fir.MovingAverage(cfg.size)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Sample\tInput\tOutput"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	const input = 1.0
	for i := range cfg.pushes {
		y := f.Filter(input)
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.2f\n", i, input, y); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
