package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/linkdata/dnslookup"
	"github.com/linkdata/dnslookup/wire"
)

var (
	flagServer   string
	flagTrace    bool
	flagMaxCname int
	flagTimeout  time.Duration
	flagDirect   bool
)

var rootCmd = &cobra.Command{
	Use:   "dnslookup NAME [TYPE]",
	Short: "Iterative DNS lookup starting from the root servers",
	Long: `dnslookup answers a single DNS question by walking the delegation
hierarchy itself, starting from a root nameserver, instead of asking a
recursive resolver. CNAME chains are followed unless --direct is given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagServer, "server", "s", "root", `initial nameserver ("root", "random", hostname or IP)`)
	rootCmd.Flags().BoolVarP(&flagTrace, "trace", "v", false, "log every query and record as it is processed")
	rootCmd.Flags().IntVar(&flagMaxCname, "max-cname", dnslookup.DefaultIndirectionLimit, "CNAME indirection budget")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", dnslookup.DefaultTimeout, "receive timeout per transmission")
	rootCmd.Flags().BoolVar(&flagDirect, "direct", false, "do not follow CNAME chains")
}

func run(cmd *cobra.Command, args []string) error {
	qtype := wire.TypeA
	if len(args) > 1 {
		var ok bool
		if qtype, ok = wire.TypeFromString(strings.ToUpper(args[1])); !ok {
			return fmt.Errorf("unknown record type %q", args[1])
		}
	}
	question := wire.NewQuestion(args[0], qtype, wire.ClassIN)

	var tracer wire.Tracer
	if flagTrace {
		tracer = dnslookup.LogTracer{
			Log: zerolog.New(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.RFC3339,
			}).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
		}
	}

	r, err := dnslookup.New(flagServer, tracer, nil)
	if err != nil {
		return err
	}
	defer r.Close()
	r.Timeout = flagTimeout

	var results []wire.ResourceRecord
	if flagDirect {
		results = r.Direct(question)
	} else {
		if results, err = r.Recursive(question, flagMaxCname); err != nil {
			return err
		}
	}

	if len(results) == 0 {
		fmt.Fprintf(os.Stderr, "no records for %s\n", question)
		os.Exit(1)
	}
	for _, rr := range results {
		fmt.Printf("%-30s %6d  %-7s %-5s %s\n",
			rr.Question.Name, rr.TTL, rr.Question.Class, rr.Question.Type, rr.Text)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
