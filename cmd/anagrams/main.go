package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"crosswarped.com/anagrams"
	"crosswarped.com/anagrams/internal"
)

type options struct {
	cipher      string
	wordlist    string
	minLength   int
	limit       int
	timeout     time.Duration
	batch       int
	interactive bool
	debug       bool
	profileFile string
	memoryFile  string
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "anagrams [flags] <input>...",
	Short: "Find multi-word anagrams or Caesar shifts of a phrase",
	Long: `Find every combination of dictionary words that uses exactly the letters
of the input, longest words first, or every ROT shift of the input that is a
dictionary word.

All arguments are joined with spaces to form the input.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(opts.debug)
	},
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.cipher, "cipher", "c", "anagrams", "cipher type: anagrams or rot13")
	flags.StringVar(&opts.wordlist, "wordlist", "", "path to a word list, one word per line (default: built-in list)")
	flags.IntVar(&opts.minLength, "min", 1, "ignore words shorter than this many characters")
	flags.IntVar(&opts.limit, "limit", 0, "stop after this many solutions (0 for all)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "stop searching after this long (0 for no limit)")
	flags.IntVar(&opts.batch, "batch", 0, "report progress after every this many solutions (0 to disable)")
	flags.BoolVar(&opts.interactive, "interactive", false, "ask before continuing after each batch")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.StringVar(&opts.profileFile, "profile-file", "", "write a CPU profile to this file")
	flags.StringVar(&opts.memoryFile, "memory-profile-file", "", "write a heap profile to this file")
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func run(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	words, err := loadWords(ctx)
	if err != nil {
		return err
	}

	if opts.profileFile != "" {
		f, err := os.Create(opts.profileFile)
		if err != nil {
			return fmt.Errorf("creating profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}
	if opts.memoryFile != "" {
		defer writeHeapProfile(opts.memoryFile)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	switch strings.ToLower(opts.cipher) {
	case "anagrams":
		solver := anagrams.CreateSolver(words, anagrams.SolverParams{MinWordLength: opts.minLength})
		err = printAnagrams(ctx, out, solver, input)
	case "rot13", "rot":
		err = printRot(out, anagrams.CreateRotSolver(words), input)
	default:
		return fmt.Errorf("unknown cipher type %q", opts.cipher)
	}

	if errors.Is(err, syscall.EPIPE) {
		// Whoever was reading has gone away.
		return nil
	}
	return err
}

func loadWords(ctx context.Context) ([]string, error) {
	if opts.wordlist == "" {
		return anagrams.DefaultWords(), nil
	}
	log.Debug().Str("path", opts.wordlist).Msg("loading word list")
	words, err := internal.LoadWords(ctx, opts.wordlist)
	if err != nil {
		return nil, err
	}
	log.Info().Int("words", len(words)).Str("path", opts.wordlist).Msg("loaded word list")
	return words, nil
}

func printAnagrams(ctx context.Context, out *bufio.Writer, solver *anagrams.Solver, input string) error {
	search := solver.Search(input)

	start := time.Now()
	batchStart := start
	count := 0
	for {
		solution, ok := search.Next(ctx)
		if !ok {
			break
		}
		count++
		if _, err := fmt.Fprintln(out, solution.Repr()); err != nil {
			return err
		}

		if opts.limit > 0 && count >= opts.limit {
			break
		}
		if opts.batch > 0 && count%opts.batch == 0 {
			if err := out.Flush(); err != nil {
				return err
			}
			log.Info().
				Int("solutions", count).
				Dur("batch", time.Since(batchStart)).
				Dur("total", time.Since(start)).
				Msg("batch done")
			batchStart = time.Now()
			if opts.interactive && !askContinue() {
				break
			}
		}
	}

	if err := out.Flush(); err != nil {
		return err
	}

	ev := log.Info()
	if search.Err() != nil {
		ev = log.Warn().Err(search.Err())
	}
	ev.Int("solutions", count).
		Uint64("steps", search.Steps()).
		Bool("exhausted", search.Done()).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")
	return nil
}

func printRot(out io.Writer, solver *anagrams.RotSolver, input string) error {
	for _, match := range solver.Solve(input) {
		if _, err := fmt.Fprintln(out, match); err != nil {
			return err
		}
	}
	return nil
}

// askContinue waits for the user to continue (any key) or stop (n).
func askContinue() bool {
	fmt.Fprint(os.Stderr, "Continue? [Y/n]: ")
	var input string
	fmt.Scanln(&input)
	return input != "n" && input != "N"
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Msg("creating memory profile file")
		return
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Error().Err(err).Msg("writing memory profile")
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("anagrams failed")
		os.Exit(1)
	}
}
