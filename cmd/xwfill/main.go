package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' marks a fillable cell)")
	wordsFile := flag.String("words", "", "The file to load candidate words from")
	out := flag.String("out", "", "Optional path to save the solved grid as a PNG image")
	quiet := flag.Bool("quiet", false, "Only print the solved grid")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}

	if *structureFile == "" || *wordsFile == "" {
		fmt.Fprintln(os.Stderr, "usage: xwfill -structure <file> -words <file> [-out grid.png]")
		os.Exit(2)
	}

	structure, err := internal.LoadStructure(*structureFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure")
	}
	words, err := internal.LoadWords(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading words")
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memory profile file")
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	crossword := xwfill.NewCrossword(structure)
	log.Info().
		Int("height", crossword.Height).
		Int("width", crossword.Width).
		Int("variables", len(crossword.Variables())).
		Int("words", len(words)).
		Msg("loaded puzzle")

	solver := xwfill.CreateSolver(crossword, words)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	assignment := solver.Solve(ctx)

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	if assignment == nil {
		if ctx.Err() != nil {
			log.Error().Dur("elapsed", time.Since(start)).Msg("gave up: timeout reached")
		}
		fmt.Println("No solution found.")
		os.Exit(1)
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("solved")

	grid := crossword.LetterGrid(assignment)
	fmt.Println(grid.Repr())

	if *out != "" {
		if err := grid.SavePNG(*out); err != nil {
			log.Fatal().Err(err).Msg("saving image")
		}
		log.Info().Str("path", *out).Msg("saved image")
	}
}
