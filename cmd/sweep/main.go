// Command sweep plays minesweeper against itself: every game opens a
// random cell, runs the single-point solver to a fixpoint and guesses
// when stuck, until the board is won or lost. It reports aggregate
// statistics, which makes it a quick smoke test for the core and a
// crude benchmark for the solver.
package main

import (
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-core/internal/game"
	"github.com/vancomm/minesweeper-core/internal/mines"
	"github.com/vancomm/minesweeper-core/internal/solver"
)

var (
	log = logrus.New()

	preset    string
	rows      int
	cols      int
	mineCount int
	games     int
	workers   int
	seed      uint64
	verbose   bool
	logFile   string
)

func init() {
	flag.StringVar(&preset, "preset", "", "difficulty preset: beginner, intermediate or expert (overrides -rows/-cols/-mines)")
	flag.IntVar(&rows, "rows", 9, "board rows")
	flag.IntVar(&cols, "cols", 9, "board columns")
	flag.IntVar(&mineCount, "mines", 10, "mine count")
	flag.IntVar(&games, "games", 100, "number of games to play")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "concurrent games")
	flag.Uint64Var(&seed, "seed", 0, "rng seed, 0 picks a random one")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.StringVar(&logFile, "log-file", "", "also log to this rotating file")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to set up file logging: ", err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	game.Log = log
	solver.Log = log
}

type outcome struct {
	won   bool
	moves int
}

// pickHidden draws a uniformly random hidden, unflagged cell to guess.
func pickHidden(s *game.Session, rnd *rand.Rand) (mines.Position, bool) {
	var hidden []mines.Position
	for _, cell := range s.Cells() {
		if cell.Visibility() == mines.Hidden {
			hidden = append(hidden, cell.Position())
		}
	}
	if len(hidden) == 0 {
		return mines.Position{}, false
	}
	return hidden[rnd.IntN(len(hidden))], true
}

func playGame(params game.Params, rnd *rand.Rand) (outcome, error) {
	session, err := game.NewSessionWithRand(params, rnd)
	if err != nil {
		return outcome{}, err
	}
	for !session.Status().Terminal() {
		guess, ok := pickHidden(session, rnd)
		if !ok {
			break
		}
		if _, err := session.Reveal(guess); err != nil {
			return outcome{}, err
		}
		if session.Status().Terminal() {
			break
		}
		if _, err := solver.Solve(session); err != nil {
			return outcome{}, err
		}
	}
	log.WithFields(logrus.Fields{
		"status": session.Status().String(),
		"moves":  session.Moves(),
	}).Debug("game finished")
	return outcome{
		won:   session.Status() == game.StatusWon,
		moves: session.Moves(),
	}, nil
}

func main() {
	flag.Parse()
	setupLogging()

	params := game.Params{Rows: rows, Cols: cols, Mines: mineCount}
	if preset != "" {
		var err error
		params, err = game.ParsePreset(preset)
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	if games <= 0 {
		log.Fatalf("nothing to do: -games %d", games)
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	log.WithFields(logrus.Fields{
		"params":  params.String(),
		"games":   games,
		"workers": workers,
		"seed":    seed,
	}).Info("starting self-play")

	var (
		g        errgroup.Group
		outcomes = make(chan outcome, games)
	)
	g.SetLimit(workers)
	for i := range games {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(seed, uint64(i)))
			out, err := playGame(params, rnd)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			outcomes <- out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	close(outcomes)

	var wins, totalMoves int
	for out := range outcomes {
		if out.won {
			wins++
		}
		totalMoves += out.moves
	}

	log.WithFields(logrus.Fields{
		"games":     games,
		"wins":      wins,
		"losses":    games - wins,
		"win_rate":  fmt.Sprintf("%.1f%%", 100*float64(wins)/float64(games)),
		"avg_moves": fmt.Sprintf("%.1f", float64(totalMoves)/float64(games)),
	}).Info("self-play finished")
}
