package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/utils"
)

const tickScope = "Universe::tick"

// game is the state of the terminal run loop
type game struct {
	config   utils.Config
	out      io.Writer
	source   model.Source
	universe *model.Universe
	renderer *model.TerminalRenderer
	history  *model.History
	stats    *utils.Stats
	timer    *utils.Timer

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// runGame renders the simulation until it finishes or ctx is cancelled
func runGame(ctx context.Context, out io.Writer, config utils.Config) error {
	g, err := initializeGame(config, out)
	if err != nil {
		return err
	}
	return g.run(ctx)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	source := utils.NewRNG(config.Seed).WithDensity(config.RandomDensity)
	universe, err := seedUniverse(config, source)
	if err != nil {
		return nil, err
	}

	return &game{
		config:   config,
		out:      out,
		source:   source,
		universe: universe,
		renderer: model.NewTerminalRenderer(out, config.Colors),
		history:  model.NewHistory(config.HistoryDepth),
		stats:    utils.NewStats(),
		timer:    utils.NewTimer(),
	}, nil
}

// seedUniverse builds the initial universe described by the configuration
func seedUniverse(config utils.Config, source model.Source) (*model.Universe, error) {
	if config.PatternFile != "" {
		p, err := model.LoadPatternFile(config.PatternFile)
		if err != nil {
			return nil, errors.Wrap(err, "[seedUniverse] failed to load pattern file")
		}
		return stampCentered(config, p), nil
	}

	switch config.Pattern {
	case utils.PatternRandom:
		return model.Random(config.Width, config.Height, source), nil
	case utils.PatternExample:
		return model.Example(), nil
	case utils.PatternEmpty:
		return model.New(config.Width, config.Height), nil
	}

	p, ok := model.LookupPattern(config.Pattern)
	if !ok {
		return nil, errors.Errorf("[seedUniverse] unknown pattern: %+v", config.Pattern)
	}
	return stampCentered(config, p), nil
}

func stampCentered(config utils.Config, p model.Pattern) *model.Universe {
	u := model.New(config.Width, config.Height)
	h, w := p.Size()
	p.Stamp(u, (config.Height-h)/2, (config.Width-w)/2)
	return u
}

func (g *game) run(ctx context.Context) error {
	if err := g.displayGameInfo(); err != nil {
		return err
	}

	lastFrameTime := time.Now()
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(g.out, "\nShutting down gracefully...")
			return g.displayFinalStats()
		}

		frameStart := time.Now()
		if err := g.renderer.Clear(); err != nil {
			return errors.Wrap(err, "[run] failed to clear terminal")
		}

		livingCells, density, status, isStagnant := g.updateGameState(lastFrameTime)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			g.stagnantCount++
		} else {
			g.stagnantCount = 0
		}

		g.displayGameStatus(livingCells, density, status)
		if err := g.renderer.Display(g.universe); err != nil {
			return errors.Wrap(err, "[run] failed to render universe")
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			fmt.Fprintf(g.out, "\nReached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return g.displayFinalStats()
		}

		if shouldRestart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.config); shouldRestart {
			if !g.config.AutoRestart {
				fmt.Fprintf(g.out, "\nStopped due to %s\n", reason)
				return g.displayFinalStats()
			}
			fmt.Fprintf(g.out, "Restarting due to %s...\n", reason)
			g.restartGame()
		}

		g.advance()

		select {
		case <-ctx.Done():
		case <-time.After(g.config.FrameRate):
		}
	}
}

// advance runs one frame worth of generations, timing every tick
func (g *game) advance() {
	for range g.config.TicksPerFrame {
		stop := g.timer.Time(tickScope)
		g.universe.Tick()
		stop()
		g.generation++
	}
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() error {
	_, err := fmt.Fprintf(g.out, "Universe: %dx%d | Initial living cells: %d | Ticks per frame: %d\n",
		g.universe.Width(), g.universe.Height(), g.universe.Population(), g.config.TicksPerFrame)
	return err
}

// updateGameState updates the stats and stagnation history
func (g *game) updateGameState(lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.universe.Population()
	density := 0.0
	if size := g.universe.Width() * g.universe.Height(); size > 0 {
		density = float64(livingCells) / float64(size) * 100
	}

	g.stats.Update(g.generation, livingCells, g.config.TicksPerFrame, time.Since(lastFrameTime))
	isStagnant := g.history.Observe(g.universe)

	au := g.renderer.Aurora()
	status := au.Green("Active").String()
	if isStagnant {
		status = au.Yellow(fmt.Sprintf("Stagnant (%d)", g.stagnantCount+1)).String()
	}
	if livingCells == 0 {
		status = au.Red("Extinct").String()
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	lo, hi, mean := g.stats.Window()
	fmt.Fprintf(g.out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.generation, livingCells, density, status)
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec (last 100: min %.1f, max %.1f, mean %.1f) | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, lo, hi, mean, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	// Show time since last restart
	if g.generation > g.lastRestartGen {
		fmt.Fprintf(g.out, "Generations since restart: %d\n", g.generation-g.lastRestartGen)
	}
	fmt.Fprintln(g.out)
}

func (g *game) displayFinalStats() error {
	fmt.Fprintf(g.out, "Final stats: %d generations in %.1f seconds, %.1f avg population\n",
		g.generation, g.stats.Runtime().Seconds(), g.stats.AveragePopulation)
	return g.timer.Report(g.out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// restartGame reseeds the universe in place
func (g *game) restartGame() {
	g.universe.Randomize(g.source)
	g.history.Reset()
	g.stagnantCount = 0
	g.lastRestartGen = g.generation
	fmt.Fprintf(g.out, "New universe seeded! Living cells: %d\n", g.universe.Population())
}
