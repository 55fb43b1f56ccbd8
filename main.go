package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/toroidal-gol/model"
	"github.com/sheikhrachel/toroidal-gol/utils"
	"github.com/sheikhrachel/toroidal-gol/view"
)

const defaultConfigFile = "config.json"

// cliOptions holds command line overrides; negative or empty values leave the
// configuration untouched
type cliOptions struct {
	configPath     string
	width          int
	height         int
	ticks          int
	maxGenerations int
	density        float64
	seed           string
	pattern        string
	patternFile    string
	noColor        bool
	noRestart      bool

	count   int
	workers int
}

func newCLIOptions() *cliOptions {
	return &cliOptions{
		configPath:     defaultConfigFile,
		width:          -1,
		height:         -1,
		ticks:          -1,
		maxGenerations: -1,
		density:        -1,
		count:          16,
		workers:        runtime.NumCPU(),
	}
}

func main() {
	o := newCLIOptions()

	flaggy.SetName("toroidal-gol")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configPath, "c", "config", "Path to a JSON configuration file")

	runCmd := flaggy.NewSubcommand("run")
	runCmd.Description = "Render the simulation to the terminal (default)"
	bindCommon(runCmd, o)
	runCmd.Bool(&o.noRestart, "", "no-restart", "Stop instead of reseeding on extinction or stagnation")

	interactiveCmd := flaggy.NewSubcommand("interactive")
	interactiveCmd.Description = "Edit and run the universe in an interactive terminal UI"
	bindCommon(interactiveCmd, o)

	surveyCmd := flaggy.NewSubcommand("survey")
	surveyCmd.Description = "Run many random seeds concurrently and report how each one ends"
	bindCommon(surveyCmd, o)
	surveyCmd.Int(&o.count, "n", "count", "Number of seeds to simulate")
	surveyCmd.Int(&o.workers, "w", "workers", "Number of universes simulated in parallel")

	flaggy.AttachSubcommand(runCmd, 1)
	flaggy.AttachSubcommand(interactiveCmd, 1)
	flaggy.AttachSubcommand(surveyCmd, 1)
	flaggy.Parse()

	config, err := loadConfig(o)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case interactiveCmd.Used:
		err = runInteractive(ctx, config)
	case surveyCmd.Used:
		err = runSurvey(ctx, os.Stdout, config, o.count, o.workers)
	default:
		err = runGame(ctx, os.Stdout, config)
	}
	if err != nil {
		stop()
		log.Fatalf("%+v", err)
	}
}

func bindCommon(sc *flaggy.Subcommand, o *cliOptions) {
	sc.Int(&o.width, "x", "width", "Width of the universe")
	sc.Int(&o.height, "y", "height", "Height of the universe")
	sc.Int(&o.ticks, "t", "ticks", "Generations advanced per frame")
	sc.Int(&o.maxGenerations, "s", "max-generations", "Stop after this many generations, 0 for no limit")
	sc.Float64(&o.density, "d", "density", "Probability that a randomized cell starts alive")
	sc.String(&o.seed, "", "seed", "Seed of the random source")
	sc.String(&o.pattern, "p", "pattern",
		"Initial pattern ["+strings.Join(append([]string{utils.PatternRandom, utils.PatternExample, utils.PatternEmpty},
			model.PatternNames()...), "|")+"]")
	sc.String(&o.patternFile, "f", "pattern-file", "Plaintext (.cells) pattern to stamp into an empty universe")
	sc.Bool(&o.noColor, "", "no-color", "Disable colored output")
}

// loadConfig reads the configuration file, falling back to defaults when the
// default file is absent, and applies command line overrides
func loadConfig(o *cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(o.configPath)
	if err != nil {
		if !(o.configPath == defaultConfigFile && os.IsNotExist(errors.Cause(err))) {
			return config, err
		}
		config = utils.DefaultConfig()
	}
	if err = o.apply(&config); err != nil {
		return config, err
	}
	return config, nil
}

func (o *cliOptions) apply(config *utils.Config) error {
	if o.width >= 0 {
		config.Width = o.width
	}
	if o.height >= 0 {
		config.Height = o.height
	}
	if o.ticks >= 0 {
		config.TicksPerFrame = o.ticks
	}
	if o.maxGenerations >= 0 {
		config.MaxGenerations = o.maxGenerations
	}
	if o.density >= 0 {
		config.RandomDensity = o.density
	}
	if o.seed != "" {
		seed, err := strconv.ParseInt(o.seed, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "[apply] invalid seed: %+v", o.seed)
		}
		config.Seed = seed
	}
	if o.pattern != "" {
		config.Pattern = o.pattern
		config.PatternFile = ""
	}
	if o.patternFile != "" {
		config.PatternFile = o.patternFile
	}
	if o.noColor {
		config.Colors = false
	}
	if o.noRestart {
		config.AutoRestart = false
	}
	if o.count <= 0 || o.workers <= 0 {
		return errors.Errorf("[apply] count and workers must be positive, got %d and %d", o.count, o.workers)
	}
	return config.Validate()
}

func runInteractive(ctx context.Context, config utils.Config) error {
	source := utils.NewRNG(config.Seed).WithDensity(config.RandomDensity)
	universe, err := seedUniverse(config, source)
	if err != nil {
		return err
	}

	timer := utils.NewTimer()
	ui := view.NewConsoleUI(universe, source, timer, config)
	if err = ui.Run(ctx); err != nil {
		return errors.Wrap(err, "[runInteractive] terminal UI failed")
	}

	fmt.Printf("Stopped after %d generations\n", ui.Generation())
	return timer.Report(os.Stdout)
}
