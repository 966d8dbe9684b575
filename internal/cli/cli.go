package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/game"
	"example.com/rarityduel/internal/round"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rand *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "deck":
		RenderDeckSummary(cfg)
		return nil
	case "play":
		numAI, err := optionalInt(args, 1, 0)
		if err != nil {
			c.printUsage()
			return err
		}
		return c.runPlayMode(cfg, numAI, rand)
	case "simulate":
		if len(args) < 2 || len(args) > 3 {
			c.printUsage()
			return errors.New("invalid arguments for 'simulate' command")
		}
		numAI, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number of AI players %q: %w", args[1], err)
		}
		rounds, err := optionalInt(args, 2, cfg.Rounds)
		if err != nil {
			return err
		}
		cfg.Rounds = rounds
		return c.runSimulationMode(cfg, numAI, rand)
	default:
		c.printUsage()
		return fmt.Errorf("unknown command '%s'", args[0])
	}
}

func optionalInt(args []string, idx, fallback int) (int, error) {
	if len(args) <= idx {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", args[idx])
	}
	return n, nil
}

func (c *CLI) runSimulationMode(cfg *config.GameConfig, numAI int, rand *rand.Rand) error {
	C.Header.Println("--- Running Fast Simulation ---")

	// Create a builder and subscribe our renderer to it.
	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&GameRenderer{})

	g, err := builder.WithAIPlayers(numAI).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	g.Run()
	return nil
}

func (c *CLI) runPlayMode(cfg *config.GameConfig, numAI int, rand *rand.Rand) error {
	C.Info.Println("\n--- Which Card Is Rarer? ---")
	C.Info.Printf("%d rounds from a deck of %d cards. Type 1 or 2 to pick the rarer card.\n", cfg.Rounds, len(cfg.Cards))

	builder := game.NewBuilder(cfg, c.log, rand)
	builder.EventManager().Subscribe(&GameRenderer{Interactive: true})

	g, err := builder.WithHumanPlayers(1, c.promptForChoice).WithAIPlayers(numAI).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}
	g.Run()
	return nil
}

// promptForChoice asks for the rarer card of a round; it returns 0 or 1.
func (c *CLI) promptForChoice(r round.Round) int {
	options := make([]string, len(r.Cards))
	for i, card := range r.Cards {
		options[i] = card.Image
	}
	return c.promptForSelection("Which card is rarer?", options)
}
