package game

import (
	"errors"
	"fmt"
	"math/rand"

	"example.com/rarityduel/internal/ai"
	"example.com/rarityduel/internal/config"
	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/player"
	"example.com/rarityduel/internal/round"

	"github.com/sirupsen/logrus"
)

// TrainerNames are handed out to players that were not given a name.
var TrainerNames = []string{"Red", "Blue", "Green", "Yellow", "Gold", "Silver", "Crystal", "Ruby"}

type namedPlayer struct {
	name string
	p    player.Player
}

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	source       round.IndexSource
	prompt       player.PromptFunc
	named        []namedPlayer
	numHumans    int
	numAI        int
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithHumanPlayers adds n human players who answer through prompt.
func (b *GameBuilder) WithHumanPlayers(n int, prompt player.PromptFunc) *GameBuilder {
	b.numHumans = n
	b.prompt = prompt
	return b
}

func (b *GameBuilder) WithAIPlayers(n int) *GameBuilder {
	b.numAI = n
	return b
}

// WithPlayer adds an already constructed player under the given name.
func (b *GameBuilder) WithPlayer(name string, p player.Player) *GameBuilder {
	b.named = append(b.named, namedPlayer{name: name, p: p})
	return b
}

// WithIndexSource replaces the random index source used to draw rounds.
func (b *GameBuilder) WithIndexSource(source round.IndexSource) *GameBuilder {
	b.source = source
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	generated := b.numHumans + b.numAI
	if generated+len(b.named) < 1 {
		return nil, errors.New("a game needs at least one player")
	}
	if generated > len(TrainerNames) {
		return nil, fmt.Errorf("at most %d generated players are supported", len(TrainerNames))
	}
	if len(b.cfg.Cards) < 2 {
		return nil, errors.New("the deck needs at least two cards")
	}

	// 1. Create and shuffle player names
	playerNames := make([]string, len(TrainerNames))
	copy(playerNames, TrainerNames)
	b.rand.Shuffle(len(playerNames), func(i, j int) { playerNames[i], playerNames[j] = playerNames[j], playerNames[i] })
	playerNames = playerNames[:generated]

	source := b.source
	if source == nil {
		source = round.NewRandomSource(rand.New(rand.NewSource(b.rand.Int63())))
	}

	// 2. Create the Game object; it owns its own copy of the deck
	cfg := b.cfg.DeepCopy()
	game := &Game{
		Config:       cfg,
		Deck:         cfg.Cards.Clone(),
		Scores:       make(map[string]int),
		EventManager: b.eventManager,
		builder:      round.NewBuilder(b.log, source).WithMaxDraws(cfg.MaxDraws),
		log:          b.log,
	}

	// 3. Create players, inject dependencies, and subscribe them to events
	for _, np := range b.named {
		game.addPlayer(np.p, np.name)
	}
	for i, name := range playerNames {
		var p player.Player
		if i < b.numHumans {
			p = player.NewHumanPlayer(b.prompt)
		} else {
			// Inject logger and a new random source for each AI
			aiRand := rand.New(rand.NewSource(b.rand.Int63()))
			p = ai.NewRarityBrain(b.log, ai.NewRandomChooser(aiRand))
		}
		game.addPlayer(p, name)
	}

	b.eventManager.Publish(events.GameReadyEvent{Players: game.Players, DeckSize: len(game.Deck)})

	return game, nil
}
