package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"example.com/rarityduel/internal/card"
	"example.com/rarityduel/internal/config"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Info, Warn, Header, Prompt *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
}

// RarityColors maps each rarity to a color for display.
var RarityColors = map[card.Rarity]*color.Color{
	card.Common:     color.New(color.FgWhite),
	card.Uncommon:   color.New(color.FgGreen),
	card.Rare:       color.New(color.FgBlue),
	card.RareHolo:   color.New(color.FgMagenta),
	card.RareUltra:  color.New(color.FgYellow),
	card.RareSecret: color.New(color.FgHiYellow, color.Bold),
}

// ColorizeRarity returns the rarity name as a colored string.
func ColorizeRarity(r card.Rarity) string {
	if c, ok := RarityColors[r]; ok {
		return c.Sprint(r.String())
	}
	return r.String()
}

// RenderDeckSummary displays how many cards of each rarity the deck holds.
func RenderDeckSummary(cfg *config.GameConfig) {
	counts := cfg.RarityCounts()
	rarities := make([]card.Rarity, 0, len(counts))
	for r := range counts {
		rarities = append(rarities, r)
	}
	sort.Slice(rarities, func(i, j int) bool { return rarities[i] < rarities[j] })

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Deck Summary")
	t.AppendHeader(table.Row{"Rarity", "Cards"})
	for _, r := range rarities {
		t.AppendRow(table.Row{ColorizeRarity(r), counts[r]})
	}
	t.AppendFooter(table.Row{"Total", len(cfg.Cards)})
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}

// --- Prompting and Usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Rarity Duel ---")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/rarityduel play [ai]")
	fmt.Println("    Guess the rarer card, optionally against AI opponents.")
	fmt.Println("  go run ./cmd/rarityduel simulate <ai> [rounds]")
	fmt.Println("    To run a fast simulation between AI players.")
	fmt.Println("  go run ./cmd/rarityduel deck")
	fmt.Println("    Show the rarity mix of the configured deck.")
	fmt.Println("\nFlags:")
	fmt.Println("  -config deck.toml  Load the deck from another JSON or TOML file.")
	fmt.Println("  -seed 42           Replay the same sequence of rounds.")
	fmt.Println("  -loglevel debug    Trace card rejections and AI reasoning.")
}

func (c *CLI) promptForString(prompt string) string {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			C.Info.Println("\nGoodbye!")
			os.Exit(0)
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed
		}
	}
}

// promptForSelection returns the index of the chosen option.
func (c *CLI) promptForSelection(prompt string, options []string) int {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, opt)
		}
		input := c.promptForString("Enter number or name: ")
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return num - 1
		}
		for i, opt := range options {
			if strings.EqualFold(opt, input) {
				return i
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}
