package cli

import (
	"io"
	"os"
	"sort"

	"example.com/rarityduel/internal/events"
	"example.com/rarityduel/internal/player"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// GameRenderer implements the events.Listener interface to print game state to the console.
type GameRenderer struct {
	// Interactive leaves listing the cards to the prompt.
	Interactive bool
	// Out defaults to stdout.
	Out io.Writer
}

func (r *GameRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// HandleEvent is the central dispatcher for rendering events.
func (r *GameRenderer) HandleEvent(e events.Event) {
	w := r.out()
	switch event := e.(type) {
	case events.GameReadyEvent:
		players, ok := event.Players.([]player.Player)
		if !ok {
			return
		}
		C.Header.Fprintf(w, "--- %d players, %d cards in the deck ---\n", len(players), event.DeckSize)
	case events.RoundStartEvent:
		C.Header.Fprintf(w, "\n--- Round %d ---\n", event.RoundNumber)
		if r.Interactive {
			return
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"#", "Card"})
		for i, c := range event.Cards {
			t.AppendRow(table.Row{i + 1, c.Image})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
	case events.GuessEvent:
		if event.Correct {
			C.Yes.Fprintf(w, "✔ %s picked %s\n", event.PlayerName, event.Choice.Image)
		} else {
			C.No.Fprintf(w, "✖ %s picked %s\n", event.PlayerName, event.Choice.Image)
		}
	case events.RoundResolvedEvent:
		for _, c := range event.Round.Cards {
			C.Info.Fprintf(w, "   %s is %s\n", c.Image, ColorizeRarity(c.Rarity))
		}
	case events.DeckExhaustedEvent:
		C.Warn.Fprintf(w, "\nNo valid pair left (%d cards remain).\n", event.Remaining)
	case events.GameOverEvent:
		r.renderScoreboard(event)
	}
}

func (r *GameRenderer) renderScoreboard(event events.GameOverEvent) {
	w := r.out()
	C.Header.Fprintf(w, "\n--- GAME OVER: %s ---\n", event.Reason)
	C.Info.Fprintf(w, "Scores after %d rounds:\n", event.RoundsPlayed)

	names := make([]string, 0, len(event.Scores))
	for name := range event.Scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if event.Scores[names[i]] != event.Scores[names[j]] {
			return event.Scores[names[i]] > event.Scores[names[j]]
		}
		return names[i] < names[j]
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Player", "Correct"})
	for _, name := range names {
		t.AppendRow(table.Row{name, event.Scores[name]})
	}
	t.SetStyle(table.StyleRounded)
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
}
