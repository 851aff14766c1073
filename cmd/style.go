package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/terminal-games/blackjack/domain/cards"
	"github.com/terminal-games/blackjack/domain/game"
	"github.com/terminal-games/blackjack/profile"
)

var (
	chipStyle = pterm.NewRGB(255, 165, 0) // amber, matches casino chip text
	cardFace  = pterm.NewStyle(pterm.BgWhite, pterm.FgBlack)
	cardRed   = pterm.NewStyle(pterm.BgWhite, pterm.FgRed)
	hintStyle = pterm.NewStyle(pterm.FgGray, pterm.Italic)
)

const cardArtLines = 5

// renderer redraws the table in place for every snapshot the session emits.
type renderer struct {
	area *pterm.AreaPrinter
}

func newRenderer() (*renderer, error) {
	area, err := pterm.DefaultArea.WithFullscreen().Start()
	if err != nil {
		return nil, err
	}
	return &renderer{area: area}, nil
}

func (r *renderer) Render(snap game.Snapshot) {
	r.area.Update(compose(snap))
}

func (r *renderer) Stop() {
	r.area.Stop()
}

// compose lays out one snapshot as the full screen contents.
func compose(snap game.Snapshot) string {
	var b strings.Builder
	// A bust round settles with the hole card still down; the result
	// screen shows only the chip count and the message.
	if snap.Phase == game.PhaseSettled && snap.PlayerTotal > 21 {
		b.WriteString(chipStyle.Sprintf(" Chips: %d", snap.Chips) + "\n\n")
		b.WriteString(pterm.Bold.Sprint(snap.Message) + "\n\n")
		b.WriteString(hintStyle.Sprint(snap.Prompt))
		return b.String()
	}
	switch snap.Phase {
	case game.PhaseBetting:
		b.WriteString(chipStyle.Sprintf(" Chips: %d", snap.Chips) + "\n\n")
		b.WriteString(pterm.Yellow("Place your bet:") + "\n\n")
		b.WriteString(pterm.Green(pterm.Sprintf("%d chips", snap.Bet)) + "\n\n")
	case game.PhaseConfirmed:
		b.WriteString(chipStyle.Sprintf(" Chips: %d", snap.Chips) + "\n\n")
		b.WriteString(pterm.Green("Bet confirmed: ") + pterm.Yellow(pterm.Sprintf("%d chips", snap.Bet)) + "\n\n")
	default:
		b.WriteString(chipStyle.Sprintf(" Chips: %d", snap.Chips) + "    " + pterm.Yellow(pterm.Sprintf("Bet: %d", snap.Bet)) + "\n\n")
		b.WriteString(pterm.Magenta("Dealer's cards:") + "\n")
		b.WriteString(handArt(snap.Dealer, snap.HideHole) + "\n")
		b.WriteString(pterm.Magenta(pterm.Sprintf("Dealer's total: %d", snap.DealerTotal)) + "\n\n")
		b.WriteString(pterm.Green("Your cards:") + "\n")
		b.WriteString(handArt(snap.Player, false) + "\n")
		b.WriteString(pterm.Green(pterm.Sprintf("Your total: %d", snap.PlayerTotal)) + "\n\n")
		if snap.Message != "" {
			b.WriteString(pterm.Bold.Sprint(snap.Message) + "\n\n")
		}
	}
	if snap.Prompt != "" {
		b.WriteString(hintStyle.Sprint(snap.Prompt))
	}
	return b.String()
}

// renderWelcome prints the opening screen with the lifetime statistics.
func renderWelcome(p profile.Profile) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	content := pterm.Yellow(pterm.Sprintfln("Welcome to the Blackjack Game!")) + "\n" +
		chipStyle.Sprintf(" Chips: %d", p.Chips) + "\n" +
		pterm.Blue(pterm.Sprintf("Games Played: %d", p.GamesPlayed)) + "\n" +
		pterm.Green(pterm.Sprintf("Wins: %d", p.GamesWon)) + "  " +
		pterm.Red(pterm.Sprintf("Losses: %d", p.GamesLost)) + "  " +
		pterm.Magenta(pterm.Sprintf("Ties: %d", p.GamesTied)) + "\n\n" +
		hintStyle.Sprint("Press any key to continue...")
	pterm.Println(box.Sprint(content))
}

// renderGoodbye prints the closing screen after the player quits.
func renderGoodbye(profilePath string) {
	pterm.Println()
	pterm.DefaultBasicText.Println(pterm.Bold.Sprint("Thank you for playing Blackjack!"))
	pterm.Println()
	pterm.Println(pterm.Gray("Player data loaded from:"))
	pterm.Println(hintStyle.Sprint(profilePath))
	pterm.Println(pterm.Gray("If you want to reset your player data, change the numbers in that file."))
}

// handArt draws a hand as side-by-side five-line card boxes; the first card
// renders as a card back when it is the dealer's hidden hole card.
func handArt(hand []cards.Card, hideFirst bool) string {
	columns := make([][]string, 0, len(hand))
	for i, c := range hand {
		if hideFirst && i == 0 {
			columns = append(columns, hiddenArt())
			continue
		}
		columns = append(columns, cardArt(c))
	}
	rows := make([]string, 0, cardArtLines)
	for line := 0; line < cardArtLines; line++ {
		parts := make([]string, len(columns))
		for i, col := range columns {
			parts[i] = col[line]
		}
		rows = append(rows, strings.Join(parts, " "))
	}
	return strings.Join(rows, "\n")
}

func cardArt(c cards.Card) []string {
	rank := c.RankLabel()
	left := rank + strings.Repeat(" ", 2-len(rank))
	right := strings.Repeat(" ", 2-len(rank)) + rank
	pip := cardFace
	if c.IsRed() {
		pip = cardRed
	}
	return []string{
		cardFace.Sprint("┌─────┐"),
		cardFace.Sprintf("│%s   │", left),
		pip.Sprintf("│  %s  │", c.SuitSymbol()),
		cardFace.Sprintf("│   %s│", right),
		cardFace.Sprint("└─────┘"),
	}
}

func hiddenArt() []string {
	back := strings.Repeat(cards.FaceDown, 5)
	return []string{
		cardFace.Sprint("┌─────┐"),
		cardFace.Sprintf("│%s│", back),
		cardFace.Sprintf("│%s│", back),
		cardFace.Sprintf("│%s│", back),
		cardFace.Sprint("└─────┘"),
	}
}
