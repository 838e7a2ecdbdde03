// Package display renders menus, the rules table and round results.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/rockpaper/internal/game"
	"github.com/lox/rockpaper/internal/moves"
)

// Title renders the banner shown at start-up.
func Title() string {
	return TitleStyle.Render(" ✊ ✋ ✌ Provably fair rock-paper-scissors ")
}

// Digest renders the commitment line published before the player moves.
func Digest(digest string) string {
	return "HMAC: " + DigestStyle.Render(digest)
}

// Menu lists the moves by number followed by the exit and help commands.
func Menu(set moves.MoveSet) string {
	var b strings.Builder
	b.WriteString("Available moves:\n")
	for i, name := range set.Names() {
		b.WriteString(MenuStyle.Render(fmt.Sprintf("%d - %s", i+1, name)))
		b.WriteString("\n")
	}
	b.WriteString(CommandStyle.Render("0 - exit"))
	b.WriteString("\n")
	b.WriteString(CommandStyle.Render("? - help"))
	return b.String()
}

// OutcomeStyle returns the style used for o.
func OutcomeStyle(o moves.Outcome) lipgloss.Style {
	switch o {
	case moves.Win:
		return WinStyle
	case moves.Lose:
		return LoseStyle
	default:
		return DrawStyle
	}
}

// HelpTable renders the full outcome grid. Rows are the player's move,
// columns the computer's, and each cell is the player's result.
func HelpTable(t *moves.OutcomeTable) string {
	names := t.Moves().Names()
	grid := t.Grid()

	rows := make([][]string, len(names))
	for r, name := range names {
		row := make([]string, 0, len(names)+1)
		row = append(row, name)
		for _, o := range grid[r] {
			row = append(row, o.String())
		}
		rows[r] = row
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(InfoStyle).
		Headers(append([]string{"you \\ pc"}, names...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return HeaderStyle
			}
			return OutcomeStyle(grid[row][col-1]).Padding(0, 1)
		})

	return "Help table (your result, row = your move, column = computer move):\n" + tbl.String()
}

// Result renders a finished round with the key needed to verify it.
func Result(res game.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your move: %s\n", res.PlayerMove)
	fmt.Fprintf(&b, "Computer move: %s\n", res.ComputerMove)
	b.WriteString(OutcomeStyle(res.Outcome).Render(verdict(res.Outcome)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Secret key: %s\n", res.KeyHex)
	fmt.Fprintf(&b, "Move index: %d\n", res.MoveIndex)
	b.WriteString(InfoStyle.Render(fmt.Sprintf("Verify: HMAC-SHA256(key, %q) == %s", fmt.Sprint(res.MoveIndex), res.Digest)))
	return b.String()
}

func verdict(o moves.Outcome) string {
	switch o {
	case moves.Win:
		return "You WIN!"
	case moves.Lose:
		return "You LOSE!"
	default:
		return "DRAW!"
	}
}

// Summary renders the session tally.
func Summary(score game.Scoreboard) string {
	return InfoStyle.Render("Session: " + score.String())
}

// Error renders a user-facing error line.
func Error(err error) string {
	return ErrorStyle.Render(err.Error())
}
