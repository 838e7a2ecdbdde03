// Package moves builds the outcome table for a cyclic N-move game.
//
// Moves are placed on a circle in the order they were supplied. Each move
// beats the (N-1)/2 moves immediately before it and loses to the (N-1)/2
// moves immediately after it, so with three moves:
//
//	set, _ := moves.NewMoveSet([]string{"rock", "paper", "scissors"})
//	table, _ := moves.Build(set)
//	outcome, _ := table.Resolve("rock", "scissors") // moves.Win
//
// The same rule gives the usual rock-paper-scissors-lizard-Spock rules when
// the five moves are listed as rock, spock, paper, lizard, scissors.
package moves
