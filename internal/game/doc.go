// Package game runs provably fair rounds of an N-move rock-paper-scissors
// game.
//
// A Session owns the outcome table and the commitment engine for one set of
// moves. Each Round walks through three states:
//
//	s, _ := game.NewSession(set)
//	r, _ := s.NewRound()
//	digest, _ := r.Commit()       // publish before asking the player
//	res, _ := r.Play("rock")      // resolve, then reveal the key
//	ok, _ := commit.Verify(digest, res.KeyHex, res.MoveIndex)
//
// Outcomes are always reported from the player's side: a Win means the
// player's move beat the computer's.
//
// # Deterministic Testing
//
// The secure random source and the clock can both be replaced:
//
//	s, _ := game.NewSession(set,
//	    game.WithEngineOptions(commit.WithEntropy(bytes.NewReader(seed))),
//	    game.WithClock(quartz.NewMock(t)),
//	)
package game
