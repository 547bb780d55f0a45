package service

import "errors"

// Engine-level errors. The controller maps these onto HTTP statuses; on any
// of them the game state is left exactly as it was before the call, except
// for the activity timestamp.
var (
	ErrGameNotFound    = errors.New("game not found")
	ErrGameExists      = errors.New("game already exists")
	ErrGameFull        = errors.New("game is full")
	ErrInvalidConfig   = errors.New("player count must be greater than 1 and dealt cards count greater than 0")
	ErrGameNotStarted  = errors.New("game has not started yet")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotPlayersTurn  = errors.New("not this player's turn")
	ErrCardNotInHand   = errors.New("card is not in the player's hand")
	ErrCardNotPlayable = errors.New("card not playable")
)
