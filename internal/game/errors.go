package game

import (
	"errors"

	"github.com/samdwyer/warband/internal/entity"
	"github.com/samdwyer/warband/internal/world"
)

// Rejections. A rejected action leaves the saved game untouched.
var (
	ErrNoActiveGame     = errors.New("no active game")
	ErrGameOver         = errors.New("game is over")
	ErrWrongPhase       = errors.New("action not allowed in this phase")
	ErrMissingEnemy     = errors.New("combat without enemy data")
	ErrUnknownUnit      = entity.ErrUnknownUnit
	ErrInsufficientLoot = entity.ErrInsufficientLoot
	ErrInvalidDirection = world.ErrInvalidDirection
)

var rejections = []error{
	ErrNoActiveGame,
	ErrGameOver,
	ErrWrongPhase,
	ErrMissingEnemy,
	ErrUnknownUnit,
	ErrInsufficientLoot,
	ErrInvalidDirection,
}

// IsRejection reports whether err is a game rule rejection rather than a
// store or I/O failure.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
