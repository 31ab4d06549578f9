package storage

import (
	"context"
	"errors"

	"github.com/MohcineSafi/Battle-Arena/internal/game"
)

// ErrCharacterNotFound is returned when a requested catalog id is missing.
var ErrCharacterNotFound = errors.New("character not found")

type Repository interface {
	// GetCharacters returns the full catalog in listing order, every
	// character at full health and energy.
	GetCharacters(ctx context.Context) ([]game.Character, error)
	// GetCharactersByIDs returns the characters in the order of ids.
	// Missing ids yield ErrCharacterNotFound.
	GetCharactersByIDs(ctx context.Context, ids []string) ([]game.Character, error)
}
