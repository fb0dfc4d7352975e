package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const maxGameID = 99999999

// gameIDRange is exclusive, so maxGameID itself can be drawn.
var gameIDRange = big.NewInt(maxGameID + 1)

// GenerateGameID - generates a unique identifier for a game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, gameIDRange)
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return formatGameID(n.Int64()), nil
}

func formatGameID(n int64) string {
	return fmt.Sprintf("%08d", n)
}
