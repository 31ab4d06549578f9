package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamKey(t *testing.T) {
	assert.Equal(t, "a,b,c", TeamKey([]string{"c", " a", "b "}))
	assert.Equal(t, TeamKey([]string{"fire-dragon", "ice-phoenix"}), TeamKey([]string{"ice-phoenix", "fire-dragon"}))
	assert.Equal(t, "x", TeamKey([]string{"", "x", "  "}))
	assert.Equal(t, "", TeamKey(nil))
}
