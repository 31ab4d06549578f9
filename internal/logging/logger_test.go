package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Error("enemy turn failed", errors.New("boom"), Fields{"match_id": "m-1"})

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "enemy turn failed", got["msg"])
	assert.Equal(t, "boom", got["error"])
	assert.Equal(t, "m-1", got["match_id"])
	assert.NotEmpty(t, got["ts"])
}

func TestDebug_HiddenAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel("info")
	Debug("noise", nil)
	assert.Zero(t, buf.Len())
}
