package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdWrapper_WriteTo(t *testing.T) {
	var buf bytes.Buffer
	n, err := ThresholdWrapper{N: 4, K: 3}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, []byte{0, 0, 0, 4, 0, 0, 0, 3}, buf.Bytes())
}
