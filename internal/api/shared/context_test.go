package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, 32)
	assert.Empty(t, GetTraceID(ctx), "original context must be unchanged")
}

func TestWithTraceID(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))

	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, GetTraceID(nil))
}

func TestNewTraceIDIsUniqueHex(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]struct{}, iterations)

	for i := 0; i < iterations; i++ {
		id := NewTraceID()
		require.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, iterations)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("simulated rand failure")
}

func TestGenerateTraceIDFallback(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		id := generateTraceID(failingReader{})
		assert.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		assert.NoError(t, err)
	})

	t.Run("short read", func(t *testing.T) {
		id := generateTraceID(io.LimitReader(rand.Reader, TraceIDLength/2))
		assert.Len(t, id, 32)
	})
}

func TestFallbackTraceIDUniqueness(t *testing.T) {
	const iterations = 100
	seen := make(map[string]struct{}, iterations)

	for i := 0; i < iterations; i++ {
		seen[generateFallbackTraceID()] = struct{}{}
	}

	assert.Len(t, seen, iterations)
}
