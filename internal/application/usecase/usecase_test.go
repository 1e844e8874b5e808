package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rodut/internal/application/guard"
	"rodut/internal/domain/ingest"
)

const (
	allowedIP = "162.43.19.187"
	foreignIP = "203.0.113.9"
	apiKey    = "test-api-key"
)

func newTestGuard(t *testing.T) *guard.Guard {
	t.Helper()

	c, err := guard.NewCredential(guard.HexDigest(apiKey, ""), "")
	require.NoError(t, err)

	g, err := guard.New([]string{allowedIP}, c)
	require.NoError(t, err)

	return g
}

func kindOf(t *testing.T, err error) ingest.Kind {
	t.Helper()
	require.Error(t, err)

	return ingest.As(err).Kind
}
