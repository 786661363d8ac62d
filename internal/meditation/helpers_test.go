package meditation

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func loadTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := LoadCollection(context.Background(), NewFileRepo("testdata/entries.yaml"))
	require.NoError(t, err)
	return c
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rich, err := NewRichText(FormatHTML)
	require.NoError(t, err)
	r, err := NewRenderer(rich)
	require.NoError(t, err)
	return r
}

func newTestService(t *testing.T) MeditationService {
	t.Helper()
	return NewMeditationService(loadTestCollection(t), newTestRenderer(t), zap.NewNop())
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
