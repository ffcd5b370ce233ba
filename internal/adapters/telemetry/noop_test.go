package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cssmerge/internal/adapters/telemetry"
	"go.trai.ch/cssmerge/internal/core/domain"
	"go.trai.ch/cssmerge/internal/core/ports"
)

func TestNoOp_RecordStoresVertexInContext(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(context.Background(), "bundle")
	require.NotNil(t, v)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, v, fromCtx)

	assert.NotPanics(t, func() {
		v.Log(domain.LogLevelInfo, "hello")
		v.Cached()
		v.Complete(errors.New("boom"))
	})
	assert.NoError(t, tel.Close())
}
