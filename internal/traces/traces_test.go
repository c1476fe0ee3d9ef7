package traces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), "", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "analysis.analyze", TransactionID("tx-1"), Source("fallback"))
	defer span.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}
