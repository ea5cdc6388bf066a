package runtimeconn

import (
	"context"
	"testing"

	"github.com/oro-core/netplan/internal/plan"
	"github.com/stretchr/testify/require"
)

func TestNopConsumer_ApplyRecordsThePlan(t *testing.T) {
	c := &NopConsumer{}
	require.Nil(t, c.Last)

	p := plan.New()
	require.NoError(t, c.Apply(context.Background(), p))
	require.Same(t, p, c.Last)
}
