package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	t.Run("starting a span ends the previous one", func(t *testing.T) {
		p, end := NewProfile()
		first, _ := p.StartNewSpan("load")
		require.Nil(t, first.Elapsed)

		second, _ := p.StartNewSpan("aggregate")
		require.NotNil(t, first.Elapsed)
		require.Nil(t, second.Elapsed)

		end()
		require.NotNil(t, second.Elapsed)
		require.NotNil(t, p.TotalMs)
		require.Len(t, p.Spans, 2)
	})

	t.Run("context round trip", func(t *testing.T) {
		p, _ := NewProfile()
		ctx := WithProfile(context.Background(), p)
		require.Same(t, p, ProfileFromContext(ctx))
		require.NotNil(t, ProfileFromContext(context.Background()))
	})
}
