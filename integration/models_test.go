//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	cursoragent "github.com/yidong72/cursor-agent-sdk-go"
)

// TestListModelsIntegration asks the installed agent for its model list.
func TestListModelsIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := cursoragent.New()

	models, err := client.ListModels(ctx)
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("ListModels failed: %v", err)
	}

	require.NotEmpty(t, models)
	for _, model := range models {
		require.NotEmpty(t, model)
	}

	t.Logf("Agent accepts %d models: %v", len(models), models)
}

// TestListModelsCacheIntegration checks that the cached list matches a
// fresh one.
func TestListModelsCacheIntegration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := cursoragent.New(cursoragent.WithModelListCache(time.Minute))

	first, err := client.ListModels(ctx)
	if err != nil {
		skipIfAgentNotInstalled(t, err)
		t.Fatalf("ListModels failed: %v", err)
	}

	second, err := client.ListModels(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
