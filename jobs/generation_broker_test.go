package jobs

import (
	"testing"

	"github.com/Nishan123/yumm-ai/models"
	"github.com/Nishan123/yumm-ai/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastFanOut(t *testing.T) {
	broker := GetBroker()

	a := make(chan services.GenerationSession, 1)
	b := make(chan services.GenerationSession, 1)
	broker.Subscribe("session-1", a)
	broker.Subscribe("session-1", b)
	defer broker.Unsubscribe(b)

	broker.Broadcast("session-1", services.GenerationSession{Status: services.StatusGeneratingRecipe})

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, services.StatusGeneratingRecipe, (<-a).Status)

	// After unsubscribing, the channel is closed and receives nothing more.
	broker.Unsubscribe(a)
	_, open := <-a
	assert.False(t, open)
}

func TestBroadcastScopedToSession(t *testing.T) {
	broker := GetBroker()

	mine := make(chan services.GenerationSession, 1)
	theirs := make(chan services.GenerationSession, 1)
	broker.Subscribe("session-1", mine)
	broker.Subscribe("session-2", theirs)
	defer broker.Unsubscribe(mine)
	defer broker.Unsubscribe(theirs)

	broker.Broadcast("session-1", services.GenerationSession{
		Status:          services.StatusSuccess,
		GeneratedRecipe: &models.Recipe{RecipeID: "recipe-1"},
	})

	// Another session's subscriber never sees the recipe.
	require.Len(t, mine, 1)
	assert.Empty(t, theirs)
	assert.Equal(t, "recipe-1", (<-mine).GeneratedRecipe.RecipeID)
}

func TestBroadcastDropsForSlowSubscriber(t *testing.T) {
	broker := GetBroker()

	slow := make(chan services.GenerationSession, 1)
	broker.Subscribe("session-1", slow)
	defer broker.Unsubscribe(slow)

	// Fill the buffer, then broadcast again; the second update is dropped
	// instead of blocking.
	broker.Broadcast("session-1", services.GenerationSession{Status: services.StatusGeneratingRecipe})
	broker.Broadcast("session-1", services.GenerationSession{Status: services.StatusSuccess})

	got := <-slow
	assert.Equal(t, services.StatusGeneratingRecipe, got.Status)
	assert.Empty(t, slow)
}
