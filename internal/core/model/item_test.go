package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_WithReplacesSingleField(t *testing.T) {
	base := NewItem("Tea", "kitchen", "take the bag out", 3*time.Minute)

	renamed := base.WithName("Green tea")
	assert.Equal(t, "Green tea", renamed.Name())
	assert.Equal(t, base.Type(), renamed.Type())
	assert.Equal(t, base.Action(), renamed.Action())
	assert.Equal(t, base.Timeout(), renamed.Timeout())

	retyped := base.WithType("drink")
	assert.Equal(t, "drink", retyped.Type())
	assert.Equal(t, base.Name(), retyped.Name())

	reactioned := base.WithAction("pour")
	assert.Equal(t, "pour", reactioned.Action())
	assert.Equal(t, base.Timeout(), reactioned.Timeout())

	longer := base.WithTimeout(5 * time.Minute)
	assert.Equal(t, 5*time.Minute, longer.Timeout())
	assert.Equal(t, 300, longer.TimeoutSeconds())

	// The original value is untouched.
	assert.Equal(t, "Tea", base.Name())
	assert.Equal(t, 3*time.Minute, base.Timeout())
}

func TestItem_EqualityByValue(t *testing.T) {
	first := NewItem("Eggs", "kitchen", "cool down", 7*time.Minute)
	second := NewItem("Eggs", "kitchen", "cool down", 7*time.Minute)
	assert.True(t, first == second)
	assert.False(t, first == second.WithTimeout(8*time.Minute))
}

func TestCatalog_FunctionalUpdates(t *testing.T) {
	tea := NewItem("Tea", "kitchen", "", 3*time.Minute)
	eggs := NewItem("Eggs", "kitchen", "", 7*time.Minute)

	catalog := NewCatalog([]Item{tea, eggs, tea})
	require.Equal(t, 3, catalog.Len())

	added := catalog.WithAddedItem(eggs)
	assert.Equal(t, 4, added.Len())
	assert.Equal(t, 3, catalog.Len())

	removed := catalog.WithRemovedItem(tea)
	assert.Equal(t, []Item{eggs}, removed.Items())

	coffee := tea.WithName("Coffee")
	updated := catalog.WithUpdatedItem(tea, coffee)
	assert.Equal(t, []Item{coffee, eggs, coffee}, updated.Items())
	assert.Equal(t, []Item{tea, eggs, tea}, catalog.Items())

	_, ok := catalog.At(3)
	assert.False(t, ok)
	got, ok := catalog.At(1)
	require.True(t, ok)
	assert.Equal(t, eggs, got)
}

func TestCatalog_ItemsReturnsCopy(t *testing.T) {
	catalog := NewCatalog([]Item{NewItem("A", "", "", time.Second)})
	items := catalog.Items()
	items[0] = items[0].WithName("B")
	got, _ := catalog.At(0)
	assert.Equal(t, "A", got.Name())
}
