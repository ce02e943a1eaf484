package dnd

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticks/internal/core/model"
)

func staticRegion(x, y, width, height float32) Region {
	return func() (fyne.Position, fyne.Size) {
		return fyne.NewPos(x, y), fyne.NewSize(width, height)
	}
}

type recordingTarget struct {
	items     []model.Item
	positions []fyne.Position
}

func (target *recordingTarget) OnItemDropped(item model.Item, position fyne.Position) {
	target.items = append(target.items, item)
	target.positions = append(target.positions, position)
}

func TestRouter_DeliversItemToContainingTarget(t *testing.T) {
	left := &recordingTarget{}
	right := &recordingTarget{}
	router := NewRouter()
	router.Register(staticRegion(0, 0, 100, 100), left)
	router.Register(staticRegion(100, 0, 100, 100), right)

	tea := model.NewItem("Tea", "kitchen", "remove the bag", 3*time.Minute)
	require.True(t, router.Drop(tea, fyne.NewPos(150, 40)))

	assert.Empty(t, left.items)
	require.Len(t, right.items, 1)
	assert.Equal(t, tea, right.items[0])
	assert.Equal(t, fyne.NewPos(50, 40), right.positions[0])
}

func TestRouter_MissesOutsideAllTargets(t *testing.T) {
	target := &recordingTarget{}
	router := NewRouter()
	router.Register(staticRegion(10, 10, 20, 20), target)

	item := model.NewItem("Tea", "", "", time.Minute)
	assert.False(t, router.Drop(item, fyne.NewPos(30, 15)), "right edge is exclusive")
	assert.False(t, router.Drop(item, fyne.NewPos(5, 15)))
	assert.Empty(t, target.items)
}

func TestRouter_FirstRegistrationWins(t *testing.T) {
	var got []string
	router := NewRouter()
	router.Register(staticRegion(0, 0, 50, 50), DropTargetFunc(func(model.Item, fyne.Position) {
		got = append(got, "first")
	}))
	router.Register(staticRegion(0, 0, 50, 50), DropTargetFunc(func(model.Item, fyne.Position) {
		got = append(got, "second")
	}))

	router.Drop(model.NewItem("Tea", "", "", time.Minute), fyne.NewPos(1, 1))
	assert.Equal(t, []string{"first"}, got)
}
