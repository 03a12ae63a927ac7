package manager

import (
	"grid-snake/game/entity"
	"grid-snake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single target and its placement
type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood places the target on a uniformly random free cell by
// rejection sampling. Returns false when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return fm.food, false
	}
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			fm.food = food
			return food, true
		}
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// PlaceFood forces the target onto pos if it is a free cell
func (fm *FoodManager) PlaceFood(pos types.Point, snake *entity.Snake) bool {
	if !fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
		return false
	}
	fm.food = pos
	return true
}
