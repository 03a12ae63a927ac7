package entity

import (
	"grid-snake/game/types"
)

// Snake is the player-controlled chain. Body is head-first: Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // Committed, used for movement and rendering
	Pending   types.Direction // Latest accepted intent, committed on the next tick
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.Right, // Start moving right
		Pending:   types.Right,
	}
}

// Move prepends the new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection stores dir as the pending intent unless it reverses the
// committed direction. Returns whether the intent was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// Commit applies the pending intent and returns the next head position
func (s *Snake) Commit() types.Point {
	s.Direction = s.Pending
	return s.GetHead().Add(s.Direction)
}

// Occupies reports whether p is a body cell. With skipTail the last cell is
// ignored.
func (s *Snake) Occupies(p types.Point, skipTail bool) bool {
	body := s.Body
	if skipTail && len(body) > 0 {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, len(s.Body))
	copy(cells, s.Body)
	return cells
}

// Reset puts the snake back to a single cell heading right
func (s *Snake) Reset(startPos types.Point) {
	s.Body = append(s.Body[:0], startPos)
	s.Direction = types.Right
	s.Pending = types.Right
}
