// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"aimon-defense/internal/component"
)

// PRNGService — обертка над генератором случайных чисел,
// позволяющая воспроизводимые (seeded) прогоны.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// PointNearLane picks a point inside the field whose vertical distance to
// the lane is at most reach, so a turret placed there can cover the lane.
func (s *PRNGService) PointNearLane(width, height, laneY, reach float64) component.Position {
	x := s.Float64() * width
	y := laneY + (s.Float64()*2-1)*reach
	return component.Position{X: x, Y: Clamp(y, 0, height)}
}
