package domain

import (
	"encoding/json"
	"fmt"
)

// GridSize - размер тактической сетки. Карта всегда квадратная 16x16.
const GridSize = 16

// Position - координата клетки на сетке.
// На проводе сериализуется как массив [x, y] - так её ожидает
// внешний нарративный движок и фронтенд.
type Position struct {
	X int
	Y int
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(data []byte) error {
	var arr [2]int
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("position must be an [x, y] array: %w", err)
	}
	p.X, p.Y = arr[0], arr[1]
	return nil
}

// Clamp прижимает координату к границам сетки [0, GridSize-1].
func (p Position) Clamp() Position {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= GridSize {
			return GridSize - 1
		}
		return v
	}
	return Position{X: clamp(p.X), Y: clamp(p.Y)}
}

// InBounds сообщает, лежит ли координата внутри сетки.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}
