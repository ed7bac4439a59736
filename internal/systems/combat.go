package systems

import (
	"fmt"
	"strings"

	"tabletop-server/internal/domain"
)

// FindOpenPosition ищет свободную клетку для спавна монстра.
// Порядок сканирования фиксирован: строки y сверху вниз, внутри строки
// x справа налево - монстры появляются у правого края карты.
// Если занята вся сетка, возвращаем центр (8,8) как best-effort.
func FindOpenPosition(party []domain.Character, monsters []domain.Monster) domain.Position {
	occupied := make(map[domain.Position]bool, len(party)+len(monsters))
	for _, c := range party {
		occupied[c.Position] = true
	}
	for _, m := range monsters {
		occupied[m.Position] = true
	}

	for y := 0; y < domain.GridSize; y++ {
		for x := domain.GridSize - 1; x >= 0; x-- {
			pos := domain.Position{X: x, Y: y}
			if !occupied[pos] {
				return pos
			}
		}
	}
	return domain.Position{X: 8, Y: 8}
}

// SpawnName возвращает отображаемое имя для нового монстра.
// Повторный спавн того же пресета получает порядковый суффикс:
// второй "Goblin" становится "Goblin 2". Счётчик - по префиксу имени.
func SpawnName(base string, monsters []domain.Monster) string {
	count := 0
	for _, m := range monsters {
		if strings.HasPrefix(m.Name, base) {
			count++
		}
	}
	if count == 0 {
		return base
	}
	return fmt.Sprintf("%s %d", base, count+1)
}
