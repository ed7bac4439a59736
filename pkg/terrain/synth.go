package terrain

import (
	"math"
	"strings"

	"tabletop-server/internal/domain"
)

// Синтезатор террейна: чистая детерминированная функция
// "текстовое описание сцены -> набор фич на сетке 16x16".
// Распознавание по упорядоченной таблице ключевых слов, первый матч
// побеждает. Нераспознанный текст получает разреженную заглушку.

type keywordRule struct {
	id    string
	words []string
}

// presetRules - категории, которым соответствует карта-пресет.
// Порядок имеет значение: tavern проверяется раньше dungeon и т.д.
var presetRules = []keywordRule{
	{"tavern", []string{"tavern", "inn", "bar", "pub", "alehouse"}},
	{"dungeon", []string{"dungeon", "crypt", "tomb", "catacomb", "prison", "cell", "vault"}},
	{"forest", []string{"forest", "wood", "grove", "glade", "jungle", "swamp"}},
	{"cave", []string{"cave", "cavern", "mine", "tunnel", "underground"}},
	{"town", []string{"town", "village", "city", "market", "square", "street", "hamlet"}},
}

// layoutRules - полная таблица для синтеза: пресеты плюс вторичные
// категории, у которых есть своя раскладка, но нет карты-пресета.
var layoutRules = append(presetRules[:len(presetRules):len(presetRules)],
	keywordRule{"castle", []string{"castle", "fortress", "keep"}},
	keywordRule{"temple", []string{"temple", "shrine", "church", "chapel"}},
	keywordRule{"camp", []string{"camp", "clearing", "rest"}},
	keywordRule{"river", []string{"bridge", "river", "lake", "shore"}},
)

func (r keywordRule) matches(lower string) bool {
	for _, w := range r.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// DetectMapID классифицирует текст в одну из пяти карт-пресетов.
// Возвращает ok=false, если ни одна категория не подошла.
func DetectMapID(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range presetRules {
		if rule.matches(lower) {
			return rule.id, true
		}
	}
	return "", false
}

// Synthesize строит раскладку террейна по описанию сцены.
// Тотальная функция: никогда не ошибается, в худшем случае
// возвращает generic-заглушку.
func Synthesize(description string) []domain.TerrainFeature {
	lower := strings.ToLower(description)
	for _, rule := range layoutRules {
		if rule.matches(lower) {
			return generators[rule.id]()
		}
	}
	return genericLayout()
}

var generators = map[string]func() []domain.TerrainFeature{
	"tavern":  tavernLayout,
	"dungeon": dungeonLayout,
	"forest":  forestLayout,
	"cave":    caveLayout,
	"town":    townLayout,
	"castle":  castleLayout,
	"temple":  templeLayout,
	"camp":    campLayout,
	"river":   riverLayout,
}

// --- Накопитель раскладки ---

// layout собирает фичи с заменой по позиции: на клетке живёт не больше
// одной фичи, поздняя затирает раннюю (так wallRect "врезает" двери).
type layout struct {
	order []domain.Position
	cells map[domain.Position]domain.TerrainFeature
}

func newLayout() *layout {
	return &layout{cells: make(map[domain.Position]domain.TerrainFeature)}
}

func (l *layout) put(t domain.TerrainType, x, y int) {
	pos := domain.Position{X: x, Y: y}
	if !pos.InBounds() {
		return
	}
	if _, ok := l.cells[pos]; !ok {
		l.order = append(l.order, pos)
	}
	l.cells[pos] = NewFeature(t, x, y)
}

// clear освобождает клетку (нужно для прорубания входа в пещеру).
func (l *layout) clear(x, y int) {
	pos := domain.Position{X: x, Y: y}
	if _, ok := l.cells[pos]; !ok {
		return
	}
	delete(l.cells, pos)
	for i, p := range l.order {
		if p == pos {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *layout) features() []domain.TerrainFeature {
	out := make([]domain.TerrainFeature, 0, len(l.order))
	for _, pos := range l.order {
		out = append(out, l.cells[pos])
	}
	return out
}

// wallRect строит прямоугольный периметр стен (x1,y1)-(x2,y2) включительно.
// Клетки из doors понижаются до дверей.
func (l *layout) wallRect(x1, y1, x2, y2 int, doors ...domain.Position) {
	for x := x1; x <= x2; x++ {
		l.put(Wall, x, y1)
		l.put(Wall, x, y2)
	}
	for y := y1 + 1; y < y2; y++ {
		l.put(Wall, x1, y)
		l.put(Wall, x2, y)
	}
	for _, d := range doors {
		l.put(Door, d.X, d.Y)
	}
}

// riverX - синусоидальная осевая линия реки/ручья.
func riverX(y int) int {
	return int(math.Round(7 + math.Sin(float64(y)*0.4)*2.5))
}

func distanceFromCenter(x, y int) float64 {
	return math.Hypot(float64(x)-7.5, float64(y)-7.5)
}

// --- Генераторы раскладок ---
// Каждая раскладка - композиция констант, подобранных вручную под 16x16.
// Одинаковая категория всегда даёт одинаковый набор фич.

func tavernLayout() []domain.TerrainFeature {
	l := newLayout()
	l.wallRect(1, 1, 14, 14,
		domain.Position{X: 7, Y: 14}, domain.Position{X: 8, Y: 14})

	// Барная стойка вдоль северной стены и запасы за ней
	for x := 3; x <= 6; x++ {
		l.put(Table, x, 3)
	}
	l.put(Barrel, 3, 2)
	l.put(Barrel, 5, 2)
	l.put(Bookshelf, 12, 2)

	// Камин
	l.put(Fire, 13, 3)

	// Обеденные столы со стульями
	for _, t := range [][2]int{{4, 7}, {9, 7}, {4, 11}, {9, 11}} {
		l.put(Table, t[0], t[1])
		l.put(Chair, t[0]-1, t[1])
		l.put(Chair, t[0]+1, t[1])
	}

	l.put(StairsUp, 13, 13)
	return l.features()
}

func dungeonLayout() []domain.TerrainFeature {
	l := newLayout()
	l.wallRect(0, 0, 15, 15, domain.Position{X: 8, Y: 15})

	// Перегородка: колонный зал сверху, коридор снизу
	for x := 1; x <= 14; x++ {
		l.put(Wall, x, 10)
	}
	l.put(Door, 8, 10)

	// Колонны зала
	for _, p := range [][2]int{{4, 4}, {8, 4}, {12, 4}, {4, 7}, {12, 7}} {
		l.put(Pillar, p[0], p[1])
	}

	// Ловушки и ямы
	l.put(Pit, 6, 5)
	l.put(Pit, 10, 6)
	l.put(Trap, 3, 8)
	l.put(Trap, 8, 12)

	// Сокровища и лестницы
	l.put(Chest, 2, 2)
	l.put(Chest, 13, 2)
	l.put(StairsUp, 2, 13)
	l.put(StairsDown, 13, 13)

	l.put(Rubble, 5, 8)
	l.put(Rubble, 11, 3)
	return l.features()
}

func forestLayout() []domain.TerrainFeature {
	l := newLayout()

	// Опушка: деревья по всему периметру
	for x := 0; x < domain.GridSize; x++ {
		l.put(Tree, x, 0)
		l.put(Tree, x, 15)
	}
	for y := 1; y < domain.GridSize-1; y++ {
		l.put(Tree, 0, y)
		l.put(Tree, 15, y)
	}

	// Ручей по синусоиде, затирает деревья на входе/выходе
	for y := 0; y < domain.GridSize; y++ {
		l.put(Water, riverX(y), y)
	}
	// Мостик через ручей
	l.put(Bridge, riverX(7), 7)

	// Подлесок
	l.put(Tree, 4, 10)
	l.put(Tree, 11, 8)
	l.put(Rock, 3, 4)
	l.put(Rock, 12, 11)
	l.put(Bush, 2, 9)
	l.put(Bush, 13, 6)
	l.put(Bush, 5, 12)
	return l.features()
}

func caveLayout() []domain.TerrainFeature {
	l := newLayout()

	// Шумовая круговая граница пещеры
	for y := 0; y < domain.GridSize; y++ {
		for x := 0; x < domain.GridSize; x++ {
			noise := math.Sin(float64(x)*1.3) * math.Cos(float64(y)*0.9) * 1.5
			if distanceFromCenter(x, y)+noise > 6.5 {
				l.put(Wall, x, y)
			}
		}
	}
	// Гарантированный вход с юга
	l.clear(7, 14)
	l.clear(8, 14)
	l.clear(7, 15)
	l.clear(8, 15)

	// Сталагмиты, лужа и завалы
	l.put(Pillar, 4, 8)
	l.put(Pillar, 11, 6)
	l.put(Water, 9, 5)
	l.put(Water, 10, 5)
	l.put(Rock, 5, 5)
	l.put(Rock, 10, 9)
	l.put(Rubble, 6, 10)
	l.put(Chest, 7, 4)
	return l.features()
}

func townLayout() []domain.TerrainFeature {
	l := newLayout()

	// Три дома вокруг площади
	l.wallRect(1, 1, 6, 5, domain.Position{X: 3, Y: 5})
	l.wallRect(9, 1, 14, 5, domain.Position{X: 11, Y: 5})
	l.wallRect(1, 9, 5, 14, domain.Position{X: 3, Y: 9})

	// Фонтан на площади
	l.put(Fountain, 8, 7)

	// Рыночные прилавки
	l.put(Table, 8, 10)
	l.put(Table, 10, 10)
	l.put(Table, 12, 10)
	l.put(Barrel, 8, 12)
	l.put(Barrel, 12, 12)

	l.put(Statue, 12, 7)
	l.put(Tree, 14, 9)
	l.put(Tree, 14, 14)
	return l.features()
}

func castleLayout() []domain.TerrainFeature {
	l := newLayout()

	// Двойная крепостная стена с воротами на юг
	l.wallRect(0, 0, 15, 15)
	l.wallRect(1, 1, 14, 14)
	for _, d := range [][2]int{{7, 15}, {8, 15}, {7, 14}, {8, 14}} {
		l.put(Door, d[0], d[1])
	}

	// Цитадель во дворе
	l.wallRect(5, 4, 10, 9, domain.Position{X: 7, Y: 9})
	l.put(Chest, 7, 6)
	l.put(StairsUp, 8, 6)

	// Двор
	l.put(Pillar, 3, 3)
	l.put(Pillar, 12, 3)
	l.put(Pillar, 3, 12)
	l.put(Pillar, 12, 12)
	l.put(Statue, 6, 11)
	l.put(Statue, 9, 11)
	return l.features()
}

func templeLayout() []domain.TerrainFeature {
	l := newLayout()
	l.wallRect(2, 1, 13, 14,
		domain.Position{X: 7, Y: 14}, domain.Position{X: 8, Y: 14})

	// Колоннада нефа
	for _, y := range []int{4, 6, 8, 10} {
		l.put(Pillar, 4, y)
		l.put(Pillar, 11, y)
	}

	// Алтарь со свечами и стражи-статуи
	l.put(Altar, 7, 3)
	l.put(Altar, 8, 3)
	l.put(Fire, 6, 3)
	l.put(Fire, 9, 3)
	l.put(Statue, 5, 2)
	l.put(Statue, 10, 2)

	l.put(Fountain, 7, 11)
	return l.features()
}

func campLayout() []domain.TerrainFeature {
	l := newLayout()

	// Костёр и спальники вокруг
	l.put(Fire, 7, 7)
	l.put(Bed, 5, 6)
	l.put(Bed, 5, 8)
	l.put(Bed, 9, 6)
	l.put(Bed, 9, 8)

	// Припасы
	l.put(Barrel, 10, 7)
	l.put(Chest, 11, 7)

	// Лес вокруг поляны
	for _, t := range [][2]int{{2, 2}, {13, 3}, {3, 12}, {12, 12}, {1, 7}, {14, 8}} {
		l.put(Tree, t[0], t[1])
	}
	l.put(Bush, 4, 4)
	l.put(Bush, 11, 11)
	l.put(Rock, 6, 10)
	l.put(Rock, 8, 4)
	return l.features()
}

func riverLayout() []domain.TerrainFeature {
	l := newLayout()

	// Река: мелководье по берегам, стремнина по осевой
	for y := 0; y < domain.GridSize; y++ {
		cx := riverX(y)
		l.put(Water, cx-1, y)
		l.put(Water, cx+1, y)
		l.put(DeepWater, cx, y)
	}

	// Мост через всю реку
	cx := riverX(7)
	l.put(Bridge, cx-1, 7)
	l.put(Bridge, cx, 7)
	l.put(Bridge, cx+1, 7)

	// Берега
	l.put(Rock, 2, 3)
	l.put(Rock, 13, 10)
	l.put(Rock, 3, 13)
	l.put(Tree, 1, 1)
	l.put(Tree, 14, 2)
	l.put(Tree, 2, 10)
	l.put(Tree, 13, 14)
	l.put(Bush, 12, 5)
	l.put(Bush, 4, 6)
	return l.features()
}

// genericLayout - разреженная заглушка для нераспознанных описаний.
func genericLayout() []domain.TerrainFeature {
	l := newLayout()
	l.put(Rock, 3, 3)
	l.put(Rock, 12, 5)
	l.put(Bush, 5, 10)
	l.put(Bush, 11, 11)
	l.put(Tree, 2, 12)
	l.put(Tree, 13, 2)
	l.put(Pillar, 8, 8)
	return l.features()
}
