package terrain

import "tabletop-server/internal/domain"

// Категории террейна (для палитры редактора)
const (
	CategoryStructure = "structure"
	CategoryFurniture = "furniture"
	CategoryNature    = "nature"
	CategoryHazard    = "hazard"
	CategorySpecial   = "special"
)

// Def описывает визуальные и семантические свойства типа террейна.
// Чистые данные, состояния нет.
type Def struct {
	Type           domain.TerrainType `json:"type"`
	Label          string             `json:"label"`
	Emoji          string             `json:"emoji"`
	Category       string             `json:"category"`
	BlocksMovement bool               `json:"blocksMovement"`
	BlocksSight    bool               `json:"blocksSight"`
}

// Идентификаторы всех 27 типов. Это wire-контракт: нарративный движок
// получает их в availableTerrainTypes, менять строки нельзя.
const (
	Wall       domain.TerrainType = "wall"
	Door       domain.TerrainType = "door"
	DoorOpen   domain.TerrainType = "door_open"
	Table      domain.TerrainType = "table"
	Chair      domain.TerrainType = "chair"
	Water      domain.TerrainType = "water"
	DeepWater  domain.TerrainType = "deep_water"
	Lava       domain.TerrainType = "lava"
	Pit        domain.TerrainType = "pit"
	Pillar     domain.TerrainType = "pillar"
	Tree       domain.TerrainType = "tree"
	Bush       domain.TerrainType = "bush"
	Rock       domain.TerrainType = "rock"
	Chest      domain.TerrainType = "chest"
	StairsUp   domain.TerrainType = "stairs_up"
	StairsDown domain.TerrainType = "stairs_down"
	Trap       domain.TerrainType = "trap"
	Fire       domain.TerrainType = "fire"
	Barrel     domain.TerrainType = "barrel"
	Bookshelf  domain.TerrainType = "bookshelf"
	Bed        domain.TerrainType = "bed"
	Rubble     domain.TerrainType = "rubble"
	Ice        domain.TerrainType = "ice"
	Bridge     domain.TerrainType = "bridge"
	Altar      domain.TerrainType = "altar"
	Statue     domain.TerrainType = "statue"
	Fountain   domain.TerrainType = "fountain"
)

// Catalog - справочник свойств по типу.
var Catalog = map[domain.TerrainType]Def{
	Wall:       {Wall, "Wall", "🧱", CategoryStructure, true, true},
	Door:       {Door, "Door", "🚪", CategoryStructure, true, true},
	DoorOpen:   {DoorOpen, "Open Door", "🚪", CategoryStructure, false, false},
	Table:      {Table, "Table", "🪑", CategoryFurniture, true, false},
	Chair:      {Chair, "Chair", "🪑", CategoryFurniture, false, false},
	Water:      {Water, "Water", "💧", CategoryNature, false, false},
	DeepWater:  {DeepWater, "Deep Water", "🌊", CategoryNature, true, false},
	Lava:       {Lava, "Lava", "🌋", CategoryHazard, true, false},
	Pit:        {Pit, "Pit", "🕳️", CategoryHazard, true, false},
	Pillar:     {Pillar, "Pillar", "🏛️", CategoryStructure, true, true},
	Tree:       {Tree, "Tree", "🌳", CategoryNature, true, true},
	Bush:       {Bush, "Bush", "🌿", CategoryNature, false, true},
	Rock:       {Rock, "Rock", "🪨", CategoryNature, true, false},
	Chest:      {Chest, "Chest", "📦", CategorySpecial, true, false},
	StairsUp:   {StairsUp, "Stairs Up", "⬆️", CategoryStructure, false, false},
	StairsDown: {StairsDown, "Stairs Down", "⬇️", CategoryStructure, false, false},
	Trap:       {Trap, "Trap", "⚠️", CategoryHazard, false, false},
	Fire:       {Fire, "Fire", "🔥", CategoryHazard, false, false},
	Barrel:     {Barrel, "Barrel", "🛢️", CategoryFurniture, true, false},
	Bookshelf:  {Bookshelf, "Bookshelf", "📚", CategoryFurniture, true, true},
	Bed:        {Bed, "Bed", "🛏️", CategoryFurniture, true, false},
	Rubble:     {Rubble, "Rubble", "🧱", CategoryStructure, false, false},
	Ice:        {Ice, "Ice", "🧊", CategoryHazard, false, false},
	Bridge:     {Bridge, "Bridge", "🌉", CategoryStructure, false, false},
	Altar:      {Altar, "Altar", "⛩️", CategorySpecial, true, false},
	Statue:     {Statue, "Statue", "🗿", CategorySpecial, true, true},
	Fountain:   {Fountain, "Fountain", "⛲", CategorySpecial, true, false},
}

// wireOrder - порядок типов в availableTerrainTypes.
// Совпадает с порядком, который ожидает нарративный движок.
var wireOrder = []domain.TerrainType{
	Wall, Door, DoorOpen, Table, Chair, Water, DeepWater,
	Lava, Pit, Pillar, Tree, Bush, Rock, Chest, StairsUp,
	StairsDown, Trap, Fire, Barrel, Bookshelf, Bed, Rubble,
	Ice, Bridge, Altar, Statue, Fountain,
}

// AllTypes возвращает копию списка всех типов в wire-порядке.
func AllTypes() []domain.TerrainType {
	out := make([]domain.TerrainType, len(wireOrder))
	copy(out, wireOrder)
	return out
}

// NewFeature собирает TerrainFeature со свойствами из каталога.
// Неизвестный тип получает пустые свойства (не блокирует ничего).
func NewFeature(t domain.TerrainType, x, y int) domain.TerrainFeature {
	def := Catalog[t]
	return domain.TerrainFeature{
		Type:           t,
		Position:       domain.Position{X: x, Y: y},
		BlocksMovement: def.BlocksMovement,
		BlocksSight:    def.BlocksSight,
	}
}

// MapNames - отображаемые названия карт-пресетов.
var MapNames = map[string]string{
	"tavern":  "The Rusty Flagon Tavern",
	"dungeon": "Dark Dungeon",
	"forest":  "Whispering Woods",
	"cave":    "Echoing Caverns",
	"town":    "Market Square",
}

// MapLabel возвращает человекочитаемое имя карты,
// либо сам идентификатор, если имени нет.
func MapLabel(mapID string) string {
	if name, ok := MapNames[mapID]; ok {
		return name
	}
	return mapID
}
