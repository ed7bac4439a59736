package systems

import "tabletop-server/internal/domain"

// Операции над игровым состоянием. Каждая структура - одно
// атомарное изменение; редьюсер применяет их по очереди.
// Хендлеры команд и агент переводят внешний ввод в эти операции.

// Op - маркерный интерфейс операции редьюсера.
type Op interface {
	isOp()
}

// SetParty начинает сессию: состав партии, сцена, привязка голосов.
// Переводит режим в exploration.
type SetParty struct {
	SessionID        string
	Party            []domain.Character
	Scene            domain.Scene
	VoiceAssignments map[string]string
}

// SetMode переключает режим сессии (setup / exploration / combat).
type SetMode struct {
	Mode string
}

// AddNarrative дописывает запись в конец журнала.
type AddNarrative struct {
	Entry domain.NarrativeEntry
}

// AddNarratives дописывает пачку записей за одно применение.
type AddNarratives struct {
	Entries []domain.NarrativeEntry
}

// UpdateCharacter заменяет персонажа партии по имени.
type UpdateCharacter struct {
	Character domain.Character
}

// MoveCharacter переставляет токен персонажа.
type MoveCharacter struct {
	Name string
	Pos  domain.Position
}

// SetCombat заменяет боевое состояние целиком. Режим следует за боем:
// не-nil переводит в combat, nil - обратно в exploration.
type SetCombat struct {
	Combat *domain.CombatState
}

// SetScene заменяет сцену целиком.
type SetScene struct {
	Scene domain.Scene
}

// AddMonster добавляет монстра в бой. Если бой не идёт,
// заводит новый (пустая инициатива, раунд 1) и переводит режим в combat.
type AddMonster struct {
	Monster domain.Monster
}

// RemoveMonster убирает монстра по имени.
type RemoveMonster struct {
	Name string
}

// DamageMonster наносит урон монстру по имени.
type DamageMonster struct {
	Name   string
	Amount int
}

// HealMonster лечит монстра по имени.
type HealMonster struct {
	Name   string
	Amount int
}

// MoveMonster переставляет токен монстра.
type MoveMonster struct {
	Name string
	Pos  domain.Position
}

// PlaceTerrain ставит фичу на клетку (замещая существующую).
type PlaceTerrain struct {
	Feature domain.TerrainFeature
}

// RemoveTerrain очищает клетку.
type RemoveTerrain struct {
	Pos domain.Position
}

// ClearTerrain убирает весь террейн со сцены.
type ClearTerrain struct{}

// SetLoading включает/выключает флаг ожидания нарративного движка.
type SetLoading struct {
	Loading bool
}

// ToggleAudio переключает озвучку.
type ToggleAudio struct{}

// SetVoiceAssignments заменяет привязку голосов к персонажам.
type SetVoiceAssignments struct {
	Assignments map[string]string
}

// SetTerrainEditMode включает/выключает редактор террейна.
// Выключение сбрасывает выбранный тип.
type SetTerrainEditMode struct {
	Enabled bool
}

// SetSelectedTerrain задает активный тип в редакторе террейна.
type SetSelectedTerrain struct {
	Type domain.TerrainType
}

// Reset возвращает сессию к начальному состоянию.
type Reset struct{}

func (SetParty) isOp()            {}
func (SetMode) isOp()             {}
func (AddNarrative) isOp()        {}
func (AddNarratives) isOp()       {}
func (UpdateCharacter) isOp()     {}
func (MoveCharacter) isOp()       {}
func (SetCombat) isOp()           {}
func (SetScene) isOp()            {}
func (AddMonster) isOp()          {}
func (RemoveMonster) isOp()       {}
func (DamageMonster) isOp()       {}
func (HealMonster) isOp()         {}
func (MoveMonster) isOp()         {}
func (PlaceTerrain) isOp()        {}
func (RemoveTerrain) isOp()       {}
func (ClearTerrain) isOp()        {}
func (SetLoading) isOp()          {}
func (ToggleAudio) isOp()         {}
func (SetVoiceAssignments) isOp() {}
func (SetTerrainEditMode) isOp()  {}
func (SetSelectedTerrain) isOp()  {}
func (Reset) isOp()               {}
