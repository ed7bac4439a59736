package domain

import "time"

// Режимы игровой сессии
const (
	ModeSetup       = "setup"
	ModeExploration = "exploration"
	ModeCombat      = "combat"
)

// Типы записей нарративного лога
const (
	EntryNarration   = "narration"
	EntryNPCDialogue = "npc_dialogue"
	EntryCombat      = "combat_result"
	EntrySystem      = "system"
	EntryDMInput     = "dm_input"
)

// TerrainType - идентификатор типа террейна (один из 27, см. pkg/terrain).
// Значения являются частью wire-контракта с нарративным движком.
type TerrainType string

// TerrainFeature - одна декорация на клетке карты.
// Инвариант: в Scene.Terrain не более одной фичи на позицию,
// это обеспечивает редьюсер (upsert по позиции).
type TerrainFeature struct {
	Type           TerrainType `json:"type"`
	Position       Position    `json:"position"`
	BlocksMovement bool        `json:"blocksMovement"`
	BlocksSight    bool        `json:"blocksSight"`
	Label          string      `json:"label,omitempty"`
}

// Scene - текущая сцена: описание, ссылка на карту и размещённый террейн.
// MapId - либо символьный ключ пресета ("tavern"), либо непрозрачная
// ссылка на сгенерированное изображение.
type Scene struct {
	Description string           `json:"description"`
	MapID       string           `json:"mapId"`
	Terrain     []TerrainFeature `json:"terrain"`
}

// HitPoints - текущее/максимальное здоровье монстра.
// Инвариант: 0 <= Current <= Max, урон клампится в 0, лечение - в Max.
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Attack - одна атака из статблока монстра. Урон хранится выражением
// ("1d6+2 slashing"): броски выполняет внешний движок, не мы.
type Attack struct {
	Name   string `json:"name"`
	Bonus  int    `json:"bonus"`
	Damage string `json:"damage"`
}

// Monster - противник на карте.
type Monster struct {
	Name             string    `json:"name"`
	HP               HitPoints `json:"hp"`
	AC               int       `json:"ac"`
	CR               float64   `json:"cr"`
	Attacks          []Attack  `json:"attacks"`
	Position         Position  `json:"position"`
	SpecialAbilities []string  `json:"specialAbilities,omitempty"`
}

// Bloodied - неформальный статус для подсветки в UI (HP <= 50% максимума).
// Отдельного поля состояния нет, это чистый предикат.
func (m Monster) Bloodied() bool {
	return m.HP.Max > 0 && m.HP.Current*2 <= m.HP.Max
}

// InitiativeEntry - один участник в порядке ходов.
type InitiativeEntry struct {
	Name       string  `json:"name"`
	Initiative float64 `json:"initiative"`
	IsParty    bool    `json:"isParty"`
}

// CombatState - состояние боя. nil в GameState.Combat означает,
// что бой не идёт (режим exploration).
// Инвариант: 0 <= CurrentTurn < len(InitiativeOrder) при непустом порядке ходов.
type CombatState struct {
	InitiativeOrder []InitiativeEntry `json:"initiativeOrder"`
	CurrentTurn     int               `json:"currentTurn"`
	Round           int               `json:"round"`
	Monsters        []Monster         `json:"monsters"`
}

// Abilities - шесть характеристик персонажа (обычно 3-18).
type Abilities struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// CharacterHP - здоровье персонажа партии (с временными хитами).
type CharacterHP struct {
	Current int `json:"current"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
}

// Spell - известное заклинание (данные для отображения).
type Spell struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	School      string `json:"school"`
	CastingTime string `json:"castingTime"`
	Range       string `json:"range"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Damage      string `json:"damage,omitempty"`
}

// SpellSlot - ячейки заклинаний одного уровня.
type SpellSlot struct {
	Level int `json:"level"`
	Total int `json:"total"`
	Used  int `json:"used"`
}

// InventoryItem - предмет в инвентаре персонажа.
type InventoryItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"` // weapon, armor, potion, gear, treasure
	Description string `json:"description,omitempty"`
}

// Character - персонаж партии. Позицией и HP владеет движок состояния:
// нарративный движок лишь запрашивает обновления, применяет их редьюсер.
type Character struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Race              string          `json:"race"`
	ClassName         string          `json:"className"`
	Level             int             `json:"level"`
	Background        string          `json:"background,omitempty"`
	PersonalityTraits string          `json:"personalityTraits,omitempty"`
	Alignment         string          `json:"alignment,omitempty"`
	Abilities         Abilities       `json:"abilities"`
	HP                CharacterHP     `json:"hp"`
	AC                int             `json:"ac"`
	Speed             int             `json:"speed"`
	ProficiencyBonus  int             `json:"proficiencyBonus"`
	SavingThrows      []string        `json:"savingThrows,omitempty"`
	Skills            []string        `json:"skills,omitempty"`
	SpellSlots        []SpellSlot     `json:"spellSlots,omitempty"`
	KnownSpells       []Spell         `json:"knownSpells,omitempty"`
	Inventory         []InventoryItem `json:"inventory,omitempty"`
	Position          Position        `json:"position"`
	VoiceID           string          `json:"voiceId,omitempty"`
	Color             string          `json:"color"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// DiceRoll - результат броска, посчитанный внешним сервисом.
// Мы его только показываем и логируем.
type DiceRoll struct {
	Expression string `json:"expression"`
	Individual []int  `json:"individual"`
	Modifier   int    `json:"modifier"`
	Total      int    `json:"total"`
	Purpose    string `json:"purpose"`
}

// NarrativeEntry - одна запись нарративного лога.
type NarrativeEntry struct {
	ID        string     `json:"id"`
	Type      string     `json:"type"`
	Content   string     `json:"content"`
	NPCName   string     `json:"npcName,omitempty"`
	NPCColor  string     `json:"npcColor,omitempty"`
	Rolls     []DiceRoll `json:"rolls,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// GameState - корневое состояние сессии. Один экземпляр на процесс,
// живёт от старта сессии до её завершения. Все мутации - только через
// редьюсер (см. internal/systems), прямых записей в поля быть не должно.
type GameState struct {
	SessionID           string            `json:"sessionId"`
	Mode                string            `json:"mode"`
	Party               []Character       `json:"party"`
	Scene               Scene             `json:"scene"`
	Combat              *CombatState      `json:"combat"`
	NarrativeLog        []NarrativeEntry  `json:"narrativeLog"`
	IsLoading           bool              `json:"isLoading"`
	AudioEnabled        bool              `json:"audioEnabled"`
	VoiceAssignments    map[string]string `json:"voiceAssignments,omitempty"`
	TerrainEditMode     bool              `json:"terrainEditMode"`
	SelectedTerrainType TerrainType       `json:"selectedTerrainType,omitempty"`
}

// NewGameState возвращает начальное состояние (до загрузки сессии).
func NewGameState() GameState {
	return GameState{
		Mode:         ModeSetup,
		Scene:        Scene{MapID: "tavern"},
		AudioEnabled: true,
	}
}
