package api

import "tabletop-server/internal/domain"

// DTO контракта с нарративным движком (внешний webhook).
// Все запросы - POST на один endpoint, маршрутизация по полю action.
// Формы ответов нестрогие: каждая опциональная категория обновлений
// применяется независимо, отсутствие поля - не ошибка.

// --- generate_party ---

// GeneratePartyRequest запрашивает генерацию стартовой партии.
type GeneratePartyRequest struct {
	Action      string `json:"action"` // "generate_party"
	Preferences struct {
		PartySize int `json:"partySize"`
	} `json:"preferences"`
}

// GeneratePartyResponse - сгенерированная партия и стартовая сцена.
type GeneratePartyResponse struct {
	SessionID        string             `json:"sessionId"`
	Party            []domain.Character `json:"party"`
	Scene            domain.Scene       `json:"scene"`
	VoiceAssignments map[string]string  `json:"voiceAssignments"`
}

// --- dm_input ---

// GameStateView - срез состояния, передаваемый движку как контекст.
type GameStateView struct {
	Mode   string              `json:"mode"`
	Party  []domain.Character  `json:"party"`
	Scene  domain.Scene        `json:"scene"`
	Combat *domain.CombatState `json:"combat"`
}

// DmInputRequest - реплика мастера с игровым контекстом.
type DmInputRequest struct {
	Action         string                     `json:"action"` // "dm_input"
	SessionID      string                     `json:"sessionId"`
	Message        string                     `json:"message"`
	TokenPositions map[string]domain.Position `json:"tokenPositions,omitempty"`
	GameState      *GameStateView             `json:"gameState,omitempty"`
}

// NpcAction - реакция одного NPC в ответе движка.
type NpcAction struct {
	NPCName   string            `json:"npcName"`
	Action    string            `json:"action"`
	Dialogue  string            `json:"dialogue,omitempty"`
	Rolls     []domain.DiceRoll `json:"rolls,omitempty"`
	AudioData string            `json:"audioBase64,omitempty"`
}

// CharacterPatch - частичное обновление персонажа.
// nil-поля означают "не трогать".
type CharacterPatch struct {
	HP         *domain.CharacterHP    `json:"hp,omitempty"`
	Position   *domain.Position       `json:"position,omitempty"`
	AC         *int                   `json:"ac,omitempty"`
	SpellSlots []domain.SpellSlot     `json:"spellSlots,omitempty"`
	Inventory  []domain.InventoryItem `json:"inventory,omitempty"`
}

// MonsterUpdate - изменение здоровья монстра. Монстр адресуется
// индексом в combat.monsters, не именем. Дельты применяются через
// операции урона/лечения, так что кламп и авто-смерть работают так же,
// как для ручных команд мастера.
type MonsterUpdate struct {
	Index  int  `json:"index"`
	Damage *int `json:"damage,omitempty"`
	Heal   *int `json:"heal,omitempty"`
}

// DmInputResponse - ответ движка на реплику мастера.
// Обязательны только sessionId, mode и narrative; остальное опционально.
type DmInputResponse struct {
	SessionID      string                    `json:"sessionId"`
	Mode           string                    `json:"mode"`
	Narrative      string                    `json:"narrative"`
	NpcActions     []NpcAction               `json:"npcActions"`
	CombatState    *domain.CombatState       `json:"combatState,omitempty"`
	PartyUpdates   map[string]CharacterPatch `json:"partyUpdates,omitempty"`
	MonsterUpdates []MonsterUpdate           `json:"monsterUpdates,omitempty"`
	MapID          string                    `json:"mapId,omitempty"`
	SceneChange    string                    `json:"sceneChange,omitempty"`
}

// --- roll_dice ---

// RollDiceRequest - запрос броска. Вычисление делает движок, не мы.
type RollDiceRequest struct {
	Action     string `json:"action"` // "roll_dice"
	Expression string `json:"expression"`
	Purpose    string `json:"purpose,omitempty"`
}

// RollDiceResponse - результат броска.
type RollDiceResponse domain.DiceRoll

// --- lookup ---

// Справочные ресурсы SRD, доступные для lookup.
const (
	LookupMonster    = "monster"
	LookupSpell      = "spell"
	LookupArmor      = "armor"
	LookupBackground = "background"
	LookupClass      = "class"
	LookupMagicItem  = "magicItem"
	LookupRace       = "race"
	LookupWeapon     = "weapon"
)

// LookupRequest - поиск по справочнику правил.
type LookupRequest struct {
	Action   string `json:"action"` // "lookup"
	Resource string `json:"resource"`
	Query    string `json:"query"`
}

// LookupResponse - результат поиска. Items намеренно нетипизированы:
// форма зависит от ресурса, мы отдаем их клиенту как есть.
type LookupResponse struct {
	Resource string        `json:"resource"`
	Items    []interface{} `json:"items"`
	Count    int           `json:"count"`
}

// --- campaign_lore ---

// CampaignLoreRequest - вопрос по лору кампании.
type CampaignLoreRequest struct {
	Action         string `json:"action"` // "campaign_lore"
	SessionID      string `json:"sessionId"`
	Question       string `json:"question"`
	CampaignNumber int    `json:"campaignNumber"`
	EpisodeNumber  int    `json:"episodeNumber"`
}

// LoreSource - фрагмент исходного материала, подтверждающий ответ.
type LoreSource struct {
	SegmentID string `json:"segment_id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

// CampaignLoreResponse - ответ на вопрос по лору.
type CampaignLoreResponse struct {
	Answer  string       `json:"answer"`
	Sources []LoreSource `json:"sources"`
}

// --- generate_map ---

// GenerateMapRequest - запрос генерации карты по описанию сцены.
// availableTerrainTypes - wire-контракт: ровно 27 идентификаторов
// в фиксированном порядке (см. pkg/terrain).
type GenerateMapRequest struct {
	Action                string               `json:"action"` // "generate_map"
	SessionID             string               `json:"sessionId"`
	SceneDescription      string               `json:"sceneDescription"`
	AvailableTerrainTypes []domain.TerrainType `json:"availableTerrainTypes"`
	GridSize              int                  `json:"gridSize"`
}

// GenerateMapResponse - сгенерированная карта.
type GenerateMapResponse struct {
	MapID   string                  `json:"mapId"`
	Terrain []domain.TerrainFeature `json:"terrain,omitempty"`
}
