package api

import (
	"encoding/json"

	"tabletop-server/internal/domain"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный снимок состояния сессии.
// Отправляется после каждой применённой команды всем подключенным клиентам.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// State полное состояние сессии (партия, сцена, бой, журнал).
	// Клиент рендерит его целиком, дифф не передается.
	State domain.GameState `json:"state"`

	// SceneSuggestion предложение смены сцены, ожидающее подтверждения.
	// Поле отсутствует, если предложений нет.
	SceneSuggestion *SceneSuggestionView `json:"sceneSuggestion,omitempty"`

	// Error текст ошибки отклонённой команды. Приходит только автору
	// команды, остальные клиенты этот снимок не получают.
	Error string `json:"error,omitempty"`
}

// SceneSuggestionView это DTO предложения смены сцены.
type SceneSuggestionView struct {
	Description string `json:"description"`
	MapID       string `json:"mapId"`
	MapLabel    string `json:"mapLabel"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// PartySizePayload используется для генерации партии (GENERATE_PARTY).
// Нулевой размер означает значение по умолчанию (4).
type PartySizePayload struct {
	PartySize int `json:"partySize,omitempty"`
}

// TextPayload используется для действий с одним текстовым полем (DM_INPUT).
type TextPayload struct {
	Text string `json:"text"`
}

// MovePayload используется для перестановки токена (MOVE_TOKEN, MOVE_MONSTER).
type MovePayload struct {
	Name     string          `json:"name"`
	Position domain.Position `json:"position"`
}

// SpawnPayload используется для спавна монстра (SPAWN_MONSTER).
// Либо Preset (имя из бестиария), либо Name+HP+AC для произвольного монстра.
type SpawnPayload struct {
	Preset string `json:"preset,omitempty"`
	Name   string `json:"name,omitempty"`
	HP     int    `json:"hp,omitempty"`
	AC     int    `json:"ac,omitempty"`
}

// TargetPayload используется для действий над монстром по имени (REMOVE_MONSTER).
type TargetPayload struct {
	Name string `json:"name"`
}

// AmountPayload используется для урона и лечения (DAMAGE_MONSTER, HEAL_MONSTER).
type AmountPayload struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

// ScenePayload используется для явной смены сцены (SET_SCENE).
// MapID опционален: пустое значение означает "определить по описанию".
type ScenePayload struct {
	Description string `json:"description"`
	MapID       string `json:"mapId,omitempty"`
}

// TerrainPayload используется для ручной расстановки террейна (PLACE_TERRAIN).
type TerrainPayload struct {
	Type     domain.TerrainType `json:"type"`
	Position domain.Position    `json:"position"`
}

// PositionPayload используется для действий, нацеленных на клетку (REMOVE_TERRAIN).
type PositionPayload struct {
	Position domain.Position `json:"position"`
}

// EnabledPayload используется для переключателей (TERRAIN_EDIT).
type EnabledPayload struct {
	Enabled bool `json:"enabled"`
}

// SelectTerrainPayload используется для выбора типа в редакторе (SELECT_TERRAIN).
type SelectTerrainPayload struct {
	Type domain.TerrainType `json:"type"`
}

// RollPayload используется для ручного броска кубиков (ROLL_DICE).
type RollPayload struct {
	Expression string `json:"expression"`
	Purpose    string `json:"purpose,omitempty"`
}
