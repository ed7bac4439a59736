package domain

import "strings"

// ActionType - внутренний числовой идентификатор команды клиента.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionGenerateParty
	ActionDMInput
	ActionMoveToken
	ActionMoveMonster
	ActionSpawnMonster
	ActionRemoveMonster
	ActionDamageMonster
	ActionHealMonster
	ActionSetScene
	ActionPlaceTerrain
	ActionRemoveTerrain
	ActionClearTerrain
	ActionTerrainEdit
	ActionSelectTerrain
	ActionToggleAudio
	ActionAcceptScene
	ActionDismissScene
	ActionRollDice
	ActionReset

	// Внутренние команды движка. На провод не выносятся:
	// ParseAction их намеренно не знает.
	ActionApplyNarrative
	ActionSceneTimeout
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":            ActionInit,
	"GENERATE_PARTY":  ActionGenerateParty,
	"DM_INPUT":        ActionDMInput,
	"MOVE_TOKEN":      ActionMoveToken,
	"MOVE_MONSTER":    ActionMoveMonster,
	"SPAWN_MONSTER":   ActionSpawnMonster,
	"REMOVE_MONSTER":  ActionRemoveMonster,
	"DAMAGE_MONSTER":  ActionDamageMonster,
	"HEAL_MONSTER":    ActionHealMonster,
	"SET_SCENE":       ActionSetScene,
	"PLACE_TERRAIN":   ActionPlaceTerrain,
	"REMOVE_TERRAIN":  ActionRemoveTerrain,
	"CLEAR_TERRAIN":   ActionClearTerrain,
	"TERRAIN_EDIT":    ActionTerrainEdit,
	"SELECT_TERRAIN":  ActionSelectTerrain,
	"TOGGLE_AUDIO":    ActionToggleAudio,
	"ACCEPT_SCENE":    ActionAcceptScene,
	"DISMISS_SCENE":   ActionDismissScene,
	"ROLL_DICE":       ActionRollDice,
	"RESET":           ActionReset,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	m[ActionApplyNarrative] = "APPLY_NARRATIVE"
	m[ActionSceneTimeout] = "SCENE_TIMEOUT"
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType.
func ParseAction(s string) ActionType {
	// Нечувствительность к регистру для надежности
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для логов).
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
