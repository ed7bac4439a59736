package actions

import (
	"fmt"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/bestiary"
)

// HandleSpawnMonster ставит монстра на первую свободную клетку.
// Либо пресет из бестиария, либо произвольный монстр (имя + hp + ac).
func HandleSpawnMonster(ctx handlers.Context, p api.SpawnPayload) (handlers.Result, error) {
	var preset bestiary.Preset
	if p.Preset != "" {
		var ok bool
		preset, ok = bestiary.Presets[p.Preset]
		if !ok {
			return handlers.EmptyResult(), fmt.Errorf("unknown monster preset: %s", p.Preset)
		}
	} else {
		preset = bestiary.Custom(p.Name, p.HP, p.AC)
	}

	var monsters []domain.Monster
	if ctx.State.Combat != nil {
		monsters = ctx.State.Combat.Monsters
	}

	name := systems.SpawnName(preset.Name, monsters)
	pos := systems.FindOpenPosition(ctx.State.Party, monsters)
	monster := preset.Spawn(name, pos)

	return handlers.Result{
		Ops:     []systems.Op{systems.AddMonster{Monster: monster}},
		Msg:     fmt.Sprintf("%s spawned at (%d,%d)", name, pos.X, pos.Y),
		MsgType: "COMBAT",
	}, nil
}

// HandleRemoveMonster убирает монстра с карты.
func HandleRemoveMonster(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops:     []systems.Op{systems.RemoveMonster{Name: p.Name}},
		Msg:     fmt.Sprintf("%s removed", p.Name),
		MsgType: "COMBAT",
	}, nil
}

// HandleDamageMonster наносит урон. Кламп и авто-смерть - в редьюсере.
func HandleDamageMonster(ctx handlers.Context, p api.AmountPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops:     []systems.Op{systems.DamageMonster{Name: p.Name, Amount: p.Amount}},
		Msg:     fmt.Sprintf("%s takes %d damage", p.Name, p.Amount),
		MsgType: "COMBAT",
	}, nil
}

// HandleHealMonster лечит монстра (кламп в максимум - в редьюсере).
func HandleHealMonster(ctx handlers.Context, p api.AmountPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops:     []systems.Op{systems.HealMonster{Name: p.Name, Amount: p.Amount}},
		Msg:     fmt.Sprintf("%s heals %d", p.Name, p.Amount),
		MsgType: "COMBAT",
	}, nil
}
