package agent

import (
	"time"

	"github.com/google/uuid"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
)

// Применение ответа нарративного движка к состоянию.
// Каждая опциональная категория обновлений независима: отсутствующие
// поля пропускаются, ссылки на несуществующих персонажей и монстров
// игнорируются (их могли удалить, пока движок думал).

// ResponseOps переводит ответ dm_input в операции редьюсера.
// Поле sceneChange сюда не входит: его обрабатывает детектор смены сцены.
func ResponseOps(state domain.GameState, resp api.DmInputResponse) []systems.Op {
	var ops []systems.Op

	if entries := narrativeEntries(state, resp); len(entries) > 0 {
		ops = append(ops, systems.AddNarratives{Entries: entries})
	}

	if resp.CombatState != nil {
		ops = append(ops, systems.SetCombat{Combat: resp.CombatState})
	} else if resp.Mode != "" && resp.Mode != state.Mode {
		if resp.Mode == domain.ModeExploration && state.Combat != nil {
			// Движок завершил бой: чистим и боевое состояние
			ops = append(ops, systems.SetCombat{Combat: nil})
		} else {
			ops = append(ops, systems.SetMode{Mode: resp.Mode})
		}
	}

	for name, patch := range resp.PartyUpdates {
		if ch, ok := findCharacter(state.Party, name); ok {
			ops = append(ops, systems.UpdateCharacter{Character: mergeCharacter(ch, patch)})
		}
	}

	ops = append(ops, monsterOps(state, resp.MonsterUpdates)...)

	if resp.MapID != "" && resp.MapID != state.Scene.MapID {
		// Смена только карты: описание и расставленный террейн сохраняются
		scene := state.Scene
		scene.MapID = resp.MapID
		ops = append(ops, systems.SetScene{Scene: scene})
	}

	return ops
}

// narrativeEntries собирает записи журнала: основной нарратив плюс
// реплики NPC. Цвет реплики берется у одноименного персонажа партии.
func narrativeEntries(state domain.GameState, resp api.DmInputResponse) []domain.NarrativeEntry {
	now := time.Now()
	var entries []domain.NarrativeEntry

	if resp.Narrative != "" {
		entries = append(entries, domain.NarrativeEntry{
			ID:        uuid.NewString(),
			Type:      domain.EntryNarration,
			Content:   resp.Narrative,
			Timestamp: now,
		})
	}

	for _, npc := range resp.NpcActions {
		if npc.Dialogue == "" && len(npc.Rolls) == 0 {
			continue
		}
		entry := domain.NarrativeEntry{
			ID:        uuid.NewString(),
			Type:      domain.EntryNPCDialogue,
			Content:   npc.Dialogue,
			NPCName:   npc.NPCName,
			Rolls:     npc.Rolls,
			Timestamp: now,
		}
		if ch, ok := findCharacter(state.Party, npc.NPCName); ok {
			entry.NPCColor = ch.Color
		}
		entries = append(entries, entry)
	}

	return entries
}

// monsterOps переводит обновления монстров в операции урона/лечения,
// чтобы сработали кламп и авто-смерть. Индекс указывает на монстра
// в списке боя на момент ответа; вышедший за границы игнорируется.
func monsterOps(state domain.GameState, updates []api.MonsterUpdate) []systems.Op {
	if state.Combat == nil || len(updates) == 0 {
		return nil
	}

	var ops []systems.Op
	for _, u := range updates {
		if u.Index < 0 || u.Index >= len(state.Combat.Monsters) {
			continue
		}
		name := state.Combat.Monsters[u.Index].Name
		if u.Damage != nil && *u.Damage > 0 {
			ops = append(ops, systems.DamageMonster{Name: name, Amount: *u.Damage})
		}
		if u.Heal != nil && *u.Heal > 0 {
			ops = append(ops, systems.HealMonster{Name: name, Amount: *u.Heal})
		}
	}
	return ops
}

func findCharacter(party []domain.Character, name string) (domain.Character, bool) {
	for _, c := range party {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Character{}, false
}

// mergeCharacter накладывает частичное обновление на персонажа.
func mergeCharacter(c domain.Character, patch api.CharacterPatch) domain.Character {
	if patch.HP != nil {
		hp := *patch.HP
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current < 0 {
			hp.Current = 0
		}
		c.HP = hp
	}
	if patch.Position != nil {
		c.Position = patch.Position.Clamp()
	}
	if patch.AC != nil {
		c.AC = *patch.AC
	}
	if patch.SpellSlots != nil {
		c.SpellSlots = patch.SpellSlots
	}
	if patch.Inventory != nil {
		c.Inventory = patch.Inventory
	}
	return c
}
