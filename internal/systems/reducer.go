package systems

import "tabletop-server/internal/domain"

// Редьюсер - единственная точка мутации GameState.
// Чистая функция: принимает состояние по значению и возвращает новое,
// никогда не пишет в слайсы/мапы входного состояния (copy-on-write).
// Это позволяет держать снапшоты для рассылки без блокировок.

// Reduce применяет одну операцию к состоянию и возвращает результат.
// Неизвестные и неприменимые операции (урон несуществующему монстру,
// перемещение вне боя) возвращают состояние без изменений.
func Reduce(state domain.GameState, op Op) domain.GameState {
	switch a := op.(type) {

	case SetParty:
		party := copyParty(a.Party)
		for i := range party {
			if party[i].Color == "" {
				party[i].Color = domain.PartyColor(i)
			}
		}
		state.SessionID = a.SessionID
		state.Party = party
		state.Scene = a.Scene
		state.VoiceAssignments = a.VoiceAssignments
		state.Mode = domain.ModeExploration

	case SetMode:
		state.Mode = a.Mode

	case AddNarrative:
		log := make([]domain.NarrativeEntry, len(state.NarrativeLog), len(state.NarrativeLog)+1)
		copy(log, state.NarrativeLog)
		state.NarrativeLog = append(log, a.Entry)

	case AddNarratives:
		log := make([]domain.NarrativeEntry, len(state.NarrativeLog), len(state.NarrativeLog)+len(a.Entries))
		copy(log, state.NarrativeLog)
		state.NarrativeLog = append(log, a.Entries...)

	case UpdateCharacter:
		party := copyParty(state.Party)
		for i := range party {
			if party[i].Name == a.Character.Name {
				party[i] = a.Character
				state.Party = party
				break
			}
		}

	case MoveCharacter:
		pos := a.Pos.Clamp()
		party := copyParty(state.Party)
		for i := range party {
			if party[i].Name == a.Name {
				party[i].Position = pos
				state.Party = party
				break
			}
		}

	case SetCombat:
		if a.Combat == nil {
			state.Combat = nil
			state.Mode = domain.ModeExploration
		} else {
			combat := copyCombat(*a.Combat)
			state.Combat = &combat
			state.Mode = domain.ModeCombat
		}

	case SetScene:
		state.Scene = a.Scene

	case AddMonster:
		var combat domain.CombatState
		if state.Combat == nil {
			combat = domain.CombatState{Round: 1}
		} else {
			combat = copyCombat(*state.Combat)
		}
		combat.Monsters = append(combat.Monsters, a.Monster)
		state.Combat = &combat
		state.Mode = domain.ModeCombat

	case RemoveMonster:
		state = removeMonster(state, a.Name)

	case DamageMonster:
		if state.Combat == nil || a.Amount <= 0 {
			break
		}
		combat := copyCombat(*state.Combat)
		for i := range combat.Monsters {
			if combat.Monsters[i].Name != a.Name {
				continue
			}
			hp := combat.Monsters[i].HP.Current - a.Amount
			if hp < 0 {
				hp = 0
			}
			combat.Monsters[i].HP.Current = hp
			state.Combat = &combat
			if hp == 0 {
				// Смерть: монстр покидает карту и порядок ходов
				state = removeMonster(state, a.Name)
			}
			break
		}

	case HealMonster:
		if state.Combat == nil || a.Amount <= 0 {
			break
		}
		combat := copyCombat(*state.Combat)
		for i := range combat.Monsters {
			if combat.Monsters[i].Name != a.Name {
				continue
			}
			hp := combat.Monsters[i].HP.Current + a.Amount
			if hp > combat.Monsters[i].HP.Max {
				hp = combat.Monsters[i].HP.Max
			}
			combat.Monsters[i].HP.Current = hp
			state.Combat = &combat
			break
		}

	case MoveMonster:
		if state.Combat == nil {
			break
		}
		pos := a.Pos.Clamp()
		combat := copyCombat(*state.Combat)
		for i := range combat.Monsters {
			if combat.Monsters[i].Name == a.Name {
				combat.Monsters[i].Position = pos
				state.Combat = &combat
				break
			}
		}

	case PlaceTerrain:
		if !a.Feature.Position.InBounds() {
			break
		}
		// Upsert: не более одной фичи на клетку
		terrain := make([]domain.TerrainFeature, 0, len(state.Scene.Terrain)+1)
		replaced := false
		for _, f := range state.Scene.Terrain {
			if f.Position == a.Feature.Position {
				terrain = append(terrain, a.Feature)
				replaced = true
				continue
			}
			terrain = append(terrain, f)
		}
		if !replaced {
			terrain = append(terrain, a.Feature)
		}
		state.Scene.Terrain = terrain

	case RemoveTerrain:
		terrain := make([]domain.TerrainFeature, 0, len(state.Scene.Terrain))
		for _, f := range state.Scene.Terrain {
			if f.Position != a.Pos {
				terrain = append(terrain, f)
			}
		}
		state.Scene.Terrain = terrain

	case ClearTerrain:
		state.Scene.Terrain = nil

	case SetLoading:
		state.IsLoading = a.Loading

	case ToggleAudio:
		state.AudioEnabled = !state.AudioEnabled

	case SetVoiceAssignments:
		assignments := make(map[string]string, len(a.Assignments))
		for k, v := range a.Assignments {
			assignments[k] = v
		}
		state.VoiceAssignments = assignments

	case SetTerrainEditMode:
		state.TerrainEditMode = a.Enabled
		if !a.Enabled {
			state.SelectedTerrainType = ""
		}

	case SetSelectedTerrain:
		state.SelectedTerrainType = a.Type

	case Reset:
		fresh := domain.NewGameState()
		fresh.SessionID = state.SessionID
		state = fresh
	}

	return state
}

// ReduceAll применяет операции по порядку.
func ReduceAll(state domain.GameState, ops ...Op) domain.GameState {
	for _, op := range ops {
		state = Reduce(state, op)
	}
	return state
}

// removeMonster убирает монстра с карты, вычищает его из порядка ходов
// и, если монстров не осталось, завершает бой (возврат в exploration).
func removeMonster(state domain.GameState, name string) domain.GameState {
	if state.Combat == nil {
		return state
	}

	combat := copyCombat(*state.Combat)

	monsters := combat.Monsters[:0:0]
	for _, m := range combat.Monsters {
		if m.Name != name {
			monsters = append(monsters, m)
		}
	}
	combat.Monsters = monsters

	// Из инициативы выбывают только не-партийные записи с этим именем
	order := combat.InitiativeOrder[:0:0]
	removedIdx := -1
	for i, e := range combat.InitiativeOrder {
		if !e.IsParty && e.Name == name {
			removedIdx = i
			continue
		}
		order = append(order, e)
	}
	if removedIdx >= 0 && removedIdx < combat.CurrentTurn {
		combat.CurrentTurn--
	}
	if len(order) > 0 && combat.CurrentTurn >= len(order) {
		combat.CurrentTurn = 0
		combat.Round++
	}
	combat.InitiativeOrder = order

	if len(combat.Monsters) == 0 {
		state.Combat = nil
		state.Mode = domain.ModeExploration
		return state
	}

	state.Combat = &combat
	return state
}

func copyParty(party []domain.Character) []domain.Character {
	out := make([]domain.Character, len(party))
	copy(out, party)
	return out
}

func copyCombat(c domain.CombatState) domain.CombatState {
	monsters := make([]domain.Monster, len(c.Monsters))
	copy(monsters, c.Monsters)
	order := make([]domain.InitiativeEntry, len(c.InitiativeOrder))
	copy(order, c.InitiativeOrder)
	c.Monsters = monsters
	c.InitiativeOrder = order
	return c
}
