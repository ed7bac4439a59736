package actions

import (
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
)

// HandleMoveToken переставляет токен персонажа партии.
// Коммит позиции атомарный: промежуточные координаты перетаскивания
// клиент держит у себя и присылает только отпускание.
func HandleMoveToken(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.MoveCharacter{Name: p.Name, Pos: p.Position}},
	}, nil
}

// HandleMoveMonster переставляет токен монстра.
func HandleMoveMonster(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.MoveMonster{Name: p.Name, Pos: p.Position}},
	}, nil
}
