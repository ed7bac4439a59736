package actions

import (
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/terrain"
)

// Ручное редактирование террейна. Действует независимо от синтезатора:
// мастер может править любую сцену поверх сгенерированного.

func HandlePlaceTerrain(ctx handlers.Context, p api.TerrainPayload) (handlers.Result, error) {
	feature := terrain.NewFeature(p.Type, p.Position.X, p.Position.Y)
	return handlers.Result{
		Ops: []systems.Op{systems.PlaceTerrain{Feature: feature}},
	}, nil
}

func HandleRemoveTerrain(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.RemoveTerrain{Pos: p.Position}},
	}, nil
}

func HandleClearTerrain(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Ops:     []systems.Op{systems.ClearTerrain{}},
		Msg:     "Terrain cleared",
		MsgType: "INFO",
	}, nil
}

func HandleTerrainEdit(ctx handlers.Context, p api.EnabledPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.SetTerrainEditMode{Enabled: p.Enabled}},
	}, nil
}

func HandleSelectTerrain(ctx handlers.Context, p api.SelectTerrainPayload) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.SetSelectedTerrain{Type: p.Type}},
	}, nil
}
