package api

import (
	"errors"

	"tabletop-server/pkg/terrain"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p TextPayload) Validate() error {
	if p.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

func (p MovePayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if !p.Position.InBounds() {
		return errors.New("position is out of grid bounds")
	}
	return nil
}

func (p SpawnPayload) Validate() error {
	if p.Preset == "" && p.Name == "" {
		return errors.New("either preset or name is required")
	}
	return nil
}

func (p TargetPayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func (p AmountPayload) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (p ScenePayload) Validate() error {
	if p.Description == "" {
		return errors.New("description is required")
	}
	return nil
}

func (p TerrainPayload) Validate() error {
	if _, ok := terrain.Catalog[p.Type]; !ok {
		return errors.New("unknown terrain type")
	}
	if !p.Position.InBounds() {
		return errors.New("position is out of grid bounds")
	}
	return nil
}

func (p PositionPayload) Validate() error {
	if !p.Position.InBounds() {
		return errors.New("position is out of grid bounds")
	}
	return nil
}

func (p SelectTerrainPayload) Validate() error {
	if _, ok := terrain.Catalog[p.Type]; !ok {
		return errors.New("unknown terrain type")
	}
	return nil
}

func (p RollPayload) Validate() error {
	if p.Expression == "" {
		return errors.New("expression is required")
	}
	return nil
}
