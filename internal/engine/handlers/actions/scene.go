package actions

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/terrain"
)

// HandleSetScene - явная смена сцены мастером. Террейн регенерируется
// синтезатором по новому описанию; категория карты либо задана явно,
// либо определяется классификатором.
func HandleSetScene(ctx handlers.Context, p api.ScenePayload) (handlers.Result, error) {
	mapID := p.MapID
	if mapID == "" {
		if detected, ok := terrain.DetectMapID(p.Description); ok {
			mapID = detected
		} else {
			mapID = ctx.State.Scene.MapID
		}
	}

	scene := domain.Scene{
		Description: p.Description,
		MapID:       mapID,
		Terrain:     terrain.Synthesize(p.Description),
	}

	return handlers.Result{
		Ops:     []systems.Op{systems.SetScene{Scene: scene}},
		Msg:     fmt.Sprintf("Scene set to %q", terrain.MapLabel(mapID)),
		MsgType: "INFO",
	}, nil
}

// HandleAcceptScene применяет предложение детектора смены сцены.
// Без pending-предложения команда - безопасный no-op.
func HandleAcceptScene(ctx handlers.Context) (handlers.Result, error) {
	s := ctx.Detector.Accept()
	if s == nil {
		return handlers.EmptyResult(), nil
	}

	entry := domain.NarrativeEntry{
		ID:        uuid.NewString(),
		Type:      domain.EntrySystem,
		Content:   fmt.Sprintf("The scene shifts to %s.", s.MapLabel),
		Timestamp: time.Now(),
	}

	return handlers.Result{
		Ops: []systems.Op{
			systems.SetScene{Scene: systems.ApplySuggestion(*s)},
			systems.AddNarrative{Entry: entry},
		},
		Msg:     fmt.Sprintf("Scene change accepted: %s", s.MapID),
		MsgType: "INFO",
	}, nil
}

// HandleDismissScene отклоняет pending-предложение.
func HandleDismissScene(ctx handlers.Context) (handlers.Result, error) {
	ctx.Detector.Dismiss()
	return handlers.Result{Msg: "Scene change dismissed", MsgType: "INFO"}, nil
}
