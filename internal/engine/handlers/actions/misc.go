package actions

import (
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
)

// HandleToggleAudio переключает озвучку реплик.
func HandleToggleAudio(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Ops: []systems.Op{systems.ToggleAudio{}},
	}, nil
}

// HandleReset возвращает сессию к начальному состоянию.
// Партия и журнал пропадают, идентификатор сессии остается.
func HandleReset(ctx handlers.Context) (handlers.Result, error) {
	ctx.Detector.Dismiss()
	return handlers.Result{
		Ops:     []systems.Op{systems.Reset{}},
		Msg:     "Session reset",
		MsgType: "INFO",
	}, nil
}
