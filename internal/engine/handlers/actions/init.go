package actions

import (
	"tabletop-server/internal/engine/handlers"
)

// HandleInit ничего не меняет: свежий снимок состояния клиент получит
// в рассылке после любой команды, включая эту.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Client requested initial state", MsgType: "INFO"}, nil
}
