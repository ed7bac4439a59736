package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/pkg/api"
)

// HandleRollDice отправляет бросок нарративному движку.
// Сервер кубики не считает: результат вернется внутренней командой
// APPLY_NARRATIVE и ляжет в журнал системной записью.
func HandleRollDice(ctx handlers.Context, p api.RollPayload) (handlers.Result, error) {
	agentClient := ctx.Agent
	enqueue := ctx.Enqueue

	return handlers.Result{
		Msg:     "Dice roll forwarded to narrative engine",
		MsgType: "INFO",
		Async: func() {
			resp, err := agentClient.RollDice(p.Expression, p.Purpose)
			if err != nil {
				enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: err})
				return
			}
			enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: *resp})
		},
	}, nil
}
