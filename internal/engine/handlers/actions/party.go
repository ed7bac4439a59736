package actions

import (
	"errors"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
)

// HandleGenerateParty запрашивает у нарративного движка стартовую партию.
// Ответ вернется внутренней командой APPLY_NARRATIVE и станет SET_PARTY.
func HandleGenerateParty(ctx handlers.Context, p api.PartySizePayload) (handlers.Result, error) {
	if ctx.State.IsLoading {
		return handlers.EmptyResult(), errors.New("narrative engine request already in flight")
	}
	if ctx.State.Mode != domain.ModeSetup {
		return handlers.EmptyResult(), errors.New("party can only be generated during setup")
	}

	size := p.PartySize
	if size <= 0 {
		size = 4
	}

	agentClient := ctx.Agent
	enqueue := ctx.Enqueue

	return handlers.Result{
		Ops:     []systems.Op{systems.SetLoading{Loading: true}},
		Msg:     "Party generation requested",
		MsgType: "INFO",
		Async: func() {
			resp, err := agentClient.GenerateParty(size)
			if err != nil {
				enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: err})
				return
			}
			enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: *resp})
		},
	}, nil
}
