package actions

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
)

// HandleDMInput принимает реплику мастера: пишет её в журнал, поднимает
// флаг загрузки и уходит в нарративный движок асинхронно. Ответ движка
// вернется в цикл внутренней командой APPLY_NARRATIVE.
func HandleDMInput(ctx handlers.Context, p api.TextPayload) (handlers.Result, error) {
	if ctx.State.IsLoading {
		// Двойная отправка, пока движок думает
		return handlers.EmptyResult(), errors.New("narrative engine request already in flight")
	}

	entry := domain.NarrativeEntry{
		ID:        uuid.NewString(),
		Type:      domain.EntryDMInput,
		Content:   p.Text,
		Timestamp: time.Now(),
	}

	req := buildDMRequest(ctx.State, p.Text)
	agentClient := ctx.Agent
	enqueue := ctx.Enqueue

	return handlers.Result{
		Ops: []systems.Op{
			systems.AddNarrative{Entry: entry},
			systems.SetLoading{Loading: true},
		},
		Msg:     "DM input forwarded to narrative engine",
		MsgType: "INFO",
		Async: func() {
			resp, err := agentClient.DMInput(req)
			if err != nil {
				enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: err})
				return
			}
			enqueue(domain.InternalCommand{Action: domain.ActionApplyNarrative, Data: *resp})
		},
	}, nil
}

// buildDMRequest собирает контекст для движка из снимка состояния.
func buildDMRequest(state domain.GameState, message string) api.DmInputRequest {
	positions := make(map[string]domain.Position, len(state.Party))
	for _, c := range state.Party {
		positions[c.Name] = c.Position
	}

	return api.DmInputRequest{
		SessionID:      state.SessionID,
		Message:        message,
		TokenPositions: positions,
		GameState: &api.GameStateView{
			Mode:   state.Mode,
			Party:  state.Party,
			Scene:  state.Scene,
			Combat: state.Combat,
		},
	}
}
