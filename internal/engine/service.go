package engine

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tabletop-server/internal/agent"
	"tabletop-server/internal/domain"
	"tabletop-server/internal/engine/handlers"
	"tabletop-server/internal/engine/handlers/actions"
	"tabletop-server/internal/infrastructure/storage"
	"tabletop-server/internal/network"
	"tabletop-server/internal/systems"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/logger"
)

// Service владеет состоянием сессии. Все мутации проходят через один
// цикл (RunLoop): команда -> хендлер -> операции редьюсера -> новое
// состояние -> рассылка снимка. Сетевые вызовы нарративного движка
// уходят в горутины и возвращаются в цикл внутренними командами.
type Service struct {
	State domain.GameState

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster
	Agent       *agent.Client
	Store       *storage.SessionStore

	detector *systems.SceneChangeDetector
	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry

	// Последний разосланный снимок, для debug-эндпоинтов.
	// Единственное состояние, читаемое вне цикла.
	snapMu   sync.RWMutex
	snapshot api.ServerResponse
}

func NewService(cfg Config) *Service {
	s := &Service{
		State:       domain.NewGameState(),
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		Agent:       agent.NewClient(cfg.WebhookURL),
		Store:       storage.NewSessionStore(cfg.SaveDir),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		log:         logger.Component("engine"),
	}

	// Таймер детектора стреляет из своей горутины: возвращаем его
	// в цикл внутренней командой, чтобы не трогать состояние извне
	s.detector = systems.NewSceneChangeDetector(cfg.ScenePromptTimeout, func(gen uint64) {
		s.enqueue(domain.InternalCommand{Action: domain.ActionSceneTimeout, Data: gen})
	})

	s.registerHandlers()
	return s
}

func (s *Service) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionGenerateParty] = handlers.WithPayload(actions.HandleGenerateParty)
	s.handlers[domain.ActionDMInput] = handlers.WithPayload(actions.HandleDMInput)
	s.handlers[domain.ActionMoveToken] = handlers.WithPayload(actions.HandleMoveToken)
	s.handlers[domain.ActionMoveMonster] = handlers.WithPayload(actions.HandleMoveMonster)
	s.handlers[domain.ActionSpawnMonster] = handlers.WithPayload(actions.HandleSpawnMonster)
	s.handlers[domain.ActionRemoveMonster] = handlers.WithPayload(actions.HandleRemoveMonster)
	s.handlers[domain.ActionDamageMonster] = handlers.WithPayload(actions.HandleDamageMonster)
	s.handlers[domain.ActionHealMonster] = handlers.WithPayload(actions.HandleHealMonster)
	s.handlers[domain.ActionSetScene] = handlers.WithPayload(actions.HandleSetScene)
	s.handlers[domain.ActionPlaceTerrain] = handlers.WithPayload(actions.HandlePlaceTerrain)
	s.handlers[domain.ActionRemoveTerrain] = handlers.WithPayload(actions.HandleRemoveTerrain)
	s.handlers[domain.ActionClearTerrain] = handlers.WithEmptyPayload(actions.HandleClearTerrain)
	s.handlers[domain.ActionTerrainEdit] = handlers.WithPayload(actions.HandleTerrainEdit)
	s.handlers[domain.ActionSelectTerrain] = handlers.WithPayload(actions.HandleSelectTerrain)
	s.handlers[domain.ActionToggleAudio] = handlers.WithEmptyPayload(actions.HandleToggleAudio)
	s.handlers[domain.ActionAcceptScene] = handlers.WithEmptyPayload(actions.HandleAcceptScene)
	s.handlers[domain.ActionDismissScene] = handlers.WithEmptyPayload(actions.HandleDismissScene)
	s.handlers[domain.ActionRollDice] = handlers.WithPayload(actions.HandleRollDice)
	s.handlers[domain.ActionReset] = handlers.WithEmptyPayload(actions.HandleReset)
}

// Start восстанавливает сохраненную сессию и запускает цикл.
func (s *Service) Start() {
	if blob, ok := s.Store.Load(); ok {
		s.State = systems.Reduce(s.State, systems.SetParty{
			SessionID:        blob.SessionID,
			Party:            blob.Party,
			Scene:            blob.Scene,
			VoiceAssignments: blob.VoiceAssignments,
		})
		s.log.WithFields(logrus.Fields{
			"session_id": blob.SessionID,
			"party_size": len(blob.Party),
		}).Info("Restored saved session")
	}

	s.publish()
	go s.RunLoop()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// ClientID нужен, чтобы вернуть ошибку отклонённой команды её автору.
func (s *Service) ProcessCommand(clientID string, externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		s.log.WithField("action", externalCmd.Action).Warn("Unknown action")
		return
	}

	s.enqueue(domain.InternalCommand{
		Action:   actionType,
		Payload:  externalCmd.Payload,
		ClientID: clientID,
	})
}

func (s *Service) enqueue(cmd domain.InternalCommand) {
	s.CommandChan <- cmd
}

// --- GAME LOOP ---

func (s *Service) RunLoop() {
	s.log.Info("Session loop started")

	for cmd := range s.CommandChan {
		s.execute(cmd)
	}
}

// execute выполняет одну команду и рассылает снимок.
func (s *Service) execute(cmd domain.InternalCommand) {
	switch cmd.Action {
	case domain.ActionApplyNarrative:
		s.applyAsyncResult(cmd.Data)
		s.publish()
		return

	case domain.ActionSceneTimeout:
		gen, ok := cmd.Data.(uint64)
		if ok && s.detector.Expire(gen) {
			s.log.Debug("Scene suggestion expired")
			s.publish()
		}
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.log.WithField("action", cmd.Action.String()).Warn("No handler registered")
		return
	}

	ctx := handlers.Context{
		State:    s.State,
		Detector: s.detector,
		Agent:    s.Agent,
		Enqueue:  s.enqueue,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"action": cmd.Action.String(),
		}).WithError(err).Warn("Command rejected")
		s.reject(cmd.ClientID, err.Error())
		return
	}

	s.State = systems.ReduceAll(s.State, result.Ops...)

	if cmd.Action == domain.ActionReset {
		s.Store.Clear()
	}

	if result.Msg != "" {
		s.log.WithField("type", result.MsgType).Info(result.Msg)
	}
	if result.Async != nil {
		go result.Async()
	}

	s.publish()
}

// applyAsyncResult обрабатывает вернувшийся из горутины результат
// сетевого вызова. Ошибка движка не трогает игровое состояние -
// только снимает флаг загрузки и оставляет системную запись.
func (s *Service) applyAsyncResult(data any) {
	switch v := data.(type) {
	case api.DmInputResponse:
		ops := agent.ResponseOps(s.State, v)
		ops = append(ops, systems.SetLoading{Loading: false})
		s.State = systems.ReduceAll(s.State, ops...)

		if sug := s.detector.CheckNarrative(v.Narrative, v.SceneChange, s.State.Scene.MapID); sug != nil {
			s.log.WithField("map_id", sug.MapID).Info("Scene change suggested")
		}

	case api.GeneratePartyResponse:
		sessionID := v.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		s.State = systems.ReduceAll(s.State,
			systems.SetParty{
				SessionID:        sessionID,
				Party:            v.Party,
				Scene:            v.Scene,
				VoiceAssignments: v.VoiceAssignments,
			},
			systems.SetLoading{Loading: false},
		)

		if err := s.Store.Save(storage.SessionBlob{
			SessionID:        sessionID,
			Party:            s.State.Party,
			Scene:            s.State.Scene,
			VoiceAssignments: s.State.VoiceAssignments,
		}); err != nil {
			s.log.WithError(err).Warn("Failed to persist session")
		}
		s.log.WithFields(logrus.Fields{
			"session_id": sessionID,
			"party_size": len(v.Party),
		}).Info("Session started")

	case api.RollDiceResponse:
		s.State = systems.Reduce(s.State, systems.AddNarrative{
			Entry: rollEntry(domain.DiceRoll(v)),
		})

	case error:
		s.State = systems.ReduceAll(s.State,
			systems.SetLoading{Loading: false},
			systems.AddNarrative{Entry: systemEntry("Narrative engine error: " + v.Error())},
		)
		s.log.WithError(v).Error("Narrative engine call failed")

	default:
		s.log.Warn("Unexpected async result type")
	}
}

// publish рассылает полный снимок всем подключенным клиентам.
func (s *Service) publish() {
	resp := s.buildResponse("")

	s.snapMu.Lock()
	s.snapshot = resp
	s.snapMu.Unlock()

	s.Hub.Broadcast(resp)
}

// reject возвращает ошибку отклонённой команды её автору. Состояние
// не изменилось, остальным клиентам слать нечего. Команда без автора
// (пустой clientID) получает широковещательный ответ.
func (s *Service) reject(clientID, errText string) {
	resp := s.buildResponse(errText)
	if clientID == "" {
		s.Hub.Broadcast(resp)
		return
	}
	s.Hub.SendTo(clientID, resp)
}

func (s *Service) buildResponse(errText string) api.ServerResponse {
	resp := api.ServerResponse{
		Type:  "UPDATE",
		State: s.State,
		Error: errText,
	}
	if sug := s.detector.Pending(); sug != nil {
		resp.SceneSuggestion = &api.SceneSuggestionView{
			Description: sug.Description,
			MapID:       sug.MapID,
			MapLabel:    sug.MapLabel,
		}
	}
	return resp
}

// Snapshot возвращает последний разосланный снимок (для debug-эндпоинтов).
func (s *Service) Snapshot() api.ServerResponse {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}
