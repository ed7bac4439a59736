package handlers

import (
	"encoding/json"

	"tabletop-server/internal/agent"
	"tabletop-server/internal/domain"
	"tabletop-server/internal/systems"
)

// Context передает хендлеру снимок состояния и зависимости движка.
// Состояние передается по значению: хендлер НЕ мутирует его напрямую,
// он возвращает операции редьюсера в Result.
type Context struct {
	State    domain.GameState
	Detector *systems.SceneChangeDetector
	Agent    *agent.Client

	// Enqueue кладет внутреннюю команду в канал цикла движка.
	// Используется асинхронными эффектами для повторного входа.
	Enqueue func(domain.InternalCommand)
}

// Result - результат выполнения команды.
// Хендлер НЕ применяет операции и не пишет логи сам, он возвращает данные.
type Result struct {
	// Ops операции редьюсера, применяются движком по порядку.
	Ops []systems.Op

	// Msg текст для серверного лога (не для игрового журнала).
	Msg     string
	MsgType string // INFO, COMBAT, ERROR

	// Async эффект, который движок запустит в отдельной горутине
	// ПОСЛЕ применения Ops (сетевой вызов нарративного движка).
	Async func()
}

// HandlerFunc - это контракт для любой команды (DM_INPUT, SPAWN_MONSTER, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
