package domain

import "encoding/json"

// InternalCommand - оптимизированная команда для цикла движка.
// Использует ActionType вместо string.
type InternalCommand struct {
	Action  ActionType      // Число! Быстро и безопасно.
	Payload json.RawMessage // Сырые данные клиента (парсятся хендлером)

	// ClientID - автор команды. Ошибка отклонённой команды уходит
	// только ему; у внутренних команд поле пустое.
	ClientID string

	// Data - полезная нагрузка внутренних команд (APPLY_NARRATIVE,
	// SCENE_TIMEOUT). Заполняется только самим движком, с провода
	// сюда ничего не попадает.
	Data any
}
