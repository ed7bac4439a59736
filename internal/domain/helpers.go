package domain

// PartyColors - стабильные цвета токенов по слоту в партии.
// Порядок важен: цвет назначается по индексу персонажа при загрузке сессии.
var PartyColors = []string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#8B5CF6", // violet
}

// PartyColor возвращает цвет для слота партии (с циклом по списку).
func PartyColor(slot int) string {
	if slot < 0 {
		slot = 0
	}
	return PartyColors[slot%len(PartyColors)]
}
