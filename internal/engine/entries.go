package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tabletop-server/internal/domain"
)

// Фабрики системных записей журнала, создаваемых самим движком.

func systemEntry(content string) domain.NarrativeEntry {
	return domain.NarrativeEntry{
		ID:        uuid.NewString(),
		Type:      domain.EntrySystem,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func rollEntry(roll domain.DiceRoll) domain.NarrativeEntry {
	entry := systemEntry(fmt.Sprintf("%s: %s = %d", roll.Purpose, roll.Expression, roll.Total))
	entry.Rolls = []domain.DiceRoll{roll}
	return entry
}
