package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tabletop-server/internal/domain"
	"tabletop-server/pkg/logger"
)

// Персистентность сессии: один JSON-блоб под фиксированным именем.
// Пишется при старте сессии, читается один раз при загрузке процесса.
// Журнал и бой не сохраняются - только состав партии и сцена.

const sessionFile = "session.json"

// SessionBlob - сохраняемая часть сессии.
type SessionBlob struct {
	SessionID        string             `json:"sessionId"`
	Party            []domain.Character `json:"party"`
	Scene            domain.Scene       `json:"scene"`
	VoiceAssignments map[string]string  `json:"voiceAssignments,omitempty"`
	CampaignMode     string             `json:"campaignMode,omitempty"`
	EpisodeNumber    int                `json:"episodeNumber,omitempty"`
}

type SessionStore struct {
	SaveDir string
}

func NewSessionStore(dir string) *SessionStore {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &SessionStore{SaveDir: dir}
}

func (s *SessionStore) path() string {
	return filepath.Join(s.SaveDir, sessionFile)
}

// Save записывает блоб сессии, атомарно через временный файл.
func (s *SessionStore) Save(blob SessionBlob) error {
	raw, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Load читает сохраненную сессию. Отсутствие файла и битый JSON
// равнозначны: сессии нет, начинаем с настройки. Падать здесь нельзя.
func (s *SessionStore) Load() (SessionBlob, bool) {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Component("storage").WithError(err).Warn("Failed to read session blob")
		}
		return SessionBlob{}, false
	}

	var blob SessionBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		logger.Component("storage").WithError(err).Warn("Malformed session blob, starting fresh")
		return SessionBlob{}, false
	}
	if blob.SessionID == "" || len(blob.Party) == 0 {
		return SessionBlob{}, false
	}
	return blob, true
}

// Clear удаляет сохраненную сессию (команда RESET).
func (s *SessionStore) Clear() {
	_ = os.Remove(s.path())
}
