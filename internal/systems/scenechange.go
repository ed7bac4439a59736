package systems

import (
	"strings"
	"sync"
	"time"

	"tabletop-server/internal/domain"
	"tabletop-server/pkg/terrain"
)

// Детектор смены сцены. Машина с двумя состояниями:
// idle (предложений нет) и pending (предложение ждёт подтверждения).
// Применение сцены всегда требует явного согласия пользователя -
// детектор только предлагает.

// transitionPhrases - фразы-переходы в нарративе.
// Регистронезависимый поиск подстроки, порядок не важен.
var transitionPhrases = []string{
	"you arrive at", "you enter", "you step into", "you find yourself",
	"you walk into", "you push open", "you open the door", "the scene changes",
	"you emerge into", "you descend into", "you ascend to", "leads you to",
	"you cross into", "you make your way to", "you travel to", "you reach",
	"before you lies", "around you is", "opens up to", "the door opens",
	"stepping inside", "stepping outside", "outside the", "inside the",
	"you leave the", "exiting the", "entering the",
}

// detectTransition ищет фразу-переход и возвращает первое предложение,
// в котором она встретилась. Пустая строка - перехода нет.
func detectTransition(narrative string) string {
	lower := strings.ToLower(narrative)
	found := false
	for _, phrase := range transitionPhrases {
		if strings.Contains(lower, phrase) {
			found = true
			break
		}
	}
	if !found {
		return ""
	}

	sentences := strings.FieldsFunc(narrative, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, sentence := range sentences {
		sl := strings.ToLower(sentence)
		for _, phrase := range transitionPhrases {
			if strings.Contains(sl, phrase) {
				return strings.TrimSpace(sentence)
			}
		}
	}
	return ""
}

// SceneSuggestion - предложенная смена сцены.
type SceneSuggestion struct {
	Description string `json:"description"`
	MapID       string `json:"mapId"`
	MapLabel    string `json:"mapLabel"`

	// gen - поколение предложения. Нужен, чтобы просроченный таймер
	// не сбил более новое предложение.
	gen uint64
}

// Gen возвращает поколение предложения (для команды таймаута).
func (s SceneSuggestion) Gen() uint64 { return s.gen }

// DefaultSuggestionTTL - сколько предложение живёт без реакции пользователя.
const DefaultSuggestionTTL = 30 * time.Second

// SceneChangeDetector хранит pending-предложение и дедуп обработанных
// нарративов. Потокобезопасен: таймер стреляет не из цикла движка.
type SceneChangeDetector struct {
	mu        sync.Mutex
	pending   *SceneSuggestion
	processed map[string]bool
	timer     *time.Timer
	gen       uint64

	ttl      time.Duration
	onExpire func(gen uint64)
}

// NewSceneChangeDetector создает детектор.
// onExpire вызывается из горутины таймера по истечении ttl; ожидается,
// что вызывающий переправит его в цикл движка командой SCENE_TIMEOUT.
func NewSceneChangeDetector(ttl time.Duration, onExpire func(gen uint64)) *SceneChangeDetector {
	if ttl <= 0 {
		ttl = DefaultSuggestionTTL
	}
	return &SceneChangeDetector{
		processed: make(map[string]bool),
		ttl:       ttl,
		onExpire:  onExpire,
	}
}

// dedupKey - первые 100 символов нарратива.
func dedupKey(narrative string) string {
	runes := []rune(narrative)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return string(runes)
}

// CheckNarrative проверяет нарратив на смену сцены.
// explicitHint - явный флаг от нарративного движка (sceneChange),
// он побеждает эвристику по фразам. currentMapID - запасной вариант,
// когда текст не классифицировался ни в одну категорию.
// Возвращает новое предложение либо nil (осталось idle).
// Идемпотентен: повторная доставка того же нарратива игнорируется.
func (d *SceneChangeDetector) CheckNarrative(narrative, explicitHint, currentMapID string) *SceneSuggestion {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := dedupKey(narrative)
	if d.processed[key] {
		return nil
	}
	d.processed[key] = true

	sceneText := explicitHint
	if sceneText == "" {
		sceneText = detectTransition(narrative)
	}
	if sceneText == "" {
		return nil
	}

	fullContext := narrative
	if explicitHint != "" {
		fullContext = explicitHint + " " + narrative
	}
	mapID, ok := terrain.DetectMapID(fullContext)
	if !ok {
		mapID = currentMapID
	}

	d.gen++
	d.pending = &SceneSuggestion{
		Description: sceneText,
		MapID:       mapID,
		MapLabel:    terrain.MapLabel(mapID),
		gen:         d.gen,
	}
	d.resetTimer(d.gen)

	out := *d.pending
	return &out
}

func (d *SceneChangeDetector) resetTimer(gen uint64) {
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.onExpire == nil {
		return
	}
	d.timer = time.AfterFunc(d.ttl, func() {
		d.onExpire(gen)
	})
}

// Pending возвращает копию текущего предложения либо nil.
func (d *SceneChangeDetector) Pending() *SceneSuggestion {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil {
		return nil
	}
	out := *d.pending
	return &out
}

// Accept забирает предложение для применения и переводит детектор в idle.
// Само применение (замена сцены, синтез террейна, лог) - на вызывающем.
func (d *SceneChangeDetector) Accept() *SceneSuggestion {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.pending
	d.clearLocked()
	return out
}

// Dismiss отклоняет предложение без применения.
func (d *SceneChangeDetector) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearLocked()
}

// Expire обрабатывает таймаут. Сбрасывает pending только если
// поколение совпадает: новое предложение старый таймер не трогает.
func (d *SceneChangeDetector) Expire(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil || d.pending.gen != gen {
		return false
	}
	d.clearLocked()
	return true
}

func (d *SceneChangeDetector) clearLocked() {
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// ApplySuggestion собирает новую сцену из принятого предложения:
// описание из предложения, карта по распознанной категории,
// террейн регенерируется синтезатором.
func ApplySuggestion(s SceneSuggestion) domain.Scene {
	return domain.Scene{
		Description: s.Description,
		MapID:       s.MapID,
		Terrain:     terrain.Synthesize(s.Description),
	}
}
