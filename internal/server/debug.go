package server

import (
	"encoding/json"
	"net/http"

	"tabletop-server/internal/engine"
)

// DebugHandler предоставляет доступ к последнему снимку состояния.
// Читает только копию снимка, в цикл движка не лезет.
type DebugHandler struct {
	Service *engine.Service
}

func NewDebugHandler(s *engine.Service) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/state", h.handleState)
	mux.HandleFunc("/debug/combat", h.handleCombat)
	mux.HandleFunc("/debug/terrain", h.handleTerrain)
}

// /debug/state - полный снимок сессии
func (h *DebugHandler) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshot())
}

// /debug/combat - боевое состояние (null вне боя)
func (h *DebugHandler) handleCombat(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot()
	writeJSON(w, snap.State.Combat)
}

// /debug/terrain - расставленный террейн текущей сцены
func (h *DebugHandler) handleTerrain(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot()
	writeJSON(w, snap.State.Scene.Terrain)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой результат отдаем как [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
