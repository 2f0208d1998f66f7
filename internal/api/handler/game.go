package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mcoot/fastlane/internal/api/apierr"
	"github.com/mcoot/fastlane/internal/api/request"
	"github.com/mcoot/fastlane/internal/api/response"
	"github.com/mcoot/fastlane/internal/model"
	"github.com/mcoot/fastlane/internal/services/game"
	"github.com/mcoot/fastlane/internal/session"
)

// DefaultLogLimit is how many of the newest log entries a game response carries
const DefaultLogLimit = 20

// GameHandler handles game-related endpoints
type GameHandler struct {
	host *session.Host
}

// NewGameHandler creates a new game handler
func NewGameHandler(host *session.Host) *GameHandler {
	return &GameHandler{host: host}
}

// Get handles GET /api/v1/game
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	limit := DefaultLogLimit
	if raw := r.URL.Query().Get("log"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			WriteError(w, NewInvalidRequestError("log must be a non-negative integer"))
			return
		}
		limit = n
	}

	var resp response.Game
	err := h.host.Do(r.Context(), func(c *game.Controller) error {
		g := c.State()
		if g == nil {
			return model.ErrNoGameInProgress
		}
		resp = response.GameFromModel(g, limit)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// Create handles POST /api/v1/game
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	h.respond(w, r, http.StatusCreated, func(c *game.Controller) (*model.GameState, error) {
		return c.NewGame(game.Setup{PlayerNames: req.PlayerNames, Player2AI: req.Player2AI})
	})
}

// Restart handles POST /api/v1/game/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusCreated, func(c *game.Controller) (*model.GameState, error) {
		return c.Restart()
	})
}

// Act handles POST /api/v1/game/actions
func (h *GameHandler) Act(w http.ResponseWriter, r *http.Request) {
	var req request.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	action, err := model.ParseAction(model.ActionKind(req.Kind), req.Arg)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.perform(w, r, func(c *game.Controller) bool { return c.Perform(action) })
}

// EndTurn handles POST /api/v1/game/end-turn
func (h *GameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, func(c *game.Controller) bool { return c.EndTurn() })
}

// AcknowledgeSummary handles POST /api/v1/game/summary/ack
func (h *GameHandler) AcknowledgeSummary(w http.ResponseWriter, r *http.Request) {
	h.perform(w, r, func(c *game.Controller) bool { return c.AcknowledgeSummary() })
}

// Catalog handles GET /api/v1/catalog
func (h *GameHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	var resp response.Catalog
	err := h.host.Do(r.Context(), func(c *game.Controller) error {
		resp = response.CatalogFromModel(c.Catalog())
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, resp)
}

// perform runs a bool-returning controller action. A rejected action is
// reported with the message the game logged for it.
func (h *GameHandler) perform(w http.ResponseWriter, r *http.Request, fn func(c *game.Controller) bool) {
	h.respond(w, r, http.StatusOK, func(c *game.Controller) (*model.GameState, error) {
		g := c.State()
		if g == nil {
			return nil, model.ErrNoGameInProgress
		}
		if !fn(c) {
			return nil, apierr.NewActionRejectedError(lastError(g))
		}
		return g, nil
	})
}

func (h *GameHandler) respond(w http.ResponseWriter, r *http.Request, status int, fn func(c *game.Controller) (*model.GameState, error)) {
	var resp response.Game
	err := h.host.Do(r.Context(), func(c *game.Controller) error {
		g, err := fn(c)
		if err != nil {
			return err
		}
		resp = response.GameFromModel(g, DefaultLogLimit)
		return nil
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, status, resp)
}

func lastError(g *model.GameState) string {
	if len(g.Log) == 0 {
		return ""
	}
	last := g.Log[len(g.Log)-1]
	if last.Category != model.LogError {
		return ""
	}
	return last.Message
}

