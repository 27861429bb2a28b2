package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/IX-Erich/oregon-trail/internal/game"
)

type Handler struct {
	Store *Store
	KPI   *Recorder
	// Rules applies to every game created through this handler; nil means
	// the built-in tables.
	Rules *game.Rules
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api")
	api.GET("/meta", h.meta)
	api.POST("/games", h.createGame)
	api.GET("/games/:id", h.getGame)
	api.POST("/games/:id/actions", h.performAction)
	api.DELETE("/games/:id", h.deleteGame)

	s.GET("/ops/kpi", h.kpi)
}

type createRequest struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Difficulty string `json:"difficulty"`
	Seed       int64  `json:"seed"`
}

type actionRequest struct {
	Action     string `json:"action"`
	Pace       string `json:"pace,omitempty"`
	AmmoSpent  *int   `json:"ammo_spent,omitempty"`
	OfferIndex *int   `json:"offer_index,omitempty"`
}

type offerView struct {
	Index       int           `json:"index"`
	Item        game.ItemKind `json:"item"`
	Quantity    int           `json:"quantity"`
	Price       int           `json:"price"`
	Description string        `json:"description"`
}

type gameView struct {
	GameID           string         `json:"game_id"`
	Seed             int64          `json:"seed"`
	Outcome          string         `json:"outcome"`
	State            game.GameState `json:"state"`
	AvailableActions []game.Action  `json:"available_actions"`
	TradeOffers      []offerView    `json:"trade_offers"`
}

type actionResponse struct {
	gameView
	Messages []string `json:"messages"`
}

type metaResponse struct {
	Professions  []game.Profession `json:"professions"`
	Difficulties []game.Difficulty `json:"difficulties"`
	Paces        []game.Pace       `json:"paces"`
	Actions      []game.Action     `json:"actions"`
	TargetMiles  int               `json:"target_miles"`
}

func (h Handler) meta(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, metaResponse{
		Professions:  game.AvailableProfessions(),
		Difficulties: game.Difficulties(),
		Paces:        game.PaceOptions(),
		Actions:      game.SupportedActions(),
		TargetMiles:  game.TargetMiles,
	})
}

func (h Handler) createGame(c context.Context, ctx *app.RequestContext) {
	var body createRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	id, g, err := h.Store.Create(game.Config{
		PlayerName: body.Name,
		Profession: game.Profession(body.Profession),
		Difficulty: game.Difficulty(body.Difficulty),
		Seed:       body.Seed,
		Rules:      h.Rules,
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	if h.KPI != nil {
		h.KPI.RecordGameCreated()
	}

	state := g.State()
	hlog.CtxInfof(c, "game %s created: %s the %s on %s, seed %d (%d active)", id, state.PlayerName, state.Profession, state.Difficulty, g.Seed(), h.Store.Len())
	ctx.JSON(consts.StatusCreated, newGameView(id, g))
}

func (h Handler) getGame(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	var view gameView
	err := h.Store.Do(id, func(g *game.Game) error {
		view = newGameView(id, g)
		return nil
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, view)
}

func (h Handler) performAction(c context.Context, ctx *app.RequestContext) {
	id := ctx.Param("id")
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		h.recordRejected("invalid_json")
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	var resp actionResponse
	err := h.Store.Do(id, func(g *game.Game) error {
		report, err := g.PerformAction(game.Action(body.Action), game.ActionParams{
			Pace:       game.Pace(body.Pace),
			AmmoSpent:  body.AmmoSpent,
			OfferIndex: body.OfferIndex,
		})
		if err != nil {
			return err
		}
		resp = actionResponse{gameView: newGameView(id, g), Messages: report.Messages}
		return nil
	})
	if err != nil {
		h.recordRejected(errorCode(err))
		writeError(c, ctx, err)
		return
	}
	if h.KPI != nil {
		h.KPI.RecordSuccess(body.Action, resp.Outcome)
	}
	if resp.Outcome != string(game.RunOutcomeOngoing) {
		hlog.CtxInfof(c, "game %s finished on day %d: %s", id, resp.State.Day, resp.Outcome)
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteGame(c context.Context, ctx *app.RequestContext) {
	if err := h.Store.Delete(ctx.Param("id")); err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.SetStatusCode(consts.StatusNoContent)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.Snapshot())
}

func (h Handler) recordRejected(code string) {
	if h.KPI != nil {
		h.KPI.RecordRejected(code)
	}
}

func newGameView(id string, g *game.Game) gameView {
	offers := g.TradeOffers()
	views := make([]offerView, 0, len(offers))
	for i, offer := range offers {
		views = append(views, offerView{
			Index:       i,
			Item:        offer.Item,
			Quantity:    offer.Quantity,
			Price:       offer.Price,
			Description: offer.Describe(),
		})
	}
	return gameView{
		GameID:           id,
		Seed:             g.Seed(),
		Outcome:          string(g.Outcome()),
		State:            g.State(),
		AvailableActions: g.AvailableActions(),
		TradeOffers:      views,
	}
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, game.ErrInvalidState):
		return "game_over"
	case errors.Is(err, ErrGameNotFound):
		return "not_found"
	case errors.Is(err, ErrStoreFull):
		return "store_full"
	default:
		return "internal"
	}
}

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	code := errorCode(err)
	switch code {
	case "invalid_argument":
		writeErrorBody(ctx, consts.StatusBadRequest, code, err.Error())
	case "game_over", "store_full":
		writeErrorBody(ctx, consts.StatusConflict, code, err.Error())
	case "not_found":
		writeErrorBody(ctx, consts.StatusNotFound, code, err.Error())
	default:
		hlog.CtxErrorf(c, "request failed: %v", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, code, "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
