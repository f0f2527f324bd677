package handler

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"reform-engine/internal/engine"
	"reform-engine/internal/model"
	"reform-engine/internal/observability"
)

const (
	RouteCalculation = "/calculation"
	RouteStates      = "/states"
	RouteHealth      = "/health"
	RouteMetrics     = "/metrics"

	routeOther = "other"
)

// Handler serves the engine over fasthttp.
type Handler struct {
	engine  *engine.Engine
	metrics *observability.Collector
	scrape  fasthttp.RequestHandler
}

func New(eng *engine.Engine, metrics *observability.Collector) *Handler {
	return &Handler{
		engine:  eng,
		metrics: metrics,
		scrape:  fasthttpadaptor.NewFastHTTPHandler(metrics.Handler()),
	}
}

// Handle is the fasthttp.RequestHandler for every route.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	route := path

	switch path {
	case RouteCalculation:
		if requireMethod(ctx, fasthttp.MethodPost) {
			h.handleCalculation(ctx)
		}
	case RouteStates:
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, model.StatesResponse{States: h.engine.States().All()})
		}
	case RouteHealth:
		if requireMethod(ctx, fasthttp.MethodGet) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		}
	case RouteMetrics:
		if requireMethod(ctx, fasthttp.MethodGet) {
			h.scrape(ctx)
		}
	default:
		route = routeOther
		writeError(ctx, fasthttp.StatusNotFound, "Not found: "+path)
	}

	h.metrics.ObserveRequest(string(ctx.Method()), route, ctx.Response.StatusCode())
}

func (h *Handler) handleCalculation(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		zap.L().Warn("calculation failed",
			zap.String("calculation_id", resp.CalculationMetadata.CalculationID),
			zap.String("label", req.Label),
			zap.Int("messages", len(resp.CalculationResult.Messages)),
			zap.Duration("elapsed", time.Duration(resp.CalculationMetadata.CalculationDurationMs)*time.Millisecond),
		)
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set(fasthttp.HeaderAllow, method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("encode response", zap.Error(err))
		ctx.Error("Internal server error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
