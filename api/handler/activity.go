package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/pkg/httpcontext"
	activityUC "github.com/fastygo/todo/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Recent task activity, newest first
// @Tags activity
// @Router /api/{user_id}/activity [get]
func (h *ActivityHandler) ListActivity(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}

	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), activityUC.DefaultLimit)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.uc.List(stdCtx, claims.UserID, pathString(ctx, "user_id"), limit)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(entries, transport.ListMeta{Count: len(entries)}))
}
