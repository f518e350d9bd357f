package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/pkg/httpcontext"
	themeUC "github.com/fastygo/todo/usecase/theme"
)

// ThemeHandler serves the caller's own theme preference. The owner always
// comes from the token, never from the path.
type ThemeHandler struct {
	baseHandler
	uc *themeUC.UseCase
}

func NewThemeHandler(uc *themeUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get theme preference (created with "system" on first read)
// @Tags theme
// @Router /api/users/theme [get]
func (h *ThemeHandler) GetTheme(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pref, err := h.uc.GetOrCreateDefault(stdCtx, claims.UserID)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, pref)
}

// @Summary Update theme preference
// @Tags theme
// @Router /api/users/theme [put]
func (h *ThemeHandler) UpdateTheme(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}

	var req transport.ThemeUpdateRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			h.respondInvalid(ctx, "invalid payload")
			return
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	pref, err := h.uc.Update(stdCtx, claims.UserID, req.ThemeMode)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, pref)
}
