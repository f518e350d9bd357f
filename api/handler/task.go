package handler

import (
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todo/api/transport"
	"github.com/fastygo/todo/domain"
	"github.com/fastygo/todo/pkg/httpcontext"
	taskUC "github.com/fastygo/todo/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/{user_id}/tasks [get]
func (h *TaskHandler) ListTasks(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}

	status := string(ctx.QueryArgs().Peek("status_filter"))
	if !ctx.QueryArgs().Has("status_filter") {
		status = string(ctx.QueryArgs().Peek("status"))
	}
	sort := string(ctx.QueryArgs().Peek("sort"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, claims.UserID, pathString(ctx, "user_id"), status, sort)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(tasks, transport.ListMeta{
		Count:  len(tasks),
		Status: domain.ParseStatusFilter(status).String(),
		Sort:   domain.ParseSortOrder(sort).String(),
	}))
}

// @Summary Create task
// @Tags tasks
// @Router /api/{user_id}/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}

	var req transport.TaskCreateRequest
	if err := sonic.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	ownerID := pathString(ctx, "user_id")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, claims.UserID, ownerID, req.Draft(ownerID))
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Get task
// @Tags tasks
// @Router /api/{user_id}/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, claims.UserID, pathString(ctx, "user_id"), id)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Update task (partial)
// @Tags tasks
// @Router /api/{user_id}/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	req, err := transport.DecodeTaskUpdate(ctx.PostBody())
	if err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, claims.UserID, pathString(ctx, "user_id"), id, req.Patch())
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/{user_id}/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, claims.UserID, pathString(ctx, "user_id"), id); err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondNoContent(ctx)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/{user_id}/tasks/{id}/complete [patch]
func (h *TaskHandler) ToggleTask(ctx *fasthttp.RequestCtx) {
	claims, ok := h.claims(ctx)
	if !ok {
		return
	}
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.ToggleTask(stdCtx, claims.UserID, pathString(ctx, "user_id"), id)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

func (h *TaskHandler) taskID(ctx *fasthttp.RequestCtx) (int64, bool) {
	id, err := strconv.ParseInt(pathString(ctx, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.respondInvalid(ctx, "task id must be a positive integer")
		return 0, false
	}
	return id, true
}
