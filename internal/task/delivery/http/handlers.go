package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/pkg/response"
)

// Parse godoc
// @Summary     Parse a task description
// @Description Turns one free-text task description into a structured task without storing it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Task text and optional reference time"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Parse(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "Parse", err)
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Extract godoc
// @Summary     Extract tasks from a meeting transcript
// @Description Returns every assigned action item found in the transcript, in order, without storing them.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Transcript and optional reference time"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "Extract", err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Suggest godoc
// @Summary     Suggest subtasks
// @Description Asks the LLM for related subtasks. Returns an empty list when no LLM is available.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Task text"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/tasks/suggestions [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Suggest(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "Suggest", err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Stores a structured task, optionally adding it to Google Calendar.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "Create", err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// CreateFromText godoc
// @Summary     Quick add
// @Description Parses text (or a meeting transcript) and stores every task found.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickReq true "Text to parse"
// @Success     200  {object} quickResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No tasks found"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick [POST]
func (h *handler) CreateFromText(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateFromText(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "CreateFromText", err)
		return
	}

	response.OK(c, h.newQuickResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns stored tasks with optional filters. Sorted by due date unless sort_by is given.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       priority query string false "Filter by priority (P1-P4)"
// @Param       assignee query string false "Filter by exact assignee"
// @Param       q        query string false "Case-insensitive search on name or assignee"
// @Param       sort_by  query string false "due_date (default), priority or assignee"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Assignees godoc
// @Summary     List assignees
// @Description Returns the distinct assignees of stored tasks in first-seen order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} assigneesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/assignees [GET]
func (h *handler) Assignees(c *gin.Context) {
	ctx := c.Request.Context()

	assignees, err := h.uc.Assignees(ctx, h.scope(c))
	if err != nil {
		h.abortWithError(c, "Assignees", err)
		return
	}

	response.OK(c, assigneesResp{Assignees: assignees})
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, h.scope(c), id)
	if err != nil {
		h.abortWithError(c, "Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Omitted fields keep their stored value; clear_due_at removes the due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "Update", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// ToggleComplete godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) ToggleComplete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleComplete(ctx, h.scope(c), id)
	if err != nil {
		h.abortWithError(c, "ToggleComplete", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// UpdateSubtask godoc
// @Summary     Check or uncheck subtasks
// @Description Updates checklist items whose text contains the given text. The task is completed exactly when every item is checked.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Task ID"
// @Param       body body subtaskReq true "Subtask text and state"
// @Success     200  {object} updateResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Not Found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/subtasks [PATCH]
func (h *handler) UpdateSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubtaskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateSubtask(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.abortWithError(c, "UpdateSubtask", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, h.scope(c), id); err != nil {
		h.abortWithError(c, "Delete", err)
		return
	}

	response.OK(c, nil)
}
