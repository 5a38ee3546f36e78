package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
)

// scope builds the caller scope from the optional X-User-ID header. There is no
// authentication: the header selects whose tasks are visible, and without it
// every task is.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: c.GetHeader(headerUserID)}
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processQuickReq(c *gin.Context) (quickReq, error) {
	var req quickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body and the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

func (h *handler) processSubtaskReq(c *gin.Context) (subtaskReq, error) {
	var req subtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = strings.TrimSpace(c.Param("id"))
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
