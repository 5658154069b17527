package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-task-manager/pkg/response"
)

// processCreateReq binds and validates the create/preview request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "invalid request body")
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, response.NewHTTPError(400, "invalid query parameters")
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "invalid request body")
	}

	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id

	return req, req.validate()
}

// processSetStatusReq binds the status change request body.
func (h *handler) processSetStatusReq(c *gin.Context) (setStatusReq, error) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, response.NewHTTPError(400, "invalid request body")
	}
	return req, req.validate()
}

// processIDParam parses the numeric :id path parameter.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewHTTPError(400, "id must be a positive integer")
	}
	return id, nil
}
