package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jaktrip/internal/models/request_models"
	"jaktrip/internal/models/response_models"
	"jaktrip/internal/services"
	"jaktrip/pkg/utils"
)

type RundownController struct {
	rundownService services.RundownServiceInterface
	validate       *validator.Validate
}

func NewRundownController(rundownService services.RundownServiceInterface, validate *validator.Validate) *RundownController {
	return &RundownController{
		rundownService: rundownService,
		validate:       validate,
	}
}

// GenerateRundownHandler answers 200 even for a soft failure; the body's
// error field then carries the reason. An empty body uses all defaults.
func (rc *RundownController) GenerateRundownHandler(c *gin.Context) {
	var req request_models.GenerateRundownRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := rc.validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rundown := rc.rundownService.GenerateRundown(c.Request.Context(), req)
	if rundown.Failed() {
		utils.RespondSuccess(c, rundown, "Rundown generation failed")
		return
	}
	utils.RespondSuccess(c, rundown, "Rundown generated successfully")
}

func (rc *RundownController) SaveRundownHandler(c *gin.Context) {
	var req request_models.SaveRundownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := rc.validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	id, err := rc.rundownService.SaveRundown(c.Request.Context(), req.UserID, req.Rundown, req.Title)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, response_models.SaveRundownResponse{ID: id}, "Rundown saved successfully")
}

func (rc *RundownController) ListRundownsHandler(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	result, err := rc.rundownService.ListRundowns(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched rundowns successfully")
}

func (rc *RundownController) GetRundownHandler(c *gin.Context) {
	rundown, err := rc.rundownService.GetRundown(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rundown, "Fetched rundown successfully")
}

func (rc *RundownController) UpdateRundownHandler(c *gin.Context) {
	var req request_models.UpdateRundownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := rc.validate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	rundown, err := rc.rundownService.UpdateRundown(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rundown, "Rundown updated successfully")
}

func (rc *RundownController) DeleteRundownHandler(c *gin.Context) {
	if err := rc.rundownService.DeleteRundown(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Rundown deleted successfully")
}
