package handler

import (
	"net/http"

	"salescrm_backend/internal/conversion/transport"
	"salescrm_backend/internal/conversion/workflow"
	"salescrm_backend/platform/httpkit"
	"salescrm_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	ctrl *workflow.Controller
	val  *validator.Validator
}

func New(ctrl *workflow.Controller, val *validator.Validator) *Handler {
	return &Handler{ctrl: ctrl, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Start)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/advance", h.Advance)
	rg.POST("/:id/back", h.Back)
	rg.POST("/:id/cancel", h.Cancel)
}

func (h *Handler) Start(c *gin.Context) {
	var req transport.StartWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	snap, err := h.ctrl.Start(c.Request.Context(), req.LeadID, currentUserID(c))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, transport.ToWorkflowResponse(snap))
}

func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	snap, err := h.ctrl.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToWorkflowResponse(snap))
}

func (h *Handler) Advance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	var req transport.AdvanceWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	snap, err := h.ctrl.Advance(c.Request.Context(), id, transport.ToAdvanceInput(req))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToWorkflowResponse(snap))
}

func (h *Handler) Back(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	snap, err := h.ctrl.Back(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToWorkflowResponse(snap))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	if err := h.ctrl.Cancel(c.Request.Context(), id); httpkit.HandleError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}

func currentUserID(c *gin.Context) uuid.UUID {
	value, ok := c.Get(httpkit.ContextUserIDKey)
	if !ok {
		return uuid.Nil
	}
	id, _ := value.(uuid.UUID)
	return id
}
