package api

import (
	"errors"
	"net/http"

	reqdto "mercado-tracker/internal/handler/dto/request"
	resdto "mercado-tracker/internal/handler/dto/response"
	"mercado-tracker/internal/handler/httperr"
	"mercado-tracker/internal/pkg/errs"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrackerHandler struct {
	cmds commands.TrackerCommands
	q    queries.TrackerQueries
}

func NewTrackerHandler(cmds commands.TrackerCommands, q queries.TrackerQueries) *TrackerHandler {
	return &TrackerHandler{cmds: cmds, q: q}
}

// @Summary List trackers
// @Description List all trackers, newest first, confirmation codes excluded
// @Tags trackers
// @Produce json
// @Success 200 {array} resdto.TrackerResponse
// @Router /trackers [get]
func (h *TrackerHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load trackers", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTrackerList(views))
}

// @Summary Create tracker
// @Description Register a saved search; a confirmation code is sent to the notify address
// @Tags trackers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTrackerRequest true "Create tracker request"
// @Success 201 {object} resdto.TrackerResponse
// @Failure 400 {object} map[string]string
// @Router /trackers [post]
func (h *TrackerHandler) Create(c *gin.Context) {
	var req reqdto.CreateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Search term and notify address are required", nil)
		return
	}
	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortTrackerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTracker(created))
}

// @Summary Delete tracker
// @Description Remove a tracker regardless of status
// @Tags trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 404 {object} map[string]string
// @Router /trackers/{id} [delete]
func (h *TrackerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tracker not found", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary Confirm tracker
// @Description Activate a pending tracker with its confirmation code
// @Tags trackers
// @Accept json
// @Produce json
// @Param id path string true "Tracker ID"
// @Param request body reqdto.ConfirmTrackerRequest true "Confirmation code"
// @Success 200 {object} resdto.TrackerResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trackers/{id}/confirm [post]
func (h *TrackerHandler) Confirm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tracker not found", nil)
		return
	}
	var req reqdto.ConfirmTrackerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Confirmation code is required", nil)
		return
	}
	confirmed, err := h.cmds.Confirm(c.Request.Context(), id, req.Code)
	if err != nil {
		abortTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTracker(confirmed))
}

// @Summary Resend confirmation code
// @Description Rotate the code of a pending tracker and send it again
// @Tags trackers
// @Produce json
// @Param id path string true "Tracker ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /trackers/{id}/resend-code [post]
func (h *TrackerHandler) ResendCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tracker not found", nil)
		return
	}
	if err := h.cmds.ResendCode(c.Request.Context(), id); err != nil {
		abortTrackerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// abortTrackerError maps usecase sentinels onto the HTTP error taxonomy.
// Upstream marketplace failures never reach here: they are contained inside
// the poll pipeline and degrade to "no results this cycle".
func abortTrackerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTrackerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tracker not found", nil)
	case errors.Is(err, errs.ErrTrackerAlreadyActive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Tracker is already active", nil)
	case errors.Is(err, errs.ErrTrackerNotPending):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Tracker is not pending", nil)
	case errors.Is(err, errs.ErrInvalidConfirmationCode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid confirmation code", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tracker fields", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
