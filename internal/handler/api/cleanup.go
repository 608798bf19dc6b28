package api

import (
	"net/http"

	"bulk-cleanup/internal/domain/criteria"
	reqdto "bulk-cleanup/internal/handler/dto/request"
	resdto "bulk-cleanup/internal/handler/dto/response"
	"bulk-cleanup/internal/handler/httperr"
	"bulk-cleanup/internal/pkg/errs"
	"bulk-cleanup/internal/usecase/commands"
	"bulk-cleanup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	msgScanStateLost    = "Scan state lost. Please start a new scan."
	msgInvalidBatchSize = "Invalid batch size."
	msgInvalidRequest   = "Invalid request format"
	msgInternalError    = "Internal server error"
)

type CleanupHandler struct {
	scanCommands     commands.ScanCommands
	deletionCommands commands.DeletionCommands
	cleanupQueries   queries.CleanupQueries
}

func NewCleanupHandler(scan commands.ScanCommands, deletion commands.DeletionCommands, q queries.CleanupQueries) *CleanupHandler {
	return &CleanupHandler{
		scanCommands:     scan,
		deletionCommands: deletion,
		cleanupQueries:   q,
	}
}

// @Summary Issue a CSRF token
// @Description Returns the token to send in X-CSRF-Token on every state-changing cleanup call
// @Tags cleanup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.CSRFTokenResponse}
// @Failure 401 {object} httperr.Response
// @Router /api/cleanup/token [get]
func (h *CleanupHandler) Token(c *gin.Context) {
	token := csrf.Token(c.Request)
	c.Header("X-CSRF-Token", token)
	c.JSON(http.StatusOK, resdto.Success(resdto.CSRFTokenResponse{Token: token}))
}

// @Summary Start a scan
// @Description Abandons any previous run and starts scanning users
// @Tags cleanup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.StartScanResponse}
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup/scan/start [post]
func (h *CleanupHandler) StartScan(c *gin.Context) {
	result, err := h.scanCommands.StartScan(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(resdto.FromStartScan(result)))
}

// @Summary Scan the next page
// @Description Scans one page of the active phase and returns ScanProgressResponse; the call that finds nothing left returns ScanCompleteResponse
// @Tags cleanup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=resdto.ScanProgressResponse}
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup/scan/batch [post]
func (h *CleanupHandler) ScanBatch(c *gin.Context) {
	result, err := h.scanCommands.ScanBatch(c.Request.Context())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrScanStateLost):
			httperr.AbortWithError(c, http.StatusConflict, err, msgScanStateLost, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Success(resdto.FromScanBatch(result)))
}

// @Summary Delete the next batch
// @Description Deletes up to batchSize pending records; call until complete is true
// @Tags cleanup
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.RunDeletionBatchRequest true "Batch size"
// @Success 200 {object} resdto.Envelope{data=resdto.DeletionBatchResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup/deletion/batch [post]
func (h *CleanupHandler) RunDeletionBatch(c *gin.Context) {
	var req reqdto.RunDeletionBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.deletionCommands.RunBatch(c.Request.Context(), req.BatchSize)
	if err != nil {
		switch {
		case errs.Is(err, criteria.ErrInvalidBatchSize):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidBatchSize, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Success(resdto.FromDeletion(result)))
}

// @Summary Cleanup status
// @Description Reports the scan in progress and pending deletion counts
// @Tags cleanup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=queries.StatusView}
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup/status [get]
func (h *CleanupHandler) Status(c *gin.Context) {
	view, err := h.cleanupQueries.Status(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

// @Summary Abandon the current run
// @Description Clears the scan state and every pending deletion
// @Tags cleanup
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/cleanup/state [delete]
func (h *CleanupHandler) Reset(c *gin.Context) {
	if err := h.scanCommands.Reset(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
