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
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(cmd commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: cmd,
		settingsQueries:  q,
	}
}

// @Summary Get cleanup settings
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.Envelope{data=queries.SettingsView}
// @Failure 401 {object} httperr.Response
// @Router /api/cleanup/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.settingsQueries.GetSettings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(view))
}

// @Summary Update cleanup settings
// @Description Takes effect from the next scan start
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} resdto.Envelope{data=queries.SettingsView}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/cleanup/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	saved, err := h.settingsCommands.SaveSettings(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errs.Is(err, criteria.ErrAdministratorRole):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "The administrator role cannot be selected for deletion.", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.Success(queries.ToSettingsView(saved)))
}
