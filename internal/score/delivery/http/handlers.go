package http

import (
	"github.com/gin-gonic/gin"

	"skyscore-srv/internal/model"
	"skyscore-srv/pkg/response"
)

// ProcessScore - Compute a SkyScore and kick off the email pipeline
// @Summary Compute a SkyScore
// @Description Computes the SkyScore for a Bluesky handle, stores it, renders a score card and queues the result email. Repeat requests for the same email and handle return the stored score.
// @Tags SkyScore
// @Accept json
// @Produce json
// @Param body body processScoreReq true "Score request"
// @Success 200 {object} processScoreResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/skyscore [post]
func (h *handler) ProcessScore(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processScoreRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "score.delivery.http.ProcessScore: processScoreRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "score.delivery.http.ProcessScore: usecase Process failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, newProcessScoreResp(output))
}

// GetUser - Fetch a stored score
// @Summary Get a stored SkyScore
// @Description Returns the stored score for an email and handle pair.
// @Tags SkyScore
// @Produce json
// @Param email path string true "Email"
// @Param handle path string true "Bluesky handle"
// @Success 200 {object} getUserResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/skyscore/users/{email}/{handle} [get]
func (h *handler) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	record, err := h.uc.GetUser(ctx, c.Param("email"), c.Param("handle"))
	if err != nil {
		h.l.Errorf(ctx, "score.delivery.http.GetUser: usecase GetUser failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newGetUserResp(record))
}

// ListBadges - List the badge catalog
// @Summary List all badges
// @Description Returns every badge in the catalog with its display metadata.
// @Tags SkyScore
// @Produce json
// @Success 200 {object} listBadgesResp
// @Router /api/v1/skyscore/badges [get]
func (h *handler) ListBadges(c *gin.Context) {
	defs := h.catalog.All()
	badges := make([]model.EarnedBadge, 0, len(defs))
	for _, def := range defs {
		badges = append(badges, model.EarnedBadge{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			Emoji:       def.Emoji,
			Category:    def.Category,
			Priority:    def.Priority,
		})
	}

	response.OK(c, listBadgesResp{
		Total:  len(badges),
		Badges: newBadgeResps(badges),
	})
}
