package api

import (
	"net/http"

	"foodshare/internal/handler/dto/request"
	"foodshare/internal/handler/dto/response"
	"foodshare/internal/handler/httperr"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary Create listing
// @Description Publish a food listing. Any extra fields are stored as listing attributes.
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.ListingBody true "Listing document"
// @Success 201 {object} response.InsertAck
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /foods [post]
func (h *ListingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	attrs, expireDate, ok := bindListingBody(c)
	if !ok {
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateListingInput{
		Attributes: attrs,
		ExpireDate: expireDate,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/foods/"+result.ListingID.String())
	c.JSON(http.StatusCreated, response.InsertAck{Acknowledged: true, InsertedID: result.ListingID.String()})
}

// @Summary List available listings
// @Description Listings still available, soonest expiry first. Undated listings come first.
// @Tags foods
// @Produce json
// @Success 200 {array} response.ListingResponse
// @Failure 500 {object} httperr.Response
// @Router /available-foods [get]
func (h *ListingHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.ListAvailable(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListingViews(views))
}

// @Summary List all listings
// @Tags foods
// @Produce json
// @Success 200 {array} response.ListingResponse
// @Failure 500 {object} httperr.Response
// @Router /foods [get]
func (h *ListingHandler) ListAll(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListingViews(views))
}

// @Summary Get listing
// @Tags foods
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.ListingResponse
// @Failure 404 {object} httperr.Response
// @Router /foods/{id} [get]
// @Router /available-foods/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := listingIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListingView(view))
}

// @Summary List my listings
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.ListingResponse
// @Failure 401 {object} httperr.Response
// @Router /my-foods [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromListingViews(views))
}

// @Summary Edit listing
// @Description Merge fields into an owned listing. Identity, id and status fields are ignored.
// @Tags foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body request.ListingBody true "Fields to merge"
// @Success 200 {object} response.UpdateAck
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /foods/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := listingIDParam(c, "id")
	if !ok {
		return
	}
	attrs, expireDate, ok := bindListingBody(c)
	if !ok {
		return
	}

	result, err := h.cmds.Update(c.Request.Context(), actor, id, commands.UpdateListingInput{
		Attributes: attrs,
		ExpireDate: expireDate,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// @Summary Delete listing
// @Description Requests that reference the listing are kept.
// @Tags foods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} response.DeleteAck
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /foods/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, ok := listingIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Delete(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeleteAck{Acknowledged: true, DeletedCount: result.DeletedCount})
}

func bindListingBody(c *gin.Context) (map[string]any, string, bool) {
	var body request.ListingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return nil, "", false
	}
	attrs, expireDate, err := body.Split()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return nil, "", false
	}
	return attrs, expireDate, true
}

// A malformed id cannot name a stored listing, so it answers like a missing one.
func listingIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrListingNotFound))
		return uuid.Nil, false
	}
	return id, true
}
