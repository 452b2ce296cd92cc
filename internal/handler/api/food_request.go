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

type RequestHandler struct {
	cmds commands.RequestCommands
	q    queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries) *RequestHandler {
	return &RequestHandler{cmds: cmds, q: q}
}

// @Summary Request a listing
// @Tags food-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateFoodRequestRequest true "Request"
// @Success 201 {object} response.RequestInsertAck
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /food-requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req request.CreateFoodRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateRequestInput{
		FoodID:   req.FoodID,
		Location: req.Location,
		Reason:   req.Reason,
		Contact:  req.Contact,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/food-requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, response.RequestInsertAck{Success: true, InsertedID: result.RequestID.String()})
}

// @Summary List my requests
// @Description Requests made by the caller, each with its listing when it still exists.
// @Tags food-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.FoodRequestResponse
// @Failure 401 {object} httperr.Response
// @Router /my-food-requests [get]
func (h *RequestHandler) ListMine(c *gin.Context) {
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
	c.JSON(http.StatusOK, response.FromRequestViews(views))
}

// @Summary List requests for a listing
// @Description Only the listing's donor may see its requests.
// @Tags food-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {array} response.FoodRequestResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /food-requests/{id} [get]
func (h *RequestHandler) ListForListing(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	foodID, ok := listingIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListForListing(c.Request.Context(), actor, foodID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequestViews(views))
}

// @Summary Accept a request
// @Description Marks the request accepted and its listing donated.
// @Tags food-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} response.SuccessAck
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /food-requests/{id}/accept [put]
func (h *RequestHandler) Accept(c *gin.Context) {
	actor, ok := middleware.GetIdentity(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithUsecaseError(c, errs.Mark(err, errs.ErrRequestNotFound))
		return
	}

	if err := h.cmds.Accept(c.Request.Context(), actor, id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessAck{Success: true})
}
