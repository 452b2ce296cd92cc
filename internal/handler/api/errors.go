package api

import (
	"net/http"

	"foodshare/internal/domain/foodrequest"
	"foodshare/internal/handler/httperr"
	"foodshare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("no identity on context")

type errorMapping struct {
	target error
	status int
	msg    string
}

// first match wins
var usecaseErrors = []errorMapping{
	{foodrequest.ErrMissingField, http.StatusBadRequest, "Missing required fields"},
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrListingNotFound, http.StatusNotFound, "Food not found"},
	{errs.ErrRequestNotFound, http.StatusNotFound, "Request not found"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrRequestAlreadyAccepted, http.StatusConflict, "Request already accepted"},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error", nil)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized-No Token", nil)
}
