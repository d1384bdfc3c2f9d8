package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/policy"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/service"
	"github.com/jeffleon2/draftea-wallet-ledger/internal/walletapi"
	"github.com/sirupsen/logrus"
)

// writeError maps the error taxonomy to a status and a JSON body.
func writeError(c *gin.Context, err error, body gin.H) {
	if body == nil {
		body = gin.H{}
	}

	var (
		verr  *policy.ValidationError
		serr  *walletapi.RemoteSubmissionError
		fetch *walletapi.RemoteFetchError
	)

	switch {
	case errors.As(err, &verr):
		body["error"] = verr.Message
		body["code"] = verr.Code()
		body["field"] = verr.Field
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, service.ErrSubmissionInProgress):
		body["error"] = err.Error()
		c.JSON(http.StatusConflict, body)
	case errors.As(err, &serr):
		body["error"] = serr.UserMessage()
		c.JSON(http.StatusBadGateway, body)
	case errors.As(err, &fetch):
		logrus.Errorf("Remote fetch failed: %s", err.Error())
		body["error"] = "wallet service unavailable"
		c.JSON(http.StatusBadGateway, body)
	default:
		logrus.Errorf("Request failed: %s", err.Error())
		body["error"] = "internal error"
		c.JSON(http.StatusInternalServerError, body)
	}
}
