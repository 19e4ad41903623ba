package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/auth"
)

var validate = validator.New()

// TokenRequest carries the mock client-credentials exchange. Any
// non-empty credential pair is accepted; the user id must name a
// seeded user.
type TokenRequest struct {
	ClientID     string `json:"client_id" validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	UserID       string `json:"user_id" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// PostToken issues an opaque bearer token for a seeded user. This is
// mock auth: the credentials prove nothing, the token is just a random
// secret with an expiry.
func PostToken(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), internal.ValidationError("invalid JSON: "+err.Error()), "token request")
			return
		}
		if err := validate.Struct(&req); err != nil {
			HandleError(c, app.Logger(), internal.ValidationError("missing credentials: "+err.Error()), "token request")
			return
		}

		token, err := app.Store().CreateToken(req.UserID, app.TokenTTL())
		if err != nil {
			HandleError(c, app.Logger(), err, "token issuance")
			return
		}
		HandleSuccess(c, app.Logger(), TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int(app.TokenTTL() / time.Second),
		}, nil)
	}
}

// GetProfile returns the profile of the token's owner.
func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), auth.CurrentUser(c), nil)
	}
}
