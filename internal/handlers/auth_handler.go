package handlers

import (
	"errors"
	"net/http"
	"os"

	"calendar-assistant/internal/managers"
	"calendar-assistant/internal/schemas"
	"calendar-assistant/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var errAuthDisabled = errors.New("client auth not configured")
var errSecretMismatch = errors.New("client secret mismatch")

type AuthHdl interface {
	CreateToken(c *gin.Context)
}

type AuthHandler struct {
	JWTManager managers.JWTMgr
}

func NewAuthHandler(jwtManager *managers.JWTMgr) AuthHdl {
	return &AuthHandler{
		JWTManager: *jwtManager,
	}
}

// CreateToken exchanges the frontend client credentials for a session JWT.
// The client secret is checked against the bcrypt hash configured in the
// environment.
func (handler *AuthHandler) CreateToken(ctx *gin.Context) {
	req, ok := ctx.Value(utils.SanitizedPayloadKey.String()).(*schemas.TokenRequest)
	if !ok {
		utils.WriteAndLogError(ctx, schemas.BadRequest, http.StatusBadRequest, errors.New("body invalid"))
		return
	}

	secretHash := os.Getenv(utils.ClientSecretHashEnv)
	if secretHash == "" {
		utils.WriteAndLogError(ctx, schemas.InvalidCredentials, http.StatusUnauthorized, errAuthDisabled)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(req.ClientSecret)); err != nil {
		utils.WriteAndLogError(ctx, schemas.InvalidCredentials, http.StatusUnauthorized, errSecretMismatch)
		return
	}

	claims := handler.JWTManager.GenerateClaims(req.ClientId)
	token, err := handler.JWTManager.GenerateJWT(claims)
	if err != nil {
		utils.WriteAndLogError(ctx, schemas.InternalServerError, http.StatusInternalServerError, err)
		return
	}

	tokenDto := &schemas.TokenDTO{
		Token: token,
	}
	utils.WriteAndLogResponse(ctx, tokenDto, http.StatusOK)
}
