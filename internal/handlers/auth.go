package handlers

import (
	"errors"
	"net/http"

	"mywallet/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	msgSignUpOK       = "Usuário cadastrado com sucesso!"
	msgDuplicateEmail = "Usuário já cadastrado!"
	msgBadCredentials = "Email ou senha incorretos"
	msgSignUpFailed   = "Não foi possível cadastrar o usuário!"
	msgSignInFailed   = "Não foi possível fazer login!"
)

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Nome          string `json:"nome" binding:"required" example:"Maria"`
	Email         string `json:"email" binding:"required,email" example:"maria@example.com"`
	Senha         string `json:"senha" binding:"required" example:"s3nha"`
	ConfirmaSenha string `json:"confirmaSenha" binding:"required,eqfield=Senha" example:"s3nha"`
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email string `json:"email" binding:"required,email" example:"maria@example.com"`
	Senha string `json:"senha" binding:"required" example:"s3nha"`
}

// bindOrUnprocessable binds the body into dst and writes a 422 with every
// validation message on failure. Returns false if the request was already handled.
func (h *Handler) bindOrUnprocessable(c *gin.Context, dst any) bool {
	if err := bindJSON(c, dst); err != nil {
		if h.log != nil {
			h.log.Infow("request_validation_failed", "path", c.Request.URL.Path, "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, validationMessages(err))
		return false
	}
	return true
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body  SignUpRequest  true  "Registration payload"
// @Success      201  {string}  string
// @Failure      401  {string}  string  "email already registered"
// @Failure      422  {array}   string
// @Failure      500  {string}  string
// @Router       /cadastro [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	if ok := h.bindOrUnprocessable(c, &input); !ok {
		return
	}

	_, err := h.services.SignUp(c.Request.Context(), input.Nome, input.Email, input.Senha)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			if h.log != nil {
				h.log.Infow("auth_sign_up_duplicate", "email", input.Email)
			}
			c.String(http.StatusUnauthorized, msgDuplicateEmail)
			return
		}
		h.logAndTextError(c, http.StatusInternalServerError, msgSignUpFailed, "auth_sign_up_failed", err, "email", input.Email)
		return
	}

	c.String(http.StatusCreated, msgSignUpOK)
}

// @Summary      Log in
// @Description  Returns the bearer token as the raw response body.
// @Tags         auth
// @Accept       json
// @Produce      plain
// @Param        body  body  SignInRequest  true  "Credentials"
// @Success      200  {string}  string  "token"
// @Failure      400  {string}  string
// @Failure      422  {array}   string
// @Failure      500  {string}  string
// @Router       /login [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	if ok := h.bindOrUnprocessable(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Senha)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			if h.log != nil {
				h.log.Infow("auth_sign_in_failed", "email", input.Email)
			}
			c.String(http.StatusBadRequest, msgBadCredentials)
			return
		}
		h.logAndTextError(c, http.StatusInternalServerError, msgSignInFailed, "auth_sign_in_error", err, "email", input.Email)
		return
	}

	c.String(http.StatusOK, token)
}
