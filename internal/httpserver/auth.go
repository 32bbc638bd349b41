package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tecstore/internal/domain"
	"tecstore/internal/validation"
)

// User-facing feedback, matching the storefront's inline messages.
const (
	feedbackDuplicateAccount = "Ya existe una cuenta con ese correo."
	feedbackNoSuchAccount    = "No existe cuenta con ese correo."
	feedbackWrongPassword    = "Contraseña incorrecta."
	feedbackPasswordMismatch = "Las contraseñas no coinciden."
	feedbackAccountCreated   = "Cuenta creada. Redirigiendo a completar perfil..."
	registerLinkHTML         = `<a href="register.html">Crear cuenta</a>`
)

// registerRedirectDelayMs is the post-success navigation delay before the
// storefront redirects to the profile page.
const registerRedirectDelayMs = 800

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	validation.RegistrationForm
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// register runs the full registration flow: field validation, password
// confirmation, account creation, then profile save. The first failure at
// any stage is surfaced as inline feedback.
func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "feedback": "Datos del formulario inválidos."})
		return
	}

	if err := validation.Validate(req.RegistrationForm); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "field": verr.Field, "feedback": verr.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "feedback": err.Error()})
		return
	}

	if err := domain.ConfirmPassword(req.Password, req.Password2); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "feedback": feedbackPasswordMismatch})
		return
	}

	email, err := h.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			c.JSON(http.StatusConflict, gin.H{"ok": false, "feedback": feedbackDuplicateAccount})
			return
		}
		h.logger.WithError(err).Error("register account")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	profile := domain.Profile{
		FullName:  req.FullName,
		Birthdate: req.Birthdate,
		Postal:    req.Postal,
		Address:   req.Address,
		DNI:       req.DNI,
		Phone:     req.Phone,
	}
	if err := h.auth.SaveProfile(c.Request.Context(), email, profile); err != nil {
		h.logger.WithError(err).Error("save profile")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":              true,
		"feedback":        feedbackAccountCreated,
		"redirect":        "profile.html",
		"redirectDelayMs": registerRedirectDelayMs,
	})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "feedback": "Datos del formulario inválidos."})
		return
	}

	email, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSuchAccount):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "feedback": feedbackNoSuchAccount + " " + registerLinkHTML})
		case errors.Is(err, domain.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "feedback": feedbackWrongPassword + " " + registerLinkHTML})
		default:
			h.logger.WithError(err).Error("login")
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "email": email, "redirect": "index.html"})
}

func (h *handlers) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handlers) session(c *gin.Context) {
	email, ok, err := h.auth.CurrentSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "email": email})
}

// profile returns the stored profile of the logged-in user.
func (h *handlers) profile(c *gin.Context) {
	email, ok, err := h.auth.CurrentSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false})
		return
	}
	p, err := h.auth.Profile(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, p)
}

// accountMenu renders the menu fragment for the current session state.
func (h *handlers) accountMenu(c *gin.Context) {
	email, _, err := h.auth.CurrentSession(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	html, err := h.view.RenderMenu(email)
	if err != nil {
		h.logger.WithError(err).Error("render account menu")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
