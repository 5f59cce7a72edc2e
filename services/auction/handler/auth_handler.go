package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"midnight-auction/internal/listingform"
	"midnight-auction/internal/models"
	"midnight-auction/internal/session"
	"midnight-auction/services/auction/helpers"
	"midnight-auction/utils"

	"github.com/gin-gonic/gin"
)

func (h *AuctionHandler) sessionView() helpers.SessionView {
	snap := h.session.Snapshot()
	return helpers.SessionView{
		Authenticated: snap.Authenticated(),
		IsLoading:     h.session.IsLoading(),
		IsNewLogin:    h.session.IsNewLogin(),
		Profile:       snap.Profile,
	}
}

// startSession stores the result of a register or login call
func (h *AuctionHandler) startSession(c *gin.Context, handlerName string, result models.AuthResult) bool {
	if err := h.session.Login(result.AccessToken, result.UserProfile); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "could not start session")
		utils.Error(handlerName+": failed to start session", map[string]any{
			"user":  result.Name,
			"error": err.Error(),
		})
		return false
	}
	return true
}

// RegisterHandler handles POST /auth/register
func (h *AuctionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}
	if err := listingform.ValidateUsername(req.Name); err != nil {
		h.notices.Error(err.Error())
		fail(c, "RegisterHandler", err, map[string]any{"name": req.Name})
		return
	}

	creds := models.RegisterCredentials{
		Name:     req.Name,
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		Bio:      listingform.Sanitize(req.Bio),
	}
	if url := listingform.Sanitize(req.AvatarURL); url != "" {
		creds.Avatar = &models.Media{URL: url, Alt: fmt.Sprintf("%s's avatar", req.Name)}
	}

	client := h.client()
	ctx := c.Request.Context()
	result, err := mutate(ctx, h.notices, func(ctx context.Context, in models.RegisterCredentials) (models.AuthResult, error) {
		env, err := client.Register(ctx, in)
		if err != nil {
			return models.AuthResult{}, err
		}
		if env.Data.AccessToken != "" {
			return env.Data, nil
		}
		// registration without a token needs a regular login
		login, err := client.Login(ctx, models.LoginCredentials{Email: in.Email, Password: in.Password})
		return login.Data, err
	}, creds)
	if err != nil {
		fail(c, "RegisterHandler", err, map[string]any{"name": req.Name})
		return
	}
	if !h.startSession(c, "RegisterHandler", result) {
		return
	}

	h.notices.Success(fmt.Sprintf("Welcome, %s! Your account has been created.", result.Name))
	utils.JSONResponse(c, http.StatusCreated, gin.H{"session": h.sessionView(), "redirect": "/"}, "registered successfully")
	helpers.LogSuccess("RegisterHandler", "registered successfully", map[string]any{"user": result.Name})
}

// LoginHandler handles POST /auth/login
func (h *AuctionHandler) LoginHandler(c *gin.Context) {
	if h.session.Snapshot().Authenticated() {
		utils.JSONResponse(c, http.StatusOK, gin.H{"session": h.sessionView(), "redirect": "/profile"}, "already logged in")
		return
	}

	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	client := h.client()
	result, err := mutate(c.Request.Context(), h.notices, func(ctx context.Context, in models.LoginCredentials) (models.AuthResult, error) {
		env, err := client.Login(ctx, in)
		return env.Data, err
	}, models.LoginCredentials{Email: strings.TrimSpace(req.Email), Password: req.Password})
	if err != nil {
		fail(c, "LoginHandler", err, map[string]any{"email": req.Email})
		return
	}
	if !h.startSession(c, "LoginHandler", result) {
		return
	}

	h.notices.Success(fmt.Sprintf("Welcome back, %s!", result.Name))
	utils.JSONResponse(c, http.StatusOK, gin.H{"session": h.sessionView(), "redirect": "/profile"}, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{"user": result.Name})
}

// LogoutHandler handles POST /auth/logout
func (h *AuctionHandler) LogoutHandler(c *gin.Context) {
	if err := h.session.Logout(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "could not clear session")
		utils.Error("LogoutHandler: failed to clear session", map[string]any{"error": err.Error()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"redirect": session.LoginPath}, "logged out successfully")
}

// GetSessionHandler handles GET /session. A fresh login is reported once.
func (h *AuctionHandler) GetSessionHandler(c *gin.Context) {
	view := h.sessionView()
	if view.IsNewLogin {
		h.session.AcknowledgeNewLogin()
	}
	utils.JSONResponse(c, http.StatusOK, view, "session retrieved successfully")
}
