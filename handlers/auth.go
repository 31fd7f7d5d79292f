package handlers

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"postboard/auth"
	"postboard/config"
	"postboard/db"
	"postboard/models"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	Token string `json:"token"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func Register(c *gin.Context) {
	r := RegisterRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}
	var count int64
	db.Instance.Model(&models.User{}).Where("username = ?", r.Username).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already exists"})
		return
	}
	db.Instance.Model(&models.User{}).Where("email = ?", r.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}
	user, err := models.UserCreate(r.Username, r.Email, r.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user", "detail": err.Error()})
		return
	}
	pair, err := auth.Tokens.IssuePair(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, TokenResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		User:    userInfo(&user),
	})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	pair, err := auth.Tokens.IssuePair(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		User:    userInfo(&user),
	})
}

var acceptedIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// The JWKS-backed verifier is built on first use so that startup does not
// depend on Google being reachable. All access goes through googleMu:
// concurrent first sign-ins must not both construct and write the variable.
var (
	googleMu          sync.Mutex
	googleTokens      auth.GoogleVerifier
	newGoogleVerifier = auth.NewGoogleVerifier
)

func googleVerifier() (auth.GoogleVerifier, error) {
	googleMu.Lock()
	defer googleMu.Unlock()
	if googleTokens == nil {
		// Background context: key refresh outlives the request that
		// triggered the build
		v, err := newGoogleVerifier(context.Background())
		if err != nil {
			return nil, err
		}
		googleTokens = v
	}
	return googleTokens, nil
}

func GoogleLogin(c *gin.Context) {
	r := GoogleLoginRequest{}
	_ = c.ShouldBindJSON(&r)
	if r.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token not provided"})
		return
	}
	if config.GOOGLE_CLIENT_ID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Google OAuth is not configured"})
		return
	}
	verifier, err := googleVerifier()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reach Google", "detail": err.Error()})
		return
	}
	claims, err := verifier.Verify(c.Request.Context(), r.Token, config.GOOGLE_CLIENT_ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token", "detail": err.Error()})
		return
	}
	validIssuer := false
	for _, iss := range acceptedIssuers {
		if claims.Issuer == iss {
			validIssuer = true
			break
		}
	}
	if !validIssuer {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	if claims.Email == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token has no email claim"})
		return
	}
	username := strings.SplitN(claims.Email, "@", 2)[0]
	user, err := models.UserGetOrCreateByEmail(claims.Email, username, claims.GivenName, claims.FamilyName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user", "detail": err.Error()})
		return
	}
	pair, err := auth.Tokens.IssuePair(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue tokens", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TokenResponse{
		Refresh: pair.Refresh,
		Access:  pair.Access,
		User: GoogleUserInfo{
			UserInfo:  userInfo(&user),
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

func TokenRefresh(c *gin.Context) {
	r := RefreshRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh token is required"})
		return
	}
	access, err := auth.Tokens.Refresh(r.Refresh)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}
