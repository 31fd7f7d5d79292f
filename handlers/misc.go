package handlers

import (
	"net/http"

	"postboard/utils"

	"github.com/gin-gonic/gin"
)

const csrfCookieMaxAge = 365 * 86400

// Csrf hands out a token for clients that still do cookie-based form posts.
// The API itself is bearer-token authenticated and does not check it.
func Csrf(c *gin.Context) {
	token := utils.Rand16BytesToBase62()
	c.SetCookie("csrftoken", token, csrfCookieMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"csrfToken": token})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
