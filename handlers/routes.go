package handlers

import (
	"postboard/auth"

	"github.com/gin-gonic/gin"
)

// Routes mounts every API route on the given engine
func Routes(router *gin.Engine) {
	// Auth handlers
	router.POST("/auth/register/", Register)
	router.POST("/auth/login/", Login)
	router.POST("/auth/google/", GoogleLogin)
	router.POST("/auth/refresh/", TokenRefresh)
	// Post handlers - bearer token required
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/listposts/", PostList)
	authRouter.POST("/createpost/", PostCreate)
	authRouter.PATCH("/editpost/:id/", PostPatch)
	authRouter.DELETE("/deletepost/:id/", PostDelete)
	// Misc
	router.GET("/csrf/", Csrf)
	router.GET("/health/", Health)
}
