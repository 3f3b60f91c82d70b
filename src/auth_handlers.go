package main

import (
	"vrs/src/controllers"

	"github.com/gin-gonic/gin"
)

func guestAuthRoutes(g *gin.Engine) *gin.RouterGroup {
	apiv1 := apiv1Group(g)
	auth := apiv1.Group("/auth")
	auth.
		POST("/signup", func(ctx *gin.Context) {
			user, status, err := controllers.AuthSignup(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"data": user})
		}).
		POST("/signin", func(ctx *gin.Context) {
			token, user, status, err := controllers.AuthSignin(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(status, gin.H{"token": token, "user": user})
		})
	return apiv1
}
