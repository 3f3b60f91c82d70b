package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"vrs/src/boot"
	"vrs/src/config"
	"vrs/src/middlewares"
	"vrs/src/types"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

const (
	apiPrefix string = "/api/v1"
)

var rentalDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	return err == nil
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rentaldate", rentalDateValidatorFunc)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})
	return router
}

func apiv1Group(g *gin.Engine) *gin.RouterGroup {
	apiv1 := g.Group(apiPrefix)
	return apiv1
}

func abortWithError(ctx *gin.Context, err error) {
	status := types.HTTPStatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Could not complete request: %s\n", err.Error())
		ctx.JSON(status, gin.H{"error": "error while processing request"})
		return
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

func main() {
	registerValidators()

	boot.InitDb()
	boot.SeedAdminUser()
	boot.InitScheduler()
	defer boot.StopScheduler()

	router := setupRouter()
	guestAuthRoutes(router)

	apiv1 := apiv1Group(router)
	apiv1.Use(middlewares.AuthMiddleware)
	vehicleHandlers(apiv1)
	bookingHandlers(apiv1)
	userHandlers(apiv1)

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %s\n", err.Error())
	}
}
