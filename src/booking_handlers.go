package main

import (
	"net/http"
	"time"

	"vrs/src/common"
	"vrs/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			customerID := userID
			if body.CustomerID != 0 && body.CustomerID != userID {
				if role != types.ROLE_ADMIN {
					ctx.JSON(http.StatusForbidden, gin.H{"error": "you can only create bookings for yourself"})
					return
				}
				customerID = body.CustomerID
			}
			booking, err := common.CreateBooking(customerID, body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": booking})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userID := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			bookings, err := common.ListBookings(userID, role)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateBookingStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			userID := ctx.GetUint("id")
			role := types.Role(ctx.GetString("role"))
			booking, err := common.UpdateBookingStatus(params.ID, types.BookingStatus(body.Status), userID, role, time.Now())
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": booking})
		})
	return g
}
