package server

import (
	handler "midnight-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionHandler *handler.AuctionHandler) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // tag every request
	router.Use(RequestLoggerMiddleware) // custom request logging

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.GetListingsHandler)
		listings.POST("", auctionHandler.CreateListingHandler)
		listings.GET("/:id", auctionHandler.GetListingHandler)
		listings.PUT("/:id", auctionHandler.UpdateListingHandler)
		listings.DELETE("/:id", auctionHandler.DeleteListingHandler)
		listings.GET("/:id/edit", auctionHandler.GetEditFormHandler)
		listings.POST("/:id/bids", auctionHandler.PlaceBidHandler)
	}

	router.GET("/search", auctionHandler.SearchHandler)

	auth := router.Group("/auth")
	{
		auth.POST("/register", auctionHandler.RegisterHandler)
		auth.POST("/login", auctionHandler.LoginHandler)
		auth.POST("/logout", auctionHandler.LogoutHandler)
	}
	router.GET("/session", auctionHandler.GetSessionHandler)

	profile := router.Group("/profile")
	{
		profile.GET("", auctionHandler.GetProfileHandler)
		profile.PUT("", auctionHandler.UpdateProfileHandler)
		profile.GET("/listings", auctionHandler.GetMyListingsHandler)
		profile.GET("/bids", auctionHandler.GetMyBidsHandler)
		profile.GET("/wins", auctionHandler.GetMyWinsHandler)
	}

	router.GET("/profiles/:name/stats", auctionHandler.GetProfileStatsHandler)
	router.GET("/notifications", auctionHandler.NotificationsHandler)

	return router
}
