package controllers

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine,
	destinationController *DestinationController,
	rundownController *RundownController) {

	destinationGroup := r.Group("/destinations")
	destinationGroup.GET("", destinationController.ListDestinationsHandler)
	destinationGroup.GET("/categories", destinationController.ListCategoriesHandler)
	destinationGroup.GET("/:id", destinationController.GetDestinationHandler)

	rundownGroup := r.Group("/rundowns")
	rundownGroup.POST("/generate", rundownController.GenerateRundownHandler)
	rundownGroup.POST("", rundownController.SaveRundownHandler)
	rundownGroup.GET("", rundownController.ListRundownsHandler)
	rundownGroup.GET("/:id", rundownController.GetRundownHandler)
	rundownGroup.PATCH("/:id", rundownController.UpdateRundownHandler)
	rundownGroup.DELETE("/:id", rundownController.DeleteRundownHandler)
}
