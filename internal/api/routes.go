package api

import (
	"net/http"

	"github.com/Kendal-dot/racebuddy/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	raceService service.RaceService,
	planService service.PlanService,
	chatService service.ChatService,
) {

	authHandler := NewAuthHandler(authService)
	raceHandler := NewRaceHandler(raceService)
	planHandler := NewPlanHandler(planService)
	chatHandler := NewChatHandler(chatService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// The race catalogue is public; browsing races does not
		// require an account.
		raceGroup := apiV1.Group("/races")
		{
			raceGroup.GET("", raceHandler.ListRaces)
			raceGroup.GET("/:raceId", raceHandler.GetRace)
			raceGroup.GET("/:raceId/tips", raceHandler.GetRaceTips)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		// --- Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			// POST /api/v1/plans/generate
			planGroup.POST("/generate", planHandler.GeneratePlan)
			// GET /api/v1/plans
			planGroup.GET("", planHandler.GetPlans)
			// GET /api/v1/plans/{planId}
			planGroup.GET("/:planId", planHandler.GetPlanByID)
			// DELETE /api/v1/plans/{planId}
			planGroup.DELETE("/:planId", planHandler.DeletePlan)
			// GET /api/v1/plans/{planId}/export/ics
			planGroup.GET("/:planId/export/ics", planHandler.ExportPlanIcs)
		}

		// --- Chat Routes ---
		chatGroup := protected.Group("/chat")
		{
			// POST /api/v1/chat/ask
			chatGroup.POST("/ask", chatHandler.Ask)
		}
	}
}
