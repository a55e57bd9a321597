package controller

import (
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/service"
	"github.com/Malhaar4905/Deep-Thinkers-Project-Hackathon/internal/util"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
	AuthService      *service.AuthService
}

func NewDashboardController(dashboardService *service.DashboardService, authService *service.AuthService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
		AuthService:      authService,
	}
}

// Home is public: all modules, all challenges, top five users overall.
func (c *DashboardController) Home(ctx *gin.Context) {
	data, err := c.DashboardService.Home()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}

func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	data, err := c.DashboardService.Dashboard(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}
