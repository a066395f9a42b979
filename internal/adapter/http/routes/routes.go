package routes

import (
	_ "gestao_obras/docs" // This will be auto-generated
	"gestao_obras/internal/adapter/http/handlers"
	repository2 "gestao_obras/internal/adapter/persistence/repository"
	"gestao_obras/internal/infrastructure/database"
	"gestao_obras/internal/infrastructure/reports"
	"gestao_obras/internal/usecase"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)
	indexRepo := repository2.NewIndexDynamoRepository(ddb)
	equipmentRepo := repository2.NewEquipmentDynamoRepository(ddb)
	costRepo := repository2.NewCostDynamoRepository(ddb)
	segmentRepo := repository2.NewSegmentDynamoRepository(ddb)
	rdoRepo := repository2.NewRDODynamoRepository(ddb)
	planRepo := repository2.NewPlanDynamoRepository(ddb)
	bulletinRepo := repository2.NewBulletinDynamoRepository(ddb)

	projectUseCase := usecase.NewProjectUseCase(projectRepo, companyRepo)
	indexUseCase := usecase.NewIndexUseCase(indexRepo)
	equipmentUseCase := usecase.NewEquipmentUseCase(equipmentRepo, costRepo)
	segmentUseCase := usecase.NewSegmentUseCase(segmentRepo)
	rdoUseCase := usecase.NewRDOUseCase(rdoRepo, indexRepo, segmentUseCase)
	planningUseCase := usecase.NewPlanningUseCase(planRepo, indexRepo)
	bulletinUseCase := usecase.NewBulletinUseCase(bulletinRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(planRepo, rdoRepo, costRepo, indexRepo, equipmentRepo)

	workbookRenderer := reports.NewWorkbookRenderer()
	dailyReportRenderer := reports.NewDailyReportRenderer()

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	indexHandler := handlers.NewIndexHandler(indexUseCase)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase)
	segmentHandler := handlers.NewSegmentHandler(segmentUseCase)
	rdoHandler := handlers.NewRDOHandler(rdoUseCase, projectUseCase, dailyReportRenderer)
	planHandler := handlers.NewPlanHandler(planningUseCase)
	bulletinHandler := handlers.NewBulletinHandler(bulletinUseCase, workbookRenderer)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase, workbookRenderer)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProjectRoutes(v1, projectHandler)
	addIndexRoutes(v1, indexHandler)
	addFleetRoutes(v1, equipmentHandler)
	addSegmentRoutes(v1, segmentHandler)
	addRDORoutes(v1, rdoHandler)
	addPlanningRoutes(v1, planHandler)
	addBulletinRoutes(v1, bulletinHandler)
	addAnalyticsRoutes(v1, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
