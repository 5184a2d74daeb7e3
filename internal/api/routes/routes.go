package routes

import (
	"time"

	"fleet-operations-backend/internal/api/handlers"
	"fleet-operations-backend/internal/api/middleware"
	"fleet-operations-backend/internal/auth"
	"fleet-operations-backend/internal/config"
	"fleet-operations-backend/internal/repository"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Setup wires repositories, services, handlers and middleware into a router
func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	vesselRepo := repository.NewVesselRepository(db)
	documentRepo := repository.NewVesselDocumentRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	planRepo := repository.NewMaintenancePlanRepository(db)
	maneuverRepo := repository.NewManeuverRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	noveltyRepo := repository.NewNoveltyRepository(db)

	// Services
	userService := service.NewUserService(userRepo, roleRepo, validate)
	roleService := service.NewRoleService(roleRepo, validate)
	clientService := service.NewClientService(clientRepo, validate)
	vesselService := service.NewVesselService(vesselRepo, clientRepo, validate)
	documentService := service.NewVesselDocumentService(documentRepo, vesselRepo, validate)
	equipmentService := service.NewEquipmentService(equipmentRepo, validate)
	planService := service.NewMaintenancePlanService(planRepo, vesselRepo, equipmentRepo, validate)
	maneuverService := service.NewManeuverService(maneuverRepo, vesselRepo, validate)
	scheduleService := service.NewScheduleService(scheduleRepo, noveltyRepo, userRepo, validate)

	// Authentication
	permissions, err := auth.LoadPermissionConfig(cfg.PermissionFile)
	if err != nil {
		return nil, err
	}
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute, userRepo, permissions)
	authMiddleware := auth.NewMiddleware(authService)
	authHandler := auth.NewHandler(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	roleHandler := handlers.NewRoleHandler(roleService)
	clientHandler := handlers.NewClientHandler(clientService)
	vesselHandler := handlers.NewVesselHandler(vesselService)
	documentHandler := handlers.NewVesselDocumentHandler(documentService)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	planHandler := handlers.NewMaintenancePlanHandler(planService)
	maneuverHandler := handlers.NewManeuverHandler(maneuverService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/v1/auth/login", authHandler.Login)

	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/auth/me", authHandler.Me)

		users := api.Group("/users")
		{
			users.POST("", authMiddleware.RequirePermission("users:write"), userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", authMiddleware.RequirePermission("users:write"), userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequirePermission("users:write"), userHandler.DeleteUser)
		}

		roles := api.Group("/roles")
		{
			roles.POST("", authMiddleware.RequirePermission("roles:write"), roleHandler.CreateRole)
			roles.GET("", roleHandler.ListRoles)
			roles.GET("/:id", roleHandler.GetRole)
			roles.PUT("/:id", authMiddleware.RequirePermission("roles:write"), roleHandler.UpdateRole)
			roles.DELETE("/:id", authMiddleware.RequirePermission("roles:write"), roleHandler.DeleteRole)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", authMiddleware.RequirePermission("clients:write"), clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", authMiddleware.RequirePermission("clients:write"), clientHandler.UpdateClient)
			clients.DELETE("/:id", authMiddleware.RequirePermission("clients:write"), clientHandler.DeleteClient)
		}

		vessels := api.Group("/vessels")
		{
			vessels.POST("", authMiddleware.RequirePermission("vessels:write"), vesselHandler.CreateVessel)
			vessels.GET("", vesselHandler.ListVessels)
			vessels.GET("/:id", vesselHandler.GetVessel)
			vessels.GET("/:id/documents", documentHandler.ListByVessel)
			vessels.PUT("/:id", authMiddleware.RequirePermission("vessels:write"), vesselHandler.UpdateVessel)
			vessels.DELETE("/:id", authMiddleware.RequirePermission("vessels:write"), vesselHandler.DeleteVessel)
		}

		documents := api.Group("/vessel-documents")
		{
			documents.POST("", authMiddleware.RequirePermission("vessels:write"), documentHandler.CreateDocument)
			documents.GET("/expiring", documentHandler.ListExpiring)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", authMiddleware.RequirePermission("vessels:write"), documentHandler.UpdateDocument)
			documents.DELETE("/:id", authMiddleware.RequirePermission("vessels:write"), documentHandler.DeleteDocument)
		}

		equipment := api.Group("/equipment")
		{
			equipment.POST("", authMiddleware.RequirePermission("equipment:write"), equipmentHandler.CreateEquipment)
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", authMiddleware.RequirePermission("equipment:write"), equipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", authMiddleware.RequirePermission("equipment:write"), equipmentHandler.DeleteEquipment)
		}

		plans := api.Group("/maintenance-plans")
		{
			plans.POST("", authMiddleware.RequirePermission("maintenance:write"), planHandler.CreatePlan)
			plans.GET("", planHandler.ListPlans)
			plans.GET("/due", planHandler.ListDuePlans)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id", authMiddleware.RequirePermission("maintenance:write"), planHandler.UpdatePlan)
			plans.POST("/:id/complete", authMiddleware.RequirePermission("maintenance:write"), planHandler.CompletePlan)
			plans.DELETE("/:id", authMiddleware.RequirePermission("maintenance:write"), planHandler.DeletePlan)
		}

		maneuvers := api.Group("/maneuvers")
		{
			maneuvers.POST("", authMiddleware.RequirePermission("maneuvers:write"), maneuverHandler.CreateManeuver)
			maneuvers.GET("", maneuverHandler.ListManeuvers)
			maneuvers.GET("/calendar", maneuverHandler.ManeuverCalendar)
			maneuvers.GET("/:id", maneuverHandler.GetManeuver)
			maneuvers.PUT("/:id", authMiddleware.RequirePermission("maneuvers:write"), maneuverHandler.UpdateManeuver)
			maneuvers.PATCH("/:id/status", authMiddleware.RequirePermission("maneuvers:write"), maneuverHandler.ChangeManeuverStatus)
			maneuvers.DELETE("/:id", authMiddleware.RequirePermission("maneuvers:write"), maneuverHandler.DeleteManeuver)
		}

		schedules := api.Group("/schedules")
		{
			schedules.POST("", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.CreateSchedule)
			schedules.POST("/preview", scheduleHandler.PreviewSchedule)
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.GET("/:id", scheduleHandler.GetSchedule)
			schedules.DELETE("/:id", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.DeleteSchedule)
			schedules.PATCH("/:id/work-days", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.UpdateWorkDay)
			schedules.PUT("/:id/work-days", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.BulkWorkDayTimes)
			schedules.PUT("/:id/novelties", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.SaveNovelty)
			schedules.GET("/:id/novelties", scheduleHandler.ListNovelties)
			schedules.DELETE("/:id/novelties/:noveltyId", authMiddleware.RequirePermission("schedules:write"), scheduleHandler.DeleteNovelty)
		}
	}

	logrus.WithField("routes", len(router.Routes())).Info("router configured")
	return router, nil
}
