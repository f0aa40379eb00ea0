package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/app"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/config"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/controllers"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/middleware"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/routes"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize pgadmin-api:", err)
	}
	defer application.Close()

	propRepo := repositories.NewPropertyRepository(application.DB)
	floorRepo := repositories.NewFloorRepository(application.DB)
	roomRepo := repositories.NewRoomRepository(application.DB)
	bedRepo := repositories.NewBedRepository(application.DB)
	residentRepo := repositories.NewResidentRepository(application.DB)
	occRepo := repositories.NewOccupancyRepository(application.DB)
	historyRepo := repositories.NewOccupancyHistoryRepository(application.DB)
	expenseRepo := repositories.NewExpenseRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)
	maintRepo := repositories.NewMaintenanceRequestRepository(application.DB)
	userRepo := repositories.NewUserRepository(application.DB)

	if cfg.LDFlag_SeedDbWithTestData {
		if err := app.SeedAllTestData(context.Background(), userRepo, propRepo, cfg.DefaultTimeZone); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed test data")
		}
	}

	var geocoder services.Geocoder
	if cfg.GoogleMapsAPIKey != "" {
		geo, err := services.NewGeoService(cfg.GoogleMapsAPIKey)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to create geocoding client")
		}
		geocoder = geo
	} else {
		utils.Logger.Warn("GOOGLE_MAPS_API_KEY not set; properties are not geocoded")
	}

	var signer services.URLSigner
	if len(cfg.GCSCredentialsJSON) > 0 {
		gcs, err := services.NewGCSSigner(cfg.GCSCredentialsJSON)
		if err != nil {
			utils.Logger.WithError(err).Fatal("Failed to load GCS signing credentials")
		}
		signer = gcs
	} else {
		utils.Logger.Warn("GCS_CREDENTIALS_JSON not set; uploads are disabled")
	}

	loc := application.DefaultLoc
	jwtService := services.NewJWTService(cfg.JWTSecret, constants.TokenTTL)
	authService := services.NewAuthService(userRepo, jwtService)
	propertyService := services.NewPropertyService(propRepo, geocoder, cfg.DefaultTimeZone)
	floorService := services.NewFloorService(floorRepo, propRepo)
	roomService := services.NewRoomService(roomRepo, floorRepo)
	bedService := services.NewBedService(bedRepo, roomRepo, occRepo)
	residentService := services.NewResidentService(residentRepo, propRepo)
	billingService := services.NewBillingService(residentRepo, propRepo, loc)
	occupancyService := services.NewOccupancyService(occRepo, bedRepo, residentRepo, propRepo, loc)
	historyService := services.NewOccupancyHistoryService(historyRepo)
	expenseService := services.NewExpenseService(expenseRepo, propRepo, loc)
	paymentService := services.NewPaymentService(paymentRepo, residentRepo, propRepo, loc)
	maintenanceService := services.NewMaintenanceService(maintRepo, propRepo, residentRepo, roomRepo)
	userService := services.NewUserService(userRepo, propRepo)
	reportService := services.NewReportService(services.ReportRepos{
		Properties:  propRepo,
		Floors:      floorRepo,
		Rooms:       roomRepo,
		Beds:        bedRepo,
		Occupancies: occRepo,
		History:     historyRepo,
		Residents:   residentRepo,
		Payments:    paymentRepo,
		Expenses:    expenseRepo,
		Maintenance: maintRepo,
	}, billingService)
	reminderService := services.NewReminderService(propRepo, billingService, services.NewMessagingNotifier(cfg))
	uploadService := services.NewUploadService(
		residentRepo,
		signer,
		cfg.GCSBucket,
		cfg.GCSUploadPrefix,
		cfg.GCSSignedURLExpiry,
	)

	pageSize := cfg.PageSize
	healthController := controllers.NewHealthController(application.DB)
	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService, reportService, reminderService, pageSize)
	floorController := controllers.NewFloorController(floorService, pageSize)
	roomController := controllers.NewRoomController(roomService, pageSize)
	bedController := controllers.NewBedController(bedService, pageSize)
	residentController := controllers.NewResidentController(residentService, billingService, pageSize)
	occupancyController := controllers.NewOccupancyController(occupancyService, historyService, pageSize)
	expenseController := controllers.NewExpenseController(expenseService, pageSize)
	paymentController := controllers.NewPaymentController(paymentService, pageSize)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService, pageSize)
	userController := controllers.NewUserController(userService, pageSize)
	uploadController := controllers.NewUploadController(uploadService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Ready, healthController.ReadyHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret, userRepo))

	secured.HandleFunc(routes.AuthMe, authController.MeHandler).Methods(http.MethodGet)

	// Properties
	secured.HandleFunc(routes.Properties, propertyController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Properties, propertyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PropertyByID, propertyController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertyController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.PropertyByID, propertyController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.PropertySummary, propertyController.SummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyOccupancyDetail, propertyController.OccupancyDetailHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyHomeSummary, propertyController.HomeSummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyFinancialSummary, propertyController.FinancialSummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyHistorical, propertyController.HistoricalHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyReminders, propertyController.SendRemindersHandler).Methods(http.MethodPost)

	// Floors
	secured.HandleFunc(routes.Floors, floorController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Floors, floorController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.FloorByID, floorController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.FloorByID, floorController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.FloorByID, floorController.DeleteHandler).Methods(http.MethodDelete)

	// Rooms
	secured.HandleFunc(routes.Rooms, roomController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Rooms, roomController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.RoomByID, roomController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.RoomByID, roomController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.RoomByID, roomController.DeleteHandler).Methods(http.MethodDelete)

	// Beds (fixed paths before {id})
	secured.HandleFunc(routes.BedsAvailable, bedController.ListAvailableHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Beds, bedController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Beds, bedController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.BedByID, bedController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.BedByID, bedController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.BedByID, bedController.DeleteHandler).Methods(http.MethodDelete)

	// Residents
	secured.HandleFunc(routes.ResidentsDueSoon, residentController.DueSoonHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ResidentsOverdue, residentController.OverdueHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Residents, residentController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Residents, residentController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ResidentByID, residentController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ResidentByID, residentController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.ResidentByID, residentController.DeleteHandler).Methods(http.MethodDelete)

	// Occupancy
	secured.HandleFunc(routes.OccupancyOccupied, occupancyController.ListOccupiedHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OccupancyAvailable, occupancyController.ListAvailableHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OccupancyAssign, occupancyController.AssignHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Occupancy, occupancyController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Occupancy, occupancyController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.OccupancyByID, occupancyController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OccupancyByID, occupancyController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.OccupancyByID, occupancyController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.OccupancyRelease, occupancyController.ReleaseHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.OccupancyHistory, occupancyController.ListHistoryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.OccupancyHistoryByID, occupancyController.GetHistoryHandler).Methods(http.MethodGet)

	// Expenses
	secured.HandleFunc(routes.ExpensesByCategory, expenseController.ByCategoryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ExpensesSummary, expenseController.SummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Expenses, expenseController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Expenses, expenseController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.ExpenseByID, expenseController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ExpenseByID, expenseController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.ExpenseByID, expenseController.DeleteHandler).Methods(http.MethodDelete)

	// Payments
	secured.HandleFunc(routes.PaymentsSummary, paymentController.SummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentsByResident, paymentController.ByResidentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Payments, paymentController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Payments, paymentController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaymentByID, paymentController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.PaymentByID, paymentController.DeleteHandler).Methods(http.MethodDelete)

	// Maintenance
	secured.HandleFunc(routes.MaintenanceOpen, maintenanceController.OpenRequestsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceByPriority, maintenanceController.ByPriorityHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Maintenance, maintenanceController.ListHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.Maintenance, maintenanceController.CreateHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MaintenanceByID, maintenanceController.GetHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MaintenanceByID, maintenanceController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	secured.HandleFunc(routes.MaintenanceByID, maintenanceController.DeleteHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.MaintenanceResolve, maintenanceController.ResolveHandler).Methods(http.MethodPost)

	// Uploads
	secured.HandleFunc(routes.UploadsResident, uploadController.ResidentUploadHandler).Methods(http.MethodPost)

	// Users (admin only)
	admin := secured.NewRoute().Subrouter()
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.HandleFunc(routes.Users, userController.ListHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.Users, userController.CreateHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.UserByID, userController.GetHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.UserByID, userController.UpdateHandler).Methods(http.MethodPut, http.MethodPatch)
	admin.HandleFunc(routes.UserByID, userController.DeleteHandler).Methods(http.MethodDelete)

	allowedOrigins := []string{cfg.AppUrl}
	if !cfg.LDFlag_CORSHighSecurity {
		allowedOrigins = append(allowedOrigins, utils.CORSLowSecurityAllowedOriginLocalhost)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("pgadmin-api failed to start:", err)
	}
}
