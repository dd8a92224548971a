package main

import (
	"log"
	"time"

	"github.com/MikeNoppo/UPT-kearsipan-sub001/config"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/handler"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/ledger"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/middleware"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/internal/models"
	"github.com/MikeNoppo/UPT-kearsipan-sub001/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&models.User{},
		&models.InventoryItem{},
		&models.StockTransaction{},
		&models.PurchaseRequest{},
		&models.Reception{},
		&models.Distribution{},
		&models.Letter{},
		&models.Archive{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdmin(db)

	// 4. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	engine := ledger.NewEngine(db)

	authHandler := &handler.AuthHandler{DB: db}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	userHandler := &handler.UserHandler{DB: db}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator))
	{
		adminRoutes.POST("/users", userHandler.CreateUser)
		adminRoutes.GET("/users", userHandler.ListUsers)
		adminRoutes.PUT("/users/:id", userHandler.UpdateUser)
		adminRoutes.PUT("/users/:id/status", userHandler.UpdateUserStatus)
		adminRoutes.PUT("/users/:id/password", userHandler.ResetUserPassword)
		adminRoutes.DELETE("/users/:id", userHandler.DeleteUser)
	}

	inventoryHandler := &handler.InventoryHandler{DB: db}
	invRoutes := r.Group("/api/v1/inventory")
	invRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff))
	{
		invRoutes.GET("/items", inventoryHandler.ListItems)
		invRoutes.POST("/items", inventoryHandler.CreateItem)
		invRoutes.GET("/items/:id", inventoryHandler.GetItem)
		invRoutes.PUT("/items/:id", inventoryHandler.UpdateItem)
		invRoutes.DELETE("/items/:id", inventoryHandler.DeleteItem)
		invRoutes.GET("/alerts", inventoryHandler.GetStockAlerts)
	}

	stockHandler := &handler.StockHandler{DB: db, Engine: engine}
	stockRoutes := r.Group("/api/v1/stock")
	stockRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff))
	{
		stockRoutes.POST("/transactions", stockHandler.CreateTransaction)
		stockRoutes.GET("/transactions", stockHandler.ListTransactions)
		stockRoutes.GET("/transactions/:id", stockHandler.GetTransaction)
	}

	procurementHandler := &handler.ProcurementHandler{DB: db, Engine: engine}
	procRoutes := r.Group("/api/v1/procurement")
	procRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff))
	{
		procRoutes.POST("/requests", procurementHandler.CreatePurchaseRequest)
		procRoutes.GET("/requests", procurementHandler.ListPurchaseRequests)
		procRoutes.PUT("/requests/:id/decision",
			middleware.AuthMiddleware(models.RoleAdministrator),
			procurementHandler.DecidePurchaseRequest)
		procRoutes.POST("/receptions", procurementHandler.CreateReception)
		procRoutes.GET("/receptions", procurementHandler.ListReceptions)
		procRoutes.POST("/distributions", procurementHandler.CreateDistribution)
		procRoutes.GET("/distributions", procurementHandler.ListDistributions)
	}

	letterHandler := &handler.LetterHandler{DB: db}
	letterRoutes := r.Group("/api/v1/letters")
	letterRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff))
	{
		letterRoutes.POST("", letterHandler.CreateLetter)
		letterRoutes.GET("", letterHandler.ListLetters)
		letterRoutes.GET("/:id", letterHandler.GetLetter)
		letterRoutes.PUT("/:id", letterHandler.UpdateLetter)
		letterRoutes.DELETE("/:id", letterHandler.DeleteLetter)
	}

	archiveHandler := &handler.ArchiveHandler{DB: db}
	archiveRoutes := r.Group("/api/v1/archives")
	archiveRoutes.Use(middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff))
	{
		archiveRoutes.POST("", archiveHandler.CreateArchive)
		archiveRoutes.GET("", archiveHandler.ListArchives)
		archiveRoutes.GET("/:id", archiveHandler.GetArchive)
		archiveRoutes.PUT("/:id", archiveHandler.UpdateArchive)
		archiveRoutes.DELETE("/:id", archiveHandler.DeleteArchive)
	}

	dashboardHandler := &handler.DashboardHandler{DB: db}
	r.GET("/api/v1/dashboard",
		middleware.AuthMiddleware(models.RoleAdministrator, models.RoleStaff),
		dashboardHandler.GetStats)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
