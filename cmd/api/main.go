package main

import (
	"context"
	"log"
	"os"
	"time"

	"precinct/internal/academy"
	"precinct/internal/auth"
	"precinct/internal/calculator"
	"precinct/internal/cases"
	"precinct/internal/db"
	"precinct/internal/logistics"
	"precinct/internal/middleware"
	"precinct/internal/penalcode"
	"precinct/internal/personnel"
	"precinct/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── PENAL CODE ─────────────────────────
	penalCodePath := os.Getenv("PENALCODE_PATH")
	if penalCodePath == "" {
		penalCodePath = "data/penalcode.json"
	}

	var catalog *penalcode.Catalog
	doc, loadErr := penalcode.LoadFile(penalCodePath)
	if loadErr != nil {
		// Serve 503 on penal-code endpoints instead of crashing.
		log.Printf("❌ Penal code load failed: %v", loadErr)
	} else {
		catalog = penalcode.Flatten(doc)
		log.Printf("✅ Penal code loaded: revision=%s items=%d skipped=%d",
			catalog.Revision, catalog.Stats.Items, catalog.Stats.SkippedEntries)
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	penalCodeService := penalcode.NewService(catalog, loadErr)

	addMode := calculator.AddModeDuplicate
	if os.Getenv("CART_ADD_MODE") == "merge" {
		addMode = calculator.AddModeMerge
	}
	calculatorService := calculator.NewService(
		penalCodeService,
		calculator.NewPostgresStore(pgDB),
		addMode,
	)

	caseService := cases.NewService(cases.NewPostgresRepository(pgDB))
	personnelService := personnel.NewService(personnel.NewPostgresRepository(pgDB))
	logisticsService := logistics.NewService(logistics.NewPostgresRepository(pgDB))
	academyService := academy.NewService(academy.NewPostgresRepository(pgDB))

	// ───────────────────────── HANDLERS ─────────────────────────
	penalCodeHandler := penalcode.NewHandler(penalCodeService)
	calculatorHandler := calculator.NewHandler(calculatorService)
	caseHandler := cases.NewHandler(caseService, r2Client)
	personnelHandler := personnel.NewHandler(personnelService)
	logisticsHandler := logistics.NewHandler(logisticsService)
	academyHandler := academy.NewHandler(academyService)

	// ───────────────────────── PENAL CODE ROUTES ─────────────────────────
	penalCodeGroup := r.Group("/penalcode")
	penalCodeGroup.Use(middleware.AuthMiddleware())
	{
		penalCodeGroup.GET("", penalCodeHandler.List)
		penalCodeGroup.GET("/items", penalCodeHandler.SearchItems)
		penalCodeGroup.GET("/items/:id", penalCodeHandler.GetItem)
	}

	// ───────────────────────── CALCULATOR ROUTES ─────────────────────────
	calc := r.Group("/calculator")
	calc.Use(middleware.AuthMiddleware())
	{
		calc.POST("/summary", calculatorHandler.Summary)
		calc.POST("/commands", calculatorHandler.Commands)

		calc.GET("/history", calculatorHandler.GetHistory)
		calc.POST("/history", calculatorHandler.SaveHistory)

		calc.GET("/favorites", calculatorHandler.GetFavorites)
		calc.POST("/favorites/:itemID/toggle", calculatorHandler.ToggleFavorite)

		calc.GET("/templates", calculatorHandler.GetTemplates)
		calc.POST("/templates", calculatorHandler.SaveTemplate)
		calc.DELETE("/templates/:id", calculatorHandler.DeleteTemplate)
		calc.POST("/templates/:id/apply", calculatorHandler.ApplyTemplate)
	}

	// ───────────────────────── CASE ROUTES ─────────────────────────
	caseGroup := r.Group("/cases")
	caseGroup.Use(middleware.AuthMiddleware())
	{
		caseGroup.POST("", caseHandler.CreateCase)
		caseGroup.GET("", caseHandler.ListCases)
		caseGroup.GET("/:id", caseHandler.GetCase)
		caseGroup.PATCH("/:id/status", caseHandler.ChangeStatus)
		caseGroup.POST("/:id/evidence", caseHandler.UploadEvidence)
		caseGroup.POST("/:id/warrants", caseHandler.RequestWarrant)
	}

	warrants := r.Group("/warrants")
	warrants.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleSupervisor, auth.RoleAdmin),
	)
	{
		warrants.GET("/pending", caseHandler.PendingWarrants)
		warrants.POST("/:id/approve", caseHandler.ApproveWarrant)
		warrants.POST("/:id/reject", caseHandler.RejectWarrant)
	}

	// ───────────────────────── PERSONNEL ROUTES ─────────────────────────
	personnelGroup := r.Group("/personnel")
	personnelGroup.Use(middleware.AuthMiddleware())
	{
		personnelGroup.GET("", personnelHandler.ListRoster)
		personnelGroup.GET("/:id", personnelHandler.GetOfficer)

		supervisorOnly := personnelGroup.Group("")
		supervisorOnly.Use(middleware.RequireRole(auth.RoleSupervisor, auth.RoleAdmin))
		{
			supervisorOnly.POST("", personnelHandler.AddOfficer)
			supervisorOnly.PATCH("/:id", personnelHandler.UpdateOfficer)
		}
	}

	// ───────────────────────── LOGISTICS ROUTES ─────────────────────────
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	{
		requests.POST("", logisticsHandler.Submit)
		requests.GET("/me", logisticsHandler.MyRequests)

		supervisorOnly := requests.Group("")
		supervisorOnly.Use(middleware.RequireRole(auth.RoleSupervisor, auth.RoleAdmin))
		{
			supervisorOnly.GET("/pending", logisticsHandler.PendingRequests)
			supervisorOnly.POST("/:id/approve", logisticsHandler.Approve)
			supervisorOnly.POST("/:id/reject", logisticsHandler.Reject)
		}
	}

	// ───────────────────────── ACADEMY ROUTES ─────────────────────────
	academyGroup := r.Group("/academy")
	academyGroup.Use(middleware.AuthMiddleware())
	{
		academyGroup.GET("/trainings", academyHandler.ListTrainings)
		academyGroup.POST("/trainings/:id/enroll", academyHandler.Enroll)
		academyGroup.GET("/trainings/:id/enrollments", academyHandler.ListEnrollments)
		academyGroup.POST("/enrollments/:id/complete", academyHandler.Complete)

		adminOnly := academyGroup.Group("")
		adminOnly.Use(middleware.RequireRole(auth.RoleAdmin))
		{
			adminOnly.POST("/trainings", academyHandler.CreateTraining)
		}
	}

	// ───────────────────────── WORKERS ─────────────────────────
	cases.StartExpiryWorker(context.Background(), caseService)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Println("🚀 Server starting on :8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal("❌ Server failed:", err)
	}
}
