package main

import (
	"fmt"
	"net/http"

	"github.com/krooster/krooster-backend-go/internal/config"
	appHTTP "github.com/krooster/krooster-backend-go/internal/handler/http"
	"github.com/krooster/krooster-backend-go/internal/pkg/database"
	"github.com/krooster/krooster-backend-go/internal/pkg/email"
	"github.com/krooster/krooster-backend-go/internal/pkg/jwt"
	"github.com/krooster/krooster-backend-go/internal/repository/postgresql"
	absenceService "github.com/krooster/krooster-backend-go/internal/service/absence"
	authService "github.com/krooster/krooster-backend-go/internal/service/auth"
	employeeService "github.com/krooster/krooster-backend-go/internal/service/employee"
	planningService "github.com/krooster/krooster-backend-go/internal/service/planning"
	scheduleService "github.com/krooster/krooster-backend-go/internal/service/schedule"
	swapService "github.com/krooster/krooster-backend-go/internal/service/swap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	restaurantRepo := postgresql.NewRestaurantRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	missionRepo := postgresql.NewMissionRepository(db)
	swapRepo := postgresql.NewSwapRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService := email.NewEmailService(cfg.SMTP)

	authSvc := authService.NewService(cfg.Admin, jwtService)
	planningSvc := planningService.NewService(
		db,
		cfg.Rules,
		emailService,
		absenceRepo,
		employeeRepo,
		restaurantRepo,
		shiftRepo,
	)
	employeeSvc := employeeService.NewService(employeeRepo, shiftRepo, cfg.Rules)
	scheduleSvc := scheduleService.NewService(shiftRepo, missionRepo, employeeRepo, restaurantRepo)
	absenceSvc := absenceService.NewService(absenceRepo, employeeRepo)
	swapSvc := swapService.NewService(swapRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewPlanningHandler(planningSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewScheduleHandler(scheduleSvc),
		appHTTP.NewAbsenceHandler(absenceSvc),
		appHTTP.NewSwapHandler(swapSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
