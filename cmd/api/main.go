package main

import (
	"fmt"
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/config"
	appHTTP "github.com/allahdad01/construction-erp-go/internal/handler/http"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/middleware"
	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/allahdad01/construction-erp-go/internal/pkg/jwt"
	"github.com/allahdad01/construction-erp-go/internal/repository/postgresql"
	attendanceService "github.com/allahdad01/construction-erp-go/internal/service/attendance"
	serviceAuth "github.com/allahdad01/construction-erp-go/internal/service/auth"
	serviceCompany "github.com/allahdad01/construction-erp-go/internal/service/company"
	dashboardService "github.com/allahdad01/construction-erp-go/internal/service/dashboard"
	employeeService "github.com/allahdad01/construction-erp-go/internal/service/employee"
	machineService "github.com/allahdad01/construction-erp-go/internal/service/machine"
	payrollService "github.com/allahdad01/construction-erp-go/internal/service/payroll"
	rentalAreaService "github.com/allahdad01/construction-erp-go/internal/service/rentalarea"
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

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	counterRepo := postgresql.NewCounterRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	machineRepo := postgresql.NewMachineRepository(db)
	areaRepo := postgresql.NewRentalAreaRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(userRepo, employeeRepo, refreshTokenRepo, jwtService)
	companySvc := serviceCompany.NewCompanyService(db, companyRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, companyRepo, counterRepo, attendanceSvc)
	payrollSvc := payrollService.NewPayrollService(paymentRepo, attendanceRepo, employeeRepo)
	machineSvc := machineService.NewMachineService(db, machineRepo, companyRepo, counterRepo)
	areaSvc := rentalAreaService.NewAreaService(db, areaRepo, companyRepo, counterRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	subscription := middleware.NewSubscriptionMiddleware(companySvc)

	router := appHTTP.NewRouter(jwtService, subscription, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Machine:    appHTTP.NewMachineHandler(machineSvc),
		RentalArea: appHTTP.NewRentalAreaHandler(areaSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
