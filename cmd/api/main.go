package main

import (
	"fmt"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/config"
	appHTTP "github.com/albapay/albapay-backend-go/internal/handler/http"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/albapay/albapay-backend-go/internal/pkg/jwt"
	"github.com/albapay/albapay-backend-go/internal/repository/postgresql"
	authService "github.com/albapay/albapay-backend-go/internal/service/auth"
	employeeService "github.com/albapay/albapay-backend-go/internal/service/employee"
	exceptionService "github.com/albapay/albapay-backend-go/internal/service/exception"
	payrollService "github.com/albapay/albapay-backend-go/internal/service/payroll"
	storeService "github.com/albapay/albapay-backend-go/internal/service/store"
	templateService "github.com/albapay/albapay-backend-go/internal/service/template"
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
	storeRepo := postgresql.NewStoreRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	templateRepo := postgresql.NewTemplateRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	storeSvc := storeService.NewStoreService(db, storeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, storeRepo, employeeRepo)
	templateSvc := templateService.NewTemplateService(db, storeRepo, templateRepo)
	exceptionSvc := exceptionService.NewExceptionService(storeRepo, employeeRepo, exceptionRepo)
	payrollSvc := payrollService.NewPayrollService(storeRepo, templateRepo, employeeRepo, exceptionRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	storeHandler := appHTTP.NewStoreHandler(storeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	templateHandler := appHTTP.NewTemplateHandler(templateSvc)
	exceptionHandler := appHTTP.NewExceptionHandler(exceptionSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		authHandler,
		storeHandler,
		employeeHandler,
		templateHandler,
		exceptionHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
