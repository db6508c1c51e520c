package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/empdash/empdash-backend-go/internal/config"
	appGraphQL "github.com/empdash/empdash-backend-go/internal/handler/graphql"
	appHTTP "github.com/empdash/empdash-backend-go/internal/handler/http"
	"github.com/empdash/empdash-backend-go/internal/pkg/jwt"
	"github.com/empdash/empdash-backend-go/internal/repository/memory"
	authService "github.com/empdash/empdash-backend-go/internal/service/auth"
	employeeService "github.com/empdash/empdash-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	userRepo, err := memory.NewSeededUserRepository(memory.SeedUsers())
	if err != nil {
		log.Fatal("Failed to seed user store:", err)
	}
	employeeRepo := memory.NewEmployeeRepository(memory.SeedEmployees())

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	resolver := appGraphQL.NewResolver(authSvc, employeeSvc, employeeRepo)
	schema := appGraphQL.NewSchema(resolver)
	graphqlHandler := appHTTP.NewGraphQLHandler(schema, employeeRepo)

	router := appHTTP.NewRouter(cfg, JWTService, graphqlHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s/graphql\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
