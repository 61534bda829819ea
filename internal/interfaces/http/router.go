package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obrasoft/almoxarifado-api/internal/application/analytics"
	"github.com/obrasoft/almoxarifado-api/internal/application/auth"
	"github.com/obrasoft/almoxarifado-api/internal/application/movement"
	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	MaterialUC       *usecase.MaterialUseCase
	ProjectUC        *usecase.ProjectUseCase
	LocationUC       *usecase.LocationUseCase
	SupplierUC       *usecase.SupplierUseCase
	WorkOrderUC      *usecase.WorkOrderUseCase
	StockUC          *usecase.StockUseCase
	SettingUC        *usecase.SettingUseCase
	RegisterMovement *movement.RegisterMovementUseCase
	DashboardUC      *analytics.DashboardUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Quem movimenta estoque: admin, gestor e almoxarife.
	movers := RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleStorekeep)
	// Quem administra cadastros e configurações: admin e gestor.
	admins := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Materiais (protegido; escrita restrita)
	materials := protected.Group("/materiais")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Post("/", admins, materialHandler.Create)
	materials.Put("/:id", admins, materialHandler.Update)
	materials.Delete("/:id", admins, materialHandler.Deactivate)

	// Obras
	projects := protected.Group("/obras")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Post("/", admins, projectHandler.Create)
	projects.Put("/:id", admins, projectHandler.Update)

	// Locais físicos
	locations := protected.Group("/locais")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", admins, locationHandler.Create)
	locations.Put("/:id", admins, locationHandler.Update)

	// Fornecedores
	suppliers := protected.Group("/fornecedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", admins, supplierHandler.Create)
	suppliers.Put("/:id", admins, supplierHandler.Update)
	suppliers.Delete("/:id", admins, supplierHandler.Deactivate)

	// Ordens de serviço
	orders := protected.Group("/ordens-servico")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	orders.Get("/", workOrderHandler.List)
	orders.Get("/:id", workOrderHandler.GetByID)
	orders.Post("/", admins, workOrderHandler.Create)
	orders.Put("/:id", admins, workOrderHandler.Update)

	// Movimentações (motor de estoque)
	movements := protected.Group("/movimentacoes")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.StockUC, deps.SettingUC)
	stockHandler := NewStockHandler(deps.StockUC)
	movements.Post("/entrada", movers, movementHandler.RegisterEntry)
	movements.Post("/saida", movers, movementHandler.RegisterExit)
	movements.Get("/material/:id", stockHandler.ListMovementsByMaterial)
	movements.Get("/local/:id", stockHandler.ListMovementsByLocation)
	movements.Get("/:id", stockHandler.GetMovement)

	// Saldos e unidades
	stock := protected.Group("/estoque")
	stock.Get("/:id_local", stockHandler.ListByLocation)
	stock.Get("/:id_local/:id_material", stockHandler.GetBalance)
	protected.Get("/unidades", stockHandler.ListUnits)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
	protected.Get("/dashboard/estoque-baixo", dashboardHandler.GetLowStock)

	// Configurações (somente admin/gestor)
	settings := protected.Group("/configuracoes", admins)
	settingHandler := NewSettingHandler(deps.SettingUC)
	settings.Get("/", settingHandler.List)
	settings.Get("/:chave", settingHandler.GetByKey)
	settings.Put("/:chave", settingHandler.UpdateValue)

	// Usuários (somente admin/gestor)
	protected.Get("/usuarios", admins, authHandler.ListUsers)
}
