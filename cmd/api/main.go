package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-ops-erp/internal/handler"
	"go-ops-erp/internal/middleware"
	"go-ops-erp/internal/model"
	"go-ops-erp/internal/repository"
	"go-ops-erp/internal/service"
	"go-ops-erp/internal/ws"
	"go-ops-erp/pkg/config"
	"go-ops-erp/pkg/database"
	"go-ops-erp/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load env + config
	// .env is optional; deployments rely on system env.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg.LogJSON)

	// 2. Setup database
	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := db.SetupJoinTable(&model.Role{}, "Permissions", &model.RolePermission{}); err != nil {
		log.WithError(err).Fatal("join table setup failed")
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Permission{}, &model.Role{}, &model.UserRoleAssignment{},
		&model.Client{}, &model.Provider{}, &model.Equipment{},
		&model.Quotation{}, &model.QuotationItem{},
		&model.ServiceOrder{}, &model.PurchaseOrder{}, &model.PurchaseOrderItem{},
		&model.Company{},
	); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	// Seeding is deliberately not run here: bootstrap is out-of-band (cmd/seed).

	// 3. WebSocket hub for dashboard events
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Wiring
	userRepo := repository.NewUserRepo(db)
	permRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	assignRepo := repository.NewAssignmentRepo(db)
	clientRepo := repository.NewClientRepo(db)
	providerRepo := repository.NewProviderRepo(db)
	equipmentRepo := repository.NewEquipmentRepo(db)
	quotationRepo := repository.NewQuotationRepo(db)
	serviceOrderRepo := repository.NewServiceOrderRepo(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepo(db)
	companyRepo := repository.NewCompanyRepo(db)

	rbacService := service.NewRBACService(db, assignRepo)
	authService := service.NewAuthService(userRepo, rbacService)
	userService := service.NewUserService(userRepo, roleRepo, assignRepo)
	orderService := service.NewOrderService(serviceOrderRepo, purchaseOrderRepo, wsHub)
	dashService := service.NewDashboardService(clientRepo, equipmentRepo, quotationRepo, serviceOrderRepo, purchaseOrderRepo)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleRepo, permRepo)
	clientHandler := handler.NewClientHandler(clientRepo)
	providerHandler := handler.NewProviderHandler(providerRepo)
	equipmentHandler := handler.NewEquipmentHandler(equipmentRepo)
	quotationHandler := handler.NewQuotationHandler(quotationRepo)
	orderHandler := handler.NewOrderHandler(orderService, serviceOrderRepo, purchaseOrderRepo)
	companyHandler := handler.NewCompanyHandler(companyRepo)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Ops ERP v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Coarse pre-check: cookie presence only, before any handler runs.
	// Full validation happens in RequireAuth and the permission middleware.
	app.Use(middleware.SessionGate(cfg.SessionCookie, cfg.SignInPath))

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(authService, cfg.SessionCookie))

	protected.Post("/auth/logout", authHandler.Logout)

	requires := func(action model.Action, resource model.Resource) fiber.Handler {
		return middleware.RequirePermission(rbacService, action, resource)
	}

	protected.Get("/dashboard/stats", requires(model.ActionRead, model.ResourceDashboard), dashHandler.GetStats)

	protected.Get("/clients", requires(model.ActionRead, model.ResourceClient), clientHandler.GetClients)
	protected.Get("/clients/:id", requires(model.ActionRead, model.ResourceClient), clientHandler.GetClient)
	protected.Post("/clients", requires(model.ActionCreate, model.ResourceClient), clientHandler.CreateClient)
	protected.Put("/clients/:id", requires(model.ActionUpdate, model.ResourceClient), clientHandler.UpdateClient)
	protected.Delete("/clients/:id", requires(model.ActionDelete, model.ResourceClient), clientHandler.DeleteClient)

	// Providers serve purchasing, so they share the PURCHASE_ORDER grants.
	protected.Get("/providers", requires(model.ActionRead, model.ResourcePurchaseOrder), providerHandler.GetProviders)
	protected.Get("/providers/:id", requires(model.ActionRead, model.ResourcePurchaseOrder), providerHandler.GetProvider)
	protected.Post("/providers", requires(model.ActionCreate, model.ResourcePurchaseOrder), providerHandler.CreateProvider)
	protected.Put("/providers/:id", requires(model.ActionUpdate, model.ResourcePurchaseOrder), providerHandler.UpdateProvider)
	protected.Delete("/providers/:id", requires(model.ActionDelete, model.ResourcePurchaseOrder), providerHandler.DeleteProvider)

	protected.Get("/equipment", requires(model.ActionRead, model.ResourceEquipment), equipmentHandler.GetEquipment)
	protected.Get("/equipment/:id", requires(model.ActionRead, model.ResourceEquipment), equipmentHandler.GetEquipmentByID)
	protected.Post("/equipment", requires(model.ActionCreate, model.ResourceEquipment), equipmentHandler.CreateEquipment)
	protected.Put("/equipment/:id", requires(model.ActionUpdate, model.ResourceEquipment), equipmentHandler.UpdateEquipment)
	protected.Delete("/equipment/:id", requires(model.ActionDelete, model.ResourceEquipment), equipmentHandler.DeleteEquipment)

	protected.Get("/quotations", requires(model.ActionRead, model.ResourceQuotation), quotationHandler.GetQuotations)
	protected.Get("/quotations/:id", requires(model.ActionRead, model.ResourceQuotation), quotationHandler.GetQuotation)
	protected.Post("/quotations", requires(model.ActionCreate, model.ResourceQuotation), quotationHandler.CreateQuotation)
	protected.Put("/quotations/:id", requires(model.ActionUpdate, model.ResourceQuotation), quotationHandler.UpdateQuotation)
	protected.Delete("/quotations/:id", requires(model.ActionDelete, model.ResourceQuotation), quotationHandler.DeleteQuotation)

	protected.Get("/service-orders", requires(model.ActionRead, model.ResourceServiceOrder), orderHandler.GetServiceOrders)
	protected.Get("/service-orders/:id", requires(model.ActionRead, model.ResourceServiceOrder), orderHandler.GetServiceOrder)
	protected.Post("/service-orders", requires(model.ActionCreate, model.ResourceServiceOrder), orderHandler.CreateServiceOrder)
	protected.Put("/service-orders/:id/status", requires(model.ActionUpdate, model.ResourceServiceOrder), orderHandler.UpdateServiceOrderStatus)

	protected.Get("/purchase-orders", requires(model.ActionRead, model.ResourcePurchaseOrder), orderHandler.GetPurchaseOrders)
	protected.Get("/purchase-orders/:id", requires(model.ActionRead, model.ResourcePurchaseOrder), orderHandler.GetPurchaseOrder)
	protected.Post("/purchase-orders", requires(model.ActionCreate, model.ResourcePurchaseOrder), orderHandler.CreatePurchaseOrder)
	protected.Put("/purchase-orders/:id/status", requires(model.ActionUpdate, model.ResourcePurchaseOrder), orderHandler.UpdatePurchaseOrderStatus)

	protected.Get("/company", requires(model.ActionRead, model.ResourceCompany), companyHandler.GetCompany)
	protected.Put("/company", requires(model.ActionUpdate, model.ResourceCompany), companyHandler.UpdateCompany)

	protected.Get("/users", requires(model.ActionRead, model.ResourceUser), userHandler.GetUsers)
	protected.Get("/users/:id", requires(model.ActionRead, model.ResourceUser), userHandler.GetUser)
	protected.Post("/users", requires(model.ActionCreate, model.ResourceUser), userHandler.CreateUser)
	protected.Put("/users/:id", requires(model.ActionUpdate, model.ResourceUser), userHandler.UpdateUser)
	protected.Delete("/users/:id", requires(model.ActionDelete, model.ResourceUser), userHandler.DeleteUser)
	protected.Get("/users/:id/roles", requires(model.ActionRead, model.ResourceUser), userHandler.ListUserRoles)
	protected.Post("/users/:id/roles", requires(model.ActionManage, model.ResourceUser), userHandler.AssignRole)
	protected.Delete("/users/:id/roles/:roleId", requires(model.ActionManage, model.ResourceUser), userHandler.RevokeRole)

	protected.Get("/roles", requires(model.ActionRead, model.ResourceRole), roleHandler.GetRoles)
	protected.Post("/roles", requires(model.ActionCreate, model.ResourceRole), roleHandler.CreateRole)
	protected.Put("/roles/:id/permissions", requires(model.ActionManage, model.ResourceRole), roleHandler.UpdateRolePermissions)
	protected.Get("/permissions", requires(model.ActionRead, model.ResourcePermission), roleHandler.GetPermissions)

	protected.Get("/admin/overview", requires(model.ActionRead, model.ResourceAdmin), func(c *fiber.Ctx) error {
		roles, err := roleRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch roles"})
		}
		users, err := userRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch users"})
		}
		return c.JSON(fiber.Map{
			"roles": len(roles),
			"users": len(users),
		})
	})

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 6. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
