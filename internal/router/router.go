package router

import (
	"time"

	"github.com/12mativ/bd-kursach-pizzeria-back/internal/config"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/handler"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/middleware"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/model"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/repository"
	"github.com/12mativ/bd-kursach-pizzeria-back/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	workplaceRepo := repository.NewWorkplaceRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, clientRepo, employeeRepo, cfg)
	orderSvc := service.NewOrderService(orderRepo, productRepo, clientRepo)
	productSvc := service.NewProductService(productRepo)
	employeeSvc := service.NewEmployeeService(employeeRepo, workplaceRepo)
	workplaceSvc := service.NewWorkplaceService(workplaceRepo, employeeRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo, employeeRepo)
	qrGen := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ordersH := handler.NewOrdersHandler(orderSvc, qrGen)
	productsH := handler.NewProductsHandler(productSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	workplacesH := handler.NewWorkplacesHandler(workplaceSvc)
	schedulesH := handler.NewSchedulesHandler(scheduleSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(rdb), authH.Login)
		auth.POST("/register", authH.RegisterClient)
		auth.POST("/register-employee", jwtMW, middleware.RequireRole(model.RoleAdmin), authH.RegisterEmployee)
		auth.GET("/session", jwtMW, authH.Session)
	}

	staff := []string{model.RoleAdmin, model.RoleManager}

	orders := r.Group("/orders", jwtMW)
	{
		orders.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleClient), ordersH.Create)
		orders.GET("", ordersH.ListByClient)
		orders.GET("/:id", ordersH.GetByID)
		orders.GET("/:id/qr", ordersH.QRCode)
		orders.PATCH("/:id", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCashier), ordersH.Update)
		orders.DELETE("/:id", middleware.RequireRole(staff...), ordersH.Delete)
	}

	products := r.Group("/products", jwtMW)
	{
		products.GET("/pizzas", productsH.ListPizzas)
		products.GET("/drinks", productsH.ListDrinks)
		products.GET("/:id", productsH.GetByID)
		products.POST("", middleware.RequireRole(staff...), productsH.Create)
		products.PATCH("/:id", middleware.RequireRole(staff...), productsH.Update)
		products.PATCH("/:id/available", middleware.RequireRole(staff...), productsH.SetAvailable)
		products.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), productsH.Delete)
	}

	variants := r.Group("/product-variants", jwtMW)
	{
		variants.GET("", productsH.ListVariants)
		variants.POST("", middleware.RequireRole(staff...), productsH.CreateVariant)
	}

	employees := r.Group("/employees", jwtMW)
	{
		employees.GET("", employeesH.List)
		employees.GET("/:id", employeesH.GetByID)
		employees.POST("", middleware.RequireRole(staff...), employeesH.Create)
		employees.PATCH("/:id", middleware.RequireRole(staff...), employeesH.Update)
		employees.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), employeesH.Delete)
		employees.POST("/:id/workplaces", middleware.RequireRole(staff...), employeesH.AssignWorkplace)
	}

	workplaces := r.Group("/workplaces", jwtMW)
	{
		workplaces.GET("", workplacesH.List)
		workplaces.GET("/:id", workplacesH.GetByID)
		workplaces.GET("/:id/employees", workplacesH.ListRoster)
		workplaces.POST("", middleware.RequireRole(staff...), workplacesH.Create)
		workplaces.PATCH("/:id", middleware.RequireRole(staff...), workplacesH.Update)
		workplaces.PUT("/:id/employees", middleware.RequireRole(staff...), workplacesH.ReplaceRoster)
		workplaces.DELETE("/:id", middleware.RequireRole(model.RoleAdmin), workplacesH.Delete)
	}

	schedules := r.Group("/employee-schedules", jwtMW, middleware.RequireRole(staff...))
	{
		schedules.POST("/shifts", schedulesH.CreateShift)
		schedules.GET("/shifts", schedulesH.ListShifts)
		schedules.POST("/assign", schedulesH.AssignShift)
		schedules.GET("/employee/:id", schedulesH.EmployeeSchedule)
		schedules.DELETE("/assignment/:id", schedulesH.DeleteAssignment)
	}

	return r
}
