package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-dashboard/internal/common/api"
	"go-dashboard/internal/config"
	"go-dashboard/internal/database"
	"go-dashboard/internal/features/auth"
	"go-dashboard/internal/features/menu"
	"go-dashboard/internal/features/order"
	"go-dashboard/internal/features/permission"
	"go-dashboard/internal/features/product"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/features/user"
	"go-dashboard/internal/logger"
	"go-dashboard/internal/middleware"
	"go-dashboard/pkg/apperr"
	"go-dashboard/pkg/idgen"
	"go-dashboard/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			return c.Status(apperr.HTTPStatus(err)).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route groups\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// ConfigureTokens pushes the signing settings from config into the jwt helper.
func ConfigureTokens(cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)
	utils.SetTokenTTL(cfg.JWTTTL)
}

// Repository providers switch between Mongo and the in-memory fixtures
// depending on USE_MOCK_DATA.

func provideRoleRepository(cfg *config.Config, mongodb *database.MongodbDB) role.RoleRepository {
	if cfg.UseMockData {
		return role.NewMemoryRoleRepository(role.FixtureRoles())
	}
	return role.NewRoleRepository(mongodb)
}

func providePermissionRepository(cfg *config.Config, mongodb *database.MongodbDB) permission.PermissionRepository {
	if cfg.UseMockData {
		return permission.NewMemoryPermissionRepository(permission.FixturePermissions())
	}
	return permission.NewPermissionRepository(mongodb)
}

func provideUserRepository(cfg *config.Config, mongodb *database.MongodbDB, roleRepo role.RoleRepository) (user.UserRepository, error) {
	if !cfg.UseMockData {
		return user.NewUserRepository(mongodb), nil
	}

	roles, err := roleRepo.List(context.Background())
	if err != nil {
		return nil, err
	}
	roleIDs := map[string]primitive.ObjectID{}
	for _, r := range roles {
		roleIDs[r.Name] = r.ID
	}
	users, err := user.FixtureUsers(roleIDs)
	if err != nil {
		return nil, err
	}
	return user.NewMemoryUserRepository(users), nil
}

func provideMenuRepository(cfg *config.Config, mongodb *database.MongodbDB) menu.MenuRepository {
	if cfg.UseMockData {
		return menu.NewMemoryMenuRepository(menu.FixtureMenus())
	}
	return menu.NewMenuRepository(mongodb)
}

func provideProductRepository(cfg *config.Config, mongodb *database.MongodbDB) product.ProductRepository {
	if cfg.UseMockData {
		return product.NewMemoryProductRepository(product.FixtureProducts())
	}
	return product.NewProductRepository(mongodb)
}

func provideOrderRepository(cfg *config.Config, mongodb *database.MongodbDB) order.OrderRepository {
	if cfg.UseMockData {
		return order.NewMemoryOrderRepository(order.FixtureOrders())
	}
	return order.NewOrderRepository(mongodb)
}

func provideIDGenerator() (*idgen.Generator, error) {
	return idgen.NewGenerator(1)
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,
			provideIDGenerator,

			provideRoleRepository,
			providePermissionRepository,
			provideUserRepository,
			provideMenuRepository,
			provideProductRepository,
			provideOrderRepository,

			auth.NewAuthService,
			user.NewUserService,
			role.NewRoleService,
			permission.NewPermissionService,
			menu.NewMenuService,
			product.NewProductService,
			order.NewOrderService,

			// permission middleware resolves grants through the role service
			func(s role.RoleService) middleware.RoleService { return s },

			auth.NewAuthController,
			user.NewUserController,
			role.NewRoleController,
			menu.NewMenuController,
			product.NewProductController,
			order.NewOrderController,

			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(role.NewRoleApi),
			AsRoute(permission.NewPermissionApi),
			AsRoute(menu.NewMenuApi),
			AsRoute(product.NewProductApi),
			AsRoute(order.NewOrderApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureTokens,
			RegisterAllRoutesWithAnnotation,
			StartServer,
		),
	)

	app.Run()
}
