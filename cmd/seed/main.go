package main

import (
	"context"
	"errors"
	"flag"

	"go-dashboard/internal/config"
	"go-dashboard/internal/database"
	"go-dashboard/internal/features/menu"
	"go-dashboard/internal/features/order"
	"go-dashboard/internal/features/permission"
	"go-dashboard/internal/features/product"
	"go-dashboard/internal/features/role"
	"go-dashboard/internal/features/user"
	"go-dashboard/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var resetFlag = flag.Bool("reset", false, "drop seeded collections before inserting")

// Seed populates permissions, roles, users, menus and sample catalog data.
// Every insert is guarded by a lookup so re-running is safe; --reset drops
// the collections first.
func Seed(
	lc fx.Lifecycle,
	mongodb *database.MongodbDB,
	permissionRepo permission.PermissionRepository,
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	menuRepo menu.MenuRepository,
	productRepo product.ProductRepository,
	orderRepo order.OrderRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				if *resetFlag {
					if err := reset(context.Background(), mongodb, logger); err != nil {
						logger.Error("Reset failed", zap.Error(err))
						return
					}
				}

				logger.Info("Starting database seeding")
				if err := run(context.Background(), permissionRepo, roleRepo, userRepo, menuRepo, productRepo, orderRepo, logger); err != nil {
					logger.Error("Seeding failed", zap.Error(err))
					return
				}
				logger.Info("Seeding complete")
			}()
			return nil
		},
	})
}

func reset(ctx context.Context, mongodb *database.MongodbDB, logger *zap.Logger) error {
	for _, name := range []string{"permissions", "roles", "users", "menus", "products", "orders"} {
		if err := mongodb.DB.Collection(name).Drop(ctx); err != nil {
			return err
		}
		logger.Info("Dropped collection", zap.String("collection", name))
	}
	return nil
}

func run(
	ctx context.Context,
	permissionRepo permission.PermissionRepository,
	roleRepo role.RoleRepository,
	userRepo user.UserRepository,
	menuRepo menu.MenuRepository,
	productRepo product.ProductRepository,
	orderRepo order.OrderRepository,
	logger *zap.Logger,
) error {
	for _, p := range permission.FixturePermissions() {
		_, err := permissionRepo.FindByName(ctx, p.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		p := p
		if err := permissionRepo.Create(ctx, &p); err != nil {
			return err
		}
		logger.Info("Seeded permission", zap.String("name", p.Name))
	}

	roleIDs := map[string]primitive.ObjectID{}
	for _, r := range role.FixtureRoles() {
		existing, err := roleRepo.FindByName(ctx, r.Name)
		if err == nil {
			roleIDs[r.Name] = existing.ID
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		r := r
		if err := roleRepo.Create(ctx, &r); err != nil {
			return err
		}
		roleIDs[r.Name] = r.ID
		logger.Info("Seeded role", zap.String("name", r.Name))
	}

	users, err := user.FixtureUsers(roleIDs)
	if err != nil {
		return err
	}
	for _, u := range users {
		_, err := userRepo.FindByEmail(ctx, u.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		u := u
		if err := userRepo.Create(ctx, &u); err != nil {
			return err
		}
		logger.Info("Seeded user", zap.String("email", u.Email))
	}

	existingMenus, err := menuRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existingMenus) == 0 {
		for _, m := range menu.FixtureMenus() {
			m := m
			if err := menuRepo.Insert(ctx, &m); err != nil {
				return err
			}
		}
		logger.Info("Seeded menus")
	}

	for _, p := range product.FixtureProducts() {
		_, err := productRepo.FindBySKU(ctx, p.SKU)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}
		p := p
		if err := productRepo.Insert(ctx, &p); err != nil {
			return err
		}
		logger.Info("Seeded product", zap.String("sku", p.SKU))
	}

	existingOrders, _, err := orderRepo.List(ctx, order.Filter{Page: 1, Limit: 1})
	if err != nil {
		return err
	}
	if len(existingOrders) == 0 {
		for _, o := range order.FixtureOrders() {
			o := o
			if err := orderRepo.Insert(ctx, &o); err != nil {
				return err
			}
		}
		logger.Info("Seeded orders")
	}

	return nil
}

func main() {
	flag.Parse()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			permission.NewPermissionRepository,
			role.NewRoleRepository,
			user.NewUserRepository,
			menu.NewMenuRepository,
			product.NewProductRepository,
			order.NewOrderRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
