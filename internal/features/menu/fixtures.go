package menu

import (
	"time"

	"go-dashboard/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FixtureMenus is the development dataset served in mock-data mode and
// written by the seeder: the dashboard navigation with one nested entry
// (Menu Reports under Reports).
func FixtureMenus() []Menu {
	now := time.Now()
	all := []string{role.RoleAdmin, role.RoleHR, role.RoleAccountant, role.RoleEmployee, role.RoleManager}

	mk := func(name, path, icon string, roles []string, order float64) Menu {
		return Menu{
			ID:        primitive.NewObjectID(),
			Name:      name,
			Path:      path,
			Icon:      icon,
			Roles:     roles,
			Order:     order,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	dashboard := mk("Dashboard", "/dashboard", "fas fa-home", all, 1)
	adminPanel := mk("Admin Panel", "/dashboard/admin", "fas fa-cogs", []string{role.RoleAdmin}, 2)
	users := mk("User Management", "/dashboard/users", "fas fa-users", []string{role.RoleAdmin, role.RoleHR}, 3)
	addUser := mk("Add User", "/dashboard/add-user", "fas fa-user-plus", []string{role.RoleAdmin, role.RoleHR}, 3.5)
	products := mk("Products", "/dashboard/products", "fas fa-box", []string{role.RoleAdmin, role.RoleManager}, 5)
	orders := mk("Orders", "/dashboard/orders", "fas fa-shopping-cart", []string{role.RoleAdmin, role.RoleManager}, 6)
	reports := mk("Reports", "/dashboard/reports", "fas fa-chart-bar", []string{role.RoleAdmin, role.RoleAccountant, role.RoleManager}, 7)
	menuReports := mk("Menu Reports", "/dashboard/reports/menus", "fas fa-chart-pie", []string{role.RoleAdmin, role.RoleManager}, 1)
	menuReports.Parent = &reports.ID
	settings := mk("Settings", "/dashboard/settings", "fas fa-cog", []string{role.RoleAdmin}, 10)

	return []Menu{dashboard, adminPanel, users, addUser, products, orders, reports, menuReports, settings}
}
