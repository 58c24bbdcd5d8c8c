package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/auth"
	"github.com/iamungmonita/plants-box-api/internal/application/catalog"
	"github.com/iamungmonita/plants-box-api/internal/application/logbook"
	"github.com/iamungmonita/plants-box-api/internal/application/membership"
	"github.com/iamungmonita/plants-box-api/internal/application/sales"
	"github.com/iamungmonita/plants-box-api/internal/application/system"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *catalog.ProductUseCase
	OrderUC      *sales.OrderUseCase
	MembershipUC *membership.MembershipUseCase
	SystemUC     *system.SystemUseCase
	LogUC        *logbook.LogUseCase
	JWTSecret    string
}

// Router registers the API routes. Everything except sign-in requires a
// Bearer token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/sign-in", authHandler.SignIn)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Auth (protected)
	authGroup := protected.Group("/auth")
	authGroup.Post("/sign-up", authHandler.SignUp)
	authGroup.Get("/profile", authHandler.Profile)
	authGroup.Get("/users", authHandler.Users)
	authGroup.Get("/users/:id", authHandler.UserByID)
	authGroup.Put("/users/:id", authHandler.UpdateUser)
	authGroup.Get("/authorize-discount", RequireCode(entity.CodeDiscount), authHandler.AuthorizeDiscount)

	// Products
	products := protected.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/create", productHandler.Create)
	products.Get("/retrieve", productHandler.List)
	products.Get("/best-selling", productHandler.BestSelling)
	products.Get("/stock-updates/:id", productHandler.StockUpdates)
	products.Put("/update-details/:id", productHandler.UpdateDetails)
	products.Post("/update/:id", productHandler.ConsumeStock)
	products.Post("/update-cancel/:id", productHandler.RestoreStock)
	products.Get("/:id", productHandler.GetByID)

	// Orders
	orders := protected.Group("/order")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/create", orderHandler.Create)
	orders.Get("/retrieve", orderHandler.List)
	orders.Get("/today", orderHandler.Today)
	orders.Get("/range", orderHandler.ByRange)
	orders.Get("/monthly-sale", orderHandler.MonthlySales)
	orders.Get("/download-excel", orderHandler.DownloadExcel)
	orders.Put("/update-cancel/:id", orderHandler.Cancel)
	orders.Put("/update-retrieve/:id", orderHandler.MarkRetrieved)

	// Memberships
	members := protected.Group("/membership")
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	members.Post("/create", membershipHandler.Create)
	members.Get("/retrieve", membershipHandler.List)
	members.Get("/retrieve/:id", membershipHandler.GetByID)
	members.Put("/update-points/:phoneNumber", membershipHandler.UpdatePoints)
	members.Put("/update/:id", membershipHandler.Update)

	// System: roles, expenses, vouchers
	sys := protected.Group("/system")
	systemHandler := NewSystemHandler(deps.SystemUC)
	sys.Post("/create", systemHandler.CreateRole)
	sys.Get("/retrieve", systemHandler.Roles)
	sys.Get("/retrieve/:id", systemHandler.RoleByID)
	sys.Put("/update/:id", systemHandler.UpdateRole)
	sys.Post("/create-expense", systemHandler.CreateExpense)
	sys.Get("/retrieve-expenses", systemHandler.Expenses)
	sys.Get("/monthly-expense", systemHandler.MonthlyExpenses)
	sys.Post("/create-voucher", systemHandler.CreateVoucher)
	sys.Get("/retrieve-vouchers", systemHandler.Vouchers)
	sys.Get("/voucher/:id", systemHandler.VoucherByID)
	sys.Put("/voucher/update/:barcode", systemHandler.RedeemVoucher)
	sys.Put("/voucher/update-id/:id", systemHandler.UpdateVoucher)

	// Cash drawer counts
	logs := protected.Group("/log")
	logHandler := NewLogHandler(deps.LogUC)
	logs.Post("/create", logHandler.Create)
	logs.Get("/retrieve", logHandler.List)
}
