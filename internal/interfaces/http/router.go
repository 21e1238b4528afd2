package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccountUC *auth.AccountUseCase
	CompanyUC *usecase.CompanyUseCase
	OrderUC   *usecase.OrderUseCase
	SummaryUC *usecase.SummaryUseCase
	ProductUC *usecase.ProductUseCase
	Tokens    TokenVerifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Account (público: alta y login; la actualización reautentica con el body)
	account := app.Group("/account")
	authHandler := NewAuthHandler(deps.AccountUC)
	account.Post("/create", authHandler.Register)
	account.Post("/login", authHandler.Login)
	account.Put("/", authHandler.Update)

	// Cada recurso protegido monta su propia cadena de auth.
	protected := func(prefix string) fiber.Router {
		return app.Group(prefix, AuthMiddleware(deps.Tokens), ResolveUser(deps.AccountUC))
	}

	companies := protected("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)

	orders := protected("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Delete("/:code", orderHandler.Delete)

	products := protected("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)

	summary := protected("/summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	summary.Get("/", summaryHandler.Get)
}
