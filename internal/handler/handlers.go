package handler

import (
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Dishes  *DishHandler
	Orders  *OrderHandler
}

func NewHandlers(s *server.Server, services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s, repos),
		OpenAPI: NewOpenAPIHandler(s),
		Dishes:  NewDishHandler(s, services.Dishes, repos.Dishes),
		Orders:  NewOrderHandler(s, services.Orders, repos.Orders),
	}
}
