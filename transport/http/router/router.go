package router

import (
	"tick/internal/handlers/todo"
	"tick/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	User user.Handler
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the domain routers at the root. The API is served
// unversioned; clients address /users and /todos directly.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.User.Router(router)
	r.DomainHandlers.Todo.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
