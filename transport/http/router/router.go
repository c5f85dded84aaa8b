package router

import (
	"ourstory/internal/handlers/journal"
	"ourstory/internal/handlers/snapshot"
	"ourstory/internal/handlers/system"
	"ourstory/internal/handlers/task"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Task     task.Handler
	Journal  journal.Handler
	Snapshot snapshot.Handler
	System   system.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.NotFound(r.DomainHandlers.System.NotFound)
	router.MethodNotAllowed(r.DomainHandlers.System.MethodNotAllowed)

	r.DomainHandlers.System.Router(router)

	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Snapshot.Router(routerGroup)
		r.DomainHandlers.Task.Router(routerGroup)
		r.DomainHandlers.Journal.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
