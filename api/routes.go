package api

import (
	"github.com/go-chi/chi/v5"
)

func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.healthHandler.health())

	r.Route("/developers", func(r chi.Router) {
		r.Post("/", handlers.developerHandler.createDeveloper())
		r.Get("/", handlers.developerHandler.getAllDevelopers())
		r.Get("/{id}", handlers.developerHandler.getDeveloper())
		r.Get("/{id}/projects", handlers.developerHandler.getDeveloperProjects())
		r.Patch("/{id}", handlers.developerHandler.updateDeveloper())
		r.Delete("/{id}", handlers.developerHandler.deleteDeveloper())

		r.Post("/{id}/infos", handlers.developerInfoHandler.createDeveloperInfo())
		r.Patch("/{id}/infos", handlers.developerInfoHandler.updateDeveloperInfo())
	})

	r.Route("/projects", func(r chi.Router) {
		r.Post("/", handlers.projectHandler.createProject())
		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Get("/{id}", handlers.projectHandler.getProject())
		r.Patch("/{id}", handlers.projectHandler.updateProject())
		r.Delete("/{id}", handlers.projectHandler.deleteProject())

		// "tecnologies" is the path existing clients call
		r.Post("/{id}/tecnologies", handlers.projectTechnologyHandler.addTechnology())
		r.Post("/{id}/technologies", handlers.projectTechnologyHandler.addTechnology())
		r.Delete("/{id}/technologies/{name}", handlers.projectTechnologyHandler.removeTechnology())
	})

	r.Get("/technologies", handlers.technologyHandler.getAllTechnologies())
}
