package api

import "time"

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(s stores, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		developerHandler:     newDeveloperHandler(s.developers, s.projects),
		developerInfoHandler: newDeveloperInfoHandler(s.developerInfos, s.developers, s.projects),
		projectHandler:       newProjectHandler(s.projects, s.developers),
		projectTechnologyHandler: newProjectTechnologyHandler(
			s.projectTechnologies, s.technologies, s.developers, s.projects),
		technologyHandler: newTechnologyHandler(s.technologies),
		healthHandler:     newHealthHandler(s.health, startupTime),
	}
}
