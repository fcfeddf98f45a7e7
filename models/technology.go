package models

import "time"

// TechnologyCatalog is the closed list of technologies a project may use.
var TechnologyCatalog = []string{
	"JavaScript",
	"Python",
	"React",
	"Express.js",
	"HTML",
	"CSS",
	"Django",
	"PostgreSQL",
	"MongoDB",
}

// IsSupportedTechnology reports whether name is in the catalog. The match is exact.
func IsSupportedTechnology(name string) bool {
	for _, t := range TechnologyCatalog {
		if t == name {
			return true
		}
	}
	return false
}

// Technology is a row of the pre-seeded technologies table.
type Technology struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name"`
}

func (Technology) TableName() string { return "technologies" }

// TechnologyPayload is the body of POST /projects/{id}/tecnologies.
type TechnologyPayload struct {
	Name *string `json:"name,omitempty"`
}

// ProjectTechnology is a row of the projects_technologies join table.
type ProjectTechnology struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	AddedIn      time.Time `json:"addedIn" gorm:"column:addedIn"`
	ProjectID    int64     `json:"projectId" gorm:"column:projectId"`
	TechnologyID int64     `json:"technologyId" gorm:"column:technologyId"`
}

func (ProjectTechnology) TableName() string { return "projects_technologies" }

type ProjectTechnologyRequest struct {
	AddedIn      time.Time `json:"addedIn"`
	ProjectID    int64     `json:"projectId"`
	TechnologyID int64     `json:"technologyId"`
}

func (r ProjectTechnologyRequest) Assignments() []Assignment {
	return []Assignment{
		{Column: "addedIn", Value: r.AddedIn},
		{Column: "projectId", Value: r.ProjectID},
		{Column: "technologyId", Value: r.TechnologyID},
	}
}
