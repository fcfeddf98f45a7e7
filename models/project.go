package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Project is a row of the projects table.
type Project struct {
	ID            int64           `json:"id" gorm:"column:id;primaryKey"`
	Name          string          `json:"name" gorm:"column:name"`
	Description   string          `json:"description" gorm:"column:description"`
	EstimatedTime string          `json:"estimatedTime" gorm:"column:estimatedTime"`
	Repository    string          `json:"repository" gorm:"column:repository"`
	StartDate     datatypes.Date  `json:"startDate" gorm:"column:startDate"`
	EndDate       *datatypes.Date `json:"endDate" gorm:"column:endDate"`
	DeveloperID   int64           `json:"developerId" gorm:"column:developerId"`
}

func (Project) TableName() string { return "projects" }

type ProjectRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	EstimatedTime string          `json:"estimatedTime"`
	Repository    string          `json:"repository"`
	StartDate     datatypes.Date  `json:"startDate"`
	EndDate       *datatypes.Date `json:"endDate"`
	DeveloperID   int64           `json:"developerId"`
}

func (r ProjectRequest) Assignments() []Assignment {
	// a nil interface, not a typed nil pointer, so drivers bind NULL
	var endDate any
	if r.EndDate != nil {
		endDate = *r.EndDate
	}
	return []Assignment{
		{Column: "name", Value: r.Name},
		{Column: "description", Value: r.Description},
		{Column: "estimatedTime", Value: r.EstimatedTime},
		{Column: "repository", Value: r.Repository},
		{Column: "startDate", Value: r.StartDate},
		{Column: "endDate", Value: endDate},
		{Column: "developerId", Value: r.DeveloperID},
	}
}

// ProjectPayload is the body of POST /projects and PATCH /projects/{id}.
// EndDate tells an absent key apart from an explicit null.
type ProjectPayload struct {
	ID            json.RawMessage  `json:"id,omitempty"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	EstimatedTime *string          `json:"estimatedTime,omitempty"`
	Repository    *string          `json:"repository,omitempty"`
	StartDate     *string          `json:"startDate,omitempty"`
	EndDate       Optional[string] `json:"endDate"`
	DeveloperID   *int64           `json:"developerId,omitempty"`
}

func (p ProjectPayload) HasID() bool { return idSent(p.ID) }

func (p Project) Payload() ProjectPayload {
	name, description := p.Name, p.Description
	estimatedTime, repository := p.EstimatedTime, p.Repository
	startDate := FormatDate(p.StartDate)
	developerID := p.DeveloperID

	endDate := Null[string]()
	if p.EndDate != nil {
		endDate = Some(FormatDate(*p.EndDate))
	}

	return ProjectPayload{
		Name:          &name,
		Description:   &description,
		EstimatedTime: &estimatedTime,
		Repository:    &repository,
		StartDate:     &startDate,
		EndDate:       endDate,
		DeveloperID:   &developerID,
	}
}
