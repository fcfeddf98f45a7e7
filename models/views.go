package models

import "gorm.io/datatypes"

// DeveloperDetail is a developer LEFT JOINed with its infos. The info columns
// are null when the developer has none.
type DeveloperDetail struct {
	DeveloperID                 int64           `json:"developerID" gorm:"column:developerID"`
	DeveloperName               string          `json:"developerName" gorm:"column:developerName"`
	DeveloperEmail              string          `json:"developerEmail" gorm:"column:developerEmail"`
	DeveloperInfoID             *int64          `json:"developerInfoID" gorm:"column:developerInfoID"`
	DeveloperInfoDeveloperSince *datatypes.Date `json:"developerInfoDeveloperSince" gorm:"column:developerInfoDeveloperSince"`
	DeveloperInfoPreferredOS    *string         `json:"developerInfoPreferredOS" gorm:"column:developerInfoPreferredOS"`
}

// ProjectDetail is a project LEFT JOINed with its technologies, one row per
// linked technology (or one row with null technology columns).
type ProjectDetail struct {
	ProjectID            int64           `json:"projectID" gorm:"column:projectID"`
	ProjectName          string          `json:"projectName" gorm:"column:projectName"`
	ProjectDescription   string          `json:"projectDescription" gorm:"column:projectDescription"`
	ProjectEstimatedTime string          `json:"projectEstimatedTime" gorm:"column:projectEstimatedTime"`
	ProjectRepository    string          `json:"projectRepository" gorm:"column:projectRepository"`
	ProjectStartDate     datatypes.Date  `json:"projectStartDate" gorm:"column:projectStartDate"`
	ProjectEndDate       *datatypes.Date `json:"projectEndDate" gorm:"column:projectEndDate"`
	ProjectDeveloperID   int64           `json:"projectDeveloperID" gorm:"column:projectDeveloperID"`
	TechnologyID         *int64          `json:"technologyID" gorm:"column:technologyID"`
	TechnologyName       *string         `json:"technologyName" gorm:"column:technologyName"`
}

// DeveloperProjectsDetail is the full chain developer -> infos -> projects ->
// technologies. Every column after the developer's own may be null.
type DeveloperProjectsDetail struct {
	DeveloperID                 int64           `json:"developerID" gorm:"column:developerID"`
	DeveloperName               string          `json:"developerName" gorm:"column:developerName"`
	DeveloperEmail              string          `json:"developerEmail" gorm:"column:developerEmail"`
	DeveloperInfoID             *int64          `json:"developerInfoID" gorm:"column:developerInfoID"`
	DeveloperInfoDeveloperSince *datatypes.Date `json:"developerInfoDeveloperSince" gorm:"column:developerInfoDeveloperSince"`
	DeveloperInfoPreferredOS    *string         `json:"developerInfoPreferredOS" gorm:"column:developerInfoPreferredOS"`
	ProjectID                   *int64          `json:"projectID" gorm:"column:projectID"`
	ProjectName                 *string         `json:"projectName" gorm:"column:projectName"`
	ProjectDescription          *string         `json:"projectDescription" gorm:"column:projectDescription"`
	ProjectEstimatedTime        *string         `json:"projectEstimatedTime" gorm:"column:projectEstimatedTime"`
	ProjectRepository           *string         `json:"projectRepository" gorm:"column:projectRepository"`
	ProjectStartDate            *datatypes.Date `json:"projectStartDate" gorm:"column:projectStartDate"`
	ProjectEndDate              *datatypes.Date `json:"projectEndDate" gorm:"column:projectEndDate"`
	ProjectDeveloperID          *int64          `json:"projectDeveloperID" gorm:"column:projectDeveloperID"`
	TechnologyID                *int64          `json:"technologyID" gorm:"column:technologyID"`
	TechnologyName              *string         `json:"technologyName" gorm:"column:technologyName"`
}
