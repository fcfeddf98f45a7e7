package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// DeveloperInfo is a row of the developer_infos table. A developer links to
// it through developers."developerInfosId".
type DeveloperInfo struct {
	ID             int64          `json:"id" gorm:"column:id;primaryKey"`
	DeveloperSince datatypes.Date `json:"developerSince" gorm:"column:developerSince"`
	PreferredOS    string         `json:"preferredOS" gorm:"column:preferredOS"`
}

func (DeveloperInfo) TableName() string { return "developer_infos" }

type DeveloperInfoRequest struct {
	DeveloperSince datatypes.Date `json:"developerSince"`
	PreferredOS    string         `json:"preferredOS"`
}

func (r DeveloperInfoRequest) Assignments() []Assignment {
	return []Assignment{
		{Column: "developerSince", Value: r.DeveloperSince},
		{Column: "preferredOS", Value: r.PreferredOS},
	}
}

// DeveloperInfoPayload is the body of POST and PATCH /developers/{id}/infos.
type DeveloperInfoPayload struct {
	ID             json.RawMessage `json:"id,omitempty"`
	DeveloperSince *string         `json:"developerSince,omitempty"`
	PreferredOS    *string         `json:"preferredOS,omitempty"`
}

func (p DeveloperInfoPayload) HasID() bool { return idSent(p.ID) }

func (i DeveloperInfo) Payload() DeveloperInfoPayload {
	since, os := FormatDate(i.DeveloperSince), i.PreferredOS
	return DeveloperInfoPayload{DeveloperSince: &since, PreferredOS: &os}
}
