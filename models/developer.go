package models

import "encoding/json"

// Developer is a row of the developers table.
type Developer struct {
	ID               int64  `json:"id" gorm:"column:id;primaryKey"`
	Name             string `json:"name" gorm:"column:name"`
	Email            string `json:"email" gorm:"column:email"`
	DeveloperInfosID *int64 `json:"developerInfosId" gorm:"column:developerInfosId"`
}

func (Developer) TableName() string { return "developers" }

// DeveloperRequest is a validated developer ready to be written.
type DeveloperRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r DeveloperRequest) Assignments() []Assignment {
	return []Assignment{
		{Column: "name", Value: r.Name},
		{Column: "email", Value: r.Email},
	}
}

// DeveloperPayload is the body of POST /developers and PATCH /developers/{id}.
type DeveloperPayload struct {
	ID    json.RawMessage `json:"id,omitempty"`
	Name  *string         `json:"name,omitempty"`
	Email *string         `json:"email,omitempty"`
}

func (p DeveloperPayload) HasID() bool { return idSent(p.ID) }

// Payload returns the stored developer as a fully populated payload.
func (d Developer) Payload() DeveloperPayload {
	name, email := d.Name, d.Email
	return DeveloperPayload{Name: &name, Email: &email}
}
