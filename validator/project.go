package validator

import (
	"context"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

var projectKeys = []string{
	"name",
	"description",
	"estimatedTime",
	"repository",
	"startDate",
	"endDate",
	"developerId",
}

func ProjectKeys() []string {
	return append([]string(nil), projectKeys...)
}

func projectFields(p models.ProjectPayload) map[string]bool {
	return map[string]bool{
		"name":          p.Name != nil,
		"description":   p.Description != nil,
		"estimatedTime": p.EstimatedTime != nil,
		"repository":    p.Repository != nil,
		"startDate":     p.StartDate != nil,
		"endDate":       p.EndDate.Set,
		"developerId":   p.DeveloperID != nil,
	}
}

// Project validates a creation payload and checks that its developer exists.
// A missing or empty endDate becomes null before the required-key check, so
// endDate never fails it.
func Project(ctx context.Context, developers DeveloperLookup, p models.ProjectPayload) (models.ProjectRequest, error) {
	if !p.EndDate.Set || (p.EndDate.Value != nil && *p.EndDate.Value == "") {
		p.EndDate = models.Null[string]()
	}

	if err := requireKeys(projectKeys, projectFields(p)); err != nil {
		return models.ProjectRequest{}, err
	}

	startDate, err := parseDate("startDate", *p.StartDate)
	if err != nil {
		return models.ProjectRequest{}, err
	}

	req := models.ProjectRequest{
		Name:          *p.Name,
		Description:   *p.Description,
		EstimatedTime: *p.EstimatedTime,
		Repository:    *p.Repository,
		StartDate:     startDate,
		DeveloperID:   *p.DeveloperID,
	}

	if p.EndDate.Value != nil {
		endDate, err := parseDate("endDate", *p.EndDate.Value)
		if err != nil {
			return models.ProjectRequest{}, err
		}
		req.EndDate = &endDate
	}

	if _, err := developers.FindByID(ctx, req.DeveloperID); err != nil {
		if errs.IsNotFound(err) {
			return models.ProjectRequest{}, errs.NewReferentialError("Developer")
		}
		return models.ProjectRequest{}, err
	}

	return req, nil
}

// ProjectUpdate merges a partial payload over the stored project and runs the
// creation checks, the developer lookup included, on the result.
func ProjectUpdate(ctx context.Context, developers DeveloperLookup, stored models.Project, p models.ProjectPayload) (models.ProjectRequest, error) {
	if p.HasID() {
		return models.ProjectRequest{}, errs.NewImmutableFieldError("id")
	}
	if !anyPresent(projectFields(p)) {
		return models.ProjectRequest{}, errs.NewNoUpdatableFieldError(ProjectKeys())
	}
	return Project(ctx, developers, mergeProject(stored.Payload(), p))
}

func mergeProject(base, patch models.ProjectPayload) models.ProjectPayload {
	if patch.Name != nil {
		base.Name = patch.Name
	}
	if patch.Description != nil {
		base.Description = patch.Description
	}
	if patch.EstimatedTime != nil {
		base.EstimatedTime = patch.EstimatedTime
	}
	if patch.Repository != nil {
		base.Repository = patch.Repository
	}
	if patch.StartDate != nil {
		base.StartDate = patch.StartDate
	}
	if patch.EndDate.Set {
		base.EndDate = patch.EndDate
	}
	if patch.DeveloperID != nil {
		base.DeveloperID = patch.DeveloperID
	}
	return base
}
