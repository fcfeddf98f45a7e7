package database

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
)

// schema creates the five tables when they are missing. Statements run in
// order: every foreign key points at a table created before it.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS developer_infos (
		"id" BIGSERIAL PRIMARY KEY,
		"developerSince" DATE NOT NULL,
		"preferredOS" VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS developers (
		"id" BIGSERIAL PRIMARY KEY,
		"name" VARCHAR(50) NOT NULL,
		"email" VARCHAR(50) NOT NULL UNIQUE,
		"developerInfosId" BIGINT UNIQUE REFERENCES developer_infos("id") ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		"id" BIGSERIAL PRIMARY KEY,
		"name" VARCHAR(50) NOT NULL,
		"description" TEXT NOT NULL,
		"estimatedTime" VARCHAR(20) NOT NULL,
		"repository" VARCHAR(120) NOT NULL,
		"startDate" DATE NOT NULL,
		"endDate" DATE,
		"developerId" BIGINT NOT NULL REFERENCES developers("id") ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS technologies (
		"id" BIGSERIAL PRIMARY KEY,
		"name" VARCHAR(30) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS projects_technologies (
		"id" BIGSERIAL PRIMARY KEY,
		"addedIn" TIMESTAMPTZ NOT NULL DEFAULT now(),
		"projectId" BIGINT NOT NULL REFERENCES projects("id") ON DELETE CASCADE,
		"technologyId" BIGINT NOT NULL REFERENCES technologies("id") ON DELETE CASCADE,
		UNIQUE ("projectId", "technologyId")
	)`,
}

// Bootstrap creates the schema if absent and seeds the technology catalog,
// all in one transaction. Running it again changes nothing.
func (d Database) Bootstrap(ctx context.Context) error {
	return d.Transaction(ctx, func(tx Database) error {
		for _, ddl := range schema {
			if err := tx.db.WithContext(ctx).Exec(ddl).Error; err != nil {
				return errs.NewDatabaseError("create", "schema", err)
			}
		}
		if err := tx.TechnologyRepo().Seed(ctx, models.TechnologyCatalog); err != nil {
			return err
		}
		log.Ctx(ctx).Info().Int("tables", len(schema)).Int("technologies", len(models.TechnologyCatalog)).Msg("schema ready")
		return nil
	})
}
