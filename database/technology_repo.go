package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/models"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindByName returns the catalog entry called name
func (r *TechnologyRepo) FindByName(ctx context.Context, name string) (*models.Technology, error) {
	stmt, err := build(queries.TechnologyByName(name))
	if err != nil {
		return nil, err
	}
	technology, err := first[models.Technology](ctx, r.db, stmt, "Technology")
	if err != nil {
		return nil, errs.NewDatabaseError("find", "technology", err)
	}
	return technology, nil
}

// FindAll returns the whole catalog in id order
func (r *TechnologyRepo) FindAll(ctx context.Context) ([]models.Technology, error) {
	stmt, err := build(queries.AllTechnologies())
	if err != nil {
		return nil, err
	}
	technologies, err := all[models.Technology](ctx, r.db, stmt)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "technologies", err)
	}
	return technologies, nil
}

// Seed inserts the catalog names that are not stored yet
func (r *TechnologyRepo) Seed(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	stmt, err := build(queries.SeedTechnologies(names))
	if err != nil {
		return err
	}
	if _, err := exec(ctx, r.db, stmt); err != nil {
		return errs.NewDatabaseError("seed", "technologies", err)
	}
	return nil
}
