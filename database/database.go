package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/developer-projects-backend/errs"
	"github.com/rpupo63/developer-projects-backend/queries"
)

type Database struct {
	db                    *gorm.DB
	developerRepo         *DeveloperRepo
	developerInfoRepo     *DeveloperInfoRepo
	projectRepo           *ProjectRepo
	technologyRepo        *TechnologyRepo
	projectTechnologyRepo *ProjectTechnologyRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		developerRepo:         NewDeveloperRepo(db),
		developerInfoRepo:     NewDeveloperInfoRepo(db),
		projectRepo:           NewProjectRepo(db),
		technologyRepo:        NewTechnologyRepo(db),
		projectTechnologyRepo: NewProjectTechnologyRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) DeveloperRepo() *DeveloperRepo {
	return d.developerRepo
}

func (d Database) DeveloperInfoRepo() *DeveloperInfoRepo {
	return d.developerInfoRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechnologyRepo() *TechnologyRepo {
	return d.technologyRepo
}

func (d Database) ProjectTechnologyRepo() *ProjectTechnologyRepo {
	return d.projectTechnologyRepo
}

// Transaction runs fn against a Database whose repositories all share one
// transaction. Any error returned by fn rolls it back.
func (d Database) Transaction(ctx context.Context, fn func(tx Database) error) error {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
	if err == nil {
		return nil
	}
	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return errs.NewTransactionFailedError("transaction", err)
}

// Ping checks that the primary connection answers.
func (d Database) Ping(ctx context.Context) error {
	var one int
	if err := d.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return errs.NewDatabaseError("ping", "database", err)
	}
	return nil
}

// first runs stmt and scans its first row. A statement that yields no row is
// reported as entity not found.
func first[T any](ctx context.Context, db *gorm.DB, stmt queries.Statement, entity string) (*T, error) {
	var row T
	tx := db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errs.NewEntityNotFoundError(entity)
	}
	return &row, nil
}

// all runs stmt and scans every row. No rows is an empty, non-nil slice.
func all[T any](ctx context.Context, db *gorm.DB, stmt queries.Statement) ([]T, error) {
	rows := []T{}
	if err := db.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// exec runs a statement that returns no rows and reports how many it touched.
func exec(ctx context.Context, db *gorm.DB, stmt queries.Statement) (int64, error) {
	tx := db.WithContext(ctx).Exec(stmt.SQL, stmt.Args...)
	return tx.RowsAffected, tx.Error
}

// build turns a query-construction failure into an internal error.
func build(stmt queries.Statement, err error) (queries.Statement, error) {
	if err != nil {
		return stmt, errs.NewInternalErrorWithCause("failed to build query", err)
	}
	return stmt, nil
}
