package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/department-store/internal/domain"
)

// DepartmentStore manages the departments table and its rows.
// Implementations hold no connection; the caller passes the handle in.
type DepartmentStore interface {
	TableExists(ctx context.Context, db DBTX) (bool, error)
	CreateTable(ctx context.Context, db DBTX) error
	DropTable(ctx context.Context, db DBTX) error
	Save(ctx context.Context, db DBTX, dept *domain.Department) error
	Update(ctx context.Context, db DBTX, dept *domain.Department) error
	Delete(ctx context.Context, db DBTX, dept *domain.Department) error
	Create(ctx context.Context, db DBTX, name, location string) (*domain.Department, error)
	Find(ctx context.Context, db DBTX, id int64) (*domain.Department, error)
	All(ctx context.Context, db DBTX) ([]domain.Department, error)
}

type departmentStore struct{}

// NewDepartmentStore builds the store.
func NewDepartmentStore() DepartmentStore {
	return departmentStore{}
}

func (departmentStore) TableExists(ctx context.Context, db DBTX) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT to_regclass('departments') IS NOT NULL`).Scan(&exists)
	return exists, err
}

func (departmentStore) CreateTable(ctx context.Context, db DBTX) error {
	const query = `
        CREATE TABLE IF NOT EXISTS departments (
            id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
            name TEXT,
            location TEXT
        )`
	_, err := db.Exec(ctx, query)
	return err
}

func (departmentStore) DropTable(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, `DROP TABLE IF EXISTS departments`)
	return err
}

// Save inserts an unpersisted department and assigns its id, or updates it otherwise.
func (s departmentStore) Save(ctx context.Context, db DBTX, dept *domain.Department) error {
	if dept.IsPersisted() {
		return s.Update(ctx, db, dept)
	}
	const query = `
        INSERT INTO departments (name, location)
        VALUES ($1,$2)
        RETURNING id`
	return db.QueryRow(ctx, query, dept.Name, dept.Location).Scan(&dept.ID)
}

// Update writes name and location for dept.ID. Matching no row is not an error.
func (departmentStore) Update(ctx context.Context, db DBTX, dept *domain.Department) error {
	const query = `
        UPDATE departments SET name=$1, location=$2
        WHERE id=$3`
	_, err := db.Exec(ctx, query, dept.Name, dept.Location, dept.ID)
	return err
}

// Delete removes the row for dept.ID and leaves dept.ID as it was.
func (departmentStore) Delete(ctx context.Context, db DBTX, dept *domain.Department) error {
	_, err := db.Exec(ctx, `DELETE FROM departments WHERE id=$1`, dept.ID)
	return err
}

func (s departmentStore) Create(ctx context.Context, db DBTX, name, location string) (*domain.Department, error) {
	dept := domain.NewDepartment(name, location)
	if err := s.Save(ctx, db, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// Find returns nil, nil when no department has the given id.
// NULL name or location columns read back as empty strings.
func (departmentStore) Find(ctx context.Context, db DBTX, id int64) (*domain.Department, error) {
	const query = `
        SELECT id, COALESCE(name, ''), COALESCE(location, '')
        FROM departments WHERE id=$1`
	var dept domain.Department
	if err := db.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.Location); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

// All returns every department in whatever order the engine yields them.
func (departmentStore) All(ctx context.Context, db DBTX) ([]domain.Department, error) {
	rows, err := db.Query(ctx, `SELECT id, COALESCE(name, ''), COALESCE(location, '') FROM departments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Department{}
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Location); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}
