package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-store/internal/api/dto"
	"github.com/spec-kit/department-store/internal/domain"
	"github.com/spec-kit/department-store/internal/service"
	apperrors "github.com/spec-kit/department-store/pkg/util"
)

// DepartmentService is the slice of *service.DepartmentService the handlers use.
type DepartmentService interface {
	EnsureTable(ctx context.Context) error
	ResetTable(ctx context.Context) error
	Create(ctx context.Context, name, location string) (*domain.Department, error)
	Get(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, id int64, changes service.DepartmentChanges) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentsHandler exposes department endpoints.
type DepartmentsHandler struct {
	departments DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments}
}

// List handles GET /departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	depts, err := h.departments.List(c.UserContext())
	if err != nil {
		return err
	}
	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, dto.NewDepartmentResponse(&depts[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /departments/:id.
func (h *DepartmentsHandler) Get(c *fiber.Ctx) error {
	id, err := departmentID(c)
	if err != nil {
		return err
	}
	dept, err := h.departments.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Create handles POST /departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == nil {
		return apperrors.NewValidationError("name required", map[string]any{"field": "name"})
	}
	var location string
	if req.Location != nil {
		location = *req.Location
	}
	dept, err := h.departments.Create(c.UserContext(), *req.Name, location)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Update handles PUT /departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	id, err := departmentID(c)
	if err != nil {
		return err
	}
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	dept, err := h.departments.Update(c.UserContext(), id, service.DepartmentChanges{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewDepartmentResponse(dept)})
}

// Delete handles DELETE /departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	id, err := departmentID(c)
	if err != nil {
		return err
	}
	if err := h.departments.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateTable handles POST /admin/departments/table.
func (h *DepartmentsHandler) CreateTable(c *fiber.Ctx) error {
	if err := h.departments.EnsureTable(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "table_ready"}})
}

// ResetTable handles DELETE /admin/departments/table.
func (h *DepartmentsHandler) ResetTable(c *fiber.Ctx) error {
	if err := h.departments.ResetTable(c.UserContext()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "table_reset"}})
}

func departmentID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid department id", map[string]any{"id": raw})
	}
	return id, nil
}
