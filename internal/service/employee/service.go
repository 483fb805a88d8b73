package employee

import (
	"context"
	"fmt"

	"github.com/workgrid-hq/hr-portal/internal/domain/auth"
	"github.com/workgrid-hq/hr-portal/internal/domain/employee"
	"github.com/workgrid-hq/hr-portal/internal/upstream"
)

type EmployeeServiceImpl struct {
	upstream *upstream.Client
}

func NewEmployeeService(client *upstream.Client) employee.EmployeeService {
	return &EmployeeServiceImpl{upstream: client}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, sess auth.Session) ([]employee.Employee, error) {
	employees, err := s.upstream.Employees(ctx, sess.UpstreamToken, sess.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, sess auth.Session, id string) (employee.Employee, error) {
	emp, err := s.upstream.Employee(ctx, sess.UpstreamToken, id)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return emp, nil
}

// Me implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Me(ctx context.Context, sess auth.Session) (employee.Employee, error) {
	if sess.EmployeeID == "" {
		return employee.Employee{}, auth.ErrNoEmployeeProfile
	}
	emp, err := s.upstream.Employee(ctx, sess.UpstreamToken, sess.EmployeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("get own employee record: %w", err)
	}
	return emp, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, sess auth.Session, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	created, err := s.upstream.CreateEmployee(ctx, sess.UpstreamToken, sess.CompanyID, req.Name, req.Email, req.Position)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, sess auth.Session, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	updated, err := s.upstream.UpdateEmployee(ctx, sess.UpstreamToken, sess.CompanyID, req.ID,
		req.Name, req.Email, req.Position, req.IsActive)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("update employee: %w", err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, sess auth.Session, id string) error {
	if err := s.upstream.DeleteEmployee(ctx, sess.UpstreamToken, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
