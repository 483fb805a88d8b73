package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/workgrid-hq/hr-portal/internal/domain/employee"
)

func (c *Client) Employees(ctx context.Context, token, companyID string) ([]employee.Employee, error) {
	path := "/api/v1/employees?companyId=" + url.QueryEscape(companyID)

	var employees []employee.Employee
	if err := c.do(ctx, http.MethodGet, path, token, nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) Employee(ctx context.Context, token, employeeID string) (employee.Employee, error) {
	var emp employee.Employee
	if err := c.do(ctx, http.MethodGet, "/api/v1/employees/"+url.PathEscape(employeeID), token, nil, &emp); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

type employeePayload struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Position  string `json:"position,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

func (c *Client) CreateEmployee(ctx context.Context, token, companyID, name, email, position string) (employee.Employee, error) {
	body := employeePayload{
		CompanyID: companyID,
		Name:      name,
		Email:     email,
		Position:  position,
	}

	var created employee.Employee
	if err := c.do(ctx, http.MethodPost, "/api/v1/employees", token, body, &created); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, token, companyID, employeeID string, name, email, position *string, isActive *bool) (employee.Employee, error) {
	body := employeePayload{CompanyID: companyID, IsActive: isActive}
	if name != nil {
		body.Name = *name
	}
	if email != nil {
		body.Email = *email
	}
	if position != nil {
		body.Position = *position
	}

	var updated employee.Employee
	if err := c.do(ctx, http.MethodPut, "/api/v1/employees/"+url.PathEscape(employeeID), token, body, &updated); err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, token, employeeID string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/employees/"+url.PathEscape(employeeID), token, nil, nil)
}
