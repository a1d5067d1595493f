package identity

import (
	"context"
	"errors"

	"github.com/BavyaVasu/leave-management/internal/domain"
	identityerrors "github.com/BavyaVasu/leave-management/internal/identity/errors"
	"github.com/BavyaVasu/leave-management/internal/shared/contextutil"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Directory is a read-only view of the organisation's employees and their
// role membership. Employees and roles are managed elsewhere.
//
//go:generate mockgen -source=directory.go -destination=mock/directory_mock.go -package=mock
type Directory interface {
	ListUsersInRole(ctx context.Context, role string) ([]uuid.UUID, error)
	ListEmployeesInRole(ctx context.Context, role string) ([]domain.Employee, error)
	CurrentEmployee(ctx context.Context) (uuid.UUID, error)
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	RolesOf(ctx context.Context, employeeID uuid.UUID) ([]string, error)
}

type directory struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewDirectory(db *gorm.DB, logger ...*zap.Logger) Directory {
	l := zap.L().Named("identity.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.directory")
	}
	return &directory{db: db, logger: l}
}

type memberRow struct {
	EmployeeID uuid.UUID
}

type roleRow struct {
	Name string
}

// Queries use "?" placeholders; gorm rebinds them for the active dialect.

func usersInRoleQuery(role string) sq.SelectBuilder {
	return sq.Select("er.employee_id").
		From("employee_roles er").
		Join("roles r ON r.id = er.role_id").
		Where(sq.Eq{"r.name": role}).
		OrderBy("er.employee_id")
}

func employeesInRoleQuery(role string) sq.SelectBuilder {
	return sq.Select("e.id", "e.full_name", "e.email").
		From("employees e").
		Join("employee_roles er ON er.employee_id = e.id").
		Join("roles r ON r.id = er.role_id").
		Where(sq.Eq{"r.name": role}).
		OrderBy("e.full_name", "e.id")
}

func rolesOfQuery(employeeID uuid.UUID) sq.SelectBuilder {
	return sq.Select("r.name").
		From("roles r").
		Join("employee_roles er ON er.role_id = r.id").
		Where(sq.Eq{"er.employee_id": employeeID}).
		OrderBy("r.name")
}

func (d *directory) raw(ctx context.Context, b sq.SelectBuilder, dest any) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return d.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error
}

func (d *directory) ListUsersInRole(ctx context.Context, role string) ([]uuid.UUID, error) {
	var rows []memberRow
	if err := d.raw(ctx, usersInRoleQuery(role), &rows); err != nil {
		d.logger.Error("list users in role failed", zap.String("role", role), zap.Error(err))
		return nil, err
	}

	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.EmployeeID
	}
	return ids, nil
}

func (d *directory) ListEmployeesInRole(ctx context.Context, role string) ([]domain.Employee, error) {
	var employees []domain.Employee
	if err := d.raw(ctx, employeesInRoleQuery(role), &employees); err != nil {
		d.logger.Error("list employees in role failed", zap.String("role", role), zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func (d *directory) CurrentEmployee(ctx context.Context) (uuid.UUID, error) {
	id, ok := contextutil.GetEmployeeID(ctx)
	if !ok {
		return uuid.Nil, identityerrors.ErrNotAuthenticated
	}
	return id, nil
}

func (d *directory) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	var emp domain.Employee
	err := d.db.WithContext(ctx).First(&emp, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identityerrors.ErrEmployeeNotFound
		}
		d.logger.Error("find employee failed", zap.String("employee_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &emp, nil
}

func (d *directory) RolesOf(ctx context.Context, employeeID uuid.UUID) ([]string, error) {
	var rows []roleRow
	if err := d.raw(ctx, rolesOfQuery(employeeID), &rows); err != nil {
		d.logger.Error("list roles failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return nil, err
	}

	roles := make([]string, len(rows))
	for i, r := range rows {
		roles[i] = r.Name
	}
	return roles, nil
}
