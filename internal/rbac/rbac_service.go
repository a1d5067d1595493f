package rbac

import (
	"context"
	"sort"
	"sync"

	"github.com/BavyaVasu/leave-management/internal/domain"
	"github.com/BavyaVasu/leave-management/internal/identity"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	Permissions(ctx context.Context, employeeID uuid.UUID) ([]Permission, error)
}

type service struct {
	directory identity.Directory
	enforcer  *casbin.Enforcer
	mu        sync.Mutex
	logger    *zap.Logger
}

// NewService loads the static role policies into enforcer. Role membership
// is read from the directory on every check.
func NewService(directory identity.Directory, enforcer *casbin.Enforcer, policies map[string][]Permission, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	if err := loadPolicies(enforcer, policies); err != nil {
		return nil, err
	}
	return &service{directory: directory, enforcer: enforcer, logger: l}, nil
}

// syncRolesUnlocked replaces the subject's grouping policy with roles.
func (s *service) syncRolesUnlocked(subject string, roles []string) error {
	if _, err := s.enforcer.DeleteRolesForUser(subject); err != nil {
		return err
	}
	for _, role := range roles {
		if _, err := s.enforcer.AddRoleForUser(subject, role); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	roles, err := s.directory.RolesOf(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Error("rbac load roles failed",
			zap.String("employee_id", req.EmployeeID.String()),
			zap.Error(err),
		)
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject := req.EmployeeID.String()
	if err := s.syncRolesUnlocked(subject, roles); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(subject, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", subject),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", subject),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Strings("roles", roles),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(ctx context.Context, employeeID uuid.UUID) ([]Permission, error) {
	roles, err := s.directory.RolesOf(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subject := employeeID.String()
	if err := s.syncRolesUnlocked(subject, roles); err != nil {
		return nil, err
	}

	rules, err := s.enforcer.GetImplicitPermissionsForUser(subject)
	if err != nil {
		return nil, err
	}

	seen := make(map[Permission]struct{}, len(rules))
	perms := make([]Permission, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		p := Permission{Resource: rule[1], Action: rule[2]}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}

	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}
