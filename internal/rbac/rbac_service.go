package rbac

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

// policyRule grants a role an action on a resource.
type policyRule struct {
	role     string
	resource string
	action   string
}

// Static authorization matrix. Admins manage everything, managers handle
// day-to-day records, employees only read.
var defaultPolicies = []policyRule{
	{RoleAdmin, "departments", "create"},
	{RoleAdmin, "departments", "update"},
	{RoleAdmin, "departments", "delete"},
	{RoleAdmin, "employees", "delete"},
	{RoleAdmin, "salaries", "delete"},

	{RoleManager, "employees", "create"},
	{RoleManager, "employees", "update"},
	{RoleManager, "salaries", "create"},
	{RoleManager, "salaries", "update"},
	{RoleManager, "inactivities", "create"},
	{RoleManager, "inactivities", "update"},
	{RoleManager, "inactivities", "delete"},

	{RoleEmployee, "departments", "read"},
	{RoleEmployee, "employees", "read"},
	{RoleEmployee, "salaries", "read"},
	{RoleEmployee, "inactivities", "read"},
}

// Role inheritance: admin > manager > employee.
var roleGroupings = [][2]string{
	{RoleAdmin, RoleManager},
	{RoleManager, RoleEmployee},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p.role, p.resource, p.action); err != nil {
			return nil, fmt.Errorf("add policy %s/%s/%s: %w", p.role, p.resource, p.action, err)
		}
	}

	for _, g := range roleGroupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, fmt.Errorf("add grouping %s->%s: %w", g[0], g[1], err)
		}
	}

	return &service{
		enforcer: enforcer,
		logger:   zap.L().Named("rbac.service"),
	}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err))
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed))

	return allowed, nil
}
