package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okoak/evaluation-api/internal/models"
	"github.com/okoak/evaluation-api/internal/utils"
)

// Resource identifies a permission-gated resource type.
type Resource string

// Action identifies an operation on a resource.
type Action string

const (
	ResourceDepartments Resource = "departments"
	ResourcePeriods     Resource = "periods"
	ResourceTopics      Resource = "topics"
	ResourceIndicators  Resource = "indicators"
	ResourceAssignments Resource = "assignments"
	ResourceResults     Resource = "results"
	ResourceProgress    Resource = "progress"
)

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var allRoles = []models.Role{models.RoleAdmin, models.RoleEvaluator, models.RoleEvaluatee}
var adminOnly = []models.Role{models.RoleAdmin}

// permissionTable is the static authorization policy: reads are open to
// every authenticated role, reference-data writes are admin-only, and
// results accept create/update from any role but delete only from admin.
var permissionTable = map[Resource]map[Action][]models.Role{
	ResourceDepartments: {
		ActionRead: allRoles,
	},
	ResourcePeriods: {
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceTopics: {
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceIndicators: {
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceAssignments: {
		ActionRead:   allRoles,
		ActionCreate: adminOnly,
		ActionUpdate: adminOnly,
		ActionDelete: adminOnly,
	},
	ResourceResults: {
		ActionRead:   allRoles,
		ActionCreate: allRoles,
		ActionUpdate: allRoles,
		ActionDelete: adminOnly,
	},
	ResourceProgress: {
		ActionRead: allRoles,
	},
}

// Allowed reports whether the role may perform the action on the resource.
func Allowed(resource Resource, action Action, role models.Role) bool {
	actions, ok := permissionTable[resource]
	if !ok {
		return false
	}
	for _, allowed := range actions[action] {
		if allowed == role {
			return true
		}
	}
	return false
}

// Permit gates a route on the permission table. It runs before any handler
// or database access and denies with a 403 envelope.
func Permit(resource Resource, action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := roleFromLocals(c)
		if !ok || !Allowed(resource, action, role) {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}

func roleFromLocals(c *fiber.Ctx) (models.Role, bool) {
	value := c.Locals("user_role")
	raw, ok := value.(string)
	if !ok {
		return "", false
	}
	return models.ParseRole(raw)
}
