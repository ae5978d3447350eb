package authz

import (
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

type Resource string

const (
	ResourceProperty      Resource = "property"
	ResourceLead          Resource = "lead"
	ResourceCommunication Resource = "communication"
	ResourceUser          Resource = "user"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID uint
	Role   models.UserRole
}

// Ownership names the user a resource belongs to: the creating client for
// leads and communications, the listing agent for properties, the account
// holder for users.
type Ownership struct {
	OwnerID uint
}

type effect int

const (
	deny effect = iota
	allow
	ownerOnly
)

// policy maps (resource, action, role) to a decision. Missing entries deny.
var policy = map[Resource]map[Action]map[models.UserRole]effect{
	ResourceProperty: {
		ActionRead:   {models.RoleClient: allow, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionList:   {models.RoleClient: allow, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionCreate: {models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionUpdate: {models.RoleAgent: ownerOnly, models.RoleAdmin: allow},
		ActionDelete: {models.RoleAgent: ownerOnly, models.RoleAdmin: allow},
	},
	ResourceLead: {
		ActionCreate: {models.RoleClient: allow, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionRead:   {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionUpdate: {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionDelete: {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
	},
	ResourceCommunication: {
		ActionCreate: {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionRead:   {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionUpdate: {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionDelete: {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
	},
	ResourceUser: {
		ActionList:   {models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionCreate: {models.RoleAdmin: allow},
		ActionRead:   {models.RoleClient: ownerOnly, models.RoleAgent: allow, models.RoleAdmin: allow},
		ActionUpdate: {models.RoleClient: ownerOnly, models.RoleAgent: ownerOnly, models.RoleAdmin: allow},
		ActionDelete: {models.RoleClient: ownerOnly, models.RoleAgent: ownerOnly, models.RoleAdmin: allow},
	},
}

type forbidText struct {
	denied   string
	notOwner string
}

var messages = map[Resource]map[Action]forbidText{
	ResourceProperty: {
		ActionCreate: {denied: "Only agents can create properties"},
		ActionUpdate: {denied: "Only agents can update properties", notOwner: "You can only update your own properties"},
		ActionDelete: {denied: "Only agents can delete properties", notOwner: "You can only delete your own properties"},
	},
	ResourceLead: {
		ActionRead:   {notOwner: "You can only view your own leads"},
		ActionUpdate: {notOwner: "You can only update your own leads"},
		ActionDelete: {notOwner: "You can only delete your own leads"},
	},
	ResourceCommunication: {
		ActionCreate: {notOwner: "You can only message about your own leads"},
		ActionRead:   {notOwner: "You can only view your own messages"},
		ActionUpdate: {notOwner: "You can only update your own messages"},
		ActionDelete: {notOwner: "You can only delete your own messages"},
	},
	ResourceUser: {
		ActionList:   {denied: "You are not allowed to list users"},
		ActionCreate: {denied: "Only admins can create users"},
		ActionRead:   {notOwner: "You can only view your own account"},
		ActionUpdate: {notOwner: "You can only update your own account"},
		ActionDelete: {notOwner: "You can only delete your own account"},
	},
}

// Authorize evaluates the policy once per request. A nil return means the
// operation is permitted; otherwise the error is a Forbidden AppError.
func Authorize(id Identity, action Action, resource Resource, own Ownership) error {
	byAction, ok := policy[resource]
	if !ok {
		return apperrors.Forbidden(forbidMessage(resource, action, false))
	}
	byRole, ok := byAction[action]
	if !ok {
		return apperrors.Forbidden(forbidMessage(resource, action, false))
	}

	switch byRole[id.Role] {
	case allow:
		return nil
	case ownerOnly:
		if own.OwnerID == id.UserID {
			return nil
		}
		return apperrors.Forbidden(forbidMessage(resource, action, true))
	default:
		return apperrors.Forbidden(forbidMessage(resource, action, false))
	}
}

func forbidMessage(resource Resource, action Action, ownership bool) string {
	if byAction, ok := messages[resource]; ok {
		if text, ok := byAction[action]; ok {
			if ownership && text.notOwner != "" {
				return text.notOwner
			}
			if !ownership && text.denied != "" {
				return text.denied
			}
			if text.notOwner != "" {
				return text.notOwner
			}
			if text.denied != "" {
				return text.denied
			}
		}
	}
	return "You are not allowed to perform this action"
}
