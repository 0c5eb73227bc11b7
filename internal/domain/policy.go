package domain

import "github.com/MostafaRhazlani/EventFlow/internal/domain/entities"

// Principal is the authenticated caller as supplied by the identity
// provider. It is read-only input to authorization decisions.
type Principal struct {
	ID         string
	Role       string
	IsApproved bool
}

// Action identifies a guarded operation on an event.
type Action string

const (
	ActionCreate              Action = "create"
	ActionRead                Action = "read"
	ActionUpdate              Action = "update"
	ActionDelete              Action = "delete"
	ActionUpdateStatus        Action = "updateStatus"
	ActionBook                Action = "book"
	ActionUpdateBookingStatus Action = "updateBookingStatus"
)

// CanPerform reports whether p may perform action on event. It is pure and
// side-effect free; callers enforce the decision.
//
// event may be nil for ActionCreate and ActionRead, which do not depend on a
// specific event.
//
// ActionUpdateBookingStatus is organizer-of-record only. ADMIN is denied.
func CanPerform(p Principal, event *entities.Event, action Action) bool {
	switch action {
	case ActionCreate:
		if p.Role == RoleAdmin {
			return true
		}
		return p.Role == RoleOrganizer && p.IsApproved
	case ActionRead:
		return true
	case ActionUpdate, ActionDelete, ActionUpdateStatus:
		if p.Role == RoleAdmin {
			return true
		}
		return p.Role == RoleOrganizer && event != nil && p.ID == event.OrganizerID
	case ActionBook:
		return p.Role == RoleParticipant
	case ActionUpdateBookingStatus:
		return p.Role == RoleOrganizer && event != nil && p.ID == event.OrganizerID
	default:
		return false
	}
}
