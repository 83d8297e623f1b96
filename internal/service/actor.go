package service

import "freshpack-backend/internal/model"

// Actor is the authenticated caller of a request.
type Actor struct {
	ID   uint
	Role model.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// CanAccess reports whether the actor may touch data owned by userID.
func (a Actor) CanAccess(userID uint) bool {
	return a.IsAdmin() || a.ID == userID
}

func requireAccess(actor Actor, ownerID uint) error {
	if !actor.CanAccess(ownerID) {
		return newError(ErrForbidden, "Access denied")
	}
	return nil
}
