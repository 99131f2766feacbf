package statemachine

import (
	"errors"

	"github.com/zahrirmdn/loreomah/internal/models"
)

type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

var ErrInvalidTransition = errors.New("invalid reservation status transition")

// Transition defines a valid status change and who may perform it.
type Transition struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor Actor
}

// validTransitions is the authoritative state machine definition:
// pending is the only non-terminal state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusCancelled, Actor: ActorOwner},
	{From: models.StatusPending, To: models.StatusConfirmed, Actor: ActorAdmin},
	{From: models.StatusPending, To: models.StatusDeclined, Actor: ActorAdmin},
}

type transitionKey struct {
	From  models.ReservationStatus
	To    models.ReservationStatus
	Actor Actor
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// CanTransition reports whether the actor may move a reservation from one
// status to another.
func CanTransition(from, to models.ReservationStatus, actor Actor) error {
	if transitionMap[transitionKey{from, to, actor}] {
		return nil
	}
	return ErrInvalidTransition
}

// ValidTransitionsFrom returns all statuses reachable from the given one.
func ValidTransitionsFrom(status models.ReservationStatus) []models.ReservationStatus {
	var nexts []models.ReservationStatus
	seen := map[models.ReservationStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}
