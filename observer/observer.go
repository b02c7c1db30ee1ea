// Package observer implements the notification fan-out raised when a
// new work order is created. Subscribers are registered explicitly by
// the owning component; there is no ambient registration.
package observer

import (
	"errors"

	"github.com/servitec/servitec-api/models"
)

// ErrObservadorNoRegistrado is returned by Detach for an observer that
// was never attached.
var ErrObservadorNoRegistrado = errors.New("observer not registered")

// Observer receives work-order notifications. An error returned from
// Update propagates to the caller of Notify and aborts delivery to the
// observers attached after this one.
type Observer interface {
	Update(orden *models.OrdenDeTrabajo) error
}

// Subject holds an ordered list of observers and delivers notifications
// synchronously in attachment order.
type Subject struct {
	observers []Observer
}

// Attach registers an observer. Attaching the same observer twice is a
// no-op; identity is the comparison, not value equality.
func (s *Subject) Attach(obs Observer) {
	for _, existing := range s.observers {
		if existing == obs {
			return
		}
	}
	s.observers = append(s.observers, obs)
}

// Detach removes the first identity match for the observer, or returns
// ErrObservadorNoRegistrado when it was never attached.
func (s *Subject) Detach(obs Observer) error {
	for i, existing := range s.observers {
		if existing == obs {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return nil
		}
	}
	return ErrObservadorNoRegistrado
}

// Notify delivers the order to every attached observer, in attachment
// order, on the calling goroutine. The first observer error stops
// delivery and is returned; observers are not isolated from each other.
func (s *Subject) Notify(orden *models.OrdenDeTrabajo) error {
	for _, obs := range s.observers {
		if err := obs.Update(orden); err != nil {
			return err
		}
	}
	return nil
}

// OrdenSubject is the subject for work-order events
type OrdenSubject struct {
	Subject
}

// NuevaOrden announces that a new order now exists. Thin alias for
// Notify that names the semantic event.
func (s *OrdenSubject) NuevaOrden(orden *models.OrdenDeTrabajo) error {
	return s.Notify(orden)
}
