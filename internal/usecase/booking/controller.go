package booking

import (
	"context"
	"log/slog"

	widget "mesa-booking/internal/domain/booking"
	"mesa-booking/internal/domain/reservation"
	"mesa-booking/internal/domain/table"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/errs"
	"mesa-booking/internal/usecase/shared"
)

//go:generate mockgen -source=controller.go -destination=../../../tests/mock/booking/controller_mock.go -package=bookingmock

const (
	MsgConnectionFailed  = "Could not connect to the server."
	MsgTablesLoadFailed  = "Failed to load tables."
	MsgReservationFailed = "Failed to save the reservation."
)

type SessionStore interface {
	Load(ctx context.Context, id string) (widget.State, error)
	Save(ctx context.Context, id string, state widget.State) error
	Delete(ctx context.Context, id string) error
}

type AvailabilityChecker interface {
	Check(ctx context.Context, req reservation.Request) ([]table.Availability, error)
}

type ReservationSubmitter interface {
	Submit(ctx context.Context, sub reservation.Submission) (*reservation.Receipt, error)
}

// Controller owns the widget state of each session. Dispatches for the same
// session are not serialised; the last one to save wins.
type Controller interface {
	View(ctx context.Context, sessionID string) (widget.State, error)
	Dispatch(ctx context.Context, sessionID string, event widget.Event) (widget.State, error)
}

type controllerImpl struct {
	store        SessionStore
	machine      *widget.Machine
	availability AvailabilityChecker
	reservations ReservationSubmitter
	clock        clock.Clock
	logger       *slog.Logger
}

func NewController(
	store SessionStore,
	machine *widget.Machine,
	availability AvailabilityChecker,
	reservations ReservationSubmitter,
	clock clock.Clock,
	logger *slog.Logger,
) Controller {
	return &controllerImpl{
		store:        store,
		machine:      machine,
		availability: availability,
		reservations: reservations,
		clock:        clock,
		logger:       logger,
	}
}

func (c *controllerImpl) View(ctx context.Context, sessionID string) (widget.State, error) {
	return c.load(ctx, sessionID)
}

func (c *controllerImpl) Dispatch(ctx context.Context, sessionID string, event widget.Event) (widget.State, error) {
	state, err := c.load(ctx, sessionID)
	if err != nil {
		return widget.State{}, err
	}

	if check, ok := event.(widget.CheckRequested); ok && check.Now.IsZero() {
		check.Now = c.clock.Now()
		event = check
	}

	state = c.run(ctx, sessionID, state, event)

	if err := c.store.Save(ctx, sessionID, state); err != nil {
		return widget.State{}, errs.Mark(err, errs.ErrSessionStore)
	}
	return state, nil
}

func (c *controllerImpl) load(ctx context.Context, sessionID string) (widget.State, error) {
	state, err := c.store.Load(ctx, sessionID)
	if err != nil {
		if errs.Is(err, errs.ErrSessionNotFound) {
			return widget.NewState(), nil
		}
		return widget.State{}, errs.Mark(err, errs.ErrSessionStore)
	}
	if state.ResetDue(c.clock.Now()) {
		return widget.NewState(), nil
	}
	if state.Tables == nil {
		state.Tables = []table.Availability{}
	}
	return state, nil
}

// run feeds event to the machine and keeps executing effects until no
// follow-up event is produced.
func (c *controllerImpl) run(ctx context.Context, sessionID string, state widget.State, event widget.Event) widget.State {
	queue := []widget.Event{event}
	for len(queue) > 0 {
		ev := queue[0]
		queue = queue[1:]

		var effects []widget.Effect
		state, effects = c.machine.Handle(state, ev)
		c.logger.Debug("Booking event handled",
			slog.String("session_id", sessionID),
			slog.String("event", widget.EventName(ev)),
			slog.String("phase", state.Phase.String()),
			slog.Int("effects", len(effects)))

		for _, eff := range effects {
			if next := c.execute(ctx, sessionID, eff); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return state
}

func (c *controllerImpl) execute(ctx context.Context, sessionID string, eff widget.Effect) widget.Event {
	switch e := eff.(type) {
	case widget.FetchAvailability:
		tables, err := c.availability.Check(ctx, e.Request)
		if err != nil {
			return widget.AvailabilityFailed{Message: availabilityMessage(err)}
		}
		return widget.AvailabilityLoaded{Tables: tables}

	case widget.SubmitReservation:
		receipt, err := c.reservations.Submit(ctx, e.Submission)
		if err != nil {
			return widget.ReservationRejected{Message: reservationMessage(err)}
		}
		return widget.ReservationConfirmed{Receipt: *receipt, At: c.clock.Now()}

	case widget.ScheduleReset:
		c.logger.Debug("Booking reset scheduled",
			slog.String("session_id", sessionID),
			slog.Time("at", e.At))

	case widget.Notify:
		c.logger.Debug("Booking notification",
			slog.String("session_id", sessionID),
			slog.String("kind", string(e.Kind)),
			slog.String("text", e.Text))
	}
	return nil
}

func availabilityMessage(err error) string {
	if errs.Is(err, errs.ErrBackendUnavailable) {
		return MsgConnectionFailed
	}
	return MsgTablesLoadFailed
}

func reservationMessage(err error) string {
	if errs.Is(err, errs.ErrBackendUnavailable) {
		return MsgConnectionFailed
	}
	if errs.Is(err, errs.ErrBackendRejected) {
		if msg := shared.GatewayMessage(err); msg != "" {
			return msg
		}
	}
	return MsgReservationFailed
}
