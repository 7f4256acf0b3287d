package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/core/domain/model/order"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/pkg/clock"
	"selfstorage/internal/pkg/errs"
)

// SweepReport summarizes one sweep.
type SweepReport struct {
	UnitsSwept       int
	UnitsFailed      int
	Activated        int
	Expired          int
	UnitsFreed       int
	UnitsOccupied    int
	RemindersSent    int
	ReminderFailures int
}

func (r *SweepReport) add(other SweepReport) {
	r.UnitsSwept += other.UnitsSwept
	r.UnitsFailed += other.UnitsFailed
	r.Activated += other.Activated
	r.Expired += other.Expired
	r.UnitsFreed += other.UnitsFreed
	r.UnitsOccupied += other.UnitsOccupied
	r.RemindersSent += other.RemindersSent
	r.ReminderFailures += other.ReminderFailures
}

// SweepOrdersCommandHandler is the lifecycle sweeper.
//
// Every unit that has a pending or active order, or whose flag says occupied,
// is processed in its own transaction under the unit row lock: statuses are
// refreshed, the occupancy flag is re-synced and due reminders are collected.
// A failing unit does not stop the sweep. Re-running a sweep, including one that was
// cancelled half way, gives the same result.
//
// Reminders are handed to the notifier only after the unit transaction committed,
// so a slow broker never holds a unit row lock. Each accepted reminder is then
// stamped with a single conditional update. If the stamp is lost the reminder is
// sent again by the next sweep.
type SweepOrdersCommandHandler struct {
	uowFactory ReservationUoWFactory
	notifier   ports.Notifier
	clock      clock.Clock
}

func NewSweepOrdersCommandHandler(
	uowFactory ReservationUoWFactory,
	notifier ports.Notifier,
	clk clock.Clock,
) SweepOrdersCommandHandler {
	return SweepOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clk,
	}
}

// Handle returns the report of the processed units together with the joined
// errors of the units that failed. A cancelled context stops the sweep between units.
func (h *SweepOrdersCommandHandler) Handle(ctx context.Context, cmd SweepOrdersCommand) (SweepReport, error) {
	var report SweepReport

	if err := cmd.Validate(); err != nil {
		return report, err
	}

	now := h.clock.Now()

	unitIDs, err := h.candidateUnits(ctx)
	if err != nil {
		return report, err
	}

	var failures []error
	for _, unitID := range unitIDs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			failures = append(failures, ctxErr)
			break
		}

		unitReport, due, unitErr := h.sweepUnit(ctx, unitID, now)
		if unitErr != nil {
			report.UnitsFailed++
			failures = append(failures, fmt.Errorf("sweep unit %s: %w", unitID, unitErr))
			continue
		}
		report.add(unitReport)

		for _, event := range due {
			sent, remindErr := h.remind(ctx, event, now)
			switch {
			case !sent:
				// Left unstamped; the next sweep retries it.
				report.ReminderFailures++
			case remindErr != nil:
				report.ReminderFailures++
				failures = append(failures, fmt.Errorf("record reminder of order %s: %w", event.OrderID, remindErr))
			default:
				report.RemindersSent++
			}
		}
	}

	return report, errors.Join(failures...)
}

// remind publishes one reminder and records it. It reports whether the notifier
// accepted the event.
func (h *SweepOrdersCommandHandler) remind(ctx context.Context, event ports.ReminderEvent, now time.Time) (bool, error) {
	if err := h.notifier.Notify(ctx, event); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return true, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.OrderRepository().MarkReminderSent(ctx, event.OrderID, now); err != nil {
		return true, err
	}

	return true, uow.Commit(ctx)
}

func (h *SweepOrdersCommandHandler) candidateUnits(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	running, err := uow.OrderRepository().GetNonTerminal(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := uow.StorageUnitRepository().GetOccupied(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(running)+len(occupied))
	appendUnique := func(id kernel.UUID) {
		if !slices.ContainsFunc(ids, id.IsEqual) {
			ids = append(ids, id)
		}
	}
	for _, o := range running {
		appendUnique(o.UnitID())
	}
	for _, u := range occupied {
		appendUnique(u.ID())
	}

	return ids, nil
}

// sweepUnit refreshes the orders and the occupancy of one unit and returns the
// reminders that became due. Nothing is sent while the unit row is locked.
func (h *SweepOrdersCommandHandler) sweepUnit(
	ctx context.Context,
	unitID kernel.UUID,
	now time.Time,
) (SweepReport, []ports.ReminderEvent, error) {
	var report SweepReport

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return report, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	unitRepo := uow.StorageUnitRepository()

	u, err := unitRepo.GetForUpdate(ctx, unitID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return report, nil, nil
	}
	if err != nil {
		return report, nil, err
	}

	orders, err := orderRepo.GetNonTerminalByUnit(ctx, unitID)
	if err != nil {
		return report, nil, err
	}

	var due []*order.Order
	for _, o := range orders {
		if o.Refresh(now) {
			switch o.Status() {
			case order.Active:
				report.Activated++
			case order.Expired:
				report.Expired++
			default:
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return SweepReport{}, nil, err
			}
		}

		if o.IsReminderDue(now) {
			due = append(due, o)
		}
	}

	changed, err := u.SyncOccupancy(orders)
	if err != nil {
		return SweepReport{}, nil, err
	}

	if changed {
		if err = unitRepo.Update(ctx, u); err != nil {
			return SweepReport{}, nil, err
		}
		if u.IsOccupied() {
			report.UnitsOccupied++
		} else {
			report.UnitsFreed++
		}
	}

	var events []ports.ReminderEvent
	if len(due) > 0 {
		address, addrErr := h.warehouseAddress(ctx, uow, u.WarehouseID())
		if addrErr != nil {
			return SweepReport{}, nil, addrErr
		}
		for _, o := range due {
			events = append(events, reminderFor(o, address, now))
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return SweepReport{}, nil, err
	}

	report.UnitsSwept = 1
	return report, events, nil
}

// warehouseAddress returns an empty address for a warehouse that no longer exists.
func (h *SweepOrdersCommandHandler) warehouseAddress(
	ctx context.Context,
	uow ReservationUoW,
	warehouseID kernel.UUID,
) (string, error) {
	w, err := uow.WarehouseRepository().Get(ctx, warehouseID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return w.Address(), nil
}

func reminderFor(o *order.Order, address string, now time.Time) ports.ReminderEvent {
	if address == "" {
		address = "not specified"
	}

	return ports.ReminderEvent{
		OrderID: o.ID(),
		UserID:  o.UserID(),
		Message: fmt.Sprintf(
			"Your storage rental ends on %s (%d days left). Warehouse address: %s. "+
				"Please pick up your belongings or extend the rental.",
			o.End().Format(time.DateOnly),
			max(o.DaysLeft(now), 0),
			address,
		),
	}
}
