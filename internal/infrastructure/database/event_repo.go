package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository implements output.EventRepository on PostgreSQL.
//
// Bookings live in a child table with a UNIQUE(event_id, participant_id)
// constraint; the capacity invariant is enforced by AppendBooking's
// transaction, never by callers.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `e.id, e.title, e.description, e.location, e.date, e.image, e.status,
	e.max_participants, e.organizer_id, u.first_name, u.last_name, u.email,
	(SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id) AS booking_count,
	e.created_at, e.updated_at`

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO events (id, title, description, location, date, image, status, max_participants, organizer_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		 RETURNING created_at, updated_at`,
		event.ID, event.Title, event.Description, event.Location, event.Date,
		nullableText(event.Image), event.Status, event.MaxParticipants, event.OrganizerID, event.CreatedAt,
	)
	if err := row.Scan(&event.CreatedAt, &event.UpdatedAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+`
		 FROM events e
		 JOIN users u ON u.id = e.organizer_id
		 WHERE e.id = $1`,
		id,
	)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if err := r.attachBookings(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) FindOwned(ctx context.Context, id, organizerID string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+`
		 FROM events e
		 JOIN users u ON u.id = e.organizer_id
		 WHERE e.id = $1 AND e.organizer_id = $2`,
		id, organizerID,
	)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("get owned event: %w", err)
	}
	if err := r.attachBookings(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) FindByStatus(ctx context.Context, status string) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events e
		 JOIN users u ON u.id = e.organizer_id
		 WHERE e.status = $1
		 ORDER BY e.created_at, e.id`,
		status,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	return collectEvents(rows)
}

func (r *EventRepository) FindByOrganizerID(ctx context.Context, organizerID string) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events e
		 JOIN users u ON u.id = e.organizer_id
		 WHERE e.organizer_id = $1
		 ORDER BY e.created_at, e.id`,
		organizerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events by organizer: %w", err)
	}
	return collectEvents(rows)
}

// Update applies the patch when the row matches id and, if ownerScope is
// set, the organizer. A miss is the combined not-found-or-unauthorized.
func (r *EventRepository) Update(ctx context.Context, id, ownerScope string, patch entities.EventPatch) (*entities.Event, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET
			title            = COALESCE($3, title),
			description      = COALESCE($4, description),
			location         = COALESCE($5, location),
			date             = COALESCE($6, date),
			image            = COALESCE($7, image),
			max_participants = COALESCE($8, max_participants),
			updated_at       = now()
		 WHERE id = $1 AND ($2::uuid IS NULL OR organizer_id = $2)`,
		id, nullableText(ownerScope),
		patch.Title, patch.Description, patch.Location, patch.Date, patch.Image, patch.MaxParticipants,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	return r.FindByID(ctx, id)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id, ownerScope, status string) (*entities.Event, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET status = $3, updated_at = now()
		 WHERE id = $1 AND ($2::uuid IS NULL OR organizer_id = $2)`,
		id, nullableText(ownerScope), status,
	)
	if err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	return r.FindByID(ctx, id)
}

// Delete removes the event (bookings cascade) under the same scoping rules
// as Update. The returned event carries its raw fields; identities are not
// resolved for a row that no longer exists.
func (r *EventRepository) Delete(ctx context.Context, id, ownerScope string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM events
		 WHERE id = $1 AND ($2::uuid IS NULL OR organizer_id = $2)
		 RETURNING id, title, description, location, date, image, status, max_participants, organizer_id, created_at, updated_at`,
		id, nullableText(ownerScope),
	)
	event, err := scanBareEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFoundOrUnauthorized
		}
		return nil, fmt.Errorf("delete event: %w", err)
	}
	return event, nil
}

// AppendBooking is the single atomic conditional append behind book.
//
// The transaction takes a row-level lock on the event (SELECT ... FOR
// UPDATE), so concurrent appends to the same event serialize at the store:
// capacity and uniqueness are re-checked under the lock, in the same atomic
// unit as the insert.
func (r *EventRepository) AppendBooking(ctx context.Context, eventID, participantID string, joinedAt time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var maxParticipants int
	err = tx.QueryRow(ctx,
		`SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}

	var count int
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE participant_id = $2) > 0
		 FROM bookings WHERE event_id = $1`,
		eventID, participantID,
	).Scan(&count, &exists)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if exists || count >= maxParticipants {
		return domain.ErrBookingConditionFailed
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (event_id, participant_id, status, joined_at)
		 VALUES ($1, $2, $3, $4)`,
		eventID, participantID, domain.BookingPending, joinedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

func (r *EventRepository) UpdateBookingStatus(ctx context.Context, eventID, participantID, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET status = $3
		 WHERE event_id = $1 AND participant_id = $2`,
		eventID, participantID, status,
	)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

func (r *EventRepository) attachBookings(ctx context.Context, event *entities.Event) error {
	rows, err := r.pool.Query(ctx,
		`SELECT b.event_id, b.participant_id, b.status, b.joined_at, u.first_name, u.last_name, u.email
		 FROM bookings b
		 JOIN users u ON u.id = b.participant_id
		 WHERE b.event_id = $1
		 ORDER BY b.joined_at, b.participant_id`,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("get bookings: %w", err)
	}
	defer rows.Close()

	event.Bookings = event.Bookings[:0]
	for rows.Next() {
		var b entities.Booking
		if err := rows.Scan(&b.EventID, &b.ParticipantID, &b.Status, &b.JoinedAt,
			&b.Participant.FirstName, &b.Participant.LastName, &b.Participant.Email); err != nil {
			return fmt.Errorf("scan booking: %w", err)
		}
		b.Participant.ID = b.ParticipantID
		event.Bookings = append(event.Bookings, b)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read bookings: %w", err)
	}
	event.BookingCount = len(event.Bookings)
	return nil
}
