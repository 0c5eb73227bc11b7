package database

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// nullableText maps the empty string to SQL NULL, for optional columns and
// the unscoped owner predicate.
func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// scanEvent maps a row produced with eventColumns (organizer identity
// resolved, booking count included).
func scanEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	var image pgtype.Text
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &image, &e.Status,
		&e.MaxParticipants, &e.OrganizerID,
		&e.Organizer.FirstName, &e.Organizer.LastName, &e.Organizer.Email,
		&e.BookingCount, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Image = textOrEmpty(image)
	e.Organizer.ID = e.OrganizerID
	return &e, nil
}

// scanBareEvent maps a row of raw event columns without joins.
func scanBareEvent(row pgx.Row) (*entities.Event, error) {
	var e entities.Event
	var image pgtype.Text
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Date, &image, &e.Status,
		&e.MaxParticipants, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Image = textOrEmpty(image)
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	defer rows.Close()
	var events []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return events, nil
}
