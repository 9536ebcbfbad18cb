package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"peershare/internal/domain/booking"
	"peershare/internal/infra"
	"peershare/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingSelect = `
SELECT b.id, b.start_date, b.end_date, b.status, b.item_id, i.name, i.owner_id, b.booker_id
FROM bookings b
JOIN items i ON i.id = b.item_id`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		b.Start, b.End, b.ItemID, b.BookerID, b.Status.String(),
	).Scan(&id)
	if err != nil {
		return 0, classifyPgErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status booking.Status) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2 WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*usecase.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return view, nil
}

func (r *BookingRepository) ListForBooker(ctx context.Context, bookerID int64, crit booking.Criteria, limit, offset int32) ([]*usecase.BookingView, error) {
	return r.list(ctx, "b.booker_id", bookerID, crit, limit, offset)
}

func (r *BookingRepository) ListForOwner(ctx context.Context, ownerID int64, crit booking.Criteria, limit, offset int32) ([]*usecase.BookingView, error) {
	return r.list(ctx, "i.owner_id", ownerID, crit, limit, offset)
}

// list is the single query behind every state filter: the subject column
// picks the perspective, the criteria contribute the status/time bounds.
func (r *BookingRepository) list(ctx context.Context, subjectColumn string, subjectID int64, crit booking.Criteria, limit, offset int32) ([]*usecase.BookingView, error) {
	query := bookingSelect + ` WHERE ` + subjectColumn + ` = $1`
	args := []any{subjectID}

	appendCond := func(cond string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(" AND %s $%d", cond, len(args))
	}
	if crit.Status != nil {
		appendCond("b.status =", crit.Status.String())
	}
	if crit.StartAtOrBefore != nil {
		appendCond("b.start_date <=", *crit.StartAtOrBefore)
	}
	if crit.StartAfter != nil {
		appendCond("b.start_date >", *crit.StartAfter)
	}
	if crit.EndBefore != nil {
		appendCond("b.end_date <", *crit.EndBefore)
	}
	if crit.EndAfter != nil {
		appendCond("b.end_date >", *crit.EndAfter)
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*usecase.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}
	return views, nil
}

func (r *BookingRepository) LastForItem(ctx context.Context, itemID int64, asOf time.Time) (*booking.Summary, error) {
	return r.summary(ctx,
		`SELECT id, booker_id FROM bookings
		 WHERE item_id = $1 AND status = $2 AND start_date <= $3
		 ORDER BY start_date DESC LIMIT 1`,
		itemID, asOf,
	)
}

func (r *BookingRepository) NextForItem(ctx context.Context, itemID int64, asOf time.Time) (*booking.Summary, error) {
	return r.summary(ctx,
		`SELECT id, booker_id FROM bookings
		 WHERE item_id = $1 AND status = $2 AND start_date >= $3
		 ORDER BY start_date ASC LIMIT 1`,
		itemID, asOf,
	)
}

func (r *BookingRepository) summary(ctx context.Context, query string, itemID int64, asOf time.Time) (*booking.Summary, error) {
	var s booking.Summary
	err := r.db.QueryRow(ctx, query, itemID, booking.StatusApproved.String(), asOf).Scan(&s.ID, &s.BookerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find booking summary", err)
	}
	return &s, nil
}

func (r *BookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, asOf time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM bookings
		   WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_date < $4
		 )`,
		bookerID, itemID, booking.StatusApproved.String(), asOf,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check finished bookings", err)
	}
	return exists, nil
}

func scanBookingView(row pgx.Row) (*usecase.BookingView, error) {
	var v usecase.BookingView
	var status string
	err := row.Scan(&v.ID, &v.Start, &v.End, &status, &v.ItemID, &v.ItemName, &v.ItemOwnerID, &v.BookerID)
	if err != nil {
		return nil, err
	}
	v.Status = booking.Status(status)
	return &v, nil
}
