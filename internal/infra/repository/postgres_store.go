package repository

import (
	"context"
	"errors"
	"log/slog"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/infra"
	"fleet-ledger/internal/pkg/pgconv"
	"fleet-ledger/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

const (
	upsertOwnerSQL = `INSERT INTO owners (owner_id, name) VALUES ($1, $2)
		ON CONFLICT (owner_id) DO UPDATE SET name = EXCLUDED.name`
	upsertUserSQL = `INSERT INTO users (user_id, name, driving_license) VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, driving_license = EXCLUDED.driving_license`
	upsertCarSQL = `INSERT INTO cars (car_id, owner_id, available, hourly_rate) VALUES ($1, $2, $3, $4)
		ON CONFLICT (car_id) DO UPDATE SET owner_id = EXCLUDED.owner_id, available = EXCLUDED.available,
			hourly_rate = EXCLUDED.hourly_rate, updated_at = now()`
	deleteCarsSQL    = `DELETE FROM cars WHERE car_id = ANY($1)`
	upsertBookingSQL = `INSERT INTO bookings (booking_id, car_id, user_id, start_time, end_time, deposit)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (booking_id) DO UPDATE SET car_id = EXCLUDED.car_id, user_id = EXCLUDED.user_id,
			start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, deposit = EXCLUDED.deposit`
	deleteBookingsSQL = `DELETE FROM bookings WHERE booking_id = ANY($1)`
	insertEventSQL    = `INSERT INTO ledger_events (event_id, kind, payload) VALUES ($1, $2, $3)`

	selectOwnersSQL   = `SELECT owner_id, name FROM owners ORDER BY owner_id`
	selectUsersSQL    = `SELECT user_id, name, driving_license FROM users ORDER BY user_id`
	selectCarsSQL     = `SELECT car_id, owner_id, available, hourly_rate FROM cars ORDER BY car_id`
	selectBookingsSQL = `SELECT booking_id, car_id, user_id, start_time, end_time, deposit FROM bookings ORDER BY booking_id`
)

// PostgresStore writes each committed operation's records and events in
// one serializable transaction.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	newID  func() uuid.UUID
}

func NewPostgresStore(pool *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger,
		newID:  uuid.New,
	}
}

type eventRow struct {
	id      uuid.UUID
	kind    fleet.EventKind
	payload []byte
}

func (s *PostgresStore) Save(ctx context.Context, changes fleet.ChangeSet, events []fleet.Event) error {
	rows, err := s.encodeEvents(events)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindEncoding, "save", "failed to encode events", err)
	}

	_, err = shared.WithDefaultRetry(ctx, s.pool, func(tx pgx.Tx) (struct{}, error) {
		return struct{}{}, execBatch(ctx, tx, buildBatch(changes, rows))
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, classify(err), "save", "failed to save ledger changes", err)
	}
	return nil
}

// encodeEvents assigns row IDs once so a retried transaction writes the same rows.
func (s *PostgresStore) encodeEvents(events []fleet.Event) ([]eventRow, error) {
	rows := make([]eventRow, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(shared.EventFields(e))
		if err != nil {
			return nil, err
		}
		rows = append(rows, eventRow{id: s.newID(), kind: e.Kind(), payload: payload})
	}
	return rows, nil
}

// buildBatch orders writes so foreign keys resolve: owners and users before
// cars, cars before bookings, events last.
func buildBatch(changes fleet.ChangeSet, events []eventRow) *pgx.Batch {
	batch := &pgx.Batch{}
	for _, o := range changes.Owners {
		batch.Queue(upsertOwnerSQL, o.OwnerID.String(), o.Name)
	}
	for _, u := range changes.Users {
		batch.Queue(upsertUserSQL, u.UserID.String(), u.Name, u.DrivingLicense)
	}
	for _, c := range changes.Cars {
		batch.Queue(upsertCarSQL, c.CarID, c.OwnerID.String(), c.Available, pgconv.Uint128ToNumeric(c.HourlyRate))
	}
	if len(changes.DeletedCars) > 0 {
		batch.Queue(deleteCarsSQL, changes.DeletedCars)
	}
	for _, b := range changes.Bookings {
		batch.Queue(upsertBookingSQL, b.BookingID, b.CarID, b.UserID.String(),
			pgconv.Uint64ToNumeric(b.StartTime), pgconv.Uint64ToNumeric(b.EndTime), pgconv.Uint128ToNumeric(b.Deposit))
	}
	if len(changes.DeletedBookings) > 0 {
		batch.Queue(deleteBookingsSQL, changes.DeletedBookings)
	}
	for _, e := range events {
		batch.Queue(insertEventSQL, e.id, string(e.kind), e.payload)
	}
	return batch
}

// execBatch drains every queued statement; the first failure aborts the tx.
func execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	br := tx.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}

func (s *PostgresStore) Load(ctx context.Context) (shared.Snapshot, error) {
	snap, err := shared.RunInTx(ctx, s.pool, func(tx pgx.Tx) (shared.Snapshot, error) {
		var (
			snap shared.Snapshot
			err  error
		)
		if snap.Owners, err = queryAll(ctx, tx, selectOwnersSQL, scanOwner); err != nil {
			return snap, err
		}
		if snap.Users, err = queryAll(ctx, tx, selectUsersSQL, scanUser); err != nil {
			return snap, err
		}
		if snap.Cars, err = queryAll(ctx, tx, selectCarsSQL, scanCar); err != nil {
			return snap, err
		}
		snap.Bookings, err = queryAll(ctx, tx, selectBookingsSQL, scanBooking)
		return snap, err
	})
	if err != nil {
		kind := infra.KindDBFailure
		if errors.Is(err, pgconv.ErrInvalidNumeric) || errors.Is(err, pgconv.ErrNumericOverflow) {
			kind = infra.KindCorruptRecord
		}
		return shared.Snapshot{}, infra.WrapRepoErr(s.logger, kind, "load", "failed to load ledger snapshot", err)
	}
	return snap, nil
}

func queryAll[T any](ctx context.Context, tx pgx.Tx, sql string, scan pgx.RowToFunc[T]) ([]T, error) {
	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scan)
}

func scanOwner(row pgx.CollectableRow) (fleet.Owner, error) {
	var o fleet.Owner
	err := row.Scan(&o.OwnerID, &o.Name)
	return o, err
}

func scanUser(row pgx.CollectableRow) (fleet.User, error) {
	var u fleet.User
	err := row.Scan(&u.UserID, &u.Name, &u.DrivingLicense)
	return u, err
}

func scanCar(row pgx.CollectableRow) (fleet.Car, error) {
	var (
		c    fleet.Car
		rate pgtype.Numeric
	)
	if err := row.Scan(&c.CarID, &c.OwnerID, &c.Available, &rate); err != nil {
		return c, err
	}
	var err error
	c.HourlyRate, err = pgconv.Uint128FromNumeric(rate)
	return c, err
}

func scanBooking(row pgx.CollectableRow) (fleet.Booking, error) {
	var (
		b                   fleet.Booking
		start, end, deposit pgtype.Numeric
	)
	if err := row.Scan(&b.BookingID, &b.CarID, &b.UserID, &start, &end, &deposit); err != nil {
		return b, err
	}
	var err error
	if b.StartTime, err = pgconv.Uint64FromNumeric(start); err != nil {
		return b, err
	}
	if b.EndTime, err = pgconv.Uint64FromNumeric(end); err != nil {
		return b, err
	}
	b.Deposit, err = pgconv.Uint128FromNumeric(deposit)
	return b, err
}

func classify(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
