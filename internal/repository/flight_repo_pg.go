package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/skybooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const flightColumns = `id, code, flight_number, departure_city, departure_code, arrival_city, arrival_code,
	departure_time, arrival_time, start_date, frequency, duration, aircraft, seat_configuration, meal,
	price, status, COALESCE(transits, '{}')`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFlightNotFound
	}
	return f, err
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	if f.ID == 0 {
		return r.db.QueryRow(ctx, `INSERT INTO flights (code, flight_number, departure_city, departure_code,
			arrival_city, arrival_code, departure_time, arrival_time, start_date, frequency, duration, aircraft,
			seat_configuration, meal, price, status, transits)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING id`, flightArgs(f)...).Scan(&f.ID)
	}
	_, err := r.db.Exec(ctx, `INSERT INTO flights (code, flight_number, departure_city, departure_code,
		arrival_city, arrival_code, departure_time, arrival_time, start_date, frequency, duration, aircraft,
		seat_configuration, meal, price, status, transits, id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		append(flightArgs(f), f.ID)...)
	if err != nil {
		return err
	}
	// explicit ids bypass the sequence
	_, err = r.db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('flights', 'id'), (SELECT MAX(id) FROM flights))`)
	return err
}

func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET code=$1, flight_number=$2, departure_city=$3, departure_code=$4,
		arrival_city=$5, arrival_code=$6, departure_time=$7, arrival_time=$8, start_date=$9, frequency=$10,
		duration=$11, aircraft=$12, seat_configuration=$13, meal=$14, price=$15, status=$16, transits=$17,
		updated_at=now() WHERE id=$18`, append(flightArgs(f), f.ID)...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrFlightNotFound
	}
	return nil
}

func flightArgs(f *domain.Flight) []any {
	transits := f.LegBoundaryIDs
	if transits == nil {
		transits = []int64{}
	}
	return []any{
		f.Code, f.FlightNumber, f.DepartureCity, f.DepartureCode, f.ArrivalCity, f.ArrivalCode,
		f.DepartureTime, f.ArrivalTime, f.StartDate, string(f.Frequency), f.Duration, f.Aircraft,
		f.SeatConfiguration, f.Meal, f.Price, string(f.Status), transits,
	}
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Code, &f.FlightNumber, &f.DepartureCity, &f.DepartureCode, &f.ArrivalCity,
		&f.ArrivalCode, &f.DepartureTime, &f.ArrivalTime, &f.StartDate, &f.Frequency, &f.Duration, &f.Aircraft,
		&f.SeatConfiguration, &f.Meal, &f.Price, &f.Status, &f.LegBoundaryIDs); err != nil {
		return nil, err
	}
	if len(f.LegBoundaryIDs) == 0 {
		f.LegBoundaryIDs = nil
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
