// README: Rate store backed by PostgreSQL.
package rates

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store loads jurisdiction rate overrides from the jurisdiction_rates table.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadAll returns every rate row. Null cap columns map to nil (uncapped).
func (s *Store) LoadAll(ctx context.Context) ([]Rate, error) {
	rows, err := s.db.Query(ctx, `
		SELECT code, basis, daily_convenience_fee, convenience_fee_cap,
		       unlimited_daily_rate, unlimited_cap_days, time_zone
		FROM jurisdiction_rates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rate
	for rows.Next() {
		var (
			r       Rate
			basis   string
			fee     string
			cap     *string
			daily   string
			capDays *int
		)
		if err := rows.Scan(&r.Code, &basis, &fee, &cap, &daily, &capDays, &r.TimeZone); err != nil {
			return nil, err
		}
		r.Basis = Basis(basis)
		if r.DailyConvenienceFee, err = decimal.NewFromString(fee); err != nil {
			return nil, err
		}
		if cap != nil {
			c, err := decimal.NewFromString(*cap)
			if err != nil {
				return nil, err
			}
			r.ConvenienceFeeCap = &c
		}
		if r.UnlimitedDailyRate, err = decimal.NewFromString(daily); err != nil {
			return nil, err
		}
		r.UnlimitedCapDays = capDays
		out = append(out, r)
	}
	return out, rows.Err()
}
