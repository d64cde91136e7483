// README: Rate resolution service; merges DB overrides onto the built-in table.
package rates

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownJurisdiction = errors.New("unknown jurisdiction code")

// Service resolves a jurisdiction code to its rate rules. The table is
// assembled once at construction and read-only afterwards.
type Service struct {
	table map[string]Rate
}

// NewService builds the rate table. store may be nil, in which case only
// the built-in defaults apply. Rows loaded from the store replace their
// built-in counterparts; every row must name a loadable time zone.
func NewService(ctx context.Context, store *Store) (*Service, error) {
	table := defaultTable()
	if store != nil {
		overrides, err := store.LoadAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("load jurisdiction rates: %w", err)
		}
		for _, r := range overrides {
			table[r.Code] = r
		}
	}
	for code, r := range table {
		if _, err := r.Location(); err != nil {
			return nil, fmt.Errorf("jurisdiction %s: bad time zone %q: %w", code, r.TimeZone, err)
		}
	}
	return &Service{table: table}, nil
}

// Resolve returns the rate rules for code.
func (s *Service) Resolve(code string) (Rate, error) {
	r, ok := s.table[code]
	if !ok {
		return Rate{}, ErrUnknownJurisdiction
	}
	return r, nil
}
