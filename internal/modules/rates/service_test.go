package rates

import (
	"context"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	svc, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	t.Run("florida bills per toll day", func(t *testing.T) {
		r, err := svc.Resolve("FL")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if r.Basis != BasisPerTollDay {
			t.Fatalf("basis = %q, want %q", r.Basis, BasisPerTollDay)
		}
		if r.ConvenienceFeeCap == nil || r.ConvenienceFeeCap.String() != "34.95" {
			t.Fatalf("fee cap = %v, want 34.95", r.ConvenienceFeeCap)
		}
		if got := r.UnlimitedDailyRate.String(); got != "13.49" {
			t.Fatalf("unlimited rate = %s, want 13.49", got)
		}
		if r.UnlimitedCapDays != nil {
			t.Fatalf("unlimited cap days = %v, want nil", r.UnlimitedCapDays)
		}
	})

	t.Run("california caps unlimited at a week", func(t *testing.T) {
		r, err := svc.Resolve("CA")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if r.Basis != BasisFlatPerRentalDay {
			t.Fatalf("basis = %q, want %q", r.Basis, BasisFlatPerRentalDay)
		}
		if r.UnlimitedCapDays == nil || *r.UnlimitedCapDays != 7 {
			t.Fatalf("unlimited cap days = %v, want 7", r.UnlimitedCapDays)
		}
		if r.TimeZone != "America/Los_Angeles" {
			t.Fatalf("time zone = %q, want America/Los_Angeles", r.TimeZone)
		}
	})

	t.Run("other states use the uncapped generic rule", func(t *testing.T) {
		r, err := svc.Resolve("TX")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if r.Code != "TX" {
			t.Fatalf("code = %q, want TX", r.Code)
		}
		if r.Basis != BasisFlatPerRentalDay {
			t.Fatalf("basis = %q, want %q", r.Basis, BasisFlatPerRentalDay)
		}
		if r.ConvenienceFeeCap != nil {
			t.Fatalf("fee cap = %v, want nil", r.ConvenienceFeeCap)
		}
		if got := r.UnlimitedDailyRate.String(); got != "11.99" {
			t.Fatalf("unlimited rate = %s, want 11.99", got)
		}
	})
}

func TestResolveAllStatesLoadable(t *testing.T) {
	svc, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	for _, code := range usStates {
		r, err := svc.Resolve(code)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", code, err)
		}
		if _, err := r.Location(); err != nil {
			t.Fatalf("Location(%s): %v", code, err)
		}
	}
}

func TestResolveUnknownJurisdiction(t *testing.T) {
	svc, err := NewService(context.Background(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	if _, err := svc.Resolve("ZZ"); err != ErrUnknownJurisdiction {
		t.Fatalf("err = %v, want ErrUnknownJurisdiction", err)
	}
}
