package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"cineplex-booking-cli/model"
	"cineplex-booking-cli/store"
)

// SettingsService owns the single pricing scheme. Reads hand out deep copies
// so an edit in progress can never leak into a price computation.
type SettingsService struct {
	gate   *sync.Mutex
	store  *store.Store
	log    *zap.Logger
	scheme model.PriceScheme
}

// Scheme returns a copy of the current pricing scheme.
func (s *SettingsService) Scheme() model.PriceScheme {
	s.gate.Lock()
	defer s.gate.Unlock()
	return s.scheme.Clone()
}

// SetScheme replaces the pricing scheme wholesale and persists it.
func (s *SettingsService) SetScheme(scheme model.PriceScheme) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	previous := s.scheme
	s.scheme = scheme.Clone()
	if err := s.store.SaveScheme(s.scheme); err != nil {
		s.scheme = previous
		return err
	}
	s.log.Info("pricing scheme updated")
	return nil
}

// AddHoliday registers a date (2006-01-02) that prices as super peak.
func (s *SettingsService) AddHoliday(date string) error {
	if _, err := time.Parse(model.HolidayLayout, date); err != nil {
		return fmt.Errorf("invalid holiday date %q: %w", date, err)
	}

	s.gate.Lock()
	defer s.gate.Unlock()

	for _, h := range s.scheme.Holidays {
		if h == date {
			return nil
		}
	}
	s.scheme.Holidays = append(s.scheme.Holidays, date)
	if err := s.store.SaveScheme(s.scheme); err != nil {
		s.scheme.Holidays = s.scheme.Holidays[:len(s.scheme.Holidays)-1]
		return err
	}
	s.log.Info("holiday added", zap.String("date", date))
	return nil
}

// RemoveHoliday drops a configured holiday. Unknown dates are not an error.
func (s *SettingsService) RemoveHoliday(date string) error {
	s.gate.Lock()
	defer s.gate.Unlock()

	for i, h := range s.scheme.Holidays {
		if h == date {
			previous := s.scheme.Holidays
			s.scheme.Holidays = append(append([]string{}, previous[:i]...), previous[i+1:]...)
			if err := s.store.SaveScheme(s.scheme); err != nil {
				s.scheme.Holidays = previous
				return err
			}
			return nil
		}
	}
	return nil
}

// schemeLocked is the in-gate read used by the booking coordinator.
func (s *SettingsService) schemeLocked() model.PriceScheme {
	return s.scheme.Clone()
}
