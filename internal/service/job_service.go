package service

import (
	"fmt"
	"log"
	"time"
)

type JobStore interface {
	GetUnconfirmedReservationIDsOlderThan(cutoff time.Time) ([]int, error)
	DeleteReservation(id int) error
}

type JobService struct {
	Repo JobStore
	now  func() time.Time
}

func NewJobService(repo JobStore) *JobService {
	return &JobService{Repo: repo, now: time.Now}
}

// RemoveExpiredReservations deletes unconfirmed reservations whose hold has
// lapsed. Each removal is independent: a failure is logged and the sweep
// moves on, since the survivors meet the predicate again next tick.
func (s *JobService) RemoveExpiredReservations() error {
	log.Println("Cron Job: Checking for expired unconfirmed reservations...")

	cutoff := s.now().Add(-holdMinutes * time.Minute)
	ids, err := s.Repo.GetUnconfirmedReservationIDsOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("cron job: failed to get expired reservations: %w", err)
	}

	if len(ids) == 0 {
		log.Println("Cron Job: No expired reservations found.")
		return nil
	}

	log.Printf("Cron Job: Found %d expired reservations. IDs: %v", len(ids), ids)

	removed := 0
	for _, id := range ids {
		if err := s.Repo.DeleteReservation(id); err != nil {
			log.Printf("Cron Job: Failed to remove reservation %d: %v", id, err)
			continue
		}
		removed++
	}

	log.Printf("Cron Job: Removed %d of %d expired reservations.", removed, len(ids))
	return nil
}
