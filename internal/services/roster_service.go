package services

import (
	"strings"

	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/store"
)

// RosterService applies roster edits and carries historical records across a
// worker rename.
type RosterService struct {
	gateway *store.Gateway
}

func NewRosterService(gateway *store.Gateway) *RosterService {
	return &RosterService{gateway: gateway}
}

// ParseRoster turns free-form roster text, one name per line, into a worker
// list. Lines are trimmed and blank lines dropped.
func ParseRoster(text string) models.WorkerList {
	workers := models.WorkerList{}
	for _, line := range strings.Split(text, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		workers = append(workers, name)
	}
	return workers
}

// UpdateWorkers replaces the harvest's roster. When the edit removes exactly
// one name and adds exactly one name it is treated as a rename: every record
// under the removed name gets a copy inserted under the added name, originals
// included, so the new name's history matches the old name's exactly. Any
// other diff shape updates the roster alone and leaves records untouched,
// even when that strands history under stale names. Record copies and the
// roster update are committed in one transaction.
func (s *RosterService) UpdateWorkers(harvestID uint, rosterText string) error {
	harvest, err := s.gateway.GetHarvestByID(harvestID)
	if err != nil {
		return err
	}
	if harvest == nil {
		return ErrHarvestNotFound
	}

	oldWorkers := harvest.Workers
	newWorkers := ParseRoster(rosterText)

	removed := difference(oldWorkers, newWorkers)
	added := difference(newWorkers, oldWorkers)

	var copies []models.WeightRecord
	if len(removed) == 1 && len(added) == 1 {
		records, err := s.gateway.GetRecordsForHarvest(harvestID)
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.WorkerName != removed[0] {
				continue
			}
			copies = append(copies, models.WeightRecord{
				HarvestID:  r.HarvestID,
				WorkerName: added[0],
				Weight:     r.Weight,
				Date:       r.Date,
			})
		}
	}

	return s.gateway.ApplyRosterUpdate(harvest, newWorkers, copies)
}

// difference returns the entries of a that do not appear in b, in a's order.
func difference(a, b models.WorkerList) []string {
	var out []string
	for _, name := range a {
		if !b.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}
