package services

import (
	"context"
	"strings"
	"time"

	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/store"
	"github.com/agritrack/agritrack-server/internal/stream"
)

// HarvestService owns the live roster of harvests: creation, deletion with
// record cascade, and a replay-latest view of the full list.
type HarvestService struct {
	gateway *store.Gateway
}

func NewHarvestService(gateway *store.Gateway) *HarvestService {
	return &HarvestService{gateway: gateway}
}

// Create inserts a new harvest with an empty roster and today as its start
// date. A blank name is rejected before any write happens.
func (s *HarvestService) Create(name string) (*models.Harvest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	harvest := &models.Harvest{
		Name:      name,
		StartDate: time.Now().Format("2 Jan 2006"),
		Workers:   models.WorkerList{},
	}
	if err := s.gateway.InsertHarvest(harvest); err != nil {
		return nil, err
	}
	return harvest, nil
}

// Delete removes the harvest and all of its weight records.
func (s *HarvestService) Delete(id uint) error {
	return s.gateway.DeleteHarvestByID(id)
}

func (s *HarvestService) Get(id uint) (*models.Harvest, error) {
	return s.gateway.GetHarvestByID(id)
}

// List returns every harvest, newest first.
func (s *HarvestService) List() ([]models.Harvest, error) {
	return s.gateway.GetAllHarvests()
}

// Watch returns a cell that always holds the current harvest list and is
// refreshed on every harvest-scoped change until ctx is cancelled. A re-read
// that fails leaves the previous value in place; the next change event tries
// again.
func (s *HarvestService) Watch(ctx context.Context) *stream.Cell[[]models.Harvest] {
	cell := stream.NewCell[[]models.Harvest]()
	watch := s.gateway.Changes().Subscribe(func(e store.Event) bool {
		return e.Scope == store.ScopeHarvests
	})
	if harvests, err := s.gateway.GetAllHarvests(); err == nil {
		cell.Set(harvests)
	}

	go func() {
		defer watch.Cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-watch.C:
				if harvests, err := s.gateway.GetAllHarvests(); err == nil {
					cell.Set(harvests)
				}
			}
		}
	}()

	return cell
}
