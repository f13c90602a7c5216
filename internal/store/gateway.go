package store

import (
	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/repository"
	"gorm.io/gorm"
)

// Gateway is the single storage handle the rest of the system talks to. Every
// successful write publishes a change event after the write has been applied,
// so a watcher that wakes up always reads post-write state.
type Gateway struct {
	db       *gorm.DB
	harvests *repository.HarvestRepository
	records  *repository.RecordRepository
	feed     *Feed
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{
		db:       db,
		harvests: repository.NewHarvestRepository(db),
		records:  repository.NewRecordRepository(db),
		feed:     NewFeed(),
	}
}

func (g *Gateway) Changes() *Feed {
	return g.feed
}

func (g *Gateway) InsertHarvest(harvest *models.Harvest) error {
	if err := g.harvests.Create(harvest); err != nil {
		return err
	}
	g.feed.Publish(Event{Scope: ScopeHarvests, HarvestID: harvest.ID})
	return nil
}

func (g *Gateway) UpdateHarvest(harvest *models.Harvest) error {
	if err := g.harvests.Save(harvest); err != nil {
		return err
	}
	g.feed.Publish(Event{Scope: ScopeHarvests, HarvestID: harvest.ID})
	return nil
}

// DeleteHarvestByID removes a harvest together with all of its weight records
// in one transaction, so no observer can see orphaned records.
func (g *Gateway) DeleteHarvestByID(id uint) error {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := g.records.DeleteByHarvestInTx(tx, id); err != nil {
			return err
		}
		return g.harvests.DeleteByIDInTx(tx, id)
	})
	if err != nil {
		return err
	}
	g.feed.Publish(Event{Scope: ScopeRecords, HarvestID: id})
	g.feed.Publish(Event{Scope: ScopeHarvests, HarvestID: id})
	return nil
}

func (g *Gateway) GetAllHarvests() ([]models.Harvest, error) {
	return g.harvests.FindAll()
}

func (g *Gateway) GetHarvestByID(id uint) (*models.Harvest, error) {
	return g.harvests.FindByID(id)
}

func (g *Gateway) InsertWeightRecord(record *models.WeightRecord) error {
	if err := g.records.Create(record); err != nil {
		return err
	}
	g.feed.Publish(Event{Scope: ScopeRecords, HarvestID: record.HarvestID})
	return nil
}

func (g *Gateway) DeleteWeightRecordByID(id uint) error {
	// The owning harvest is looked up first so the change event can be scoped;
	// a missing record stays a silent no-op.
	var record models.WeightRecord
	result := g.db.Limit(1).Find(&record, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}
	if err := g.records.DeleteByID(id); err != nil {
		return err
	}
	g.feed.Publish(Event{Scope: ScopeRecords, HarvestID: record.HarvestID})
	return nil
}

func (g *Gateway) GetRecordsForHarvest(id uint) ([]models.WeightRecord, error) {
	return g.records.FindByHarvest(id)
}

// ApplyRosterUpdate writes the corrected record copies produced by a rename
// together with the new roster in one transaction. Either both land or
// neither does.
func (g *Gateway) ApplyRosterUpdate(harvest *models.Harvest, workers models.WorkerList, copies []models.WeightRecord) error {
	err := g.db.Transaction(func(tx *gorm.DB) error {
		for i := range copies {
			if err := g.records.CreateInTx(tx, &copies[i]); err != nil {
				return err
			}
		}
		harvest.Workers = workers
		return g.harvests.SaveInTx(tx, harvest)
	})
	if err != nil {
		return err
	}
	if len(copies) > 0 {
		g.feed.Publish(Event{Scope: ScopeRecords, HarvestID: harvest.ID})
	}
	g.feed.Publish(Event{Scope: ScopeHarvests, HarvestID: harvest.ID})
	return nil
}
