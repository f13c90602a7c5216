package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/store"
	"github.com/agritrack/agritrack-server/internal/stream"
)

// Report is the derived view of one harvest for a selected date.
type Report struct {
	Harvest        *models.Harvest                  `json:"harvest"`
	AvailableDates []string                         `json:"available_dates"`
	SelectedDate   string                           `json:"selected_date"`
	RecordsForDate map[string][]models.WeightRecord `json:"records_for_date"`
	TotalWeight    float64                          `json:"total_weight"`
}

// BuildReport is a pure function of the full snapshot: same inputs, same
// report. All correctness comes from recomputing it whole, never from
// patching a previous report.
func BuildReport(harvest *models.Harvest, records []models.WeightRecord, selectedDate string) Report {
	seen := make(map[string]struct{}, len(records))
	dates := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		dates = append(dates, r.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	grouped := make(map[string][]models.WeightRecord)
	total := 0.0
	for _, r := range records {
		if r.Date != selectedDate {
			continue
		}
		grouped[r.WorkerName] = append(grouped[r.WorkerName], r)
		total += r.Weight
	}

	return Report{
		Harvest:        harvest,
		AvailableDates: dates,
		SelectedDate:   selectedDate,
		RecordsForDate: grouped,
		TotalWeight:    total,
	}
}

// ReportService opens per-harvest report sessions and tracks the ones shared
// by concurrent consumers.
type ReportService struct {
	gateway   *store.Gateway
	idleGrace time.Duration

	mu       sync.Mutex
	sessions map[uint]*ReportSession
}

func NewReportService(gateway *store.Gateway, idleGrace time.Duration) *ReportService {
	if idleGrace <= 0 {
		idleGrace = 5 * time.Second
	}
	return &ReportService{
		gateway:   gateway,
		idleGrace: idleGrace,
		sessions:  make(map[uint]*ReportSession),
	}
}

// Session returns the shared session for the harvest, opening one on first
// use. All consumers of the same harvest observe the same selected date.
func (s *ReportService) Session(harvestID uint) *ReportSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[harvestID]; ok {
		return sess
	}
	sess := s.Open(harvestID)
	s.sessions[harvestID] = sess
	return sess
}

// CloseSession tears down the shared session for a harvest, typically after
// the harvest itself is deleted.
func (s *ReportService) CloseSession(harvestID uint) {
	s.mu.Lock()
	sess, ok := s.sessions[harvestID]
	delete(s.sessions, harvestID)
	s.mu.Unlock()
	if ok {
		sess.Close()
	}
}

// CloseAll shuts down every shared session.
func (s *ReportService) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uint]*ReportSession)
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Close()
	}
}

// DeleteRecord removes one weight record by id, regardless of which session
// (if any) its harvest has open. A missing id is a no-op.
func (s *ReportService) DeleteRecord(id uint) error {
	return s.gateway.DeleteWeightRecordByID(id)
}

// Snapshot builds a one-shot report from current storage state. An empty date
// selects today.
func (s *ReportService) Snapshot(harvestID uint, selectedDate string) (Report, error) {
	if selectedDate == "" {
		selectedDate = todayDate()
	}
	harvest, err := s.gateway.GetHarvestByID(harvestID)
	if err != nil {
		return Report{}, err
	}
	records, err := s.gateway.GetRecordsForHarvest(harvestID)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(harvest, records, selectedDate), nil
}

// ReportSession keeps one harvest's report continuously recomputed. The
// selected date starts at today and thereafter stays whatever the consumer
// last chose, whether or not any records exist for it.
type ReportSession struct {
	gateway   *store.Gateway
	harvestID uint
	cell      *stream.Cell[Report]
	dates     chan string
	done      chan struct{}
	closeOnce sync.Once
	idleGrace time.Duration
}

// Open starts a session for the harvest. The first report is published before
// Open returns, so a subscriber never sees an unseeded stream. The session
// runs until Close.
func (s *ReportService) Open(harvestID uint) *ReportSession {
	sess := &ReportSession{
		gateway:   s.gateway,
		harvestID: harvestID,
		cell:      stream.NewCell[Report](),
		dates:     make(chan string),
		done:      make(chan struct{}),
		idleGrace: s.idleGrace,
	}
	// Subscribe before the first recompute so a write landing in between
	// still produces a signal for the loop.
	watch := s.gateway.Changes().Subscribe(func(e store.Event) bool {
		return e.HarvestID == harvestID
	})
	date := todayDate()
	sess.recompute(date)
	go sess.run(watch, date)
	return sess
}

// Subscribe attaches a consumer to the session's report stream with
// replay-latest semantics.
func (sess *ReportSession) Subscribe(ctx context.Context) (<-chan Report, context.CancelFunc) {
	return sess.cell.Subscribe(ctx)
}

// Current returns the most recently published report.
func (sess *ReportSession) Current() (Report, bool) {
	return sess.cell.Latest()
}

// SelectDate switches the report to the given date. No validation: selecting
// a date with no records yields an empty grouping, which is valid state.
func (sess *ReportSession) SelectDate(date string) {
	select {
	case sess.dates <- date:
	case <-sess.done:
	}
}

// AddRecord validates and inserts a weight record for today. The record lands
// on today's date even while an older date is being viewed; new weighings are
// always entered on the day they happen.
func (sess *ReportSession) AddRecord(workerName, weightInput string) (*models.WeightRecord, error) {
	workerName = strings.TrimSpace(workerName)
	if workerName == "" {
		return nil, ErrWorkerRequired
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(weightInput), 64)
	if err != nil || weight <= 0 {
		return nil, ErrWeightInvalid
	}

	record := &models.WeightRecord{
		HarvestID:  sess.harvestID,
		WorkerName: workerName,
		Weight:     weight,
		Date:       todayDate(),
	}
	if err := sess.gateway.InsertWeightRecord(record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRecord removes one record by id. A missing id is a no-op.
func (sess *ReportSession) DeleteRecord(id uint) error {
	return sess.gateway.DeleteWeightRecordByID(id)
}

// Close stops the session loop and detaches it from the change feed.
func (sess *ReportSession) Close() {
	sess.closeOnce.Do(func() { close(sess.done) })
}

func (sess *ReportSession) run(watch *store.Watch, date string) {
	defer watch.Cancel()

	var idle *time.Timer
	idleC := func() <-chan time.Time {
		if idle == nil {
			return nil
		}
		return idle.C
	}
	parked := false

	for {
		select {
		case <-sess.done:
			if idle != nil {
				idle.Stop()
			}
			return

		case date = <-sess.dates:
			parked = false
			sess.recompute(date)

		case <-watch.C:
			if parked {
				continue
			}
			sess.recompute(date)
			if sess.cell.SubscriberCount() == 0 && idle == nil {
				idle = time.NewTimer(sess.idleGrace)
			}

		case <-idleC():
			idle = nil
			if sess.cell.SubscriberCount() == 0 {
				parked = true
			}

		case <-sess.cell.Wake():
			// First subscriber after an idle stretch: whatever was skipped
			// while parked is recovered by one fresh recompute.
			if parked {
				parked = false
				sess.recompute(date)
			}
		}
	}
}

// recompute publishes a report built from a fresh snapshot. If either read
// fails the previous report stays current; the next change signal retries.
func (sess *ReportSession) recompute(date string) {
	harvest, err := sess.gateway.GetHarvestByID(sess.harvestID)
	if err != nil {
		return
	}
	records, err := sess.gateway.GetRecordsForHarvest(sess.harvestID)
	if err != nil {
		return
	}
	sess.cell.Set(BuildReport(harvest, records, date))
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}
