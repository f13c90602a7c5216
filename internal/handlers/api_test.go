package handlers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agritrack/agritrack-server/internal/database"
	"github.com/agritrack/agritrack-server/internal/models"
	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/agritrack/agritrack-server/internal/store"
)

type testAPI struct {
	router  *gin.Engine
	gateway *store.Gateway
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	gateway := store.NewGateway(db)
	harvestService := services.NewHarvestService(gateway)
	reportService := services.NewReportService(gateway, time.Second)
	rosterService := services.NewRosterService(gateway)
	t.Cleanup(reportService.CloseAll)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	listCell := harvestService.Watch(ctx)

	harvestHandler := NewHarvestHandler(harvestService, reportService, listCell)
	recordHandler := NewRecordHandler(reportService)
	reportHandler := NewReportHandler(reportService)
	rosterHandler := NewRosterHandler(rosterService)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		api.GET("/harvests", harvestHandler.List)
		api.POST("/harvests", harvestHandler.Create)
		api.GET("/harvests/stream", harvestHandler.Stream)
		api.DELETE("/harvests/:id", harvestHandler.Delete)
		api.PUT("/harvests/:id/workers", rosterHandler.UpdateWorkers)
		api.GET("/harvests/:id/report", reportHandler.Get)
		api.PUT("/harvests/:id/report/date", reportHandler.SelectDate)
		api.GET("/harvests/:id/report/stream", reportHandler.Stream)
		api.POST("/harvests/:id/records", recordHandler.Add)
		api.DELETE("/records/:id", recordHandler.Delete)
	}

	return &testAPI{router: router, gateway: gateway}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestAPI_CreateAndListHarvests(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Finca Norte"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Finca Norte", created.Name)
	assert.NotZero(t, created.ID)

	w = api.do(t, http.MethodGet, "/api/v1/harvests", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var harvests []models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvests))
	require.Len(t, harvests, 1)
	assert.Equal(t, created.ID, harvests[0].ID)
}

func TestAPI_CreateHarvestBlankNameRejected(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	harvests, err := api.gateway.GetAllHarvests()
	require.NoError(t, err)
	assert.Empty(t, harvests)
}

func TestAPI_AddRecordValidation(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Gate"})
	require.Equal(t, http.StatusCreated, w.Code)
	var harvest models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvest))

	for _, body := range []gin.H{
		{"worker_name": " ", "weight": "5"},
		{"worker_name": "Alice", "weight": "0"},
		{"worker_name": "Alice", "weight": "abc"},
	} {
		w := api.do(t, http.MethodPost, "/api/v1/harvests/1/records", body)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	}

	records, err := api.gateway.GetRecordsForHarvest(harvest.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	w = api.do(t, http.MethodPost, "/api/v1/harvests/1/records", gin.H{"worker_name": "Alice", "weight": "7.5"})
	require.Equal(t, http.StatusCreated, w.Code)

	records, err = api.gateway.GetRecordsForHarvest(harvest.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 7.5, records[0].Weight)
}

func TestAPI_ReportSnapshot(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Rep"})
	require.Equal(t, http.StatusCreated, w.Code)
	var harvest models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvest))

	for _, rec := range []models.WeightRecord{
		{HarvestID: harvest.ID, WorkerName: "A", Weight: 10, Date: "2024-01-01"},
		{HarvestID: harvest.ID, WorkerName: "A", Weight: 5, Date: "2024-01-01"},
		{HarvestID: harvest.ID, WorkerName: "B", Weight: 7, Date: "2024-01-02"},
	} {
		r := rec
		require.NoError(t, api.gateway.InsertWeightRecord(&r))
	}

	w = api.do(t, http.MethodGet, "/api/v1/harvests/1/report?date=2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var report services.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, report.AvailableDates)
	assert.Equal(t, 15.0, report.TotalWeight)
	require.Len(t, report.RecordsForDate["A"], 2)
}

func TestAPI_RenameWorkers(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Rename"})
	require.Equal(t, http.StatusCreated, w.Code)
	var harvest models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvest))

	w = api.do(t, http.MethodPut, "/api/v1/harvests/1/workers", gin.H{"workers": "Ana\nLuis"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, api.gateway.InsertWeightRecord(&models.WeightRecord{
		HarvestID: harvest.ID, WorkerName: "Ana", Weight: 9, Date: "2024-02-02",
	}))

	w = api.do(t, http.MethodPut, "/api/v1/harvests/1/workers", gin.H{"workers": "Anna\nLuis"})
	require.Equal(t, http.StatusOK, w.Code)

	records, err := api.gateway.GetRecordsForHarvest(harvest.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	updated, err := api.gateway.GetHarvestByID(harvest.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkerList{"Anna", "Luis"}, updated.Workers)
}

func TestAPI_RenameUnknownHarvest(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPut, "/api/v1/harvests/99/workers", gin.H{"workers": "Ana"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_DeleteHarvestCascades(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Gone"})
	require.Equal(t, http.StatusCreated, w.Code)
	var harvest models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvest))

	require.NoError(t, api.gateway.InsertWeightRecord(&models.WeightRecord{
		HarvestID: harvest.ID, WorkerName: "Ana", Weight: 3, Date: "2024-02-02",
	}))

	w = api.do(t, http.MethodDelete, "/api/v1/harvests/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	records, err := api.gateway.GetRecordsForHarvest(harvest.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	w = api.do(t, http.MethodDelete, "/api/v1/harvests/notanid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_ReportStreamSendsCurrentReportFirst(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/harvests", gin.H{"name": "Stream"})
	require.Equal(t, http.StatusCreated, w.Code)
	var harvest models.Harvest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &harvest))

	w = api.do(t, http.MethodPost, "/api/v1/harvests/1/records", gin.H{"worker_name": "Ana", "weight": "4"})
	require.Equal(t, http.StatusCreated, w.Code)

	server := httptest.NewServer(api.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/harvests/1/report/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// A frame reflecting the record added before the subscriber attached must
	// arrive without any further mutation: the stream replays the latest
	// report on attach.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))

		var report services.Report
		require.NoError(t, json.Unmarshal([]byte(payload), &report))
		if report.TotalWeight == 4.0 {
			return
		}
	}
	t.Fatal("stream closed without delivering the current report")
}
