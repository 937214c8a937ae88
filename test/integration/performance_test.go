package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kingrain94/usage-billing-api/internal/api"
	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
	"github.com/kingrain94/usage-billing-api/internal/metrics"
	"github.com/kingrain94/usage-billing-api/internal/mocks"
	"github.com/kingrain94/usage-billing-api/internal/repository/postgres"
	"github.com/kingrain94/usage-billing-api/internal/service"
	"github.com/kingrain94/usage-billing-api/pkg/logger"
)

const testTenantID = "tenant_1"

type testStack struct {
	router *gin.Engine
	events *mocks.EventStoreRepository
}

// newTestStack wires the real usage and aggregation services to a sqlite
// backed ledger. The event store is mocked.
func newTestStack(tb testing.TB) *testStack {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+strings.ReplaceAll(tb.Name(), "/", "_")+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(tb, err)
	sqlDB, err := db.DB()
	require.NoError(tb, err)
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(tb, postgres.Migrate(db))

	events := new(mocks.EventStoreRepository)
	events.On("AggregateWindow", mock.Anything, testTenantID, mock.Anything, mock.Anything).
		Return(domain.UsageTotals{Tokens: 100, Price: 0.5}, nil)

	repo := new(mocks.Repository)
	repo.On("Ledger").Return(postgres.NewUsageLedgerRepository(db, db))
	repo.On("EventStore").Return(events)

	publisher := new(mocks.EventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	appLogger := logger.NewNop()
	usageHandler := api.NewUsageHandler(service.NewUsageService(repo, publisher, appLogger))
	aggregationHandler := api.NewAggregationHandler(
		service.NewAggregationService(repo, metrics.New(prometheus.NewRegistry()), appLogger, 5*time.Second),
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", testTenantID)
		c.Next()
	})
	router.POST("/usage", usageHandler.InsertUsage)
	router.GET("/usage/monthly/summary", aggregationHandler.MonthlySummary)

	return &testStack{router: router, events: events}
}

func insertPayload(tb testing.TB, day int) []byte {
	tb.Helper()
	payload, err := json.Marshal(dto.InsertUsageRequest{
		Date:          fmt.Sprintf("2024-04-%02d", day%28+1),
		TokensUsed:    1000,
		PerTokenPrice: 0.001,
	})
	require.NoError(tb, err)
	return payload
}

func BenchmarkInsertUsage(b *testing.B) {
	stack := newTestStack(b)
	payload := insertPayload(b, 1)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodPost, "/usage", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			stack.router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkMonthlySummary(b *testing.B) {
	stack := newTestStack(b)
	for day := 0; day < 100; day++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/usage", bytes.NewReader(insertPayload(b, day)))
		req.Header.Set("Content-Type", "application/json")
		stack.router.ServeHTTP(w, req)
		require.Equal(b, http.StatusCreated, w.Code)
	}

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest(http.MethodGet, "/usage/monthly/summary?year=2024&month=4", nil)

			w := httptest.NewRecorder()
			stack.router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyInsertUsage checks that concurrent ledger writes all land
// and that the monthly summary reflects every one of them.
func TestHighConcurrencyInsertUsage(t *testing.T) {
	stack := newTestStack(t)

	numGoroutines := 50
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest(http.MethodPost, "/usage", bytes.NewReader(insertPayload(t, worker+j)))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				stack.router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}(i)
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	t.Logf("=== High Concurrency Insert Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Throughput: %.2f requests/second", float64(totalRequests)/totalTime.Seconds())
	t.Logf("Average latency: %v", totalLatency/time.Duration(totalRequests))
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")

	req, _ := http.NewRequest(http.MethodGet, "/usage/monthly/summary?year=2024&month=4", nil)
	w := httptest.NewRecorder()
	stack.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary dto.MonthlySummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, int64(totalRequests)*1000+100, summary.TotalTokensUsed)
	assert.InDelta(t, float64(totalRequests)*1.0+0.5, summary.TotalPrice, 1e-6)
}

// TestSustainedSummaryLoad interleaves writes with summary reads.
func TestSustainedSummaryLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sustained load test in short mode")
	}
	stack := newTestStack(t)

	duration := 2 * time.Second
	startTime := time.Now()
	requestCount := 0

	for time.Since(startTime) < duration {
		req, _ := http.NewRequest(http.MethodPost, "/usage", bytes.NewReader(insertPayload(t, requestCount)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		stack.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		if requestCount%50 == 0 {
			req, _ := http.NewRequest(http.MethodGet, "/usage/monthly/summary?year=2024&month=4", nil)
			w := httptest.NewRecorder()
			stack.router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
		}

		requestCount++
	}

	t.Logf("=== Sustained Load Results ===")
	t.Logf("Total requests: %d", requestCount)
	t.Logf("Average throughput: %.2f requests/second", float64(requestCount)/time.Since(startTime).Seconds())

	assert.Greater(t, requestCount, 0)
	stack.events.AssertCalled(t, "AggregateWindow", mock.Anything, testTenantID, mock.Anything, mock.Anything)
}
