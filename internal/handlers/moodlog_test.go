package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/solace-app/solace/backend/internal/apierror"
	"github.com/solace-app/solace/backend/internal/models"
)

// stubMoodLogService returns canned responses for handler tests
type stubMoodLogService struct {
	created *models.MoodLog
	logs    []models.MoodLog
	err     error

	lastReq *models.CreateMoodLogRequest
}

func (s *stubMoodLogService) LogMood(ctx context.Context, req *models.CreateMoodLogRequest) (*models.MoodLog, error) {
	s.lastReq = req
	return s.created, s.err
}

func (s *stubMoodLogService) GetRecentLogs(ctx context.Context, anonymousID string, days int) ([]models.MoodLog, error) {
	return s.logs, s.err
}

func newMoodLogRouter(svc *stubMoodLogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMoodLogHandler(svc)
	router := gin.New()
	router.POST("/api/v1/moodlog", handler.CreateMoodLog)
	router.GET("/api/v1/moodlog", handler.ListMoodLogs)
	return router
}

func TestCreateMoodLog(t *testing.T) {
	svc := &stubMoodLogService{
		created: &models.MoodLog{ID: "log-1", AnonymousID: "anon-1", Mood: 4},
	}
	router := newMoodLogRouter(svc)

	body := `{"anonymous_id":"anon-1","mood":4,"tags":["work"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/moodlog", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp["id"] != "log-1" || resp["status"] != "ok" {
		t.Errorf("unexpected response: %v", resp)
	}
	if svc.lastReq == nil || svc.lastReq.Mood != 4 {
		t.Errorf("expected request forwarded to service, got %+v", svc.lastReq)
	}
}

func TestCreateMoodLogRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"mood out of range", `{"anonymous_id":"anon-1","mood":6}`},
		{"mood missing", `{"anonymous_id":"anon-1"}`},
		{"anonymous_id missing", `{"mood":3}`},
		{"unknown tag", `{"anonymous_id":"anon-1","mood":3,"tags":["gardening"]}`},
		{"not json", `mood=3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubMoodLogService{}
			router := newMoodLogRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/moodlog", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if svc.lastReq != nil {
				t.Error("invalid payload must not reach the service")
			}

			var problem apierror.ProblemDetails
			if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
				t.Fatalf("failed to decode problem: %v", err)
			}
			if problem.Type != apierror.TypeBadRequest {
				t.Errorf("expected type %s, got %s", apierror.TypeBadRequest, problem.Type)
			}
		})
	}
}

func TestListMoodLogsEmptyIsArray(t *testing.T) {
	router := newMoodLogRouter(&stubMoodLogService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/moodlog?anonymous_id=anon-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}
