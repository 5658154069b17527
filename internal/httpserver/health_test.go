package httpserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
	"smart-task-manager/internal/model"
	pkgLog "smart-task-manager/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any) {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any) {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (mockLogger) Warn(ctx context.Context, args ...any) {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Error(ctx context.Context, args ...any) {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any) {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

var _ pkgLog.Logger = mockLogger{}

type mockTaskHandler struct{}

func (mockTaskHandler) Create(c *gin.Context)          {}
func (mockTaskHandler) Preview(c *gin.Context)         {}
func (mockTaskHandler) List(c *gin.Context)            {}
func (mockTaskHandler) ListCompleted(c *gin.Context)   {}
func (mockTaskHandler) ListOverdue(c *gin.Context)     {}
func (mockTaskHandler) ListPending(c *gin.Context)     {}
func (mockTaskHandler) Detail(c *gin.Context)          {}
func (mockTaskHandler) Update(c *gin.Context)          {}
func (mockTaskHandler) SetStatus(c *gin.Context)       {}
func (mockTaskHandler) Delete(c *gin.Context)          {}
func (mockTaskHandler) Stats(c *gin.Context)           {}
func (mockTaskHandler) Recommendations(c *gin.Context) {}

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	srv, err := New(Config{
		Logger:      mockLogger{},
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: model.EnvironmentProduction,
		Middleware:  middleware.New(mockLogger{}),
		TaskHandler: mockTaskHandler{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestHealthReportsEnvironment(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		if w.Code != 200 {
			t.Fatalf("GET %s: status = %d", path, w.Code)
		}
		var resp struct {
			Data struct {
				Service     string `json:"service"`
				Environment string `json:"environment"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("GET %s: unmarshal: %v", path, err)
		}
		if resp.Data.Service != ServiceName {
			t.Errorf("GET %s: service = %q", path, resp.Data.Service)
		}
		if resp.Data.Environment != string(model.EnvironmentProduction) {
			t.Errorf("GET %s: environment = %q, want %q", path, resp.Data.Environment, model.EnvironmentProduction)
		}
	}
}

func TestNewRequiresTaskHandler(t *testing.T) {
	_, err := New(Config{
		Logger:     mockLogger{},
		Port:       8080,
		Mode:       gin.TestMode,
		Middleware: middleware.New(mockLogger{}),
	})
	if err == nil {
		t.Fatal("New accepted a config without a task handler")
	}
}
