package system

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"calcpad/internal/infrastructure/memory"
	"calcpad/internal/mocks"
	"calcpad/internal/ports"
)

func newRouter(store ports.IKeyValueStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(store, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(r)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestLiveAndReady(t *testing.T) {
	r := newRouter(memory.New())

	assert.Equal(t, http.StatusOK, get(r, "/liveness").Code)
	w := get(r, "/readyness")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready"`)
}

func TestReady_StorageDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIKeyValueStore(ctrl)
	store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	w := get(newRouter(store), "/readyness")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestMetrics(t *testing.T) {
	w := get(newRouter(memory.New()), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
