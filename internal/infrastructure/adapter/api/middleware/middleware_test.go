package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/casino-wallet/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	mockLogger := core.NewMockLogger(t)
	mockLogger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["path"] == "/boom" && fields["error"] == "kaboom"
	})).Return().Once()

	router := gin.New()
	router.Use(ErrorHandler(mockLogger))
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, errs.CodeInternal, errResp.Code)
}

func TestLogger(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		status     int
		logMessage string
	}{
		{"Success is logged as info", http.StatusOK, "Request processed"},
		{"Client error is logged as info", http.StatusNotFound, "Request processed"},
		{"Server error is logged as error", http.StatusInternalServerError, "Request failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockLogger := core.NewMockLogger(t)
			mockTime := core.NewMockTimeProvider(t)
			mockTime.EXPECT().Now().Return(start).Once()
			mockTime.EXPECT().Since(start).Return(25 * time.Millisecond).Once()

			matcher := mock.MatchedBy(func(fields map[string]any) bool {
				return fields["status"] == tc.status && fields["latency_ms"] == int64(25) && fields["path"] == "/ping"
			})
			if tc.status >= 500 {
				mockLogger.EXPECT().Error(tc.logMessage, matcher).Return().Once()
			} else {
				mockLogger.EXPECT().Info(tc.logMessage, matcher).Return().Once()
			}

			router := gin.New()
			router.Use(Logger(mockLogger, mockTime))
			router.GET("/ping", func(c *gin.Context) { c.Status(tc.status) })

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Informational", statusText(101))
	assert.Equal(t, "Success", statusText(201))
	assert.Equal(t, "Redirect", statusText(302))
	assert.Equal(t, "Client Error", statusText(422))
	assert.Equal(t, "Server Error", statusText(503))
}
