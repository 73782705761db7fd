package get_lunar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/pkg/logger"
)

func get(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	NewHandler(logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/lunar"+query, nil))
	return w
}

func TestHandle_Tet2024(t *testing.T) {
	w := get(t, "?date=2024-02-10")
	require.Equal(t, http.StatusOK, w.Code)

	var resp LunarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "10/02/2024", resp.SolarDate)
	assert.Equal(t, "Thứ Bảy", resp.Weekday)
	assert.Equal(t, 1, resp.Lunar.Day)
	assert.Equal(t, 1, resp.Lunar.Month)
	assert.Equal(t, 2024, resp.Lunar.Year)
	assert.False(t, resp.Lunar.IsLeapMonth)
	assert.Equal(t, "1/1 Âm lịch", resp.LunarText)
	assert.Equal(t, "Thứ Bảy, 10/02/2024 - 1/1 Âm lịch", resp.DisplayDate)
}

func TestHandle_LeapMonth(t *testing.T) {
	w := get(t, "?date=2023-04-01")
	require.Equal(t, http.StatusOK, w.Code)

	var resp LunarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Lunar.IsLeapMonth)
	assert.Equal(t, "(nhuận) 11/2 Âm lịch", resp.LunarText)
}

func TestHandle_InvalidDate(t *testing.T) {
	for _, query := range []string{"", "?date=2024-13-01", "?date=10/02/2024"} {
		w := get(t, query)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}
