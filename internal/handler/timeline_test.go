package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseline/caseline/internal/service"
)

func newTimelineHandler() *TimelineHandler {
	return NewTimelineHandler(service.NewSubmissionService(nil, nil))
}

func TestPreviewChronological(t *testing.T) {
	h := newTimelineHandler()

	body := `{
		"events": [
			{"id": "b", "title": "Second", "approximateDate": "2024-01-10"},
			{"id": "a", "title": "First", "approximateDate": "Summer 2023"}
		],
		"complaints": []
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Timeline []struct {
			ID string `json:"id"`
		} `json:"timeline"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Timeline, 2)
	assert.Equal(t, "a", resp.Timeline[0].ID)
	assert.Equal(t, "b", resp.Timeline[1].ID)
}

func TestPreviewCustomMode(t *testing.T) {
	h := newTimelineHandler()

	body := `{
		"events": [
			{"id": "a", "approximateDate": "2024-01-01"},
			{"id": "b", "approximateDate": "2024-02-01"}
		],
		"viewMode": "custom",
		"customOrder": ["b", "a"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Preview(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Timeline []struct {
			ID string `json:"id"`
		} `json:"timeline"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Timeline, 2)
	assert.Equal(t, "b", resp.Timeline[0].ID)
	assert.Equal(t, "a", resp.Timeline[1].ID)
}

func TestPreviewRejectsUnknownMode(t *testing.T) {
	h := newTimelineHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/timeline/preview", strings.NewReader(`{"viewMode": "random"}`))
	rec := httptest.NewRecorder()

	h.Preview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReorderMovesEvent(t *testing.T) {
	h := newTimelineHandler()

	body := `{"order": ["a", "b", "c"], "draggedId": "c", "targetIndex": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/reorder", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Reorder(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Order []string `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"c", "a", "b"}, resp.Order)
}

func TestReorderRejectsSyntheticEntry(t *testing.T) {
	h := newTimelineHandler()

	body := `{"order": ["a", "b"], "draggedId": "complaint_c1", "targetIndex": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/timeline/reorder", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Reorder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
