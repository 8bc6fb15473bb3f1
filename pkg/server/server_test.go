package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/models/api"
	reportsvc "github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/report"
	"github.com/OKUMUKOKUMU/Weekly-Sales/pkg/services/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	webAPI := NewWebAPI(zerolog.Nop(), Config{
		Dependencies: Dependencies{
			Sessions: session.NewStore(),
			Composer: reportsvc.NewComposer("KSH"),
		},
	})
	ts := httptest.NewServer(webAPI.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func createSession(t *testing.T, ts *httptest.Server) api.Session {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/v1/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var s api.Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	require.NotEmpty(t, s.ID)
	return s
}

func putInputs(t *testing.T, ts *httptest.Server, id string, in api.ReportInputs) *http.Response {
	t.Helper()
	body, err := json.Marshal(in)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("%s/api/v1/sessions/%s/inputs", ts.URL, id), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestCreateSessionReturnsDefaults(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	assert.Equal(t, 113998325.0, s.Inputs.Budget)
	assert.Equal(t, 22, s.Inputs.WeekNumber)
	assert.True(t, s.Inputs.HighlightMay25)
}

func TestSaveAndReadInputs(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	saved := api.ReportInputs{Budget: 100000, MTDRevenue: 50000, WeekNumber: 5}
	resp := putInputs(t, ts, s.ID, saved)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, err := http.Get(fmt.Sprintf("%s/api/v1/sessions/%s/inputs", ts.URL, s.ID))
	require.NoError(t, err)
	defer getResp.Body.Close()

	var got api.ReportInputs
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&got))
	// Wholesale overwrite: previously defaulted fields are gone.
	assert.Equal(t, saved, got)
}

func TestMetricsRecomputedFromSavedInputs(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	resp := putInputs(t, ts, s.ID, api.ReportInputs{Budget: 100000, MTDRevenue: 50000, WeekNumber: 5})
	resp.Body.Close()

	metricsResp, err := http.Get(fmt.Sprintf("%s/api/v1/sessions/%s/metrics", ts.URL, s.ID))
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	var m api.DerivedMetrics
	require.NoError(t, json.NewDecoder(metricsResp.Body).Decode(&m))
	assert.Equal(t, 50.0, m.AchievementPct)
	assert.Equal(t, 50000.0, m.RevenueGap)
}

func TestScenariosAndCharts(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	scenarioResp, err := http.Get(fmt.Sprintf("%s/api/v1/sessions/%s/scenarios", ts.URL, s.ID))
	require.NoError(t, err)
	defer scenarioResp.Body.Close()

	var rows []api.ScenarioRow
	require.NoError(t, json.NewDecoder(scenarioResp.Body).Decode(&rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Historical Trend", rows[0].Label)
	assert.Equal(t, "Linear Extrapolation", rows[1].Label)
	assert.Equal(t, "Blended Estimate", rows[2].Label)

	chartResp, err := http.Get(fmt.Sprintf("%s/api/v1/sessions/%s/charts", ts.URL, s.ID))
	require.NoError(t, err)
	defer chartResp.Body.Close()

	var charts api.Charts
	require.NoError(t, json.NewDecoder(chartResp.Body).Decode(&charts))
	assert.Equal(t, []string{"Weekly", "MTD"}, charts.BudgetVsActual.Periods)
	assert.Equal(t, 100.0, charts.Scenarios.ReferencePct)
	assert.Len(t, charts.Scenarios.PercentOfBudget, 3)
}

func TestUnknownSessionIs404(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/sessions/missing/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func uploadAttachment(t *testing.T, ts *httptest.Server, id, category, filename, content string) api.AttachmentStatus {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.Copy(fw, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(
		fmt.Sprintf("%s/api/v1/sessions/%s/attachments/%s", ts.URL, id, category),
		mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status api.AttachmentStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	return status
}

func generate(t *testing.T, ts *httptest.Server, id string) *http.Response {
	t.Helper()
	resp, err := http.Post(fmt.Sprintf("%s/api/v1/sessions/%s/report", ts.URL, id), "", nil)
	require.NoError(t, err)
	return resp
}

func TestGenerateReport(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	resp := generate(t, ts, s.ID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	disposition := resp.Header.Get("Content-Disposition")
	assert.Contains(t, disposition, "Week22_Sales_Report_")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	md := string(body)
	assert.Contains(t, md, "# Week 22 Sales Report")
	assert.Contains(t, md, "## MTD Sales Revenue Update")
	assert.Contains(t, md, "## Closing Estimates Summary")
	assert.NotContains(t, md, "Top 10 Short Supplied Items", "no attachment uploaded")
}

func TestGenerateWithAttachments(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	status := uploadAttachment(t, ts, s.ID, "short-supply", "items.csv", "Item,Value\nMozzarella,450000\n")
	assert.True(t, status.Loaded)
	assert.Equal(t, 1, status.Rows)

	// An unparseable upload is stored as a failure, not rejected.
	status = uploadAttachment(t, ts, s.ID, "market-returns", "returns.pdf", "not a table")
	assert.False(t, status.Loaded)
	assert.Contains(t, status.Message, "unsupported attachment type")

	resp := generate(t, ts, s.ID)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	md := string(body)

	assert.Contains(t, md, "## Top 10 Short Supplied Items")
	assert.Contains(t, md, "| Mozzarella | 450000 |")
	assert.Contains(t, md, "## Top 10 Market Returns")
	assert.Contains(t, md, "unsupported attachment type")
	// The six preceding sections are intact.
	assert.Contains(t, md, "## MTD Sales Revenue Update")
	assert.Contains(t, md, "## Current Week Performance")
	assert.Contains(t, md, "## Operational Insights")
	assert.Contains(t, md, "## Key Highlights")
	assert.Contains(t, md, "## Closing Estimates Summary")
}

func TestUnknownAttachmentCategory(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "items.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Item,Value\nA,1\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(
		fmt.Sprintf("%s/api/v1/sessions/%s/attachments/wrong-category", ts.URL, s.ID),
		mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGenerateRefusesInvalidInputs(t *testing.T) {
	ts := newTestServer(t)
	s := createSession(t, ts)

	resp := putInputs(t, ts, s.ID, api.ReportInputs{Budget: -5, WeekNumber: 1})
	resp.Body.Close()

	genResp := generate(t, ts, s.ID)
	defer genResp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, genResp.StatusCode)
	assert.Empty(t, genResp.Header.Get("Content-Disposition"), "no partial artifact offered")
}

func TestSessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t)
	a := createSession(t, ts)
	b := createSession(t, ts)

	resp := putInputs(t, ts, a.ID, api.ReportInputs{Budget: 1, WeekNumber: 1})
	resp.Body.Close()

	getResp, err := http.Get(fmt.Sprintf("%s/api/v1/sessions/%s/inputs", ts.URL, b.ID))
	require.NoError(t, err)
	defer getResp.Body.Close()

	var got api.ReportInputs
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&got))
	assert.Equal(t, 113998325.0, got.Budget)
}
