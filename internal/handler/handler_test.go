package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/velarium/scriptorium/internal/artgen"
	"github.com/velarium/scriptorium/internal/domain"
	"github.com/velarium/scriptorium/internal/event"
	"github.com/velarium/scriptorium/internal/loot"
	"github.com/velarium/scriptorium/internal/progression"
	"github.com/velarium/scriptorium/internal/quote"
	"github.com/velarium/scriptorium/internal/snapshot"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, string) (string, error) {
	return "https://img.example/art.png", nil
}

func newTestService(t *testing.T) progression.Service {
	t.Helper()

	roller := loot.NewRollerWithSource(
		func() float64 { return 0.9 }, // never drops
		func(min, max int) int { return min },
	)
	svc, err := progression.NewService(
		context.Background(),
		snapshot.NewMemoryStore(),
		quote.NewCatalog(),
		roller,
		artgen.NewService(nopGenerator{}),
		event.NopBus{},
	)
	require.NoError(t, err)
	return svc
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database Connected - Success", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		mockDB.AssertExpectations(t)
	})

	t.Run("Database Connection Failed", func(t *testing.T) {
		mockDB := &MockDBPool{}
		mockDB.On("Ping", mock.Anything).Return(assert.AnError)

		w := httptest.NewRecorder()
		HandleReadyz(mockDB).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"unavailable"`)
	})

	t.Run("Memory Backend - No Pool", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(w, httptest.NewRequest("GET", "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleReadQuote(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	HandleReadQuote(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/read", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var result progression.ReadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Quote.Text, "fallback corpus serves with nothing uploaded")
	assert.Greater(t, result.XPGained, 0)
}

func TestHandleEquipBoon_Validation(t *testing.T) {
	svc := newTestService(t)

	t.Run("invalid slot rejected by validation", func(t *testing.T) {
		body := bytes.NewBufferString(`{"slot":"hat","boon_id":"b-1"}`)
		w := httptest.NewRecorder()

		HandleEquipBoon(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/equipment", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Validation failed")
	})

	t.Run("unknown boon maps to not found", func(t *testing.T) {
		body := bytes.NewBufferString(`{"slot":"mind","boon_id":"ghost"}`)
		w := httptest.NewRecorder()

		HandleEquipBoon(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/equipment", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgBoonNotFoundError)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		body := bytes.NewBufferString(`{broken`)
		w := httptest.NewRecorder()

		HandleEquipBoon(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/equipment", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleRegisterScripture(t *testing.T) {
	svc := newTestService(t)

	body := bytes.NewBufferString(`{"file_id":"file-1","display_name":"meditations.txt","quotes":["Begin each day by telling yourself..."]}`)
	w := httptest.NewRecorder()

	HandleRegisterScripture(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scriptures", body))

	require.Equal(t, http.StatusCreated, w.Code)

	listW := httptest.NewRecorder()
	HandleGetScriptures(svc).ServeHTTP(listW, httptest.NewRequest("GET", "/api/v1/scriptures", nil))

	var scriptures []domain.ScriptureStats
	require.NoError(t, json.Unmarshal(listW.Body.Bytes(), &scriptures))
	require.Len(t, scriptures, 1)
	assert.Equal(t, "meditations.txt", scriptures[0].DisplayName)
}

func TestHandleRegisterScripture_EmptyQuotes(t *testing.T) {
	svc := newTestService(t)

	body := bytes.NewBufferString(`{"file_id":"file-1","display_name":"x.txt","quotes":[]}`)
	w := httptest.NewRecorder()

	HandleRegisterScripture(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/scriptures", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteScripture_NotFound(t *testing.T) {
	svc := newTestService(t)

	router := chi.NewRouter()
	router.Delete("/api/v1/scriptures/{fileID}", HandleDeleteScripture(svc))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/v1/scriptures/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgScriptureNotFoundError)
}

func TestHandleImportBackup_Rejection(t *testing.T) {
	svc := newTestService(t)

	body := bytes.NewBufferString(`{"player":{"xp":"nope","level":1,"total_quotes_read":0}}`)
	w := httptest.NewRecorder()

	HandleImportBackup(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/backup/import", body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestHandleExportImportRoundTrip(t *testing.T) {
	svc := newTestService(t)

	// Earn some progress, export, then import into a second fresh engine.
	readW := httptest.NewRecorder()
	HandleReadQuote(svc).ServeHTTP(readW, httptest.NewRequest("POST", "/api/v1/read", nil))
	require.Equal(t, http.StatusOK, readW.Code)

	exportW := httptest.NewRecorder()
	HandleExportBackup(svc).ServeHTTP(exportW, httptest.NewRequest("GET", "/api/v1/backup/export", nil))
	require.Equal(t, http.StatusOK, exportW.Code)

	other := newTestService(t)
	importW := httptest.NewRecorder()
	HandleImportBackup(other).ServeHTTP(importW, httptest.NewRequest("POST", "/api/v1/backup/import", exportW.Body))
	require.Equal(t, http.StatusOK, importW.Code)

	state, err := other.GetState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, state.TotalQuotesRead)
}

func TestHandleGetDestiny(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	HandleGetDestiny(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/destiny", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var d domain.Destiny
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
	assert.Equal(t, "Fateweaver", d.PrimaryClass)
	assert.NotEmpty(t, d.Title)
}

func TestHandleGeneratePortrait(t *testing.T) {
	svc := newTestService(t)

	w := httptest.NewRecorder()
	HandleGeneratePortrait(svc).ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/portrait", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	// Immediate retry is denied in the result body, still 200.
	retryW := httptest.NewRecorder()
	HandleGeneratePortrait(svc).ServeHTTP(retryW, httptest.NewRequest("POST", "/api/v1/portrait", nil))

	assert.Equal(t, http.StatusOK, retryW.Code)
	assert.Contains(t, retryW.Body.String(), `"success":false`)
}

func TestHandleGetBoons_Filtering(t *testing.T) {
	svc := newTestService(t)

	t.Run("rejects unknown rarity", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleGetBoons(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/boons?rarity=mythic", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleGetBoons(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/boons?slot=tail", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty inventory lists empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleGetBoons(svc).ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/boons?rarity=rare&equipped=true", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
