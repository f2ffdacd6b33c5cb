package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "costera/internal/pkg/jwt"
	"costera/internal/pkg/models"
	"costera/internal/utils"
	"costera/services/rides/repository"
	"costera/services/rides/usecase"
)

type rideTestServer struct {
	echo *echo.Echo
	repo *repository.MemoryRideRepo
	cfg  *models.Config
}

func newRideTestServer(t *testing.T) *rideTestServer {
	t.Helper()

	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "costera-test"},
	}

	repo := repository.NewMemoryRideRepo()
	repo.PutUser(models.User{ID: 10, Handle: "maya", DisplayName: "Maya"})
	repo.PutUser(models.User{ID: 20, Handle: "ben", DisplayName: "Ben"})
	repo.PutUser(models.User{ID: 99, Handle: "shuttleco", DisplayName: "Shuttle Co", IsVendor: true})

	uc, err := usecase.NewRideUC(cfg, repo, nil)
	require.NoError(t, err)

	e := echo.New()
	NewHandler(uc, cfg).RegisterRoutes(e)

	return &rideTestServer{echo: e, repo: repo, cfg: cfg}
}

func (s *rideTestServer) token(t *testing.T, userID int64, isVendor bool) string {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(&models.User{ID: userID, Handle: "h", IsVendor: isVendor}, s.cfg.JWT)
	require.NoError(t, err)
	return token
}

func (s *rideTestServer) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func createRideJSON(departure time.Time) string {
	return fmt.Sprintf(`{"direction":"return","departure_at":%q,"max_passengers":4,"pickup_location":"resort gate"}`,
		departure.Format(time.RFC3339))
}

func TestRideRoutesAuth(t *testing.T) {
	s := newRideTestServer(t)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "unauthenticated create rejected")

	rec = s.do(http.MethodGet, "/api/rides", "", "")
	assert.Equal(t, http.StatusOK, rec.Code, "list is public")
}

func TestRideCreateAndGet(t *testing.T) {
	s := newRideTestServer(t)
	token := s.token(t, 10, false)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10), resp.Data.CreatorID)
	assert.Equal(t, "maya", resp.Data.Creator.Handle)

	rec = s.do(http.MethodGet, fmt.Sprintf("/api/rides/%d", resp.Data.ID), "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/rides/nonsense", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/rides/404", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJoinCapacityOverHTTP(t *testing.T) {
	s := newRideTestServer(t)
	creator := s.token(t, 10, false)
	rider := s.token(t, 20, false)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), creator)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	path := fmt.Sprintf("/api/rides/%d/join", created.Data.ID)

	rec = s.do(http.MethodPost, path, `{"dropoff_location":"east side","passenger_count":2}`, rider)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, path, `{"dropoff_location":"harbor","passenger_count":3}`, rider)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.NotNil(t, errResp.Remaining)
	assert.Equal(t, 2, *errResp.Remaining)
}

func TestPassengerViewsOverHTTP(t *testing.T) {
	s := newRideTestServer(t)
	creator := s.token(t, 10, false)
	rider := s.token(t, 20, false)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), creator)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	joinPath := fmt.Sprintf("/api/rides/%d/join", created.Data.ID)
	rec = s.do(http.MethodPost, joinPath, `{"dropoff_location":"east side","passenger_count":1}`, rider)
	require.Equal(t, http.StatusCreated, rec.Code)

	listPath := fmt.Sprintf("/api/rides/%d/passengers", created.Data.ID)

	rec = s.do(http.MethodGet, listPath, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"ben"`, "anonymous view hides identity")
	assert.NotContains(t, rec.Body.String(), "passenger_count", "anonymous view hides party size")
	assert.Contains(t, rec.Body.String(), "east side")

	rec = s.do(http.MethodGet, listPath, "", creator)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ben"`)
}

func TestSequenceRoutes(t *testing.T) {
	s := newRideTestServer(t)
	creator := s.token(t, 10, false)
	rider := s.token(t, 20, false)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), creator)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	rideID := created.Data.ID

	joinPath := fmt.Sprintf("/api/rides/%d/join", rideID)
	rec = s.do(http.MethodPost, joinPath, `{"dropoff_location":"east side","passenger_count":1}`, rider)
	require.Equal(t, http.StatusCreated, rec.Code)
	var joined struct {
		Data models.RidePassenger `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &joined))

	seqPath := fmt.Sprintf("/api/rides/%d/passengers/%d/sequence", rideID, joined.Data.ID)
	rec = s.do(http.MethodPatch, seqPath, `{"sequence":1}`, rider)
	assert.Equal(t, http.StatusForbidden, rec.Code, "only the creator manages the sequence")

	rec = s.do(http.MethodPatch, seqPath, `{"sequence":1}`, creator)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	lockPath := fmt.Sprintf("/api/rides/%d/lockSequence", rideID)
	rec = s.do(http.MethodPost, lockPath, "", creator)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPatch, seqPath, `{"sequence":1}`, creator)
	assert.Equal(t, http.StatusConflict, rec.Code, "reorder rejected after lock")
}

func TestVendorRoutes(t *testing.T) {
	s := newRideTestServer(t)
	creator := s.token(t, 10, false)
	vendor := s.token(t, 99, true)
	rider := s.token(t, 20, false)

	rec := s.do(http.MethodPost, "/api/rides", createRideJSON(time.Now().Add(24*time.Hour)), creator)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	assignPath := fmt.Sprintf("/api/rides/%d/assign", created.Data.ID)
	rec = s.do(http.MethodPost, assignPath, "", rider)
	assert.Equal(t, http.StatusForbidden, rec.Code, "non-vendor cannot claim")

	rec = s.do(http.MethodPost, assignPath, "", vendor)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	completePath := fmt.Sprintf("/api/rides/%d/complete", created.Data.ID)
	rec = s.do(http.MethodPost, completePath, "", vendor)
	require.Equal(t, http.StatusOK, rec.Code)

	var completed struct {
		Data models.RideDetail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.Equal(t, models.RideStatusCompleted, completed.Data.Status)
}
