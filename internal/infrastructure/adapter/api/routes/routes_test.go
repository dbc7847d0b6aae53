package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	uploaduc "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/upload"
	useruc "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/user"
	walletuc "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/imageproc"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/imagestore"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/odometer"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "routes-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidations(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testServer struct {
	router  *gin.Engine
	storage *repository.MemoryStorage
	images  *imagestore.MemoryStore
	tp      coreport.TimeProvider
}

type serverOption func(*Options)

func withAuth(o *Options) {
	o.Verifier = identity.NewJWTVerifier(jwtSecret, "", o.TimeProvider)
}

func withRateLimit(limit uint) serverOption {
	return func(o *Options) {
		o.RateLimit = config.RateLimitConfig{Enabled: true, Rate: time.Minute, Limit: limit}
	}
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	storage := repository.NewMemoryStorage(tp)
	images := imagestore.NewMemoryStore()
	processor := imageproc.NewProcessor(imageproc.Options{MaxBytes: 1 << 20, MaxDimension: 256})
	reader := odometer.NewFilenameReader(50, 199, rand.New(rand.NewSource(1)), log)

	uploads := uploaduc.NewUploadService(uploaduc.Dependencies{
		UserRepo:     storage,
		UploadRepo:   storage,
		StatsCache:   cache.NoopStatsCache{},
		Processor:    processor,
		Images:       images,
		Odometer:     reader,
		TimeProvider: tp,
		Logger:       log,
	})
	users := useruc.NewUserUseCase(storage, images, processor, tp, log)
	wallet := walletuc.NewWalletUseCase(storage, uploads, tp, log)

	options := Options{TimeProvider: tp, Logger: log}
	for _, opt := range opts {
		opt(&options)
	}

	router := gin.New()
	SetupMiddlewares(router, config.CORSConfig{AllowOrigins: []string{"*"}}, log, tp)
	SetupRoutes(router, Handlers{
		User:   handler.NewUserHandler(users, 1<<20, log),
		Upload: handler.NewUploadHandler(uploads, 1<<20, log),
		Wallet: handler.NewWalletHandler(wallet, log),
		Health: handler.NewHealthHandler(storage, "memory", nil, log),
	}, options)

	return &testServer{router: router, storage: storage, images: images, tp: tp}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body any) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uploadRequest(t *testing.T, userID, filename string, data []byte, key string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if userID != "" {
		require.NoError(t, mw.WriteField("userId", userID))
	}
	if data != nil {
		part, err := mw.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if key != "" {
		req.Header.Set(handler.IdempotencyHeader, key)
	}
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) onboard(t *testing.T, email, vehicleType string) uint64 {
	t.Helper()
	w := s.do(t, jsonRequest(http.MethodPost, "/api/user", map[string]string{
		"name": "Driver", "vehicleType": vehicleType, "email": email,
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint64(decode[map[string]any](t, w)["id"].(float64))
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func TestUserEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, jsonRequest(http.MethodPost, "/api/user", map[string]string{
		"name": "Asha", "vehicleType": "EV Bike", "email": "Asha@Example.com",
	}))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "asha@example.com", created["email"])
	assert.Equal(t, "0.00", created["balanceINR"])
	assert.Equal(t, "0.000000", created["carbonCredits"])
	assert.Nil(t, created["rcImageId"])

	w = s.do(t, jsonRequest(http.MethodPost, "/api/user", map[string]string{
		"name": "Asha", "vehicleType": "EV Bike", "email": "asha@example.com",
	}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, jsonRequest(http.MethodPost, "/api/user", map[string]string{
		"name": "Bo", "vehicleType": "Scooter", "email": "bo@example.com",
	}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, jsonRequest(http.MethodPost, "/api/user", map[string]string{"vehicleType": "EV Car"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/user/asha@example.com", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Asha", decode[map[string]any](t, w)["name"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/user/nobody@example.com", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	errBody := decode[map[string]any](t, w)
	assert.Equal(t, float64(4040), errBody["code"])

	w = s.do(t, jsonRequest(http.MethodPatch, "/api/user/1", map[string]string{"vehicleType": "EV Car"}))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "EV Car", decode[map[string]any](t, w)["vehicleType"])

	w = s.do(t, jsonRequest(http.MethodPatch, "/api/user/abc", map[string]string{"name": "X"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func registrationRequest(t *testing.T, userID uint64, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", "rc.png")
	require.NoError(t, err)
	_, _ = part.Write(data)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/"+itoa(userID)+"/registration", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRegistrationDocument(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "rc@example.com", "EV Car")

	w := s.do(t, registrationRequest(t, userID, pngBytes(t)))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rc, _ := decode[map[string]any](t, w)["rcImageId"].(string)
	assert.True(t, strings.HasPrefix(rc, "registration/"))
	_, stored := s.images.Load(rc)
	assert.True(t, stored)
}

func TestRegistrationDocumentBodyLimit(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "rc-big@example.com", "EV Car")

	// the limit is 1 MiB of image plus 1 MiB of multipart overhead
	w := s.do(t, registrationRequest(t, userID, bytes.Repeat([]byte{0x89}, 3<<20)))

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Equal(t, float64(4023), decode[map[string]any](t, w)["code"])
	assert.Equal(t, 0, s.images.Len())
}

func TestUploadCreditsWallet(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "ravi@example.com", "E-Rickshaw")

	w := s.do(t, uploadRequest(t, itoa(userID), "odo_100.png", pngBytes(t), ""))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	upload := decode[map[string]any](t, w)
	assert.Equal(t, float64(100), upload["estimatedKm"])
	assert.Equal(t, "5.000", upload["carbonSavedKg"])
	assert.Equal(t, "0.005000", upload["carbonCredits"])
	assert.Equal(t, "7.50", upload["rewardINR"])
	assert.True(t, strings.HasPrefix(upload["imageId"].(string), "odometer/"))

	w = s.do(t, uploadRequest(t, itoa(userID), "odo_57.png", pngBytes(t), ""))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/wallet/"+itoa(userID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	wallet := decode[map[string]any](t, w)
	assert.Equal(t, "11.78", wallet["balanceINR"])
	assert.Equal(t, "0.007850", wallet["carbonCredits"])
	assert.Equal(t, float64(2), wallet["totalUploads"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/stats/"+itoa(userID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalUploads":2,"totalKm":157,"totalEarned":11.78,"totalCarbonSaved":7.850}`, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/uploads/"+itoa(userID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]map[string]any](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, float64(57), list[0]["estimatedKm"])
	assert.Equal(t, float64(100), list[1]["estimatedKm"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/upload/"+itoa(uint64(upload["id"].(float64))), nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUploadIdempotency(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "kiran@example.com", "EV Car")

	first := s.do(t, uploadRequest(t, itoa(userID), "odo_40.png", pngBytes(t), "trip-7"))
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	replay := s.do(t, uploadRequest(t, itoa(userID), "odo_40.png", pngBytes(t), "trip-7"))
	require.Equal(t, http.StatusOK, replay.Code, replay.Body.String())
	assert.Equal(t, decode[map[string]any](t, first)["id"], decode[map[string]any](t, replay)["id"])

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/wallet/"+itoa(userID), nil))
	assert.Equal(t, "7.20", decode[map[string]any](t, w)["balanceINR"])
	assert.Equal(t, 1, s.images.Len())
}

func TestUploadRejections(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "rej@example.com", "EV Bike")

	tests := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"Missing image", uploadRequest(t, itoa(userID), "", nil, ""), http.StatusBadRequest},
		{"Missing user ID", uploadRequest(t, "", "odo.png", pngBytes(t), ""), http.StatusBadRequest},
		{"Malformed user ID", uploadRequest(t, "abc", "odo.png", pngBytes(t), ""), http.StatusBadRequest},
		{"Unknown user", uploadRequest(t, "999", "odo.png", pngBytes(t), ""), http.StatusNotFound},
		{"Not an image", uploadRequest(t, itoa(userID), "notes.txt", []byte("just some text"), ""), http.StatusBadRequest},
		{"Too large", uploadRequest(t, itoa(userID), "big.png", bytes.Repeat([]byte{0x89}, 3<<20), ""), http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(t, tc.req)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}

	stats, err := s.storage.GetUserStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalUploads)
}

func TestReadEndpointsForUnknownUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/uploads/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/stats/42", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalUploads":0,"totalKm":0,"totalEarned":0.00,"totalCarbonSaved":0.000}`, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/stats/zero", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/wallet/42", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWithdraw(t *testing.T) {
	s := newTestServer(t)
	userID := s.onboard(t, "pay@example.com", "E-Rickshaw")
	w := s.do(t, uploadRequest(t, itoa(userID), "odo_100.png", pngBytes(t), ""))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("Accepted", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{
			"userId": userID, "amount": 5, "method": "UPI Transfer",
		}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[map[string]any](t, w)
		assert.Equal(t, true, body["success"])
		assert.Regexp(t, `^TXN\d+$`, body["transactionId"])
	})

	t.Run("Amount as string", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{
			"userId": userID, "amount": "7.50", "method": "Bank Transfer",
		}))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{
			"userId": userID, "amount": "7.51", "method": "Bank Transfer",
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, float64(4001), decode[map[string]any](t, w)["code"])
	})

	t.Run("Unsupported method", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{
			"userId": userID, "amount": "1", "method": "Cheque",
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing fields", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{"userId": userID}))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown user", func(t *testing.T) {
		w := s.do(t, jsonRequest(http.MethodPost, "/api/withdraw", map[string]any{
			"userId": 999, "amount": "1", "method": "UPI Transfer",
		}))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	// acknowledgements never debit
	user, err := s.storage.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "7.50", user.GetBalance())
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, withAuth)
	token := func(email string) string {
		tok, err := identity.IssueToken(jwtSecret, "", email, coreport.Minute, s.tp)
		require.NoError(t, err)
		return "Bearer " + tok
	}

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/wallet/1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/wallet/1", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, s.do(t, req).Code)

	// the token decides the email when the body omits it
	req = jsonRequest(http.MethodPost, "/api/user", map[string]string{"name": "Meena", "vehicleType": "EV Car"})
	req.Header.Set("Authorization", token("meena@example.com"))
	w = s.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	userID := uint64(decode[map[string]any](t, w)["id"].(float64))

	req = httptest.NewRequest(http.MethodGet, "/api/wallet/"+itoa(userID), nil)
	req.Header.Set("Authorization", token("meena@example.com"))
	assert.Equal(t, http.StatusOK, s.do(t, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/wallet/"+itoa(userID), nil)
	req.Header.Set("Authorization", token("intruder@example.com"))
	assert.Equal(t, http.StatusForbidden, s.do(t, req).Code)

	assert.Equal(t, http.StatusOK, s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestUploadRateLimit(t *testing.T) {
	s := newTestServer(t, withRateLimit(1))
	userID := s.onboard(t, "fast@example.com", "EV Bike")

	w := s.do(t, uploadRequest(t, itoa(userID), "odo_10.png", pngBytes(t), ""))
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, uploadRequest(t, itoa(userID), "odo_11.png", pngBytes(t), ""))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// reads are not limited
	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/uploads/"+itoa(userID), nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", s.do(t, req).Header().Get(middleware.RequestIDHeader))
}

func TestPanicRecovery(t *testing.T) {
	s := newTestServer(t)
	s.router.GET("/boom", func(*gin.Context) { panic("boom") })

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, w.Body.String())
}

func TestVehicleTypesAreTheKnownSet(t *testing.T) {
	s := newTestServer(t)
	for _, vt := range entity.VehicleTypes() {
		s.onboard(t, strings.ReplaceAll(strings.ToLower(string(vt)), " ", "")+"@example.com", string(vt))
	}
}
