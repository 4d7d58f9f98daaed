package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-records-api/config"
	"hospital-records-api/internal/delivery/dto"
	"hospital-records-api/internal/delivery/http/handler"
	"hospital-records-api/internal/delivery/http/middleware"
	"hospital-records-api/internal/service"
	"hospital-records-api/internal/usecase"
	"hospital-records-api/pkg/jwt"
	"hospital-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Compile-time checks
var (
	_ usecase.AuthUsecase     = (*mockAuthUsecase)(nil)
	_ usecase.PatientUsecase  = (*mockPatientUsecase)(nil)
	_ usecase.DoctorUsecase   = (*mockDoctorUsecase)(nil)
	_ usecase.MappingUsecase  = (*mockMappingUsecase)(nil)
	_ usecase.AuditLogUsecase = (*mockAuditLogUsecase)(nil)
	_ service.TokenStore      = (*mockTokenStore)(nil)
)

type mockAuthUsecase struct {
	RegisterFunc       func(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	LoginFunc          func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshTokenFunc   func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	LogoutFunc         func(ctx context.Context, userID uuid.UUID) error
	GetCurrentUserFunc func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, errors.New("RegisterFunc not implemented in mock")
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, errors.New("LoginFunc not implemented in mock")
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, req)
	}
	return nil, errors.New("RefreshTokenFunc not implemented in mock")
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, userID)
	}
	return nil, errors.New("GetCurrentUserFunc not implemented in mock")
}

type mockPatientUsecase struct {
	ListPatientsFunc  func(ctx context.Context, ownerID uuid.UUID) (*dto.PatientListResponse, error)
	CreatePatientFunc func(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatientFunc    func(ctx context.Context, id uint) (*dto.PatientPublicResponse, error)
	UpdatePatientFunc func(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatientFunc func(ctx context.Context, id uint) error
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context, ownerID uuid.UUID) (*dto.PatientListResponse, error) {
	if m.ListPatientsFunc != nil {
		return m.ListPatientsFunc(ctx, ownerID)
	}
	return &dto.PatientListResponse{}, nil
}

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, ownerID, req)
	}
	return nil, errors.New("CreatePatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) GetPatient(ctx context.Context, id uint) (*dto.PatientPublicResponse, error) {
	if m.GetPatientFunc != nil {
		return m.GetPatientFunc(ctx, id)
	}
	return nil, errors.New("GetPatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) UpdatePatient(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, id, req)
	}
	return nil, errors.New("UpdatePatientFunc not implemented in mock")
}

func (m *mockPatientUsecase) DeletePatient(ctx context.Context, id uint) error {
	if m.DeletePatientFunc != nil {
		return m.DeletePatientFunc(ctx, id)
	}
	return errors.New("DeletePatientFunc not implemented in mock")
}

type mockDoctorUsecase struct {
	ListDoctorsFunc  func(ctx context.Context) (*dto.DoctorListResponse, error)
	CreateDoctorFunc func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctorFunc    func(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	UpdateDoctorFunc func(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctorFunc func(ctx context.Context, id uint) error
}

func (m *mockDoctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	if m.ListDoctorsFunc != nil {
		return m.ListDoctorsFunc(ctx)
	}
	return &dto.DoctorListResponse{}, nil
}

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, req)
	}
	return nil, errors.New("CreateDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) GetDoctor(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	if m.GetDoctorFunc != nil {
		return m.GetDoctorFunc(ctx, id)
	}
	return nil, errors.New("GetDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) UpdateDoctor(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, id, req)
	}
	return nil, errors.New("UpdateDoctorFunc not implemented in mock")
}

func (m *mockDoctorUsecase) DeleteDoctor(ctx context.Context, id uint) error {
	if m.DeleteDoctorFunc != nil {
		return m.DeleteDoctorFunc(ctx, id)
	}
	return errors.New("DeleteDoctorFunc not implemented in mock")
}

type mockMappingUsecase struct {
	ListMappingsFunc      func(ctx context.Context) (*dto.MappingListResponse, error)
	CreateMappingFunc     func(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error)
	GetPatientDoctorsFunc func(ctx context.Context, patientID uint) (*dto.PatientDoctorsResponse, error)
	DeleteMappingFunc     func(ctx context.Context, id uint) error
}

func (m *mockMappingUsecase) ListMappings(ctx context.Context) (*dto.MappingListResponse, error) {
	if m.ListMappingsFunc != nil {
		return m.ListMappingsFunc(ctx)
	}
	return &dto.MappingListResponse{}, nil
}

func (m *mockMappingUsecase) CreateMapping(ctx context.Context, req *dto.CreateMappingRequest) (*dto.MappingResponse, error) {
	if m.CreateMappingFunc != nil {
		return m.CreateMappingFunc(ctx, req)
	}
	return nil, errors.New("CreateMappingFunc not implemented in mock")
}

func (m *mockMappingUsecase) GetPatientDoctors(ctx context.Context, patientID uint) (*dto.PatientDoctorsResponse, error) {
	if m.GetPatientDoctorsFunc != nil {
		return m.GetPatientDoctorsFunc(ctx, patientID)
	}
	return nil, errors.New("GetPatientDoctorsFunc not implemented in mock")
}

func (m *mockMappingUsecase) DeleteMapping(ctx context.Context, id uint) error {
	if m.DeleteMappingFunc != nil {
		return m.DeleteMappingFunc(ctx, id)
	}
	return errors.New("DeleteMappingFunc not implemented in mock")
}

type mockAuditLogUsecase struct {
	GetAllAuditLogsFunc func(ctx context.Context) (*dto.AuditLogListResponse, error)
	GetAuditLogFunc     func(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

func (m *mockAuditLogUsecase) GetAllAuditLogs(ctx context.Context) (*dto.AuditLogListResponse, error) {
	if m.GetAllAuditLogsFunc != nil {
		return m.GetAllAuditLogsFunc(ctx)
	}
	return &dto.AuditLogListResponse{}, nil
}

func (m *mockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if m.GetAuditLogFunc != nil {
		return m.GetAuditLogFunc(ctx, id)
	}
	return nil, errors.New("GetAuditLogFunc not implemented in mock")
}

// mockTokenStore accepts every token by default; revoked simulates deletion
type mockTokenStore struct {
	ExistsFunc    func(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	RevokeAllFunc func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	return nil
}

func (m *mockTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID, tokenID, tokenType)
	}
	return true, nil
}

func (m *mockTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) error {
	return nil
}

func (m *mockTokenStore) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllFunc != nil {
		return m.RevokeAllFunc(ctx, userID)
	}
	return nil
}

// testEnv wires the real router, middleware and validator around mocked
// usecases so route behavior can be exercised end to end.
type testEnv struct {
	router     *mux.Router
	jwtService *jwt.JWTService
	authUC     *mockAuthUsecase
	patientUC  *mockPatientUsecase
	doctorUC   *mockDoctorUsecase
	mappingUC  *mockMappingUsecase
	auditUC    *mockAuditLogUsecase
	tokenStore *mockTokenStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		jwtService: jwt.NewJWTService(config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
		}),
		authUC:     &mockAuthUsecase{},
		patientUC:  &mockPatientUsecase{},
		doctorUC:   &mockDoctorUsecase{},
		mappingUC:  &mockMappingUsecase{},
		auditUC:    &mockAuditLogUsecase{},
		tokenStore: &mockTokenStore{},
	}

	customValidator := validator.NewValidator()

	authHandler := handler.NewAuthHandler(env.authUC, customValidator)
	patientHandler := handler.NewPatientHandler(env.patientUC, customValidator)
	doctorHandler := handler.NewDoctorHandler(env.doctorUC, customValidator)
	mappingHandler := handler.NewMappingHandler(env.mappingUC, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(env.auditUC)

	authMiddleware := middleware.NewAuthMiddleware(env.jwtService, env.tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	env.router = NewRouter(authHandler, patientHandler, doctorHandler, mappingHandler, auditLogHandler, authMiddleware, corsMiddleware).Setup()

	return env
}

// accessTokenFor issues a valid signed access token for the given user id
func (env *testEnv) accessTokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := env.jwtService.GenerateAccessToken(userID, "testuser")
	if err != nil {
		t.Fatalf("failed to generate access token: %v", err)
	}
	return token
}

// envelope mirrors the response wrapper for decoding in assertions
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// doRequest performs a request against the test router and decodes the
// response envelope when a body is present.
func (env *testEnv) doRequest(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&reqBody).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	// mux writes plain text for unmatched routes, everything else is JSON
	resp := &envelope{}
	if rec.Body.Len() > 0 && bytes.HasPrefix(bytes.TrimSpace(rec.Body.Bytes()), []byte("{")) {
		if err := json.Unmarshal(rec.Body.Bytes(), resp); err != nil {
			t.Fatalf("failed to decode response envelope: %v", err)
		}
	}

	return rec, resp
}
