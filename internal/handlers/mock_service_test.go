package handlers

import (
	"context"
	"net/http"

	"mywallet/internal/models"
	"mywallet/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	authUser      *models.User
	authErr       error

	signUpCalls     int
	lastSignUpName  string
	lastSignUpEmail string
	lastSignUpPass  string
	lastGenEmail    string
	lastGenPassword string
	lastAuthToken   string
	authorizeCalls  int
}

func (m *mockAuth) SignUp(_ context.Context, name, email, password string) (int, error) {
	m.signUpCalls++
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	m.lastSignUpPass = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) Authorize(_ context.Context, token string) (*models.User, error) {
	m.authorizeCalls++
	m.lastAuthToken = token
	if m.authErr != nil {
		return nil, m.authErr
	}
	if m.authUser == nil || token == "" {
		return nil, service.ErrInvalidToken
	}
	return m.authUser, nil
}

type mockRecords struct {
	listResp   []models.Record
	listErr    error
	createResp []models.Record
	createErr  error

	lastListUser    int
	lastCreateOwner models.User
	lastCreate      service.RecordParams
	createCalls     int
}

func (m *mockRecords) List(_ context.Context, userID int) ([]models.Record, error) {
	m.lastListUser = userID
	return m.listResp, m.listErr
}

func (m *mockRecords) Create(_ context.Context, owner models.User, p service.RecordParams) ([]models.Record, error) {
	m.createCalls++
	m.lastCreateOwner = owner
	m.lastCreate = p
	return m.createResp, m.createErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
