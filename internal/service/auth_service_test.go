package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mywallet/internal/models"
	"mywallet/internal/repository"
)

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn     func(name, email, hash string) (int, error)
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id int) (*models.User, error)

	createCalls []struct {
		name, email, hash string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(_ context.Context, name, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		name, email, hash string
	}{name: name, email: email, hash: hash})
	return m.CreateFn(name, email, hash)
}

func (m *mockAuthRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockAuthRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

// memSessions is an in-memory repository.SessionRepo.
type memSessions struct {
	byToken   map[string]int
	createErr error
	getErr    error
}

func newMemSessions() *memSessions { return &memSessions{byToken: map[string]int{}} }

func (m *memSessions) Create(_ context.Context, userID int, token string) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byToken[token] = userID
	return nil
}

func (m *memSessions) GetByToken(_ context.Context, token string) (*models.Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	uid, ok := m.byToken[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Session{UserID: uid, Token: token}, nil
}

func noUser(string) (*models.User, error) { return nil, nil }

// --- SignUp tests ---

func TestAuthService_SignUp_SuccessHashesPasswordAndCallsRepo(t *testing.T) {
	mock := &mockAuthRepo{
		GetByEmailFn: noUser,
		CreateFn: func(name, email, hash string) (int, error) {
			return 42, nil
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	id, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	call := mock.createCalls[0]
	if call.name != "Alice" || call.email != "alice@example.com" {
		t.Errorf("unexpected create args: %+v", call)
	}
	if call.hash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(call.hash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmailPreCheck(t *testing.T) {
	mock := &mockAuthRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email}, nil
		},
		CreateFn: func(name, email, hash string) (int, error) {
			t.Fatal("Create should not be called for a taken email")
			return 0, nil
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	_, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "pw")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_SignUp_DuplicateEmailRace(t *testing.T) {
	mock := &mockAuthRepo{
		GetByEmailFn: noUser,
		CreateFn: func(name, email, hash string) (int, error) {
			return 0, repository.ErrDuplicateEmail
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	_, err := svc.SignUp(context.Background(), "Alice", "alice@example.com", "pw")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_SignUpThenLogin_AnyPassword(t *testing.T) {
	cases := map[string]string{
		"whitespace only":  "   ",
		"exactly 72 bytes": strings.Repeat("a", 72),
		"over 72 bytes":    strings.Repeat("b", 73),
		"multibyte long":   strings.Repeat("ç", 50),
	}
	for name, password := range cases {
		t.Run(name, func(t *testing.T) {
			var stored *models.User
			mock := &mockAuthRepo{
				GetByEmailFn: func(string) (*models.User, error) { return stored, nil },
				CreateFn: func(name, email, hash string) (int, error) {
					stored = &models.User{ID: 1, Name: name, Email: email, PasswordHash: hash}
					return 1, nil
				},
			}
			svc := NewAuthService(mock, newMemSessions())

			if _, err := svc.SignUp(context.Background(), "Bob", "bob@example.com", password); err != nil {
				t.Fatalf("SignUp: %v", err)
			}
			if _, err := svc.GenerateToken(context.Background(), "bob@example.com", password); err != nil {
				t.Fatalf("GenerateToken with same password: %v", err)
			}
		})
	}
}

func TestPasswordBytes_TruncatesAt72(t *testing.T) {
	if got := len(passwordBytes(strings.Repeat("x", 100))); got != maxPasswordBytes {
		t.Fatalf("len = %d, want %d", got, maxPasswordBytes)
	}
	if got := string(passwordBytes("short")); got != "short" {
		t.Fatalf("short password changed: %q", got)
	}
}

func TestAuthService_SignUp_RepoError(t *testing.T) {
	mock := &mockAuthRepo{
		GetByEmailFn: func(string) (*models.User, error) { return nil, errors.New("db down") },
	}
	svc := NewAuthService(mock, newMemSessions())

	if _, err := svc.SignUp(context.Background(), "Carl", "carl@example.com", "pass123"); err == nil {
		t.Fatalf("expected repo error, got nil")
	}
}

// --- GenerateToken / Authorize tests ---

func TestAuthService_GenerateToken_ResolvesToSameUser(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: 7, Name: "Diana", Email: "diana@example.com", PasswordHash: hash}

	mock := &mockAuthRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email != "diana@example.com" {
				t.Fatalf("unexpected email %q", email)
			}
			return user, nil
		},
		GetByIDFn: func(id int) (*models.User, error) {
			if id != 7 {
				return nil, nil
			}
			return user, nil
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	token, err := svc.GenerateToken(context.Background(), "diana@example.com", "letmein")
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := svc.Authorize(context.Background(), token)
	if err != nil {
		t.Fatalf("Authorize failed: %v", err)
	}
	if got.ID != 7 {
		t.Fatalf("expected user 7 from token, got %d", got.ID)
	}
}

func TestAuthService_GenerateToken_EachLoginOpensNewSession(t *testing.T) {
	hash, _ := hashPassword("pw")
	mock := &mockAuthRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: 3, PasswordHash: hash}, nil
		},
	}
	sessions := newMemSessions()
	svc := NewAuthService(mock, sessions)

	a, err := svc.GenerateToken(context.Background(), "x@example.com", "pw")
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	b, err := svc.GenerateToken(context.Background(), "x@example.com", "pw")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct tokens, got %q twice", a)
	}
	if len(sessions.byToken) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions.byToken))
	}
}

func TestAuthService_GenerateToken_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	correctHash, err := hashPassword("correct")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	mock := &mockAuthRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email == "eve@example.com" {
				return &models.User{ID: 1, Email: email, PasswordHash: correctHash}, nil
			}
			return nil, nil
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	_, errWrongPw := svc.GenerateToken(context.Background(), "eve@example.com", "wrong")
	_, errNoUser := svc.GenerateToken(context.Background(), "ghost@example.com", "correct")

	if !errors.Is(errWrongPw, ErrInvalidCredentials) || !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errWrongPw, errNoUser)
	}
	if errWrongPw.Error() != errNoUser.Error() {
		t.Fatalf("messages differ: %q vs %q", errWrongPw, errNoUser)
	}
}

func TestAuthService_GenerateToken_MutatedPasswordFails(t *testing.T) {
	const password = "Tr0ub4dor&3"
	hash, _ := hashPassword(password)
	mock := &mockAuthRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: 1, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(mock, newMemSessions())

	if _, err := svc.GenerateToken(context.Background(), "a@example.com", password); err != nil {
		t.Fatalf("exact password should succeed: %v", err)
	}
	for i := range password {
		mutated := []byte(password)
		mutated[i] ^= 0x01
		if _, err := svc.GenerateToken(context.Background(), "a@example.com", string(mutated)); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("mutation at %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
}

func TestAuthService_GenerateToken_SessionStoreError(t *testing.T) {
	hash, _ := hashPassword("pw")
	mock := &mockAuthRepo{
		GetByEmailFn: func(string) (*models.User, error) {
			return &models.User{ID: 1, PasswordHash: hash}, nil
		},
	}
	sessions := newMemSessions()
	sessions.createErr = errors.New("insert failed")
	svc := NewAuthService(mock, sessions)

	if _, err := svc.GenerateToken(context.Background(), "a@example.com", "pw"); !errors.Is(err, sessions.createErr) {
		t.Fatalf("expected session error to propagate, got %v", err)
	}
}

func TestAuthService_Authorize_Errors(t *testing.T) {
	sessions := newMemSessions()
	sessions.byToken["orphan"] = 404
	mock := &mockAuthRepo{
		GetByIDFn: func(int) (*models.User, error) { return nil, nil },
	}
	svc := NewAuthService(mock, sessions)

	if _, err := svc.Authorize(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty token: expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "unknown"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unknown token: expected ErrInvalidToken, got %v", err)
	}
	if _, err := svc.Authorize(context.Background(), "orphan"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("orphan session: expected ErrUserNotFound, got %v", err)
	}

	sessions.getErr = errors.New("db down")
	_, err := svc.Authorize(context.Background(), "orphan")
	if err == nil || errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected raw store error, got %v", err)
	}
}
