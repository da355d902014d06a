package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/resumecraft/resume-builder-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubVerifier struct {
	profiles map[string]*domain.Profile // credential → profile
	calls    int
}

func (v *stubVerifier) Verify(_ context.Context, credential string) (*domain.Profile, error) {
	v.calls++
	p, ok := v.profiles[credential]
	if !ok {
		return nil, domain.ErrInvalidCredential
	}
	clone := *p
	return &clone, nil
}

type stubUserRepo struct {
	byEmail     map[string]*domain.User
	nextID      int
	createCalls int
	findCalls   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.createCalls++
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = userID(r.nextID)
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.findCalls++
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func userID(n int) string {
	return string(rune('a'+n-1)) + "0000"
}

type stubResumeRepo struct {
	byOwner      map[string]domain.Document
	replaceErr   error
	replaceCalls int
}

func newStubResumeRepo() *stubResumeRepo {
	return &stubResumeRepo{byOwner: make(map[string]domain.Document)}
}

func (r *stubResumeRepo) FindByOwner(_ context.Context, ownerID string) (domain.Document, error) {
	doc, ok := r.byOwner[ownerID]
	if !ok {
		return nil, domain.ErrResumeNotFound
	}
	clone := make(domain.Document, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	return clone, nil
}

func (r *stubResumeRepo) Replace(_ context.Context, ownerID string, doc domain.Document) error {
	r.replaceCalls++
	if r.replaceErr != nil {
		return r.replaceErr
	}
	clone := make(domain.Document, len(doc))
	for k, v := range doc {
		clone[k] = v
	}
	r.byOwner[ownerID] = clone
	return nil
}

func newAuthServiceForTest(verifier *stubVerifier, users *stubUserRepo, resumes *stubResumeRepo) *AuthService {
	return NewAuthService(verifier, users, resumes, "secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{
		"cred-1": {Email: "a@x.com", GivenName: "Ada", FamilyName: "Lovelace", Picture: "http://img/a.png"},
	}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	user, err := svc.Signup(context.Background(), "cred-1")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected verified email, got %q", user.Email)
	}
	if user.FirstName != "Ada" || user.LastName != "Lovelace" {
		t.Fatalf("unexpected name: %s %s", user.FirstName, user.LastName)
	}
	if user.Token == "" {
		t.Fatalf("expected session token")
	}
	if _, ok := users.byEmail["a@x.com"]; !ok {
		t.Fatalf("user not persisted")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(user.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "a@x.com" {
		t.Fatalf("token subject mismatch: %v", claims["email"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("token has no expiry")
	}
}

func TestAuthService_Signup_MissingCredential(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	if _, err := svc.Signup(context.Background(), ""); !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	if verifier.calls != 0 {
		t.Fatalf("verifier should not be called")
	}
}

func TestAuthService_Signup_InvalidCredential(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	if _, err := svc.Signup(context.Background(), "forged"); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if users.createCalls != 0 {
		t.Fatalf("store must not be reached on invalid credential")
	}
}

func TestAuthService_Signup_Duplicate(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{
		"cred-1": {Email: "a@x.com", GivenName: "Ada"},
	}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	if _, err := svc.Signup(context.Background(), "cred-1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "cred-1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_NoResumeYet(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{
		"cred-1": {Email: "a@x.com", GivenName: "Ada"},
	}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	if _, err := svc.Signup(context.Background(), "cred-1"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	user, resume, err := svc.Login(context.Background(), "cred-1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected email: %q", user.Email)
	}
	if user.Token == "" {
		t.Fatalf("expected fresh session token")
	}
	if resume != nil {
		t.Fatalf("expected nil resume, got %v", resume)
	}
}

func TestAuthService_Login_ReturnsStoredResume(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{
		"cred-1": {Email: "a@x.com"},
	}}
	users := newStubUserRepo()
	resumes := newStubResumeRepo()
	svc := newAuthServiceForTest(verifier, users, resumes)

	created, err := svc.Signup(context.Background(), "cred-1")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	resumes.byOwner[created.ID] = domain.Document{"name": "A"}

	_, resume, err := svc.Login(context.Background(), "cred-1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resume == nil || resume["name"] != "A" {
		t.Fatalf("unexpected resume: %v", resume)
	}
}

func TestAuthService_Login_Unregistered(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{
		"cred-1": {Email: "ghost@x.com"},
	}}
	svc := newAuthServiceForTest(verifier, newStubUserRepo(), newStubResumeRepo())

	if _, _, err := svc.Login(context.Background(), "cred-1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_InvalidCredential(t *testing.T) {
	verifier := &stubVerifier{profiles: map[string]*domain.Profile{}}
	users := newStubUserRepo()
	svc := newAuthServiceForTest(verifier, users, newStubResumeRepo())

	if _, _, err := svc.Login(context.Background(), "forged"); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if users.findCalls != 0 {
		t.Fatalf("store must not be reached on invalid credential")
	}
}
