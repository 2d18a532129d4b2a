package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	userDomain "loanflow-backend/internal/domain/user"
	"loanflow-backend/internal/testutil/usermock"
	authUC "loanflow-backend/internal/usecase/auth"
	"loanflow-backend/pkg/id"
	"loanflow-backend/pkg/token"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

func newAuthHandlerWith(users *usermock.Repo) *AuthHandler {
	return NewAuthHandler(authUC.NewUsecase(users, testSecret, time.Hour))
}

func TestRegister_Success(t *testing.T) {
	e := newEchoWithValidator()

	var created *userDomain.User
	users := &usermock.Repo{
		// default GetByEmail reports the address as free
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			u.ID = 1
			created = u
			return nil
		},
	}
	h := newAuthHandlerWith(users)

	reqBody := map[string]any{
		"name":     "Jane Borrower",
		"email":    "jane@example.com",
		"password": "s3cret-enough",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/register", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got authUC.AuthDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Token == "" || got.Role != string(userDomain.RoleCustomer) || got.Email != "jane@example.com" {
		t.Fatalf("unexpected dto: %+v", got)
	}

	// token is verifiable and carries the public user id as subject
	claims, err := token.Parse(testSecret, got.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if created == nil || claims.Subject != created.UserID || !id.Valid(created.UserID) {
		t.Fatalf("subject = %q, created = %+v", claims.Subject, created)
	}
	// password never stored in the clear
	if created.PasswordHash == "s3cret-enough" || created.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", created.PasswordHash)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	e := newEchoWithValidator()

	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return &userDomain.User{UserID: strings.Repeat("b", 32), Email: email}, nil
		},
	}
	h := newAuthHandlerWith(users)

	reqBody := map[string]any{
		"name":     "Jane",
		"email":    "jane@example.com",
		"password": "s3cret-enough",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/register", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409; body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegister_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newAuthHandlerWith(&usermock.Repo{})

	reqBody := map[string]any{
		"name":     "Jane",
		"email":    "not-an-email",
		"password": "short",
	}
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/register", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body=%s", rec.Code, rec.Body.String())
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(body.Details) < 2 {
		t.Fatalf("expected email and password details, got %+v", body.Details)
	}
}

func TestLogin_SuccessAndWrongPassword(t *testing.T) {
	e := newEchoWithValidator()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			if email != "jane@example.com" {
				return nil, userDomain.ErrNotFound
			}
			return &userDomain.User{
				UserID:       strings.Repeat("b", 32),
				Name:         "Jane Borrower",
				Email:        email,
				PasswordHash: string(hash),
				Role:         userDomain.RoleCustomer,
			}, nil
		},
	}
	h := newAuthHandlerWith(users)

	login := func(email, password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/login", mustJSON(map[string]any{
			"email": email, "password": password,
		}))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if err := h.Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec
	}

	rec := login("jane@example.com", "correct-horse")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var got authUC.AuthDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Token == "" || got.Name != "Jane Borrower" {
		t.Fatalf("unexpected dto: %+v", got)
	}

	// wrong password and unknown account both map to 401
	if rec := login("jane@example.com", "wrong"); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", rec.Code)
	}
	if rec := login("nobody@example.com", "whatever"); rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("unknown account status = %d, want 401", rec.Code)
	}
}
