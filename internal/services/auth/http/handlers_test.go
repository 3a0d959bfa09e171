package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "textmate/internal/platform/errors"
	pnet "textmate/internal/platform/net"
	phttp "textmate/internal/platform/net/http"
	"textmate/internal/services/auth/domain"
)

type fakeService struct {
	signupErr error
	loginTok  string
	loginErr  error
}

func (f *fakeService) Signup(_ context.Context, in domain.SignupInput) (domain.User, error) {
	if f.signupErr != nil {
		return domain.User{}, f.signupErr
	}
	return domain.User{ID: "u-1", Username: in.Username}, nil
}

func (f *fakeService) Login(_ context.Context, _ domain.LoginInput) (string, error) {
	return f.loginTok, f.loginErr
}

func (f *fakeService) Identify(context.Context, string) (string, error) { return "", nil }

func post(t *testing.T, srv *httptest.Server, path, body string) (int, pnet.Wire) {
	t.Helper()
	resp, err := srv.Client().Post(srv.URL+path, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	var env pnet.Wire
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, env
}

func newTestServer(f *fakeService) *httptest.Server {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, f)
	return httptest.NewServer(r.Mux())
}

func TestSignup_Created(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	status, env := post(t, srv, "/signup", `{"username":"alice","password":"hunter22"}`)
	if status != http.StatusCreated {
		t.Fatalf("status = %d, want 201", status)
	}
	if !env.Success || env.Message != "Signed up successfully! Please log in." {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	srv := newTestServer(&fakeService{signupErr: perr.DuplicateKeyf("Username already taken.")})
	defer srv.Close()

	status, env := post(t, srv, "/signup", `{"username":"alice","password":"hunter22"}`)
	if status != http.StatusConflict {
		t.Fatalf("status = %d, want 409", status)
	}
	if env.Success || env.Message != "Username already taken." {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	status, env := post(t, srv, "/signup", `{"username":"alice","password":"ab"}`)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Success {
		t.Fatalf("success = true on validation failure")
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	srv := newTestServer(&fakeService{loginTok: "jwt-abc"})
	defer srv.Close()

	status, env := post(t, srv, "/login", `{"username":"alice","password":"hunter22"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if env.Message != "Logged in successfully!" {
		t.Fatalf("message = %q", env.Message)
	}
	if env.Token != "jwt-abc" {
		t.Fatalf("token = %q", env.Token)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := newTestServer(&fakeService{loginErr: perr.Unauthorizedf("Invalid username or password.")})
	defer srv.Close()

	status, env := post(t, srv, "/login", `{"username":"alice","password":"wrong"}`)
	if status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if env.Success || env.Message != "Invalid username or password." {
		t.Fatalf("envelope = %+v", env)
	}
}
