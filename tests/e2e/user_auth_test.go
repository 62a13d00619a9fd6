package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	email := uniqueEmail("auth")
	reg := RegisterRequest{
		Email:    email,
		Password: "password123",
		Role:     "CUSTOMER",
		Name:     "Auth Tester",
	}

	regJSON, err := json.Marshal(reg)
	if err != nil {
		t.Fatalf("json.Marshal(RegisterRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", regJSON)
	requireStatus(t, resp, http.StatusCreated, body)

	var user UserDTO
	if err := json.Unmarshal(body, &user); err != nil {
		t.Fatalf("json.Unmarshal(UserDTO) failed: %v body=%s", err, string(body))
	}
	if user.Email != email {
		t.Fatalf("email=%q want %q", user.Email, email)
	}
	if user.Role != "CUSTOMER" {
		t.Fatalf("role=%q want CUSTOMER", user.Role)
	}

	//同じメールでは登録できない
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", regJSON)
	requireStatus(t, resp, http.StatusConflict, body)
	if e := mustDecodeError(t, body); e.Error != "email already used" {
		t.Fatalf("error=%q want email already used", e.Error)
	}

	//正しいパスワードでログイン
	loginJSON, err := json.Marshal(LoginRequest{Email: email, Password: "password123"})
	if err != nil {
		t.Fatalf("json.Marshal(LoginRequest) failed: %v", err)
	}
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", loginJSON)
	requireStatus(t, resp, http.StatusOK, body)

	login := mustDecodeLogin(t, body)
	if login.Token.AccessToken == "" {
		t.Fatalf("access token is empty: body=%s", string(body))
	}
	if login.Token.ExpiresIn <= 0 {
		t.Fatalf("expires_in=%d want > 0", login.Token.ExpiresIn)
	}

	//間違ったパスワード
	badJSON, err := json.Marshal(LoginRequest{Email: email, Password: "wrongpass1"})
	if err != nil {
		t.Fatalf("json.Marshal(LoginRequest) failed: %v", err)
	}
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", badJSON)
	requireStatus(t, resp, http.StatusUnauthorized, body)
}

func TestRegisterValidation(t *testing.T) {
	c := NewTestClient(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"short password", RegisterRequest{Email: uniqueEmail("v"), Password: "short", Role: "CUSTOMER", Name: "V"}},
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "password123", Role: "CUSTOMER", Name: "V"}},
		{"bad role", RegisterRequest{Email: uniqueEmail("v"), Password: "password123", Role: "ADMIN", Name: "V"}},
		{"farmer without location", RegisterRequest{Email: uniqueEmail("v"), Password: "password123", Role: "FARMER", Name: "V"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.req)
			if err != nil {
				t.Fatalf("json.Marshal failed: %v", err)
			}
			resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", b)
			requireStatus(t, resp, http.StatusBadRequest, body)
		})
	}
}
