package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
)

func TestRegister(t *testing.T) {
	h := newHarness(t)
	h.auth.register = func(in input.RegisterInput) (*entities.User, error) {
		assert.Equal(t, "amina@example.com", in.Email)
		assert.Equal(t, domain.RoleOrganizer, in.Role)
		return &entities.User{ID: "u-1", Email: in.Email, Role: in.Role}, nil
	}

	body := `{"first_name":"Amina","last_name":"El Fassi","email":"amina@example.com","password":"s3cret-pass","role":"ORGANIZER"}`
	resp, err := h.do(http.MethodPost, "/auth/register", "", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user userResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "u-1", user.ID)
	assert.False(t, user.IsApproved)
}

func TestRegisterEmailTaken(t *testing.T) {
	h := newHarness(t)
	h.auth.register = func(input.RegisterInput) (*entities.User, error) {
		return nil, domain.ErrEmailTaken
	}

	body := `{"first_name":"A","last_name":"B","email":"a@example.com","password":"s3cret-pass"}`
	resp, err := h.do(http.MethodPost, "/auth/register", "", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "email_taken", decodeError(t, resp).Code)
}

func TestRegisterValidationFields(t *testing.T) {
	h := newHarness(t)
	h.auth.register = func(input.RegisterInput) (*entities.User, error) {
		return nil, &domain.ValidationError{Fields: map[string]string{"Password": "min"}}
	}

	resp, err := h.do(http.MethodPost, "/auth/register", "", `{"email":"a@example.com","password":"x"}`)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "validation", body.Code)
	assert.Equal(t, "min", body.Fields["Password"])
}

func TestLoginSetsCookie(t *testing.T) {
	h := newHarness(t)
	expires := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	h.auth.login = func(in input.LoginInput) (*input.LoginResult, error) {
		assert.Equal(t, "amina@example.com", in.Email)
		return &input.LoginResult{
			Token:     "signed-token",
			ExpiresAt: expires,
			User:      &entities.User{ID: "u-1", Role: domain.RoleParticipant},
		}, nil
	}

	resp, err := h.do(http.MethodPost, "/auth/login", "", `{"email":"amina@example.com","password":"s3cret-pass"}`)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)

	var body loginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.AccessToken)
	assert.Equal(t, domain.RoleParticipant, body.Role)
	assert.True(t, body.ExpiresAt.Equal(expires))
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newHarness(t)
	h.auth.login = func(input.LoginInput) (*input.LoginResult, error) {
		return nil, domain.ErrInvalidCredentials
	}

	resp, err := h.do(http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"wrong"}`)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid_credentials", decodeError(t, resp).Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	h := newHarness(t)

	resp, err := h.do(http.MethodPost, "/auth/logout", "", "")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestApproveOrganizerRoute(t *testing.T) {
	h := newHarness(t)
	token := h.asPrincipal(domain.Principal{ID: "admin-1", Role: domain.RoleAdmin})
	h.auth.approveOrganizer = func(caller domain.Principal, userID string) (*entities.User, error) {
		assert.Equal(t, domain.RoleAdmin, caller.Role)
		assert.Equal(t, "u-9", userID)
		return &entities.User{ID: "u-9", Role: domain.RoleOrganizer, IsApproved: true}, nil
	}

	resp, err := h.do(http.MethodPatch, "/users/u-9/approve", token, "")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user userResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.True(t, user.IsApproved)
}

func TestApproveOrganizerRequiresAuth(t *testing.T) {
	h := newHarness(t)

	resp, err := h.do(http.MethodPatch, "/users/u-9/approve", "", "")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
