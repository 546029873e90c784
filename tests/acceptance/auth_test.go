package acceptance

import (
	"encoding/json"
	"net/http"

	"github.com/avelichko/videotube-api/internal/dto"
)

func (s *Suite) TestRegister_Success() {
	user := s.registerUser("alice", "alice@example.com")

	s.NotEmpty(user.ID)
	s.Equal("alice", user.Username)
	s.Equal("alice@example.com", user.Email)
	s.NotZero(user.CreatedAt)
}

func (s *Suite) TestRegister_NormalizesUsername() {
	resp := s.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		FullName:  "Ada Lovelace",
		Username:  "  AdaL  ",
		Email:     "ADA@Example.COM",
		Password:  "Password123",
		AvatarURL: "https://cdn.example.com/avatar.png",
	})
	defer resp.Body.Close()

	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	var envelope userEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	s.Equal("adal", envelope.Data.Username)
	s.Equal("ada@example.com", envelope.Data.Email)
}

func (s *Suite) TestRegister_DuplicateUsername() {
	s.registerUser("bob", "bob@example.com")

	resp := s.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		FullName:  "Other Bob",
		Username:  "bob",
		Email:     "other-bob@example.com",
		Password:  "Password123",
		AvatarURL: "https://cdn.example.com/avatar.png",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusConflict, resp.StatusCode)

	var errResp dto.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&errResp))
	s.False(errResp.Success)
}

func (s *Suite) TestRegister_InvalidEmail() {
	resp := s.postJSON("/api/v1/auth/register", dto.RegisterRequest{
		FullName:  "Bad Email",
		Username:  "bademail",
		Email:     "not-an-email",
		Password:  "Password123",
		AvatarURL: "https://cdn.example.com/avatar.png",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestLogin_SetsDistinctCookies() {
	s.registerUser("carol", "carol@example.com")

	envelope, cookies := s.loginUser("carol")

	s.NotEmpty(envelope.Data.AccessToken)
	s.NotEmpty(envelope.Data.RefreshToken)
	s.NotEqual(envelope.Data.AccessToken, envelope.Data.RefreshToken)

	access := cookieValue(cookies, "accessToken")
	refresh := cookieValue(cookies, "refreshToken")
	s.Equal(envelope.Data.AccessToken, access, "accessToken cookie should carry the access token")
	s.Equal(envelope.Data.RefreshToken, refresh, "refreshToken cookie should carry the refresh token")
}

func (s *Suite) TestLogin_ByEmail() {
	s.registerUser("dave", "dave@example.com")

	resp := s.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Email:    "dave@example.com",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestLogin_UnknownUser() {
	resp := s.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Username: "nobody",
		Password: "Password123",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *Suite) TestLogin_WrongPassword() {
	s.registerUser("eve", "eve@example.com")

	resp := s.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Username: "eve",
		Password: "WrongPassword1",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestGetMe_WithBearerToken() {
	s.registerUser("frank", "frank@example.com")
	envelope, _ := s.loginUser("frank")

	resp := s.authorizedRequest("GET", "/api/v1/auth/me", envelope.Data.AccessToken, nil)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var me userEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&me))
	s.Equal("frank", me.Data.Username)
}

func (s *Suite) TestGetMe_WithCookie() {
	s.registerUser("grace", "grace@example.com")
	_, cookies := s.loginUser("grace")

	req, _ := http.NewRequest("GET", s.BaseURL+"/api/v1/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestGetMe_NoToken() {
	req, _ := http.NewRequest("GET", s.BaseURL+"/api/v1/auth/me", nil)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestRefresh_RotatesToken() {
	s.registerUser("heidi", "heidi@example.com")
	envelope, _ := s.loginUser("heidi")
	oldRefresh := envelope.Data.RefreshToken

	resp := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: oldRefresh})
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var rotated authEnvelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&rotated))
	s.NotEmpty(rotated.Data.RefreshToken)
	s.NotEqual(oldRefresh, rotated.Data.RefreshToken, "rotation should issue a new refresh token")

	// The superseded token is rejected.
	replay := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: oldRefresh})
	defer replay.Body.Close()
	s.Equal(http.StatusUnauthorized, replay.StatusCode)

	// The freshly issued token still works.
	again := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: rotated.Data.RefreshToken})
	defer again.Body.Close()
	s.Equal(http.StatusOK, again.StatusCode)
}

func (s *Suite) TestRefresh_ViaCookie() {
	s.registerUser("ivan", "ivan@example.com")
	_, cookies := s.loginUser("ivan")

	req, _ := http.NewRequest("POST", s.BaseURL+"/api/v1/auth/refresh", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *Suite) TestRefresh_NoToken() {
	req, _ := http.NewRequest("POST", s.BaseURL+"/api/v1/auth/refresh", nil)

	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *Suite) TestSecondLogin_InvalidatesFirstSession() {
	s.registerUser("judy", "judy@example.com")
	first, _ := s.loginUser("judy")
	_, _ = s.loginUser("judy")

	resp := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: first.Data.RefreshToken})
	defer resp.Body.Close()

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestLogout_InvalidatesRefreshToken() {
	s.registerUser("mallory", "mallory@example.com")
	envelope, _ := s.loginUser("mallory")

	logout := s.authorizedRequest("POST", "/api/v1/auth/logout", envelope.Data.AccessToken, nil)
	defer logout.Body.Close()
	s.Equal(http.StatusOK, logout.StatusCode)

	// Logout is idempotent.
	logoutAgain := s.authorizedRequest("POST", "/api/v1/auth/logout", envelope.Data.AccessToken, nil)
	defer logoutAgain.Body.Close()
	s.Equal(http.StatusOK, logoutAgain.StatusCode)

	resp := s.postJSON("/api/v1/auth/refresh", dto.RefreshRequest{RefreshToken: envelope.Data.RefreshToken})
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *Suite) TestChangePassword_Flow() {
	s.registerUser("oscar", "oscar@example.com")
	envelope, _ := s.loginUser("oscar")

	resp := s.authorizedRequest("POST", "/api/v1/auth/change-password", envelope.Data.AccessToken, dto.ChangePasswordRequest{
		OldPassword: "Password123",
		NewPassword: "NewPassword456",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	oldLogin := s.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Username: "oscar",
		Password: "Password123",
	})
	defer oldLogin.Body.Close()
	s.Equal(http.StatusUnauthorized, oldLogin.StatusCode)

	newLogin := s.postJSON("/api/v1/auth/login", dto.LoginRequest{
		Username: "oscar",
		Password: "NewPassword456",
	})
	defer newLogin.Body.Close()
	s.Equal(http.StatusOK, newLogin.StatusCode)
}
