package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"conference-management-api/models"
	"conference-management-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakeResetRepo struct {
	users     map[string]models.User
	tokens    []models.UserToken
	passwords map[int]string
	nextID    int
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{
		users:     make(map[string]models.User),
		passwords: make(map[int]string),
		nextID:    1,
	}
}

func (r *fakeResetRepo) FindUserByEmail(email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeResetRepo) RevokePasswordResetTokens(userID int, now time.Time) error {
	for i := range r.tokens {
		if r.tokens[i].UserID == userID && r.tokens[i].TokenType == "password_reset" {
			r.tokens[i].IsRevoked = true
		}
	}
	return nil
}

func (r *fakeResetRepo) CreateUserToken(token *models.UserToken) error {
	token.TokenID = r.nextID
	r.nextID++
	r.tokens = append(r.tokens, *token)
	return nil
}

func (r *fakeResetRepo) FindActivePasswordResetTokens(now time.Time) ([]models.UserToken, error) {
	active := make([]models.UserToken, 0)
	for _, token := range r.tokens {
		if token.TokenType == "password_reset" && !token.IsRevoked && token.ExpiresAt.After(now) {
			active = append(active, token)
		}
	}
	return active, nil
}

func (r *fakeResetRepo) UpdateUserPassword(userID int, hashedPassword string, now time.Time) error {
	r.passwords[userID] = hashedPassword
	return nil
}

func (r *fakeResetRepo) RevokeToken(tokenID int, now time.Time) error {
	for i := range r.tokens {
		if r.tokens[i].TokenID == tokenID {
			r.tokens[i].IsRevoked = true
		}
	}
	return nil
}

func setupResetTest(t *testing.T) (*fakeResetRepo, *[]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeResetRepo()
	oldRepo := passwordResetRepo
	passwordResetRepo = repo

	sent := &[]string{}
	oldSend := sendMailFunc
	sendMailFunc = func(to []string, subject, html string) error {
		*sent = append(*sent, html)
		return nil
	}

	oldGen := passwordResetTokenGenerator
	passwordResetTokenGenerator = func() (string, error) {
		return "fixed-raw-token", nil
	}

	t.Cleanup(func() {
		passwordResetRepo = oldRepo
		sendMailFunc = oldSend
		passwordResetTokenGenerator = oldGen
	})
	return repo, sent
}

func postJSON(handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return recorder
}

func TestForgotPasswordSendsToken(t *testing.T) {
	repo, sent := setupResetTest(t)
	repo.users["bob@conf.example"] = models.User{UserID: 2, Email: "bob@conf.example", Name: "Bob"}

	recorder := postJSON(ForgotPassword, map[string]string{"email": "bob@conf.example"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
	if len(repo.tokens) != 1 {
		t.Fatalf("tokens = %d, want 1", len(repo.tokens))
	}
	if repo.tokens[0].Token == "fixed-raw-token" {
		t.Error("stored token should be hashed, not the raw value")
	}
	if len(*sent) != 1 || !strings.Contains((*sent)[0], "fixed-raw-token") {
		t.Error("reset email should carry the raw token link")
	}
}

func TestForgotPasswordUnknownEmailStillSucceeds(t *testing.T) {
	repo, sent := setupResetTest(t)

	recorder := postJSON(ForgotPassword, map[string]string{"email": "ghost@conf.example"})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if len(repo.tokens) != 0 || len(*sent) != 0 {
		t.Error("unknown email should create no token and send no mail")
	}
}

func TestResetPasswordConsumesToken(t *testing.T) {
	repo, _ := setupResetTest(t)
	repo.users["bob@conf.example"] = models.User{UserID: 2, Email: "bob@conf.example", Name: "Bob"}

	if recorder := postJSON(ForgotPassword, map[string]string{"email": "bob@conf.example"}); recorder.Code != http.StatusOK {
		t.Fatalf("forgot status = %d", recorder.Code)
	}

	recorder := postJSON(ResetPassword, map[string]string{
		"token":            "fixed-raw-token",
		"new_password":     "brand-new-pass",
		"confirm_password": "brand-new-pass",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("reset status = %d: %s", recorder.Code, recorder.Body.String())
	}

	hashed, ok := repo.passwords[2]
	if !ok || !utils.CheckPasswordHash("brand-new-pass", hashed) {
		t.Error("new password should be stored bcrypt-hashed")
	}
	if !repo.tokens[0].IsRevoked {
		t.Error("used token should be revoked")
	}

	// A consumed token cannot be replayed.
	recorder = postJSON(ResetPassword, map[string]string{
		"token":            "fixed-raw-token",
		"new_password":     "another-pass-123",
		"confirm_password": "another-pass-123",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("replay status = %d, want 400", recorder.Code)
	}
}

func TestResetPasswordMismatch(t *testing.T) {
	setupResetTest(t)

	recorder := postJSON(ResetPassword, map[string]string{
		"token":            "whatever",
		"new_password":     "brand-new-pass",
		"confirm_password": "different-pass",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", recorder.Code)
	}
}
