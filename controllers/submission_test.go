package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"conference-management-api/models"
	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

type submittedReview struct {
	caller       services.Caller
	submissionID int
	comments     string
	score        int
}

func stubSubmitReview(t *testing.T) *[]submittedReview {
	t.Helper()
	gin.SetMode(gin.TestMode)

	calls := &[]submittedReview{}
	old := submitReviewFunc
	submitReviewFunc = func(caller services.Caller, submissionID int, comments string, score int) error {
		*calls = append(*calls, submittedReview{caller, submissionID, comments, score})
		return nil
	}
	t.Cleanup(func() { submitReviewFunc = old })
	return calls
}

func postReview(body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	payload, _ := json.Marshal(body)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	c.Set("userID", 3)
	c.Set("role", models.RoleUser)

	SubmitReview(c)
	return recorder
}

func TestSubmitReviewAcceptsZeroScore(t *testing.T) {
	calls := stubSubmitReview(t)

	recorder := postReview(map[string]interface{}{
		"comments": "Weak paper",
		"score":    0,
	})

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}
	if len(*calls) != 1 {
		t.Fatalf("service calls = %d, want 1", len(*calls))
	}
	got := (*calls)[0]
	if got.score != 0 || got.comments != "Weak paper" || got.submissionID != 5 {
		t.Errorf("service received %+v, want score 0 on submission 5", got)
	}
	if got.caller.UserID != 3 {
		t.Errorf("caller = %d, want 3", got.caller.UserID)
	}
}

func TestSubmitReviewRejectsOutOfRangeScore(t *testing.T) {
	calls := stubSubmitReview(t)

	recorder := postReview(map[string]interface{}{
		"comments": "Too generous",
		"score":    11,
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if len(*calls) != 0 {
		t.Error("service should not run on an out-of-range score")
	}
}

func TestSubmitReviewRequiresScore(t *testing.T) {
	calls := stubSubmitReview(t)

	recorder := postReview(map[string]interface{}{
		"comments": "No score given",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", recorder.Code)
	}
	if len(*calls) != 0 {
		t.Error("service should not run without a score")
	}
}
