package controllers

import (
	"conference-management-api/services"
	"conference-management-api/utils"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

var submitReviewFunc = services.SubmitReview

// GetSubmissions returns the role-scoped submission listing: admins see every
// submission with author, conference, and reviewer names; authors see only
// their own rows with the conference title.
func GetSubmissions(c *gin.Context) {
	caller := callerFromContext(c)

	if caller.IsAdmin() {
		rows, err := services.ListSubmissionsForAdmin()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"submissions": rows,
			"total":       len(rows),
		})
		return
	}

	rows, err := services.ListSubmissionsForOwner(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"submissions": rows,
		"total":       len(rows),
	})
}

// CreateSubmission accepts a multipart form with the paper metadata and file.
func CreateSubmission(c *gin.Context) {
	caller := callerFromContext(c)

	conferenceID, err := strconv.Atoi(c.PostForm("conference_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference id"})
		return
	}
	title := utils.SanitizeInput(c.PostForm("title"))
	abstract := utils.SanitizeInput(c.PostForm("abstract"))

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !utils.AllowedUploadExt(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}
	if file.Size > utils.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds 10MB limit"})
		return
	}

	userFolder, err := utils.CreateUserFolderIfNotExists(caller.UserID, utils.UploadBasePath())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user directory"})
		return
	}

	storedPath := filepath.Join(userFolder, utils.GenerateUniqueFilename(file.Filename))
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	submission, err := services.CreateSubmission(caller, conferenceID, title, abstract, storedPath)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission created successfully",
		"submission": submission,
	})
}

// UpdateSubmissionStatus writes the admin decision for a submission.
func UpdateSubmissionStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SetSubmissionStatus(callerFromContext(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission status updated"})
}

// AssignReviewer links a reviewer to a submission (admin only).
func AssignReviewer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	type AssignRequest struct {
		ReviewerID int `json:"reviewer_id" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := services.AssignReviewer(callerFromContext(c), id, req.ReviewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reviewer assigned successfully",
		"review":  review,
	})
}

// SubmitReview records the calling reviewer's comments and score on their
// assignment.
func SubmitReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission id"})
		return
	}

	// Score is a pointer so a legitimate 0 passes the required check.
	type ReviewRequest struct {
		Comments string `json:"comments" binding:"required"`
		Score    *int   `json:"score" binding:"required,gte=0,lte=10"`
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := submitReviewFunc(callerFromContext(c), id, req.Comments, *req.Score); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review submitted successfully"})
}
