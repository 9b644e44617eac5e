package controllers

import (
	"conference-management-api/services"
	"conference-management-api/utils"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetDocuments returns the role-scoped document listing: admins see every
// document with the owner's name; users see only their own.
func GetDocuments(c *gin.Context) {
	caller := callerFromContext(c)

	if caller.IsAdmin() {
		rows, err := services.ListDocumentsForAdmin()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"documents": rows,
			"total":     len(rows),
		})
		return
	}

	documents, err := services.ListDocumentsForOwner(caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"total":     len(documents),
	})
}

// UploadDocument accepts a multipart form with the document title and file.
// Admins may set target_user_id to issue a document to another user.
func UploadDocument(c *gin.Context) {
	caller := callerFromContext(c)

	title := utils.SanitizeInput(c.PostForm("title"))

	targetUserID := 0
	if raw := c.PostForm("target_user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user id"})
			return
		}
		targetUserID = id
	}

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

	// Files land in the uploading caller's folder even for admin-issued
	// documents; ownership of the record is decided by the service.
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

	document, err := services.UploadDocument(caller, title, storedPath, targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document uploaded successfully",
		"document": document,
	})
}

// VerifyDocument writes the admin verification decision for a document.
func VerifyDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	type VerifyRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.VerifyDocument(callerFromContext(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document verification updated"})
}

// AcceptDocument marks an admin-issued document as accepted by its owner.
func AcceptDocument(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document id"})
		return
	}

	if err := services.AcceptDocument(callerFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document accepted"})
}
