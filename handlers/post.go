package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"postboard/db"
	"postboard/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Pointer fields so a missing key and an empty value can be told apart
type PostPatchRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

const blankFieldError = "This field may not be blank."

func PostList(c *gin.Context, user *models.User) {
	posts := []models.Post{}
	// id breaks ties between posts created within the same second
	err := db.Instance.Order("created_at DESC, id DESC").Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 1"})
		return
	}
	result := []PostInfo{}
	for i := range posts {
		result = append(result, postInfo(&posts[i]))
	}
	c.JSON(http.StatusOK, result)
}

func PostCreate(c *gin.Context, user *models.User) {
	r := PostCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fieldErrors := gin.H{}
	if strings.TrimSpace(r.Title) == "" {
		fieldErrors["title"] = []string{blankFieldError}
	}
	if strings.TrimSpace(r.Content) == "" {
		fieldErrors["content"] = []string{blankFieldError}
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}
	// Username always comes from the authenticated caller
	post := models.Post{
		UserID:   user.ID,
		Username: user.Username,
		Title:    r.Title,
		Content:  r.Content,
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 2"})
		return
	}
	c.JSON(http.StatusCreated, postInfo(&post))
}

func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return post, false
	}
	result := db.Instance.First(&post, id)
	if result.Error == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return post, false
	}
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 3"})
		return post, false
	}
	return post, true
}

func PostPatch(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if !post.OwnedBy(user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to edit this post"})
		return
	}
	r := PostPatchRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only title and content are patchable; anything else in the body is ignored
	fieldErrors := gin.H{}
	updates := map[string]interface{}{}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			fieldErrors["title"] = []string{blankFieldError}
		} else {
			updates["title"] = *r.Title
		}
	}
	if r.Content != nil {
		if strings.TrimSpace(*r.Content) == "" {
			fieldErrors["content"] = []string{blankFieldError}
		} else {
			updates["content"] = *r.Content
		}
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}
	if len(updates) > 0 {
		if err := db.Instance.Model(&post).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 4"})
			return
		}
	}
	c.JSON(http.StatusOK, postInfo(&post))
}

func PostDelete(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if !post.OwnedBy(user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have permission to delete this post"})
		return
	}
	if err := db.Instance.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error 5"})
		return
	}
	c.Status(http.StatusNoContent)
}
