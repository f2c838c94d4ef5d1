package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/sentencebank/internal/database"
	"github.com/example/sentencebank/internal/importer"
	"github.com/example/sentencebank/internal/practice"
	"github.com/example/sentencebank/pkg/models"
	"github.com/gin-gonic/gin"
)

// Handler exposes the practice service over HTTP
type Handler struct {
	svc *practice.Service
}

// NewHandler creates a new handler backed by the practice service
func NewHandler() *Handler {
	return &Handler{svc: practice.NewService()}
}

// RegisterRoutes mounts all API routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sentence/random", h.randomSentence)
	rg.GET("/sentence/:id", h.getSentence)
	rg.GET("/sentences/list", h.listSentences)
	rg.POST("/upload-excel", h.uploadExcel)
	rg.POST("/check", h.checkAnswer)
}

// sentenceResponse is the wire shape external callers depend on; created_at
// is never exposed.
type sentenceResponse struct {
	ID         int    `json:"id"`
	Chinese    string `json:"chinese"`
	English    string `json:"english"`
	Difficulty string `json:"difficulty"`
}

func toResponse(s *models.Sentence) sentenceResponse {
	return sentenceResponse{ID: s.ID, Chinese: s.Chinese, English: s.English, Difficulty: s.Difficulty}
}

// difficultiesFromQuery parses ?difficulties=a,b,c into a filter set.
// Blank entries are dropped; unknown tags pass through and match nothing.
func difficultiesFromQuery(c *gin.Context) []string {
	var difficulties []string
	for _, d := range strings.Split(c.Query("difficulties"), ",") {
		if d = strings.TrimSpace(d); d != "" {
			difficulties = append(difficulties, d)
		}
	}
	return difficulties
}

// GET /api/sentence/random?difficulties=a,b,c
func (h *Handler) randomSentence(c *gin.Context) {
	sentence, err := h.svc.RandomSentence(difficultiesFromQuery(c))
	if errors.Is(err, practice.ErrNoSentences) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(sentence))
}

// GET /api/sentences/list?difficulties=a,b,c
func (h *Handler) listSentences(c *gin.Context) {
	sentences, total, err := h.svc.ListSentences(difficultiesFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]sentenceResponse, len(sentences))
	for i := range sentences {
		out[i] = toResponse(&sentences[i])
	}
	c.JSON(http.StatusOK, gin.H{"sentences": out, "total": total})
}

// GET /api/sentence/:id — detail shape carries no difficulty field
func (h *Handler) getSentence(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "sentence not found"})
		return
	}

	sentence, err := h.svc.GetByID(id)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "sentence not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":      sentence.ID,
		"chinese": sentence.Chinese,
		"english": sentence.English,
	})
}

// POST /api/upload-excel — multipart upload, parsed and previewed without
// persisting anything
func (h *Handler) uploadExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty filename"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only Excel files (.xlsx, .xls) are supported"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	sentences, err := importer.Preview(src)
	if err != nil {
		var vErr *importer.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]sentenceResponse, len(sentences))
	for i := range sentences {
		out[i] = toResponse(&sentences[i])
	}
	c.JSON(http.StatusOK, gin.H{"sentences": out, "total": len(out)})
}

type checkRequest struct {
	SentenceID int    `json:"sentence_id"`
	Answer     string `json:"answer"`
}

// POST /api/check
func (h *Handler) checkAnswer(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Check(req.SentenceID, req.Answer)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "sentence not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
