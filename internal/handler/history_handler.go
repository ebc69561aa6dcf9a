package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// VerificationStore reads archived analyses. A nil store means the database
// was not configured at startup.
type VerificationStore interface {
	List(limit, offset int) ([]model.Verification, error)
	Count() (int, error)
}

type HistoryHandler struct {
	store VerificationStore
}

func NewHistoryHandler(store VerificationStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// GetVerifications handles GET /verifications with limit/offset paging.
func (h *HistoryHandler) GetVerifications(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Banco de dados não configurado"})
		return
	}

	limit := getQueryInt(c, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := getQueryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	verifications, err := h.store.List(limit, offset)
	if err != nil {
		slog.Error("error listing verifications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao buscar verificações"})
		return
	}

	total, err := h.store.Count()
	if err != nil {
		slog.Error("error counting verifications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erro ao buscar verificações"})
		return
	}

	out := make([]VerificationResponse, 0, len(verifications))
	for _, v := range verifications {
		out = append(out, toVerificationResponse(v))
	}

	c.JSON(http.StatusOK, VerificationsResponse{
		Success:       true,
		Verifications: out,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

// GetHealth handles GET /health.
func (h *HistoryHandler) GetHealth(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "not_configured"})
		return
	}
	if _, err := h.store.Count(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "connected"})
}

func toVerificationResponse(v model.Verification) VerificationResponse {
	if v.PontosPrincipais == nil {
		v.PontosPrincipais = []string{}
	}
	if v.FontesRecomendadas == nil {
		v.FontesRecomendadas = []string{}
	}
	return VerificationResponse{
		ID:                 v.ID,
		NewsTitle:          v.NewsTitle,
		NewsDescription:    v.NewsDescription,
		NewsSource:         v.NewsSource,
		NewsLink:           v.NewsLink,
		NewsCategory:       v.NewsCategory,
		Verdict:            v.Verdict,
		Confidence:         v.Confidence,
		Explanation:        v.Explanation,
		Resumo:             v.Resumo,
		Contexto:           v.Contexto,
		PontosPrincipais:   v.PontosPrincipais,
		AnaliseCritica:     v.AnaliseCritica,
		FontesRecomendadas: v.FontesRecomendadas,
		CreatedAt:          v.CreatedAt.Format(time.RFC3339),
	}
}

func getQueryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
