package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
)

// Archiver queues a completed analysis for persistence. A nil Archiver
// disables archiving without affecting the response.
type Archiver interface {
	Enqueue(v model.Verification) error
}

type VerifyHandler struct {
	gateway llm.Gateway
	archive Archiver
}

func NewVerifyHandler(gateway llm.Gateway, archive Archiver) *VerifyHandler {
	return &VerifyHandler{gateway: gateway, archive: archive}
}

// VerifyNews handles POST /verify-news: a quick verdict on whether a
// headline is accurate.
func (h *VerifyHandler) VerifyNews(c *gin.Context) {
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidBody})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Título da notícia é obrigatório"})
		return
	}

	slog.Info("verifying news", "title", req.Title)

	content, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System: llm.PromptVerifyNews,
		Prompt: newsUserPrompt("Analise esta notícia:", "Verifique a veracidade e responda com o JSON.", req),
		Model:  llm.ModelNews,
	})
	if err != nil {
		respondGatewayError(c, err, true, msgRateLimited, "Créditos de IA esgotados.")
		return
	}

	var result VerifyResult
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(content)), &result); err != nil {
		slog.Error("failed to parse AI response", "content", content)
		result = VerifyResult{
			Verdict:     model.VerdictUnverifiable,
			Confidence:  50,
			Explanation: "Não foi possível analisar esta notícia automaticamente.",
			Sources:     []string{},
		}
	}
	if result.Sources == nil {
		result.Sources = []string{}
	}

	slog.Info("verification result", "verdict", result.Verdict)

	c.JSON(http.StatusOK, VerifyNewsResponse{Success: true, VerifyResult: result})
}

// AnalyzeNews handles POST /analyze-news: the full structured analysis. On
// success the result is queued for archiving; a queue failure never fails
// the request.
func (h *VerifyHandler) AnalyzeNews(c *gin.Context) {
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "API não configurada"})
		return
	}

	var req NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msgInvalidBody})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Título é obrigatório"})
		return
	}

	slog.Info("analyzing news", "title", req.Title)

	content, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System: llm.PromptAnalyzeNews,
		Prompt: newsUserPrompt("Analise esta notícia em detalhes:", "Forneça uma análise completa em JSON.", req),
		Model:  llm.ModelNews,
	})
	if err != nil {
		respondGatewayError(c, err, true, msgRateLimitedShort, "")
		return
	}

	var analysis NewsAnalysis
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(content)), &analysis); err != nil {
		slog.Error("failed to parse AI response", "content", content)
		analysis = NewsAnalysis{
			Resumo:           content,
			PontosPrincipais: []string{},
			Verificacao: VerificationStatus{
				Veredicto:  model.VerdictUnverifiable,
				Confianca:  50,
				Explicacao: "Não foi possível analisar",
			},
			FontesRecomendadas: []string{},
		}
	}
	if analysis.PontosPrincipais == nil {
		analysis.PontosPrincipais = []string{}
	}
	if analysis.FontesRecomendadas == nil {
		analysis.FontesRecomendadas = []string{}
	}

	h.archiveAnalysis(req, analysis)

	c.JSON(http.StatusOK, AnalyzeNewsResponse{
		Success:  true,
		Analysis: analysis,
		NewsData: NewsData{Title: req.Title, Description: req.Description, Source: req.Source, Link: req.Link},
	})
}

func (h *VerifyHandler) archiveAnalysis(req NewsRequest, analysis NewsAnalysis) {
	if h.archive == nil {
		return
	}

	verdict := analysis.Verificacao.Veredicto
	if verdict == "" {
		verdict = model.VerdictUnverifiable
	}
	confidence := analysis.Verificacao.Confianca
	if confidence == 0 {
		confidence = 50
	}

	v := model.Verification{
		NewsTitle:          req.Title,
		NewsDescription:    req.Description,
		NewsSource:         req.Source,
		NewsLink:           req.Link,
		NewsCategory:       req.Category,
		Verdict:            verdict,
		Confidence:         confidence,
		Explanation:        analysis.Verificacao.Explicacao,
		Resumo:             analysis.Resumo,
		Contexto:           analysis.Contexto,
		PontosPrincipais:   analysis.PontosPrincipais,
		AnaliseCritica:     analysis.AnaliseCritica,
		FontesRecomendadas: analysis.FontesRecomendadas,
	}
	if err := h.archive.Enqueue(v); err != nil {
		slog.Error("error queueing verification for archive", "error", err)
	}
}

func newsUserPrompt(lead, closing string, req NewsRequest) string {
	var sb strings.Builder
	sb.WriteString(lead)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "TÍTULO: %s\n", req.Title)
	if req.Description != "" {
		fmt.Fprintf(&sb, "DESCRIÇÃO: %s\n", req.Description)
	}
	fmt.Fprintf(&sb, "FONTE: %s\n", req.Source)
	if req.Link != "" {
		fmt.Fprintf(&sb, "LINK: %s\n", req.Link)
	}
	sb.WriteString("\n")
	sb.WriteString(closing)
	return sb.String()
}
