package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
)

// PageFetcher resolves a URL into the readable text of the page, used when
// a fact-check submission is a link instead of a claim.
type PageFetcher func(ctx context.Context, url string) (string, error)

type CheckHandler struct {
	gateway   llm.Gateway
	fetchPage PageFetcher
}

func NewCheckHandler(gateway llm.Gateway, fetchPage PageFetcher) *CheckHandler {
	return &CheckHandler{gateway: gateway, fetchPage: fetchPage}
}

// FactCheck handles POST /fact-check: a standalone claim or a social media
// link checked against Brazilian legislation.
func (h *CheckHandler) FactCheck(c *gin.Context) {
	var req FactCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.Claim) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhuma afirmação fornecida"})
		return
	}
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
		return
	}

	content := req.Claim
	if req.InputType == "link" {
		slog.Info("fetching page for fact check", "url", req.Claim)
		text, err := h.fetchPage(c.Request.Context(), req.Claim)
		if err != nil {
			slog.Error("failed to fetch linked page", "url", req.Claim, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Não foi possível acessar o link fornecido"})
			return
		}
		content = text
	}

	today := time.Now().Format("2006-01-02")
	raw, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System:      llm.FactCheckPrompt(today),
		Prompt:      "Verifique esta afirmação/publicação:\n\n" + content,
		Model:       llm.ModelDefault,
		Temperature: 0.3,
	})
	if err != nil {
		respondGatewayError(c, err, false, msgRateLimited, "Créditos de IA insuficientes. Adicione créditos ao workspace.")
		return
	}

	var result FactCheckResult
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &result); err != nil {
		slog.Error("failed to parse AI response", "content", raw)
		result = FactCheckResult{
			PostResumo:     "Não foi possível analisar a afirmação",
			Veredito:       "nao_verificavel",
			VereditoTitulo: "Análise inconclusiva",
			Explicacao:     raw,
			PontosChave:    []string{},
			Fontes:         []Fonte{},
			Confianca:      0.3,
		}
	}
	if result.PontosChave == nil {
		result.PontosChave = []string{}
	}
	if result.Fontes == nil {
		result.Fontes = []Fonte{}
	}
	if result.DataVerificacao == "" {
		result.DataVerificacao = today
	}

	c.JSON(http.StatusOK, FactCheckResponse{Success: true, FactCheckResult: result})
}

// AnalyzeDocument handles POST /analyze-document: free text, an image, or a
// TV news screenshot analysed against the law.
func (h *CheckHandler) AnalyzeDocument(c *gin.Context) {
	var req AnalyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	if req.Text == "" && req.ImageURL == "" && req.ImageBase64 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text or image provided for analysis"})
		return
	}
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
		return
	}

	system := llm.PromptDocument
	if req.Mode == "news_tv" {
		system = llm.PromptNewsTV
	}

	var prompt string
	if req.ImageURL != "" || req.ImageBase64 != "" {
		body := req.Text
		if body == "" {
			body = "Extraia e analise o texto desta imagem."
		}
		prompt = "Analise o seguinte conteúdo (extraia o texto da imagem se necessário e verifique as informações):\n\n" + body
	} else {
		prompt = "Analise o seguinte texto:\n\n" + req.Text
	}

	raw, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System:      system,
		Prompt:      prompt,
		ImageURL:    req.ImageURL,
		ImageBase64: req.ImageBase64,
		Model:       llm.ModelDefault,
	})
	if err != nil {
		respondGatewayError(c, err, false, msgRateLimited, "Créditos insuficientes. Adicione créditos na sua conta.")
		return
	}

	cleaned := llm.CleanJSONResponse(raw)
	if req.Mode == "news_tv" {
		var analysis NewsTVAnalysis
		if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
			slog.Error("failed to parse AI response", "content", raw)
			analysis = NewsTVAnalysis{
				OverallVerdict: "unverifiable",
				Summary:        raw,
				Claims:         []ClaimAnalysis{},
			}
		}
		if analysis.Claims == nil {
			analysis.Claims = []ClaimAnalysis{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
		return
	}

	var analysis DocumentAnalysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		slog.Error("failed to parse AI response", "content", raw)
		analysis = DocumentAnalysis{
			Summary:     raw,
			KeyInfo:     []KeyInfo{},
			LegalPoints: []string{},
			RelatedLaws: []RelatedLaw{},
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "analysis": analysis})
}

// AnalyzeQuestion handles POST /analyze-question: a citizen's legal question
// answered with references to Brazilian law.
func (h *CheckHandler) AnalyzeQuestion(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhuma pergunta fornecida"})
		return
	}
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
		return
	}

	raw, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System: llm.QuestionPrompt(req.Category),
		Prompt: req.Question,
		Model:  llm.ModelDefault,
	})
	if err != nil {
		respondGatewayError(c, err, false, "Limite de requisições excedido. Tente novamente.", "Créditos insuficientes.")
		return
	}

	var result QuestionResult
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &result); err != nil {
		slog.Error("failed to parse AI response", "content", raw)
		result = QuestionResult{
			Answer:     raw,
			Sources:    []LawSource{},
			Confidence: "low",
			Category:   "geral",
		}
	}
	if result.Sources == nil {
		result.Sources = []LawSource{}
	}

	c.JSON(http.StatusOK, QuestionResponse{Success: true, QuestionResult: result})
}
