package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
)

type TranscribeHandler struct {
	gateway llm.Gateway
}

func NewTranscribeHandler(gateway llm.Gateway) *TranscribeHandler {
	return &TranscribeHandler{gateway: gateway}
}

// Transcribe handles POST /transcribe-audio. The audio arrives as the
// multipart field "audio" and goes to the model base64-encoded.
func (h *TranscribeHandler) Transcribe(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nenhum arquivo de áudio fornecido"})
		return
	}
	if h.gateway == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msgNotConfigured})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Não foi possível ler o arquivo de áudio"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Não foi possível ler o arquivo de áudio"})
		return
	}

	format := audioFormat(file.Header.Get("Content-Type"))
	slog.Info("transcribing audio", "filename", file.Filename, "size", len(data), "format", format)

	raw, err := h.gateway.Complete(c.Request.Context(), llm.Request{
		System:      llm.PromptTranscribe,
		Prompt:      "Transcreva este áudio em português brasileiro:",
		AudioBase64: base64.StdEncoding.EncodeToString(data),
		AudioFormat: format,
		Model:       llm.ModelDefault,
	})
	if err != nil {
		respondGatewayError(c, err, false, msgRateLimitedShort, "Créditos insuficientes.")
		return
	}

	var result TranscriptResult
	if err := json.Unmarshal([]byte(llm.CleanJSONResponse(raw)), &result); err != nil {
		result = TranscriptResult{Transcript: raw, Confidence: 0.8, Language: "pt-BR"}
	}
	if result.Language == "" {
		result.Language = "pt-BR"
	}

	c.JSON(http.StatusOK, TranscribeResponse{Success: true, TranscriptResult: result})
}

func audioFormat(contentType string) string {
	switch {
	case strings.Contains(contentType, "webm"):
		return "webm"
	case strings.Contains(contentType, "wav"):
		return "wav"
	default:
		return "mp3"
	}
}
