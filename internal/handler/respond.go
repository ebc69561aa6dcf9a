package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urielfortunato123-del/verdade-legal-br/pkg/llm"
)

const (
	msgRateLimited      = "Limite de requisições excedido. Tente novamente em alguns segundos."
	msgRateLimitedShort = "Limite de requisições excedido."
	msgNotConfigured    = "Serviço de verificação não configurado"
	msgInvalidBody      = "Corpo da requisição inválido"
)

// respondGatewayError translates an upstream gateway failure into the
// response the frontend expects. withSuccess controls whether the 4xx body
// carries the success:false field (the news endpoints do, the check
// endpoints reply with a bare error field). An empty creditsMsg means the
// endpoint has no dedicated 402 branch and the error falls through to 500.
func respondGatewayError(c *gin.Context, err error, withSuccess bool, rateMsg, creditsMsg string) {
	body := func(msg string) gin.H {
		if withSuccess {
			return gin.H{"success": false, "error": msg}
		}
		return gin.H{"error": msg}
	}

	switch {
	case llm.IsRateLimited(err):
		c.JSON(http.StatusTooManyRequests, body(rateMsg))
	case llm.IsOutOfCredits(err) && creditsMsg != "":
		c.JSON(http.StatusPaymentRequired, body(creditsMsg))
	default:
		slog.Error("AI gateway error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
