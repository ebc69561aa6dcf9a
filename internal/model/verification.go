package model

import "time"

// Verdict values returned by the AI verification endpoints.
const (
	VerdictConfirmed    = "confirmed"
	VerdictMisleading   = "misleading"
	VerdictFalse        = "false"
	VerdictUnverifiable = "unverifiable"
)

// Verification is one archived news analysis (news_verifications row).
type Verification struct {
	ID                 int64     `json:"id"`
	NewsTitle          string    `json:"news_title"`
	NewsDescription    string    `json:"news_description"`
	NewsSource         string    `json:"news_source"`
	NewsLink           string    `json:"news_link"`
	NewsCategory       string    `json:"news_category"`
	Verdict            string    `json:"verdict"`
	Confidence         int       `json:"confidence"`
	Explanation        string    `json:"explanation"`
	Resumo             string    `json:"resumo"`
	Contexto           string    `json:"contexto"`
	PontosPrincipais   []string  `json:"pontos_principais"`
	AnaliseCritica     string    `json:"analise_critica"`
	FontesRecomendadas []string  `json:"fontes_recomendadas"`
	CreatedAt          time.Time `json:"created_at"`
}

// ArchiveTask is the payload pushed through the Redis archive queue.
type ArchiveTask struct {
	Attempts     int          `json:"attempts"`
	Verification Verification `json:"verification"`
}
