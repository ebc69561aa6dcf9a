package handler

import "github.com/urielfortunato123-del/verdade-legal-br/internal/model"

type FetchNewsRequest struct {
	Category string `json:"category"`
}

type FetchNewsResponse struct {
	Success  bool             `json:"success"`
	News     []model.NewsItem `json:"news"`
	Category string           `json:"category"`
}

// NewsRequest is the shared input of /verify-news and /analyze-news.
type NewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

type VerifyResult struct {
	Verdict     string   `json:"verdict"`
	Confidence  int      `json:"confidence"`
	Explanation string   `json:"explanation"`
	Sources     []string `json:"sources"`
}

// VerifyNewsResponse spreads the verdict fields next to success, the shape
// the frontend consumes.
type VerifyNewsResponse struct {
	Success bool `json:"success"`
	VerifyResult
}

type VerificationStatus struct {
	Veredicto  string `json:"veredicto"`
	Confianca  int    `json:"confianca"`
	Explicacao string `json:"explicacao"`
}

type NewsAnalysis struct {
	Resumo             string             `json:"resumo"`
	Contexto           string             `json:"contexto"`
	PontosPrincipais   []string           `json:"pontosPrincipais"`
	AnaliseCritica     string             `json:"analiseCritica"`
	Verificacao        VerificationStatus `json:"verificacao"`
	FontesRecomendadas []string           `json:"fontesRecomendadas"`
}

type NewsData struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Link        string `json:"link"`
}

type AnalyzeNewsResponse struct {
	Success  bool         `json:"success"`
	Analysis NewsAnalysis `json:"analysis"`
	NewsData NewsData     `json:"newsData"`
}

type FactCheckRequest struct {
	Claim     string `json:"claim"`
	InputType string `json:"inputType"`
}

type Fonte struct {
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	URL       string `json:"url"`
}

type FactCheckResult struct {
	PostResumo      string   `json:"postResumo"`
	Veredito        string   `json:"veredito"`
	VereditoTitulo  string   `json:"vereditoTitulo"`
	Explicacao      string   `json:"explicacao"`
	PontosChave     []string `json:"pontosChave"`
	Fontes          []Fonte  `json:"fontes"`
	Contexto        string   `json:"contexto"`
	DataVerificacao string   `json:"dataVerificacao"`
	Confianca       float64  `json:"confianca"`
}

type FactCheckResponse struct {
	Success bool `json:"success"`
	FactCheckResult
}

type AnalyzeDocumentRequest struct {
	Text        string `json:"text"`
	ImageURL    string `json:"imageUrl"`
	ImageBase64 string `json:"imageBase64"`
	Mode        string `json:"mode"`
}

type LawSource struct {
	Law     string `json:"law"`
	Article string `json:"article"`
	URL     string `json:"url"`
}

type ClaimAnalysis struct {
	Text        string      `json:"text"`
	Verdict     string      `json:"verdict"`
	Explanation string      `json:"explanation"`
	Sources     []LawSource `json:"sources"`
}

type NewsTVAnalysis struct {
	OverallVerdict string          `json:"overallVerdict"`
	Summary        string          `json:"summary"`
	Claims         []ClaimAnalysis `json:"claims"`
}

type KeyInfo struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type RelatedLaw struct {
	Law       string `json:"law"`
	Article   string `json:"article"`
	Relevance string `json:"relevance"`
}

type DocumentAnalysis struct {
	Summary     string       `json:"summary"`
	KeyInfo     []KeyInfo    `json:"keyInfo"`
	LegalPoints []string     `json:"legalPoints"`
	RelatedLaws []RelatedLaw `json:"relatedLaws"`
}

type QuestionRequest struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

type QuestionResult struct {
	Answer     string      `json:"answer"`
	Sources    []LawSource `json:"sources"`
	Confidence string      `json:"confidence"`
	Category   string      `json:"category"`
	FollowUp   string      `json:"followUp,omitempty"`
}

type QuestionResponse struct {
	Success bool `json:"success"`
	QuestionResult
}

type TranscriptResult struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}

type TranscribeResponse struct {
	Success bool `json:"success"`
	TranscriptResult
}

type VerificationResponse struct {
	ID                 int64    `json:"id"`
	NewsTitle          string   `json:"news_title"`
	NewsDescription    string   `json:"news_description"`
	NewsSource         string   `json:"news_source"`
	NewsLink           string   `json:"news_link"`
	NewsCategory       string   `json:"news_category"`
	Verdict            string   `json:"verdict"`
	Confidence         int      `json:"confidence"`
	Explanation        string   `json:"explanation"`
	Resumo             string   `json:"resumo"`
	Contexto           string   `json:"contexto"`
	PontosPrincipais   []string `json:"pontos_principais"`
	AnaliseCritica     string   `json:"analise_critica"`
	FontesRecomendadas []string `json:"fontes_recomendadas"`
	CreatedAt          string   `json:"created_at"`
}

type VerificationsResponse struct {
	Success       bool                   `json:"success"`
	Verifications []VerificationResponse `json:"verifications"`
	Total         int                    `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}
