package repository

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// VerificationRepository persists archived news analyses. The
// news_verifications schema is owned by ops; this layer only reads and
// writes rows.
type VerificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

func (r *VerificationRepository) Save(v *model.Verification) error {
	return r.db.QueryRow(`
		INSERT INTO news_verifications(
			news_title, news_description, news_source, news_link, news_category,
			verdict, confidence, explanation, resumo, contexto,
			pontos_principais, analise_critica, fontes_recomendadas)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`, v.NewsTitle, v.NewsDescription, v.NewsSource, v.NewsLink, v.NewsCategory,
		v.Verdict, v.Confidence, v.Explanation, v.Resumo, v.Contexto,
		pq.Array(v.PontosPrincipais), v.AnaliseCritica, pq.Array(v.FontesRecomendadas),
	).Scan(&v.ID, &v.CreatedAt)
}

func (r *VerificationRepository) List(limit, offset int) ([]model.Verification, error) {
	rows, err := r.db.Query(`
		SELECT id, news_title, news_description, news_source, news_link, news_category,
			verdict, confidence, explanation, resumo, contexto,
			pontos_principais, analise_critica, fontes_recomendadas, created_at
		FROM news_verifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verifications []model.Verification
	for rows.Next() {
		var v model.Verification
		err := rows.Scan(&v.ID, &v.NewsTitle, &v.NewsDescription, &v.NewsSource, &v.NewsLink,
			&v.NewsCategory, &v.Verdict, &v.Confidence, &v.Explanation, &v.Resumo, &v.Contexto,
			pq.Array(&v.PontosPrincipais), &v.AnaliseCritica, pq.Array(&v.FontesRecomendadas),
			&v.CreatedAt)
		if err != nil {
			return nil, err
		}
		verifications = append(verifications, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return verifications, nil
}

func (r *VerificationRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM news_verifications`).Scan(&total)
	return total, err
}
