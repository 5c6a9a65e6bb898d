package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-scaler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

const adSetInsightsTable = "adset_insights ai"

type AdSetInsightRepository interface {
	SaveOrUpdate(insight *domain.AdSetInsight) error
	SaveOrUpdateBatch(insights []*domain.AdSetInsight) error
	GetByAdSetAndDate(adAccountID, adSetID string, date time.Time) (*domain.AdSetInsight, error)
	LatestByAdSet(adAccountID string) (map[string]*domain.AdSetInsight, error)
}

type adSetInsightRepository struct {
	conn *postgres.Connection
}

func NewAdSetInsightRepository(conn *postgres.Connection) AdSetInsightRepository {
	return &adSetInsightRepository{
		conn: conn,
	}
}

// SaveOrUpdate insere ou substitui o fato do dia. A chave é
// (ad_account_id, adset_id, date); o upsert troca as métricas por inteiro,
// nunca mescla campo a campo.
func (r *adSetInsightRepository) SaveOrUpdate(insight *domain.AdSetInsight) error {
	metricsJSON, err := json.Marshal(insight.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("adset_insights").
		Columns("account_id", "ad_account_id", "campaign_id", "adset_id", "date", "metrics").
		Values(
			insight.AccountID,
			insight.AdAccountID,
			insight.CampaignID,
			insight.AdSetID,
			insight.Date.Format("2006-01-02"),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, adset_id, date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				campaign_id = EXCLUDED.campaign_id,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SaveOrUpdateBatch grava os fatos um a um; o upsert por chave composta torna
// a regravação de um lote idempotente.
func (r *adSetInsightRepository) SaveOrUpdateBatch(insights []*domain.AdSetInsight) error {
	if len(insights) == 0 {
		return nil
	}

	for _, insight := range insights {
		if err := r.SaveOrUpdate(insight); err != nil {
			return fmt.Errorf("erro ao salvar insight do adset %s em %s: %w",
				insight.AdSetID, insight.Date.Format("2006-01-02"), err)
		}
	}

	return nil
}

func (r *adSetInsightRepository) GetByAdSetAndDate(adAccountID, adSetID string, date time.Time) (*domain.AdSetInsight, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.account_id, ai.ad_account_id, ai.campaign_id, ai.adset_id, ai.date, ai.metrics, ai.created_at, ai.updated_at").
		From(adSetInsightsTable).
		Where(squirrel.Eq{
			"ai.ad_account_id": adAccountID,
			"ai.adset_id":      adSetID,
			"ai.date":          date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	insight, err := scanAdSetInsight(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear insight: %w", err)
	}

	return insight, nil
}

// LatestByAdSet retorna, para cada ad set da conta com pelo menos um fato, o
// fato de data mais recente.
func (r *adSetInsightRepository) LatestByAdSet(adAccountID string) (map[string]*domain.AdSetInsight, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.account_id, ai.ad_account_id, ai.campaign_id, ai.adset_id, ai.date, ai.metrics, ai.created_at, ai.updated_at").
		Options("DISTINCT ON (ai.adset_id)").
		From(adSetInsightsTable).
		Where(squirrel.Eq{"ai.ad_account_id": adAccountID}).
		OrderBy("ai.adset_id", "ai.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return map[string]*domain.AdSetInsight{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]*domain.AdSetInsight)
	for rows.Next() {
		insight, err := scanAdSetInsightRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear insights: %w", err)
		}
		latest[insight.AdSetID] = insight
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return latest, nil
}

func scanAdSetInsight(row *sql.Row) (*domain.AdSetInsight, error) {
	insight := &domain.AdSetInsight{}
	var metricsJSON []byte

	err := row.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.AdAccountID,
		&insight.CampaignID,
		&insight.AdSetID,
		&insight.Date,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &insight.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	return insight, nil
}

func scanAdSetInsightRows(rows *sql.Rows) (*domain.AdSetInsight, error) {
	insight := &domain.AdSetInsight{}
	var metricsJSON []byte

	err := rows.Scan(
		&insight.ID,
		&insight.AccountID,
		&insight.AdAccountID,
		&insight.CampaignID,
		&insight.AdSetID,
		&insight.Date,
		&metricsJSON,
		&insight.CreatedAt,
		&insight.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &insight.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
	}

	return insight, nil
}
