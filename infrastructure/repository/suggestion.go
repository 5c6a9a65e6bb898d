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

const suggestionsTable = "suggestions sg"

const suggestionColumns = "sg.id, sg.account_id, sg.ad_account_id, sg.account_name, " +
	"sg.campaign_id, sg.campaign_name, sg.adset_id, sg.adset_name, sg.currency, " +
	"sg.current_daily_budget, sg.suggested_daily_budget, sg.scale_percent, " +
	"sg.triggered_metrics, sg.metrics_exceeded, sg.note, sg.deep_link, sg.status, " +
	"sg.created_at, sg.updated_at"

type SuggestionRepository interface {
	// Create insere a sugestão com status pendente. Retorna false quando já
	// existe uma sugestão pendente para o mesmo ad set (índice único parcial)
	Create(suggestion *domain.Suggestion) (bool, error)

	GetByID(id string) (*domain.Suggestion, error)
	ListByAccount(accountID string, status *domain.SuggestionStatus) ([]*domain.Suggestion, error)
	HasPendingForAdSet(adSetID string) (bool, error)

	// UpdateStatusIfPending faz a transição condicional pending -> terminal.
	// Retorna false quando nenhuma linha foi alterada (sugestão inexistente
	// ou já em estado terminal); o chamador desambigua
	UpdateStatusIfPending(id string, status domain.SuggestionStatus) (bool, error)
}

type suggestionRepository struct {
	conn *postgres.Connection
}

func NewSuggestionRepository(conn *postgres.Connection) SuggestionRepository {
	return &suggestionRepository{
		conn: conn,
	}
}

func (r *suggestionRepository) Create(suggestion *domain.Suggestion) (bool, error) {
	metricsJSON, err := json.Marshal(suggestion.TriggeredMetrics)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar métricas disparadas: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("suggestions").
		Columns(
			"id", "account_id", "ad_account_id", "account_name",
			"campaign_id", "campaign_name", "adset_id", "adset_name", "currency",
			"current_daily_budget", "suggested_daily_budget", "scale_percent",
			"triggered_metrics", "metrics_exceeded", "note", "deep_link", "status",
		).
		Values(
			suggestion.ID,
			suggestion.AccountID,
			suggestion.AdAccountID,
			suggestion.AccountName,
			suggestion.CampaignID,
			suggestion.CampaignName,
			suggestion.AdSetID,
			suggestion.AdSetName,
			suggestion.Currency,
			suggestion.CurrentDailyBudget,
			suggestion.SuggestedDailyBudget,
			suggestion.ScalePercent,
			metricsJSON,
			suggestion.MetricsExceeded,
			suggestion.Note,
			suggestion.DeepLink,
			string(domain.SuggestionStatusPending),
		).
		// O índice único parcial em (adset_id) WHERE status = 'pending'
		// garante no máximo uma sugestão pendente por ad set mesmo com
		// análises concorrentes
		Suffix(`ON CONFLICT (adset_id) WHERE status = 'pending' DO NOTHING`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func (r *suggestionRepository) GetByID(id string) (*domain.Suggestion, error) {
	query, args, err := squirrel.
		Select(suggestionColumns).
		From(suggestionsTable).
		Where(squirrel.Eq{"sg.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	suggestion, err := scanSuggestionRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sugestão: %w", err)
	}

	return suggestion, nil
}

func (r *suggestionRepository) ListByAccount(accountID string, status *domain.SuggestionStatus) ([]*domain.Suggestion, error) {
	queryBuilder := squirrel.
		Select(suggestionColumns).
		From(suggestionsTable).
		Where(squirrel.Eq{"sg.account_id": accountID}).
		OrderBy("sg.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"sg.status": string(*status)})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	suggestions := make([]*domain.Suggestion, 0)
	for rows.Next() {
		suggestion, err := scanSuggestionRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear sugestões: %w", err)
		}
		suggestions = append(suggestions, suggestion)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suggestions, nil
}

func (r *suggestionRepository) HasPendingForAdSet(adSetID string) (bool, error) {
	query, args, err := squirrel.
		Select("COUNT(1)").
		From(suggestionsTable).
		Where(squirrel.Eq{"sg.adset_id": adSetID, "sg.status": string(domain.SuggestionStatusPending)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("erro ao contar sugestões pendentes: %w", err)
	}

	return count > 0, nil
}

func (r *suggestionRepository) UpdateStatusIfPending(id string, status domain.SuggestionStatus) (bool, error) {
	query, args, err := squirrel.
		Update("suggestions").
		Set("status", string(status)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{
			"id":     id,
			"status": string(domain.SuggestionStatusPending),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return affected > 0, nil
}

func scanSuggestionRow(row *sql.Row) (*domain.Suggestion, error) {
	suggestion := &domain.Suggestion{}
	var metricsJSON []byte
	var status string

	err := row.Scan(
		&suggestion.ID,
		&suggestion.AccountID,
		&suggestion.AdAccountID,
		&suggestion.AccountName,
		&suggestion.CampaignID,
		&suggestion.CampaignName,
		&suggestion.AdSetID,
		&suggestion.AdSetName,
		&suggestion.Currency,
		&suggestion.CurrentDailyBudget,
		&suggestion.SuggestedDailyBudget,
		&suggestion.ScalePercent,
		&metricsJSON,
		&suggestion.MetricsExceeded,
		&suggestion.Note,
		&suggestion.DeepLink,
		&status,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	suggestion.Status = domain.SuggestionStatus(status)

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &suggestion.TriggeredMetrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar métricas disparadas: %w", err)
		}
	}

	return suggestion, nil
}

func scanSuggestionRows(rows *sql.Rows) (*domain.Suggestion, error) {
	suggestion := &domain.Suggestion{}
	var metricsJSON []byte
	var status string

	err := rows.Scan(
		&suggestion.ID,
		&suggestion.AccountID,
		&suggestion.AdAccountID,
		&suggestion.AccountName,
		&suggestion.CampaignID,
		&suggestion.CampaignName,
		&suggestion.AdSetID,
		&suggestion.AdSetName,
		&suggestion.Currency,
		&suggestion.CurrentDailyBudget,
		&suggestion.SuggestedDailyBudget,
		&suggestion.ScalePercent,
		&metricsJSON,
		&suggestion.MetricsExceeded,
		&suggestion.Note,
		&suggestion.DeepLink,
		&status,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	suggestion.Status = domain.SuggestionStatus(status)

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &suggestion.TriggeredMetrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar métricas disparadas: %w", err)
		}
	}

	return suggestion, nil
}
