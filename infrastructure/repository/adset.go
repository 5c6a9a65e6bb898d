package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-scaler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

const adSetsTable = "adsets s"

const adSetColumns = "s.id, s.account_id, s.ad_account_id, s.adset_id, s.name, " +
	"s.campaign_id, s.campaign_name, s.status, s.currency, s.daily_budget, s.lifetime_budget, " +
	"s.start_time, s.end_time, s.last_scaled_at, s.updated_time, s.synced_at"

type AdSetRepository interface {
	GetByAdSetID(adAccountID, adSetID string) (*domain.AdSet, error)
	ListByAccount(adAccountID string) ([]*domain.AdSet, error)
	SaveOrUpdate(adSet *domain.AdSet) error
	SaveOrUpdateBatch(adSets []*domain.AdSet) error
	UpdateLastScaledAt(adAccountID, adSetID string, scaledAt time.Time) error
}

type adSetRepository struct {
	conn *postgres.Connection
}

func NewAdSetRepository(conn *postgres.Connection) AdSetRepository {
	return &adSetRepository{
		conn: conn,
	}
}

func (r *adSetRepository) GetByAdSetID(adAccountID, adSetID string) (*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns).
		From(adSetsTable).
		Where(squirrel.Eq{"s.ad_account_id": adAccountID, "s.adset_id": adSetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	adSet, err := scanAdSetRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ad set: %w", err)
	}

	return adSet, nil
}

func (r *adSetRepository) ListByAccount(adAccountID string) ([]*domain.AdSet, error) {
	query, args, err := squirrel.
		Select(adSetColumns).
		From(adSetsTable).
		Where(squirrel.Eq{"s.ad_account_id": adAccountID}).
		OrderBy("s.adset_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	adSets := make([]*domain.AdSet, 0)
	for rows.Next() {
		adSet, err := scanAdSetRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ad sets: %w", err)
		}
		adSets = append(adSets, adSet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return adSets, nil
}

// SaveOrUpdate insere ou atualiza os metadados do ad set. O merge é completo
// para os campos vindos da plataforma; last_scaled_at é preservado porque só
// o ciclo de vida de sugestões pode alterá-lo.
func (r *adSetRepository) SaveOrUpdate(adSet *domain.AdSet) error {
	query := squirrel.StatementBuilder.
		Insert("adsets").
		Columns(
			"account_id", "ad_account_id", "adset_id", "name",
			"campaign_id", "campaign_name", "status", "currency",
			"daily_budget", "lifetime_budget", "start_time", "end_time",
			"updated_time", "synced_at",
		).
		Values(
			adSet.AccountID,
			adSet.AdAccountID,
			adSet.AdSetID,
			adSet.Name,
			adSet.CampaignID,
			adSet.CampaignName,
			adSet.Status,
			adSet.Currency,
			adSet.DailyBudget,
			adSet.LifetimeBudget,
			adSet.StartTime,
			adSet.EndTime,
			adSet.UpdatedTime,
			adSet.SyncedAt,
		).
		Suffix(`
			ON CONFLICT (ad_account_id, adset_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				name = EXCLUDED.name,
				campaign_id = EXCLUDED.campaign_id,
				campaign_name = EXCLUDED.campaign_name,
				status = EXCLUDED.status,
				currency = EXCLUDED.currency,
				daily_budget = EXCLUDED.daily_budget,
				lifetime_budget = EXCLUDED.lifetime_budget,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				updated_time = EXCLUDED.updated_time,
				synced_at = EXCLUDED.synced_at
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

func (r *adSetRepository) SaveOrUpdateBatch(adSets []*domain.AdSet) error {
	for _, adSet := range adSets {
		if err := r.SaveOrUpdate(adSet); err != nil {
			return fmt.Errorf("erro ao salvar ad set %s: %w", adSet.AdSetID, err)
		}
	}

	return nil
}

// UpdateLastScaledAt registra a aprovação de uma sugestão de escala,
// reiniciando a janela de recorrência do ad set.
func (r *adSetRepository) UpdateLastScaledAt(adAccountID, adSetID string, scaledAt time.Time) error {
	query, args, err := squirrel.
		Update("adsets").
		Set("last_scaled_at", scaledAt).
		Where(squirrel.Eq{"ad_account_id": adAccountID, "adset_id": adSetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("ad set não encontrado: %s", adSetID)
	}

	return nil
}

func scanAdSetRow(row *sql.Row) (*domain.AdSet, error) {
	adSet := &domain.AdSet{}

	err := row.Scan(
		&adSet.ID,
		&adSet.AccountID,
		&adSet.AdAccountID,
		&adSet.AdSetID,
		&adSet.Name,
		&adSet.CampaignID,
		&adSet.CampaignName,
		&adSet.Status,
		&adSet.Currency,
		&adSet.DailyBudget,
		&adSet.LifetimeBudget,
		&adSet.StartTime,
		&adSet.EndTime,
		&adSet.LastScaledAt,
		&adSet.UpdatedTime,
		&adSet.SyncedAt,
	)
	if err != nil {
		return nil, err
	}

	return adSet, nil
}

func scanAdSetRows(rows *sql.Rows) (*domain.AdSet, error) {
	adSet := &domain.AdSet{}

	err := rows.Scan(
		&adSet.ID,
		&adSet.AccountID,
		&adSet.AdAccountID,
		&adSet.AdSetID,
		&adSet.Name,
		&adSet.CampaignID,
		&adSet.CampaignName,
		&adSet.Status,
		&adSet.Currency,
		&adSet.DailyBudget,
		&adSet.LifetimeBudget,
		&adSet.StartTime,
		&adSet.EndTime,
		&adSet.LastScaledAt,
		&adSet.UpdatedTime,
		&adSet.SyncedAt,
	)
	if err != nil {
		return nil, err
	}

	return adSet, nil
}
