package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-scaler-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

const accountSettingsTable = "account_settings st"

type AccountSettingsRepository interface {
	GetByAccountID(accountID string) (*domain.AccountSettings, error)
	SaveOrUpdate(settings *domain.AccountSettings) error
}

type accountSettingsRepository struct {
	conn *postgres.Connection
}

func NewAccountSettingsRepository(conn *postgres.Connection) AccountSettingsRepository {
	return &accountSettingsRepository{
		conn: conn,
	}
}

// GetByAccountID retorna a configuração da conta, ou nil quando a conta ainda
// não tem configuração salva (o chamador decide aplicar os defaults).
func (r *accountSettingsRepository) GetByAccountID(accountID string) (*domain.AccountSettings, error) {
	query, args, err := squirrel.
		Select("st.account_id, st.thresholds, st.scale_percent, st.init_scale_day, st.recur_scale_day, st.min_metrics_exceeded, st.note, st.updated_at").
		From(accountSettingsTable).
		Where(squirrel.Eq{"st.account_id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	settings := &domain.AccountSettings{}
	var thresholdsJSON []byte

	err = row.Scan(
		&settings.AccountID,
		&thresholdsJSON,
		&settings.ScalePercent,
		&settings.InitScaleDay,
		&settings.RecurScaleDay,
		&settings.MinMetricsExceeded,
		&settings.Note,
		&settings.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração da conta: %w", err)
	}

	settings.Thresholds = map[domain.MetricName]float64{}
	if thresholdsJSON != nil {
		if err := json.Unmarshal(thresholdsJSON, &settings.Thresholds); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de limiares: %w", err)
		}
	}

	return settings, nil
}

func (r *accountSettingsRepository) SaveOrUpdate(settings *domain.AccountSettings) error {
	thresholdsJSON, err := json.Marshal(settings.Thresholds)
	if err != nil {
		return fmt.Errorf("erro ao serializar limiares para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("account_settings").
		Columns("account_id", "thresholds", "scale_percent", "init_scale_day", "recur_scale_day", "min_metrics_exceeded", "note").
		Values(
			settings.AccountID,
			thresholdsJSON,
			settings.ScalePercent,
			settings.InitScaleDay,
			settings.RecurScaleDay,
			settings.MinMetricsExceeded,
			settings.Note,
		).
		Suffix(`
			ON CONFLICT (account_id) DO UPDATE SET
				thresholds = EXCLUDED.thresholds,
				scale_percent = EXCLUDED.scale_percent,
				init_scale_day = EXCLUDED.init_scale_day,
				recur_scale_day = EXCLUDED.recur_scale_day,
				min_metrics_exceeded = EXCLUDED.min_metrics_exceeded,
				note = EXCLUDED.note,
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
