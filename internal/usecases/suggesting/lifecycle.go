package suggesting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-scaler-api/infrastructure/repository"
	"github.com/vfg2006/ad-scaler-api/internal/domain"
)

// Lifecycle resolve o destino de uma sugestão pendente. Cada sugestão aceita
// exatamente uma transição terminal; a exclusividade é garantida pelo update
// condicional no banco, não por lock de aplicação.
type Lifecycle interface {
	Approve(id string) (*domain.Suggestion, error)
	Reject(id string) (*domain.Suggestion, error)
	Get(id string) (*domain.Suggestion, error)
	ListByAccount(accountID string, status *domain.SuggestionStatus) ([]*domain.Suggestion, error)
}

type lifecycle struct {
	suggestionRepo repository.SuggestionRepository
	adSetRepo      repository.AdSetRepository
	now            func() time.Time
}

func NewLifecycle(
	suggestionRepo repository.SuggestionRepository,
	adSetRepo repository.AdSetRepository,
) Lifecycle {
	return &lifecycle{
		suggestionRepo: suggestionRepo,
		adSetRepo:      adSetRepo,
		now:            time.Now,
	}
}

// Approve marca a sugestão como aplicada e registra last_scaled_at no ad set,
// reiniciando a janela de recorrência. A aplicação do orçamento na plataforma
// é feita pelo operador; aqui só registramos a decisão.
func (l *lifecycle) Approve(id string) (*domain.Suggestion, error) {
	suggestion, err := l.transition(id, domain.SuggestionStatusApplied)
	if err != nil {
		return nil, err
	}

	// A sugestão já está aplicada; falhar aqui deixaria a decisão perdida.
	// Registramos o erro e seguimos: a janela de recorrência fica mais
	// permissiva do que deveria até a próxima aprovação
	if err := l.adSetRepo.UpdateLastScaledAt(suggestion.AdAccountID, suggestion.AdSetID, l.now()); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"suggestion_id": suggestion.ID,
			"adset_id":      suggestion.AdSetID,
		}).Error("Erro ao registrar last_scaled_at após aprovação")
	}

	return suggestion, nil
}

// Reject marca a sugestão como rejeitada. Não mexe em last_scaled_at: rejeitar
// não conta como escala.
func (l *lifecycle) Reject(id string) (*domain.Suggestion, error) {
	return l.transition(id, domain.SuggestionStatusRejected)
}

func (l *lifecycle) Get(id string) (*domain.Suggestion, error) {
	suggestion, err := l.suggestionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar sugestão %s: %w", id, err)
	}

	if suggestion == nil {
		return nil, ErrSuggestionNotFound
	}

	return suggestion, nil
}

func (l *lifecycle) ListByAccount(accountID string, status *domain.SuggestionStatus) ([]*domain.Suggestion, error) {
	return l.suggestionRepo.ListByAccount(accountID, status)
}

// transition tenta a mudança condicional pending -> status. Quando nenhuma
// linha é alterada, consulta a sugestão para distinguir inexistente de já
// resolvida.
func (l *lifecycle) transition(id string, status domain.SuggestionStatus) (*domain.Suggestion, error) {
	updated, err := l.suggestionRepo.UpdateStatusIfPending(id, status)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar status da sugestão %s: %w", id, err)
	}

	if !updated {
		existing, err := l.suggestionRepo.GetByID(id)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar sugestão %s: %w", id, err)
		}
		if existing == nil {
			return nil, ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("%w: status atual %s", ErrSuggestionNotPending, existing.Status)
	}

	suggestion, err := l.suggestionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar sugestão %s: %w", id, err)
	}

	logrus.WithFields(logrus.Fields{
		"suggestion_id": id,
		"status":        string(status),
	}).Info("Sugestão resolvida")

	return suggestion, nil
}
