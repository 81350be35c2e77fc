// Package onboarding controla o modo "primeiro dia de uso" de cada usuário.
package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/webytehub/ploutosledger-api/internal/domain"
	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
)

// Chaves por usuário. O marcador de conclusão e a lista de passos ficam separados.
const (
	completedKey = "ploutos_first_day_completed"
	stepsKey     = "ploutos_first_day_steps"
)

// State situação do primeiro dia de uso.
type State struct {
	IsFirstDay     bool     `json:"is_first_day"`
	ShowTooltips   bool     `json:"show_tooltips"`
	CompletedSteps []string `json:"completed_steps"`
}

// HasCompletedStep informa se step já foi concluído.
func (s State) HasCompletedStep(step string) bool {
	return slices.Contains(s.CompletedSteps, step)
}

// Service lê e grava o estado no armazenamento chave/valor.
type Service struct {
	store repository.KeyValueStore
	log   zerolog.Logger
	mu    sync.Mutex // serializa leitura+escrita da lista de passos neste processo
}

// NewService constrói o serviço.
func NewService(store repository.KeyValueStore, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// State enquanto o marcador não existir, o usuário está no primeiro dia e vê as dicas.
// Lista de passos corrompida é ignorada.
func (s *Service) State(ctx context.Context, userID string) (State, error) {
	_, completed, err := s.store.Get(ctx, repository.UserKey(userID, completedKey))
	if err != nil {
		return State{}, fmt.Errorf("onboarding: ler marcador: %w", err)
	}
	steps, err := s.steps(ctx, userID)
	if err != nil {
		return State{}, err
	}
	return State{
		IsFirstDay:     !completed,
		ShowTooltips:   !completed,
		CompletedSteps: steps,
	}, nil
}

// CompleteStep adiciona step à lista de passos concluídos (sem duplicar).
func (s *Service) CompleteStep(ctx context.Context, userID, step string) (State, error) {
	step = strings.TrimSpace(step)
	if step == "" {
		return State{}, fmt.Errorf("onboarding: passo vazio: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	steps, err := s.steps(ctx, userID)
	if err == nil && !slices.Contains(steps, step) {
		steps = append(steps, step)
		err = s.saveSteps(ctx, userID, steps)
	}
	s.mu.Unlock()
	if err != nil {
		return State{}, err
	}
	return s.State(ctx, userID)
}

// CompleteFirstDay encerra o primeiro dia de forma permanente.
func (s *Service) CompleteFirstDay(ctx context.Context, userID string) (State, error) {
	if err := s.store.Set(ctx, repository.UserKey(userID, completedKey), "true"); err != nil {
		return State{}, fmt.Errorf("onboarding: gravar marcador: %w", err)
	}
	return s.State(ctx, userID)
}

// HasCompletedStep informa se o usuário concluiu step.
func (s *Service) HasCompletedStep(ctx context.Context, userID, step string) (bool, error) {
	steps, err := s.steps(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(steps, step), nil
}

func (s *Service) steps(ctx context.Context, userID string) ([]string, error) {
	raw, found, err := s.store.Get(ctx, repository.UserKey(userID, stepsKey))
	if err != nil {
		return nil, fmt.Errorf("onboarding: ler passos: %w", err)
	}
	steps := []string{}
	if !found {
		return steps, nil
	}
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		s.log.Debug().Err(err).Str("user_id", userID).Msg("lista de passos ilegível, ignorada")
		return []string{}, nil
	}
	return steps, nil
}

func (s *Service) saveSteps(ctx context.Context, userID string, steps []string) error {
	raw, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("onboarding: serializar passos: %w", err)
	}
	if err := s.store.Set(ctx, repository.UserKey(userID, stepsKey), string(raw)); err != nil {
		return fmt.Errorf("onboarding: gravar passos: %w", err)
	}
	return nil
}
