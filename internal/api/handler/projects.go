package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	"github.com/buyclientuz-pixel/targetbot-sub002/pkg/apiErrors"
)

type upsertProjectPayload struct {
	Name      string           `json:"name"`
	AccountID string           `json:"account_id"`
	Timezone  string           `json:"timezone"`
	KPI       domain.KPIConfig `json:"kpi"`
	ChatID    *int64           `json:"chat_id"`
	OwnerID   int64            `json:"owner_id"`
	Status    string           `json:"status"`
}

// UpsertProject cria ou atualiza a configuração de um projeto. A troca da
// conta de anúncios vinculada invalida todo o cache de métricas do projeto:
// as entradas antigas pertencem à conta anterior.
func UpsertProject(projects repository.ProjectRepository, insights insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := httprouter.ParamsFromContext(r.Context()).ByName("projectId")
		if projectID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Projeto não especificado", nil)
			return
		}

		var payload upsertProjectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição ilegível", nil)
			return
		}
		if payload.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conta de anúncios é obrigatória", nil)
			return
		}

		existing, err := projects.GetByID(r.Context(), projectID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar projeto", nil)
			return
		}

		status := domain.ProjectStatus(payload.Status)
		if status == "" {
			status = domain.ProjectStatusActive
		}

		project := &domain.Project{
			ID:        projectID,
			Name:      payload.Name,
			AccountID: payload.AccountID,
			Timezone:  payload.Timezone,
			KPI:       payload.KPI,
			ChatID:    payload.ChatID,
			OwnerID:   payload.OwnerID,
			Status:    status,
		}

		if err := projects.Save(r.Context(), project); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar projeto", nil)
			return
		}

		if existing != nil && existing.AccountID != project.AccountID {
			if err := insights.InvalidateProject(r.Context(), projectID); err != nil {
				logrus.WithFields(logrus.Fields{
					"project_id": projectID,
					"error":      err.Error(),
				}).Warn("Erro ao invalidar cache após troca de conta")
			}
		}

		writeJSON(w, http.StatusOK, project)
	}
}
