package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/leadsync"
	"github.com/buyclientuz-pixel/targetbot-sub002/pkg/apiErrors"
)

type webhookLead struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	CreatedTime  string `json:"created_time"`
	Source       string `json:"source"`
	CampaignName string `json:"campaign_name"`
}

type webhookPayload struct {
	Leads []webhookLead `json:"leads"`
}

type updateLeadStatusPayload struct {
	Status string `json:"status"`
}

// LeadWebhook recebe um lote de leads do provedor e o mescla no snapshot do
// projeto. A mescla é idempotente, então reentregas do webhook são inócuas.
func LeadWebhook(projects repository.ProjectRepository, service leadsync.Merger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := resolveProject(w, r, projects)
		if project == nil {
			return
		}

		var payload webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo do webhook ilegível", nil)
			return
		}

		batch := make([]*domain.Lead, 0, len(payload.Leads))
		for _, raw := range payload.Leads {
			if raw.ID == "" {
				continue
			}

			createdAt, err := time.Parse(time.RFC3339, raw.CreatedTime)
			if err != nil {
				createdAt = time.Now().UTC()
			}

			batch = append(batch, &domain.Lead{
				ID:           raw.ID,
				Name:         raw.Name,
				Phone:        raw.Phone,
				CreatedAt:    createdAt,
				Source:       raw.Source,
				CampaignName: raw.CampaignName,
			})
		}

		snapshot, err := service.MergeLeads(r.Context(), project, batch)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"project_id": project.ID,
				"error":      err.Error(),
			}).Error("Erro ao mesclar leads do webhook")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar leads", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"stats":     snapshot.Stats,
			"synced_at": snapshot.SyncedAt,
		})
	}
}

// GetProjectLeads devolve o snapshot de leads do projeto. Projeto sem
// snapshot responde uma lista vazia, não um 404.
func GetProjectLeads(projects repository.ProjectRepository, service leadsync.Merger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := resolveProject(w, r, projects)
		if project == nil {
			return
		}

		snapshot, err := service.GetSnapshot(r.Context(), project.ID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar leads", nil)
			return
		}
		if snapshot == nil {
			snapshot = &domain.LeadListSnapshot{
				ProjectID: project.ID,
				Leads:     []*domain.Lead{},
			}
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

// UpdateLeadStatus aplica uma transição explícita de status a um lead
func UpdateLeadStatus(projects repository.ProjectRepository, service leadsync.Merger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := resolveProject(w, r, projects)
		if project == nil {
			return
		}

		leadID := httprouter.ParamsFromContext(r.Context()).ByName("leadId")

		var payload updateLeadStatusPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição ilegível", nil)
			return
		}

		snapshot, err := service.UpdateLeadStatus(r.Context(), project, leadID, domain.LeadStatus(payload.Status))
		if err != nil {
			switch {
			case errors.Is(err, leadsync.ErrInvalidStatus):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status de lead inválido", nil)
			case errors.Is(err, leadsync.ErrLeadNotFound):
				apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Lead não encontrado", nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar lead", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}

// resolveProject carrega o projeto do caminho, respondendo o erro adequado
// quando ele não existe. Devolve nil quando a resposta já foi escrita.
func resolveProject(w http.ResponseWriter, r *http.Request, projects repository.ProjectRepository) *domain.Project {
	projectID := httprouter.ParamsFromContext(r.Context()).ByName("projectId")
	if projectID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Projeto não especificado", nil)
		return nil
	}

	project, err := projects.GetByID(r.Context(), projectID)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar projeto", nil)
		return nil
	}
	if project == nil {
		apiErrors.WriteError(w, apiErrors.ErrProjectNotFound, "Projeto não encontrado", nil)
		return nil
	}

	return project
}
