package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/domain"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	"github.com/buyclientuz-pixel/targetbot-sub002/pkg/apiErrors"
)

// GetProjectSummary devolve as métricas agregadas do projeto no período
// pedido, servidas do cache quando frescas.
func GetProjectSummary(projects repository.ProjectRepository, service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := resolveProject(w, r, projects)
		if project == nil {
			return
		}

		key, custom, ok := parsePeriodQuery(w, r)
		if !ok {
			return
		}

		result, err := service.GetSummary(r.Context(), project, key, custom)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GetProjectCampaigns devolve as métricas por campanha do projeto no período
// pedido.
func GetProjectCampaigns(projects repository.ProjectRepository, service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := resolveProject(w, r, projects)
		if project == nil {
			return
		}

		key, custom, ok := parsePeriodQuery(w, r)
		if !ok {
			return
		}

		result, err := service.GetCampaigns(r.Context(), project, key, custom)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func parsePeriodQuery(w http.ResponseWriter, r *http.Request) (domain.PeriodKey, *domain.DateRange, bool) {
	key := domain.PeriodKey(r.URL.Query().Get("period"))
	if key == "" {
		key = domain.PeriodToday
	}

	var custom *domain.DateRange
	if key == domain.PeriodCustom {
		from, errFrom := time.Parse(time.DateOnly, r.URL.Query().Get("from"))
		to, errTo := time.Parse(time.DateOnly, r.URL.Query().Get("to"))
		if errFrom != nil || errTo != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período custom requer from e to no formato YYYY-MM-DD", nil)
			return "", nil, false
		}
		custom = &domain.DateRange{From: from, To: to}
	}

	return key, custom, true
}

func writeInsightError(w http.ResponseWriter, err error) {
	var invalidPeriod *domain.InvalidPeriodError
	var providerErr *domain.ProviderError

	switch {
	case errors.As(err, &invalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, invalidPeriod.Error(), nil)
	case errors.As(err, &providerErr):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Provedor de métricas indisponível", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter métricas", nil)
	}
}
