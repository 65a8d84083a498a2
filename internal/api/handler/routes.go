package handler

import (
	"net/http"

	"github.com/buyclientuz-pixel/targetbot-sub002/infrastructure/repository"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/api/handler/router"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/insighting"
	"github.com/buyclientuz-pixel/targetbot-sub002/internal/usecases/leadsync"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Leads(projects repository.ProjectRepository, service leadsync.Merger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads/:projectId/webhook",
			Method:  http.MethodPost,
			Handler: LeadWebhook(projects, service),
		},
		{
			Path:    "/v1/projects/:projectId/leads",
			Method:  http.MethodGet,
			Handler: GetProjectLeads(projects, service),
		},
		{
			Path:    "/v1/projects/:projectId/leads/:leadId/status",
			Method:  http.MethodPatch,
			Handler: UpdateLeadStatus(projects, service),
		},
	}
}

func Insights(projects repository.ProjectRepository, service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:projectId/insights",
			Method:  http.MethodGet,
			Handler: GetProjectSummary(projects, service),
		},
		{
			Path:    "/v1/projects/:projectId/insights/campaigns",
			Method:  http.MethodGet,
			Handler: GetProjectCampaigns(projects, service),
		},
	}
}

func Projects(projects repository.ProjectRepository, service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projects/:projectId",
			Method:  http.MethodPut,
			Handler: UpsertProject(projects, service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
