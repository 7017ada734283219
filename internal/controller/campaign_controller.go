// internal/controller/campaign_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/influencer-portal/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.CampaignService.CreateCampaign)(w, r)
}

func (c *CampaignController) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	Query(c.CampaignService.GetCampaigns)(w, r)
}

func (c *CampaignController) UpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusOK, c.CampaignService.UpdateCampaignStatus)(w, r)
}

func (c *CampaignController) CreateCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.CampaignService.CreateCampaignMetrics)(w, r)
}

func (c *CampaignController) GetCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	Query(c.CampaignService.GetCampaignMetrics)(w, r)
}

// GetCampaignMetricsSummary returns the campaign's totals across all snapshots.
func (c *CampaignController) GetCampaignMetricsSummary(w http.ResponseWriter, r *http.Request) {
	Query(c.CampaignService.GetCampaignMetricsSummary)(w, r)
}
