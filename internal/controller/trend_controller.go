// internal/controller/trend_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/influencer-portal/internal/service"
)

type TrendController struct {
	TrendService *service.TrendService
}

func (c *TrendController) CreateTrend(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.TrendService.CreateTrend)(w, r)
}

func (c *TrendController) GetTrends(w http.ResponseWriter, r *http.Request) {
	Query(c.TrendService.GetTrends)(w, r)
}
