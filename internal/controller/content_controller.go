// internal/controller/content_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/influencer-portal/internal/service"
)

type ContentController struct {
	ContentService   *service.ContentService
	PostService      *service.ScheduledPostService
	AIContentService *service.AIContentService
}

func (c *ContentController) CreateContent(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.ContentService.CreateContent)(w, r)
}

func (c *ContentController) GetContent(w http.ResponseWriter, r *http.Request) {
	Query(c.ContentService.GetContent)(w, r)
}

func (c *ContentController) CreateScheduledPost(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.PostService.CreateScheduledPost)(w, r)
}

func (c *ContentController) GetScheduledPosts(w http.ResponseWriter, r *http.Request) {
	Query(c.PostService.GetScheduledPosts)(w, r)
}

func (c *ContentController) UpdateScheduledPostStatus(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusOK, c.PostService.UpdateScheduledPostStatus)(w, r)
}

func (c *ContentController) CreateAIContentRequest(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.AIContentService.CreateAIContentRequest)(w, r)
}

func (c *ContentController) GetAIContentRequests(w http.ResponseWriter, r *http.Request) {
	Query(c.AIContentService.GetAIContentRequests)(w, r)
}
