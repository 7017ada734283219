package service

import (
	"context"
	"sort"
	"sync"
	"time"

	appErrors "github.com/unclebandit/influencer-portal/internal/errors"
	"github.com/unclebandit/influencer-portal/internal/model"
	"github.com/unclebandit/influencer-portal/internal/repository"
)

// In-memory repositories. Each hands out sequential ids and stamps times.

type mockUserRepo struct {
	users  map[int64]model.User
	nextID int64
}

func newMockUserRepo(users ...model.User) *mockUserRepo {
	r := &mockUserRepo{users: map[int64]model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return appErrors.NewConflict("User with email %s already exists", u.Email)
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, appErrors.NewNotFound("User", id)
	}
	return &u, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type mockAccountRepo struct {
	accounts map[int64]model.PlatformAccount
	nextID   int64
}

func newMockAccountRepo(accounts ...model.PlatformAccount) *mockAccountRepo {
	r := &mockAccountRepo{accounts: map[int64]model.PlatformAccount{}}
	for _, a := range accounts {
		r.accounts[a.ID] = a
		if a.ID > r.nextID {
			r.nextID = a.ID
		}
	}
	return r
}

func (m *mockAccountRepo) Create(_ context.Context, a *model.PlatformAccount) error {
	m.nextID++
	a.ID = m.nextID
	a.ConnectedAt = time.Now()
	m.accounts[a.ID] = *a
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id int64) (*model.PlatformAccount, error) {
	a, ok := m.accounts[id]
	if !ok {
		return nil, appErrors.NewNotFound("Platform account", id)
	}
	return &a, nil
}

func (m *mockAccountRepo) ListByUser(_ context.Context, userID int64) ([]model.PlatformAccount, error) {
	out := []model.PlatformAccount{}
	for _, a := range m.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockContentRepo struct {
	items  map[int64]model.Content
	nextID int64
}

func newMockContentRepo(items ...model.Content) *mockContentRepo {
	r := &mockContentRepo{items: map[int64]model.Content{}}
	for _, c := range items {
		r.items[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (m *mockContentRepo) Create(_ context.Context, c *model.Content) error {
	m.nextID++
	c.ID = m.nextID
	m.items[c.ID] = *c
	return nil
}

func (m *mockContentRepo) GetByID(_ context.Context, id int64) (*model.Content, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, appErrors.NewNotFound("Content", id)
	}
	return &c, nil
}

func (m *mockContentRepo) ListByUser(_ context.Context, userID int64) ([]model.Content, error) {
	out := []model.Content{}
	for _, c := range m.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockPostRepo struct {
	posts  map[int64]model.ScheduledPost
	nextID int64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: map[int64]model.ScheduledPost{}}
}

func (m *mockPostRepo) Create(_ context.Context, p *model.ScheduledPost) error {
	m.nextID++
	p.ID = m.nextID
	m.posts[p.ID] = *p
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id int64) (*model.ScheduledPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, appErrors.NewNotFound("Scheduled post", id)
	}
	return &p, nil
}

func (m *mockPostRepo) ListByUser(_ context.Context, userID int64, status string) ([]model.ScheduledPostDetails, error) {
	out := []model.ScheduledPostDetails{}
	for _, p := range m.posts {
		if p.UserID == userID && (status == "" || p.Status == status) {
			out = append(out, model.ScheduledPostDetails{ScheduledPost: p})
		}
	}
	return out, nil
}

func (m *mockPostRepo) UpdateStatus(_ context.Context, id int64, status string, errorMessage *string) (*model.ScheduledPost, error) {
	p, ok := m.posts[id]
	if !ok {
		return nil, appErrors.NewNotFound("Scheduled post", id)
	}
	p.Status = status
	p.PublishedAt = nil
	p.ErrorMessage = nil
	if status == model.PostStatusPublished {
		now := time.Now()
		p.PublishedAt = &now
	}
	if status == model.PostStatusFailed {
		p.ErrorMessage = errorMessage
	}
	m.posts[id] = p
	return &p, nil
}

type mockCampaignRepo struct {
	campaigns map[int64]model.Campaign
	nextID    int64
}

func newMockCampaignRepo(campaigns ...model.Campaign) *mockCampaignRepo {
	r := &mockCampaignRepo{campaigns: map[int64]model.Campaign{}}
	for _, c := range campaigns {
		r.campaigns[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (m *mockCampaignRepo) Create(_ context.Context, c *model.Campaign) error {
	m.nextID++
	c.ID = m.nextID
	m.campaigns[c.ID] = *c
	return nil
}

func (m *mockCampaignRepo) GetByID(_ context.Context, id int64) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewNotFound("Campaign", id)
	}
	return &c, nil
}

func (m *mockCampaignRepo) ListByUser(_ context.Context, userID int64, status string) ([]model.Campaign, error) {
	out := []model.Campaign{}
	for _, c := range m.campaigns {
		if c.UserID == userID && (status == "" || c.Status == status) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCampaignRepo) UpdateStatus(_ context.Context, id int64, status string) (*model.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return nil, appErrors.NewNotFound("Campaign", id)
	}
	c.Status = status
	m.campaigns[id] = c
	return &c, nil
}

type mockMetricsRepo struct {
	rows    []model.CampaignMetrics
	summary *model.CampaignMetricsSummary
}

func (m *mockMetricsRepo) Create(_ context.Context, cm *model.CampaignMetrics) error {
	cm.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *cm)
	return nil
}

func (m *mockMetricsRepo) ListByCampaign(_ context.Context, campaignID int64) ([]model.CampaignMetrics, error) {
	out := []model.CampaignMetrics{}
	for _, r := range m.rows {
		if r.CampaignID == campaignID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockMetricsRepo) Summary(_ context.Context, campaignID int64) (*model.CampaignMetricsSummary, error) {
	if m.summary != nil {
		return m.summary, nil
	}
	return &model.CampaignMetricsSummary{CampaignID: campaignID}, nil
}

type mockTaskRepo struct {
	tasks  map[int64]model.WorkflowTask
	nextID int64
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: map[int64]model.WorkflowTask{}}
}

func (m *mockTaskRepo) Create(_ context.Context, t *model.WorkflowTask) error {
	m.nextID++
	t.ID = m.nextID
	m.tasks[t.ID] = *t
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id int64) (*model.WorkflowTask, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, appErrors.NewNotFound("Workflow task", id)
	}
	return &t, nil
}

func (m *mockTaskRepo) ListByUser(_ context.Context, userID int64, status string) ([]model.WorkflowTask, error) {
	out := []model.WorkflowTask{}
	for _, t := range m.tasks {
		if t.UserID == userID && (status == "" || t.Status == status) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTaskRepo) UpdateStatus(_ context.Context, id int64, status string) (*model.WorkflowTask, error) {
	t, ok := m.tasks[id]
	if !ok {
		return nil, appErrors.NewNotFound("Workflow task", id)
	}
	t.Status = status
	t.CompletedAt = nil
	if status == model.TaskStatusCompleted {
		now := time.Now()
		t.CompletedAt = &now
	}
	m.tasks[id] = t
	return &t, nil
}

type mockTrendRepo struct {
	created    []model.Trend
	lastFilter repository.TrendFilter
}

func (m *mockTrendRepo) Create(_ context.Context, t *model.Trend) error {
	t.ID = int64(len(m.created) + 1)
	m.created = append(m.created, *t)
	return nil
}

func (m *mockTrendRepo) List(_ context.Context, filter repository.TrendFilter) ([]model.Trend, error) {
	m.lastFilter = filter
	return m.created, nil
}

type mockAIRequestRepo struct {
	requests []model.AIContentRequest
}

func (m *mockAIRequestRepo) Create(_ context.Context, req *model.AIContentRequest) error {
	req.ID = int64(len(m.requests) + 1)
	m.requests = append(m.requests, *req)
	return nil
}

func (m *mockAIRequestRepo) ListByUser(_ context.Context, userID int64) ([]model.AIContentRequest, error) {
	out := []model.AIContentRequest{}
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type publishedEvent struct {
	Topic string
	Data  any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(topic string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Topic: topic, Data: data})
}

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Topic)
	}
	return out
}

var (
	_ repository.UserRepositoryInterface             = (*mockUserRepo)(nil)
	_ repository.PlatformAccountRepositoryInterface  = (*mockAccountRepo)(nil)
	_ repository.ContentRepositoryInterface          = (*mockContentRepo)(nil)
	_ repository.ScheduledPostRepositoryInterface    = (*mockPostRepo)(nil)
	_ repository.CampaignRepositoryInterface         = (*mockCampaignRepo)(nil)
	_ repository.CampaignMetricsRepositoryInterface  = (*mockMetricsRepo)(nil)
	_ repository.WorkflowTaskRepositoryInterface     = (*mockTaskRepo)(nil)
	_ repository.TrendRepositoryInterface            = (*mockTrendRepo)(nil)
	_ repository.AIContentRequestRepositoryInterface = (*mockAIRequestRepo)(nil)
)
