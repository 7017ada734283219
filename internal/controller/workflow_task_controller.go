// internal/controller/workflow_task_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/influencer-portal/internal/service"
)

type WorkflowTaskController struct {
	TaskService *service.WorkflowTaskService
}

func (c *WorkflowTaskController) CreateWorkflowTask(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.TaskService.CreateWorkflowTask)(w, r)
}

func (c *WorkflowTaskController) GetWorkflowTasks(w http.ResponseWriter, r *http.Request) {
	Query(c.TaskService.GetWorkflowTasks)(w, r)
}

// UpdateWorkflowTaskStatus moves a task through its board columns; completing it stamps completed_at.
func (c *WorkflowTaskController) UpdateWorkflowTaskStatus(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusOK, c.TaskService.UpdateWorkflowTaskStatus)(w, r)
}
