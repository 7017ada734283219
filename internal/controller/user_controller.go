// internal/controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/influencer-portal/internal/service"
)

type UserController struct {
	UserService    *service.UserService
	AccountService *service.PlatformAccountService
}

func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.UserService.CreateUser)(w, r)
}

func (c *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	Query(c.UserService.GetUser)(w, r)
}

func (c *UserController) GetUsers(w http.ResponseWriter, r *http.Request) {
	Query(c.UserService.GetUsers)(w, r)
}

func (c *UserController) CreatePlatformAccount(w http.ResponseWriter, r *http.Request) {
	Mutation(http.StatusCreated, c.AccountService.CreatePlatformAccount)(w, r)
}

func (c *UserController) GetPlatformAccounts(w http.ResponseWriter, r *http.Request) {
	Query(c.AccountService.GetPlatformAccounts)(w, r)
}
