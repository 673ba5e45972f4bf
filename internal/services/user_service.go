package services

import (
	"estatecrm/internal/models"
	"estatecrm/internal/repositories"
)

type UserService struct {
	Repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) List() []models.User {
	return s.Repo.List()
}

func (s *UserService) GetByID(id string) (models.User, error) {
	return s.Repo.GetByID(id)
}
