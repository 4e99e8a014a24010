package mappers

import (
	"fmt"

	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/infrastructure/persistence/models"
	"github.com/relatorio-inc/relatorio/internal/shared/mapper"
)

// UserMapper handles the conversion between user entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(model.ID, user.UserState{
		TenantID:     model.TenantID,
		Username:     model.Username,
		Email:        model.Email,
		FullName:     model.FullName,
		PasswordHash: model.PasswordHash,
		Role:         model.Role,
		Phone:        model.Phone,
		Department:   model.Department,
		JobTitle:     model.JobTitle,
		IsManager:    model.IsManager,
		IsActive:     model.IsActive,
		UnitID:       model.UnitID,
		SectorID:     model.SectorID,
		LastLoginAt:  model.LastLoginAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		TenantID:     entity.TenantID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		FullName:     entity.FullName(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		Phone:        entity.Phone(),
		Department:   entity.Department(),
		JobTitle:     entity.JobTitle(),
		IsManager:    entity.IsManager(),
		IsActive:     entity.IsActive(),
		UnitID:       entity.UnitID(),
		SectorID:     entity.SectorID(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(modelList []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}
