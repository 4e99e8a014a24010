package usecases

import (
	"context"

	"github.com/relatorio-inc/relatorio/internal/application/report/dto"
	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type CreateCategoryCommand struct {
	TenantID    uint
	Staff       bool
	Name        string
	Description string
	Color       string
}

type CreateCategoryUseCase struct {
	categoryRepo report.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo report.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	uc.logger.Infow("executing create category use case", "name", cmd.Name)

	if !cmd.Staff {
		return nil, errors.NewForbiddenError("only staff can manage categories")
	}

	c, err := report.NewCategory(cmd.TenantID, cmd.Name, cmd.Description, cmd.Color)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, cmd.TenantID, c.Name())
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}
	if exists {
		return nil, errors.NewConflictError("category already exists", c.Name())
	}

	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}
	return dto.ToCategoryDTO(c), nil
}

type ListCategoriesUseCase struct {
	categoryRepo report.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo report.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context, tenantID uint) ([]*dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}
	return dto.ToCategoryDTOs(categories), nil
}
