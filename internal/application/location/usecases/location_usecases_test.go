package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/domain/location"
	"github.com/relatorio-inc/relatorio/internal/domain/user"
	"github.com/relatorio-inc/relatorio/internal/shared/errors"
)

const tenantID uint = 1

func localData(code string) location.LocalData {
	return location.LocalData{
		Name:  "Fábrica Norte",
		Code:  code,
		Type:  location.LocalType("fabrica"),
		City:  "Campinas",
		State: "sp",
		CEP:   "13000-000",
	}
}

func existingLocal(id, tenant uint) *location.Local {
	now := time.Now()
	return location.ReconstructLocal(id, tenant, localData("FN-01"), now, now)
}

func responsible(id, tenant uint) *user.User {
	u, err := user.ReconstructUser(id, user.UserState{
		TenantID: tenant, Username: "resp", Email: "resp@example.com", Role: "staff", IsActive: true,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func TestCreateLocalUseCase_Execute(t *testing.T) {
	respID := uint(7)
	foreignID := uint(8)
	users := &mockUserRepository{users: map[uint]*user.User{
		respID:    responsible(respID, tenantID),
		foreignID: responsible(foreignID, 2),
	}}

	tests := []struct {
		name    string
		data    location.LocalData
		exists  bool
		wantErr func(error) bool
	}{
		{name: "valid local", data: localData("FN-01")},
		{
			name: "with responsible",
			data: func() location.LocalData { d := localData("FN-02"); d.ResponsibleID = &respID; return d }(),
		},
		{name: "duplicate code", data: localData("FN-01"), exists: true, wantErr: errors.IsConflictError},
		{
			name:    "invalid state",
			data:    func() location.LocalData { d := localData("FN-03"); d.State = "São Paulo"; return d }(),
			wantErr: errors.IsValidationError,
		},
		{
			name:    "responsible of another tenant",
			data:    func() location.LocalData { d := localData("FN-04"); d.ResponsibleID = &foreignID; return d }(),
			wantErr: errors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockLocalRepository{
				ExistsByCodeFunc: func(ctx context.Context, code string, excludeID uint) (bool, error) {
					return tt.exists, nil
				},
			}
			uc := NewCreateLocalUseCase(repo, users, &mockLogger{})

			result, err := uc.Execute(context.Background(), CreateLocalCommand{TenantID: tenantID, Data: tt.data})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SP", result.State)
			assert.Equal(t, "ativo", result.Status)
		})
	}
}

func TestUpdateLocalUseCase_ExcludesItselfFromCodeCheck(t *testing.T) {
	var excluded uint
	repo := &mockLocalRepository{
		locals: map[uint]*location.Local{5: existingLocal(5, tenantID)},
		ExistsByCodeFunc: func(ctx context.Context, code string, excludeID uint) (bool, error) {
			excluded = excludeID
			return false, nil
		},
	}
	uc := NewUpdateLocalUseCase(repo, &mockUserRepository{}, &mockLogger{})

	data := localData("FN-01")
	data.Status = location.LocalStatus("manutencao")
	result, err := uc.Execute(context.Background(), UpdateLocalCommand{TenantID: tenantID, ID: 5, Data: data})

	require.NoError(t, err)
	assert.Equal(t, uint(5), excluded)
	assert.Equal(t, "manutencao", result.Status)
	assert.Len(t, repo.updated, 1)
}

func TestDeleteLocalUseCase_Execute(t *testing.T) {
	repo := &mockLocalRepository{locals: map[uint]*location.Local{
		5: existingLocal(5, tenantID),
		6: existingLocal(6, 2),
	}}
	uc := NewDeleteLocalUseCase(repo, &mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), DeleteCommand{TenantID: tenantID, ID: 5}))
	assert.Equal(t, []uint{5}, repo.deleted)

	err := uc.Execute(context.Background(), DeleteCommand{TenantID: tenantID, ID: 6})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, []uint{5}, repo.deleted)
}

func TestGetLocalUseCase_IncludesEquipmentStats(t *testing.T) {
	repo := &mockLocalRepository{
		locals: map[uint]*location.Local{5: existingLocal(5, tenantID)},
		stats:  &location.EquipmentStats{Total: 4, Operando: 2, Manutencao: 1, Inativo: 1},
	}
	uc := NewGetLocalUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), GetQuery{TenantID: tenantID, ID: 5})

	require.NoError(t, err)
	assert.Equal(t, "Fábrica Norte (FN-01)", result.DisplayName)
	assert.Equal(t, int64(4), result.EquipmentStats.Total)
	assert.Equal(t, int64(1), result.EquipmentStats.Manutencao)
}

func TestListLocalsUseCase_Execute(t *testing.T) {
	var got location.ListFilter
	repo := &mockLocalRepository{
		ListFunc: func(ctx context.Context, filter location.ListFilter) ([]*location.Local, int64, error) {
			got = filter
			return []*location.Local{existingLocal(5, tenantID)}, 1, nil
		},
	}
	uc := NewListLocalsUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListQuery{TenantID: tenantID, Type: "fabrica", Search: "norte"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PageSize)
	assert.Equal(t, "norte", got.Search)
	assert.Len(t, result.Items, 1)

	_, err = uc.Execute(context.Background(), ListQuery{TenantID: tenantID, Type: "castelo"})
	assert.True(t, errors.IsValidationError(err))
}

func TestCreateEquipamentoUseCase_Execute(t *testing.T) {
	locals := &mockLocalRepository{locals: map[uint]*location.Local{
		5: existingLocal(5, tenantID),
		6: existingLocal(6, 2),
	}}

	tests := []struct {
		name    string
		localID uint
		eqType  string
		wantErr func(error) bool
	}{
		{name: "valid equipment", localID: 5, eqType: "impressora"},
		{name: "local of another tenant", localID: 6, eqType: "impressora", wantErr: errors.IsValidationError},
		{name: "missing local", localID: 0, eqType: "impressora", wantErr: errors.IsValidationError},
		{name: "invalid type", localID: 5, eqType: "torradeira", wantErr: errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEquipamentoRepository{}
			uc := NewCreateEquipamentoUseCase(repo, locals, &mockUserRepository{}, &mockLogger{})

			result, err := uc.Execute(context.Background(), CreateEquipamentoCommand{
				TenantID: tenantID,
				Data: location.EquipamentoData{
					LocalID: tt.localID,
					Name:    "Impressora RH",
					Code:    "IMP-01",
					Type:    location.EquipmentType(tt.eqType),
				},
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Empty(t, repo.created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "operando", result.OperationalStatus)
			assert.Equal(t, "medium", result.Priority)
			assert.False(t, result.WarrantyValid)
		})
	}
}

func TestCreateMotorUseCase_RejectsNegativePower(t *testing.T) {
	locals := &mockLocalRepository{locals: map[uint]*location.Local{5: existingLocal(5, tenantID)}}
	repo := &mockMotorRepository{}
	uc := NewCreateMotorUseCase(repo, locals, &mockUserRepository{}, &mockLogger{})
	power := -1.5

	_, err := uc.Execute(context.Background(), CreateMotorCommand{
		TenantID: tenantID,
		Data:     location.MotorData{LocalID: 5, Name: "Motor esteira", Code: "MT-01", PowerKW: &power},
	})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, repo.created)
}

func TestGetMotorUseCase_OtherTenantIsNotFound(t *testing.T) {
	now := time.Now()
	repo := &mockMotorRepository{items: map[uint]*location.Motor{
		3: location.ReconstructMotor(3, 2, location.MotorData{LocalID: 1, Name: "M", Code: "M1"}, now, now),
	}}

	_, err := NewGetMotorUseCase(repo, &mockLogger{}).Execute(context.Background(), GetQuery{TenantID: tenantID, ID: 3})

	assert.True(t, errors.IsNotFoundError(err))
}
