package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrasoft/almoxarifado-api/internal/application/dto"
	"github.com/obrasoft/almoxarifado-api/internal/application/usecase"
	"github.com/obrasoft/almoxarifado-api/internal/domain"
	"github.com/obrasoft/almoxarifado-api/internal/domain/entity"
)

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) List(int, int) ([]*entity.Project, error) {
	list := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeProjectRepo) ListByStatus(status string, _, _ int) ([]*entity.Project, error) {
	var list []*entity.Project
	for _, p := range r.projects {
		if p.Status == status {
			list = append(list, p)
		}
	}
	return list, nil
}

func TestProjectCreate_NasceAtiva(t *testing.T) {
	uc := usecase.NewProjectUseCase(newFakeProjectRepo())

	project, err := uc.Create(dto.CreateProjectRequest{Name: "Residencial Aurora", City: "Campinas"})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectActive, project.Status)
	assert.NotEmpty(t, project.ID)
}

func TestProjectCreate_SemNome(t *testing.T) {
	uc := usecase.NewProjectUseCase(newFakeProjectRepo())

	_, err := uc.Create(dto.CreateProjectRequest{City: "Campinas"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectUpdate_StatusInvalido(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := usecase.NewProjectUseCase(repo)
	project, err := uc.Create(dto.CreateProjectRequest{Name: "Residencial Aurora"})
	require.NoError(t, err)

	bad := "demolida"
	_, err = uc.Update(project.ID, dto.UpdateProjectRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	done := entity.ProjectDone
	updated, err := uc.Update(project.ID, dto.UpdateProjectRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectDone, updated.Status)
}

func TestProjectList_FiltraPorStatus(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := usecase.NewProjectUseCase(repo)
	a, err := uc.Create(dto.CreateProjectRequest{Name: "Obra A"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProjectRequest{Name: "Obra B"})
	require.NoError(t, err)

	paused := entity.ProjectPaused
	_, err = uc.Update(a.ID, dto.UpdateProjectRequest{Status: &paused})
	require.NoError(t, err)

	resp, err := uc.List(entity.ProjectPaused, 50, 0)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Obra A", resp.Items[0].Name)

	_, err = uc.List("demolida", 50, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
