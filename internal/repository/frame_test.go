//go:build integration
// +build integration

package repository

import (
	"testing"

	"design-canvas-backend/internal/database/models"
	"design-canvas-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// FrameRepositoryTestSuite tests the FrameRepository
type FrameRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *FrameRepository
	projectRepo   *ProjectRepository
	factories     *testutils.FactorySet
}

func (suite *FrameRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewFrameRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *FrameRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *FrameRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *FrameRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FrameRepositoryTestSuite) createProject() *models.Project {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.projectRepo.Create(project))
	return project
}

func (suite *FrameRepositoryTestSuite) TestCreate() {
	project := suite.createProject()

	frame := suite.factories.Frame.Create(project.ID)
	err := suite.repo.Create(frame)

	suite.NoError(err)
	suite.NotZero(frame.ID)
	suite.Equal(project.ID, frame.ProjectID)
	suite.Nil(frame.UpdatedAt)
}

// TestCreateOrphan exercises the storage-level constraint directly; the
// service normally converts this case into a clean not-found beforehand.
func (suite *FrameRepositoryTestSuite) TestCreateOrphan() {
	frame := suite.factories.Frame.Create(999)
	err := suite.repo.Create(frame)
	suite.Error(err)
}

// TestGetByID verifies components are loaded with the frame
func (suite *FrameRepositoryTestSuite) TestGetByID() {
	project := suite.createProject()
	frame := suite.factories.Frame.Create(project.ID)
	suite.NoError(suite.repo.Create(frame))

	componentRepo := NewComponentRepository(suite.baseTestSuite.DB)
	suite.NoError(componentRepo.Create(suite.factories.Component.Create(frame.ID)))
	suite.NoError(componentRepo.Create(suite.factories.Component.WithType(frame.ID, "rectangle")))

	found, err := suite.repo.GetByID(frame.ID)

	suite.NoError(err)
	suite.Len(found.Components, 2)
	suite.Equal("circle", found.Components[0].Type)
	suite.Equal("rectangle", found.Components[1].Type)
}

// TestListFilter verifies the optional project scoping
func (suite *FrameRepositoryTestSuite) TestListFilter() {
	projectA := suite.createProject()
	projectB := suite.createProject()

	suite.NoError(suite.repo.Create(suite.factories.Frame.WithName(projectA.ID, "a1")))
	suite.NoError(suite.repo.Create(suite.factories.Frame.WithName(projectA.ID, "a2")))
	suite.NoError(suite.repo.Create(suite.factories.Frame.WithName(projectB.ID, "b1")))

	all, err := suite.repo.List(nil, 0, 100)
	suite.NoError(err)
	suite.Len(all, 3)

	scoped, err := suite.repo.List(&projectA.ID, 0, 100)
	suite.NoError(err)
	suite.Len(scoped, 2)
	for _, frame := range scoped {
		suite.Equal(projectA.ID, frame.ProjectID)
	}
}

// TestDeleteCascades verifies components are removed but the project survives
func (suite *FrameRepositoryTestSuite) TestDeleteCascades() {
	project := suite.createProject()
	frame := suite.factories.Frame.Create(project.ID)
	suite.NoError(suite.repo.Create(frame))

	componentRepo := NewComponentRepository(suite.baseTestSuite.DB)
	component := suite.factories.Component.Create(frame.ID)
	suite.NoError(componentRepo.Create(component))

	deleted, err := suite.repo.Delete(frame.ID)
	suite.NoError(err)
	suite.True(deleted)

	_, err = componentRepo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.projectRepo.GetByID(project.ID)
	suite.NoError(err)
}

func (suite *FrameRepositoryTestSuite) TestDeleteMissing() {
	deleted, err := suite.repo.Delete(12345)
	suite.NoError(err)
	suite.False(deleted)
}

func TestFrameRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FrameRepositoryTestSuite))
}
