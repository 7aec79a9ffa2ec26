//go:build integration
// +build integration

package repository

import (
	"testing"

	"design-canvas-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate verifies id and created_at are assigned and updated_at stays null
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.NotZero(project.ID)
	suite.NotZero(project.CreatedAt)
	suite.Nil(project.UpdatedAt)
}

// TestGetByID verifies read-after-write returns the stored row
func (suite *ProjectRepositoryTestSuite) TestGetByID() {
	project := suite.factories.Project.WithName("plant-layout")
	suite.NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByID(project.ID)

	suite.NoError(err)
	suite.Equal(project.ID, found.ID)
	suite.Equal("plant-layout", found.Name)
	suite.Nil(found.UpdatedAt)
}

func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestList verifies insertion order and skip/limit paging
func (suite *ProjectRepositoryTestSuite) TestList() {
	for _, name := range []string{"first", "second", "third"} {
		suite.NoError(suite.repo.Create(suite.factories.Project.WithName(name)))
	}

	all, err := suite.repo.List(0, 100)
	suite.NoError(err)
	suite.Len(all, 3)
	suite.Equal("first", all[0].Name)
	suite.Equal("third", all[2].Name)

	page, err := suite.repo.List(1, 1)
	suite.NoError(err)
	suite.Len(page, 1)
	suite.Equal("second", page[0].Name)
}

// TestUpdate verifies a saved change round-trips
func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	project.Name = "renamed"
	suite.NoError(suite.repo.Update(project))

	found, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("renamed", found.Name)
}

// TestDelete verifies the deleted flag for existing and missing rows
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	deleted, err := suite.repo.Delete(project.ID)
	suite.NoError(err)
	suite.True(deleted)

	deleted, err = suite.repo.Delete(project.ID)
	suite.NoError(err)
	suite.False(deleted)
}

// TestDeleteCascades verifies frames and components go down with the project
func (suite *ProjectRepositoryTestSuite) TestDeleteCascades() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	frameRepo := NewFrameRepository(suite.baseTestSuite.DB)
	frame := suite.factories.Frame.Create(project.ID)
	suite.NoError(frameRepo.Create(frame))

	componentRepo := NewComponentRepository(suite.baseTestSuite.DB)
	component := suite.factories.Component.Create(frame.ID)
	suite.NoError(componentRepo.Create(component))

	deleted, err := suite.repo.Delete(project.ID)
	suite.NoError(err)
	suite.True(deleted)

	_, err = frameRepo.GetByID(frame.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = componentRepo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestExists checks the existence probe used by parent validation
func (suite *ProjectRepositoryTestSuite) TestExists() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repo.Create(project))

	exists, err := suite.repo.Exists(project.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(999)
	suite.NoError(err)
	suite.False(exists)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
