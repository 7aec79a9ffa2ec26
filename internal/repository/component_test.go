//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"design-canvas-backend/internal/database/models"
	"design-canvas-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	factories     *testutils.FactorySet

	frame *models.Frame
}

func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	project := suite.factories.Project.Create()
	suite.Require().NoError(NewProjectRepository(suite.baseTestSuite.DB).Create(project))
	suite.frame = suite.factories.Frame.Create(project.ID)
	suite.Require().NoError(NewFrameRepository(suite.baseTestSuite.DB).Create(suite.frame))
}

func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ComponentRepositoryTestSuite) TestCreate() {
	component := suite.factories.Component.Create(suite.frame.ID)

	err := suite.repo.Create(component)

	suite.NoError(err)
	suite.NotZero(component.ID)
	suite.NotZero(component.CreatedAt)
	suite.Nil(component.UpdatedAt)
}

func (suite *ComponentRepositoryTestSuite) TestGetByID() {
	component := suite.factories.Component.WithType(suite.frame.ID, "pump")
	suite.NoError(suite.repo.Create(component))

	found, err := suite.repo.GetByID(component.ID)

	suite.NoError(err)
	suite.Equal("pump", found.Type)
	suite.Equal(10.0, found.X)
	suite.Equal(20.0, found.Y)
	suite.JSONEq(`{}`, string(found.Properties))
}

func (suite *ComponentRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(999)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListByFrame verifies insertion order and frame scoping
func (suite *ComponentRepositoryTestSuite) TestListByFrame() {
	first := suite.factories.Component.WithType(suite.frame.ID, "valve")
	second := suite.factories.Component.WithType(suite.frame.ID, "tank")
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	other := suite.factories.Frame.Create(suite.frame.ProjectID)
	suite.Require().NoError(NewFrameRepository(suite.baseTestSuite.DB).Create(other))
	suite.NoError(suite.repo.Create(suite.factories.Component.Create(other.ID)))

	components, err := suite.repo.ListByFrame(suite.frame.ID)

	suite.NoError(err)
	suite.Len(components, 2)
	suite.Equal("valve", components[0].Type)
	suite.Equal("tank", components[1].Type)
}

func (suite *ComponentRepositoryTestSuite) TestUpdate() {
	component := suite.factories.Component.Create(suite.frame.ID)
	suite.NoError(suite.repo.Create(component))

	now := time.Now().UTC()
	component.X = 99
	component.UpdatedAt = &now

	suite.NoError(suite.repo.Update(component))

	found, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal(99.0, found.X)
	suite.Equal(20.0, found.Y)
	suite.NotNil(found.UpdatedAt)
}

func (suite *ComponentRepositoryTestSuite) TestDelete() {
	component := suite.factories.Component.Create(suite.frame.ID)
	suite.NoError(suite.repo.Create(component))

	deleted, err := suite.repo.Delete(component.ID)
	suite.NoError(err)
	suite.True(deleted)

	deleted, err = suite.repo.Delete(component.ID)
	suite.NoError(err)
	suite.False(deleted)
}

func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
