package services_test

import (
	"testing"

	"planner/backend/internal/models"
	"planner/backend/internal/services"
	"planner/backend/internal/store"

	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	store    *store.Store
	areas    *services.AreaServiceImpl
	projects *services.ProjectServiceImpl
	tasks    *services.TaskServiceImpl
	subtasks *services.SubtaskServiceImpl
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.store = openTestStore(suite.T())
	suite.areas = services.NewAreaService(suite.store, nil)
	suite.projects = services.NewProjectService(suite.store, nil)
	suite.tasks = services.NewTaskService(suite.store)
	suite.subtasks = services.NewSubtaskService(suite.store, nil)
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.store.Close()
}

func (suite *ProjectServiceTestSuite) TestCompletionEmptyProjectIsFull() {
	project, err := suite.projects.Create("Empty", nil)
	suite.Require().NoError(err)

	completion, err := suite.projects.Completion(project.ID)
	suite.Require().NoError(err)
	suite.Equal(100.0, completion)
}

func (suite *ProjectServiceTestSuite) TestCompletionRatio() {
	project, err := suite.projects.Create("Launch", nil)
	suite.Require().NoError(err)

	var ids []uint
	for _, title := range []string{"a", "b", "c", "d"} {
		task, err := suite.tasks.Create(models.Task{Title: title, ProjectID: &project.ID})
		suite.Require().NoError(err)
		ids = append(ids, task.ID)
	}

	completion, err := suite.projects.Completion(project.ID)
	suite.Require().NoError(err)
	suite.Equal(0.0, completion)

	_, err = suite.tasks.MarkComplete(ids[0])
	suite.Require().NoError(err)

	completion, err = suite.projects.Completion(project.ID)
	suite.Require().NoError(err)
	suite.Equal(25.0, completion)
}

func (suite *ProjectServiceTestSuite) TestListIncludesCompletion() {
	project, err := suite.projects.Create("Launch", nil)
	suite.Require().NoError(err)
	_, err = suite.projects.Create("Idle", nil)
	suite.Require().NoError(err)

	task, err := suite.tasks.Create(models.Task{Title: "Only task", ProjectID: &project.ID})
	suite.Require().NoError(err)

	listing, err := suite.projects.List()
	suite.Require().NoError(err)
	suite.Require().Len(listing, 2)

	byName := make(map[string]services.ProjectWithCompletion)
	for _, entry := range listing {
		byName[entry.Name] = entry
	}
	suite.Equal(0.0, byName["Launch"].Completion)
	suite.Equal(100.0, byName["Idle"].Completion)

	// Completion must be recomputed, not remembered.
	_, err = suite.tasks.MarkComplete(task.ID)
	suite.Require().NoError(err)

	listing, err = suite.projects.List()
	suite.Require().NoError(err)
	for _, entry := range listing {
		suite.Equal(100.0, entry.Completion)
	}
}

func (suite *ProjectServiceTestSuite) TestListByArea() {
	area, err := suite.areas.Create("Work")
	suite.Require().NoError(err)

	_, err = suite.projects.Create("In area", &area.ID)
	suite.Require().NoError(err)
	_, err = suite.projects.Create("Unassigned", nil)
	suite.Require().NoError(err)

	projects, err := suite.projects.ListByArea(area.ID)
	suite.Require().NoError(err)
	suite.Require().Len(projects, 1)
	suite.Equal("In area", projects[0].Name)
}

// Mirrors the full create -> complete -> cascade walkthrough end to end.
func (suite *ProjectServiceTestSuite) TestAreaLifecycle() {
	area, err := suite.areas.Create("Work")
	suite.Require().NoError(err)

	project, err := suite.projects.Create("Launch", &area.ID)
	suite.Require().NoError(err)

	task, err := suite.tasks.Create(models.Task{Title: "Write spec", ProjectID: &project.ID})
	suite.Require().NoError(err)
	suite.Nil(task.Category)

	subtask, err := suite.subtasks.Create(task.ID, "Draft", false)
	suite.Require().NoError(err)

	completion, err := suite.projects.Completion(project.ID)
	suite.Require().NoError(err)
	suite.Equal(0.0, completion)

	_, err = suite.tasks.MarkComplete(task.ID)
	suite.Require().NoError(err)

	completion, err = suite.projects.Completion(project.ID)
	suite.Require().NoError(err)
	suite.Equal(100.0, completion)

	suite.Require().NoError(suite.areas.Delete(area.ID))

	_, err = suite.projects.Get(project.ID)
	suite.ErrorIs(err, store.ErrNotFound)
	_, err = suite.tasks.Get(task.ID)
	suite.ErrorIs(err, store.ErrNotFound)
	subtasks, err := suite.store.ListSubtasksByTask(task.ID)
	suite.Require().NoError(err)
	suite.Empty(subtasks)
	_, err = suite.store.GetSubtask(subtask.ID)
	suite.ErrorIs(err, store.ErrNotFound)
}

func (suite *ProjectServiceTestSuite) TestSubtaskCreateRequiresTask() {
	_, err := suite.subtasks.Create(777, "orphan", false)
	suite.ErrorIs(err, store.ErrNotFound)

	subtasks, err := suite.store.ListSubtasksByTask(777)
	suite.Require().NoError(err)
	suite.Empty(subtasks)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
