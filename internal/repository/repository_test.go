package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/todovault-api/internal/config"
	"github.com/yukikurage/todovault-api/internal/database"
	"github.com/yukikurage/todovault-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryTestSuite runs the GORM repositories against a file-backed SQLite database
type RepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	ctx   context.Context
	lists TaskListRepository
	tasks TaskRepository
}

// SetupTest runs before each test
func (suite *RepositoryTestSuite) SetupTest() {
	var err error

	suite.db, err = database.Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(suite.T().TempDir(), "Vaults", "todovault.db"),
		LogLevel: "silent",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(database.EnsureSchema(suite.db))

	suite.ctx = context.Background()
	suite.lists = NewTaskListRepository(suite.db)
	suite.tasks = NewTaskRepository(suite.db)
}

// TearDownTest runs after each test
func (suite *RepositoryTestSuite) TearDownTest() {
	suite.Require().NoError(database.Close(suite.db))
}

func (suite *RepositoryTestSuite) createList(name string) *models.TaskList {
	list := models.NewTaskList(name)
	suite.Require().NoError(suite.lists.Create(suite.ctx, list))
	return list
}

func (suite *RepositoryTestSuite) createTask(listID, name string) *models.Task {
	task := models.NewTask(listID, name, "", models.PriorityNone, models.StatusTodo)
	suite.Require().NoError(suite.tasks.Create(suite.ctx, task))
	return task
}

func (suite *RepositoryTestSuite) TestTaskList_CreateAndFind() {
	list := suite.createList("Groceries")

	found, err := suite.lists.FindByID(suite.ctx, list.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(list.ID, found.ID)
	suite.Equal("Groceries", found.Name)
}

func (suite *RepositoryTestSuite) TestTaskList_FindMissingReturnsNil() {
	found, err := suite.lists.FindByID(suite.ctx, "missing")

	suite.NoError(err)
	suite.Nil(found)
}

func (suite *RepositoryTestSuite) TestTaskList_CreateDuplicateID() {
	list := suite.createList("first")

	err := suite.lists.Create(suite.ctx, &models.TaskList{ID: list.ID, Name: "second"})

	suite.Error(err)
}

func (suite *RepositoryTestSuite) TestTaskList_ListAndCount() {
	count, err := suite.lists.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(count)

	suite.createList("a")
	suite.createList("b")

	lists, err := suite.lists.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(lists, 2)

	count, err = suite.lists.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *RepositoryTestSuite) TestTaskList_UpdateName() {
	list := suite.createList("old")

	suite.Require().NoError(suite.lists.UpdateName(suite.ctx, list.ID, "new"))

	found, err := suite.lists.FindByID(suite.ctx, list.ID)
	suite.Require().NoError(err)
	suite.Equal("new", found.Name)

	suite.NoError(suite.lists.UpdateName(suite.ctx, "missing", "ignored"))
}

func (suite *RepositoryTestSuite) TestTaskList_DeleteWithTasks() {
	list := suite.createList("doomed")
	other := suite.createList("kept")
	suite.createTask(list.ID, "one")
	suite.createTask(list.ID, "two")
	survivor := suite.createTask(other.ID, "three")

	suite.Require().NoError(suite.lists.DeleteWithTasks(suite.ctx, list.ID))

	found, err := suite.lists.FindByID(suite.ctx, list.ID)
	suite.Require().NoError(err)
	suite.Nil(found)

	count, err := suite.tasks.CountByListID(suite.ctx, list.ID)
	suite.Require().NoError(err)
	suite.Zero(count)

	task, err := suite.tasks.FindByID(suite.ctx, survivor.ID)
	suite.Require().NoError(err)
	suite.NotNil(task)

	suite.NoError(suite.lists.DeleteWithTasks(suite.ctx, "missing"))
}

func (suite *RepositoryTestSuite) TestTask_CreateAndFind() {
	list := suite.createList("work")
	task := models.NewTask(list.ID, "write report", "quarterly", models.PriorityHigh, models.StatusInProgress)
	suite.Require().NoError(suite.tasks.Create(suite.ctx, task))

	found, err := suite.tasks.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(*task, *found)
}

func (suite *RepositoryTestSuite) TestTask_CreateWithoutExistingList() {
	task := suite.createTask("no-such-list", "orphan")

	found, err := suite.tasks.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal("no-such-list", found.ListID)
}

func (suite *RepositoryTestSuite) TestTask_ListByListID() {
	list := suite.createList("home")
	suite.createTask(list.ID, "dishes")
	suite.createTask(list.ID, "laundry")
	suite.createTask("elsewhere", "unrelated")

	tasks, err := suite.tasks.ListByListID(suite.ctx, list.ID)
	suite.Require().NoError(err)
	suite.Len(tasks, 2)
	for _, task := range tasks {
		suite.Equal(list.ID, task.ListID)
	}

	tasks, err = suite.tasks.ListByListID(suite.ctx, "empty")
	suite.Require().NoError(err)
	suite.Empty(tasks)
}

func (suite *RepositoryTestSuite) TestTask_UpdateField() {
	task := suite.createTask("l", "t")

	suite.Require().NoError(suite.tasks.UpdateField(suite.ctx, task.ID, TaskFieldName, "renamed"))
	suite.Require().NoError(suite.tasks.UpdateField(suite.ctx, task.ID, TaskFieldDescription, "details"))
	suite.Require().NoError(suite.tasks.UpdateField(suite.ctx, task.ID, TaskFieldPriority, models.PriorityMedium))
	suite.Require().NoError(suite.tasks.UpdateField(suite.ctx, task.ID, TaskFieldStatus, models.StatusDone))

	found, err := suite.tasks.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal("renamed", found.Name)
	suite.Equal("details", found.Description)
	suite.Equal(models.PriorityMedium, found.Priority)
	suite.Equal(models.StatusDone, found.Status)
	suite.Equal(task.ListID, found.ListID)
}

func (suite *RepositoryTestSuite) TestTask_UpdateUnknownField() {
	task := suite.createTask("l", "t")

	err := suite.tasks.UpdateField(suite.ctx, task.ID, TaskField("list_id"), "other")

	suite.ErrorContains(err, "unknown task field")
}

func (suite *RepositoryTestSuite) TestTask_NullDescriptionReadsEmpty() {
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO tasks (id, name, description, priority, status, list_id) VALUES (?, ?, NULL, 1, 2, ?)",
		"t1", "legacy", "l1",
	).Error)

	found, err := suite.tasks.FindByID(suite.ctx, "t1")
	suite.Require().NoError(err)
	suite.Equal("", found.Description)
	suite.Equal(models.PriorityLow, found.Priority)
	suite.Equal(models.StatusDone, found.Status)
}

func (suite *RepositoryTestSuite) TestTask_OutOfRangeStoredOrdinalIsAnError() {
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO tasks (id, name, description, priority, status, list_id) VALUES (?, ?, '', 9, 0, ?)",
		"bad", "corrupt", "l1",
	).Error)

	_, err := suite.tasks.FindByID(suite.ctx, "bad")

	suite.ErrorIs(err, models.ErrInvalidPriority)
}

func (suite *RepositoryTestSuite) TestTask_Delete() {
	task := suite.createTask("l", "t")

	suite.Require().NoError(suite.tasks.Delete(suite.ctx, task.ID))

	found, err := suite.tasks.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Nil(found)

	suite.NoError(suite.tasks.Delete(suite.ctx, task.ID))
}

// TestRepositoryTestSuite runs the test suite
func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
