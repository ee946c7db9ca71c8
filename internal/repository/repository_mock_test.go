package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todovault-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errDisk = errors.New("disk I/O error")

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestDeleteWithTasks_RollsBackWhenTaskDeleteFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskListRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasklists` WHERE id = ?")).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE list_id = ?")).
		WithArgs("l1").
		WillReturnError(errDisk)
	mock.ExpectRollback()

	err := repo.DeleteWithTasks(context.Background(), "l1")

	assert.ErrorIs(t, err, errDisk)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWithTasks_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskListRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasklists` WHERE id = ?")).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE list_id = ?")).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteWithTasks(context.Background(), "l1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_PropagatesStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE id = ?")).
		WillReturnError(errDisk)

	task, err := NewTaskRepository(db).FindByID(context.Background(), "t1")

	assert.Nil(t, task)
	assert.ErrorIs(t, err, errDisk)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTask_PropagatesConstraintViolation(t *testing.T) {
	db, mock := newMockDB(t)
	constraint := errors.New("UNIQUE constraint failed: tasks.id")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tasks`")).
		WillReturnError(constraint)

	err := NewTaskRepository(db).Create(context.Background(), models.NewTask("l1", "t", "", models.PriorityNone, models.StatusTodo))

	assert.ErrorIs(t, err, constraint)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateField_WritesOrdinal(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `tasks` SET `priority`=? WHERE id = ?")).
		WithArgs(int64(3), "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewTaskRepository(db).UpdateField(context.Background(), "t1", TaskFieldPriority, models.PriorityHigh)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
