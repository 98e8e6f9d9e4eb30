package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DanRulev/vocabquiz/internal/config"
	"github.com/DanRulev/vocabquiz/internal/models"
	"github.com/DanRulev/vocabquiz/internal/repository"
	mock_repository "github.com/DanRulev/vocabquiz/internal/repository/mock"
	"github.com/DanRulev/vocabquiz/internal/storage/db"
	"github.com/golang/mock/gomock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.InitDB(config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "quiz.db"),
		Cfg:    config.DBCfg{MaxOpenConns: 4, MaxIdleConns: 4},
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

func newTestRepository(t *testing.T) (repository.Repository, *sqlx.DB) {
	t.Helper()

	database := newTestDB(t)
	return repository.NewRepository(repository.TxDB{DB: database}), database
}

func newWordsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockDBI)) *repository.WordsR {
	t.Helper()

	db := mock_repository.NewMockDBI(ctrl)
	db.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
	if setupMock != nil {
		setupMock(db)
	}

	return repository.NewWordsRepository(db)
}

func TestWordsR_AddWordAndList(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	firstID, err := repo.AddWord(ctx, models.Word{UserID: 1, Source: "apple", Target: "olma"})
	require.NoError(t, err)
	secondID, err := repo.AddWord(ctx, models.Word{UserID: 1, Source: "book", Target: "kitob"})
	require.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	_, err = repo.AddWord(ctx, models.Word{UserID: 2, Source: "water", Target: "suv"})
	require.NoError(t, err)

	words, err := repo.Words(ctx, 1)
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, secondID, words[0].ID)
	assert.Equal(t, "book", words[0].Source)
	assert.Equal(t, "kitob", words[0].Target)
	assert.Equal(t, int64(1), words[0].UserID)
	assert.False(t, words[0].CreatedAt.IsZero())

	assert.Equal(t, firstID, words[1].ID)
	assert.Equal(t, "apple", words[1].Source)
	assert.Equal(t, "olma", words[1].Target)
}

func TestWordsR_AddWordKeepsSingleUser(t *testing.T) {
	t.Parallel()

	repo, database := newTestRepository(t)
	ctx := context.Background()

	for _, w := range []string{"one", "two", "three"} {
		_, err := repo.AddWord(ctx, models.Word{UserID: 42, Source: w, Target: w})
		require.NoError(t, err)
	}

	var users int
	require.NoError(t, database.Get(&users, `SELECT COUNT(*) FROM users WHERE user_id = ?`, 42))
	assert.Equal(t, 1, users)

	total, err := repo.CountWords(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestWordsR_AddWordAcceptsEmptyText(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.AddWord(ctx, models.Word{UserID: 5})
	require.NoError(t, err)

	words, err := repo.Words(ctx, 5)
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, id, words[0].ID)
	assert.Empty(t, words[0].Source)
	assert.Empty(t, words[0].Target)
}

func TestWordsR_WordsUnknownUser(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	words, err := repo.Words(context.Background(), 999)
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)

	total, err := repo.CountWords(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestWordsR_DeleteWord(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	keepID, err := repo.AddWord(ctx, models.Word{UserID: 1, Source: "sun", Target: "quyosh"})
	require.NoError(t, err)
	dropID, err := repo.AddWord(ctx, models.Word{UserID: 1, Source: "moon", Target: "oy"})
	require.NoError(t, err)

	t.Run("wrong owner", func(t *testing.T) {
		err := repo.DeleteWord(ctx, dropID, 2)
		require.ErrorIs(t, err, repository.ErrWordNotFound)

		total, err := repo.CountWords(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := repo.DeleteWord(ctx, dropID+100, 1)
		require.ErrorIs(t, err, repository.ErrWordNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, repo.DeleteWord(ctx, dropID, 1))

		words, err := repo.Words(ctx, 1)
		require.NoError(t, err)
		require.Len(t, words, 1)
		assert.Equal(t, keepID, words[0].ID)

		err = repo.DeleteWord(ctx, dropID, 1)
		require.ErrorIs(t, err, repository.ErrWordNotFound)
	})
}

func TestTxDB_InTxRollsBack(t *testing.T) {
	t.Parallel()

	database := newTestDB(t)
	txdb := repository.TxDB{DB: database}
	ctx := context.Background()

	errBoom := errors.New("boom")
	err := txdb.InTx(ctx, func(tx repository.QueryI) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (user_id) VALUES (?)`, 77)
		require.NoError(t, err)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	var users int
	require.NoError(t, database.Get(&users, `SELECT COUNT(*) FROM users`))
	assert.Zero(t, users)

	err = txdb.InTx(ctx, func(tx repository.QueryI) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO users (user_id) VALUES (?)`, 77)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, database.Get(&users, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, users)
}

func TestWordsR_AddWordErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    func(*gomock.Controller, *mock_repository.MockDBI)
	}{
		{
			name: "begin tx fails",
			f: func(_ *gomock.Controller, mdb *mock_repository.MockDBI) {
				mdb.EXPECT().InTx(gomock.Any(), gomock.Any()).Return(errors.New("tx error"))
			},
		},
		{
			name: "ensure user fails",
			f: func(ctrl *gomock.Controller, mdb *mock_repository.MockDBI) {
				tx := mock_repository.NewMockQueryI(ctrl)
				tx.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
				tx.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))

				mdb.EXPECT().InTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(repository.QueryI) error) error {
						return fn(tx)
					})
			},
		},
		{
			name: "insert word fails",
			f: func(ctrl *gomock.Controller, mdb *mock_repository.MockDBI) {
				tx := mock_repository.NewMockQueryI(ctrl)
				tx.EXPECT().Rebind(gomock.Any()).DoAndReturn(func(q string) string { return q }).AnyTimes()
				tx.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(driver.RowsAffected(1), nil)
				tx.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert error"))

				mdb.EXPECT().InTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(repository.QueryI) error) error {
						return fn(tx)
					})
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, func(mdb *mock_repository.MockDBI) { tt.f(ctrl, mdb) })

			id, err := repo.AddWord(context.Background(), models.Word{UserID: 1, Source: "a", Target: "b"})
			require.Error(t, err)
			assert.Zero(t, id)
		})
	}
}

func TestWordsR_DeleteWordErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockDBI)
		wantErr error
	}{
		{
			name: "exec error",
			f: func(mdb *mock_repository.MockDBI) {
				mdb.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
		},
		{
			name: "no rows affected",
			f: func(mdb *mock_repository.MockDBI) {
				mdb.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(driver.RowsAffected(0), nil)
			},
			wantErr: repository.ErrWordNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newWordsMock(t, ctrl, tt.f)

			err := repo.DeleteWord(context.Background(), 10, 1)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWordsR_QueryErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newWordsMock(t, ctrl, func(mdb *mock_repository.MockDBI) {
		mdb.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
		mdb.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	})

	words, err := repo.Words(context.Background(), 1)
	require.Error(t, err)
	assert.Nil(t, words)

	total, err := repo.CountWords(context.Background(), 1)
	require.Error(t, err)
	assert.Zero(t, total)
}
