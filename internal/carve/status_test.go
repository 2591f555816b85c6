package carve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/carve/internal/carve/state"
	"go.abhg.dev/carve/internal/git"
	"go.abhg.dev/carve/internal/silog"
	"go.uber.org/mock/gomock"
)

func TestHandler_Status(t *testing.T) {
	t.Run("Idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockStore := NewMockStore(ctrl)
		mockStore.EXPECT().Load().Return(nil, nil)

		handler := &Handler{
			Log:        silog.Nop(),
			Repository: NewMockGitRepository(ctrl),
			Worktree:   NewMockGitWorktree(ctrl),
			Store:      mockStore,
			Identity:   GitCarve,
		}

		report, err := handler.Status(t.Context())
		require.NoError(t, err)
		assert.False(t, report.InProgress)
	})

	t.Run("AtBase", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		originalHash := git.Hash("abc123")
		parentHash := git.Hash("def456")
		startedAt := time.Date(2025, 7, 19, 9, 0, 0, 0, time.UTC)

		mockStore := NewMockStore(ctrl)
		mockStore.EXPECT().
			Load().
			Return(&state.Session{
				Branch:    "feature",
				Count:     3,
				Shadow:    "carve/feature",
				StartedAt: startedAt,
			}, nil)

		mockRepo := NewMockGitRepository(ctrl)
		mockRepo.EXPECT().
			PeelToCommit(t.Context(), "feature").
			Return(originalHash, nil)
		mockRepo.EXPECT().
			CommitSubject(t.Context(), "feature").
			Return("Add feature", nil)
		mockRepo.EXPECT().
			PeelToCommit(t.Context(), "feature^").
			Return(parentHash, nil)

		staged := []git.FileStatus{
			{Status: "A", Path: "lexer.go"},
			{Status: "M", Path: "parser.go"},
		}

		mockWorktree := NewMockGitWorktree(ctrl)
		mockWorktree.EXPECT().
			Head(t.Context()).
			Return(parentHash, nil)
		mockWorktree.EXPECT().
			DiffIndex(t.Context(), parentHash.String()).
			Return(staged, nil)

		handler := &Handler{
			Log:        silog.Nop(),
			Repository: mockRepo,
			Worktree:   mockWorktree,
			Store:      mockStore,
			Identity:   GitCarve,
		}

		report, err := handler.Status(t.Context())
		require.NoError(t, err)
		assert.Equal(t, &StatusReport{
			InProgress: true,
			Branch:     "feature",
			Tip:        originalHash,
			TipSubject: "Add feature",
			Slices:     2,
			AtBase:     true,
			Staged:     staged,
			StartedAt:  startedAt,
		}, report)
	})

	t.Run("HeadMoved", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockStore := NewMockStore(ctrl)
		mockStore.EXPECT().
			Load().
			Return(&state.Session{
				Branch: "feature",
				Count:  2,
				Shadow: "carve/feature",
			}, nil)

		mockRepo := NewMockGitRepository(ctrl)
		mockRepo.EXPECT().
			PeelToCommit(t.Context(), "feature").
			Return(git.Hash("abc123"), nil)
		mockRepo.EXPECT().
			CommitSubject(t.Context(), "feature").
			Return("Add feature", nil)
		mockRepo.EXPECT().
			PeelToCommit(t.Context(), "feature^").
			Return(git.Hash("def456"), nil)

		mockWorktree := NewMockGitWorktree(ctrl)
		mockWorktree.EXPECT().
			Head(t.Context()).
			Return(git.Hash("aaa111"), nil)

		handler := &Handler{
			Log:        silog.Nop(),
			Repository: mockRepo,
			Worktree:   mockWorktree,
			Store:      mockStore,
			Identity:   GitCarve,
		}

		report, err := handler.Status(t.Context())
		require.NoError(t, err)
		assert.True(t, report.InProgress)
		assert.False(t, report.AtBase)
		assert.Empty(t, report.Staged)
		assert.Equal(t, 1, report.Slices)
	})
}
