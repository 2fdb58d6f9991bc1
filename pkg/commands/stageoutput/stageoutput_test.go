// pkg/commands/stageoutput/stageoutput_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), go-git repository
// PURPOSE: Test the standalone stage command

package stageoutput

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/ccsync/pkg/commands/internal"
	"github.com/arthur-debert/ccsync/pkg/errors"
	"github.com/arthur-debert/ccsync/pkg/testutil"
	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStager struct{ err error }

func (f fakeStager) Stage(context.Context, string) error { return f.err }

func TestStageOutput_GoGit(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	repo, err := git.PlainInit(env.Root, false)
	require.NoError(t, err)
	testutil.CreateFileT(t, env.FS, env.TargetPath("api.py"), "x\n")

	result, err := StageOutput(context.Background(), StageOutputOptions{
		Options: internal.Options{
			Root:      env.Root,
			Overrides: map[string]interface{}{"stage.backend": "gogit"},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Staged)
	assert.Equal(t, "gogit", result.Backend)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.Equal(t, git.Added, status.File("custom_components/hoymiles_dtu_pro/api.py").Staging)
}

func TestStageOutput_FailureIsReturned(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	result, err := StageOutput(context.Background(), StageOutputOptions{
		Options: internal.Options{Root: env.Root},
		Stager:  fakeStager{err: errors.New(errors.ErrStage, "git add failed")},
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStage))
	require.NotNil(t, result)
	assert.False(t, result.Staged)
	assert.Equal(t, "custom_components", result.Path)
}

func TestStageOutput_ConfigError(t *testing.T) {
	_, err := StageOutput(context.Background(), StageOutputOptions{
		Options: internal.Options{Root: t.TempDir(), ConfigFile: "missing.toml"},
		Stager:  fakeStager{err: stderrors.New("unreachable")},
	})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}
