package tags

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/shlex"
	"github.com/schmitthub/tagsweep/internal/cmdutil"
	"github.com/schmitthub/tagsweep/internal/config"
	"github.com/schmitthub/tagsweep/internal/iostreams/iostreamstest"
	"github.com/schmitthub/tagsweep/internal/registry"
	"github.com/schmitthub/tagsweep/internal/registry/registrytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdTags(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   string
		wantJSON  bool
		wantQuiet bool
	}{
		{
			name:  "no flags",
			input: "myregistry myapp",
		},
		{
			name:     "json",
			input:    "myregistry myapp --json",
			wantJSON: true,
		},
		{
			name:      "quiet",
			input:     "myregistry myapp -q",
			wantQuiet: true,
		},
		{
			name:    "quiet and json are mutually exclusive",
			input:   "myregistry myapp -q --json",
			wantErr: "mutually exclusive",
		},
		{
			name:    "missing arguments",
			input:   "myregistry",
			wantErr: "requires exactly 2 arguments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tio := iostreamstest.New()
			f := &cmdutil.Factory{
				IOStreams: tio.IOStreams,
				Settings: func() (*config.Settings, error) {
					return config.DefaultSettings(), nil
				},
			}

			var gotOpts *Options
			cmd := NewCmdTags(f, func(_ context.Context, opts *Options) error {
				gotOpts = opts
				return nil
			})

			argv, err := shlex.Split(tt.input)
			require.NoError(t, err)
			cmd.SetArgs(argv)
			cmd.SetIn(&bytes.Buffer{})
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			_, err = cmd.ExecuteC()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, gotOpts)
			assert.Equal(t, tt.wantJSON, gotOpts.JSON)
			assert.Equal(t, tt.wantQuiet, gotOpts.Quiet)
		})
	}
}

func runTags(t *testing.T, fake *registrytest.FakeClient, opts *Options) (*iostreamstest.TestIOStreams, error) {
	t.Helper()
	tio := iostreamstest.New()
	opts.IOStreams = tio.IOStreams
	opts.Client = func(_, _ string, _ bool) (registry.Client, error) {
		return fake, nil
	}
	opts.Registry = "myregistry"
	opts.Repository = "myapp"
	err := tagsRun(context.Background(), opts)
	return tio, err
}

func TestTagsRun_Table(t *testing.T) {
	fake := registrytest.New("latest", "2.0.0", "1.9.9", "deadbeef", "1.2")

	tio, err := runTags(t, fake, &Options{KeepSemver: 1, KeepBuild: 5})
	require.NoError(t, err)

	out := tio.OutBuf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "header plus one line per tag")
	assert.Contains(t, lines[0], "TAG")
	assert.Contains(t, out, "latest")
	assert.Contains(t, out, "semver")
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "none")

	// 1.9.9 is past the keep-semver limit, 1.2 is uncategorized.
	for _, line := range lines[1:] {
		if strings.Contains(line, "1.9.9") || strings.Contains(line, "1.2") {
			assert.Contains(t, line, "delete")
		}
	}
}

func TestTagsRun_Quiet(t *testing.T) {
	fake := registrytest.New("latest", "2.0.0", "deadbeef")

	tio, err := runTags(t, fake, &Options{KeepSemver: 5, KeepBuild: 5, Quiet: true})
	require.NoError(t, err)

	assert.Equal(t, "latest\n2.0.0\ndeadbeef\n", tio.OutBuf.String())
}

func TestTagsRun_JSON(t *testing.T) {
	fake := registrytest.New("latest", "1.9.5")

	tio, err := runTags(t, fake, &Options{KeepSemver: 5, KeepBuild: 5, JSON: true})
	require.NoError(t, err)

	var rows []struct {
		Tag      string `json:"tag"`
		Category string `json:"category"`
		Action   string `json:"action"`
	}
	require.NoError(t, json.Unmarshal([]byte(tio.OutBuf.String()), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "latest", rows[0].Tag)
	assert.Equal(t, "latest", rows[0].Category)
	assert.Equal(t, "keep", rows[0].Action)
	assert.Equal(t, "semver", rows[1].Category)
	assert.Equal(t, "keep", rows[1].Action)
}

func TestTagsRun_Empty(t *testing.T) {
	fake := registrytest.New()

	tio, err := runTags(t, fake, &Options{KeepSemver: 5, KeepBuild: 5})
	require.NoError(t, err)
	assert.Contains(t, tio.ErrBuf.String(), "No tags found.")
}

func TestTagsRun_ListError(t *testing.T) {
	fake := registrytest.New()
	fake.ListErr = errors.New("unauthorized")

	_, err := runTags(t, fake, &Options{KeepSemver: 5, KeepBuild: 5})
	require.Error(t, err, "tags is read-only, so listing failures surface")
	assert.Contains(t, err.Error(), "listing tags for myregistry/myapp")
}
