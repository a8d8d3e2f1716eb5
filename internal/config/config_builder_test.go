package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstNonZeroWins verifies that earlier sources take precedence
// and later sources only fill zero fields.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:1", APIPrefix: "/v1"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/v1", cfg.Server.APIPrefix)
}

// TestBuild_DefaultsFillGaps verifies that the defaults layer only fills
// fields nobody else set.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Limits: Limits{MaxUsers: 3}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limits.MaxUsers)
	assert.Equal(t, DefaultMaxDirectoriesPerUser, cfg.Limits.MaxDirectoriesPerUser)
	assert.Equal(t, DefaultMaxStatesPerDirectory, cfg.Limits.MaxStatesPerDirectory)
	assert.Equal(t, DefaultAPIPrefix, cfg.Server.APIPrefix)
	assert.Equal(t, DefaultSchema, cfg.Storage.DB.Schema)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultClientTokenFile, cfg.Client.TokenFile)
}

// TestBuild_ValidationFails verifies that the merged config is validated.
func TestBuild_ValidationFails(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "negative limit",
			cfg:     &StructuredConfig{Limits: Limits{MaxUsers: -1}},
			wantErr: ErrInvalidLimitsConfigs,
		},
		{
			name:    "prefix without slash",
			cfg:     &StructuredConfig{Server: Server{APIPrefix: "api"}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "root prefix",
			cfg:     &StructuredConfig{Server: Server{APIPrefix: "/"}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "schema with quote",
			cfg:     &StructuredConfig{Storage: Storage{DB: DB{Schema: `bad"schema`}}},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_API_PREFIX", "/env")
	t.Setenv("LIMITS_MAX_STATES_PER_DIRECTORY", "12")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/env", b.configs[0].Server.APIPrefix)
	assert.Equal(t, 12, b.configs[0].Limits.MaxStatesPerDirectory)
}

// TestWithEnv_SetsErrorOnInvalidValue verifies that parse failures are kept
// on the builder instead of appending a config.
func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "forever")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies the fluent interface and parsing.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-schema", "flags"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flags", b.configs[0].Storage.DB.Schema)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that a bad argument list
// poisons the builder.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	_, err := b.build()
	assert.Error(t, err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Server.APIPrefix = "/json"
	payload.Server.RequestTimeout = Duration(15 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json", b.configs[1].Server.APIPrefix)
	assert.Equal(t, 15*time.Second, b.configs[1].Server.RequestTimeout)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that when multiple configs have a
// JSONFilePath, the one from the highest-priority source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Storage.DB.Schema = "first"
	firstPath := writeTempJSONConfig(t, first)

	second := StructuredJSONConfig{}
	second.Storage.DB.Schema = "second"
	secondPath := writeTempJSONConfig(t, second)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: firstPath},
		&StructuredConfig{JSONFilePath: secondPath},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].Storage.DB.Schema)
}

// ── GetClientConfig ──────────────────────────────────────────────────────────

// TestGetClientConfig_EnvOverDefaults verifies that the client config merges
// env vars with defaults and ignores process arguments.
func TestGetClientConfig_EnvOverDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CLIENT_SERVER_URL", "http://backup.local/api")

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://backup.local/api", cfg.Client.ServerURL)
	assert.Equal(t, DefaultClientTokenFile, cfg.Client.TokenFile)
	assert.Equal(t, DefaultClientRequestTimeout, cfg.Client.RequestTimeout)
}
