package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnemom/smoltbot/test/util"
)

// newTestClient creates a test database client backed by a per-test schema.
// Schema migration, chain objects, and cleanup are handled by the shared
// test database setup.
func newTestClient(t *testing.T) *Client {
	entClient, db := util.SetupTestDatabase(t)
	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	readiness, err := Readiness(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "ready", readiness.Status)
	assert.True(t, readiness.ChainReady, "chain function installed by migrations")
	assert.Greater(t, readiness.OpenConnections, 0)
}

func TestChainHead(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	agent, err := client.Agent.Create().
		SetID("smolt-11112222").
		SetAgentHash("1111222233334444").
		Save(ctx)
	require.NoError(t, err)

	sessionID := agent.AgentHash + "-496000"

	t.Run("genesis head is empty", func(t *testing.T) {
		tx, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()

		head, err := ChainHead(ctx, tx, agent.ID, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "", head)
	})

	t.Run("head follows the latest chained checkpoint", func(t *testing.T) {
		_, err := client.IntegrityCheckpoint.Create().
			SetID("ic-aaaa1111").
			SetAgentID(agent.ID).
			SetSessionID(sessionID).
			SetTimestamp(time.Now().UTC()).
			SetProvider("anthropic").
			SetVerdict("clear").
			SetChainHash("deadbeef").
			SetPrevChainHash("").
			Save(ctx)
		require.NoError(t, err)

		tx, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()

		head, err := ChainHead(ctx, tx, agent.ID, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", head)
	})

	t.Run("unchained checkpoints do not move the head", func(t *testing.T) {
		_, err := client.IntegrityCheckpoint.Create().
			SetID("ic-bbbb2222").
			SetAgentID(agent.ID).
			SetSessionID(sessionID).
			SetTimestamp(time.Now().UTC().Add(time.Minute)).
			SetProvider("anthropic").
			SetVerdict("clear").
			Save(ctx)
		require.NoError(t, err)

		tx, err := client.DB().BeginTx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()

		head, err := ChainHead(ctx, tx, agent.ID, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "deadbeef", head)
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "invalid DB_CONN_MAX_LIFETIME",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				os.Setenv(key, val)
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.name == "valid config with defaults" {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing password", func(t *testing.T) {
		cfg := valid
		cfg.Password = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("idle conns exceed max conns", func(t *testing.T) {
		cfg := valid
		cfg.MaxIdleConns = 20
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero max open conns", func(t *testing.T) {
		cfg := valid
		cfg.MaxOpenConns = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestReadiness_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	readiness, err := Readiness(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, readiness)

	assert.GreaterOrEqual(t, readiness.PingMs, int64(0))
	assert.Less(t, readiness.PingMs, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(readiness)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	pingMs, ok := jsonData["ping_ms"].(float64)
	require.True(t, ok, "ping_ms should be a number")
	assert.Less(t, pingMs, float64(1000000), "should be milliseconds, not nanoseconds")
}
