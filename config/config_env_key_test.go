package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cabinet/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"guard": map[string]any{
			"roleAbsentPolicy": "allow",
		},
		"loginLimit": map[string]any{
			"maxAttempts": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "GUARD_ROLEABSENTPOLICY", want: "guard.roleAbsentPolicy"},
		{envKey: "LOGINLIMIT_MAXATTEMPTS", want: "loginLimit.maxAttempts"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAMLFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`env:
  env: develop
  serviceName: cabinet
http:
  port: 8080
secretKey:
  access: yaml-access
  refresh: yaml-refresh
auth:
  bcryptCost: 12
  hashTimeout: 3s
guard:
  adminPrefix: /admin
  roleAbsentPolicy: allow
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600))

	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-access")
	t.Setenv("GUARD_ROLEABSENTPOLICY", "defer")
	t.Setenv("AUTH_BCRYPTCOST", "13")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "cabinet", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "env-access", cfg.SecretKey.Access)
	assert.Equal(t, "yaml-refresh", cfg.SecretKey.Refresh)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 13, cfg.Auth.BcryptCost)
	assert.Equal(t, 3*time.Second, cfg.Auth.HashTimeout)
	require.NotNil(t, cfg.Guard)
	assert.Equal(t, "defer", cfg.Guard.RoleAbsentPolicy)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplySectionDefaults(t *testing.T) {
	cfg := &Config{}
	applySectionDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5*time.Second, cfg.Auth.HashTimeout)
	assert.Equal(t, 4, cfg.Auth.MaxConcurrentHashes)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)

	require.NotNil(t, cfg.Guard)
	assert.Equal(t, "/admin", cfg.Guard.AdminPrefix)
	assert.Equal(t, "staff", cfg.Guard.StaffRole)
	assert.Equal(t, "/login", cfg.Guard.LoginPath)
	assert.Equal(t, "/403", cfg.Guard.ForbiddenPath)
	assert.Equal(t, constants.RoleAbsentAllow, cfg.Guard.RoleAbsentPolicy)

	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, constants.PubSubProviderNoop, cfg.PubSub.Provider)
	assert.NotNil(t, cfg.LoginLimit)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.Stock)
}

func TestApplySectionDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{HashTimeout: time.Second, MaxConcurrentHashes: 1},
		Guard: &GuardConfig{AdminPrefix: "/console", RoleAbsentPolicy: constants.RoleAbsentDefer},
	}
	applySectionDefaults(cfg)

	assert.Equal(t, time.Second, cfg.Auth.HashTimeout)
	assert.Equal(t, 1, cfg.Auth.MaxConcurrentHashes)
	assert.Equal(t, "/console", cfg.Guard.AdminPrefix)
	assert.Equal(t, constants.RoleAbsentDefer, cfg.Guard.RoleAbsentPolicy)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
