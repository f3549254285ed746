//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestClutchvaultWithMySQL tests the clutchvault CLI with a MySQL backend.
func TestClutchvaultWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "clutchvault",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/clutchvault?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CLUTCHVAULT_CACHE_BACKEND", "mysql")
	_ = os.Setenv("CLUTCHVAULT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("CLUTCHVAULT_RUNS_BACKEND", "mysql")
	_ = os.Setenv("CLUTCHVAULT_RUNS_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_RUNS_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_RUNS_DB_CONNECT") }()

	// Run clutchvault cache clear
	err = runClutchvaultCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run clutchvault runs clear
	err = runClutchvaultCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run clutchvault runs migrate (to latest)
	err = runClutchvaultCommand(t, "runs", "migrate")
	require.NoError(t, err)

	// Run clutchvault cache status
	err = runClutchvaultCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run clutchvault runs status
	err = runClutchvaultCommand(t, "runs", "status")
	require.NoError(t, err)
}

// TestClutchvaultWithPostgres tests the clutchvault CLI with a PostgreSQL backend.
func TestClutchvaultWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("CLUTCHVAULT_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("CLUTCHVAULT_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("CLUTCHVAULT_RUNS_BACKEND", "postgresql")
	_ = os.Setenv("CLUTCHVAULT_RUNS_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_RUNS_BACKEND") }()
	defer func() { _ = os.Unsetenv("CLUTCHVAULT_RUNS_DB_CONNECT") }()

	// Run clutchvault cache clear
	err = runClutchvaultCommand(t, "cache", "clear")
	require.NoError(t, err)

	// Run clutchvault runs clear
	err = runClutchvaultCommand(t, "runs", "clear")
	require.NoError(t, err)

	// Run clutchvault runs migrate (to latest)
	err = runClutchvaultCommand(t, "runs", "migrate")
	require.NoError(t, err)

	// Run clutchvault cache status
	err = runClutchvaultCommand(t, "cache", "status")
	require.NoError(t, err)

	// Run clutchvault runs status
	err = runClutchvaultCommand(t, "runs", "status")
	require.NoError(t, err)
}

func runClutchvaultCommand(t *testing.T, args ...string) error {
	binaryPath := getClutchvaultBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
