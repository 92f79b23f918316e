package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskmate/taskmate-backend-go/internal/domain/access"
	"github.com/taskmate/taskmate-backend-go/internal/domain/user"
	"github.com/taskmate/taskmate-backend-go/internal/pkg/database"
	"github.com/taskmate/taskmate-backend-go/internal/repository/postgresql"
)

// TestDatabaseSetup holds the connection shared by the integration tests.
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema. The
// calling test is skipped when the variable is unset.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	require.NoError(t, postgresql.Migrate(ctx, db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	t.Cleanup(setup.Close)
	return setup
}

// TruncateAllTables removes every row except the role catalogue.
func (s *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"leave_requests",
		"leave_types",
		"tasks",
		"sub_projects",
		"projects",
		"users",
	}

	for _, table := range tables {
		if _, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

func (s *TestDatabaseSetup) Close() {
	s.DB.Close()
}

func (s *TestDatabaseSetup) createUser(t *testing.T, name string, role access.Role, reportingID, createdBy int64) user.User {
	t.Helper()

	repo := postgresql.NewUserRepository(s.DB)
	u, err := repo.Create(context.Background(), user.User{
		Name:         name,
		Email:        name + "@5nance.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
		ReportingID:  reportingID,
		CreatedBy:    createdBy,
	})
	require.NoError(t, err)
	return u
}
