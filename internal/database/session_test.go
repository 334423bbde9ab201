package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentIdentityLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx := context.Background()

	identity, err := db.CurrentIdentity(ctx)
	require.NoError(t, err)
	assert.Empty(t, identity)

	require.NoError(t, db.SetCurrentIdentity(ctx, "alice"))
	identity, err = db.CurrentIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)

	// The marker is a single slot; a second login replaces it.
	require.NoError(t, db.SetCurrentIdentity(ctx, "bob"))
	identity, err = db.CurrentIdentity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob", identity)

	require.NoError(t, db.ClearCurrentIdentity(ctx))
	identity, err = db.CurrentIdentity(ctx)
	require.NoError(t, err)
	assert.Empty(t, identity)
}

func TestBackupRoundTrip(t *testing.T) {
	// Backup needs a file-backed database.
	dir := t.TempDir()
	logger := testLogger()
	dbPath := dir + "/darshan.db"

	db, err := NewDB(dbPath, logger)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PutUser(context.Background(), "alice", "pw1"))

	svc := NewBackupService(dbPath, backupConfig(dir+"/backups"), logger)
	path, err := svc.PerformBackup()
	require.NoError(t, err)

	restored, err := NewDB(path, logger)
	require.NoError(t, err)
	defer restored.Close()

	users, err := restored.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pw1", users["alice"])
}
