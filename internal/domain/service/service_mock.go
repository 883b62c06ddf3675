package service

import (
	"testing"

	"github.com/diegoclair/slack-cooldown-bot/internal/database"
	"github.com/diegoclair/slack-cooldown-bot/internal/domain/contract"
	"github.com/diegoclair/slack-cooldown-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// serviceTestDeps wires the service layer against a real in-memory store.
// The store behavior (upsert conflicts, claim races, json columns) is part
// of what the service tests exercise; only the Slack transport is mocked.
type serviceTestDeps struct {
	dm              contract.DataManager
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestDeps(t *testing.T) (deps serviceTestDeps, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	deps = serviceTestDeps{
		dm:              database.NewInstance(db),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}
	require.NotNil(t, deps.dm)

	return
}
