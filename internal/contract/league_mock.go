package contract

import (
	"context"

	"github.com/clutchsports/clutchvault/schema"
	"github.com/stretchr/testify/mock"
)

// MockLeagueClient is a mock implementation of LeagueClient for testing.
type MockLeagueClient struct {
	mock.Mock
}

var _ LeagueClient = &MockLeagueClient{} // Compile-time check

// GetHistory implements the LeagueClient interface.
func (m *MockLeagueClient) GetHistory(ctx context.Context, leagueID string) (map[int][]schema.TeamEntry, error) {
	ret := m.Called(ctx, leagueID)
	history, _ := ret.Get(0).(map[int][]schema.TeamEntry)
	return history, ret.Error(1)
}

// GetOwnerAliases implements the LeagueClient interface.
func (m *MockLeagueClient) GetOwnerAliases(ctx context.Context, leagueID string) ([]schema.OwnerAlias, error) {
	ret := m.Called(ctx, leagueID)
	aliases, _ := ret.Get(0).([]schema.OwnerAlias)
	return aliases, ret.Error(1)
}

// SaveOwnerAliases implements the LeagueClient interface.
func (m *MockLeagueClient) SaveOwnerAliases(ctx context.Context, leagueID string, aliases []schema.OwnerAlias) error {
	ret := m.Called(ctx, leagueID, aliases)
	return ret.Error(0)
}
