package security

import (
	"testing"

	"github.com/blocklords/contract-caller/configuration"
	"github.com/blocklords/contract-caller/log"
	"github.com/blocklords/contract-caller/security/prompt"
	"github.com/blocklords/contract-caller/security/vault"
	"github.com/stretchr/testify/suite"
)

// Define the suite, and absorb the built-in basic suite
// functionality from testify - including a T() method which
// returns the current testing context
type TestSecuritySuite struct {
	suite.Suite
	logger *log.Logger
}

func (suite *TestSecuritySuite) SetupTest() {
	logger, err := log.New("test", false)
	suite.Require().NoError(err)
	suite.logger = logger
}

func (suite *TestSecuritySuite) newConfig() *configuration.Config {
	config, err := configuration.New(suite.logger, nil)
	suite.Require().NoError(err)
	return config
}

func (suite *TestSecuritySuite) TestPrompt() {
	source, err := NewKeySource(suite.newConfig(), suite.logger)
	suite.Require().NoError(err)
	suite.Require().IsType(&prompt.Prompt{}, source)
}

func (suite *TestSecuritySuite) TestVault() {
	suite.T().Setenv(configuration.PrivateKeySource, VaultSource)

	// the app role is required
	_, err := NewKeySource(suite.newConfig(), suite.logger)
	suite.Require().Error(err)

	suite.T().Setenv(vault.ApproleRoleId, "role")
	suite.T().Setenv(vault.ApproleSecretId, "secret")
	source, err := NewKeySource(suite.newConfig(), suite.logger)
	suite.Require().NoError(err)
	suite.Require().IsType(&vault.Vault{}, source)
}

func (suite *TestSecuritySuite) TestUnknown() {
	suite.T().Setenv(configuration.PrivateKeySource, "keystore")

	_, err := NewKeySource(suite.newConfig(), suite.logger)
	suite.Require().Error(err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestSecurity(t *testing.T) {
	suite.Run(t, new(TestSecuritySuite))
}
