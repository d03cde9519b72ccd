package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blocklords/contract-caller/common/data_type/key_value"
	"github.com/blocklords/contract-caller/log"
	"github.com/stretchr/testify/suite"
)

// Define the suite, and absorb the built-in basic suite
// functionality from testify - including a T() method which
// returns the current testing context
type TestConfigurationSuite struct {
	suite.Suite
	logger *log.Logger
}

func (suite *TestConfigurationSuite) SetupTest() {
	logger, err := log.New("test", false)
	suite.Require().NoError(err)
	suite.logger = logger
}

func (suite *TestConfigurationSuite) TestDefaults() {
	config, err := New(suite.logger, nil)
	suite.Require().NoError(err)

	suite.Require().Equal("prompt", config.GetString(PrivateKeySource))
	suite.Require().False(config.GetBool(LogDebug))
	suite.Require().Zero(config.RequestTimeout())
	suite.Require().False(config.Exist("CALLER_TEST_MISSING"))

	defaults := DefaultConfig{
		Title: "Test",
		Parameters: key_value.Empty().
			Set("CALLER_TEST_NAME", "default").
			Set("CALLER_TEST_REQUIRED", nil),
	}
	config.SetDefaults(defaults)
	suite.Require().Equal("default", config.GetString("CALLER_TEST_NAME"))
	// nil means no default value
	suite.Require().False(config.Exist("CALLER_TEST_REQUIRED"))
}

func (suite *TestConfigurationSuite) TestEnvironment() {
	suite.T().Setenv("CALLER_TEST_NAME", "from_env")
	suite.T().Setenv(RequestTimeout, "15")

	config, err := New(suite.logger, nil)
	suite.Require().NoError(err)

	// the environment variable wins over the default
	config.SetDefaults(DefaultConfig{
		Title:      "Test",
		Parameters: key_value.Empty().Set("CALLER_TEST_NAME", "default"),
	})
	suite.Require().Equal("from_env", config.GetString("CALLER_TEST_NAME"))
	suite.Require().Equal(15*time.Second, config.RequestTimeout())
}

func (suite *TestConfigurationSuite) TestEnvFile() {
	env_path := filepath.Join(suite.T().TempDir(), "caller.env")
	err := os.WriteFile(env_path, []byte("CALLER_TEST_FILE_VALUE=42\n"), 0600)
	suite.Require().NoError(err)
	defer os.Unsetenv("CALLER_TEST_FILE_VALUE")

	config, err := New(suite.logger, []string{env_path})
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(42), config.GetUint64("CALLER_TEST_FILE_VALUE"))

	_, err = New(suite.logger, []string{env_path + ".missing"})
	suite.Require().Error(err)
}

// In order for 'go test' to run this suite, we need to create
// a normal test function and pass our suite to suite.Run
func TestConfiguration(t *testing.T) {
	suite.Run(t, new(TestConfigurationSuite))
}
