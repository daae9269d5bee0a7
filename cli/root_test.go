package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm-socius/review-restaurants/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	require.NotNil(t, cmd)
	assert.Equal(t, "review-restaurants", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	commands := [][]string{
		{"serve"},
		{"migrate"},
		{"seed"},
		{"restaurants", "list"},
		{"restaurants", "add"},
		{"reviews", "add"},
		{"reviews", "purge"},
	}

	for _, path := range commands {
		t.Run(filepath.Join(path...), func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err)
			require.NotNil(t, subCmd)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(config.Config{DatabaseURI: "reviews.db"})

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dbFlag := cmd.PersistentFlags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "reviews.db", dbFlag.DefValue)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand(config.Config{Port: "9000"})
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addrFlag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Equal(t, ":9000", addrFlag.DefValue)
}

// run executes the CLI against the database at dbPath and returns stdout.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCommand(config.Config{DatabaseURI: dbPath})
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "reviews.db")
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, tempDB(t), "--format", "yaml", "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMigrate(t *testing.T) {
	dbPath := tempDB(t)

	out, err := run(t, dbPath, "migrate")
	require.NoError(t, err)
	assert.Equal(t, "Schema is up to date.\n", out)

	// Running it again against the same file is harmless.
	_, err = run(t, dbPath, "migrate")
	require.NoError(t, err)
}

func TestRestaurantsListEmpty(t *testing.T) {
	out, err := run(t, tempDB(t), "restaurants", "list")
	require.NoError(t, err)
	assert.Equal(t, "No restaurants yet.\n", out)
}

func TestSeedThenList(t *testing.T) {
	dbPath := tempDB(t)

	out, err := run(t, dbPath, "seed")
	require.NoError(t, err)
	assert.Equal(t, "Added 3 restaurants and 4 reviews.\n", out)

	out, err = run(t, dbPath, "restaurants", "list")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "restaurants_list_seeded", []byte(out))
}

func TestPurgeThenAddRestaurant(t *testing.T) {
	dbPath := tempDB(t)

	_, err := run(t, dbPath, "seed")
	require.NoError(t, err)

	out, err := run(t, dbPath, "reviews", "purge")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 4 reviews.\n", out)

	out, err = run(t, dbPath, "restaurants", "add", "--name", "  Y  ")
	require.NoError(t, err)
	assert.Equal(t, "Added restaurant Y (#4).\n", out)

	out, err = run(t, dbPath, "restaurants", "list")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "restaurants_list_purged", []byte(out))
}

func TestReviewsAddByName(t *testing.T) {
	dbPath := tempDB(t)

	_, err := run(t, dbPath, "seed")
	require.NoError(t, err)

	out, err := run(t, dbPath, "reviews", "add", "--restaurant", "Wong Kei", "--stars", "5", "--body", "Better second time.")
	require.NoError(t, err)
	assert.Equal(t, "Added review #5 for restaurant #3.\n", out)

	out, err = run(t, dbPath, "restaurants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Wong Kei (#3)")
	assert.Contains(t, out, "Average rating: 3.5")
	assert.Contains(t, out, "user105: 5/5 'Better second time.'")
}

func TestReviewsAddFailures(t *testing.T) {
	dbPath := tempDB(t)

	_, err := run(t, dbPath, "restaurants", "add", "--name", "X")
	require.NoError(t, err)

	tests := []struct {
		name     string
		args     []string
		exitCode int
		output   string
	}{
		{
			name:     "stars out of range",
			args:     []string{"reviews", "add", "--restaurant-id", "1", "--stars", "6"},
			exitCode: ExitFailure,
			output:   "Error [E001]: stars must be between 1 and 5\n",
		},
		{
			name:     "unknown restaurant id",
			args:     []string{"reviews", "add", "--restaurant-id", "99", "--stars", "3"},
			exitCode: ExitFailure,
			output:   "Error [E002]:",
		},
		{
			name:     "unknown restaurant name",
			args:     []string{"reviews", "add", "--restaurant", "Nowhere", "--stars", "3"},
			exitCode: ExitFailure,
			output:   "Error [E002]:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, dbPath, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, GetExitCode(err))
			assert.Contains(t, out, tt.output)
		})
	}

	out, err := run(t, dbPath, "restaurants", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Be the first to leave a review!")
}

func TestReviewsAddRequiresOneRestaurantFlag(t *testing.T) {
	dbPath := tempDB(t)

	_, err := run(t, dbPath, "reviews", "add", "--stars", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = run(t, dbPath, "reviews", "add", "--restaurant-id", "1", "--restaurant", "X", "--stars", "3")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRestaurantsAddValidation(t *testing.T) {
	dbPath := tempDB(t)

	out, err := run(t, dbPath, "restaurants", "add", "--name", "   ")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "Error [E001]: name is required\n", out)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Message, "add restaurant")
}

func TestJSONOutput(t *testing.T) {
	dbPath := tempDB(t)

	_, err := run(t, dbPath, "seed")
	require.NoError(t, err)

	out, err := run(t, dbPath, "--format", "json", "restaurants", "list")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   []struct {
			Name          string   `json:"name"`
			ReviewCount   int      `json:"review_count"`
			AverageRating *float64 `json:"average_rating"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "McDonald's", resp.Data[1].Name)
	assert.Equal(t, 2, resp.Data[1].ReviewCount)
	require.NotNil(t, resp.Data[1].AverageRating)
	assert.Equal(t, 4.0, *resp.Data[1].AverageRating)
}

func TestJSONErrorOutput(t *testing.T) {
	out, err := run(t, tempDB(t), "--format", "json", "reviews", "add", "--restaurant-id", "1", "--stars", "0")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "stars must be between 1 and 5", resp.Error.Message)
}

func TestOpenStoreFailure(t *testing.T) {
	// A directory cannot be opened as a database file.
	out, err := run(t, t.TempDir(), "migrate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E100]:")
}
