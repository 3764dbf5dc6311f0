package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "json", Output: "stderr"},
		Content: ContentConfig{ScriptsDir: "content/scripts", InstructionLimit: 10000},
		Pet:     PetConfig{DefaultName: "Rex", DefaultBreed: "beagle", DefaultAge: 3},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
logging:
  level: debug
  format: console
content:
  breeds_dir: content/breeds
  scripts_dir: content/scripts
  instruction_limit: 5000
pet:
  default_name: Biscuit
  default_breed: poodle
  default_age: 1
  seed: 42
`), 0644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output, "unset keys fall back to defaults")
	assert.Equal(t, "content/breeds", cfg.Content.BreedsDir)
	assert.Empty(t, cfg.Content.ConditionsDir)
	assert.Equal(t, 5000, cfg.Content.InstructionLimit)
	assert.Equal(t, "Biscuit", cfg.Pet.DefaultName)
	assert.Equal(t, "poodle", cfg.Pet.DefaultBreed)
	assert.Equal(t, 1, cfg.Pet.DefaultAge)
	assert.Equal(t, uint64(42), cfg.Pet.Seed)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "labrador", cfg.Pet.DefaultBreed)
	assert.Equal(t, 3, cfg.Pet.DefaultAge)
	assert.Zero(t, cfg.Pet.Seed)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("KENNEL_PET_DEFAULT_BREED", "akita_inu")
	t.Setenv("KENNEL_LOGGING_LEVEL", "warn")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "akita_inu", cfg.Pet.DefaultBreed)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pet:\n  default_age: 40\n"), 0644))
	_, err := Load(path)
	assert.ErrorContains(t, err, "pet.default_age")
}

func TestValidateLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.ErrorContains(t, cfg.Validate(), "logging.level")
}

func TestValidateLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	assert.ErrorContains(t, cfg.Validate(), "logging.format")
}

func TestValidateLoggingOutputEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Output = ""
	assert.ErrorContains(t, cfg.Validate(), "logging.output")
}

func TestValidateInstructionLimitNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Content.InstructionLimit = -1
	assert.ErrorContains(t, cfg.Validate(), "content.instruction_limit")
}

func TestValidateDefaultBreedEmpty(t *testing.T) {
	cfg := validConfig()
	cfg.Pet.DefaultBreed = ""
	assert.ErrorContains(t, cfg.Validate(), "pet.default_breed")
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	cfg.Pet.DefaultAge = -3
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "pet.default_age")
}

func TestPropertyDefaultAgeRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		age := rapid.IntRange(-100, 100).Draw(t, "age")
		cfg := validConfig()
		cfg.Pet.DefaultAge = age
		err := cfg.Validate()
		if age >= 0 && age <= 29 {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	})
}
