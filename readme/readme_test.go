package readme

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mod/modfile"
)

func readReadme(t *testing.T) string {
	t.Helper()
	readmeBytes, err := os.ReadFile("../README.md")
	require.NoError(t, err)
	return string(readmeBytes)
}

var regexShoutrrrURL = regexp.MustCompile(`https://containrrr.dev/shoutrrr/v[0-9.]+/services/overview/`)

func Test_Readme_ShoutrrrVersion(t *testing.T) {
	t.Parallel()

	goModBytes, err := os.ReadFile("../go.mod")
	require.NoError(t, err)

	goMod, err := modfile.Parse("../go.mod", goModBytes, nil)
	require.NoError(t, err)

	var shoutrrrVersion string
	for _, requirement := range goMod.Require {
		if requirement.Mod.Path == "github.com/containrrr/shoutrrr" {
			shoutrrrVersion = requirement.Mod.Version
			break
		}
	}
	require.NotEmpty(t, shoutrrrVersion)

	// v0.8.0 is documented at v0.8
	lastDot := strings.LastIndex(shoutrrrVersion, ".")
	require.GreaterOrEqual(t, lastDot, 0)
	expectedURL := "https://containrrr.dev/shoutrrr/" +
		shoutrrrVersion[:lastDot] + "/services/overview/"

	urls := regexShoutrrrURL.FindAllString(readReadme(t), -1)
	require.NotEmpty(t, urls)
	for _, url := range urls {
		assert.Equal(t, expectedURL, url, "outdated shoutrrr URL in README.md")
	}
}

var regexEnvKey = regexp.MustCompile(`"([A-Z][A-Z0-9]*(?:_[A-Z0-9]+)+)"`)

func Test_Readme_EnvironmentVariables(t *testing.T) {
	t.Parallel()

	configFiles, err := filepath.Glob("../internal/config/*.go")
	require.NoError(t, err)
	require.NotEmpty(t, configFiles)

	keys := make(map[string]struct{})
	for _, configFile := range configFiles {
		if strings.HasSuffix(configFile, "_test.go") {
			continue
		}
		content, err := os.ReadFile(configFile)
		require.NoError(t, err)
		for _, match := range regexEnvKey.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
	}
	require.NotEmpty(t, keys)

	readme := readReadme(t)
	for key := range keys {
		assert.Contains(t, readme, "`"+key+"`",
			"environment variable is not documented in README.md")
	}
}
