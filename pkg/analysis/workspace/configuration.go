package workspace

import (
	"os"
	"strings"

	"jvmrules.build/pkg/label"

	"github.com/BurntSushi/toml"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration of a workspace, as stored in a TOML file. Labels may
// be written relative to the root module (e.g., "//server:server").
type Configuration struct {
	RootModule                 string                  `toml:"root_module"`
	RepoMapping                map[string]string       `toml:"repo_mapping"`
	JavaLauncher               string                  `toml:"java_launcher"`
	ForceJavaLauncherRuleKinds []string                `toml:"force_java_launcher_rule_kinds"`
	Javacopts                  []string                `toml:"javacopts"`
	RuleKinds                  []RuleKindConfiguration `toml:"rule_kinds"`
	Targets                    []TargetConfiguration   `toml:"targets"`
}

// RuleKindConfiguration declares the label attributes of a kind of
// rule. Attributes whose names start with ":" are private, and are
// derived from the configuration instead of being set by targets.
type RuleKindConfiguration struct {
	Name            string   `toml:"name"`
	LabelAttributes []string `toml:"label_attributes"`
}

// TargetConfiguration declares a single target in the workspace.
type TargetConfiguration struct {
	Label      string            `toml:"label"`
	Kind       string            `toml:"kind"`
	Executable string            `toml:"executable"`
	Attributes map[string]string `toml:"attributes"`
}

// ParseConfiguration parses the contents of a TOML workspace
// configuration file. Unknown keys are rejected, as they most likely
// indicate a typo.
func ParseConfiguration(data string) (*Configuration, error) {
	var configuration Configuration
	metadata, err := toml.Decode(data, &configuration)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, status.Errorf(codes.InvalidArgument, "Unknown configuration keys: %s", strings.Join(keys, ", "))
	}
	if _, err := label.NewModule(configuration.RootModule); err != nil {
		return nil, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid root module")
	}
	return &configuration, nil
}

// LoadConfiguration reads and parses a TOML workspace configuration
// file.
func LoadConfiguration(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to read workspace configuration %#v", path)
	}
	configuration, err := ParseConfiguration(string(data))
	if err != nil {
		return nil, util.StatusWrapf(err, "Failed to parse workspace configuration %#v", path)
	}
	return configuration, nil
}
