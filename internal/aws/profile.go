package aws

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Profile is a named profile from the shared AWS config or credentials file.
type Profile struct {
	Name   string
	Region string
	Source string // "credentials" or "config"
}

// ListProfiles reads profiles from ~/.aws/credentials and ~/.aws/config,
// honouring AWS_SHARED_CREDENTIALS_FILE and AWS_CONFIG_FILE.
func ListProfiles() ([]Profile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	credPath := os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	if credPath == "" {
		credPath = filepath.Join(home, ".aws", "credentials")
	}
	configPath := os.Getenv("AWS_CONFIG_FILE")
	if configPath == "" {
		configPath = filepath.Join(home, ".aws", "config")
	}

	return listProfiles(credPath, configPath)
}

// ValidateProfile checks if a profile exists
func ValidateProfile(name string) bool {
	profiles, err := ListProfiles()
	if err != nil {
		return false
	}

	for _, p := range profiles {
		if p.Name == name {
			return true
		}
	}
	return false
}

func listProfiles(credPath, configPath string) ([]Profile, error) {
	profileMap := make(map[string]*Profile)

	credProfiles, err := parseProfiles(credPath, "credentials", false)
	if err != nil {
		return nil, err
	}
	for i := range credProfiles {
		profileMap[credProfiles[i].Name] = &credProfiles[i]
	}

	// The config file may add a region to a credentials profile, or new profiles (SSO etc.)
	configProfiles, err := parseProfiles(configPath, "config", true)
	if err != nil {
		return nil, err
	}
	for i := range configProfiles {
		p := configProfiles[i]
		if existing, ok := profileMap[p.Name]; ok {
			if existing.Region == "" {
				existing.Region = p.Region
			}
			continue
		}
		profileMap[p.Name] = &p
	}

	profiles := make([]Profile, 0, len(profileMap))
	for _, p := range profileMap {
		profiles = append(profiles, *p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		// Put "default" first, then sort alphabetically
		if profiles[i].Name == "default" {
			return true
		}
		if profiles[j].Name == "default" {
			return false
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}

// parseProfiles reads one shared file. In the config file, sections other than
// [default] carry a "profile " prefix; sso-session and services sections are skipped.
func parseProfiles(path, source string, isConfigFile bool) ([]Profile, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{Loose: true, AllowNestedValues: true}, path)
	if err != nil {
		return nil, err
	}

	var profiles []Profile
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection {
			continue
		}

		if isConfigFile && name != "default" {
			after, ok := strings.CutPrefix(name, "profile ")
			if !ok {
				continue
			}
			name = strings.TrimSpace(after)
		}

		profiles = append(profiles, Profile{
			Name:   name,
			Region: sec.Key("region").String(),
			Source: source,
		})
	}

	return profiles, nil
}
