package config

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// Profile is one named credential entry from the rc file. Passwords are
// never stored; login always prompts or takes a flag.
type Profile struct {
	Name     string
	Username string
	BaseURL  string
}

// Registry exposes the named login profiles from ~/.workpulserc.
type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

// NewRegistry loads the rc file at path. A missing file is tolerated and
// yields an empty registry, so first-time users can log in with flags only.
func NewRegistry(path string) (Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &iniRegistry{cfg: ini.Empty()}, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, profileFromSection(section))
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section := r.cfg.Section(name)
	if section == nil || len(section.Keys()) == 0 {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section), nil
}

func profileFromSection(section *ini.Section) Profile {
	return Profile{
		Name:     section.Name(),
		Username: section.Key("username").String(),
		BaseURL:  section.Key("base_url").String(),
	}
}
