package config

import (
	"sort"
	"time"
)

type Profile struct {
	Label     string    `toml:"-" yaml:"-"`
	Name      string    `toml:"name" yaml:"name"`
	Email     string    `toml:"email" yaml:"email"`
	CreatedAt time.Time `toml:"created_at,omitempty" yaml:"created_at,omitempty"`
}

func (c *Config) HasProfile(label string) bool {
	_, ok := c.Profiles[label]
	return ok
}

// AddProfile stores p under p.Label, replacing any profile with the same label.
func (c *Config) AddProfile(p Profile) error {
	if p.Label == "" {
		return ErrLabelRequired
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	c.Profiles[p.Label] = p

	return c.Save()
}

func (c *Config) RemoveProfile(label string) error {
	if _, err := c.GetProfile(label); err != nil {
		return err
	}

	delete(c.Profiles, label)

	return c.Save()
}

func (c *Config) GetProfile(label string) (Profile, error) {
	if label == "" {
		return Profile{}, ErrLabelRequired
	}

	if p, ok := c.Profiles[label]; ok {
		p.Label = label
		return p, nil
	}

	return Profile{}, ErrProfileNotFound
}

// ListProfiles returns every profile ordered by label.
func (c *Config) ListProfiles() []Profile {
	profiles := make([]Profile, 0, len(c.Profiles))

	for label, p := range c.Profiles {
		p.Label = label
		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Label < profiles[j].Label
	})

	return profiles
}

func (c *Config) Labels() []string {
	labels := make([]string, 0, len(c.Profiles))
	for label := range c.Profiles {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

// FindByIdentity returns the first profile, by label, whose name and email
// both equal the given ones.
func (c *Config) FindByIdentity(name, email string) (Profile, bool) {
	for _, p := range c.ListProfiles() {
		if p.Name == name && p.Email == email {
			return p, true
		}
	}

	return Profile{}, false
}

// MergeProfiles adds profiles in one save. Labels already present are skipped
// unless overwrite is set; the skipped labels are returned in order.
func (c *Config) MergeProfiles(profiles []Profile, overwrite bool) (added, skipped []string, err error) {
	now := time.Now().UTC().Truncate(time.Second)

	for _, p := range profiles {
		if p.Label == "" {
			return nil, nil, ErrLabelRequired
		}
		if c.HasProfile(p.Label) && !overwrite {
			skipped = append(skipped, p.Label)
			continue
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		c.Profiles[p.Label] = p
		added = append(added, p.Label)
	}

	if len(added) == 0 {
		return added, skipped, nil
	}

	return added, skipped, c.Save()
}
