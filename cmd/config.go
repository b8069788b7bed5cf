// Package cmd defines core data structures for release-notes configuration and pipeline errors.
package cmd

// DefaultTag is used when no tag is given by file, environment or flag
const DefaultTag = "v1.0.0"

// Config represents the structure of release-notes.yaml merged with the environment.
// PrivateKey is never written back to disk.
type Config struct {
	AppID          string `yaml:"app_id,omitempty"`
	InstallationID string `yaml:"installation_id,omitempty"`
	PrivateKey     string `yaml:"-"`
	Owner          string `yaml:"owner"`
	Repo           string `yaml:"repo"`
	APIURL         string `yaml:"api_url,omitempty"` // GitHub Enterprise API base URL
	TagName        string `yaml:"tag_name,omitempty"`
	PreviousTag    string `yaml:"previous_tag,omitempty"`
}

// ApplyDefaults fills unset fields with their default values
func (c *Config) ApplyDefaults() {
	if c.TagName == "" {
		c.TagName = DefaultTag
	}
}

// Override replaces fields of c with any non-empty values from other
func (c *Config) Override(other Config) {
	if other.AppID != "" {
		c.AppID = other.AppID
	}
	if other.InstallationID != "" {
		c.InstallationID = other.InstallationID
	}
	if other.PrivateKey != "" {
		c.PrivateKey = other.PrivateKey
	}
	if other.Owner != "" {
		c.Owner = other.Owner
	}
	if other.Repo != "" {
		c.Repo = other.Repo
	}
	if other.APIURL != "" {
		c.APIURL = other.APIURL
	}
	if other.TagName != "" {
		c.TagName = other.TagName
	}
	if other.PreviousTag != "" {
		c.PreviousTag = other.PreviousTag
	}
}
