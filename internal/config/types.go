package config

// Profile is the root of an sdbtool profile.
type Profile struct {
	SDB2XML SDB2XMLConfig `yaml:"sdb2xml"`
}

// SDB2XMLConfig holds defaults for the sdb2xml command.
type SDB2XMLConfig struct {
	Exclude     []string `yaml:"exclude" validate:"omitempty,dive,required"`
	Annotations string   `yaml:"annotations" validate:"omitempty,oneof=disabled comment"`
	WithTagID   bool     `yaml:"with_tagid"`
	WithTag     bool     `yaml:"with_tag"`
	MaxDepth    int      `yaml:"max_depth" validate:"gte=0,lte=4096"`
}
