package smsspam

import "context"

const (
	DefaultURL    = "https://archive.ics.uci.edu/ml/machine-learning-databases/00228/smsspamcollection.zip"
	DefaultMember = "SMSSpamCollection"
)

// DatasetConfig names the archive to load
type DatasetConfig struct {
	URL    string
	Member string
	SHA256 string // optional hex digest of the archive
}

// DefaultDatasetConfig returns the fixed UCI location
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		URL:    DefaultURL,
		Member: DefaultMember,
	}
}

func (cfg DatasetConfig) withDefaults() DatasetConfig {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Member == "" {
		cfg.Member = DefaultMember
	}
	return cfg
}

// ArchiveValidator accepts archive bytes that Load would accept for cfg
func ArchiveValidator(arc Archive, cfg DatasetConfig) func(data []byte) error {
	cfg = cfg.withDefaults()
	return func(data []byte) error {
		if err := Verify(data, cfg.SHA256, cfg.Member); err != nil {
			return err
		}
		_, err := arc.Extract(data, cfg.Member)
		return err
	}
}

// Load fetches the archive, verifies it and returns the member text
func Load(ctx context.Context, src Source, arc Archive, cfg DatasetConfig) (string, error) {
	cfg = cfg.withDefaults()
	data, err := src.Fetch(ctx, cfg.URL)
	if err != nil {
		return "", err
	}
	if err := Verify(data, cfg.SHA256, cfg.Member); err != nil {
		return "", err
	}
	return arc.Extract(data, cfg.Member)
}
