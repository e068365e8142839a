package bridge

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/otp"
	"gopkg.in/yaml.v3"
)

// LoadOptions loads broker options from URL; JSON documents are accepted as YAML.
func LoadOptions(ctx context.Context, fs afs.Service, URL string) (*otp.Options, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := &otp.Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, nil
}
