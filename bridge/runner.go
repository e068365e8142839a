package bridge

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/otp"
)

func Run(args []string) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	brokerOptions, err := resolveOptions(ctx, afs.New(), options)
	if err != nil {
		return err
	}
	logger, err := newLogger(brokerOptions.LogLevel)
	if err != nil {
		return err
	}
	srv, err := otp.NewServer(brokerOptions, logger)
	if err != nil {
		return err
	}
	logger.Info().Str("policy", brokerOptions.Policy).Msg("otp broker listening on stdio")
	return srv.Stdio(ctx).ListenAndServe()
}

// resolveOptions merges the config file (if any) with flags; flags win.
func resolveOptions(ctx context.Context, fs afs.Service, options *Options) (*otp.Options, error) {
	ret := &otp.Options{}
	if options.ConfigURL != "" {
		loaded, err := LoadOptions(ctx, fs, options.ConfigURL)
		if err != nil {
			return nil, err
		}
		ret.Merge(loaded)
	}
	ret.Merge(&options.Options)
	return ret, nil
}

func newLogger(level string) (zerolog.Logger, error) {
	if level == "" {
		level = zerolog.LevelInfoValue
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger(), nil
}
