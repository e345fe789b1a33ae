package cli

import (
	"stockcron/internal/audit"
	"stockcron/internal/config"
	"stockcron/internal/crontab"
	"stockcron/internal/installer"
	logx "stockcron/pkg/logx"
)

// runtime carries what every subcommand needs: resolved config, logger,
// and the close hooks accumulated while wiring.
type runtime struct {
	cfg     *config.Config
	log     logx.Logger
	closers []func() error
}

func setup() (*runtime, error) {
	cfg := &config.Config{}
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Default to warn on the console so routine runs only print the
	// installer's own status text; the file sink keeps everything.
	level := cfg.Logging.Level
	if level == "" {
		level = "warn"
	}
	logCfg := logx.Config{Level: level, Console: true}
	if cfg.Logging.File != "" {
		logCfg.File = logx.FileConfig{Enabled: true, Path: cfg.Logging.File}
	}
	log, closeLog := logx.New(logCfg)

	return &runtime{
		cfg:     cfg,
		log:     log,
		closers: []func() error{closeLog},
	}, nil
}

// installer builds the fully wired Installer against the real crontab.
func (r *runtime) installer(confirm installer.Confirmer) (*installer.Installer, error) {
	store, err := audit.Open(audit.Config{Driver: r.cfg.Audit.Driver, Path: r.cfg.Audit.Path}, r.log)
	if err != nil {
		return nil, err
	}
	opts := []installer.Option{installer.WithLogger(r.log)}
	if store != nil {
		r.closers = append(r.closers, store.Close)
		opts = append(opts, installer.WithAudit(store))
	}
	table := crontab.NewSystem(r.cfg.CrontabBin)
	return installer.New(r.cfg, table, confirm, opts...), nil
}

func (r *runtime) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i]()
	}
}
