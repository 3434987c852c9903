package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/toolprofile/internal/codec"
	"github.com/specialistvlad/toolprofile/internal/config"
	"github.com/specialistvlad/toolprofile/internal/ctxlog"
	"github.com/specialistvlad/toolprofile/internal/presets"
	"github.com/specialistvlad/toolprofile/internal/profile"
	"github.com/specialistvlad/toolprofile/internal/profilestore"
)

// App encapsulates the application's logger and the profiles it has loaded.
type App struct {
	logger   *slog.Logger
	profiles *profilestore.Store
}

// NewApp is the constructor for the application. Logs are written to logW.
func NewApp(logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "log_level", cfg.LogLevel, "log_format", cfg.LogFormat)
	return &App{logger: logger, profiles: profilestore.New()}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Declaration reads the declaration behind ref, which is a file path or a
// "builtin:<name>" preset.
func (a *App) Declaration(ctx context.Context, ref string) (*config.Declaration, error) {
	ctx = ctxlog.With(a.context(ctx), "profile", ref)
	if presets.IsPreset(ref) {
		return presets.Open(ctx, ref)
	}
	return codec.Read(ctx, ref)
}

// Load reads and validates the profile behind ref. A profile is read once per
// App; later calls with the same ref return the same *profile.Profile.
func (a *App) Load(ctx context.Context, ref string) (*profile.Profile, error) {
	logger := a.logger.With("profile", ref)
	if p, ok := a.profiles.Get(ref); ok {
		logger.Debug("Profile already loaded.")
		return p, nil
	}
	logger.Debug("Loading profile.")

	decl, err := a.Declaration(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", ref, err)
	}
	p, err := profile.Load(decl)
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", ref, err)
	}

	arch := p.TargetArchitecture.String()
	if !profile.KnownArchitecture(arch) {
		logger.Warn("Unrecognized target architecture.", "target_arch", arch)
	}
	logger.Info("Profile loaded.",
		"keys", len(p.Keys()),
		"compiler", p.CompilerExecutable.String(),
		"target_arch", arch,
		"features", p.Features(),
	)
	return a.profiles.Put(ref, p), nil
}

// Resolve loads the profile behind ref and resolves one feature.
func (a *App) Resolve(ctx context.Context, ref, feature string) (*profile.Feature, error) {
	p, err := a.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	f, err := p.Resolve(feature)
	if err != nil {
		a.logger.Info("Feature not configured, it should be skipped.", "profile", ref, "feature", feature)
		return nil, err
	}
	a.logger.Debug("Feature resolved.", "profile", ref, "feature", f.Name, "components", f.Components)
	return f, nil
}
