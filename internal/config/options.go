package config

import (
	"errors"
	"time"
)

// Environment variable names.
const (
	EnvLogFile        = "ALIEN_LOG_FILE"
	EnvLogLevel       = "ALIEN_LOG_LEVEL"
	EnvSound          = "ALIEN_SOUND"
	EnvKeyHold        = "ALIEN_KEY_HOLD"
	EnvBgColor        = "ALIEN_BG_COLOR"
	EnvBulletColor    = "ALIEN_BULLET_COLOR"
	EnvShipLimit      = "ALIEN_SHIP_LIMIT"
	EnvBulletsAllowed = "ALIEN_BULLETS_ALLOWED"
)

// DefaultKeyHold is how long a movement key counts as held after its last
// key event. Terminals report no key releases. Most terminals wait 250-500ms
// before auto-repeat starts, so with this default a held arrow stops the
// ship briefly before repeats begin; a hold longer than the repeat delay
// removes the stutter but makes the ship coast that long after release.
// Set ALIEN_KEY_HOLD to trade one for the other. Fire and play do not use
// the hold.
const DefaultKeyHold = 150 * time.Millisecond

// Options are the process-level settings for a game session.
type Options struct {
	LogFile  string // empty discards logs; the terminal belongs to the game
	LogLevel string
	Sound    bool
	KeyHold  time.Duration

	BgColor        RGB
	BulletColor    RGB
	ShipLimit      int
	BulletsAllowed int
}

// DefaultOptions returns options matching NewSettings.
func DefaultOptions() Options {
	s := NewSettings()
	return Options{
		LogLevel:       "info",
		Sound:          true,
		KeyHold:        DefaultKeyHold,
		BgColor:        s.BgColor,
		BulletColor:    s.BulletColor,
		ShipLimit:      s.ShipLimit,
		BulletsAllowed: s.BulletsAllowed,
	}
}

// LoadOptions reads Options from the environment. Invalid values keep their
// defaults and are reported together in the returned error; the options are
// always usable.
func LoadOptions() (Options, error) {
	opts := DefaultOptions()
	var errs []error

	opts.LogFile = GetEnv(EnvLogFile, opts.LogFile)
	opts.LogLevel = GetEnv(EnvLogLevel, opts.LogLevel)

	var err error
	if opts.Sound, err = GetEnvBool(EnvSound, opts.Sound); err != nil {
		errs = append(errs, err)
	}
	if opts.KeyHold, err = GetEnvDuration(EnvKeyHold, opts.KeyHold); err != nil {
		errs = append(errs, err)
	}
	if opts.BgColor, err = GetEnvColor(EnvBgColor, opts.BgColor); err != nil {
		errs = append(errs, err)
	}
	if opts.BulletColor, err = GetEnvColor(EnvBulletColor, opts.BulletColor); err != nil {
		errs = append(errs, err)
	}

	limit, err := GetEnvInt(EnvShipLimit, opts.ShipLimit)
	switch {
	case err != nil:
		errs = append(errs, err)
	case limit < 1:
		errs = append(errs, errors.New(EnvShipLimit+": must be at least 1"))
	default:
		opts.ShipLimit = limit
	}

	allowed, err := GetEnvInt(EnvBulletsAllowed, opts.BulletsAllowed)
	switch {
	case err != nil:
		errs = append(errs, err)
	case allowed < 1:
		errs = append(errs, errors.New(EnvBulletsAllowed+": must be at least 1"))
	default:
		opts.BulletsAllowed = allowed
	}

	return opts, errors.Join(errs...)
}

// Settings returns default game settings with the overrides in o applied.
func (o Options) Settings() *Settings {
	s := NewSettings()
	s.BgColor = o.BgColor
	s.BulletColor = o.BulletColor
	if o.ShipLimit > 0 {
		s.ShipLimit = o.ShipLimit
	}
	if o.BulletsAllowed > 0 {
		s.BulletsAllowed = o.BulletsAllowed
	}
	return s
}
