package config

import (
	"time"

	"github.com/joho/godotenv"

	"lucky_wheel/pkg/wheel"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

// PGConfig holds the journal database DSN. An empty DSN selects the
// in-memory journal.
type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type OperatorConfig interface {
	Login() string
	PasswordHash() string
}

type LogConfig interface {
	Debug() bool
}

// WheelConfig is the wheel table: canvas geometry, spin timing, palette and
// the stock prize list.
type WheelConfig interface {
	Geometry() wheel.Geometry
	FontSize() float64
	SpinDuration() time.Duration
	Revolutions() (minRev, maxRev float64)
	FrameInterval() time.Duration
	Palette() []string
	Defaults() []wheel.DefaultItem
}
