package saludya

import "github.com/rs/zerolog"

// clientLogger wraps the injected zerolog.Logger with the one pattern the
// components share: failures that are handled (mapped to a user message
// or silently degraded) still get recorded at warn level.
type clientLogger struct {
	l zerolog.Logger
}

func (c clientLogger) warnErr(err error, msg string) {
	c.l.Warn().Err(err).Msg(msg)
}
