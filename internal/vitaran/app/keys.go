package app

import (
	"errors"
	"log/slog"

	"github.com/vitaran/vitaran/pkg/cryptox"
	"github.com/vitaran/vitaran/pkg/jwtx"
)

// InitSessionKeys builds the HS256 signer and verifier for session tokens.
//
// With JWT_SECRET set, tokens stay valid across restarts and replicas that
// share the secret. Outside prod an unset secret is replaced by a random one
// held only in memory, so every restart logs all users out.
func InitSessionKeys(cfg Config, logger *slog.Logger) (jwtx.Signer, *jwtx.HS256Verifier, error) {
	secret := []byte(cfg.JWTSecret)

	if len(secret) == 0 {
		if cfg.IsProd() {
			return nil, nil, errors.New("JWT_SECRET is required in prod")
		}
		generated, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return nil, nil, err
		}
		secret = []byte(generated)
		logger.Warn("JWT_SECRET not set, using an ephemeral secret; sessions will not survive a restart")
	}

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, nil, err
	}
	verifier := jwtx.NewVerifierHS256(secret, cfg.Issuer)

	logger.Info("session signing ready", "algorithm", signer.Alg(), "issuer", cfg.Issuer)
	return signer, verifier, nil
}
