package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/notekeeper/pkg/cryptox"
	"github.com/aussiebroadwan/notekeeper/pkg/jwtx"
)

const generatedSecretBytes = 32

// InitCodecs builds the access and renewal codecs from the configured
// secrets. In dev a missing secret is generated and only lives as long as the
// process, so every restart invalidates all outstanding tokens.
func InitCodecs(cfg Config, logger *slog.Logger) (access, renewal *jwtx.Codec, err error) {
	accessSecret, err := secretOrGenerate(cfg, "ACCESS_TOKEN_SECRET", cfg.AccessTokenSecret, logger)
	if err != nil {
		return nil, nil, err
	}
	renewalSecret, err := secretOrGenerate(cfg, "REFRESH_TOKEN_SECRET", cfg.RefreshTokenSecret, logger)
	if err != nil {
		return nil, nil, err
	}

	return jwtx.NewCodec(jwtx.UseAccess, []byte(accessSecret)),
		jwtx.NewCodec(jwtx.UseRenewal, []byte(renewalSecret)),
		nil
}

func secretOrGenerate(cfg Config, name, value string, logger *slog.Logger) (string, error) {
	if value != "" {
		return value, nil
	}
	if !cfg.IsDev() {
		return "", fmt.Errorf("%w: %s", ErrMissingSecret, name)
	}

	secret, err := cryptox.GenerateToken(generatedSecretBytes)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", name, err)
	}
	logger.Warn("token secret not set, generated an ephemeral one", "var", name)
	return secret, nil
}
