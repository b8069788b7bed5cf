// Package credentials validates GitHub App credentials and normalizes the app's private key.
package credentials

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alan/release-notes/cmd"
)

const (
	headerMarker     = "BEGIN"
	privateKeyMarker = "PRIVATE KEY"
)

// Credentials identify a GitHub App installation
type Credentials struct {
	AppID          int64
	InstallationID int64
	PrivateKey     string // PEM encoded
}

// New validates the raw app id, installation id and key material.
// All failures are configuration errors; nothing here touches the network.
func New(appID, installationID, rawKey string) (*Credentials, error) {
	if appID == "" || installationID == "" || rawKey == "" {
		return nil, cmd.ConfigError("missing required credentials",
			errors.New("APP_ID, INSTALLATION_ID, and APP_PRIVATE_KEY must be set"))
	}

	app, err := parseID("APP_ID", appID)
	if err != nil {
		return nil, err
	}
	installation, err := parseID("INSTALLATION_ID", installationID)
	if err != nil {
		return nil, err
	}

	key, err := NormalizeKey(rawKey)
	if err != nil {
		return nil, err
	}

	slog.Info("Private key format validated", "key_type", KeyType(key))

	return &Credentials{
		AppID:          app,
		InstallationID: installation,
		PrivateKey:     key,
	}, nil
}

func parseID(name, value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, cmd.ConfigError(fmt.Sprintf("invalid %s %q", name, value), errors.New("must be a positive integer"))
	}
	return id, nil
}

// NormalizeKey turns raw key material into a PEM string.
// Base64 input is decoded; literal "\n" sequences become real line breaks.
func NormalizeKey(raw string) (string, error) {
	key := raw
	if !strings.Contains(key, headerMarker) {
		slog.Debug("Detected base64-encoded key, decoding")
		// Padding is optional in stored secrets
		decoded, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(stripWhitespace(key), "="))
		if err != nil {
			return "", cmd.ConfigError("failed to decode base64 private key", err)
		}
		key = string(decoded)
	}

	if !strings.Contains(key, headerMarker) || !strings.Contains(key, privateKeyMarker) {
		return "", cmd.ConfigError("invalid private key format",
			errors.New("key must be in PEM format and contain BEGIN PRIVATE KEY"))
	}

	return strings.ReplaceAll(key, `\n`, "\n"), nil
}

// KeyType reports "RSA" for PKCS#1 keys and "PKCS8" otherwise
func KeyType(key string) string {
	if strings.Contains(key, "RSA") {
		return "RSA"
	}
	return "PKCS8"
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
