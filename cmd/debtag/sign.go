package main

import (
	"fmt"
	"os"

	"github.com/etnz/debtag/deb"
)

// signingKey returns the armored private key read from path, or from the
// GPG_PRIVATE_KEY environment variable when path is empty.
func signingKey(path string) (string, error) {
	if path == "" {
		key := os.Getenv("GPG_PRIVATE_KEY")
		if key == "" {
			return "", fmt.Errorf("no signing key: use -key or set GPG_PRIVATE_KEY")
		}
		return key, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return string(data), nil
}

// signRelease checks that content is a valid Release file and clearsigns it
// with the ASCII-armored private key.
func signRelease(content, key string) ([]byte, error) {
	if _, err := deb.ParseRelease(content); err != nil {
		return nil, err
	}
	signed, err := deb.SignRelease([]byte(content), key)
	if err != nil {
		return nil, fmt.Errorf("signing Release: %w", err)
	}
	return signed, nil
}

// exportPublicKey writes the armored public half of key to path, ready to
// be used as a keyring by the release command.
func exportPublicKey(key, path string) error {
	pub, err := deb.PublicKey(key, true)
	if err != nil {
		return fmt.Errorf("extracting public key: %w", err)
	}
	return os.WriteFile(path, pub, 0644)
}
