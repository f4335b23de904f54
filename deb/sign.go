package deb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// SignRelease clearsigns the content of a Release file with the provided
// ASCII-armored PGP private key, producing an InRelease file.
func SignRelease(content []byte, key string) ([]byte, error) {
	signer, err := readSigner(key)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	w, err := clearsign.Encode(&out, signer.PrivateKey, nil)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// PublicKey extracts the public key from an ASCII-armored PGP private key.
// If armored is true, it returns the public key in ASCII-armored format,
// suitable as a keyring for ParseInRelease. Otherwise, it returns the
// binary serialized public key.
func PublicKey(key string, armored bool) ([]byte, error) {
	signer, err := readSigner(key)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if armored {
		w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
		if err != nil {
			return nil, err
		}
		if err := signer.Serialize(w); err != nil {
			return nil, err
		}
		w.Close()
	} else {
		if err := signer.Serialize(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// readSigner returns the first entity of the armored key ring that holds a
// private key.
func readSigner(key string) (*openpgp.Entity, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(key))
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		if e.PrivateKey != nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no private key found")
}
