package pasetotoken

import (
	"strings"

	paseto "aidanwoods.dev/go-paseto"
)

type Mode string

const (
	ModeLocal  Mode = "local"  // v4.local, symmetric encryption
	ModePublic Mode = "public" // v4.public, Ed25519 signatures
)

type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey

	Secret *paseto.V4AsymmetricSecretKey
	Public *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex form keys take in config files.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string
	SecretHex    string
	PublicHex    string
}

func LoadKeys(in KeyStrings) (Keys, error) {
	switch in.Mode {
	case ModeLocal:
		return loadLocalKeys(in)
	case ModePublic:
		return loadPublicKeys(in)
	default:
		return Keys{}, ErrConfig{Msg: "unknown mode (use local|public)"}
	}
}

func loadLocalKeys(in KeyStrings) (Keys, error) {
	hex := strings.TrimSpace(in.SymmetricHex)
	if hex == "" {
		return Keys{}, ErrConfig{Msg: "ModeLocal requires SymmetricHex"}
	}
	k, err := paseto.V4SymmetricKeyFromHex(hex)
	if err != nil {
		return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
	}
	return Keys{Mode: ModeLocal, Symmetric: &k}, nil
}

// loadPublicKeys accepts the secret key alone (public is derived), the
// public key alone (verify-only deployments), or both.
func loadPublicKeys(in KeyStrings) (Keys, error) {
	out := Keys{Mode: ModePublic}

	if secHex := strings.TrimSpace(in.SecretHex); secHex != "" {
		sk, err := paseto.NewV4AsymmetricSecretKeyFromHex(secHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid secret key hex: " + err.Error()}
		}
		out.Secret = &sk
		pk := sk.Public()
		out.Public = &pk
	}

	if pubHex := strings.TrimSpace(in.PublicHex); pubHex != "" {
		pk, err := paseto.NewV4AsymmetricPublicKeyFromHex(pubHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		out.Public = &pk
	}

	if out.Public == nil && out.Secret == nil {
		return Keys{}, ErrConfig{Msg: "ModePublic requires SecretHex and/or PublicHex"}
	}
	return out, nil
}

// NewLocalKeys generates a fresh symmetric key. Used by the keygen command.
func NewLocalKeys() Keys {
	k := paseto.NewV4SymmetricKey()
	return Keys{Mode: ModeLocal, Symmetric: &k}
}

// NewPublicKeys generates a fresh Ed25519 key pair.
func NewPublicKeys() Keys {
	sk := paseto.NewV4AsymmetricSecretKey()
	pk := sk.Public()
	return Keys{Mode: ModePublic, Secret: &sk, Public: &pk}
}
