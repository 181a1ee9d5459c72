package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashEncoding(t *testing.T) {
	hash, err := Hash("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("not PHC encoded: %s", hash)
	}
	if got := len(strings.Split(hash, "$")); got != 6 {
		t.Errorf("PHC part count = %d, want 6", got)
	}
}

func TestVerify(t *testing.T) {
	const secret = "mysecretpassword"
	hash, err := Hash(secret)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"correct password", hash, secret, nil},
		{"wrong password", hash, "wrongpassword", ErrMismatch},
		{"empty password", hash, "", ErrMismatch},
		{"empty hash", "", secret, ErrInvalidHash},
		{"garbage hash", "notahash", secret, ErrInvalidHash},
		{"wrong algorithm", "$argon2i$v=19$m=65536,t=3,p=2$c29tZXNhbHQ$c29tZWhhc2g", secret, ErrInvalidHash},
		{"malformed params", "$argon2id$v=19$invalid$c29tZXNhbHQ$c29tZWhhc2g", secret, ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Verify(tt.hash, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashSaltsEachCall(t *testing.T) {
	const secret = "samepassword"

	h1, _ := Hash(secret)
	h2, _ := Hash(secret)
	if h1 == h2 {
		t.Error("two hashes of the same password are identical")
	}

	for _, h := range []string{h1, h2} {
		if err := Verify(h, secret); err != nil {
			t.Errorf("verification failed: %v", err)
		}
	}
}

func TestHashWithParams(t *testing.T) {
	p := &Params{
		Memory:      32 * 1024,
		Iterations:  2,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	hash, err := HashWithParams("testpassword", p)
	if err != nil {
		t.Fatalf("HashWithParams() error = %v", err)
	}
	if !strings.Contains(hash, "m=32768,t=2,p=1") {
		t.Errorf("params not encoded: %s", hash)
	}
	if err := Verify(hash, "testpassword"); err != nil {
		t.Errorf("Verify() with custom params failed: %v", err)
	}
}

func TestNeedsRehash(t *testing.T) {
	hash, _ := Hash("testpassword")
	if NeedsRehash(hash) {
		t.Error("hash with current defaults flagged for rehash")
	}

	weaker := &Params{
		Memory:      32 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
	old, _ := HashWithParams("testpassword", weaker)
	if !NeedsRehash(old) {
		t.Error("hash with non-default params not flagged for rehash")
	}

	if !NeedsRehash("garbage") {
		t.Error("undecodable hash not flagged for rehash")
	}
}

func BenchmarkHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hash("benchmarkpassword")
	}
}

func BenchmarkVerify(b *testing.B) {
	hash, _ := Hash("benchmarkpassword")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Verify(hash, "benchmarkpassword")
	}
}
