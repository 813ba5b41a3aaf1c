package password

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/config"
)

// lightweight parameters so the test suite stays fast
func testParams() *Params {
	return &Params{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("Sup3r-Secret!", testParams())
	assert.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := Verify("Sup3r-Secret!", hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("Sup3r-Secret!", testParams())
	assert.NoError(t, err)
	second, err := Hash("Sup3r-Secret!", testParams())
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	_, err := Verify("anything", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = Verify("anything", "$bcrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestCheckPolicy(t *testing.T) {
	policy := config.PasswordPolicy{
		MinLength:      10,
		RequireUpper:   true,
		RequireLower:   true,
		RequireDigit:   true,
		RequireSpecial: true,
	}

	tests := []struct {
		name       string
		candidate  string
		violations int
	}{
		{"strong password passes", "Sup3r-Secret!", 0},
		{"short all-lowercase fails several rules", "weak", 4},
		{"missing digit and special", "LongEnoughPass", 2},
		{"missing uppercase", "lower-cased-9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := CheckPolicy(tt.candidate, policy)
			assert.Len(t, violations, tt.violations)
		})
	}
}

func TestCheckPolicyEmptyPolicy(t *testing.T) {
	violations := CheckPolicy("anything", config.PasswordPolicy{})
	assert.Empty(t, violations)
}
