package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
)

func TestCheck_ValidRegion(t *testing.T) {
	violations := Check(dto.AddRegionRequestDto{Code: "AKL", Name: "Auckland"})
	assert.Nil(t, violations)
}

func TestCheck_ReportsEveryViolation(t *testing.T) {
	// Both fields are invalid; the caller must get both back in one pass.
	violations := Check(dto.AddRegionRequestDto{Code: "TOOLONG", Name: ""})

	assert.Len(t, violations, 2)
	assert.Contains(t, violations, "code")
	assert.Contains(t, violations, "name")
	assert.NotEmpty(t, violations["code"])
	assert.NotEmpty(t, violations["name"])
}

func TestCheck_CodeLength(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "exactly three", code: "BOP", valid: true},
		{name: "too short", code: "BO", valid: false},
		{name: "too long", code: "BOPX", valid: false},
		{name: "empty", code: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := Check(dto.AddRegionRequestDto{Code: tt.code, Name: "Bay of Plenty"})
			if tt.valid {
				assert.Nil(t, violations)
			} else {
				assert.Contains(t, violations, "code")
			}
		})
	}
}

func TestCheck_WalkConstraints(t *testing.T) {
	valid := dto.AddWalkRequestDto{
		Name:         "Tongariro Crossing",
		Description:  "A volcanic day hike.",
		LengthInKm:   19.4,
		RegionID:     uuid.New(),
		DifficultyID: uuid.New(),
	}
	assert.Nil(t, Check(valid))

	missingRefs := valid
	missingRefs.RegionID = uuid.Nil
	missingRefs.DifficultyID = uuid.Nil
	violations := Check(missingRefs)
	assert.Contains(t, violations, "regionId")
	assert.Contains(t, violations, "difficultyId")

	negative := valid
	negative.LengthInKm = -1
	assert.Contains(t, Check(negative), "lengthInKm")

	zeroLength := valid
	zeroLength.LengthInKm = 0
	assert.Nil(t, Check(zeroLength))
}

func TestCheck_Register(t *testing.T) {
	valid := dto.RegisterRequestDto{
		Username: "user@example.com",
		Password: "secret1",
		Roles:    []string{"Reader", "Writer"},
	}
	assert.Nil(t, Check(valid))

	badEmail := valid
	badEmail.Username = "not-an-email"
	assert.Contains(t, Check(badEmail), "username")

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Contains(t, Check(shortPassword), "password")

	unknownRole := valid
	unknownRole.Roles = []string{"Admin"}
	assert.NotNil(t, Check(unknownRole))

	noRoles := valid
	noRoles.Roles = nil
	assert.Contains(t, Check(noRoles), "roles")
}
