package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string   `json:"username" validate:"required,min=3"`
	Email    string   `json:"email" validate:"required,email"`
	Role     string   `json:"role" validate:"required,is-user-role"`
	Phone    string   `json:"phone" validate:"omitempty,phone"`
	CVURL    string   `json:"cvUrl" validate:"omitempty,cv-url"`
	Skills   []string `json:"skills" validate:"notblank-items"`
	Status   string   `form:"status" validate:"omitempty,is-application-status"`
}

func TestValidate_FieldNamesFromTags(t *testing.T) {
	v := New()

	err := v.Validate(&signup{
		Username: "jo",
		Email:    "not-an-email",
		Role:     "ADMIN",
		Phone:    "12-34",
		CVURL:    "ftp://cv",
		Skills:   []string{" ", ""},
		Status:   "LOST",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	for _, field := range []string{"username", "email", "role", "phone", "cvUrl", "skills", "status"} {
		assert.Contains(t, vErr.Errors, field)
	}
	assert.Equal(t, "Must be one of: JOB_SEEKER, JOB_HIRER", vErr.Errors["role"])
	assert.Contains(t, err.Error(), "field 'cvUrl'")
}

func TestValidate_Passes(t *testing.T) {
	v := New()
	err := v.Validate(&signup{
		Username: "jane",
		Email:    "jane@example.com",
		Role:     "job_seeker",
		Phone:    "+77011234567",
		CVURL:    "/uploads/cv/1.pdf",
		Skills:   []string{"", "Go"},
	})
	assert.NoError(t, err)
}

func TestHelpers(t *testing.T) {
	assert.True(t, IsBlank(" \t"))
	assert.True(t, IsEmail("a.b+c@host"))
	assert.False(t, IsEmail("no-at-sign"))
	assert.True(t, IsPhone("1234567890"))
	assert.False(t, IsPhone("+12345"))
	assert.False(t, IsCVURL("https://"))
	assert.True(t, IsCVURL("https://cdn.example.com/cv.pdf"))
	assert.Equal(t, []string{"Go", "SQL"}, CleanItems([]string{" Go ", "", "SQL"}))
}
