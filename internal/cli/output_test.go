package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/dublaj/internal/authform"
	"github.com/thenoetrevino/dublaj/internal/models"
)

func newFormatter(jsonOut, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOut, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	remember := true

	require.NoError(t, f.Success(authform.Payload{
		Mode:       authform.Login,
		Email:      "a@b.c",
		Password:   authform.Redacted,
		RememberMe: &remember,
	}))

	result := decode(t, out)
	assert.Equal(t, true, result["success"])
	data := result["data"].(map[string]any)
	assert.Equal(t, "login", data["mode"])
	assert.Equal(t, "a@b.c", data["email"])
	assert.Equal(t, true, data["rememberMe"])
	assert.NotContains(t, data, "name")
}

func TestOutputFormatter_ErrorWithDetails_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)

	require.NoError(t, f.ErrorWithDetails("VALIDATION_FAILED", "form is invalid", map[string]string{
		"email": authform.MsgEmailInvalid,
	}))

	assert.Empty(t, errOut.String())
	result := decode(t, out)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errData["code"])
	assert.Equal(t, map[string]any{"email": authform.MsgEmailInvalid}, errData["fields"])
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newFormatter(false, false)

	require.NoError(t, f.ErrorWithDetails("VALIDATION_FAILED", "form is invalid", map[string]string{
		"password": authform.MsgPasswordShort,
		"email":    authform.MsgEmailRequired,
	}))

	assert.Empty(t, out.String())
	text := errOut.String()
	assert.Contains(t, text, "form is invalid")
	assert.Contains(t, text, authform.MsgPasswordShort)
	assert.Less(t, bytes.Index(errOut.Bytes(), []byte("email")), bytes.Index(errOut.Bytes(), []byte("password")),
		"details are sorted by field name")
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	name := "Ada"

	require.NoError(t, f.Success(authform.Payload{Mode: authform.Register, Name: &name, Email: "a@b.co"}))
	assert.Contains(t, out.String(), "register form")
	assert.Contains(t, out.String(), "Ada")

	out.Reset()
	require.NoError(t, f.Success([]*models.Submission{}))
	assert.Contains(t, out.String(), "No submissions")

	out.Reset()
	require.NoError(t, f.Success([]*models.Submission{{
		ID: "x", Mode: "login", Outcome: models.OutcomeRejected, Email: "bad",
		ErrorFields: []string{"email", "password"}, CreatedAt: time.Now(),
	}}))
	assert.Contains(t, out.String(), "rejected")
	assert.Contains(t, out.String(), "email, password")
}

func TestOutputFormatter_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)

	require.NoError(t, f.Success([]*models.Submission{{ID: "a"}, {ID: "b"}}))
	assert.Equal(t, "a\nb\n", out.String())

	out.Reset()
	require.NoError(t, f.Success(&models.Submission{ID: "c"}))
	assert.Equal(t, "c\n", out.String())

	out.Reset()
	require.NoError(t, f.Success(authform.Payload{}))
	assert.Empty(t, out.String())
}

func TestOutputFormatter_QuietErrors(t *testing.T) {
	f, out, errOut := newFormatter(false, true)
	require.NoError(t, f.ErrorWithDetails("VALIDATION_FAILED", "form is invalid",
		map[string]string{"email": "Email is required"}))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())

	f, out, errOut = newFormatter(true, true)
	require.NoError(t, f.Error("COMMAND_FAILED", "boom"))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(base))
	assert.Equal(t, ExitValidation, ExitCode(WithExitCode(ExitValidation, base)))

	wrapped := WithExitCode(ExitUsage, base)
	assert.ErrorIs(t, wrapped, base)
	assert.True(t, Reported(wrapped))
	assert.False(t, Reported(base))
	assert.Equal(t, "boom", wrapped.Error())
}
