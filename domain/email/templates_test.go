package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	html, err := renderWelcome("Welcome to EvoKG", 2026)
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome to EvoKG")
	assert.Contains(t, html, "&copy; 2026 EvoKG")
	assert.Contains(t, html, "The EvoKG Team")
	assert.NotContains(t, html, "{{")
}

func TestRenderNewUser(t *testing.T) {
	html, err := renderNewUser(NewUserNotification{
		Username:     "alice",
		FirstName:    "Alice",
		LastName:     "Liddell",
		Email:        "alice@broad.org",
		Organization: "Broad Institute",
	}, 2026)
	require.NoError(t, err)

	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "Alice Liddell")
	assert.Contains(t, html, "alice@broad.org")
	assert.Contains(t, html, "Broad Institute")
	assert.NotContains(t, html, "{{")
}

func TestRenderEscapesHTML(t *testing.T) {
	html, err := renderNewUser(NewUserNotification{
		Username: "<script>alert(1)</script>",
	}, 2026)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
}
