package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)

			for _, value := range data {
				assert.Contains(t, html, value)
			}
		})
	}
}

func TestRenderEscapesValues(t *testing.T) {
	html, err := Render(TemplateAccountRegistered, map[string]string{
		"UserID":      "1",
		"Username":    "<script>alert(1)</script>",
		"AccountName": "Exile",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
