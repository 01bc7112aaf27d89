package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateRenderer_ParsesAllPages(t *testing.T) {
	tr, err := NewTemplateRenderer(nil)
	require.NoError(t, err)

	for page := range pageTemplates {
		rec := httptest.NewRecorder()
		err := tr.RenderPage(rec, page, map[string]any{
			"Title":     "T",
			"PageTitle": "T",
			"Errors":    map[string]string{},
		})
		require.NoError(t, err, "page %s", page)
		assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	}
}

func TestRenderPage_UnknownPage(t *testing.T) {
	tr, err := NewTemplateRenderer(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	err = tr.RenderPage(rec, "nope", nil)
	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestRenderError_WritesStatus(t *testing.T) {
	tr, err := NewTemplateRenderer(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	tr.RenderError(rec, 404, map[string]any{
		"Title":        "Not Found",
		"ErrorTitle":   "Page not found",
		"ErrorMessage": "Nothing here.",
	})

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}
