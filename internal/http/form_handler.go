package httpx

import (
	"context"
	"net/http"

	apperrors "github.com/sportclub/club-ui/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormSubmitter forwards validated form data to the club API and returns the
// path to redirect to on success.
type FormSubmitter[T any] func(ctx context.Context, data T) (redirect string, err error)

// FormRenderer is a function that renders the form template with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Parser   FormParser[T]
	Submit   FormSubmitter[T]
	Renderer FormRenderer
	// Page metadata for re-rendering the form on error
	PageMeta PageMeta
	// Optional: additional data to pass to template on error
	ExtraData map[string]any
}

// HandleForm processes a form submission end to end: parse, validate locally,
// submit to the club API, and re-render with errors or redirect on success.
//
// Local validation failures never reach the network. Remote failures are
// translated through the application error taxonomy: 422 field errors land on
// their inputs, everything else becomes a general message with the submitted
// values preserved.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Submit == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	redirect, err := opts.Submit(opts.R.Context(), data)
	if err != nil {
		opts.handleSubmitError(err, data)
		return
	}

	http.Redirect(opts.W, opts.R, redirect, http.StatusSeeOther)
}

// handleSubmitError maps a club API failure onto form feedback.
func (fh FormHandlerOpts[T]) handleSubmitError(err error, data T) {
	switch {
	case apperrors.IsRemoteValidation(err):
		fieldErrors := flattenFieldErrors(apperrors.GetFieldErrors(err))
		general := err.Error()
		if len(fieldErrors) > 0 {
			general = errMsgFixBelow
		}
		fh.renderFormError(fieldErrors, general, data)
	case apperrors.IsValidation(err):
		if field := apperrors.GetField(err); field != "" {
			fh.renderFormError(map[string]string{field: err.Error()}, "", data)
			return
		}
		fh.renderFormError(nil, err.Error(), data)
	case apperrors.IsUnauthorized(err), apperrors.IsUnknownRole(err):
		fh.renderFormError(nil, err.Error(), data)
	case apperrors.IsTimeout(err):
		fh.renderFormError(nil, "The club service took too long to answer. Please try again.", data)
	case apperrors.IsCanceled(err):
		http.Error(fh.W, "request canceled", http.StatusRequestTimeout)
	case apperrors.IsUnavailable(err):
		fh.renderFormError(nil, "The club service is unavailable right now. Please try again shortly.", data)
	default:
		fh.renderFormError(nil, "Unable to save. Please try again.", data)
	}
}

// renderFormError re-renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	if len(fieldErrors) > 0 {
		fh.W.WriteHeader(http.StatusUnprocessableEntity)
	}

	templateData := NewTemplateData(fh.R, fh.PageMeta)

	if len(fieldErrors) > 0 {
		templateData.WithFieldErrors(fieldErrors)
	}

	if generalError != "" {
		templateData.WithError(generalError)
	} else if len(fieldErrors) > 0 {
		templateData.WithError(errMsgFixBelow)
	}

	for k, v := range fh.ExtraData {
		templateData.With(k, v)
	}

	// Templates read submitted values back out of FormData.
	templateData.With("FormData", data)

	fh.Renderer(fh.W, fh.R, templateData.Build())
}
