// ABOUTME: Cat identification handler
// ABOUTME: Accepts a multipart photo upload in the "data" field and returns the AI profile

package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/ipierette/catbytes-portfolio/api/dto/mappers"
	"github.com/ipierette/catbytes-portfolio/api/dto/responses"
	"github.com/ipierette/catbytes-portfolio/core/domain"
	"github.com/ipierette/catbytes-portfolio/core/errors"
	"github.com/ipierette/catbytes-portfolio/core/identify"
	"github.com/ipierette/catbytes-portfolio/core/interfaces"
	"github.com/ipierette/catbytes-portfolio/pkg/featureflags"
)

// uploadField is the multipart field the front-end uses
const uploadField = "data"

// IdentifyHandler serves POST /identify-cat
type IdentifyHandler struct {
	identifier interfaces.CatIdentifier
}

// NewIdentifyHandler creates a new identify handler
func NewIdentifyHandler(identifier interfaces.CatIdentifier) *IdentifyHandler {
	return &IdentifyHandler{identifier: identifier}
}

// RegisterRoutes registers the identification route
func (h *IdentifyHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:  "identifyCat",
		Method:       http.MethodPost,
		Path:         "/identify-cat",
		Summary:      "Identify a cat from a photo",
		Description:  "Estimates age, likely breeds and temperament from an uploaded photo (multipart field \"data\")",
		Tags:         []string{"AI"},
		MaxBodyBytes: identify.MaxImageBytes + 1<<20,
	}, h.IdentifyCat)
}

// IdentifyCatInput defines the input for the IdentifyCat operation
type IdentifyCatInput struct {
	RawBody multipart.Form
}

// IdentifyCatOutput defines the output for the IdentifyCat operation
type IdentifyCatOutput struct {
	Body *responses.IdentifyCatResponse
}

// IdentifyCat handles POST /identify-cat
func (h *IdentifyHandler) IdentifyCat(ctx context.Context, input *IdentifyCatInput) (*IdentifyCatOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.CatIdentification) {
		return nil, featureDisabled(featureflags.CatIdentification)
	}

	image, err := readUpload(&input.RawBody)
	if err != nil {
		return nil, toHumaError(err)
	}

	profile, err := h.identifier.Identify(ctx, image)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &IdentifyCatOutput{Body: mappers.ToIdentifyCatResponse(profile)}, nil
}

func readUpload(form *multipart.Form) (domain.Image, error) {
	files := form.File[uploadField]
	if len(files) == 0 {
		return domain.Image{}, &errors.ValidationError{Field: uploadField, Message: "no file uploaded"}
	}
	fh := files[0]

	f, err := fh.Open()
	if err != nil {
		return domain.Image{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	// one byte past the cap so the service can reject oversize files
	data, err := io.ReadAll(io.LimitReader(f, identify.MaxImageBytes+1))
	if err != nil {
		return domain.Image{}, fmt.Errorf("read upload: %w", err)
	}

	return domain.Image{
		Filename: fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
