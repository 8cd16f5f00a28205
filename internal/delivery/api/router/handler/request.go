package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"kampuskart/internal/delivery/api/middleware"
	"kampuskart/internal/delivery/api/response"
	"kampuskart/internal/delivery/api/validator"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/errors"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// requireSession returns the session set by the auth middleware. A missing
// session means a route was registered without Authenticate.
func requireSession(c echo.Context) (*entity.Session, error) {
	session, ok := middleware.GetSession(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return session, nil
}

// bindAndValidate binds the request and runs struct validation, answering 400 on failure.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return domainerrors.ErrValidationFailed.WithDetails(fields)
		}

		return domainerrors.NewValidationError(err.Error())
	}

	return nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("Invalid " + name)
	}

	return id, nil
}

// parsePage reads page and limit. Missing or malformed values fall back to the
// usecase defaults.
func parsePage(c echo.Context) entity.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("limit"))

	return entity.Page{Number: number, Size: size}
}

// parseSelection reads the selected cart items from the "selected" query
// parameter. Both repeated parameters and comma separated lists are accepted;
// malformed ids are ignored.
func parseSelection(c echo.Context) usecase.CartSelection {
	var selection usecase.CartSelection
	for _, raw := range c.QueryParams()["selected"] {
		selection = appendIDs(selection, strings.Split(raw, ","))
	}

	return selection
}

// appendIDs parses each value as a uuid and appends it to ids. Values that do
// not parse cannot name a cart item and are skipped.
func appendIDs(ids []uuid.UUID, values []string) []uuid.UUID {
	for _, value := range values {
		id, err := uuid.Parse(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids
}

// formFile opens an optional multipart file. The returned cleanup closes it.
func formFile(c echo.Context, field string) (*usecase.UploadInput, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, domainerrors.NewValidationError("Invalid upload: " + field)
	}

	upload, closer, err := openUpload(header)
	if err != nil {
		return nil, func() {}, err
	}

	return upload, closer, nil
}

// formFiles opens every file sent under field.
func formFiles(c echo.Context, field string) ([]*usecase.UploadInput, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, domainerrors.NewValidationError("Invalid multipart form")
	}

	headers := form.File[field]
	uploads := make([]*usecase.UploadInput, 0, len(headers))
	closers := make([]func(), 0, len(headers))
	closeAll := func() {
		for _, closer := range closers {
			closer()
		}
	}

	for _, header := range headers {
		upload, closer, err := openUpload(header)
		if err != nil {
			closeAll()

			return nil, func() {}, err
		}
		uploads = append(uploads, upload)
		closers = append(closers, closer)
	}

	return uploads, closeAll, nil
}

func openUpload(header *multipart.FileHeader) (*usecase.UploadInput, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open upload %s", header.Filename)
	}

	return &usecase.UploadInput{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	}, func() { _ = file.Close() }, nil
}

// optionalString returns nil when the form omits the field.
func optionalString(c echo.Context, field string) *string {
	if _, ok := formValues(c)[field]; !ok {
		return nil
	}

	value := c.FormValue(field)

	return &value
}

func formValues(c echo.Context) map[string][]string {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}

	return values
}
